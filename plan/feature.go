// Package plan computes the deterministic file manifest of a generation
// run from a table name, the requested view categories and the feature
// flags. Planning is pure: it never inspects the filesystem, so a
// dry-run preview always matches the subsequent generation.
package plan

import "fmt"

// A Stage describes the maturity of a feature.
type Stage uint8

// Feature stages.
const (
	_ Stage = iota
	Experimental
	Beta
	Stable
)

// A Feature of the view generator that can be switched on per run.
type Feature struct {
	// Name of the feature as accepted by CLI flags and config files.
	Name string

	// Stage of the feature.
	Stage Stage

	// Default values for the feature switch.
	Default bool

	// A Description of the feature.
	Description string

	set func(*Features, bool)
}

var (
	// FeatureSearch adds a search box wired to the index table.
	FeatureSearch = Feature{
		Name:        "search",
		Stage:       Stable,
		Description: "Adds a search input and the matching query partials to the table views",
		set:         func(f *Features, v bool) { f.Search = v },
	}

	// FeatureSorting adds clickable column sorting.
	FeatureSorting = Feature{
		Name:        "sorting",
		Stage:       Stable,
		Description: "Adds sortable column headers to the table views",
		set:         func(f *Features, v bool) { f.Sorting = v },
	}

	// FeatureFiltering adds per-column filter controls.
	FeatureFiltering = Feature{
		Name:        "filtering",
		Stage:       Stable,
		Description: "Adds filter dropdowns for filterable columns",
		set:         func(f *Features, v bool) { f.Filtering = v },
	}

	// FeatureBulkActions adds row selection with bulk operations.
	FeatureBulkActions = Feature{
		Name:        "bulk-actions",
		Stage:       Beta,
		Description: "Adds row checkboxes and a bulk action toolbar",
		set:         func(f *Features, v bool) { f.BulkActions = v },
	}

	// FeatureExport adds CSV/PDF export buttons.
	FeatureExport = Feature{
		Name:        "export",
		Stage:       Beta,
		Description: "Adds export buttons and the export partials",
		set:         func(f *Features, v bool) { f.Export = v },
	}

	// FeatureAJAX generates fetch-based partials instead of full page reloads.
	FeatureAJAX = Feature{
		Name:        "ajax",
		Stage:       Beta,
		Description: "Generates AJAX handlers and a delete confirmation modal",
		set:         func(f *Features, v bool) { f.AJAX = v },
	}

	// FeatureResponsive adds small-screen table variants.
	FeatureResponsive = Feature{
		Name:        "responsive",
		Stage:       Stable,
		Default:     true,
		Description: "Adds responsive table partials for small screens",
		set:         func(f *Features, v bool) { f.Responsive = v },
	}

	// FeatureAuth adds an authentication layout.
	FeatureAuth = Feature{
		Name:        "auth",
		Stage:       Stable,
		Description: "Adds the auth layout next to the app and admin layouts",
		set:         func(f *Features, v bool) { f.Auth = v },
	}
)

// AllFeatures holds all feature switches in registration order.
var AllFeatures = []Feature{
	FeatureSearch,
	FeatureSorting,
	FeatureFiltering,
	FeatureBulkActions,
	FeatureExport,
	FeatureAJAX,
	FeatureResponsive,
	FeatureAuth,
}

// FeatureByName returns the feature registered under the given name.
func FeatureByName(name string) (Feature, error) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, nil
		}
	}
	return Feature{}, fmt.Errorf("plan: unknown feature %q", name)
}

// Features holds the per-run feature switches and knobs supplied by
// the caller. The zero value is a valid, minimal configuration.
type Features struct {
	Search      bool
	Sorting     bool
	Filtering   bool
	BulkActions bool
	Export      bool
	AJAX        bool
	Responsive  bool
	Auth        bool

	// PerPage is the pagination page size written into the generated
	// pagination partials. Zero means the generator default.
	PerPage int

	// ComponentNamespace is the view namespace the component category
	// is emitted under. Empty means "components".
	ComponentNamespace string
}

// Defaults returns the feature set with every default-on feature enabled.
func Defaults() Features {
	var f Features
	for _, feat := range AllFeatures {
		if feat.Default {
			feat.set(&f, true)
		}
	}
	f.PerPage = 15
	return f
}

// Enable switches on the named features. Unknown names are reported
// rather than ignored so a typo in a CLI flag surfaces immediately.
func (f *Features) Enable(names ...string) error {
	for _, name := range names {
		feat, err := FeatureByName(name)
		if err != nil {
			return err
		}
		feat.set(f, true)
	}
	return nil
}

func (f Features) namespace() string {
	if f.ComponentNamespace != "" {
		return f.ComponentNamespace
	}
	return "components"
}
