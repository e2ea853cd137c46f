package plan

import (
	"fmt"
	"path"

	"github.com/bladegen/bladegen/analyze"
)

// A Category selects a group of views to generate.
type Category string

// View categories.
const (
	CategoryCRUD       Category = "crud"
	CategoryComponents Category = "components"
	CategoryForms      Category = "forms"
	CategoryLayouts    Category = "layouts"
	CategoryTables     Category = "tables"
)

// AllCategories lists the categories in their canonical emission order.
var AllCategories = []Category{
	CategoryCRUD,
	CategoryComponents,
	CategoryForms,
	CategoryLayouts,
	CategoryTables,
}

// Valid reports if c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryCRUD, CategoryComponents, CategoryForms, CategoryLayouts, CategoryTables:
		return true
	}
	return false
}

// ParseCategory returns the category for a CLI/config token.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("plan: unknown category %q", s)
	}
	return c, nil
}

// Human labels used in generation reports and dry-run listings.
const (
	labelCRUD       = "CRUD Views"
	labelComponents = "Components"
	labelForms      = "Form Views"
	labelLayouts    = "Layout Views"
	labelTables     = "Table Views"
	labelExport     = "Export Views"
)

// An Entry is one planned output file. Stub names the stub the file is
// rendered from, relative to the active framework's stub root.
type Entry struct {
	// Category is the human-readable group label, e.g. "CRUD Views".
	Category string

	// Path is the output path relative to the views root. It is fully
	// determined by the table name and the feature flags.
	Path string

	// Stub is the stub file the entry is rendered from.
	Stub string
}

// Manifest plans the ordered file list for one table. The same
// (table, categories, flags) input always yields the same manifest:
// entries are emitted per category in the order the categories are
// requested, and the per-category sub-lists are fixed.
func Manifest(table string, categories []Category, f Features) []Entry {
	views := analyze.Kebab(analyze.Pluralize(table))
	var entries []Entry
	add := func(category, stub string, elem ...string) {
		entries = append(entries, Entry{
			Category: category,
			Path:     path.Join(elem...) + ".blade.php",
			Stub:     stub + ".stub",
		})
	}
	for _, c := range categories {
		switch c {
		case CategoryCRUD:
			add(labelCRUD, "crud/index", "views", views, "index")
			add(labelCRUD, "crud/show", "views", views, "show")
			add(labelCRUD, "crud/create", "views", views, "create")
			add(labelCRUD, "crud/edit", "views", views, "edit")
			if f.AJAX {
				add(labelCRUD, "crud/delete-modal", "views", views, "partials", "delete-modal")
			}
		case CategoryComponents:
			ns := f.namespace()
			add(labelComponents, "components/form-input", "views", ns, "form-input")
			add(labelComponents, "components/form-select", "views", ns, "form-select")
			add(labelComponents, "components/form-checkbox", "views", ns, "form-checkbox")
			add(labelComponents, "components/form-textarea", "views", ns, "form-textarea")
			add(labelComponents, "components/alert", "views", ns, "alert")
			add(labelComponents, "components/card", "views", ns, "card")
		case CategoryForms:
			add(labelForms, "forms/create", "views", views, "forms", "create")
			add(labelForms, "forms/edit", "views", views, "forms", "edit")
		case CategoryLayouts:
			add(labelLayouts, "layouts/app", "views", "layouts", "app")
			add(labelLayouts, "layouts/admin", "views", "layouts", "admin")
			if f.Auth {
				add(labelLayouts, "layouts/auth", "views", "layouts", "auth")
			}
		case CategoryTables:
			add(labelTables, "tables/table", "views", views, "tables", "table")
			add(labelTables, "tables/header", "views", views, "tables", "header")
			add(labelTables, "tables/body", "views", views, "tables", "body")
			if f.Search || f.Filtering {
				add(labelTables, "tables/search", "views", views, "tables", "search")
				add(labelTables, "tables/filters", "views", views, "tables", "filters")
			}
			if f.Sorting {
				add(labelTables, "tables/sortable-header", "views", views, "tables", "sortable-header")
			}
			add(labelTables, "tables/pagination", "views", views, "tables", "pagination")
			if f.Export {
				add(labelExport, "tables/export-buttons", "views", views, "tables", "export-buttons")
			}
			if f.BulkActions {
				add(labelTables, "tables/bulk-actions", "views", views, "tables", "bulk-actions")
			}
			if f.AJAX {
				add(labelTables, "tables/ajax-handlers", "views", views, "tables", "ajax-handlers")
			}
			if f.Responsive {
				add(labelTables, "tables/responsive", "views", views, "tables", "responsive")
			}
		}
	}
	return entries
}

// Paths returns just the output paths of a manifest, in order.
func Paths(entries []Entry) []string {
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return paths
}
