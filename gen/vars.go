package gen

import (
	"fmt"
	"strings"

	"github.com/bladegen/bladegen/analyze"
	"github.com/bladegen/bladegen/plan"
	"github.com/bladegen/bladegen/schema"
)

// framework-specific CSS class sets used when rendering field fragments.
type classSet struct {
	group        string
	label        string
	input        string
	inputInvalid string
	textarea     string
	selectCtl    string
	checkWrap    string
	checkbox     string
	checkLabel   string
	feedback     string
	th           string
	td           string
	badge        string
}

var frameworkClasses = map[string]classSet{
	FrameworkBootstrap: {
		group:        "mb-3",
		label:        "form-label",
		input:        "form-control",
		inputInvalid: "is-invalid",
		textarea:     "form-control",
		selectCtl:    "form-select",
		checkWrap:    "form-check",
		checkbox:     "form-check-input",
		checkLabel:   "form-check-label",
		feedback:     "invalid-feedback",
		th:           "text-start",
		td:           "align-middle",
		badge:        "badge bg-secondary",
	},
	FrameworkTailwind: {
		group:        "mb-4",
		label:        "block text-sm font-medium text-gray-700",
		input:        "mt-1 block w-full rounded-md border-gray-300 shadow-sm",
		inputInvalid: "border-red-500",
		textarea:     "mt-1 block w-full rounded-md border-gray-300 shadow-sm",
		selectCtl:    "mt-1 block w-full rounded-md border-gray-300 shadow-sm",
		checkWrap:    "flex items-center gap-2",
		checkbox:     "rounded border-gray-300",
		checkLabel:   "text-sm text-gray-700",
		feedback:     "mt-1 text-sm text-red-600",
		th:           "px-4 py-2 text-left font-medium text-gray-600",
		td:           "px-4 py-2",
		badge:        "inline-flex rounded-full bg-gray-100 px-2 py-1 text-xs",
	},
}

// Vars builds the named substitution variables for one table: naming
// forms, pagination knobs and the rendered per-field fragments the
// stubs splice in. The same inputs always produce the same map.
func Vars(table string, cols []schema.Column, f plan.Features, framework string) (map[string]string, error) {
	cs, ok := frameworkClasses[framework]
	if !ok {
		return nil, fmt.Errorf("gen: %w: %q", ErrUnknownFramework, framework)
	}
	formFields, err := analyze.FormFields(cols)
	if err != nil {
		return nil, err
	}
	tableFields, err := analyze.TableFields(cols)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(cols))
	for i := range cols {
		names[i] = cols[i].Name
	}
	rels := analyze.Relationships(names)

	singular := analyze.Singularize(table)
	perPage := f.PerPage
	if perPage == 0 {
		perPage = 15
	}
	vars := map[string]string{
		"table":          table,
		"table_plural":   analyze.Pluralize(singular),
		"table_kebab":    analyze.Kebab(analyze.Pluralize(singular)),
		"model":          analyze.Pascal(singular),
		"model_variable": analyze.Camel(singular),
		"model_plural":   analyze.Camel(analyze.Pluralize(singular)),
		"title":          analyze.Label(singular),
		"title_plural":   analyze.Label(analyze.Pluralize(singular)),
		"route":          analyze.Kebab(analyze.Pluralize(singular)),
		"namespace":      componentNamespace(f),
		"per_page":       fmt.Sprintf("%d", perPage),
	}
	vars["form_fields"] = renderFormFields(formFields, vars["model_variable"], cs, false)
	vars["edit_form_fields"] = renderFormFields(formFields, vars["model_variable"], cs, true)
	vars["table_headers"] = renderHeaders(tableFields, cs)
	vars["table_cells"] = renderCells(tableFields, vars["model_variable"], cs)
	vars["validation_rules"] = renderRules(formFields)
	vars["relationships"] = renderRelationships(rels)
	return vars, nil
}

func componentNamespace(f plan.Features) string {
	if f.ComponentNamespace != "" {
		return f.ComponentNamespace
	}
	return "components"
}

func renderFormFields(fields []analyze.FormField, modelVar string, cs classSet, edit bool) string {
	var b strings.Builder
	for _, f := range fields {
		renderFormField(&b, f, modelVar, cs, edit)
	}
	return b.String()
}

func renderFormField(b *strings.Builder, f analyze.FormField, modelVar string, cs classSet, edit bool) {
	old := fmt.Sprintf("old('%s')", f.Name)
	if edit {
		old = fmt.Sprintf("old('%s', $%s->%s)", f.Name, modelVar, f.Name)
	}
	required := ""
	if f.Required {
		required = " required"
	}
	switch f.Input {
	case analyze.InputTextarea:
		fmt.Fprintf(b, `<div class="%s">
    <label for="%s" class="%s">%s</label>
    <textarea name="%s" id="%s" rows="4" class="%s @error('%s') %s @enderror"%s>{{ %s }}</textarea>
    @error('%s')<div class="%s">{{ $message }}</div>@enderror
</div>
`, cs.group, f.Name, cs.label, f.Label, f.Name, f.Name, cs.textarea, f.Name, cs.inputInvalid, required, old, f.Name, cs.feedback)
	case analyze.InputCheckbox:
		checked := fmt.Sprintf("@checked(%s)", old)
		fmt.Fprintf(b, `<div class="%s">
    <input type="hidden" name="%s" value="0">
    <input type="checkbox" name="%s" id="%s" value="1" class="%s" %s>
    <label for="%s" class="%s">%s</label>
</div>
`, cs.checkWrap, f.Name, f.Name, f.Name, cs.checkbox, checked, f.Name, cs.checkLabel, f.Label)
	case analyze.InputSelect:
		fmt.Fprintf(b, `<div class="%s">
    <label for="%s" class="%s">%s</label>
    <select name="%s" id="%s" class="%s @error('%s') %s @enderror"%s>
        <option value="">Select %s</option>
    </select>
    @error('%s')<div class="%s">{{ $message }}</div>@enderror
</div>
`, cs.group, f.Name, cs.label, f.Label, f.Name, f.Name, cs.selectCtl, f.Name, cs.inputInvalid, required, f.Label, f.Name, cs.feedback)
	default:
		fmt.Fprintf(b, `<div class="%s">
    <label for="%s" class="%s">%s</label>
    <input type="%s" name="%s" id="%s" class="%s @error('%s') %s @enderror" value="{{ %s }}"%s>
    @error('%s')<div class="%s">{{ $message }}</div>@enderror
</div>
`, cs.group, f.Name, cs.label, f.Label, f.Input, f.Name, f.Name, cs.input, f.Name, cs.inputInvalid, old, required, f.Name, cs.feedback)
	}
}

func renderHeaders(fields []analyze.TableField, cs classSet) string {
	var b strings.Builder
	for _, f := range fields {
		attrs := ""
		if f.Sortable {
			attrs = fmt.Sprintf(` data-sortable="true" data-column="%s"`, f.Name)
		}
		fmt.Fprintf(&b, "<th class=\"%s\"%s>%s</th>\n", cs.th, attrs, f.Label)
	}
	return b.String()
}

func renderCells(fields []analyze.TableField, modelVar string, cs classSet) string {
	var b strings.Builder
	for _, f := range fields {
		value := fmt.Sprintf("$%s->%s", modelVar, f.Name)
		var cell string
		switch f.Display {
		case analyze.DisplayBadge:
			cell = fmt.Sprintf(`<span class="%s">{{ %s }}</span>`, cs.badge, value)
		case analyze.DisplayBool:
			cell = fmt.Sprintf(`{{ %s ? 'Yes' : 'No' }}`, value)
		case analyze.DisplayImage:
			cell = fmt.Sprintf(`<img src="{{ %s }}" alt="%s" width="48">`, value, f.Label)
		case analyze.DisplayEmail:
			cell = fmt.Sprintf(`<a href="mailto:{{ %s }}">{{ %s }}</a>`, value, value)
		case analyze.DisplayLink:
			cell = fmt.Sprintf(`<a href="{{ %s }}" target="_blank" rel="noopener">{{ %s }}</a>`, value, value)
		case analyze.DisplayDate:
			cell = fmt.Sprintf(`{{ %s?->format('Y-m-d H:i') }}`, value)
		case analyze.DisplayCurrency:
			cell = fmt.Sprintf(`{{ number_format(%s, 2) }}`, value)
		default:
			cell = fmt.Sprintf(`{{ %s }}`, value)
		}
		fmt.Fprintf(&b, "<td class=\"%s\">%s</td>\n", cs.td, cell)
	}
	return b.String()
}

func renderRules(fields []analyze.FormField) string {
	var b strings.Builder
	for _, f := range fields {
		if len(f.Rules) == 0 {
			continue
		}
		fmt.Fprintf(&b, "    '%s' => '%s',\n", f.Name, strings.Join(f.Rules, "|"))
	}
	return b.String()
}

func renderRelationships(rels []analyze.Relationship) string {
	var b strings.Builder
	for _, r := range rels {
		fmt.Fprintf(&b, "    // %s: %s -> %s (%s)\n", r.Kind, r.ForeignKey, r.TableGuess, r.EntityGuess)
	}
	return b.String()
}
