package analyze

import (
	"fmt"

	"github.com/bladegen/bladegen/schema"
)

// An InputKind is the HTML input type a form field renders as.
type InputKind string

// Form input kinds.
const (
	InputText     InputKind = "text"
	InputEmail    InputKind = "email"
	InputPassword InputKind = "password"
	InputTel      InputKind = "tel"
	InputURL      InputKind = "url"
	InputTextarea InputKind = "textarea"
	InputFile     InputKind = "file"
	InputCheckbox InputKind = "checkbox"
	InputDate     InputKind = "date"
	InputDateTime InputKind = "datetime-local"
	InputTime     InputKind = "time"
	InputNumber   InputKind = "number"
	InputSelect   InputKind = "select"
)

// A DisplayKind is the read-only rendering of a column in a table view.
type DisplayKind string

// Table display kinds.
const (
	DisplayBadge    DisplayKind = "badge"
	DisplayBool     DisplayKind = "boolean"
	DisplayImage    DisplayKind = "image"
	DisplayEmail    DisplayKind = "email"
	DisplayLink     DisplayKind = "link"
	DisplayDate     DisplayKind = "date"
	DisplayCurrency DisplayKind = "currency"
	DisplayText     DisplayKind = "text"
)

// A FormField describes how a column is rendered as an editable input.
type FormField struct {
	Name     string
	Label    string
	Input    InputKind
	Required bool
	Rules    []string
}

// A TableField describes how a column is rendered as read-only
// tabular output.
type TableField struct {
	Name       string
	Label      string
	Display    DisplayKind
	Sortable   bool
	Filterable bool
}

// Columns excluded from forms. These are either managed by the system
// or too sensitive to scaffold an input for.
var formExcluded = map[string]struct{}{
	"id":             {},
	"created_at":     {},
	"updated_at":     {},
	"deleted_at":     {},
	"password":       {},
	"remember_token": {},
}

// Columns excluded from table views.
var tableExcluded = map[string]struct{}{
	"password":          {},
	"remember_token":    {},
	"email_verified_at": {},
}

// inputRule maps a column-name predicate to an input kind. Rules are
// evaluated in order and the first match wins; name rules always fire
// before the type-based dispatch.
type inputRule struct {
	match func(name string) bool
	kind  InputKind
}

var inputRules = []inputRule{
	{func(n string) bool { return containsAny(n, "email") }, InputEmail},
	{func(n string) bool { return containsAny(n, "password") }, InputPassword},
	{func(n string) bool { return containsAny(n, "phone") }, InputTel},
	{func(n string) bool { return containsAny(n, "url", "website") }, InputURL},
	{func(n string) bool { return containsAny(n, "description", "content") }, InputTextarea},
	{func(n string) bool { return containsAny(n, "image", "avatar", "photo") }, InputFile},
}

type displayRule struct {
	match func(name string) bool
	kind  DisplayKind
}

var displayRules = []displayRule{
	{func(n string) bool { return containsAny(n, "status") }, DisplayBadge},
	{func(n string) bool { return containsAny(n, "active", "enabled") }, DisplayBool},
	{func(n string) bool { return containsAny(n, "image", "avatar", "photo") }, DisplayImage},
	{func(n string) bool { return containsAny(n, "email") }, DisplayEmail},
	{func(n string) bool { return containsAny(n, "url", "website") }, DisplayLink},
}

// ClassifyForm maps a column onto a form-field descriptor. It returns
// (nil, nil) for columns excluded from forms, and an error only for
// malformed input.
func ClassifyForm(col *schema.Column) (*FormField, error) {
	if err := col.Validate(); err != nil {
		return nil, fmt.Errorf("analyze: classify form field: %w", err)
	}
	if _, ok := formExcluded[col.Name]; ok {
		return nil, nil
	}
	f := &FormField{
		Name:     col.Name,
		Label:    Label(col.Name),
		Input:    inputKind(col),
		Required: required(col),
	}
	f.Rules = validationRules(col, f.Required)
	return f, nil
}

// ClassifyTable maps a column onto a table-field descriptor. It returns
// (nil, nil) for columns excluded from table views.
func ClassifyTable(col *schema.Column) (*TableField, error) {
	if err := col.Validate(); err != nil {
		return nil, fmt.Errorf("analyze: classify table field: %w", err)
	}
	if _, ok := tableExcluded[col.Name]; ok {
		return nil, nil
	}
	return &TableField{
		Name:       col.Name,
		Label:      Label(col.Name),
		Display:    displayKind(col),
		Sortable:   sortable(col),
		Filterable: filterable(col),
	}, nil
}

// FormFields classifies an ordered column list into form fields,
// dropping excluded columns. An empty input yields an empty output.
func FormFields(cols []schema.Column) ([]FormField, error) {
	fields := make([]FormField, 0, len(cols))
	for i := range cols {
		f, err := ClassifyForm(&cols[i])
		if err != nil {
			return nil, err
		}
		if f != nil {
			fields = append(fields, *f)
		}
	}
	return fields, nil
}

// TableFields classifies an ordered column list into table fields,
// dropping excluded columns.
func TableFields(cols []schema.Column) ([]TableField, error) {
	fields := make([]TableField, 0, len(cols))
	for i := range cols {
		f, err := ClassifyTable(&cols[i])
		if err != nil {
			return nil, err
		}
		if f != nil {
			fields = append(fields, *f)
		}
	}
	return fields, nil
}

func inputKind(col *schema.Column) InputKind {
	for _, r := range inputRules {
		if r.match(col.Name) {
			return r.kind
		}
	}
	switch {
	case col.Type == schema.TypeBool:
		return InputCheckbox
	case col.Type == schema.TypeDate:
		return InputDate
	case col.Type == schema.TypeDateTime || col.Type == schema.TypeTimestamp:
		return InputDateTime
	case col.Type == schema.TypeTime:
		return InputTime
	case col.Type.Numeric():
		return InputNumber
	case col.Type == schema.TypeEnum:
		return InputSelect
	case col.Type == schema.TypeText || col.Type == schema.TypeLongText:
		return InputTextarea
	default:
		return InputText
	}
}

func displayKind(col *schema.Column) DisplayKind {
	for _, r := range displayRules {
		if r.match(col.Name) {
			return r.kind
		}
	}
	switch {
	case col.Type == schema.TypeBool:
		return DisplayBool
	case col.Type.Temporal():
		return DisplayDate
	case col.Type.Float():
		return DisplayCurrency
	default:
		return DisplayText
	}
}

// required reports if a form field must be filled in: the column is
// NOT NULL and declares no default. A non-nullable column with a
// default can rely on the default instead.
func required(col *schema.Column) bool {
	return !col.Nullable && !col.HasDefault()
}

// sortable reports if a table column can drive ORDER BY from the UI.
// Large and unstructured types are not sortable.
func sortable(col *schema.Column) bool {
	switch col.Type {
	case schema.TypeText, schema.TypeLongText, schema.TypeJSON, schema.TypeBinary:
		return false
	}
	return true
}

func filterable(col *schema.Column) bool {
	if containsAny(col.Name, "status", "type", "category") {
		return true
	}
	return col.Type == schema.TypeBool || col.Type == schema.TypeEnum
}

// validationRules builds the ordered rule set for a form field:
// required, then type rules, then name-derived format rules. Order is
// stable so generated view output is deterministic.
func validationRules(col *schema.Column, required bool) []string {
	var rules []string
	if required {
		rules = append(rules, "required")
	}
	switch {
	case col.Type == schema.TypeString:
		rules = append(rules, "string", "max:255")
	case col.Type.Integer():
		rules = append(rules, "integer")
	case col.Type.Float():
		rules = append(rules, "numeric")
	case col.Type == schema.TypeBool:
		rules = append(rules, "boolean")
	case col.Type.Temporal():
		rules = append(rules, "date")
	}
	if containsAny(col.Name, "email") {
		rules = append(rules, "email")
	}
	if containsAny(col.Name, "url", "website") {
		rules = append(rules, "url")
	}
	return rules
}
