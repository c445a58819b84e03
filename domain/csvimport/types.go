package csvimport

// FieldType selects the validation/coercion rule for one CSV column.
type FieldType string

const (
	FieldText   FieldType = "text"
	FieldNumber FieldType = "number"
	FieldBool   FieldType = "bool"
	FieldDate   FieldType = "date"
	FieldEnum   FieldType = "enum"
)

// FieldSpec declares how one named column is validated and coerced.
type FieldSpec struct {
	Name     string
	Type     FieldType
	Required bool
	// Enum holds the accepted values for FieldEnum columns; matching is
	// case-insensitive and the canonical spelling is kept.
	Enum []string
	// Normalize, when set, rewrites the raw cell before validation.
	Normalize func(string) string
	// Example populates the sample template for this column.
	Example string
}

// Contract is the import contract for one screen: the backend resource
// created per row, the header columns that must all be present, and the
// per-field rules.
type Contract struct {
	Resource string
	Required []string
	Fields   []FieldSpec
}

// spec returns the field spec for a header name, defaulting to free text
// for columns the contract does not constrain.
func (c Contract) spec(name string) FieldSpec {
	for _, f := range c.Fields {
		if f.Name == name {
			return f
		}
	}
	return FieldSpec{Name: name, Type: FieldText}
}
