package constants

// ItemType distinguishes how an item's extraction results are composed
// into one table before the external join.
type ItemType string

const (
	// SingleSource items map one document's extraction output directly.
	SingleSource ItemType = "SINGLE_SOURCE"
	// MultiSource items merge a primary document with attachment documents.
	MultiSource ItemType = "MULTI_SOURCE"
)

// ItemTypes holds the allowed values for the item_type field.
var ItemTypes = []string{string(SingleSource), string(MultiSource)}

// ValidItemType reports whether s is a known item type.
func ValidItemType(s string) bool {
	return s == string(SingleSource) || s == string(MultiSource)
}
