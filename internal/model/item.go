package model

// Item is the domain model for a task entry.
// Description is nil when the item has none; it encodes as JSON null.
type Item struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// NewItem builds an Item. An empty description is kept as an empty string,
// only a nil pointer means "no description".
func NewItem(title string, description *string) Item {
	return Item{Title: title, Description: description}
}

// HasDescription reports whether the item carries a description.
func (it Item) HasDescription() bool { return it.Description != nil }
