package dataset

// Language is the part of a language record the adjacency matrix depends on.
// Other fields of the record are never decoded or rewritten.
type Language struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Identifier returns the id, falling back to the name when the id is absent
// or empty.
func (l Language) Identifier() string {
	if l.ID != "" {
		return l.ID
	}
	return l.Name
}
