package models

// Priority is a read-only urgency level seeded with the database
type Priority struct {
	ID    int    `json:"id"`
	Level string `json:"level"`
}

// PriorityLabel returns the label for id, or UnknownPriority when no level matches
func PriorityLabel(priorities []*Priority, id int) string {
	for _, p := range priorities {
		if p.ID == id {
			return p.Level
		}
	}
	return UnknownPriority
}
