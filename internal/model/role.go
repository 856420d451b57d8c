package model

// Role identifies an attribute exposed by a parameter model row.
type Role int

const (
	NameRole Role = iota + 1
	ValueRole
	MinRole
	MaxRole

	// ParentDurationRole is the 0-based duration of the item owning the parameters
	ParentDurationRole

	// ParentInRole is the timeline position of the owning item
	ParentInRole
)

// Roles is a set of changed roles carried by a change notification
type Roles []Role

// Contains reports whether r is part of the set
func (rs Roles) Contains(r Role) bool {
	for _, role := range rs {
		if role == r {
			return true
		}
	}
	return false
}
