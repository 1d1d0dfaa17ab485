package models

// IDList is a membership list of user ids stored as a jsonb column.
// The list is the source of truth; counters on the owning row are
// derived from it (or kept in lockstep for like counts).
type IDList []uint

// Contains reports whether id is a member of the list.
func (l IDList) Contains(id uint) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Toggle adds id when absent and removes it when present, returning
// whether id is a member after the call.
func (l *IDList) Toggle(id uint) bool {
	for i, v := range *l {
		if v == id {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return false
		}
	}
	*l = append(*l, id)
	return true
}

// Remove deletes id from the list, reporting whether it was present.
func (l *IDList) Remove(id uint) bool {
	for i, v := range *l {
		if v == id {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return true
		}
	}
	return false
}

// StringList is a comma-parsed text list (positions, hashtags, skills)
// stored as a jsonb column.
type StringList []string
