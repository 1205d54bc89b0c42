package domain

import "strings"

// Roster is the ordered list of player names kept by the named variant
type Roster struct {
	names []string
}

// NewRoster creates a roster from previously saved names. Blank and
// duplicate entries are dropped.
func NewRoster(names []string) *Roster {
	r := &Roster{names: make([]string, 0, len(names))}
	for _, name := range names {
		_ = r.AddName(name)
	}
	return r
}

// Names returns a copy of the roster in order
func (r *Roster) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of names
func (r *Roster) Len() int {
	return len(r.names)
}

// Contains reports whether the name is already present, ignoring case
func (r *Roster) Contains(name string) bool {
	name = strings.TrimSpace(name)
	for _, n := range r.names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// AddName appends a trimmed, unique name
func (r *Roster) AddName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyPlayerName
	}
	if r.Contains(name) {
		return ErrDuplicatePlayerName
	}

	r.names = append(r.names, name)
	return nil
}

// RemoveAt removes the name at the given 0-based index
func (r *Roster) RemoveAt(index int) error {
	if index < 0 || index >= len(r.names) {
		return ErrPlayerNotFound
	}

	r.names = append(r.names[:index], r.names[index+1:]...)
	return nil
}

// Clear removes all names
func (r *Roster) Clear() {
	r.names = r.names[:0]
}
