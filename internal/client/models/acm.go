package models

import "sort"

// ACM is the read-only access-control matrix for the current role:
// object name -> ordered list of permitted operations.
type ACM struct {
	Role        Role                `json:"role"`
	Permissions map[string][]string `json:"permissions"`
}

// Objects returns the matrix's object names in sorted order so rendering
// is stable across runs (map iteration order is not).
func (m ACM) Objects() []string {
	names := make([]string, 0, len(m.Permissions))
	for name := range m.Permissions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
