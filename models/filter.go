package models

import "strings"

// SearchFilter is the ephemeral search state: a free-text name fragment and a
// category selector. Both parts are optional; empty values mean "no filter".
type SearchFilter struct {
	// Category is one of Categories(). CategoryAll (or empty) disables the
	// category filter.
	Category string

	// Name is the free-text fragment matched against file display names.
	Name string
}

// TypeParam returns the value for the "type" query parameter, or an empty
// string when no category filter should be sent.
func (f SearchFilter) TypeParam() string {
	if f.Category == "" || f.Category == CategoryAll {
		return ""
	}
	return f.Category
}

// NameParam returns the trimmed value for the "name" query parameter, or an
// empty string when no text filter should be sent.
func (f SearchFilter) NameParam() string {
	return strings.TrimSpace(f.Name)
}
