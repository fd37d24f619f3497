package entity

import "time"

// Visibility controls who can read a collection or location.
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityShared  Visibility = "shared"
	VisibilityPublic  Visibility = "public"
)

// IsValid checks if the visibility is valid.
func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPrivate, VisibilityShared, VisibilityPublic:
		return true
	default:
		return false
	}
}

// IsReadableByLink reports whether a share link may expose the collection.
func (v Visibility) IsReadableByLink() bool {
	return v == VisibilityShared || v == VisibilityPublic
}

// String returns the string representation of the visibility.
func (v Visibility) String() string {
	return string(v)
}

// ShareInfo describes an issued share link.
type ShareInfo struct {
	Token    string
	URL      string
	SharedAt time.Time
}
