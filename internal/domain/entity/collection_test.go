package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollection_IsShared(t *testing.T) {
	share := &ShareInfo{Token: "abc"}

	tests := []struct {
		name       string
		collection *Collection
		want       bool
	}{
		{name: "nil", collection: nil, want: false},
		{name: "shared with token", collection: &Collection{Visibility: VisibilityShared, Share: share}, want: true},
		{name: "public with token", collection: &Collection{Visibility: VisibilityPublic, Share: share}, want: true},
		{name: "private with token", collection: &Collection{Visibility: VisibilityPrivate, Share: share}, want: false},
		{name: "unset visibility with token", collection: &Collection{Share: share}, want: false},
		{name: "shared without token", collection: &Collection{Visibility: VisibilityShared, Share: &ShareInfo{}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.collection.IsShared())
		})
	}
}
