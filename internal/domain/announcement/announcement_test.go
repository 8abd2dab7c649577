package announcement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNew_DefaultsCategory(t *testing.T) {
	a, err := New(CreateRequest{Title: "Welcome", Content: "Hello alumni"}, "admin", time.Now())
	require.NoError(t, err)
	assert.Equal(t, DefaultCategory, a.Category)

	_, err = New(CreateRequest{Title: "Welcome"}, "admin", time.Now())
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestPatchApply_IgnoresEmptyValues(t *testing.T) {
	base := Announcement{Title: "Welcome", Content: "Hello", Category: "News"}

	got := Patch{Category: ptr(""), Content: ptr("Updated")}.Apply(base, time.Now())
	assert.Equal(t, "News", got.Category)
	assert.Equal(t, "Updated", got.Content)
}
