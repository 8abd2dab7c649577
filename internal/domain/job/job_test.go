package job

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNew_RequiresTitleCompanyLocation(t *testing.T) {
	now := time.Now().UTC()

	for _, req := range []CreateRequest{
		{Company: "Acme", Location: "Remote"},
		{Title: "Engineer", Location: "Remote"},
		{Title: "Engineer", Company: "Acme", Location: "  "},
	} {
		_, err := New(req, "admin", now)
		assert.ErrorIs(t, err, ErrMissingFields)
	}

	j, err := New(CreateRequest{Title: "Engineer ", Company: "Acme", Location: "Remote"}, "admin", now)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", j.Title)
	assert.Equal(t, "", j.Salary)
}

func TestPatchApply(t *testing.T) {
	base := Job{Title: "Engineer", Company: "Acme", Location: "Remote", Salary: "$100k", Description: "Go"}

	got := Patch{Salary: ptr(""), Title: ptr("")}.Apply(base, time.Now())
	assert.Equal(t, "", got.Salary)
	assert.Equal(t, "Engineer", got.Title)
	assert.Equal(t, "Go", got.Description)
}
