// Package memory is an in-process store with the same behaviour as the
// MongoDB repositories. It backs STORE_DRIVER=memory and router tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/geocoder89/alumnihub/internal/domain/announcement"
	"github.com/geocoder89/alumnihub/internal/domain/event"
	"github.com/geocoder89/alumnihub/internal/domain/job"
	"github.com/geocoder89/alumnihub/internal/domain/user"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Store struct {
	mu            sync.RWMutex
	users         map[string]user.User
	jobs          map[string]job.Job
	events        map[string]event.Event
	announcements map[string]announcement.Announcement
}

func NewStore() *Store {
	return &Store{
		users:         make(map[string]user.User),
		jobs:          make(map[string]job.Job),
		events:        make(map[string]event.Event),
		announcements: make(map[string]announcement.Announcement),
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// newID mints ids in the same shape MongoDB would.
func newID() string {
	return bson.NewObjectID().Hex()
}

// creatorRef resolves a created_by id; callers hold s.mu.
func (s *Store) creatorRef(id string) *user.Ref {
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	ref := u.Ref()
	return &ref
}

// sortedValues returns the map values ordered by less, ties broken by id.
func sortedValues[T any](m map[string]T, id func(T) string, less func(a, b T) int) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool {
		if c := less(out[i], out[j]); c != 0 {
			return c < 0
		}
		return id(out[i]) < id(out[j])
	})

	return out
}
