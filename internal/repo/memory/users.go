package memory

import (
	"context"
	"strings"

	"github.com/geocoder89/alumnihub/internal/domain/user"
	"github.com/geocoder89/alumnihub/internal/repo"
)

type UsersRepo struct {
	store *Store
}

func NewUsersRepo(store *Store) *UsersRepo {
	return &UsersRepo{store: store}
}

// emailTaken reports whether another user owns email; callers hold the lock.
func (r *UsersRepo) emailTaken(email, exceptID string) bool {
	for id, u := range r.store.users {
		if id != exceptID && u.Email == email {
			return true
		}
	}
	return false
}

func (r *UsersRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.emailTaken(u.Email, "") {
		return user.User{}, repo.ErrDuplicate
	}

	u.ID = newID()
	if u.SavedJobs == nil {
		u.SavedJobs = []string{}
	}
	r.store.users[u.ID] = u

	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return user.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	email = user.NormalizeEmail(email)

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, repo.ErrNotFound
}

func (r *UsersRepo) Save(ctx context.Context, u user.User) (user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[u.ID]; !ok {
		return user.User{}, repo.ErrNotFound
	}
	if r.emailTaken(u.Email, u.ID) {
		return user.User{}, repo.ErrDuplicate
	}

	if u.SavedJobs == nil {
		u.SavedJobs = []string{}
	}
	r.store.users[u.ID] = u
	return u, nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.store.users, id)
	return nil
}

func (r *UsersRepo) List(ctx context.Context, filter user.ListFilter) ([]user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	byName := func(a, b user.User) int { return strings.Compare(a.Name, b.Name) }
	newest := func(a, b user.User) int { return b.CreatedAt.Compare(a.CreatedAt) }

	less := byName
	if filter.Sort == user.SortByNewest {
		less = newest
	}

	all := sortedValues(r.store.users, func(u user.User) string { return u.ID }, less)

	out := make([]user.User, 0, len(all))
	for _, u := range all {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *UsersRepo) Stats(ctx context.Context) (user.Stats, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var stats user.Stats
	for _, u := range r.store.users {
		if u.Role != user.RoleAlumni {
			continue
		}
		if u.Status == user.StatusApproved {
			stats.NetworkConnections++
		}
		stats.ProfileViews += int64(u.ProfileViews)
		stats.SavedJobs += int64(len(u.SavedJobs))
	}
	return stats, nil
}
