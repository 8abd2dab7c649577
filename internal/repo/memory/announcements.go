package memory

import (
	"context"

	"github.com/geocoder89/alumnihub/internal/domain/announcement"
	"github.com/geocoder89/alumnihub/internal/repo"
)

type AnnouncementsRepo struct {
	store *Store
}

func NewAnnouncementsRepo(store *Store) *AnnouncementsRepo {
	return &AnnouncementsRepo{store: store}
}

// populated is called with the lock held.
func (r *AnnouncementsRepo) populated(a announcement.Announcement) announcement.Announcement {
	a.CreatedBy = r.store.creatorRef(a.CreatorID)
	return a
}

func (r *AnnouncementsRepo) List(ctx context.Context) ([]announcement.Announcement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := sortedValues(r.store.announcements,
		func(a announcement.Announcement) string { return a.ID },
		func(a, b announcement.Announcement) int { return b.CreatedAt.Compare(a.CreatedAt) },
	)

	out := make([]announcement.Announcement, 0, len(all))
	for _, a := range all {
		out = append(out, r.populated(a))
	}
	return out, nil
}

func (r *AnnouncementsRepo) GetByID(ctx context.Context, id string) (announcement.Announcement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	a, ok := r.store.announcements[id]
	if !ok {
		return announcement.Announcement{}, repo.ErrNotFound
	}
	return r.populated(a), nil
}

func (r *AnnouncementsRepo) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a.ID = newID()
	a.CreatedBy = nil
	r.store.announcements[a.ID] = a

	return r.populated(a), nil
}

func (r *AnnouncementsRepo) Save(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.announcements[a.ID]; !ok {
		return announcement.Announcement{}, repo.ErrNotFound
	}

	a.CreatedBy = nil
	r.store.announcements[a.ID] = a
	return r.populated(a), nil
}

func (r *AnnouncementsRepo) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.announcements[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.store.announcements, id)
	return nil
}
