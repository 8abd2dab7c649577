package memory

import (
	"context"

	"github.com/geocoder89/alumnihub/internal/domain/event"
	"github.com/geocoder89/alumnihub/internal/repo"
)

type EventsRepo struct {
	store *Store
}

func NewEventsRepo(store *Store) *EventsRepo {
	return &EventsRepo{store: store}
}

// populated is called with the lock held.
func (r *EventsRepo) populated(e event.Event) event.Event {
	e.CreatedBy = r.store.creatorRef(e.CreatorID)
	return e
}

func (r *EventsRepo) List(ctx context.Context) ([]event.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := sortedValues(r.store.events,
		func(e event.Event) string { return e.ID },
		func(a, b event.Event) int { return a.Date.Compare(b.Date) },
	)

	out := make([]event.Event, 0, len(all))
	for _, e := range all {
		out = append(out, r.populated(e))
	}
	return out, nil
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (event.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.events[id]
	if !ok {
		return event.Event{}, repo.ErrNotFound
	}
	return r.populated(e), nil
}

func (r *EventsRepo) Create(ctx context.Context, e event.Event) (event.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e.ID = newID()
	e.CreatedBy = nil
	r.store.events[e.ID] = e

	return r.populated(e), nil
}

func (r *EventsRepo) Save(ctx context.Context, e event.Event) (event.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.events[e.ID]; !ok {
		return event.Event{}, repo.ErrNotFound
	}

	e.CreatedBy = nil
	r.store.events[e.ID] = e
	return r.populated(e), nil
}

func (r *EventsRepo) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.events[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.store.events, id)
	return nil
}
