package memory

import (
	"context"

	"github.com/geocoder89/alumnihub/internal/domain/job"
	"github.com/geocoder89/alumnihub/internal/repo"
)

type JobsRepo struct {
	store *Store
}

func NewJobsRepo(store *Store) *JobsRepo {
	return &JobsRepo{store: store}
}

// populated is called with the lock held.
func (r *JobsRepo) populated(j job.Job) job.Job {
	j.CreatedBy = r.store.creatorRef(j.CreatorID)
	return j
}

func (r *JobsRepo) List(ctx context.Context) ([]job.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := sortedValues(r.store.jobs,
		func(j job.Job) string { return j.ID },
		func(a, b job.Job) int { return b.CreatedAt.Compare(a.CreatedAt) },
	)

	out := make([]job.Job, 0, len(all))
	for _, j := range all {
		out = append(out, r.populated(j))
	}
	return out, nil
}

func (r *JobsRepo) GetByID(ctx context.Context, id string) (job.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	j, ok := r.store.jobs[id]
	if !ok {
		return job.Job{}, repo.ErrNotFound
	}
	return r.populated(j), nil
}

func (r *JobsRepo) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, j := range r.store.jobs {
		if j.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (r *JobsRepo) Create(ctx context.Context, j job.Job) (job.Job, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	j.ID = newID()
	j.CreatedBy = nil
	r.store.jobs[j.ID] = j

	return r.populated(j), nil
}

func (r *JobsRepo) Save(ctx context.Context, j job.Job) (job.Job, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.jobs[j.ID]; !ok {
		return job.Job{}, repo.ErrNotFound
	}

	j.CreatedBy = nil
	r.store.jobs[j.ID] = j
	return r.populated(j), nil
}

func (r *JobsRepo) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.jobs[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.store.jobs, id)
	return nil
}
