package mongodb

import (
	"context"

	"github.com/geocoder89/alumnihub/internal/domain/job"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type JobsRepo struct {
	store *Store
}

func NewJobsRepo(store *Store) *JobsRepo {
	return &JobsRepo{store: store}
}

func (r *JobsRepo) col() *mongo.Collection {
	return r.store.col(ColJobs)
}

// List returns every job, newest first, with created_by populated.
func (r *JobsRepo) List(ctx context.Context) ([]job.Job, error) {
	sort := bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

	var docs []jobDoc
	err := r.store.observe("jobs.list", func() error {
		var err error
		docs, err = aggregate[jobDoc](ctx, r.col(), withCreator(bson.D{}, sort))
		return err
	})
	if err != nil {
		return nil, err
	}

	return mapDocs(docs, jobDoc.toDomain), nil
}

func (r *JobsRepo) GetByID(ctx context.Context, id string) (job.Job, error) {
	oid, err := parseID(id)
	if err != nil {
		return job.Job{}, err
	}

	var doc jobDoc
	err = r.store.observe("jobs.get_by_id", func() error {
		var err error
		doc, err = findPopulated[jobDoc](ctx, r.col(), oid)
		return err
	})
	if err != nil {
		return job.Job{}, err
	}
	return doc.toDomain(), nil
}

// ExistsByTitle is used by the seeder to skip jobs it already inserted.
func (r *JobsRepo) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var n int64
	err := r.store.observe("jobs.exists_by_title", func() error {
		var err error
		n, err = r.col().CountDocuments(ctx, bson.D{{Key: "title", Value: title}}, options.Count().SetLimit(1))
		return err
	})
	return n > 0, err
}

// Create inserts j and returns the stored record with its creator populated.
func (r *JobsRepo) Create(ctx context.Context, j job.Job) (job.Job, error) {
	doc, err := newJobDoc(j)
	if err != nil {
		return job.Job{}, err
	}

	var id bson.ObjectID
	err = r.store.observe("jobs.create", func() error {
		var err error
		id, err = insertOne(ctx, r.col(), doc)
		return err
	})
	if err != nil {
		return job.Job{}, err
	}

	return r.GetByID(ctx, id.Hex())
}

func (r *JobsRepo) Save(ctx context.Context, j job.Job) (job.Job, error) {
	oid, err := parseID(j.ID)
	if err != nil {
		return job.Job{}, err
	}

	doc, err := newJobDoc(j)
	if err != nil {
		return job.Job{}, err
	}
	doc.ID = oid

	err = r.store.observe("jobs.save", func() error {
		return replaceByID(ctx, r.col(), oid, doc)
	})
	if err != nil {
		return job.Job{}, err
	}

	return r.GetByID(ctx, j.ID)
}

func (r *JobsRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	return r.store.observe("jobs.delete", func() error {
		return deleteByID(ctx, r.col(), oid)
	})
}
