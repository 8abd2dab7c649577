package mongodb

import (
	"context"

	"github.com/geocoder89/alumnihub/internal/domain/user"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type UsersRepo struct {
	store *Store
}

func NewUsersRepo(store *Store) *UsersRepo {
	return &UsersRepo{store: store}
}

func (r *UsersRepo) col() *mongo.Collection {
	return r.store.col(ColUsers)
}

// Create inserts u and returns it with its new id. A taken email yields
// repo.ErrDuplicate from the unique index.
func (r *UsersRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	doc, err := newUserDoc(u)
	if err != nil {
		return user.User{}, err
	}

	var id bson.ObjectID
	err = r.store.observe("users.create", func() error {
		var err error
		id, err = insertOne(ctx, r.col(), doc)
		return err
	})
	if err != nil {
		return user.User{}, err
	}

	u.ID = id.Hex()
	if u.SavedJobs == nil {
		u.SavedJobs = []string{}
	}
	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return user.User{}, err
	}

	return r.findOne(ctx, "users.get_by_id", byID(oid))
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.findOne(ctx, "users.get_by_email", bson.D{{Key: "email", Value: user.NormalizeEmail(email)}})
}

func (r *UsersRepo) findOne(ctx context.Context, op string, filter bson.D) (user.User, error) {
	var doc userDoc
	err := r.store.observe(op, func() error {
		var err error
		doc, err = findOne[userDoc](ctx, r.col(), filter)
		return err
	})
	if err != nil {
		return user.User{}, err
	}
	return doc.toDomain(), nil
}

// Save replaces the stored document with u. The password field is written
// as given, so callers hash it first.
func (r *UsersRepo) Save(ctx context.Context, u user.User) (user.User, error) {
	oid, err := parseID(u.ID)
	if err != nil {
		return user.User{}, err
	}

	doc, err := newUserDoc(u)
	if err != nil {
		return user.User{}, err
	}
	doc.ID = oid

	err = r.store.observe("users.save", func() error {
		return replaceByID(ctx, r.col(), oid, doc)
	})
	if err != nil {
		return user.User{}, err
	}
	return doc.toDomain(), nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	return r.store.observe("users.delete", func() error {
		return deleteByID(ctx, r.col(), oid)
	})
}

func (r *UsersRepo) List(ctx context.Context, filter user.ListFilter) ([]user.User, error) {
	query := bson.D{}
	if filter.Role != "" {
		query = append(query, bson.E{Key: "role", Value: string(filter.Role)})
	}
	if filter.Status != "" {
		query = append(query, bson.E{Key: "status", Value: string(filter.Status)})
	}

	sort := bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}
	if filter.Sort == user.SortByNewest {
		sort = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}
	}

	var docs []userDoc
	err := r.store.observe("users.list", func() error {
		var err error
		docs, err = findMany[userDoc](ctx, r.col(), query, options.Find().SetSort(sort))
		return err
	})
	if err != nil {
		return nil, err
	}

	return mapDocs(docs, userDoc.toDomain), nil
}

// Stats counts approved alumni and sums profile views and saved jobs across
// every alumni account; missing fields count as zero.
func (r *UsersRepo) Stats(ctx context.Context) (user.Stats, error) {
	var stats user.Stats

	err := r.store.observe("users.stats.count", func() error {
		n, err := r.col().CountDocuments(ctx, bson.D{
			{Key: "role", Value: string(user.RoleAlumni)},
			{Key: "status", Value: string(user.StatusApproved)},
		})
		stats.NetworkConnections = n
		return err
	})
	if err != nil {
		return user.Stats{}, err
	}

	type totals struct {
		ProfileViews int64 `bson:"profileViews"`
		SavedJobs    int64 `bson:"savedJobs"`
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "role", Value: string(user.RoleAlumni)}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "profileViews", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$ifNull", Value: bson.A{"$profile_views", 0}},
			}}}},
			{Key: "savedJobs", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$size", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$saved_jobs", bson.A{}}}}},
			}}}},
		}}},
	}

	var rows []totals
	err = r.store.observe("users.stats.aggregate", func() error {
		var err error
		rows, err = aggregate[totals](ctx, r.col(), pipeline)
		return err
	})
	if err != nil {
		return user.Stats{}, err
	}

	if len(rows) > 0 {
		stats.ProfileViews = rows[0].ProfileViews
		stats.SavedJobs = rows[0].SavedJobs
	}

	return stats, nil
}
