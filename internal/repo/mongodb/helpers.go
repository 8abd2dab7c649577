package mongodb

import (
	"context"
	"errors"

	"github.com/geocoder89/alumnihub/internal/repo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// wrapError maps driver errors onto the repo sentinels.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repo.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return repo.ErrDuplicate
	}
	return err
}

// parseID reports repo.ErrNotFound for strings that are not ObjectID hex:
// no document can carry such an id.
func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, repo.ErrNotFound
	}
	return oid, nil
}

func byID(id bson.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

func findOne[T any](ctx context.Context, col *mongo.Collection, filter bson.D) (T, error) {
	var result T
	err := col.FindOne(ctx, filter).Decode(&result)
	return result, wrapError(err)
}

func findMany[T any](ctx context.Context, col *mongo.Collection, filter bson.D, opts ...options.Lister[options.FindOptions]) ([]T, error) {
	cursor, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, wrapError(err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func aggregate[T any](ctx context.Context, col *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, wrapError(err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func insertOne(ctx context.Context, col *mongo.Collection, doc any) (bson.ObjectID, error) {
	res, err := col.InsertOne(ctx, doc)
	if err != nil {
		return bson.ObjectID{}, wrapError(err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.ObjectID{}, errors.New("mongodb: inserted id is not an ObjectID")
	}
	return oid, nil
}

func replaceByID(ctx context.Context, col *mongo.Collection, id bson.ObjectID, doc any) error {
	res, err := col.ReplaceOne(ctx, byID(id), doc)
	if err != nil {
		return wrapError(err)
	}
	if res.MatchedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, col *mongo.Collection, id bson.ObjectID) error {
	res, err := col.DeleteOne(ctx, byID(id))
	if err != nil {
		return wrapError(err)
	}
	if res.DeletedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// withCreator sorts the matched documents and populates created_by as
// "creator" with only the user's name and email.
func withCreator(match, sort bson.D) mongo.Pipeline {
	p := mongo.Pipeline{{{Key: "$match", Value: match}}}

	if len(sort) > 0 {
		p = append(p, bson.D{{Key: "$sort", Value: sort}})
	}

	return append(p,
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: ColUsers},
			{Key: "localField", Value: "created_by"},
			{Key: "foreignField", Value: "_id"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$project", Value: bson.D{{Key: "name", Value: 1}, {Key: "email", Value: 1}}}},
			}},
			{Key: "as", Value: "creator"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$creator"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	)
}

// findPopulated returns the single document matching id with its creator.
func findPopulated[T any](ctx context.Context, col *mongo.Collection, id bson.ObjectID) (T, error) {
	var zero T

	docs, err := aggregate[T](ctx, col, withCreator(byID(id), nil))
	if err != nil {
		return zero, err
	}
	if len(docs) == 0 {
		return zero, repo.ErrNotFound
	}
	return docs[0], nil
}
