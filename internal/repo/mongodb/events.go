package mongodb

import (
	"context"

	"github.com/geocoder89/alumnihub/internal/domain/event"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type EventsRepo struct {
	store *Store
}

func NewEventsRepo(store *Store) *EventsRepo {
	return &EventsRepo{store: store}
}

func (r *EventsRepo) col() *mongo.Collection {
	return r.store.col(ColEvents)
}

// List returns every event, soonest first, with created_by populated.
func (r *EventsRepo) List(ctx context.Context) ([]event.Event, error) {
	sort := bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}}

	var docs []eventDoc
	err := r.store.observe("events.list", func() error {
		var err error
		docs, err = aggregate[eventDoc](ctx, r.col(), withCreator(bson.D{}, sort))
		return err
	})
	if err != nil {
		return nil, err
	}

	return mapDocs(docs, eventDoc.toDomain), nil
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (event.Event, error) {
	oid, err := parseID(id)
	if err != nil {
		return event.Event{}, err
	}

	var doc eventDoc
	err = r.store.observe("events.get_by_id", func() error {
		var err error
		doc, err = findPopulated[eventDoc](ctx, r.col(), oid)
		return err
	})
	if err != nil {
		return event.Event{}, err
	}
	return doc.toDomain(), nil
}

// Create inserts the record and returns the stored record with its creator populated.
func (r *EventsRepo) Create(ctx context.Context, e event.Event) (event.Event, error) {
	doc, err := newEventDoc(e)
	if err != nil {
		return event.Event{}, err
	}

	var id bson.ObjectID
	err = r.store.observe("events.create", func() error {
		var err error
		id, err = insertOne(ctx, r.col(), doc)
		return err
	})
	if err != nil {
		return event.Event{}, err
	}

	return r.GetByID(ctx, id.Hex())
}

func (r *EventsRepo) Save(ctx context.Context, e event.Event) (event.Event, error) {
	oid, err := parseID(e.ID)
	if err != nil {
		return event.Event{}, err
	}

	doc, err := newEventDoc(e)
	if err != nil {
		return event.Event{}, err
	}
	doc.ID = oid

	err = r.store.observe("events.save", func() error {
		return replaceByID(ctx, r.col(), oid, doc)
	})
	if err != nil {
		return event.Event{}, err
	}

	return r.GetByID(ctx, e.ID)
}

func (r *EventsRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	return r.store.observe("events.delete", func() error {
		return deleteByID(ctx, r.col(), oid)
	})
}
