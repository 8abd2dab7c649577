package mongodb

import (
	"context"

	"github.com/geocoder89/alumnihub/internal/domain/announcement"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type AnnouncementsRepo struct {
	store *Store
}

func NewAnnouncementsRepo(store *Store) *AnnouncementsRepo {
	return &AnnouncementsRepo{store: store}
}

func (r *AnnouncementsRepo) col() *mongo.Collection {
	return r.store.col(ColAnnouncements)
}

// List returns every announcement, newest first, with created_by populated.
func (r *AnnouncementsRepo) List(ctx context.Context) ([]announcement.Announcement, error) {
	sort := bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

	var docs []announcementDoc
	err := r.store.observe("announcements.list", func() error {
		var err error
		docs, err = aggregate[announcementDoc](ctx, r.col(), withCreator(bson.D{}, sort))
		return err
	})
	if err != nil {
		return nil, err
	}

	return mapDocs(docs, announcementDoc.toDomain), nil
}

func (r *AnnouncementsRepo) GetByID(ctx context.Context, id string) (announcement.Announcement, error) {
	oid, err := parseID(id)
	if err != nil {
		return announcement.Announcement{}, err
	}

	var doc announcementDoc
	err = r.store.observe("announcements.get_by_id", func() error {
		var err error
		doc, err = findPopulated[announcementDoc](ctx, r.col(), oid)
		return err
	})
	if err != nil {
		return announcement.Announcement{}, err
	}
	return doc.toDomain(), nil
}

func (r *AnnouncementsRepo) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	doc, err := newAnnouncementDoc(a)
	if err != nil {
		return announcement.Announcement{}, err
	}

	var id bson.ObjectID
	err = r.store.observe("announcements.create", func() error {
		var err error
		id, err = insertOne(ctx, r.col(), doc)
		return err
	})
	if err != nil {
		return announcement.Announcement{}, err
	}

	return r.GetByID(ctx, id.Hex())
}

func (r *AnnouncementsRepo) Save(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	oid, err := parseID(a.ID)
	if err != nil {
		return announcement.Announcement{}, err
	}

	doc, err := newAnnouncementDoc(a)
	if err != nil {
		return announcement.Announcement{}, err
	}
	doc.ID = oid

	err = r.store.observe("announcements.save", func() error {
		return replaceByID(ctx, r.col(), oid, doc)
	})
	if err != nil {
		return announcement.Announcement{}, err
	}

	return r.GetByID(ctx, a.ID)
}

func (r *AnnouncementsRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	return r.store.observe("announcements.delete", func() error {
		return deleteByID(ctx, r.col(), oid)
	})
}
