package mongodb

import (
	"fmt"
	"time"

	"github.com/geocoder89/alumnihub/internal/domain/announcement"
	"github.com/geocoder89/alumnihub/internal/domain/event"
	"github.com/geocoder89/alumnihub/internal/domain/job"
	"github.com/geocoder89/alumnihub/internal/domain/user"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type userDoc struct {
	ID              bson.ObjectID   `bson:"_id,omitempty"`
	Name            string          `bson:"name"`
	Email           string          `bson:"email"`
	Password        string          `bson:"password"`
	Role            string          `bson:"role"`
	Status          string          `bson:"status"`
	GraduationYear  *int            `bson:"graduation_year,omitempty"`
	Company         string          `bson:"company"`
	Location        string          `bson:"location"`
	ProfileViews    *int            `bson:"profile_views"`
	SavedJobs       []bson.ObjectID `bson:"saved_jobs"`
	ProfilePhotoURL string          `bson:"profile_photo_url"`
	CreatedAt       time.Time       `bson:"createdAt"`
	UpdatedAt       time.Time       `bson:"updatedAt"`
}

func newUserDoc(u user.User) (userDoc, error) {
	saved := make([]bson.ObjectID, 0, len(u.SavedJobs))
	for _, id := range u.SavedJobs {
		oid, err := bson.ObjectIDFromHex(id)
		if err != nil {
			return userDoc{}, fmt.Errorf("saved job id %q: %w", id, err)
		}
		saved = append(saved, oid)
	}

	views := u.ProfileViews

	return userDoc{
		Name:            u.Name,
		Email:           u.Email,
		Password:        u.Password,
		Role:            string(u.Role),
		Status:          string(u.Status),
		GraduationYear:  u.GraduationYear,
		Company:         u.Company,
		Location:        u.Location,
		ProfileViews:    &views,
		SavedJobs:       saved,
		ProfilePhotoURL: u.ProfilePhotoURL,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}, nil
}

func (d userDoc) toDomain() user.User {
	saved := make([]string, 0, len(d.SavedJobs))
	for _, oid := range d.SavedJobs {
		saved = append(saved, oid.Hex())
	}

	views := 0
	if d.ProfileViews != nil {
		views = *d.ProfileViews
	}

	return user.User{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Email:           d.Email,
		Password:        d.Password,
		Role:            user.Role(d.Role),
		Status:          user.Status(d.Status),
		GraduationYear:  d.GraduationYear,
		Company:         d.Company,
		Location:        d.Location,
		ProfileViews:    views,
		SavedJobs:       saved,
		ProfilePhotoURL: d.ProfilePhotoURL,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// refDoc is the populated created_by user.
type refDoc struct {
	ID    bson.ObjectID `bson:"_id"`
	Name  string        `bson:"name"`
	Email string        `bson:"email"`
}

func (r *refDoc) toRef() *user.Ref {
	if r == nil {
		return nil
	}
	return &user.Ref{ID: r.ID.Hex(), Name: r.Name, Email: r.Email}
}

func creatorID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("creator id %q: %w", id, err)
	}
	return oid, nil
}

type jobDoc struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Title       string        `bson:"title"`
	Company     string        `bson:"company"`
	Location    string        `bson:"location"`
	Salary      string        `bson:"salary"`
	Description string        `bson:"description"`
	CreatedBy   bson.ObjectID `bson:"created_by"`
	Creator     *refDoc       `bson:"creator,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt"`
}

func newJobDoc(j job.Job) (jobDoc, error) {
	creator, err := creatorID(j.CreatorID)
	if err != nil {
		return jobDoc{}, err
	}

	return jobDoc{
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		Salary:      j.Salary,
		Description: j.Description,
		CreatedBy:   creator,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}, nil
}

func (d jobDoc) toDomain() job.Job {
	return job.Job{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Company:     d.Company,
		Location:    d.Location,
		Salary:      d.Salary,
		Description: d.Description,
		CreatorID:   d.CreatedBy.Hex(),
		CreatedBy:   d.Creator.toRef(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type eventDoc struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Title       string        `bson:"title"`
	Description string        `bson:"description"`
	Date        time.Time     `bson:"date"`
	Location    string        `bson:"location"`
	Attendees   int           `bson:"attendees"`
	CreatedBy   bson.ObjectID `bson:"created_by"`
	Creator     *refDoc       `bson:"creator,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt"`
}

func newEventDoc(e event.Event) (eventDoc, error) {
	creator, err := creatorID(e.CreatorID)
	if err != nil {
		return eventDoc{}, err
	}

	return eventDoc{
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		Attendees:   e.Attendees,
		CreatedBy:   creator,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}, nil
}

func (d eventDoc) toDomain() event.Event {
	return event.Event{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Date:        d.Date.UTC(),
		Location:    d.Location,
		Attendees:   d.Attendees,
		CreatorID:   d.CreatedBy.Hex(),
		CreatedBy:   d.Creator.toRef(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type announcementDoc struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Title     string        `bson:"title"`
	Content   string        `bson:"content"`
	Category  string        `bson:"category"`
	CreatedBy bson.ObjectID `bson:"created_by"`
	Creator   *refDoc       `bson:"creator,omitempty"`
	CreatedAt time.Time     `bson:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt"`
}

func newAnnouncementDoc(a announcement.Announcement) (announcementDoc, error) {
	creator, err := creatorID(a.CreatorID)
	if err != nil {
		return announcementDoc{}, err
	}

	return announcementDoc{
		Title:     a.Title,
		Content:   a.Content,
		Category:  a.Category,
		CreatedBy: creator,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}, nil
}

func (d announcementDoc) toDomain() announcement.Announcement {
	return announcement.Announcement{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Content:   d.Content,
		Category:  d.Category,
		CreatorID: d.CreatedBy.Hex(),
		CreatedBy: d.Creator.toRef(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func mapDocs[D any, T any](docs []D, fn func(D) T) []T {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		out = append(out, fn(d))
	}
	return out
}
