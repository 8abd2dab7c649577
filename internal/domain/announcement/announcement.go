package announcement

import (
	"errors"
	"strings"
	"time"

	"github.com/geocoder89/alumnihub/internal/domain/patch"
	"github.com/geocoder89/alumnihub/internal/domain/user"
)

const DefaultCategory = "Updates"

var ErrMissingFields = errors.New("announcement title and content are required")

type Announcement struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatorID string    `json:"-"`
	CreatedBy *user.Ref `json:"created_by"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateRequest struct {
	Title    string `json:"title" form:"title"`
	Content  string `json:"content" form:"content" binding:"max=10000"`
	Category string `json:"category" form:"category" binding:"max=60"`
}

func New(req CreateRequest, creatorID string, now time.Time) (Announcement, error) {
	a := Announcement{
		Title:     strings.TrimSpace(req.Title),
		Content:   strings.TrimSpace(req.Content),
		Category:  strings.TrimSpace(req.Category),
		CreatorID: creatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if a.Title == "" || a.Content == "" {
		return Announcement{}, ErrMissingFields
	}

	if a.Category == "" {
		a.Category = DefaultCategory
	}

	return a, nil
}

type Patch struct {
	Title    *string `json:"title" form:"title"`
	Content  *string `json:"content" form:"content" binding:"omitempty,max=10000"`
	Category *string `json:"category" form:"category" binding:"omitempty,max=60"`
}

func (p Patch) Apply(a Announcement, now time.Time) Announcement {
	patch.SetNonBlank(&a.Title, p.Title)
	patch.SetNonBlank(&a.Content, p.Content)
	patch.SetNonBlank(&a.Category, p.Category)

	a.UpdatedAt = now
	return a
}
