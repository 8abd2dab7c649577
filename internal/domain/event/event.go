package event

import (
	"errors"
	"strings"
	"time"

	"github.com/geocoder89/alumnihub/internal/domain/patch"
	"github.com/geocoder89/alumnihub/internal/domain/user"
)

var (
	ErrMissingFields = errors.New("event title, date and location are required")
	ErrInvalidDate   = errors.New("date must be an RFC 3339 timestamp or YYYY-MM-DD")
)

type Event struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Attendees   int       `json:"attendees"`
	CreatorID   string    `json:"-"`
	CreatedBy   *user.Ref `json:"created_by"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description" binding:"max=5000"`
	Date        string `json:"date" form:"date"`
	Location    string `json:"location" form:"location"`
	Attendees   int    `json:"attendees" form:"attendees" binding:"min=0"`
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate accepts the date shapes browsers and the seeder send.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, ErrInvalidDate
}

func New(req CreateRequest, creatorID string, now time.Time) (Event, error) {
	title := strings.TrimSpace(req.Title)
	location := strings.TrimSpace(req.Location)
	rawDate := strings.TrimSpace(req.Date)

	if title == "" || rawDate == "" || location == "" {
		return Event{}, ErrMissingFields
	}

	date, err := ParseDate(rawDate)
	if err != nil {
		return Event{}, err
	}

	return Event{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Date:        date,
		Location:    location,
		Attendees:   req.Attendees,
		CreatorID:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

type Patch struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description" binding:"omitempty,max=5000"`
	Date        *string `json:"date" form:"date"`
	Location    *string `json:"location" form:"location"`
	Attendees   *int    `json:"attendees" form:"attendees" binding:"omitempty,min=0"`
}

// Apply returns ErrInvalidDate when a non-empty date does not parse.
func (p Patch) Apply(e Event, now time.Time) (Event, error) {
	if p.Date != nil && strings.TrimSpace(*p.Date) != "" {
		date, err := ParseDate(*p.Date)
		if err != nil {
			return e, err
		}
		e.Date = date
	}

	patch.SetNonBlank(&e.Title, p.Title)
	patch.SetPresent(&e.Description, p.Description)
	patch.SetNonBlank(&e.Location, p.Location)
	patch.SetAny(&e.Attendees, p.Attendees)

	e.UpdatedAt = now
	return e, nil
}
