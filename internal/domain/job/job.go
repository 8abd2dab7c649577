package job

import (
	"errors"
	"strings"
	"time"

	"github.com/geocoder89/alumnihub/internal/domain/patch"
	"github.com/geocoder89/alumnihub/internal/domain/user"
)

var ErrMissingFields = errors.New("job title, company and location are required")

type Job struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary"`
	Description string    `json:"description"`
	CreatorID   string    `json:"-"`
	CreatedBy   *user.Ref `json:"created_by"` // nil once the creator is deleted
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateRequest struct {
	Title       string `json:"title" form:"title"`
	Company     string `json:"company" form:"company"`
	Location    string `json:"location" form:"location"`
	Salary      string `json:"salary" form:"salary" binding:"max=120"`
	Description string `json:"description" form:"description" binding:"max=5000"`
}

// New validates the required fields and builds an unsaved job owned by creatorID.
func New(req CreateRequest, creatorID string, now time.Time) (Job, error) {
	j := Job{
		Title:       strings.TrimSpace(req.Title),
		Company:     strings.TrimSpace(req.Company),
		Location:    strings.TrimSpace(req.Location),
		Salary:      strings.TrimSpace(req.Salary),
		Description: strings.TrimSpace(req.Description),
		CreatorID:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if j.Title == "" || j.Company == "" || j.Location == "" {
		return Job{}, ErrMissingFields
	}

	return j, nil
}

type Patch struct {
	Title       *string `json:"title" form:"title"`
	Company     *string `json:"company" form:"company"`
	Location    *string `json:"location" form:"location"`
	Salary      *string `json:"salary" form:"salary" binding:"omitempty,max=120"`
	Description *string `json:"description" form:"description" binding:"omitempty,max=5000"`
}

func (p Patch) Apply(j Job, now time.Time) Job {
	patch.SetNonBlank(&j.Title, p.Title)
	patch.SetNonBlank(&j.Company, p.Company)
	patch.SetNonBlank(&j.Location, p.Location)
	patch.SetPresent(&j.Salary, p.Salary)
	patch.SetPresent(&j.Description, p.Description)

	j.UpdatedAt = now
	return j
}
