package user

import (
	"errors"
	"strings"
	"time"

	"github.com/geocoder89/alumnihub/internal/domain/patch"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleAlumni  Role = "alumni"
	RoleStudent Role = "student"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var ErrNotAlumni = errors.New("user is not an alumni")

type User struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Password        string    `json:"-"` // bcrypt hash once persisted
	Role            Role      `json:"role"`
	Status          Status    `json:"status"`
	GraduationYear  *int      `json:"graduation_year"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	ProfileViews    int       `json:"profile_views"`
	SavedJobs       []string  `json:"saved_jobs"`
	ProfilePhotoURL string    `json:"profile_photo_url"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Ref is the populated form of a created_by back-reference.
type Ref struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Summary is returned from signup.
type Summary struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Status Status `json:"status"`
}

// Session is returned from login.
type Session struct {
	ID              string `json:"_id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Role            Role   `json:"role"`
	Status          Status `json:"status"`
	GraduationYear  *int   `json:"graduation_year"`
	Company         string `json:"company"`
	Location        string `json:"location"`
	ProfilePhotoURL string `json:"profile_photo_url"`
	Token           string `json:"token"`
}

type Stats struct {
	NetworkConnections int64 `json:"networkConnections"`
	ProfileViews       int64 `json:"profileViews"`
	SavedJobs          int64 `json:"savedJobs"`
}

type SortOrder int

const (
	SortByName SortOrder = iota
	SortByNewest
)

type ListFilter struct {
	Role   Role
	Status Status
	Sort   SortOrder
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ResolveRole applies the signup default: anything but "student" is alumni.
func ResolveRole(requested string) Role {
	if requested == string(RoleStudent) {
		return RoleStudent
	}
	return RoleAlumni
}

// InitialStatus is approved for students and pending for alumni.
func InitialStatus(role Role) Status {
	if role == RoleAlumni {
		return StatusPending
	}
	return StatusApproved
}

type SignupInput struct {
	Name           string
	Email          string
	Password       string
	Role           string
	GraduationYear *int
	Company        string
	Location       string
}

// NewFromSignup builds an unsaved user. Password still holds the plaintext
// and must go through security.HashIfChanged before persistence.
func NewFromSignup(in SignupInput, now time.Time) User {
	role := ResolveRole(in.Role)

	return User{
		Name:           strings.TrimSpace(in.Name),
		Email:          NormalizeEmail(in.Email),
		Password:       in.Password,
		Role:           role,
		Status:         InitialStatus(role),
		GraduationYear: in.GraduationYear,
		Company:        strings.TrimSpace(in.Company),
		Location:       strings.TrimSpace(in.Location),
		SavedJobs:      []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (u User) Summary() Summary {
	return Summary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Status: u.Status}
}

func (u User) Session(token string) Session {
	return Session{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Role:            u.Role,
		Status:          u.Status,
		GraduationYear:  u.GraduationYear,
		Company:         u.Company,
		Location:        u.Location,
		ProfilePhotoURL: u.ProfilePhotoURL,
		Token:           token,
	}
}

func (u User) Ref() Ref {
	return Ref{ID: u.ID, Name: u.Name, Email: u.Email}
}

// CanLogin reports whether an authenticated user may receive a session.
// Only alumni are gated on approval.
func (u User) CanLogin() bool {
	return u.Role != RoleAlumni || u.Status == StatusApproved
}

// Transition moves an alumni account to the target status.
func (u User) Transition(to Status, now time.Time) (User, error) {
	if u.Role != RoleAlumni {
		return u, ErrNotAlumni
	}

	u.Status = to
	u.UpdatedAt = now
	return u, nil
}

// Patch is the admin partial update for a user profile.
type Patch struct {
	Name            *string `json:"name" form:"name"`
	Email           *string `json:"email" form:"email"`
	GraduationYear  *Year   `json:"graduation_year" form:"graduation_year" binding:"omitempty,gte=0,lte=3000"`
	Company         *string `json:"company" form:"company"`
	Location        *string `json:"location" form:"location"`
	ProfilePhotoURL *string `json:"profile_photo_url" form:"profile_photo_url"`
}

// Apply overwrites name, email and graduation year only with non-empty
// values; company, location and photo are overwritten whenever present.
func (p Patch) Apply(u User, now time.Time) User {
	patch.SetNonBlank(&u.Name, p.Name)

	if p.Email != nil {
		email := NormalizeEmail(*p.Email)
		patch.SetNonBlank(&u.Email, &email)
	}

	if p.GraduationYear != nil && *p.GraduationYear != 0 {
		u.GraduationYear = p.GraduationYear.IntPtr()
	}

	patch.SetPresent(&u.Company, p.Company)
	patch.SetPresent(&u.Location, p.Location)
	patch.SetPresent(&u.ProfilePhotoURL, p.ProfilePhotoURL)

	u.UpdatedAt = now
	return u
}
