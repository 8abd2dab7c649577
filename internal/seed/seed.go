// Package seed loads the demo accounts and sample content used for local
// development and manual testing.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/geocoder89/alumnihub/internal/domain/job"
	"github.com/geocoder89/alumnihub/internal/domain/user"
	"github.com/geocoder89/alumnihub/internal/repo"
	"github.com/geocoder89/alumnihub/internal/security"
)

const AdminEmail = "admin@alumni.com"

type UsersStore interface {
	GetByEmail(ctx context.Context, email string) (user.User, error)
	Create(ctx context.Context, u user.User) (user.User, error)
	Save(ctx context.Context, u user.User) (user.User, error)
	List(ctx context.Context, filter user.ListFilter) ([]user.User, error)
}

type JobsStore interface {
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	Create(ctx context.Context, j job.Job) (job.Job, error)
}

// Account is a demo login. Password is plaintext until saved.
type Account struct {
	Name           string
	Email          string
	Password       string
	Role           user.Role
	Status         user.Status
	GraduationYear int
	Company        string
	Location       string
}

var Accounts = []Account{
	{Name: "Admin User", Email: AdminEmail, Password: "admin123", Role: user.RoleAdmin, Status: user.StatusApproved, GraduationYear: 2020, Company: "Alumni System", Location: "San Francisco, CA"},
	{Name: "Alumni User", Email: "alumni@alumni.com", Password: "alumni123", Role: user.RoleAlumni, Status: user.StatusApproved, GraduationYear: 2022, Company: "TechCorp", Location: "New York, NY"},
	{Name: "Pending User", Email: "pending@alumni.com", Password: "pending123", Role: user.RoleAlumni, Status: user.StatusPending, GraduationYear: 2023, Company: "Startup Co", Location: "Austin, TX"},
}

var SampleJobs = []job.CreateRequest{
	{Title: "Frontend Developer", Company: "TechCorp", Location: "San Francisco, CA", Salary: "$85,000 - $110,000"},
	{Title: "Backend Engineer", Company: "CloudNova", Location: "New York, NY", Salary: "$95,000 - $130,000"},
	{Title: "Full Stack Developer", Company: "InnovateX", Location: "Remote", Salary: "$100,000 - $140,000"},
}

type Seeder struct {
	users UsersStore
	jobs  JobsStore
	hash  security.Hasher
	log   *slog.Logger
	now   func() time.Time
}

func New(users UsersStore, jobs JobsStore, log *slog.Logger) *Seeder {
	if log == nil {
		log = slog.Default()
	}

	return &Seeder{
		users: users,
		jobs:  jobs,
		hash:  security.HashPassword,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Users creates the demo accounts, or resets them (password included) when
// they already exist.
func (s *Seeder) Users(ctx context.Context) error {
	for _, a := range Accounts {
		if err := s.upsert(ctx, a); err != nil {
			return fmt.Errorf("seed %s: %w", a.Email, err)
		}
	}

	return nil
}

func (s *Seeder) upsert(ctx context.Context, a Account) error {
	now := s.now()

	existing, err := s.users.GetByEmail(ctx, a.Email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return err
	}

	var prev *user.User
	next := user.User{Email: user.NormalizeEmail(a.Email), SavedJobs: []string{}, CreatedAt: now}

	if err == nil {
		prev = &existing
		next = existing
	}

	year := a.GraduationYear
	next.Name = a.Name
	next.Password = a.Password
	next.Role = a.Role
	next.Status = a.Status
	next.GraduationYear = &year
	next.Company = a.Company
	next.Location = a.Location
	next.UpdatedAt = now

	next, err = security.HashIfChanged(prev, next, s.hash)
	if err != nil {
		return err
	}

	if prev == nil {
		if _, err := s.users.Create(ctx, next); err != nil {
			return err
		}
		s.log.InfoContext(ctx, "seed_user_created", "email", a.Email, "role", a.Role)
		return nil
	}

	if _, err := s.users.Save(ctx, next); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "seed_user_updated", "email", a.Email, "role", a.Role)
	return nil
}

// Jobs inserts the sample jobs owned by the admin account, skipping titles
// that already exist. It returns how many were created.
func (s *Seeder) Jobs(ctx context.Context) (int, error) {
	admin, err := s.users.GetByEmail(ctx, AdminEmail)
	if errors.Is(err, repo.ErrNotFound) {
		return 0, errors.New("admin account not found, run the users seed first")
	}
	if err != nil {
		return 0, err
	}

	created := 0

	for _, req := range SampleJobs {
		exists, err := s.jobs.ExistsByTitle(ctx, req.Title)
		if err != nil {
			return created, err
		}

		if exists {
			s.log.InfoContext(ctx, "seed_job_skipped", "title", req.Title)
			continue
		}

		j, err := job.New(req, admin.ID, s.now())
		if err != nil {
			return created, err
		}

		if _, err := s.jobs.Create(ctx, j); err != nil {
			return created, fmt.Errorf("seed job %q: %w", req.Title, err)
		}

		created++
		s.log.InfoContext(ctx, "seed_job_created", "title", req.Title)
	}

	return created, nil
}

// Photos gives approved alumni without a profile photo a generated avatar.
func (s *Seeder) Photos(ctx context.Context) (int, error) {
	alumni, err := s.users.List(ctx, user.ListFilter{
		Role:   user.RoleAlumni,
		Status: user.StatusApproved,
		Sort:   user.SortByName,
	})
	if err != nil {
		return 0, err
	}

	updated := 0

	for _, u := range alumni {
		if u.ProfilePhotoURL != "" {
			continue
		}

		next := u
		next.ProfilePhotoURL = AvatarURL(u.Name)
		next.UpdatedAt = s.now()

		next, err = security.HashIfChanged(&u, next, s.hash)
		if err != nil {
			return updated, err
		}

		if _, err := s.users.Save(ctx, next); err != nil {
			return updated, err
		}

		updated++
		s.log.InfoContext(ctx, "seed_photo_set", "user_id", u.ID, "url", next.ProfilePhotoURL)
	}

	return updated, nil
}

// All runs the users seed and then the jobs seed.
func (s *Seeder) All(ctx context.Context) error {
	if err := s.Users(ctx); err != nil {
		return err
	}

	_, err := s.Jobs(ctx)
	return err
}

// AvatarURL returns a ui-avatars image for name.
func AvatarURL(name string) string {
	if strings.TrimSpace(name) == "" {
		name = "Alumni"
	}

	escaped := strings.ReplaceAll(url.QueryEscape(name), "+", "%20")

	return "https://ui-avatars.com/api/?name=" + escaped + "&background=0D8ABC&color=fff&rounded=true&size=256"
}
