package memory

import (
	"context"
	"testing"
	"time"

	"github.com/geocoder89/alumnihub/internal/domain/announcement"
	"github.com/geocoder89/alumnihub/internal/domain/event"
	"github.com/geocoder89/alumnihub/internal/domain/job"
	"github.com/geocoder89/alumnihub/internal/domain/user"
	"github.com/geocoder89/alumnihub/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alumni(name, email string, status user.Status, at time.Time) user.User {
	year := 2020
	u := user.NewFromSignup(user.SignupInput{Name: name, Email: email, Password: "h", GraduationYear: &year}, at)
	u.Status = status
	return u
}

func TestUsersRepo_UniqueEmail(t *testing.T) {
	store := NewStore()
	users := NewUsersRepo(store)
	ctx := context.Background()
	now := time.Now().UTC()

	a, err := users.Create(ctx, alumni("A", "a@example.com", user.StatusPending, now))
	require.NoError(t, err)
	b, err := users.Create(ctx, alumni("B", "b@example.com", user.StatusPending, now))
	require.NoError(t, err)

	_, err = users.Create(ctx, alumni("A2", "a@example.com", user.StatusPending, now))
	assert.ErrorIs(t, err, repo.ErrDuplicate)

	b.Email = "a@example.com"
	_, err = users.Save(ctx, b)
	assert.ErrorIs(t, err, repo.ErrDuplicate)

	a.Company = "Acme"
	saved, err := users.Save(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, "Acme", saved.Company)

	got, err := users.GetByEmail(ctx, " A@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}

func TestUsersRepo_NotFound(t *testing.T) {
	users := NewUsersRepo(NewStore())
	ctx := context.Background()

	_, err := users.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	_, err = users.Save(ctx, user.User{ID: "missing"})
	assert.ErrorIs(t, err, repo.ErrNotFound)

	assert.ErrorIs(t, users.Delete(ctx, "missing"), repo.ErrNotFound)
}

func TestUsersRepo_ListOrder(t *testing.T) {
	store := NewStore()
	users := NewUsersRepo(store)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, u := range []user.User{
		alumni("Zoe", "zoe@example.com", user.StatusApproved, base),
		alumni("Adam", "adam@example.com", user.StatusApproved, base.Add(time.Hour)),
		alumni("Old", "old@example.com", user.StatusPending, base.Add(2*time.Hour)),
		alumni("New", "new@example.com", user.StatusPending, base.Add(3*time.Hour)),
	} {
		_, err := users.Create(ctx, u)
		require.NoError(t, err, i)
	}

	approved, err := users.List(ctx, user.ListFilter{Role: user.RoleAlumni, Status: user.StatusApproved, Sort: user.SortByName})
	require.NoError(t, err)
	require.Len(t, approved, 2)
	assert.Equal(t, []string{"Adam", "Zoe"}, []string{approved[0].Name, approved[1].Name})

	pending, err := users.List(ctx, user.ListFilter{Role: user.RoleAlumni, Status: user.StatusPending, Sort: user.SortByNewest})
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, []string{"New", "Old"}, []string{pending[0].Name, pending[1].Name})
}

func TestUsersRepo_Stats(t *testing.T) {
	store := NewStore()
	users := NewUsersRepo(store)
	ctx := context.Background()
	now := time.Now().UTC()

	one := alumni("One", "one@example.com", user.StatusApproved, now)
	one.ProfileViews = 2
	one.SavedJobs = []string{"j1"}

	two := alumni("Two", "two@example.com", user.StatusPending, now)
	two.SavedJobs = []string{"j1", "j2", "j3"}

	three := alumni("Three", "three@example.com", user.StatusApproved, now)
	three.SavedJobs = nil

	admin := alumni("Admin", "admin@example.com", user.StatusApproved, now)
	admin.Role = user.RoleAdmin
	admin.ProfileViews = 99

	for _, u := range []user.User{one, two, three, admin} {
		_, err := users.Create(ctx, u)
		require.NoError(t, err)
	}

	stats, err := users.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.Stats{NetworkConnections: 2, ProfileViews: 2, SavedJobs: 4}, stats)
}

func TestContentRepos(t *testing.T) {
	store := NewStore()
	users := NewUsersRepo(store)
	jobs := NewJobsRepo(store)
	events := NewEventsRepo(store)
	announcements := NewAnnouncementsRepo(store)
	ctx := context.Background()
	now := time.Now().UTC()

	admin := alumni("Admin", "admin@example.com", user.StatusApproved, now)
	admin.Role = user.RoleAdmin
	admin, err := users.Create(ctx, admin)
	require.NoError(t, err)

	t.Run("jobs newest first and populated", func(t *testing.T) {
		first, err := job.New(job.CreateRequest{Title: "First", Company: "A", Location: "X"}, admin.ID, now)
		require.NoError(t, err)
		second, err := job.New(job.CreateRequest{Title: "Second", Company: "B", Location: "Y"}, admin.ID, now.Add(time.Minute))
		require.NoError(t, err)

		created, err := jobs.Create(ctx, first)
		require.NoError(t, err)
		require.NotNil(t, created.CreatedBy)
		assert.Equal(t, "admin@example.com", created.CreatedBy.Email)

		_, err = jobs.Create(ctx, second)
		require.NoError(t, err)

		list, err := jobs.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Second", list[0].Title)

		ok, err := jobs.ExistsByTitle(ctx, "First")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("events soonest first", func(t *testing.T) {
		late, err := event.New(event.CreateRequest{Title: "Late", Date: "2031-01-01", Location: "L"}, admin.ID, now)
		require.NoError(t, err)
		early, err := event.New(event.CreateRequest{Title: "Early", Date: "2030-01-01", Location: "L"}, admin.ID, now)
		require.NoError(t, err)

		_, err = events.Create(ctx, late)
		require.NoError(t, err)
		_, err = events.Create(ctx, early)
		require.NoError(t, err)

		list, err := events.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Early", list[0].Title)
	})

	t.Run("announcement save and delete", func(t *testing.T) {
		a, err := announcement.New(announcement.CreateRequest{Title: "T", Content: "C"}, admin.ID, now)
		require.NoError(t, err)

		created, err := announcements.Create(ctx, a)
		require.NoError(t, err)

		created.Category = "Events"
		saved, err := announcements.Save(ctx, created)
		require.NoError(t, err)
		assert.Equal(t, "Events", saved.Category)

		require.NoError(t, announcements.Delete(ctx, created.ID))
		_, err = announcements.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, repo.ErrNotFound)
	})

	t.Run("creator deleted leaves nil created_by", func(t *testing.T) {
		require.NoError(t, users.Delete(ctx, admin.ID))

		list, err := jobs.List(ctx)
		require.NoError(t, err)
		for _, j := range list {
			assert.Nil(t, j.CreatedBy)
			assert.Equal(t, admin.ID, j.CreatorID)
		}
	})
}
