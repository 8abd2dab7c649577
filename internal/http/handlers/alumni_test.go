package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/geocoder89/alumnihub/internal/domain/user"
	"github.com/geocoder89/alumnihub/internal/http/handlers"
	"github.com/geocoder89/alumnihub/internal/repo"
)

// Fake repository implementation of the handlers.UsersRepo interface

type fakeUsersRepo struct {
	users   map[string]user.User
	saved   []user.User
	deleted []string
	listFn  func(ctx context.Context, filter user.ListFilter) ([]user.User, error)
	statsFn func(ctx context.Context) (user.Stats, error)
	saveErr error
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) Save(ctx context.Context, u user.User) (user.User, error) {
	if f.saveErr != nil {
		return user.User{}, f.saveErr
	}
	f.saved = append(f.saved, u)
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return repo.ErrNotFound
	}
	f.deleted = append(f.deleted, id)
	delete(f.users, id)
	return nil
}

func (f *fakeUsersRepo) List(ctx context.Context, filter user.ListFilter) ([]user.User, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return []user.User{}, nil
}

func (f *fakeUsersRepo) Stats(ctx context.Context) (user.Stats, error) {
	if f.statsFn != nil {
		return f.statsFn(ctx)
	}
	return user.Stats{}, nil
}

func newFakeUsers() *fakeUsersRepo {
	return &fakeUsersRepo{users: map[string]user.User{
		"alum":    {ID: "alum", Name: "Jane", Email: "jane@example.com", Password: "$2a$10$hash", Role: user.RoleAlumni, Status: user.StatusPending, Company: "Acme", Location: "Austin, TX"},
		"student": {ID: "student", Name: "Sam", Role: user.RoleStudent, Status: user.StatusApproved},
		"admin":   {ID: "admin", Name: "Ada", Role: user.RoleAdmin, Status: user.StatusApproved},
	}}
}

func TestAlumniTransitions(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		route       string
		id          string
		wantStatus  int
		wantMessage string
		wantData    bool
		wantState   user.Status
	}{
		{"approve", "/alumni/approve/alum", "approve", "alum", http.StatusOK, "Alumni approved successfully", true, user.StatusApproved},
		{"reject", "/alumni/reject/alum", "reject", "alum", http.StatusOK, "Alumni rejected successfully", false, user.StatusRejected},
		{"approve student", "/alumni/approve/student", "approve", "student", http.StatusBadRequest, "User is not an alumni", false, ""},
		{"reject admin", "/alumni/reject/admin", "reject", "admin", http.StatusBadRequest, "User is not an alumni", false, ""},
		{"approve missing", "/alumni/approve/ghost", "approve", "ghost", http.StatusNotFound, "User not found", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newFakeUsers()
			h := handlers.NewAlumniHandler(users)

			handler := h.Approve
			if tt.route == "reject" {
				handler = h.Reject
			}
			r := setupRouter(http.MethodPut, "/alumni/"+tt.route+"/:id", handler)

			w, env := doJSON(t, r, http.MethodPut, tt.path, "")

			if w.Code != tt.wantStatus {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatus, w.Body.String())
			}
			if env.Message != tt.wantMessage {
				t.Fatalf("got message %q, want %q", env.Message, tt.wantMessage)
			}
			if (len(env.Data) != 0) != tt.wantData {
				t.Fatalf("data presence mismatch, body=%s", w.Body.String())
			}
			if tt.wantState != "" {
				if got := users.users[tt.id].Status; got != tt.wantState {
					t.Fatalf("stored status = %s, want %s", got, tt.wantState)
				}
				if users.users[tt.id].Password != "$2a$10$hash" {
					t.Fatalf("unchanged password must not be re-hashed")
				}
			} else if len(users.saved) != 0 {
				t.Fatalf("nothing should be saved on failure")
			}
		})
	}
}

func TestAlumniUpdate(t *testing.T) {
	t.Run("only location", func(t *testing.T) {
		users := newFakeUsers()
		h := handlers.NewAlumniHandler(users)
		r := setupRouter(http.MethodPut, "/alumni/:id", h.Update)

		w, env := doJSON(t, r, http.MethodPut, "/alumni/alum", `{"location":"Denver, CO"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusOK, w.Body.String())
		}

		var got user.User
		if err := json.Unmarshal(env.Data, &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Name != "Jane" || got.Email != "jane@example.com" || got.Location != "Denver, CO" || got.Company != "Acme" {
			t.Fatalf("unexpected update result %+v", got)
		}
	})

	t.Run("explicit empty company clears", func(t *testing.T) {
		users := newFakeUsers()
		h := handlers.NewAlumniHandler(users)
		r := setupRouter(http.MethodPut, "/alumni/:id", h.Update)

		w, _ := doJSON(t, r, http.MethodPut, "/alumni/alum", `{"company":""}`)

		if w.Code != http.StatusOK {
			t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusOK, w.Body.String())
		}
		if users.users["alum"].Company != "" {
			t.Fatalf("company should be cleared, got %q", users.users["alum"].Company)
		}
	})

	t.Run("graduation year as string", func(t *testing.T) {
		users := newFakeUsers()
		h := handlers.NewAlumniHandler(users)
		r := setupRouter(http.MethodPut, "/alumni/:id", h.Update)

		w, _ := doJSON(t, r, http.MethodPut, "/alumni/alum", `{"graduation_year":"2015"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusOK, w.Body.String())
		}
		if got := users.users["alum"].GraduationYear; got == nil || *got != 2015 {
			t.Fatalf("graduation year = %v, want 2015", got)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := newFakeUsers()
		users.saveErr = repo.ErrDuplicate
		h := handlers.NewAlumniHandler(users)
		r := setupRouter(http.MethodPut, "/alumni/:id", h.Update)

		w, env := doJSON(t, r, http.MethodPut, "/alumni/alum", `{"email":"taken@example.com"}`)

		if w.Code != http.StatusBadRequest || env.Message != "User already exists with this email" {
			t.Fatalf("got %d %q", w.Code, env.Message)
		}
	})

	t.Run("missing", func(t *testing.T) {
		h := handlers.NewAlumniHandler(newFakeUsers())
		r := setupRouter(http.MethodPut, "/alumni/:id", h.Update)

		w, env := doJSON(t, r, http.MethodPut, "/alumni/ghost", `{"name":"X"}`)

		if w.Code != http.StatusNotFound || env.Message != "User not found" {
			t.Fatalf("got %d %q", w.Code, env.Message)
		}
	})
}

func TestAlumniDelete(t *testing.T) {
	tests := []struct {
		id          string
		wantStatus  int
		wantMessage string
	}{
		{"alum", http.StatusOK, "Alumni deleted successfully"},
		{"student", http.StatusBadRequest, "User is not an alumni"},
		{"ghost", http.StatusNotFound, "User not found"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			users := newFakeUsers()
			h := handlers.NewAlumniHandler(users)
			r := setupRouter(http.MethodDelete, "/alumni/:id", h.Delete)

			w, env := doJSON(t, r, http.MethodDelete, "/alumni/"+tt.id, "")

			if w.Code != tt.wantStatus {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatus, w.Body.String())
			}
			if env.Message != tt.wantMessage {
				t.Fatalf("got message %q, want %q", env.Message, tt.wantMessage)
			}
			if len(env.Data) != 0 {
				t.Fatalf("delete must not return data, body=%s", w.Body.String())
			}
			if tt.wantStatus == http.StatusOK && len(users.deleted) != 1 {
				t.Fatalf("expected one delete, got %v", users.deleted)
			}
		})
	}
}

func TestAlumniListAndStats(t *testing.T) {
	var seen []user.ListFilter
	users := newFakeUsers()
	users.listFn = func(ctx context.Context, filter user.ListFilter) ([]user.User, error) {
		seen = append(seen, filter)
		return []user.User{}, nil
	}
	users.statsFn = func(ctx context.Context) (user.Stats, error) {
		return user.Stats{NetworkConnections: 2, ProfileViews: 2, SavedJobs: 4}, nil
	}

	h := handlers.NewAlumniHandler(users)

	w, env := doJSON(t, setupRouter(http.MethodGet, "/alumni", h.List), http.MethodGet, "/alumni", "")
	if w.Code != http.StatusOK || env.Message != "Alumni fetched successfully" || string(env.Data) != "[]" {
		t.Fatalf("list: %d %s", w.Code, w.Body.String())
	}

	w, env = doJSON(t, setupRouter(http.MethodGet, "/alumni/pending", h.Pending), http.MethodGet, "/alumni/pending", "")
	if w.Code != http.StatusOK || env.Message != "Pending alumni fetched successfully" {
		t.Fatalf("pending: %d %s", w.Code, w.Body.String())
	}

	want := []user.ListFilter{
		{Role: user.RoleAlumni, Status: user.StatusApproved, Sort: user.SortByName},
		{Role: user.RoleAlumni, Status: user.StatusPending, Sort: user.SortByNewest},
	}
	if len(seen) != 2 || seen[0] != want[0] || seen[1] != want[1] {
		t.Fatalf("filters = %+v, want %+v", seen, want)
	}

	w, env = doJSON(t, setupRouter(http.MethodGet, "/alumni/stats", h.Stats), http.MethodGet, "/alumni/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("stats: %d %s", w.Code, w.Body.String())
	}
	if string(env.Data) != `{"networkConnections":2,"profileViews":2,"savedJobs":4}` {
		t.Fatalf("stats data = %s", env.Data)
	}

	users.statsFn = func(ctx context.Context) (user.Stats, error) { return user.Stats{}, errors.New("boom") }
	w, env = doJSON(t, setupRouter(http.MethodGet, "/alumni/stats", h.Stats), http.MethodGet, "/alumni/stats", "")
	if w.Code != http.StatusInternalServerError || env.Message != "Server error" {
		t.Fatalf("stats failure: %d %s", w.Code, w.Body.String())
	}
}
