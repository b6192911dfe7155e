package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
)

// fakeBackend is an in-memory REST backend with one account
// (a@x.io / pw) and token "tok".
type fakeBackend struct {
	mu       sync.Mutex
	apps     map[int64]models.Application
	order    []int64
	nextID   int64
	expired  bool
	payloads []map[string]string
}

func newFakeBackend(t *testing.T, seed ...models.Application) (*fakeBackend, *httptest.Server) {
	t.Helper()
	b := &fakeBackend{apps: map[int64]models.Application{}, nextID: 100}
	for _, a := range seed {
		b.apps[a.ID] = a
		b.order = append(b.order, a.ID)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	})
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email == "taken@x.io" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "REGISTER_USER_ALREADY_EXISTS"})
			return
		}
		writeJSON(w, http.StatusCreated, models.User{ID: 2, Email: req.Email, Name: req.Name})
	})
	mux.HandleFunc("POST /auth/jwt/login", func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("password") != "pw" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "LOGIN_BAD_CREDENTIALS"})
			return
		}
		b.mu.Lock()
		b.expired = false
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, models.LoginResponse{AccessToken: "tok", TokenType: "bearer"})
	})
	mux.HandleFunc("GET /auth/me", b.authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.User{ID: 1, Email: "a@x.io", Name: "Ann", IsActive: true})
	}))
	mux.HandleFunc("GET /applications/", b.authed(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := make([]models.Application, 0, len(b.order))
		for _, id := range b.order {
			list = append(list, b.apps[id])
		}
		writeJSON(w, http.StatusOK, list)
	}))
	mux.HandleFunc("POST /applications/", b.authed(func(w http.ResponseWriter, r *http.Request) {
		p := b.readPayload(r)
		b.mu.Lock()
		defer b.mu.Unlock()
		b.nextID++
		a := models.Application{ID: b.nextID, UserID: 1}
		apply(&a, p)
		b.apps[a.ID] = a
		b.order = append(b.order, a.ID)
		writeJSON(w, http.StatusCreated, a)
	}))
	mux.HandleFunc("GET /applications/{id}", b.authed(b.withApp(func(w http.ResponseWriter, r *http.Request, a models.Application) {
		writeJSON(w, http.StatusOK, a)
	})))
	mux.HandleFunc("PUT /applications/{id}", b.authed(b.withApp(func(w http.ResponseWriter, r *http.Request, a models.Application) {
		p := b.readPayload(r)
		b.mu.Lock()
		defer b.mu.Unlock()
		apply(&a, p)
		a.UpdatedAt = "2024-06-01T10:00:00"
		b.apps[a.ID] = a
		writeJSON(w, http.StatusOK, a)
	})))
	mux.HandleFunc("DELETE /applications/{id}", b.authed(b.withApp(func(w http.ResponseWriter, r *http.Request, a models.Application) {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.apps, a.ID)
		for i, id := range b.order {
			if id == a.ID {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
		w.WriteHeader(http.StatusNoContent)
	})))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return b, srv
}

func (b *fakeBackend) expire() {
	b.mu.Lock()
	b.expired = true
	b.mu.Unlock()
}

func (b *fakeBackend) lastPayload() map[string]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.payloads) == 0 {
		return nil
	}
	return b.payloads[len(b.payloads)-1]
}

func (b *fakeBackend) get(id int64) (models.Application, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.apps[id]
	return a, ok
}

func (b *fakeBackend) authed(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		expired := b.expired
		b.mu.Unlock()
		if expired || r.Header.Get("Authorization") != "Bearer tok" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Unauthorized"})
			return
		}
		h(w, r)
	}
}

func (b *fakeBackend) withApp(h func(http.ResponseWriter, *http.Request, models.Application)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		a, ok := b.get(id)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Application not found"})
			return
		}
		h(w, r, a)
	}
}

func (b *fakeBackend) readPayload(r *http.Request) map[string]string {
	data, _ := io.ReadAll(r.Body)
	p := map[string]string{}
	_ = json.Unmarshal(data, &p)
	b.mu.Lock()
	b.payloads = append(b.payloads, p)
	b.mu.Unlock()
	return p
}

func apply(a *models.Application, p map[string]string) {
	for k, v := range p {
		switch k {
		case models.FieldCompanyName:
			a.CompanyName = v
		case models.FieldRole:
			a.Role = v
		case models.FieldStatus:
			a.Status = models.Status(v)
		case models.FieldCompanySize:
			a.CompanySize = v
		case models.FieldJobURL:
			a.JobURL = v
		case models.FieldDateApplied:
			a.DateApplied = v
		case models.FieldNotes:
			a.Notes = v
		case models.FieldLocation:
			a.Location = v
		case models.FieldRecruiter:
			a.Recruiter = v
		}
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
