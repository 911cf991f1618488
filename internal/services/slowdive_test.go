package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/slowdive/internal/models"
	"github.com/desertthunder/slowdive/internal/shared"
)

func newSessionStore(t *testing.T, session *models.Session) *shared.SessionStore {
	t.Helper()

	store, err := shared.NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("failed to create session store: %v", err)
	}
	if session != nil {
		if err := store.Save(*session); err != nil {
			t.Fatalf("failed to seed session: %v", err)
		}
	}
	return store
}

func TestSlowdiveService(t *testing.T) {
	ctx := context.Background()

	t.Run("ListAlbums", func(t *testing.T) {
		t.Run("Builds Query And Decodes Page", func(t *testing.T) {
			var gotQuery string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.RawQuery
				json.NewEncoder(w).Encode(models.AlbumPage{
					Albums:  []models.Album{{ID: 1, Title: "Souvlaki"}},
					Total:   1,
					HasMore: false,
				})
			}))
			defer server.Close()

			store := newSessionStore(t, &models.Session{UserID: 7, Username: "nick", Token: "tok"})
			srv := NewSlowdiveService(server.URL, server.Client(), store)

			page, err := srv.ListAlbums(ctx, AlbumListOptions{Limit: 20, Offset: 40, Genre: "shoegaze"})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(page.Albums) != 1 || page.Albums[0].Title != "Souvlaki" {
				t.Errorf("unexpected page contents: %+v", page)
			}
			for _, want := range []string{"limit=20", "offset=40", "genre=shoegaze", "user_id=7"} {
				if !strings.Contains(gotQuery, want) {
					t.Errorf("expected query to contain %s, got %s", want, gotQuery)
				}
			}
		})

		t.Run("Omits User When Signed Out", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Has("user_id") {
					t.Error("unexpected user_id for anonymous request")
				}
				json.NewEncoder(w).Encode(models.AlbumPage{HasMore: false})
			}))
			defer server.Close()

			srv := NewSlowdiveService(server.URL, server.Client(), newSessionStore(t, nil))
			if _, err := srv.ListAlbums(ctx, AlbumListOptions{}); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	})

	t.Run("GetAlbum", func(t *testing.T) {
		t.Run("Maps 404 To Album Sentinel", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer server.Close()

			srv := NewSlowdiveService(server.URL, server.Client(), newSessionStore(t, nil))
			if _, err := srv.GetAlbum(ctx, 99); !errors.Is(err, shared.ErrAlbumNotFound) {
				t.Errorf("expected ErrAlbumNotFound, got %v", err)
			}
		})
	})

	t.Run("ToggleLike", func(t *testing.T) {
		t.Run("Signed Out Issues No Request", func(t *testing.T) {
			requests := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests++
			}))
			defer server.Close()

			srv := NewSlowdiveService(server.URL, server.Client(), newSessionStore(t, nil))

			_, err := srv.ToggleLike(ctx, 1)
			if !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("expected ErrNotAuthenticated, got %v", err)
			}
			if requests != 0 {
				t.Errorf("expected no network traffic, saw %d requests", requests)
			}
		})

		t.Run("Server Status Is Authoritative", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var body map[string]int
				json.NewDecoder(r.Body).Decode(&body)
				if body["user_id"] != 7 || body["album_id"] != 42 {
					t.Errorf("unexpected payload: %v", body)
				}
				if c, err := r.Cookie("session_token"); err != nil || c.Value != "tok" {
					t.Error("expected session cookie on like request")
				}
				json.NewEncoder(w).Encode(map[string]string{"status": "unliked"})
			}))
			defer server.Close()

			store := newSessionStore(t, &models.Session{UserID: 7, Token: "tok"})
			srv := NewSlowdiveService(server.URL, server.Client(), store)

			liked, err := srv.ToggleLike(ctx, 42)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if liked {
				t.Error("expected server's unliked state to win")
			}
		})
	})

	t.Run("Auth", func(t *testing.T) {
		t.Run("Login Captures Session Cookie", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.SetCookie(w, &http.Cookie{Name: "session_token", Value: "abc123", HttpOnly: true})
				json.NewEncoder(w).Encode(models.Session{UserID: 3, Username: "rachel"})
			}))
			defer server.Close()

			store := newSessionStore(t, nil)
			srv := NewSlowdiveService(server.URL, server.Client(), store)

			session, err := srv.Login(ctx, "rachel", "pw")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if session.Token != "abc123" {
				t.Errorf("expected cookie token captured, got %q", session.Token)
			}
			if cached := store.Current(); cached == nil || cached.Username != "rachel" {
				t.Error("expected session cached in the store")
			}
		})

		t.Run("Login Failure Surfaces Detail", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"})
			}))
			defer server.Close()

			srv := NewSlowdiveService(server.URL, server.Client(), newSessionStore(t, nil))

			_, err := srv.Login(ctx, "rachel", "wrong")
			if !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed, got %v", err)
			}
			if err == nil || !strings.Contains(err.Error(), "Invalid credentials") {
				t.Errorf("expected backend detail in error, got %v", err)
			}
		})

		t.Run("Logout Clears Cache Even When Backend Fails", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer server.Close()

			store := newSessionStore(t, &models.Session{UserID: 1, Token: "tok"})
			srv := NewSlowdiveService(server.URL, server.Client(), store)

			if err := srv.Logout(ctx); err == nil {
				t.Error("expected the backend failure to surface")
			}
			if store.Current() != nil {
				t.Error("expected local session cleared regardless")
			}
		})
	})

	t.Run("Settings", func(t *testing.T) {
		t.Run("401 Maps To Not Authenticated", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer server.Close()

			srv := NewSlowdiveService(server.URL, server.Client(), newSessionStore(t, nil))
			if _, err := srv.GetSettings(ctx); !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("expected ErrNotAuthenticated, got %v", err)
			}
		})

		t.Run("Put Sends Full Object", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPut {
					t.Errorf("expected PUT, got %s", r.Method)
				}
				var settings models.UserSettings
				json.NewDecoder(r.Body).Decode(&settings)
				if !settings.CollectionMode || settings.ValuationMode {
					t.Errorf("unexpected payload: %+v", settings)
				}
				json.NewEncoder(w).Encode(settings)
			}))
			defer server.Close()

			store := newSessionStore(t, &models.Session{UserID: 1, Token: "tok"})
			srv := NewSlowdiveService(server.URL, server.Client(), store)

			stored, err := srv.PutSettings(ctx, models.UserSettings{CollectionMode: true})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !stored.CollectionMode {
				t.Error("expected stored settings echoed back")
			}
		})
	})

	t.Run("Collection", func(t *testing.T) {
		t.Run("Add Splits Combined Title", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var body map[string]any
				json.NewDecoder(r.Body).Decode(&body)
				if body["artist"] != "Slowdive" || body["title"] != "Souvlaki" {
					t.Errorf("expected split artist/title, got %v", body)
				}
				if body["format"] != "Vinyl, LP" {
					t.Errorf("expected joined formats, got %v", body["format"])
				}
				json.NewEncoder(w).Encode(models.CollectionItem{ID: 5, Title: "Souvlaki", Artist: "Slowdive"})
			}))
			defer server.Close()

			store := newSessionStore(t, &models.Session{UserID: 1, Token: "tok"})
			srv := NewSlowdiveService(server.URL, server.Client(), store)

			item, err := srv.AddCollectionItem(ctx, models.CatalogResult{
				ID:      123,
				Title:   "Slowdive - Souvlaki",
				Formats: []string{"Vinyl", "LP"},
				Labels:  []string{"Creation"},
			})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if item.ID != 5 {
				t.Errorf("expected created item, got %+v", item)
			}
		})

		t.Run("Add Failure Surfaces Backend Detail", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(map[string]string{"detail": "Release already in collection"})
			}))
			defer server.Close()

			store := newSessionStore(t, &models.Session{UserID: 1, Token: "tok"})
			srv := NewSlowdiveService(server.URL, server.Client(), store)

			_, err := srv.AddCollectionItem(ctx, models.CatalogResult{ID: 1, Title: "Slowdive - Souvlaki"})
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
			if err == nil || !strings.Contains(err.Error(), "Release already in collection") {
				t.Errorf("expected detail message preserved, got %v", err)
			}
		})
	})

	t.Run("SearchCatalog", func(t *testing.T) {
		t.Run("Rejects Empty Query", func(t *testing.T) {
			srv := NewSlowdiveService("http://localhost:0", http.DefaultClient, newSessionStore(t, nil))
			if _, err := srv.SearchCatalog(ctx, ""); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})

		t.Run("Decodes Results Envelope", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.URL.Query().Get("q"); got != "souvlaki" {
					t.Errorf("expected escaped query, got %q", got)
				}
				json.NewEncoder(w).Encode(map[string]any{
					"results": []models.CatalogResult{{ID: 1, Title: "Slowdive - Souvlaki", Type: "release"}},
				})
			}))
			defer server.Close()

			store := newSessionStore(t, &models.Session{UserID: 1, Token: "tok"})
			srv := NewSlowdiveService(server.URL, server.Client(), store)

			results, err := srv.SearchCatalog(ctx, "souvlaki")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(results) != 1 || results[0].Type != "release" {
				t.Errorf("unexpected results: %+v", results)
			}
		})
	})
}
