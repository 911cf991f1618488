package ui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/slowdive/internal/models"
	"github.com/desertthunder/slowdive/internal/shared"
	tu "github.com/desertthunder/slowdive/internal/testing"
)

// testStore builds a session store, optionally pre-populated with an identity.
func testStore(t *testing.T, session *models.Session) *shared.SessionStore {
	t.Helper()

	store, err := shared.NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("failed to create session store: %v", err)
	}
	if session != nil {
		if err := store.Save(*session); err != nil {
			t.Fatalf("failed to save session: %v", err)
		}
	}
	return store
}

func testViewer() *models.Session {
	return &models.Session{UserID: 7, Username: "rachel", Token: "tok-123"}
}

func TestToggleLike(t *testing.T) {
	t.Run("Signed Out Issues No Request", func(t *testing.T) {
		backend := &tu.MockService{}
		m := NewModel(context.Background(), backend, testStore(t, nil), "")

		cmd := m.toggleLike(42, false)
		if cmd == nil {
			t.Fatal("expected a prompt command")
		}
		if backend.ToggleCalls != 0 {
			t.Errorf("expected no backend call, got %d", backend.ToggleCalls)
		}
		if m.toast.text != "Sign in to like albums" {
			t.Errorf("unexpected toast: %q", m.toast.text)
		}
	})

	t.Run("Signed In Without Settings Still Likes", func(t *testing.T) {
		backend := &tu.MockService{LikedState: true}
		m := NewModel(context.Background(), backend, testStore(t, testViewer()), "")

		// The feature-flag probe can fail transiently and leaves settings
		// unset; liking only needs the cached identity.
		cmd := m.toggleLike(42, false)
		if cmd == nil {
			t.Fatal("expected a toggle command")
		}

		msg := cmd()
		resolved, ok := msg.(likeResolvedMsg)
		if !ok {
			t.Fatalf("expected likeResolvedMsg, got %T", msg)
		}
		if resolved.albumID != 42 || !resolved.liked {
			t.Errorf("unexpected resolution: %+v", resolved)
		}
		if backend.ToggleCalls != 1 {
			t.Errorf("expected 1 backend call, got %d", backend.ToggleCalls)
		}
	})

	t.Run("Second Press While Pending Is Ignored", func(t *testing.T) {
		backend := &tu.MockService{}
		m := NewModel(context.Background(), backend, testStore(t, testViewer()), "")

		if cmd := m.toggleLike(42, false); cmd == nil {
			t.Fatal("expected a toggle command")
		}
		if cmd := m.toggleLike(42, true); cmd != nil {
			t.Error("expected the pending toggle to swallow the second press")
		}
	})
}

func TestFetchLiked(t *testing.T) {
	t.Run("Signed Out Gets Prompt", func(t *testing.T) {
		backend := &tu.MockService{}
		m := NewModel(context.Background(), backend, testStore(t, nil), "")

		if m.fetchLiked() == nil {
			t.Fatal("expected a prompt command")
		}
		if m.toast.text != "Sign in to view your profile" {
			t.Errorf("unexpected toast: %q", m.toast.text)
		}
	})

	t.Run("Signed In Without Settings Loads Profile", func(t *testing.T) {
		backend := &tu.MockService{Liked: []models.Album{{ID: 1, Title: "Souvlaki"}}}
		m := NewModel(context.Background(), backend, testStore(t, testViewer()), "")

		cmd := m.fetchLiked()
		if cmd == nil {
			t.Fatal("expected a fetch command")
		}

		msg := cmd()
		fetched, ok := msg.(likedFetchedMsg)
		if !ok {
			t.Fatalf("expected likedFetchedMsg, got %T", msg)
		}
		if len(fetched.albums) != 1 {
			t.Errorf("expected 1 liked album, got %d", len(fetched.albums))
		}
	})
}

func TestCollectionAttach(t *testing.T) {
	t.Run("Successful Add Returns To Collection", func(t *testing.T) {
		backend := &tu.MockService{
			Collection: []models.CollectionItem{{ID: 1, Title: "Souvlaki", Artist: "Slowdive"}},
		}
		m := NewModel(context.Background(), backend, testStore(t, testViewer()), "")
		m.settings = &models.UserSettings{CollectionMode: true}
		m.view = CatalogView

		added := &models.CollectionItem{ID: 1, Title: "Souvlaki"}
		_, cmd := m.completeCollectionChange(collectionChangedMsg{added: added})
		if cmd == nil {
			t.Fatal("expected a follow-up command")
		}

		batch, ok := cmd().(tea.BatchMsg)
		if !ok {
			t.Fatal("expected the add to batch a collection refetch")
		}

		var refetched bool
		for _, sub := range batch {
			if fetched, ok := sub().(collectionFetchedMsg); ok {
				refetched = true
				m.Update(fetched)
				break
			}
		}
		if !refetched {
			t.Fatal("expected the add to refetch the collection")
		}
		if m.view != CollectionView {
			t.Errorf("expected CollectionView after a successful add, got %d", m.view)
		}
	})
}
