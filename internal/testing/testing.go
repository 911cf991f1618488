// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/slowdive/internal/models"
	"github.com/desertthunder/slowdive/internal/services"
)

// MockService is a configurable test double for [services.Service].
// Zero value behaves like an empty, healthy backend; set fields to shape
// responses or force failures.
type MockService struct {
	Page       models.AlbumPage
	Album      *models.Album
	Artist     *models.Artist
	Results    models.SearchResults
	Liked      []models.Album
	Session    *models.Session
	Settings   models.UserSettings
	Collection []models.CollectionItem
	Catalog    []models.CatalogResult
	LikedState bool
	Err        error

	ListCalls   int
	ToggleCalls int
}

func (m *MockService) ListAlbums(ctx context.Context, opts services.AlbumListOptions) (*models.AlbumPage, error) {
	m.ListCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	page := m.Page
	return &page, nil
}

func (m *MockService) GetAlbum(ctx context.Context, id int) (*models.Album, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Album, nil
}

func (m *MockService) GetArtist(ctx context.Context, id int) (*models.Artist, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Artist, nil
}

func (m *MockService) Search(ctx context.Context, query string) (*models.SearchResults, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	results := m.Results
	return &results, nil
}

func (m *MockService) ToggleLike(ctx context.Context, albumID int) (bool, error) {
	m.ToggleCalls++
	if m.Err != nil {
		return false, m.Err
	}
	return m.LikedState, nil
}

func (m *MockService) LikedAlbums(ctx context.Context) ([]models.Album, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Liked, nil
}

func (m *MockService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Session, nil
}

func (m *MockService) Register(ctx context.Context, username, password string) (*models.Session, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Session, nil
}

func (m *MockService) Logout(ctx context.Context) error {
	return m.Err
}

func (m *MockService) GetSettings(ctx context.Context) (*models.UserSettings, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	settings := m.Settings
	return &settings, nil
}

func (m *MockService) PutSettings(ctx context.Context, settings models.UserSettings) (*models.UserSettings, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Settings = settings
	return &settings, nil
}

func (m *MockService) ListCollection(ctx context.Context) ([]models.CollectionItem, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Collection, nil
}

func (m *MockService) AddCollectionItem(ctx context.Context, result models.CatalogResult) (*models.CollectionItem, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	item := models.CollectionItem{ID: result.ID, Title: result.Title}
	m.Collection = append(m.Collection, item)
	return &item, nil
}

func (m *MockService) RemoveCollectionItem(ctx context.Context, id int) error {
	return m.Err
}

func (m *MockService) SearchCatalog(ctx context.Context, query string) ([]models.CatalogResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Catalog, nil
}

func (m *MockService) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
