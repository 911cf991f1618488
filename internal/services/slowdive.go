// Slowdive backend implementation of [Service]
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/desertthunder/slowdive/internal/catalog"
	"github.com/desertthunder/slowdive/internal/models"
	"github.com/desertthunder/slowdive/internal/shared"
	"golang.org/x/time/rate"
)

// sessionCookie is the backend's HTTP-only session cookie. Browsers forward
// it automatically; this client threads the cached token manually.
const sessionCookie = "session_token"

// catalogRate limits catalog proxy calls: Discogs allows 60 requests per
// minute, so one per second keeps well inside it.
const catalogRate = rate.Limit(1)

var _ Service = (*SlowdiveService)(nil)

// apiError is the backend's error envelope.
type apiError struct {
	Detail string `json:"detail"`
}

// likeResponse carries the authoritative like state after a toggle.
type likeResponse struct {
	Status string `json:"status"` // "liked" or "unliked"
}

// catalogResponse wraps catalog search hits.
type catalogResponse struct {
	Results []models.CatalogResult `json:"results"`
}

// SlowdiveService implements [Service] over the backend HTTP API.
// The session store supplies the viewer identity for per-user reads and
// the token forwarded as the session cookie.
type SlowdiveService struct {
	baseURL    string
	httpClient *http.Client
	session    *shared.SessionStore
	limiter    *rate.Limiter
}

// NewSlowdiveService creates a backend client rooted at baseURL.
func NewSlowdiveService(baseURL string, client *http.Client, session *shared.SessionStore) *SlowdiveService {
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &SlowdiveService{
		baseURL:    baseURL,
		httpClient: client,
		session:    session,
		limiter:    rate.NewLimiter(catalogRate, 1),
	}
}

func (s *SlowdiveService) Name() string {
	return "Slowdive"
}

// currentSession returns the cached session, or nil when signed out.
func (s *SlowdiveService) currentSession() *models.Session {
	if s.session == nil {
		return nil
	}
	return s.session.Current()
}

// doRequest performs a JSON HTTP request against the backend, threading the
// session cookie when one is cached. 404 and 401 map to sentinel errors so
// callers can branch on taxonomy; other non-2xx statuses surface the
// backend's detail message when present.
func (s *SlowdiveService) doRequest(ctx context.Context, method, endpoint string, body any, result any) error {
	apiURL := s.baseURL + endpoint

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if session := s.currentSession(); session != nil && session.Token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: session.Token})
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return shared.ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return shared.ErrNotAuthenticated
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		var envelope apiError
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Detail != "" {
			return fmt.Errorf("%w: status %d: %s", shared.ErrAPIRequest, resp.StatusCode, envelope.Detail)
		}
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// ListAlbums retrieves one page of the ranked album listing. The viewer's
// user id is threaded through so each album carries its is_liked flag.
func (s *SlowdiveService) ListAlbums(ctx context.Context, opts AlbumListOptions) (*models.AlbumPage, error) {
	if opts.Limit <= 0 {
		opts.Limit = 40
	}

	query := url.Values{}
	query.Set("limit", fmt.Sprintf("%d", opts.Limit))
	query.Set("offset", fmt.Sprintf("%d", opts.Offset))
	if opts.Genre != "" {
		query.Set("genre", opts.Genre)
	}
	if session := s.currentSession(); session != nil {
		query.Set("user_id", fmt.Sprintf("%d", session.UserID))
	}

	var page models.AlbumPage
	if err := s.doRequest(ctx, http.MethodGet, "/api/albums?"+query.Encode(), nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// GetAlbum retrieves a single album by id.
func (s *SlowdiveService) GetAlbum(ctx context.Context, id int) (*models.Album, error) {
	endpoint := fmt.Sprintf("/api/albums/%d", id)
	if session := s.currentSession(); session != nil {
		endpoint = fmt.Sprintf("%s?user_id=%d", endpoint, session.UserID)
	}

	var album models.Album
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &album); err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.ErrAlbumNotFound
		}
		return nil, err
	}

	return &album, nil
}

// GetArtist retrieves an artist with its embedded discography.
func (s *SlowdiveService) GetArtist(ctx context.Context, id int) (*models.Artist, error) {
	var artist models.Artist
	if err := s.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/artists/%d", id), nil, &artist); err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.ErrArtistNotFound
		}
		return nil, err
	}

	return &artist, nil
}

// Search performs a sitewide search over artists and albums.
func (s *SlowdiveService) Search(ctx context.Context, query string) (*models.SearchResults, error) {
	var results models.SearchResults
	endpoint := "/api/search?q=" + url.QueryEscape(query)
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &results); err != nil {
		return nil, err
	}

	return &results, nil
}

// ToggleLike flips the like state of an album. The response's status field
// is the authoritative resulting state, which may disagree with the caller's
// optimistic guess.
func (s *SlowdiveService) ToggleLike(ctx context.Context, albumID int) (bool, error) {
	session := s.currentSession()
	if session == nil {
		return false, shared.ErrNotAuthenticated
	}

	body := map[string]int{
		"user_id":  session.UserID,
		"album_id": albumID,
	}

	var resp likeResponse
	if err := s.doRequest(ctx, http.MethodPost, "/api/likes", body, &resp); err != nil {
		return false, err
	}

	return resp.Status == "liked", nil
}

// LikedAlbums lists the albums the signed-in user has liked.
func (s *SlowdiveService) LikedAlbums(ctx context.Context) ([]models.Album, error) {
	session := s.currentSession()
	if session == nil {
		return nil, shared.ErrNotAuthenticated
	}

	var albums []models.Album
	endpoint := fmt.Sprintf("/api/users/%d/likes", session.UserID)
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &albums); err != nil {
		return nil, err
	}

	return albums, nil
}

// authenticate posts credentials to an auth endpoint, capturing both the
// identity payload and the session cookie the backend sets.
func (s *SlowdiveService) authenticate(ctx context.Context, endpoint, username, password string) (*models.Session, error) {
	payload, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope apiError
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Detail != "" {
			return nil, fmt.Errorf("%w: %s", shared.ErrAuthFailed, envelope.Detail)
		}
		return nil, fmt.Errorf("%w: status %d", shared.ErrAuthFailed, resp.StatusCode)
	}

	var session models.Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookie {
			session.Token = cookie.Value
		}
	}

	if s.session != nil {
		if err := s.session.Save(session); err != nil {
			return nil, fmt.Errorf("failed to cache session: %w", err)
		}
	}

	return &session, nil
}

// Login exchanges credentials for a session.
func (s *SlowdiveService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	return s.authenticate(ctx, "/api/auth/login", username, password)
}

// Register creates an account and signs in.
func (s *SlowdiveService) Register(ctx context.Context, username, password string) (*models.Session, error) {
	return s.authenticate(ctx, "/api/auth/register", username, password)
}

// Logout ends the backend session best-effort, then clears the local cache
// regardless of the call's outcome.
func (s *SlowdiveService) Logout(ctx context.Context) error {
	err := s.doRequest(ctx, http.MethodPost, "/api/auth/logout", nil, nil)

	if s.session != nil {
		if clearErr := s.session.Clear(); clearErr != nil {
			return clearErr
		}
	}

	return err
}

// GetSettings retrieves the signed-in user's feature flags.
// Returns [shared.ErrNotAuthenticated] on a 401 so callers can redirect.
func (s *SlowdiveService) GetSettings(ctx context.Context) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := s.doRequest(ctx, http.MethodGet, "/api/settings", nil, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// PutSettings replaces the full settings object.
func (s *SlowdiveService) PutSettings(ctx context.Context, settings models.UserSettings) (*models.UserSettings, error) {
	var stored models.UserSettings
	if err := s.doRequest(ctx, http.MethodPut, "/api/settings", settings, &stored); err != nil {
		return nil, err
	}

	return &stored, nil
}

// ListCollection lists the signed-in user's record collection.
func (s *SlowdiveService) ListCollection(ctx context.Context) ([]models.CollectionItem, error) {
	var items []models.CollectionItem
	if err := s.doRequest(ctx, http.MethodGet, "/api/collection", nil, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// AddCollectionItem attaches a catalog result to the collection, deriving
// artist and title by splitting the combined catalog title.
func (s *SlowdiveService) AddCollectionItem(ctx context.Context, result models.CatalogResult) (*models.CollectionItem, error) {
	artist, title := catalog.SplitTitle(result.Title)

	format := "Unknown Format"
	if len(result.Formats) > 0 {
		format = strings.Join(result.Formats, ", ")
	}

	body := map[string]any{
		"discogs_id": result.ID,
		"master_id":  result.MasterID,
		"title":      title,
		"artist":     artist,
		"format":     format,
		"year":       result.Year,
		"thumb_url":  result.Thumb,
	}
	if len(result.Labels) > 0 {
		body["label"] = result.Labels[0]
	}

	var item models.CollectionItem
	if err := s.doRequest(ctx, http.MethodPost, "/api/collection", body, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

// RemoveCollectionItem deletes one collection item by id.
func (s *SlowdiveService) RemoveCollectionItem(ctx context.Context, id int) error {
	return s.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/collection/%d", id), nil, nil)
}

// SearchCatalog queries the external catalog through the backend proxy,
// throttled to stay inside the catalog's rate limit.
func (s *SlowdiveService) SearchCatalog(ctx context.Context, query string) ([]models.CatalogResult, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: empty catalog query", shared.ErrInvalidInput)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter interrupted: %w", err)
	}

	var resp catalogResponse
	endpoint := "/api/discogs/search?q=" + url.QueryEscape(query)
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Results, nil
}
