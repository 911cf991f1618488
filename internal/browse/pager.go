package browse

import (
	"github.com/desertthunder/slowdive/internal/models"
)

// leadMargin is how many items before the end of the loaded sequence the
// next fetch is triggered, so new pages arrive before the viewer hits the
// true bottom.
const leadMargin = 10

// defaultBatchSize is used before the display width is known.
const defaultBatchSize = 40

// Pager owns the incrementally loaded album sequence for one grid: an ordered
// list of albums plus a monotonically increasing offset cursor.
//
// It is a pure state machine; the caller performs the actual fetch. The
// intended loop is:
//
//	if pager.ShouldFetch(cursor) {
//		limit, offset, ok := pager.StartFetch()
//		if ok { go fetch(limit, offset) -> pager.Complete(page, err) }
//	}
//
// Only one fetch may be outstanding: StartFetch refuses while a fetch is in
// flight, so triggers during a pending request are no-ops. A fetch that
// returns no items, a response with has_more=false, or a fetch error all end
// pagination permanently for the current scope. Items already shown are
// never affected by a failure.
type Pager struct {
	albums   []models.Album
	seen     map[int]struct{}
	offset   int
	genre    string
	hasMore  bool
	inFlight bool
	disabled bool
	width    int
}

// NewPager creates a pager seeded with an initial, already-fetched page.
// A disabled pager renders its initial items and never fetches more.
func NewPager(initial []models.Album, genre string, disabled bool) *Pager {
	p := &Pager{disabled: disabled}
	p.Reset(initial, genre)
	return p
}

// Reset replaces the sequence and cursor with a newly supplied initial page.
// Called when the scoping genre changes.
func (p *Pager) Reset(initial []models.Album, genre string) {
	p.albums = nil
	p.seen = make(map[int]struct{})
	p.genre = genre
	p.offset = 0
	p.hasMore = !p.disabled
	p.inFlight = false
	p.append(initial)
	p.offset = len(p.albums)
}

// append adds albums to the sequence, dropping any id already present.
func (p *Pager) append(albums []models.Album) {
	for _, album := range albums {
		if _, dup := p.seen[album.ID]; dup {
			continue
		}
		p.seen[album.ID] = struct{}{}
		p.albums = append(p.albums, album)
	}
}

// Albums returns the loaded sequence in request order.
func (p *Pager) Albums() []models.Album { return p.albums }

// Len returns how many albums are loaded.
func (p *Pager) Len() int { return len(p.albums) }

// Genre returns the current scoping genre ("" for unscoped).
func (p *Pager) Genre() string { return p.genre }

// Offset returns the cursor for the next fetch.
func (p *Pager) Offset() int { return p.offset }

// HasMore reports whether further pages may exist.
func (p *Pager) HasMore() bool { return p.hasMore }

// InFlight reports whether a page fetch is outstanding.
func (p *Pager) InFlight() bool { return p.inFlight }

// EndReached reports whether the terminal end-of-content indicator should be
// shown: pagination is exhausted and at least one item rendered.
func (p *Pager) EndReached() bool {
	return !p.disabled && !p.hasMore && len(p.albums) > 0
}

// SetWidth records the display width used to size the next batch.
func (p *Pager) SetWidth(width int) { p.width = width }

// BatchSize returns the page size for the current display width. Wider
// displays show more columns per row, so they request larger pages.
func (p *Pager) BatchSize() int {
	switch {
	case p.width == 0:
		return defaultBatchSize
	case p.width >= 240:
		return 60
	case p.width >= 200:
		return 50
	case p.width >= 160:
		return 40
	case p.width >= 120:
		return 30
	case p.width >= 80:
		return 20
	default:
		return 15
	}
}

// ShouldFetch reports whether attention near position cursor should trigger
// the next page: the viewer is within leadMargin items of the end, more
// content may exist, and nothing is already in flight.
func (p *Pager) ShouldFetch(cursor int) bool {
	if p.disabled || !p.hasMore || p.inFlight {
		return false
	}
	return cursor >= len(p.albums)-leadMargin
}

// StartFetch marks a fetch as in flight and returns its request parameters.
// It returns ok=false when no fetch should start (disabled, exhausted, or
// one already outstanding).
func (p *Pager) StartFetch() (limit, offset int, ok bool) {
	if p.disabled || !p.hasMore || p.inFlight {
		return 0, 0, false
	}
	p.inFlight = true
	return p.BatchSize(), p.offset, true
}

// Complete resolves the outstanding fetch. A failed fetch is treated as end
// of content: pagination stops silently and loaded items are untouched.
func (p *Pager) Complete(page models.AlbumPage, err error) {
	p.inFlight = false

	if err != nil {
		p.hasMore = false
		return
	}

	if len(page.Albums) == 0 {
		p.hasMore = false
		return
	}

	p.append(page.Albums)
	p.offset += len(page.Albums)

	if !page.HasMore {
		p.hasMore = false
	}
}
