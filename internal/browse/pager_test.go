package browse

import (
	"errors"
	"testing"

	"github.com/desertthunder/slowdive/internal/models"
)

func albums(ids ...int) []models.Album {
	out := make([]models.Album, len(ids))
	for i, id := range ids {
		out[i] = models.Album{ID: id, Title: "Album", ArtistName: "Artist"}
	}
	return out
}

func ids(albums []models.Album) []int {
	out := make([]int, len(albums))
	for i, a := range albums {
		out[i] = a.ID
	}
	return out
}

func TestPager(t *testing.T) {
	t.Run("Appends Pages In Request Order", func(t *testing.T) {
		p := NewPager(albums(1, 2, 3), "", false)

		limit, offset, ok := p.StartFetch()
		if !ok {
			t.Fatal("expected fetch to start")
		}
		if limit != defaultBatchSize {
			t.Errorf("expected default batch size %d, got %d", defaultBatchSize, limit)
		}
		if offset != 3 {
			t.Errorf("expected offset 3, got %d", offset)
		}

		p.Complete(models.AlbumPage{Albums: albums(4, 5), HasMore: true}, nil)

		if _, offset, _ := p.StartFetch(); offset != 5 {
			t.Errorf("expected cursor to advance to 5, got %d", offset)
		}
		p.Complete(models.AlbumPage{Albums: albums(6), HasMore: true}, nil)

		want := []int{1, 2, 3, 4, 5, 6}
		got := ids(p.Albums())
		if len(got) != len(want) {
			t.Fatalf("expected %d albums, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("position %d: expected id %d, got %d", i, want[i], got[i])
			}
		}
	})

	t.Run("Deduplicates By ID", func(t *testing.T) {
		p := NewPager(albums(1, 2, 3), "", false)

		p.StartFetch()
		p.Complete(models.AlbumPage{Albums: albums(3, 4), HasMore: true}, nil)

		got := ids(p.Albums())
		if len(got) != 4 {
			t.Fatalf("expected 4 unique albums, got %v", got)
		}
		seen := make(map[int]bool)
		for _, id := range got {
			if seen[id] {
				t.Errorf("duplicate id %d in sequence", id)
			}
			seen[id] = true
		}
	})

	t.Run("Single Fetch In Flight", func(t *testing.T) {
		p := NewPager(albums(1), "", false)

		if _, _, ok := p.StartFetch(); !ok {
			t.Fatal("first StartFetch should succeed")
		}
		if _, _, ok := p.StartFetch(); ok {
			t.Error("second StartFetch while in flight should be a no-op")
		}
		if p.ShouldFetch(0) {
			t.Error("ShouldFetch should be false while in flight")
		}

		p.Complete(models.AlbumPage{Albums: albums(2), HasMore: true}, nil)
		if _, _, ok := p.StartFetch(); !ok {
			t.Error("StartFetch after completion should succeed")
		}
	})

	t.Run("Empty Page Ends Pagination", func(t *testing.T) {
		p := NewPager(albums(1, 2), "", false)

		p.StartFetch()
		p.Complete(models.AlbumPage{Albums: nil, HasMore: true}, nil)

		if p.HasMore() {
			t.Error("expected pagination to end after empty page")
		}
		if _, _, ok := p.StartFetch(); ok {
			t.Error("no further fetch should start after empty page")
		}
		if p.ShouldFetch(1) {
			t.Error("ShouldFetch should stay false after exhaustion")
		}
		if !p.EndReached() {
			t.Error("end indicator should show once items rendered and exhausted")
		}
	})

	t.Run("HasMore False Ends Pagination", func(t *testing.T) {
		p := NewPager(albums(1), "", false)

		p.StartFetch()
		p.Complete(models.AlbumPage{Albums: albums(2), HasMore: false}, nil)

		if p.HasMore() {
			t.Error("expected pagination to end when response signals no more data")
		}
		if p.Len() != 2 {
			t.Errorf("expected final page appended, got %d albums", p.Len())
		}
	})

	t.Run("Fetch Error Ends Pagination Silently", func(t *testing.T) {
		p := NewPager(albums(1, 2), "", false)

		p.StartFetch()
		p.Complete(models.AlbumPage{}, errors.New("network down"))

		if p.HasMore() {
			t.Error("expected pagination to end after error")
		}
		if p.Len() != 2 {
			t.Errorf("already rendered items should be unaffected, got %d", p.Len())
		}
	})

	t.Run("Genre Change Resets Sequence And Cursor", func(t *testing.T) {
		p := NewPager(albums(1, 2, 3), "", false)
		p.StartFetch()
		p.Complete(models.AlbumPage{Albums: albums(4, 5), HasMore: true}, nil)

		p.Reset(albums(10, 11), "shoegaze")

		if got := ids(p.Albums()); len(got) != 2 || got[0] != 10 || got[1] != 11 {
			t.Errorf("expected exactly the new initial page, got %v", got)
		}
		if p.Offset() != 2 {
			t.Errorf("expected cursor reset to initial page length, got %d", p.Offset())
		}
		if p.Genre() != "shoegaze" {
			t.Errorf("expected genre scope to update, got %q", p.Genre())
		}
		if !p.HasMore() {
			t.Error("reset should re-enable pagination")
		}
	})

	t.Run("Disabled Pager Never Fetches", func(t *testing.T) {
		p := NewPager(albums(1, 2), "", true)

		if p.ShouldFetch(1) {
			t.Error("disabled pager should not trigger")
		}
		if _, _, ok := p.StartFetch(); ok {
			t.Error("disabled pager should refuse StartFetch")
		}
		if p.EndReached() {
			t.Error("disabled pager shows no end indicator")
		}
	})

	t.Run("ShouldFetch Uses Lead Margin", func(t *testing.T) {
		var many []models.Album
		for i := 1; i <= 40; i++ {
			many = append(many, models.Album{ID: i})
		}
		p := NewPager(many, "", false)

		if p.ShouldFetch(0) {
			t.Error("cursor far from end should not trigger")
		}
		if !p.ShouldFetch(40 - leadMargin) {
			t.Error("cursor within lead margin should trigger")
		}
	})

	t.Run("BatchSize Adapts To Width", func(t *testing.T) {
		p := NewPager(nil, "", false)

		tc := []struct {
			width int
			want  int
		}{
			{0, 40},
			{60, 15},
			{80, 20},
			{120, 30},
			{160, 40},
			{200, 50},
			{240, 60},
		}
		for _, tt := range tc {
			p.SetWidth(tt.width)
			if got := p.BatchSize(); got != tt.want {
				t.Errorf("width %d: expected batch size %d, got %d", tt.width, tt.want, got)
			}
		}
	})
}
