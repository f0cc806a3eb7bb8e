// Package browse holds the player-browsing state: a debounced keyword
// search against the directory and client-side pagination over the
// fetched list.
package browse

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"courtside/internal/models"
)

// Directory defines what the browser needs from the player directory
// client.
type Directory interface {
	GetAllPlayers(search string) ([]models.Player, error)
}

// Browser pages through directory players. Search input is debounced so
// the directory is called at most once per quiet period; a failed fetch
// leaves the browser with zero players and a failure flag rather than an
// error.
type Browser struct {
	directory Directory
	debouncer *Debouncer
	perPage   int

	mu      sync.Mutex
	players []models.Player
	search  string
	page    int
	failed  bool
}

// NewBrowser creates a browser over the given directory. perPage controls
// the client-side page size, debounce the search quiet period.
func NewBrowser(directory Directory, clock clockwork.Clock, debounce time.Duration, perPage int) *Browser {
	b := &Browser{
		directory: directory,
		perPage:   perPage,
		page:      1,
	}
	b.debouncer = NewDebouncer(clock, debounce, b.fetch)
	return b
}

// Refresh fetches the current search results immediately, bypassing the
// debounce. Used for the initial load.
func (b *Browser) Refresh() {
	b.mu.Lock()
	search := b.search
	b.mu.Unlock()

	b.fetch(search)
}

// SetSearch records a new search keyword and schedules a debounced
// directory fetch. The page resets to 1 for the new results.
func (b *Browser) SetSearch(query string) {
	b.mu.Lock()
	b.search = query
	b.page = 1
	b.mu.Unlock()

	b.debouncer.Trigger(query)
}

// Search returns the current search keyword.
func (b *Browser) Search() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.search
}

// Players returns the full fetched player list.
func (b *Browser) Players() []models.Player {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Player, len(b.players))
	copy(out, b.players)
	return out
}

// Page returns the players on the current page.
func (b *Browser) Page() []models.Player {
	b.mu.Lock()
	defer b.mu.Unlock()

	start := (b.page - 1) * b.perPage
	if start >= len(b.players) {
		return nil
	}
	end := start + b.perPage
	if end > len(b.players) {
		end = len(b.players)
	}

	out := make([]models.Player, end-start)
	copy(out, b.players[start:end])
	return out
}

// CurrentPage returns the 1-based current page number.
func (b *Browser) CurrentPage() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.page
}

// TotalPages returns the number of pages, at least 1.
func (b *Browser) TotalPages() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totalPagesLocked()
}

// NextPage advances to the next page, clamped to the last one.
func (b *Browser) NextPage() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.page < b.totalPagesLocked() {
		b.page++
	}
}

// PrevPage moves to the previous page, clamped to the first one.
func (b *Browser) PrevPage() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.page > 1 {
		b.page--
	}
}

// Failed reports whether the last directory fetch failed.
func (b *Browser) Failed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failed
}

func (b *Browser) fetch(search string) {
	players, err := b.directory.GetAllPlayers(search)
	if err != nil {
		log.Warn().Err(err).Str("search", search).Msg("directory fetch failed")
		players = nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// The user may have kept typing while the fetch was in flight;
	// stale results must not overwrite the newer search state.
	if search != b.search {
		return
	}

	b.players = players
	b.failed = err != nil
	b.page = 1
}

func (b *Browser) totalPagesLocked() int {
	if len(b.players) == 0 {
		return 1
	}
	return (len(b.players) + b.perPage - 1) / b.perPage
}
