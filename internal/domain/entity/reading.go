package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReadingProgress is the reader's current page out of the document's pages.
// TotalPages is zero until the document has reported its page count.
type ReadingProgress struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}

// Fix is where the reader currently is on the route and which way they face
type Fix struct {
	Index    int      `json:"index"`
	Position GeoPoint `json:"position"`
	Next     GeoPoint `json:"next"`
	Bearing  Bearing  `json:"bearing"`
}

// Panorama is a street-level image request for a position and heading
type Panorama struct {
	Location GeoPoint `json:"location"`
	Heading  Bearing  `json:"heading"`
	URL      string   `json:"-"`
}

// Session holds the mutable state of one reading session.
//
// Page is the page the reader asked for; SettledPage is the page the imagery
// was last computed for, which lags Page by the debounce window.
type Session struct {
	ID          uuid.UUID
	Path        Path
	TotalPages  int
	Page        int
	SettledPage int
	StartedAt   time.Time
}

// NewSession starts a session on page 1 with no path and no page count
func NewSession() *Session {
	return &Session{
		ID:          uuid.New(),
		Page:        1,
		SettledPage: 1,
		StartedAt:   time.Now(),
	}
}

// Progress returns the settled reading progress, the input to route mapping
func (s *Session) Progress() ReadingProgress {
	return ReadingProgress{Page: s.SettledPage, TotalPages: s.TotalPages}
}
