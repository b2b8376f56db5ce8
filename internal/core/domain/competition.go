package domain

import "time"

// Competition is a pitch competition users may enter before its deadline.
type Competition struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Deadline    time.Time `json:"deadline"`
	Closed      bool      `json:"closed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AcceptsEntries reports whether new entries are allowed at the given time.
func (c *Competition) AcceptsEntries(now time.Time) bool {
	return !c.Closed && now.Before(c.Deadline)
}

// Entry is one user's submission to a competition. A user may enter each
// competition at most once.
type Entry struct {
	ID            uint      `json:"id"`
	CompetitionID uint      `json:"competition_id"`
	EntrantID     uint      `json:"entrant_id"`
	PitchSummary  string    `json:"pitch_summary"`
	DeckURL       string    `json:"deck_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
