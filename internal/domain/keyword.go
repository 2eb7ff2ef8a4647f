package domain

import "time"

// KeywordInterest is a user's subscription to a search term.
type KeywordInterest struct {
	UserID    string    `db:"user_id"`
	Text      string    `db:"keyword_text"`
	CreatedAt time.Time `db:"created_at"`
}
