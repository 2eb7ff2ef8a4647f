package domain

import "time"

type RunStatus string

const (
	RunRunning RunStatus = "Running"
	RunSuccess RunStatus = "Success"
	RunFailed  RunStatus = "Failed"
)

// SourceRunLog records one extraction attempt of one source.
type SourceRunLog struct {
	ID                 int64      `db:"id"`
	SourceID           string     `db:"source_id"`
	StartedAt          time.Time  `db:"started_at"`
	EndedAt            *time.Time `db:"ended_at"`
	Status             RunStatus  `db:"status"`
	PostingsFound      int        `db:"postings_found"`
	PostingsNewlyAdded int        `db:"postings_newly_added"`
	Message            *string    `db:"message"`
}

// MergeResult holds the outcome of merging a scraped batch into the store.
type MergeResult struct {
	New         int
	Updated     int
	Failed      int
	NewBySource map[string]int
}

// CycleStats holds statistics about one aggregate -> merge -> notify cycle.
type CycleStats struct {
	Keywords      int
	Scraped       int
	New           int
	Updated       int
	Failed        int
	Alerts        int
	SourcesOK     int
	SourcesFailed int
	StartedAt     time.Time
	Duration      time.Duration
}
