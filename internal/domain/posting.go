package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sentinel values used when a source's markup is missing a node.
const (
	UnknownTitle      = "Unknown Title"
	UnknownInternship = "Unknown Internship"
	UnknownCompany    = "Unknown Company"
)

var (
	ErrMissingURL   = errors.New("origin url is required")
	ErrInvalidURL   = errors.New("origin url is not an absolute http(s) url")
	ErrMissingTitle = errors.New("title is required")
)

// JobPosting is a normalized job listing produced by an extractor.
type JobPosting struct {
	ID             uuid.UUID  `db:"id"`
	Fingerprint    *string    `db:"source_fingerprint"`
	Title          string     `db:"title"`
	EmployerName   string     `db:"employer_name"`
	Location       *string    `db:"location"`
	Description    string     `db:"description"`
	OriginURL      string     `db:"origin_url"`
	PostingDate    *time.Time `db:"posting_date"`
	FirstScrapedAt time.Time  `db:"first_scraped_at"`
	LastSeenAt     time.Time  `db:"last_seen_at"`
	SourcePlatform string     `db:"source_platform"` // e.g. "LinkedIn", "Company Website - Microsoft"
	EmploymentType *string    `db:"employment_type"`
	IsRemote       *bool      `db:"is_remote"`
	IsActive       bool       `db:"is_active"`
	Compensation   *string    `db:"compensation"`
	Duration       *string    `db:"duration"`
}

// Validate reports whether the posting can be persisted.
func (p *JobPosting) Validate() error {
	if strings.TrimSpace(p.OriginURL) == "" {
		return ErrMissingURL
	}
	u, err := url.Parse(p.OriginURL)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidURL, p.OriginURL)
	}
	if strings.TrimSpace(p.Title) == "" {
		return ErrMissingTitle
	}
	return nil
}

// Refresh copies the fields that change between sightings from fresh and
// marks the posting as seen at now. Identity, fingerprint and FirstScrapedAt
// are left untouched.
func (p *JobPosting) Refresh(fresh *JobPosting, now time.Time) {
	p.Title = fresh.Title
	p.Description = fresh.Description
	p.Location = fresh.Location
	p.Compensation = fresh.Compensation
	p.EmploymentType = fresh.EmploymentType
	p.IsRemote = fresh.IsRemote
	p.IsActive = true
	if now.Before(p.FirstScrapedAt) {
		now = p.FirstScrapedAt
	}
	p.LastSeenAt = now
}

// SourceName returns the extractor name encoded in SourcePlatform, without
// the employer suffix used by multi-employer sources.
func (p *JobPosting) SourceName() string {
	name, _, _ := strings.Cut(p.SourcePlatform, " - ")
	return name
}
