package scrape

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	relativeRe = regexp.MustCompile(`(\d+)\s*\+?\s*(minute|min|hour|hr|day|week|month|year)s?`)
	applyByRe  = regexp.MustCompile(`(?i)apply\s+by:?\s*(\d{1,2}\s+[A-Za-z]+'?,?\s+'?\d{2,4})`)
)

var absoluteLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2 Jan 2006",
	"2 January 2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan' 06",
	"2 Jan 06",
}

// ParseRelativeDate turns listing text such as "3 days ago", "Just now" or
// "2024-05-01" into an absolute time anchored at now. It returns nil when
// the text cannot be interpreted.
func ParseRelativeDate(text string, now time.Time) *time.Time {
	s := strings.ToLower(CollapseSpace(text))
	if s == "" {
		return nil
	}

	if t := ParseAbsoluteDate(text); t != nil {
		return t
	}

	switch {
	case strings.Contains(s, "just now"), strings.Contains(s, "today"), strings.Contains(s, "few hours"):
		return &now
	case strings.Contains(s, "yesterday"):
		t := now.AddDate(0, 0, -1)
		return &t
	}

	m := relativeRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}

	var t time.Time
	switch m[2] {
	case "minute", "min":
		t = now.Add(-time.Duration(n) * time.Minute)
	case "hour", "hr":
		t = now.Add(-time.Duration(n) * time.Hour)
	case "day":
		t = now.AddDate(0, 0, -n)
	case "week":
		t = now.AddDate(0, 0, -7*n)
	case "month":
		t = now.AddDate(0, -n, 0)
	case "year":
		t = now.AddDate(-n, 0, 0)
	}
	return &t
}

// ParseAbsoluteDate tries the date layouts commonly found on job boards.
func ParseAbsoluteDate(text string) *time.Time {
	s := CollapseSpace(text)
	if s == "" {
		return nil
	}
	for _, layout := range absoluteLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// applyByLead is how long before its deadline a posting is assumed to have
// been published.
const applyByLead = 30 * 24 * time.Hour

// ParseApplyBy extracts the deadline from "Apply By: 12 Jan 2025" text and
// returns the estimated posting date.
func ParseApplyBy(text string) *time.Time {
	m := applyByRe.FindStringSubmatch(CollapseSpace(text))
	if m == nil {
		return nil
	}
	deadline := ParseAbsoluteDate(m[1])
	if deadline == nil {
		return nil
	}
	t := deadline.Add(-applyByLead)
	return &t
}
