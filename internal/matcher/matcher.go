// Package matcher decides which keyword interests a job posting satisfies.
package matcher

import (
	"slices"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"job_aggregator/internal/domain"
)

// Matches reports whether any keyword is a case-insensitive substring of the
// posting's title or description. Blank keywords never match.
func Matches(posting *domain.JobPosting, keywords []string) bool {
	title := normalize(posting.Title)
	description := normalize(posting.Description)

	for _, k := range keywords {
		k = normalize(k)
		if k == "" {
			continue
		}
		if strings.Contains(title, k) || strings.Contains(description, k) {
			return true
		}
	}
	return false
}

// Index matches postings against the keyword sets of many users in a single
// pass over each posting's text.
type Index struct {
	matcher  *ahocorasick.Matcher
	keywords []string
	owners   [][]int // keyword index -> user indexes
	users    []string
	byUser   map[string][]string
}

// NewIndex builds an index from interests. Users keep the order in which
// they first appear; each user's keywords keep their input order.
func NewIndex(interests []domain.KeywordInterest) *Index {
	idx := &Index{byUser: make(map[string][]string)}

	keywordPos := make(map[string]int)
	userPos := make(map[string]int)

	for _, in := range interests {
		k := normalize(in.Text)
		if k == "" {
			continue
		}

		u, ok := userPos[in.UserID]
		if !ok {
			u = len(idx.users)
			userPos[in.UserID] = u
			idx.users = append(idx.users, in.UserID)
		}
		idx.byUser[in.UserID] = append(idx.byUser[in.UserID], strings.TrimSpace(in.Text))

		pos, ok := keywordPos[k]
		if !ok {
			pos = len(idx.keywords)
			keywordPos[k] = pos
			idx.keywords = append(idx.keywords, k)
			idx.owners = append(idx.owners, nil)
		}
		if !slices.Contains(idx.owners[pos], u) {
			idx.owners[pos] = append(idx.owners[pos], u)
		}
	}

	if len(idx.keywords) > 0 {
		idx.matcher = ahocorasick.NewStringMatcher(idx.keywords)
	}

	return idx
}

// Users returns the users that have at least one non-blank keyword.
func (idx *Index) Users() []string {
	return idx.users
}

// Keywords returns the user's keywords in input order.
func (idx *Index) Keywords(userID string) []string {
	return idx.byUser[userID]
}

// Match returns the users whose keywords match the posting, in user order.
func (idx *Index) Match(posting *domain.JobPosting) []string {
	if idx.matcher == nil {
		return nil
	}

	// A NUL separator keeps a keyword from matching across the title and
	// description boundary.
	text := normalize(posting.Title) + "\x00" + normalize(posting.Description)
	hits := idx.matcher.Match([]byte(text))
	if len(hits) == 0 {
		return nil
	}

	matched := make([]bool, len(idx.users))
	for _, hit := range hits {
		if hit < 0 || hit >= len(idx.owners) {
			continue
		}
		for _, u := range idx.owners[hit] {
			matched[u] = true
		}
	}

	var users []string
	for u, ok := range matched {
		if ok {
			users = append(users, idx.users[u])
		}
	}
	return users
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

