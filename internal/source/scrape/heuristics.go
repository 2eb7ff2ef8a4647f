package scrape

import "strings"

var remoteTerms = []string{"remote", "work from home", "wfh"}

// IsRemote reports whether any of texts advertises remote work. It returns
// nil when every text is blank, since absence of text says nothing.
func IsRemote(texts ...string) *bool {
	seen := false
	for _, t := range texts {
		t = strings.ToLower(t)
		if strings.TrimSpace(t) == "" {
			continue
		}
		seen = true
		for _, term := range remoteTerms {
			if strings.Contains(t, term) {
				v := true
				return &v
			}
		}
	}
	if !seen {
		return nil
	}
	v := false
	return &v
}

var employmentTypes = []struct {
	terms []string
	label string
}{
	{[]string{"full-time", "full time", "fulltime"}, "Full-time"},
	{[]string{"part-time", "part time", "parttime"}, "Part-time"},
	{[]string{"contract", "contractor", "temporary"}, "Contract"},
	{[]string{"internship", "intern "}, "Internship"},
}

// EmploymentType guesses the employment type from free text.
func EmploymentType(text string) *string {
	t := strings.ToLower(text)
	for _, et := range employmentTypes {
		for _, term := range et.terms {
			if strings.Contains(t, term) {
				label := et.label
				return &label
			}
		}
	}
	return nil
}

// Ptr returns a pointer to s, or nil when s is blank.
func Ptr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the value of s, or "" when s is nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
