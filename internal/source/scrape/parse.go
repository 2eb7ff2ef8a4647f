package scrape

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Text returns the trimmed, whitespace-collapsed text of sel, or fallback
// when sel is empty.
func Text(sel *goquery.Selection, fallback string) string {
	if t := CollapseSpace(sel.First().Text()); t != "" {
		return t
	}
	return fallback
}

// OptionalText is Text with a nil fallback.
func OptionalText(sel *goquery.Selection) *string {
	if t := CollapseSpace(sel.First().Text()); t != "" {
		return &t
	}
	return nil
}

// InnerHTML returns the trimmed inner HTML of the first node in sel.
func InnerHTML(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	html, err := sel.First().Html()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(html)
}

// Attr returns the trimmed attribute value of the first node in sel.
func Attr(sel *goquery.Selection, name string) string {
	v, _ := sel.First().Attr(name)
	return strings.TrimSpace(v)
}

// FirstText returns the text of the first selector that yields any.
func FirstText(root *goquery.Selection, selectors ...string) string {
	for _, s := range selectors {
		if t := CollapseSpace(root.Find(s).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ResolveURL turns href into an absolute URL on base's scheme and host.
// Relative paths are taken from the site root. It returns "" when href is
// blank, malformed or not an http(s) link.
func ResolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		if ref.Scheme != "http" && ref.Scheme != "https" {
			return ""
		}
		return ref.String()
	}
	if base == nil || base.Host == "" {
		return ""
	}
	if !strings.HasPrefix(ref.Path, "/") && ref.Path != "" {
		ref.Path = "/" + ref.Path
	}
	root := &url.URL{Scheme: base.Scheme, Host: base.Host, Path: "/"}
	return root.ResolveReference(ref).String()
}

// StripQuery drops the query string and fragment, which job boards use for
// tracking parameters.
func StripQuery(rawURL string) string {
	if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}

// ParseBase parses a configured base URL, falling back to def when raw is
// empty or invalid.
func ParseBase(raw, def string) *url.URL {
	if u, err := url.Parse(strings.TrimRight(raw, "/")); err == nil && raw != "" && u.Host != "" {
		return u
	}
	u, _ := url.Parse(def)
	return u
}
