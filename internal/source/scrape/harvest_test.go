package scrape

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job_aggregator/internal/domain"
	"job_aggregator/internal/fingerprint"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// listingServer serves n cards per keyword at /search/{keyword}.
func listingServer(t *testing.T, n int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kw := strings.TrimPrefix(r.URL.Path, "/search/")
		if kw == "broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		var b strings.Builder
		b.WriteString("<ul>")
		for i := 0; i < n; i++ {
			fmt.Fprintf(&b, `<li><a href="/job/%s-%d">%s role %d</a></li>`, kw, i, kw, i)
		}
		b.WriteString("</ul>")
		_, _ = w.Write([]byte(b.String()))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func parseCards(page *Page, unit Unit) []domain.JobPosting {
	var out []domain.JobPosting
	page.Doc.Find("li a").Each(func(_ int, a *goquery.Selection) {
		out = append(out, domain.JobPosting{
			Title:          Text(a, domain.UnknownTitle),
			EmployerName:   "Acme",
			OriginURL:      ResolveURL(page.URL, Attr(a, "href")),
			SourcePlatform: "Test",
		})
	})
	return out
}

func units(srv *httptest.Server, keywords ...string) []Unit {
	var out []Unit
	for _, k := range keywords {
		out = append(out, Unit{Keyword: k, SearchURL: srv.URL + "/search/" + k})
	}
	return out
}

func TestBudget(t *testing.T) {
	assert.Equal(t, 25, Budget(50, 2))
	assert.Equal(t, 1, Budget(10, 40), "budget never drops to zero per unit")
	assert.Equal(t, 0, Budget(0, 3))
	assert.Equal(t, 0, Budget(10, 0))
}

func TestHarvester_SplitsBudgetAcrossUnits(t *testing.T) {
	srv := listingServer(t, 10)
	h := NewHarvester(testClient(), 0, testLogger())

	got, err := h.Run(context.Background(), units(srv, "go", "java"), 6, parseCards, nil)

	require.NoError(t, err)
	require.Len(t, got, 6)
	assert.Equal(t, "go role 0", got[0].Title)
	assert.Equal(t, "java role 0", got[3].Title)
}

func TestHarvester_FloorOfOneStillRespectsOverallCap(t *testing.T) {
	srv := listingServer(t, 5)
	h := NewHarvester(testClient(), 0, testLogger())

	got, err := h.Run(context.Background(), units(srv, "a", "b", "c", "d", "e"), 3, parseCards, nil)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a role 0", "b role 0", "c role 0"}, []string{got[0].Title, got[1].Title, got[2].Title})
}

func TestHarvester_FailingUnitDoesNotStopSweep(t *testing.T) {
	srv := listingServer(t, 2)
	h := NewHarvester(testClient(), 0, testLogger())
	us := append(units(srv, "broken"), units(srv, "go")...)
	us = append([]Unit{{Keyword: "down", SearchURL: "http://127.0.0.1:1/unreachable"}}, us...)

	got, err := h.Run(context.Background(), us, 30, parseCards, nil)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "go role 0", got[0].Title)
}

func TestHarvester_RecoversPanicInParser(t *testing.T) {
	srv := listingServer(t, 1)
	h := NewHarvester(testClient(), 0, testLogger())
	parse := func(page *Page, unit Unit) []domain.JobPosting {
		if unit.Keyword == "boom" {
			panic("unexpected markup")
		}
		return parseCards(page, unit)
	}

	got, err := h.Run(context.Background(), units(srv, "boom", "go"), 10, parse, nil)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "go role 0", got[0].Title)
}

func TestHarvester_DetailMergedAndFallback(t *testing.T) {
	srv := listingServer(t, 2)
	h := NewHarvester(testClient(), 0, testLogger())
	detail := func(ctx context.Context, rawURL string) (*domain.JobPosting, error) {
		if strings.HasSuffix(rawURL, "-1") {
			return nil, errors.New("connection reset")
		}
		loc := "Remote"
		return &domain.JobPosting{
			Title:        domain.UnknownTitle,
			EmployerName: "Acme Corp",
			Description:  "<p>Full description</p>",
			Location:     &loc,
		}, nil
	}

	got, err := h.Run(context.Background(), units(srv, "go"), 10, parseCards, detail)

	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "go role 0", got[0].Title, "sentinel detail title keeps summary title")
	assert.Equal(t, "Acme Corp", got[0].EmployerName)
	assert.Equal(t, "<p>Full description</p>", got[0].Description)
	assert.Equal(t, "Remote", *got[0].Location)

	assert.Equal(t, "go role 1", got[1].Title)
	assert.Equal(t, "Acme", got[1].EmployerName)
	assert.Empty(t, got[1].Description)
}

func TestHarvester_FinalizesPostings(t *testing.T) {
	srv := listingServer(t, 1)
	h := NewHarvester(testClient(), 0, testLogger())
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }

	got, err := h.Run(context.Background(), units(srv, "go"), 1, parseCards, nil)

	require.NoError(t, err)
	require.Len(t, got, 1)
	p := got[0]
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, now, p.FirstScrapedAt)
	assert.Equal(t, now, p.LastSeenAt)
	assert.True(t, p.IsActive)
	require.NotNil(t, p.Fingerprint)
	assert.Equal(t, fingerprint.Generate(p.OriginURL, p.Title, p.EmployerName), *p.Fingerprint)
}

func TestHarvester_PacesDetailFetches(t *testing.T) {
	srv := listingServer(t, 3)
	h := NewHarvester(testClient(), 50*time.Millisecond, testLogger())
	var calls atomic.Int32
	detail := func(ctx context.Context, rawURL string) (*domain.JobPosting, error) {
		calls.Add(1)
		return nil, nil
	}

	start := time.Now()
	got, err := h.Run(context.Background(), units(srv, "go"), 3, parseCards, detail)

	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, int32(3), calls.Load())
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestHarvester_StopsOnCancel(t *testing.T) {
	srv := listingServer(t, 3)
	h := NewHarvester(testClient(), 0, testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	detail := func(ctx context.Context, rawURL string) (*domain.JobPosting, error) {
		cancel()
		return nil, nil
	}

	got, err := h.Run(ctx, units(srv, "go", "java"), 10, parseCards, detail)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, got, 1)
}

func TestHarvester_StopsVisiblyWhenDeadlineIsTooClose(t *testing.T) {
	srv := listingServer(t, 3)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	h := NewHarvester(testClient(), time.Second, logger)
	detail := func(ctx context.Context, rawURL string) (*domain.JobPosting, error) {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	got, err := h.Run(ctx, units(srv, "go", "java"), 6, parseCards, detail)

	require.Error(t, err)
	assert.NoError(t, ctx.Err(), "sweep stops before the deadline passes")
	assert.Len(t, got, 1)
	assert.Contains(t, buf.String(), "deadline too close for next detail fetch")
}
