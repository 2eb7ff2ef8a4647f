package source

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job_aggregator/internal/config"
)

func TestBuild(t *testing.T) {
	cfg, err := config.Parse([]byte(`
sources:
  naukri:
    enabled: false
`))
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	extractors := Build(cfg, logger)

	var names []string
	enabled := map[string]bool{}
	for _, e := range extractors {
		names = append(names, e.Name())
		enabled[e.Name()] = e.Enabled()
	}

	assert.Equal(t, []string{"LinkedIn", "Internshala", "Naukri", "Company Website"}, names)
	assert.True(t, enabled["LinkedIn"])
	assert.False(t, enabled["Naukri"])
	assert.True(t, enabled["Company Website"])
}
