package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store keeps generated report files in a scratch directory. Artifacts have
// one lifetime policy everywhere: the janitor deletes anything older than the
// TTL, whether or not it was downloaded or emailed.
type Store struct {
	dir string
	ttl time.Duration
	log zerolog.Logger
}

var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9_]`)

func NewStore(dir string, ttl time.Duration, log zerolog.Logger) (*Store, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "ralph_reports")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{dir: dir, ttl: ttl, log: log}, nil
}

func (s *Store) Dir() string { return s.dir }

// Save writes the PDF under a unique name and returns its path and filename.
func (s *Store) Save(userName string, pdf []byte) (string, string, error) {
	safe := unsafeFilename.ReplaceAllString(strings.ToLower(userName), "_")
	filename := fmt.Sprintf("ralph_analysis_%s_%s_%s.pdf",
		safe, time.Now().Format("20060102_150405"), uuid.NewString()[:8])
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", "", fmt.Errorf("write report: %w", err)
	}
	return path, filename, nil
}

// Sweep removes expired artifacts and returns how many were deleted.
func (s *Store) Sweep() int {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.log.Warn().Err(err).Str("dir", s.dir).Msg("report sweep: read dir failed")
		return 0
	}
	cutoff := time.Now().Add(-s.ttl)
	removed := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			s.log.Warn().Err(err).Str("file", e.Name()).Msg("report sweep: remove failed")
			continue
		}
		removed++
	}
	if removed > 0 {
		s.log.Info().Int("removed", removed).Msg("report sweep done")
	}
	return removed
}

// Janitor sweeps periodically until the context is cancelled.
func (s *Store) Janitor(ctx context.Context) {
	interval := s.ttl / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
