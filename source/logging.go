// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package source

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
)

type loggingSource struct {
	kind string
	next Source
}

// WithLogging wraps a source with fetch logging
func WithLogging(kind string, next Source) Source {
	return &loggingSource{kind: kind, next: next}
}

func (s *loggingSource) Values(ctx context.Context, rng string) ([][]string, error) {
	start := time.Now()

	rows, err := s.next.Values(ctx, rng)
	duration := time.Since(start)
	if err != nil {
		slog.Error("sheet fetch failed",
			"source", s.kind,
			"range", rng,
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	cells := 0
	for _, row := range rows {
		cells += len(row)
	}
	slog.Info("sheet fetched",
		"source", s.kind,
		"range", rng,
		"rows", len(rows),
		"cells", humanize.Comma(int64(cells)),
		"duration_ms", duration.Milliseconds(),
	)
	return rows, nil
}
