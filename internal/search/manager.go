package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/swiftup/swiftup/internal/globalconfig"
	"github.com/swiftup/swiftup/internal/index"
	"github.com/swiftup/swiftup/internal/logger"
	"github.com/swiftup/swiftup/internal/printer"
	"github.com/swiftup/swiftup/internal/toolchain"
)

type Searcher struct {
	Config *globalconfig.PersistentConfig
	Index  *index.Client
}

func New(cfg *globalconfig.PersistentConfig, idx *index.Client) *Searcher {
	if idx == nil {
		idx = index.New(nil, nil)
	}
	return &Searcher{
		Config: cfg,
		Index:  idx,
	}
}

// Execute lists remote toolchains whose name contains the pattern, in index
// order (newest first on the real index).
func (s *Searcher) Execute(ctx context.Context, pattern string, snapshots bool, limit int) error {
	kind := index.Releases
	if snapshots {
		kind = index.Snapshots
	}

	matches, err := s.Index.FetchFiltered(ctx, kind, limit, func(v toolchain.Version) bool {
		return strings.Contains(v.String(), pattern)
	})
	if err != nil {
		return fmt.Errorf("failed to search toolchains: %w", err)
	}

	if len(matches) == 0 {
		logger.Info("No toolchains match %q", pattern)
		return nil
	}

	p := printer.NewColorPrinter()
	table := logger.CreateTable([]string{"Version", "Status"})
	for _, v := range matches {
		name := v.String()
		status := ""
		switch {
		case s.Config != nil && s.Config.InUse == name:
			status = p.Highlight("● in use")
		case s.Config != nil && s.Config.Has(name):
			status = p.Success("✓ installed")
		}
		if err := table.Append([]string{name, status}); err != nil {
			return fmt.Errorf("an error occurred while appending to the table: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("an error occurred while rendering the table: %w", err)
	}
	return nil
}
