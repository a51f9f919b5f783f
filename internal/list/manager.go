package list

import (
	"context"
	"fmt"
	"sort"

	"github.com/swiftup/swiftup/internal/globalconfig"
	"github.com/swiftup/swiftup/internal/index"
	"github.com/swiftup/swiftup/internal/logger"
	"github.com/swiftup/swiftup/internal/printer"
	"github.com/swiftup/swiftup/internal/toolchain"
	"github.com/swiftup/swiftup/internal/utils"
)

// row is a view model for rendering.
type row struct {
	Name    string
	Kind    string // "release" | "snapshot"
	Status  string
	version toolchain.Version
	parsed  bool
}

type Lister struct {
	Config *globalconfig.PersistentConfig
	Index  *index.Client
}

func New(cfg *globalconfig.PersistentConfig, idx *index.Client) *Lister {
	if idx == nil {
		idx = index.New(nil, nil)
	}
	return &Lister{
		Config: cfg,
		Index:  idx,
	}
}

// Execute renders the toolchain table.
// - available=false => installed toolchains only
// - available=true  => newest published releases, marked when installed
func (l *Lister) Execute(ctx context.Context, available bool, limit int) error {
	p := printer.NewColorPrinter()

	var names []string
	if available {
		remote, err := l.Index.FetchFiltered(ctx, index.Releases, limit, nil)
		if err != nil {
			return fmt.Errorf("failed to list available toolchains: %w", err)
		}
		names = utils.Map(remote, func(v toolchain.Version) string { return v.String() })
	} else {
		names = append(names, l.Config.Installed...)
	}

	rows := utils.Map(names, func(name string) row {
		r := row{Name: name, Kind: "release"}
		if v, ok := toolchain.ParseName(name); ok {
			r.version = v
			r.parsed = true
			if v.IsSnapshot() {
				r.Kind = "snapshot"
			}
		}
		switch {
		case l.Config.InUse == name:
			r.Status = p.Highlight("● in use")
		case l.Config.Has(name):
			r.Status = p.Success("✓ installed")
		default:
			r.Status = "available"
		}
		return r
	})

	// newest first; names that fail to parse sink to the bottom
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].parsed != rows[j].parsed {
			return rows[i].parsed
		}
		return rows[j].version.Less(rows[i].version)
	})

	table := logger.CreateTable([]string{"Version", "Type", "Status"})
	for _, r := range rows {
		if err := table.Append([]string{r.Name, r.Kind, r.Status}); err != nil {
			return fmt.Errorf("an error occurred while appending to the table: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("an error occurred while rendering the table: %w", err)
	}

	if len(rows) == 0 && !available {
		logger.Info("No toolchains installed yet. Try 'swiftup install latest'")
	}
	return nil
}
