package index

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/swiftup/swiftup/internal/config"
	"github.com/swiftup/swiftup/internal/service"
	"github.com/swiftup/swiftup/internal/toolchain"
)

// Tag is one raw entry of the remote tag index. Consumed immediately by the
// parser, never retained.
type Tag struct {
	Name   string `json:"name"`
	Commit struct {
		SHA string `json:"sha"`
	} `json:"commit"`
}

// Kind narrows a fetch to one toolchain variant.
type Kind int

const (
	Releases Kind = iota
	Snapshots
)

var ErrNoMatch = errors.New("no matching toolchain found")

// Client pages through the remote tag index and turns tag names into
// toolchain versions.
type Client struct {
	Config *config.Config
	client service.HTTPClient
}

func New(conf *config.Config, client service.HTTPClient) *Client {
	if conf == nil {
		def := config.DefaultIndexConfig()
		conf = &def
	}

	if client == nil {
		client = service.NewHTTPClient(conf.RequestTimeout)
	}

	return &Client{
		Config: conf,
		client: client,
	}
}

// FetchFiltered walks index pages from the first one until a page comes back
// empty, keeping every entry that parses as the requested kind and passes
// pred. limit > 0 truncates the result to exactly limit entries and stops
// paging as soon as it is reached. Entry order is the index's own; any
// transport or decode error aborts the whole call with no partial result.
func (c *Client) FetchFiltered(ctx context.Context, kind Kind, limit int, pred func(toolchain.Version) bool) ([]toolchain.Version, error) {
	var acc []toolchain.Version
	for page := 1; ; page++ {
		tags, err := service.RequestJSON[[]Tag](ctx, c.client, c.pageURL(page), c.header())
		if err != nil {
			return nil, fmt.Errorf("failed to fetch tag index page %d: %w", page, err)
		}
		if len(tags) == 0 {
			return acc, nil
		}

		for _, tag := range tags {
			v, ok := toolchain.ParseTag(tag.Name)
			if !ok {
				continue
			}
			if kind == Releases && !v.IsStable() {
				continue
			}
			if kind == Snapshots && !v.IsSnapshot() {
				continue
			}
			if pred != nil && !pred(v) {
				continue
			}
			acc = append(acc, v)
		}

		if limit > 0 && len(acc) >= limit {
			return acc[:limit], nil
		}
	}
}

// Resolve turns a selector into a concrete version. Exact selectors stop at
// the first match; "latest" selectors collect up to ResolveLimit candidates
// and pick the maximum by version order.
func (c *Client) Resolve(ctx context.Context, sel toolchain.Selector) (toolchain.Version, error) {
	kind := Releases
	if sel.Snapshot() {
		kind = Snapshots
	}

	limit := c.Config.ResolveLimit
	if exact(sel) {
		limit = 1
	}

	matches, err := c.FetchFiltered(ctx, kind, limit, sel.Matches)
	if err != nil {
		return toolchain.Version{}, err
	}
	if len(matches) == 0 {
		return toolchain.Version{}, fmt.Errorf("%w for %q", ErrNoMatch, selectorName(sel))
	}

	best := matches[0]
	for _, v := range matches[1:] {
		if best.Less(v) {
			best = v
		}
	}
	return best, nil
}

// Latest returns the newest stable release.
func (c *Client) Latest(ctx context.Context) (toolchain.Version, error) {
	return c.Resolve(ctx, toolchain.Selector{Kind: toolchain.SelectLatest})
}

// LatestPatch returns the newest patch of a major.minor line.
func (c *Client) LatestPatch(ctx context.Context, major, minor uint) (toolchain.Version, error) {
	return c.Resolve(ctx, toolchain.Selector{Kind: toolchain.SelectLatestPatch, Major: major, Minor: minor})
}

// LatestSnapshot returns the newest snapshot on a branch.
func (c *Client) LatestSnapshot(ctx context.Context, branch toolchain.Branch) (toolchain.Version, error) {
	return c.Resolve(ctx, toolchain.Selector{Kind: toolchain.SelectSnapshot, Branch: branch})
}

func (c *Client) pageURL(page int) string {
	return fmt.Sprintf("%s?%s=%d&%s=%d",
		c.Config.TagsURL, c.Config.PerPageParam, c.Config.PageSize, c.Config.PageParam, page)
}

// header carries the optional bearer token; unauthenticated requests are
// valid, they just hit the index's rate limits sooner.
func (c *Client) header() http.Header {
	if c.Config.AuthToken == "" {
		return nil
	}
	h := http.Header{}
	h.Set("Authorization", "Bearer "+c.Config.AuthToken)
	return h
}

func exact(sel toolchain.Selector) bool {
	return sel.Kind == toolchain.SelectStable || sel.Kind == toolchain.SelectSnapshotDate
}

func selectorName(sel toolchain.Selector) string {
	switch sel.Kind {
	case toolchain.SelectLatest:
		return "latest"
	case toolchain.SelectStable:
		return fmt.Sprintf("%d.%d.%d", sel.Major, sel.Minor, sel.Patch)
	case toolchain.SelectLatestPatch:
		return fmt.Sprintf("%d.%d", sel.Major, sel.Minor)
	case toolchain.SelectSnapshot:
		return fmt.Sprintf("%s-snapshot", sel.Branch)
	case toolchain.SelectSnapshotDate:
		return fmt.Sprintf("%s-snapshot-%s", sel.Branch, sel.Date)
	default:
		return "unknown"
	}
}
