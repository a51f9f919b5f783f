package index

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/swiftup/swiftup/internal/config"
	"github.com/swiftup/swiftup/internal/service"
	"github.com/swiftup/swiftup/internal/toolchain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tagServer serves pages of tag names keyed by page number; missing pages
// answer an empty array like the real index does after exhaustion.
func tagServer(t *testing.T, pages map[int][]string, requests *[]*http.Request) *httptest.Server {
	t.Helper()
	return httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests != nil {
			*requests = append(*requests, r.Clone(context.Background()))
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		names := pages[page]
		tags := make([]Tag, len(names))
		for i, n := range names {
			tags[i].Name = n
		}
		if err := json.NewEncoder(w).Encode(tags); err != nil {
			t.Fatalf("failed to encode tags: %v", err)
		}
	}))
}

func testClient(server *httptest.Server, token string) *Client {
	conf := config.Config{
		TagsURL:        server.URL,
		PageSize:       3,
		PageParam:      "page",
		PerPageParam:   "per_page",
		AuthToken:      token,
		RequestTimeout: 5 * time.Second,
		ResolveLimit:   50,
	}
	return New(&conf, server.Client())
}

func TestFetchFilteredOrderAndSkipping(t *testing.T) {
	server := tagServer(t, map[int][]string{
		1: {"swift-5.7.0-RELEASE", "swift-5.6.3-RELEASE", "random-tag"},
	}, nil)
	defer server.Close()

	got, err := testClient(server, "").FetchFiltered(context.Background(), Releases, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []toolchain.Version{
		toolchain.NewStable(5, 7, 0),
		toolchain.NewStable(5, 6, 3),
	}, got)
}

func TestFetchFilteredLimitStopsPaging(t *testing.T) {
	var requests []*http.Request
	server := tagServer(t, map[int][]string{
		1: {"swift-5.7.0-RELEASE", "swift-5.6.3-RELEASE", "swift-5.6.2-RELEASE"},
		2: {"swift-5.6.1-RELEASE", "swift-5.6.0-RELEASE", "swift-5.5.3-RELEASE"},
		3: {"swift-5.5.2-RELEASE"},
	}, &requests)
	defer server.Close()

	got, err := testClient(server, "").FetchFiltered(context.Background(), Releases, 2, nil)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, toolchain.NewStable(5, 7, 0), got[0])
	// limit satisfied by page 1, pages 2 and 3 must never be requested
	assert.Len(t, requests, 1)
}

func TestFetchFilteredPredicateNeverMatches(t *testing.T) {
	server := tagServer(t, map[int][]string{
		1: {"swift-5.7.0-RELEASE"},
		2: {"swift-5.6.3-RELEASE"},
	}, nil)
	defer server.Close()

	got, err := testClient(server, "").FetchFiltered(context.Background(), Releases, 0,
		func(toolchain.Version) bool { return false })
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFetchFilteredKind(t *testing.T) {
	server := tagServer(t, map[int][]string{
		1: {"swift-5.7.0-RELEASE", "main-snapshot-2022-09-12", "5.7-snapshot-2022-09-10"},
	}, nil)
	defer server.Close()

	got, err := testClient(server, "").FetchFiltered(context.Background(), Snapshots, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []toolchain.Version{
		toolchain.NewSnapshot(toolchain.MainBranch(), "2022-09-12"),
		toolchain.NewSnapshot(toolchain.ReleaseBranch(5, 7), "2022-09-10"),
	}, got)
}

func TestFetchFilteredPropagatesFailure(t *testing.T) {
	calls := 0
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			_ = json.NewEncoder(w).Encode([]Tag{{Name: "swift-5.7.0-RELEASE"}})
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("rate limited"))
	}))
	defer server.Close()

	_, err := testClient(server, "").FetchFiltered(context.Background(), Releases, 0, nil)
	require.Error(t, err)

	var reqErr *service.RequestFailedError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.Status)
	assert.Contains(t, reqErr.Message, "rate limited")
}

func TestFetchFilteredSendsBearerToken(t *testing.T) {
	var requests []*http.Request
	server := tagServer(t, map[int][]string{}, &requests)
	defer server.Close()

	_, err := testClient(server, "secret").FetchFiltered(context.Background(), Releases, 0, nil)
	require.NoError(t, err)
	require.NotEmpty(t, requests)
	assert.Equal(t, "Bearer secret", requests[0].Header.Get("Authorization"))
}

func TestResolve(t *testing.T) {
	server := tagServer(t, map[int][]string{
		1: {
			"swift-5.6.3-RELEASE",
			"swift-5.7.0-RELEASE",
			"main-snapshot-2022-09-10",
			"main-snapshot-2022-09-12",
			"5.6-snapshot-2022-09-01",
		},
	}, nil)
	defer server.Close()

	c := testClient(server, "")

	v, err := c.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, toolchain.NewStable(5, 7, 0), v)

	v, err = c.LatestPatch(context.Background(), 5, 6)
	require.NoError(t, err)
	assert.Equal(t, toolchain.NewStable(5, 6, 3), v)

	v, err = c.LatestSnapshot(context.Background(), toolchain.MainBranch())
	require.NoError(t, err)
	assert.Equal(t, toolchain.NewSnapshot(toolchain.MainBranch(), "2022-09-12"), v)

	sel, err := toolchain.ParseSelector("5.6.3")
	require.NoError(t, err)
	v, err = c.Resolve(context.Background(), sel)
	require.NoError(t, err)
	assert.Equal(t, toolchain.NewStable(5, 6, 3), v)

	sel, err = toolchain.ParseSelector("4.0")
	require.NoError(t, err)
	_, err = c.Resolve(context.Background(), sel)
	require.ErrorIs(t, err, ErrNoMatch)
}

// Resolving the same selector twice yields the same value: parsing and
// selection are deterministic.
func TestResolveDeterministic(t *testing.T) {
	server := tagServer(t, map[int][]string{
		1: {"swift-5.7.0-RELEASE", "swift-5.6.3-RELEASE"},
	}, nil)
	defer server.Close()

	c := testClient(server, "")
	first, err := c.Latest(context.Background())
	require.NoError(t, err)
	second, err := c.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
