package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/swiftup/swiftup/internal/service"
	"github.com/swiftup/swiftup/internal/toolchain"
	"github.com/swiftup/swiftup/internal/utils"
)

// Progress is one in-flight download notification.
type Progress struct {
	Received int64
	Total    int64 // -1 when the server sends no content-length
}

type ProgressFunc func(Progress)

// ToolchainDownloader fully replaces the built-in transfer when supplied at
// construction time (test doubles, platform package managers).
type ToolchainDownloader interface {
	DownloadToolchain(ctx context.Context, version toolchain.Version, url, dest string, onProgress ProgressFunc) error
}

// FailedError is a non-200 answer from the distribution host.
type FailedError struct {
	URL    string
	Status int
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("download of %s failed with status %d", e.URL, e.Status)
}

// NotFoundError is the soft-404: the host answers 200 with an HTML error
// page instead of the artifact. Content-type sniffing is fragile if the host
// ever serves legitimate HTML artifacts, but it is the only signal there is.
type NotFoundError struct {
	URL string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no artifact at %s (host returned an HTML page)", e.URL)
}

const (
	// progressInterval throttles callbacks on fast links. The final chunk
	// always reports regardless of elapsed time.
	progressInterval = 250 * time.Millisecond
	chunkSize        = 32 * 1024
)

type Downloader struct {
	client   service.HTTPClient
	delegate ToolchainDownloader
}

func New(client service.HTTPClient, delegate ToolchainDownloader) *Downloader {
	if client == nil {
		client = service.NewDownloadClient()
	}
	return &Downloader{
		client:   client,
		delegate: delegate,
	}
}

// Download streams url into dest, reporting throttled progress. On failure
// dest may be left partial; callers treat it as invalid and remove it.
func (d *Downloader) Download(ctx context.Context, version toolchain.Version, url, dest string, onProgress ProgressFunc) error {
	if d.delegate != nil {
		return d.delegate.DownloadToolchain(ctx, version, url, dest, onProgress)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", service.UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform request: %w", err)
	}
	defer utils.Try(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return &FailedError{URL: url, Status: resp.StatusCode}
	}

	// The host redirects unknown paths to an HTML error page that itself
	// answers 200. Checked before the destination file exists, so a
	// soft-404 leaves nothing behind.
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return &NotFoundError{URL: url}
	}

	return transfer(resp.Body, dest, resp.ContentLength, onProgress)
}

func transfer(body io.Reader, dest string, total int64, onProgress ProgressFunc) (err error) {
	f, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", dest, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close failed: %w", cerr)
		}
	}()

	buf := make([]byte, chunkSize)
	var received int64
	lastReport := time.Now()
	finalReported := false

	for {
		n, rerr := body.Read(buf)
		if n > 0 {
			if _, werr := f.Write(buf[:n]); werr != nil {
				return fmt.Errorf("failed to write %s: %w", dest, werr)
			}
			received += int64(n)

			if onProgress != nil {
				final := received == total
				if final || time.Since(lastReport) >= progressInterval {
					onProgress(Progress{Received: received, Total: total})
					lastReport = time.Now()
					finalReported = final
				}
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return fmt.Errorf("failed to read download stream: %w", rerr)
		}
	}

	// guaranteed 100% notification, also covers unknown-length bodies
	if onProgress != nil && !finalReported {
		onProgress(Progress{Received: received, Total: total})
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", dest, err)
	}
	return err
}
