package resolveinput

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	backoff "github.com/cenkalti/backoff/v5"
)

const defaultFetchTimeout = 2 * time.Minute

// defaultHTTPFetcher downloads a remote archive with bounded exponential
// backoff, mirroring the retry policy the teacher applies to its registry
// resolver: a handful of attempts, permanent failure on 4xx responses.
type defaultHTTPFetcher struct {
	client *http.Client
}

// NewDefaultFetcher returns the production HTTPFetcher.
func NewDefaultFetcher() HTTPFetcher {
	return &defaultHTTPFetcher{client: &http.Client{Timeout: defaultFetchTimeout}}
}

func (f *defaultHTTPFetcher) Fetch(ctx context.Context, url, destPath string) error {
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		if err := f.fetchOnce(ctx, url, destPath); err != nil {
			var perm *permanentFetchError
			if asPermanent(err, &perm) {
				return struct{}{}, backoff.Permanent(err)
			}
			return struct{}{}, err
		}
		return struct{}{}, nil
	},
		backoff.WithBackOff(newFetchBackoff()),
		backoff.WithMaxTries(3),
		backoff.WithMaxElapsedTime(0),
	)
	return err
}

func newFetchBackoff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.Multiplier = 2.0
	return b
}

type permanentFetchError struct {
	statusCode int
	url        string
}

func (e *permanentFetchError) Error() string {
	return fmt.Sprintf("fetching %s: permanent HTTP status %d", e.url, e.statusCode)
}

func asPermanent(err error, target **permanentFetchError) bool {
	perm, ok := err.(*permanentFetchError)
	if !ok {
		return false
	}
	*target = perm
	return true
}

func (f *defaultHTTPFetcher) fetchOnce(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return &permanentFetchError{statusCode: resp.StatusCode, url: url}
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	out, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return fmt.Errorf("creating %s: %w", destPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil { //nolint:gosec // destination size is whatever the remote archive is.
		return fmt.Errorf("writing %s: %w", destPath, err)
	}
	return nil
}
