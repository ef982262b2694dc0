// Package source loads the HTML pages listing the elected officials,
// either over HTTP(S) or from local files.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.ntppool.org/common/logger"
	"go.ntppool.org/common/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/bthstudent/javcheck/version"
)

// DefaultURL is the student union's page of elected officials.
const DefaultURL = "https://bthstudent.se/studentkaren/fortroendevalda/"

const maxBodySize = 32 << 20

// StatusError is returned when a server answers with anything but 200.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Temporary reports whether the request is worth repeating.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// Fetcher retrieves sources. The zero value is not usable; use New.
type Fetcher struct {
	client *http.Client

	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsed      time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient replaces the default traced client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithBackOff sets the retry schedule for transient HTTP failures.
func WithBackOff(initial, max, maxElapsed time.Duration) Option {
	return func(f *Fetcher) {
		f.initialInterval = initial
		f.maxInterval = max
		f.maxElapsed = maxElapsed
	}
}

func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		initialInterval: 500 * time.Millisecond,
		maxInterval:     10 * time.Second,
		maxElapsed:      30 * time.Second,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = NewHTTPClient()
	}
	return f
}

// IsURL reports whether location is fetched over HTTP rather than read
// from disk.
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Fetch returns the contents of location, a URL or a file path.
func (f *Fetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	ctx, span := tracing.Start(ctx, "source.Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("source.location", location))

	var data []byte
	var err error
	if IsURL(location) {
		data, err = f.fetchURL(ctx, location)
	} else {
		data, err = os.ReadFile(location)
		if err != nil {
			err = fmt.Errorf("read %s: %w", location, err)
		}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("source.bytes", len(data)))
	return data, nil
}

// FetchAll fetches every location concurrently. Results are in the order
// of locations; the first failure cancels the remaining fetches.
func (f *Fetcher) FetchAll(ctx context.Context, locations []string) ([][]byte, error) {
	docs := make([][]byte, len(locations))

	g, ctx := errgroup.WithContext(ctx)
	for i, loc := range locations {
		g.Go(func() error {
			data, err := f.Fetch(ctx, loc)
			if err != nil {
				return err
			}
			docs[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (f *Fetcher) fetchURL(ctx context.Context, url string) ([]byte, error) {
	log := logger.FromContext(ctx)

	expback := backoff.NewExponentialBackOff()
	expback.InitialInterval = f.initialInterval
	expback.MaxInterval = f.maxInterval

	attempts := 0
	data, err := backoff.Retry(ctx, func() ([]byte, error) {
		attempts++
		data, err := f.get(ctx, url)
		if err == nil {
			return data, nil
		}
		var statusErr *StatusError
		if errors.As(err, &statusErr) && !statusErr.Temporary() {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	},
		backoff.WithBackOff(expback),
		backoff.WithMaxElapsedTime(f.maxElapsed),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.WarnContext(ctx, "fetch failed, retrying", "url", url, "err", err, "next", next)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("fetch %s (%d attempts): %w", url, attempts, err)
	}

	log.DebugContext(ctx, "fetched source", "url", url, "bytes", len(data), "attempts", attempts)
	return data, nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("User-Agent", "javcheck/"+version.Version())
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
}
