package task

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Source is one independently failable way to obtain the task dataset.
// Sources are tried in order; the first success wins.
type Source interface {
	// Name identifies the source in error messages.
	Name() string
	// Load fetches and decodes the dataset.
	Load(ctx context.Context) ([]Task, error)
}

// JSONSource loads the dataset from a JSON file path or http(s) URL.
type JSONSource struct {
	Location string
}

func (s JSONSource) Name() string { return "json:" + s.Location }

func (s JSONSource) Load(ctx context.Context) ([]Task, error) {
	r, err := open(ctx, s.Location)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return DecodeJSON(r)
}

// CSVSource loads the dataset from a CSV file path or http(s) URL.
type CSVSource struct {
	Location string
}

func (s CSVSource) Name() string { return "csv:" + s.Location }

func (s CSVSource) Load(ctx context.Context) ([]Task, error) {
	r, err := open(ctx, s.Location)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return DecodeCSV(r)
}

// LoadError reports that every data source failed. It keeps the per-source
// failures so the caller can show them all.
type LoadError struct {
	Failures map[string]error
	Order    []string
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("all task data sources failed")
	for _, name := range e.Order {
		fmt.Fprintf(&b, "; %s: %v", name, e.Failures[name])
	}
	return b.String()
}

// Load tries each source in order and returns the first successfully
// loaded dataset. When every source fails it returns a *LoadError
// carrying each failure.
func Load(ctx context.Context, sources ...Source) ([]Task, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("no task data sources configured")
	}

	loadErr := &LoadError{Failures: make(map[string]error)}
	for _, src := range sources {
		tasks, err := src.Load(ctx)
		if err == nil {
			return tasks, nil
		}
		loadErr.Order = append(loadErr.Order, src.Name())
		loadErr.Failures[src.Name()] = err
	}
	return nil, loadErr
}

// ReadSource returns the raw bytes of a dataset location, which may be a
// local file path or an http(s) URL. Used for validation outside the
// decoding path.
func ReadSource(ctx context.Context, location string) ([]byte, error) {
	r, err := open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

const fetchTimeout = 30 * time.Second

// open returns a reader for a local file path or an http(s) URL.
func open(ctx context.Context, location string) (io.ReadCloser, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return fetch(ctx, location)
	}
	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	return f, nil
}

func fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("fetch dataset: unexpected status %s", resp.Status)
	}
	return &cancelReadCloser{ReadCloser: resp.Body, cancel: cancel}, nil
}

// cancelReadCloser releases the request context when the body is closed.
type cancelReadCloser struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelReadCloser) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
