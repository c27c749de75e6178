package main

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nextcore/glint/pkg/platform"
)

const defaultStylesheetURL = "https://cdn.nextcore.dev/glint/demo.css"

// StylesheetLoader fetches an external styling resource once, at startup.
// Only the readiness signal matters to the app: the root withholds its
// subtree until Ready fires. A fetch that never completes simply never
// fires, which leaves the placeholder up indefinitely.
type StylesheetLoader struct {
	URL string

	// Fetch overrides the HTTP fetch. Tests inject a fetch that resolves
	// immediately or never.
	Fetch func(ctx context.Context, url string) error

	ctx     context.Context
	cancel  context.CancelFunc
	started sync.Once
	stopped sync.Once
}

// NewStylesheetLoader creates a loader for the given URL. An empty URL uses
// the default demo stylesheet.
func NewStylesheetLoader(url string) *StylesheetLoader {
	if url == "" {
		url = defaultStylesheetURL
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &StylesheetLoader{URL: url, ctx: ctx, cancel: cancel}
}

// Load starts the fetch in the background. When the resource resolves,
// onReady is marshalled onto the UI thread via platform.Dispatch. Load is
// one-shot; repeated calls do nothing.
func (l *StylesheetLoader) Load(onReady func()) {
	l.started.Do(func() {
		id := uuid.NewString()
		log.Printf("stylesheet: loading %s id=%s", l.URL, id)

		fetch := l.Fetch
		if fetch == nil {
			fetch = fetchURL
		}

		go func() {
			start := time.Now()
			if err := fetch(l.ctx, l.URL); err != nil {
				// Leave the placeholder up; there is no error surface.
				log.Printf("stylesheet: load failed id=%s: %v", id, err)
				return
			}
			log.Printf("stylesheet: ready id=%s after %s", id, time.Since(start).Round(time.Millisecond))
			platform.Dispatch(onReady)
		}()
	})
}

// Release cancels any in-flight fetch. Exactly one release happens no
// matter how often it is called.
func (l *StylesheetLoader) Release() {
	l.stopped.Do(l.cancel)
}

func fetchURL(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}
