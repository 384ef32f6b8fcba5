package cache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	pkgLog "funbook/pkg/log"
)

// Controller owns the named cache generations and the interception
// middleware. Install and Activate are the only writers; interception reads
// the current generation and never stores a miss.
type Controller struct {
	l   pkgLog.Logger
	cfg Config

	httpClient *http.Client

	mu          sync.RWMutex
	generations map[string]*expirable.LRU[string, Entry]
	state       State
}

// New creates a cache controller. It starts uninstalled; call Install and
// Activate before mounting the middleware.
func New(l pkgLog.Logger, cfg Config) *Controller {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = 256
	}
	cfg.Capacity = capacity

	return &Controller{
		l:           l,
		cfg:         cfg,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		generations: make(map[string]*expirable.LRU[string, Entry]),
		state:       StateUninstalled,
	}
}

// Open creates the named generation if it does not exist yet and returns it.
func (c *Controller) Open(name string) *expirable.LRU[string, Entry] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if g, ok := c.generations[name]; ok {
		return g
	}
	g := expirable.NewLRU[string, Entry](c.cfg.Capacity, nil, c.cfg.TTL)
	c.generations[name] = g
	return g
}

// Install opens the current generation and pre-populates it with the
// configured must-have paths. A pre-cache fetch failure is logged and
// swallowed; install always completes so a missing asset never keeps the
// cache layer from coming up.
func (c *Controller) Install(ctx context.Context) error {
	c.setState(StateInstalling)

	gen := c.Open(c.cfg.Generation)

	if c.cfg.Passthrough || c.cfg.OriginURL == "" || len(c.cfg.Precache) == 0 {
		c.l.Infof(ctx, "cache: installed generation %s (no precache)", c.cfg.Generation)
		return nil
	}

	for _, path := range c.cfg.Precache {
		entry, err := c.fetch(ctx, c.cfg.OriginURL+path)
		if err != nil {
			c.l.Warnf(ctx, "cache: precache of %s failed: %v", path, err)
			continue
		}
		gen.Add(path, entry)
	}

	c.l.Infof(ctx, "cache: installed generation %s with %d entries", c.cfg.Generation, gen.Len())
	return nil
}

// Activate deletes every generation whose name differs from the current one
// and marks the controller active.
func (c *Controller) Activate(ctx context.Context) error {
	c.mu.Lock()
	for name := range c.generations {
		if name != c.cfg.Generation {
			delete(c.generations, name)
			c.l.Infof(ctx, "cache: deleted stale generation %s", name)
		}
	}
	c.mu.Unlock()

	c.setState(StateActive)
	c.l.Infof(ctx, "cache: generation %s active", c.cfg.Generation)
	return nil
}

// Generations returns the sorted names of the existing generations.
func (c *Controller) Generations() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.generations))
	for name := range c.generations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// State returns the controller lifecycle state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// lookup resolves a request URI (path plus query) in the current generation.
func (c *Controller) lookup(uri string) (Entry, bool) {
	c.mu.RLock()
	gen, ok := c.generations[c.cfg.Generation]
	c.mu.RUnlock()
	if !ok {
		return Entry{}, false
	}
	return gen.Get(uri)
}

func (c *Controller) fetch(ctx context.Context, url string) (Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to build precache request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to fetch precache resource: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Entry{}, fmt.Errorf("precache resource status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to read precache resource: %w", err)
	}

	return Entry{
		Status: resp.StatusCode,
		Header: resp.Header.Clone(),
		Body:   body,
	}, nil
}
