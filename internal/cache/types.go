package cache

import (
	"net/http"
	"time"
)

// State is the controller lifecycle: uninstalled → installing → active.
// A deploy under a new generation name re-enters installing; activation
// deletes every other generation, so at most one is live at a time.
type State string

const (
	StateUninstalled State = "uninstalled"
	StateInstalling  State = "installing"
	StateActive      State = "active"
)

// Entry is one cached response, served verbatim on a hit.
type Entry struct {
	Status int
	Header http.Header
	Body   []byte
}

// Config parameterizes the single cache controller. Changing Generation is
// the sole mechanism to invalidate all previously cached entries.
type Config struct {
	Generation  string
	Precache    []string
	Passthrough bool
	OriginURL   string
	Capacity    int
	TTL         time.Duration
}
