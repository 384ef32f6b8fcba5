package middleware

import (
	"funbook/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares shared by every route
// group.
type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{
		l: l,
	}
}
