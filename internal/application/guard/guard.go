// Package guard holds the request-gating checks that run before blog
// handlers. Each guard is a function of the request's session and path
// parameters; routes compose them in the order they need.
package guard

import (
	"context"
	"fmt"

	"prana/internal/domain/entity"
)

// Request is what a guard may look at.
type Request struct {
	Session entity.Session
	Params  map[string]string
}

func (r Request) Param(name string) string {
	return r.Params[name]
}

// Guard allows a request by returning nil. A *Denial ends the request with its
// status; any other error is an internal failure for the caller to escalate.
type Guard interface {
	Check(ctx context.Context, req Request) error
}

type Func func(ctx context.Context, req Request) error

func (f Func) Check(ctx context.Context, req Request) error {
	return f(ctx, req)
}

// Denial is a classified refusal carrying the HTTP status to answer with.
type Denial struct {
	Status  int
	Message string
}

func (d *Denial) Error() string {
	return fmt.Sprintf("%d: %s", d.Status, d.Message)
}

func deny(status int, message string) *Denial {
	return &Denial{Status: status, Message: message}
}

// Chain runs guards in order and stops at the first refusal or failure.
func Chain(guards ...Guard) Guard {
	return Func(func(ctx context.Context, req Request) error {
		for _, g := range guards {
			if err := g.Check(ctx, req); err != nil {
				return err
			}
		}

		return nil
	})
}
