package navigation

import (
	"context"
	"fmt"
)

// Mounter is the rendering layer a Navigator hands resolved routes to.
type Mounter interface {
	Mount(ctx context.Context, route RouteDefinition) error
}

// MounterFunc adapts an ordinary function to Mounter.
type MounterFunc func(ctx context.Context, route RouteDefinition) error

func (f MounterFunc) Mount(ctx context.Context, route RouteDefinition) error {
	return f(ctx, route)
}

// Navigator drives a Mounter from navigation requests and keeps the history
// needed for back navigation. It is meant to be owned by a single UI event
// loop and is not safe for concurrent use.
type Navigator struct {
	router  *Router
	mounter Mounter
	history *Stack
	current *RouteDefinition
}

// NewNavigator returns a Navigator with an empty history.
func NewNavigator(r *Router, m Mounter) *Navigator {
	return &Navigator{
		router:  r,
		mounter: m,
		history: NewStack(),
	}
}

// Navigate resolves target and mounts its view. Targets starting with "/" are
// paths, anything else is a route name. On failure nothing is mounted and the
// history is unchanged; the caller decides what to show instead. Navigating
// to the mounted route is a no-op.
func (n *Navigator) Navigate(ctx context.Context, target string) (RouteDefinition, error) {
	def, err := n.router.Resolve(target)
	if err != nil {
		return RouteDefinition{}, err
	}
	if n.current != nil && n.current.Name == def.Name {
		return def, nil
	}
	if err := n.mounter.Mount(ctx, def); err != nil {
		return RouteDefinition{}, fmt.Errorf("mount %s: %w", def.Name, err)
	}
	if n.current != nil {
		n.history.Push(*n.current)
	}
	n.current = &def
	return def, nil
}

// Back re-mounts the previous route. It returns ErrNoHistory when there is
// nowhere to go back to.
func (n *Navigator) Back(ctx context.Context) (RouteDefinition, error) {
	prev, ok := n.history.Peek()
	if !ok {
		return RouteDefinition{}, ErrNoHistory
	}
	if err := n.mounter.Mount(ctx, prev); err != nil {
		return RouteDefinition{}, fmt.Errorf("mount %s: %w", prev.Name, err)
	}
	n.history.Pop()
	n.current = &prev
	return prev, nil
}

// Current returns the mounted route, if any.
func (n *Navigator) Current() (RouteDefinition, bool) {
	if n.current == nil {
		return RouteDefinition{}, false
	}
	return *n.current, true
}

// Depth returns the number of routes Back can return to.
func (n *Navigator) Depth() int {
	return n.history.Len()
}
