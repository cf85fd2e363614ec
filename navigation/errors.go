package navigation

import (
	"errors"
	"fmt"
)

// ErrNoHistory is returned by Navigator.Back when there is nothing to go back to.
var ErrNoHistory = errors.New("navigation history is empty")

// DuplicatePathError reports two definitions that normalize to the same path.
type DuplicatePathError struct {
	Path string
	// First and Second are the names of the conflicting definitions, in
	// declaration order.
	First  string
	Second string
}

func (e *DuplicatePathError) Error() string {
	return fmt.Sprintf("duplicate route path %q: declared by %q and %q", e.Path, e.First, e.Second)
}

// Conflict marks the error as a conflict for errdefs classification.
func (e *DuplicatePathError) Conflict() {}

// DuplicateNameError reports two definitions sharing a name.
type DuplicateNameError struct {
	Name string
	// FirstPath and SecondPath are the paths of the conflicting definitions.
	FirstPath  string
	SecondPath string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate route name %q: declared for %q and %q", e.Name, e.FirstPath, e.SecondPath)
}

func (e *DuplicateNameError) Conflict() {}

// InvalidRouteError reports a definition that breaks a table invariant other
// than uniqueness.
type InvalidRouteError struct {
	// Index is the position of the definition in the input.
	Index  int
	Route  RouteDefinition
	Reason string
}

func (e *InvalidRouteError) Error() string {
	return fmt.Sprintf("invalid route #%d (path %q, name %q): %s", e.Index, e.Route.Path, e.Route.Name, e.Reason)
}

func (e *InvalidRouteError) InvalidParameter() {}

// NotFoundError is returned when no definition matches a path or name.
// ByName records which key was looked up: Name when set, Path otherwise.
type NotFoundError struct {
	Path   string
	Name   string
	ByName bool
}

func (e *NotFoundError) Error() string {
	if e.ByName {
		return fmt.Sprintf("route not found: name %q", e.Name)
	}
	return fmt.Sprintf("route not found: path %q", e.Path)
}

func (e *NotFoundError) NotFound() {}
