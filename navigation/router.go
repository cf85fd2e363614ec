package navigation

import "strings"

// Router resolves navigation requests against a Table. It holds no state of
// its own and is safe for concurrent use.
type Router struct {
	table *Table
}

// NewRouter returns a Router over t.
func NewRouter(t *Table) *Router {
	return &Router{table: t}
}

// Table returns the table the router resolves against.
func (r *Router) Table() *Table {
	return r.table
}

// Match returns the definition for path. Matching is exact and
// case-sensitive; trailing slashes are ignored.
func (r *Router) Match(path string) (RouteDefinition, error) {
	def, ok := r.table.Lookup(path)
	if !ok {
		return RouteDefinition{}, &NotFoundError{Path: path}
	}
	return def, nil
}

// MatchName returns the definition registered under name.
func (r *Router) MatchName(name string) (RouteDefinition, error) {
	def, ok := r.table.LookupName(name)
	if !ok {
		return RouteDefinition{}, &NotFoundError{Name: name, ByName: true}
	}
	return def, nil
}

// Resolve treats targets starting with "/" as paths and anything else as a
// route name.
func (r *Router) Resolve(target string) (RouteDefinition, error) {
	if strings.HasPrefix(target, "/") {
		return r.Match(target)
	}
	return r.MatchName(target)
}

// ResolveByPath returns the view for path.
func (r *Router) ResolveByPath(path string) (ViewID, error) {
	def, err := r.Match(path)
	if err != nil {
		return "", err
	}
	return def.View, nil
}

// ResolveByName returns the view for name.
func (r *Router) ResolveByName(name string) (ViewID, error) {
	def, err := r.MatchName(name)
	if err != nil {
		return "", err
	}
	return def.View, nil
}

// PathFor returns the declared path of the route called name, for building
// links without hardcoding paths.
func (r *Router) PathFor(name string) (string, error) {
	def, err := r.MatchName(name)
	if err != nil {
		return "", err
	}
	return def.Path, nil
}
