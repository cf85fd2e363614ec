package navigation

import "strings"

// Table is an immutable, validated set of route definitions.
type Table struct {
	routes []RouteDefinition
	byPath map[string]int
	byName map[string]int
}

// Build validates defs and returns a table holding a copy of them.
//
// Definitions are checked in order; the first violation is returned and no
// table is constructed. Duplicate paths are detected after trailing-slash
// normalization, so "/a" and "/a/" collide.
func Build(defs []RouteDefinition) (*Table, error) {
	t := &Table{
		routes: make([]RouteDefinition, 0, len(defs)),
		byPath: make(map[string]int, len(defs)),
		byName: make(map[string]int, len(defs)),
	}

	for i, def := range defs {
		if err := validate(i, def); err != nil {
			return nil, err
		}
		def.Role = normalizeRole(def.Role)

		key := normalizePath(def.Path)
		if j, ok := t.byPath[key]; ok {
			return nil, &DuplicatePathError{
				Path:   key,
				First:  t.routes[j].Name,
				Second: def.Name,
			}
		}
		if j, ok := t.byName[def.Name]; ok {
			return nil, &DuplicateNameError{
				Name:       def.Name,
				FirstPath:  t.routes[j].Path,
				SecondPath: def.Path,
			}
		}

		t.byPath[key] = len(t.routes)
		t.byName[def.Name] = len(t.routes)
		t.routes = append(t.routes, def)
	}

	return t, nil
}

// MustBuild is like Build but panics on error. It is meant for tables
// compiled into the binary.
func MustBuild(defs []RouteDefinition) *Table {
	t, err := Build(defs)
	if err != nil {
		panic(err)
	}
	return t
}

func validate(i int, def RouteDefinition) error {
	invalid := func(reason string) error {
		return &InvalidRouteError{Index: i, Route: def, Reason: reason}
	}
	switch {
	case !strings.HasPrefix(def.Path, "/"):
		return invalid("path must begin with /")
	case strings.TrimSpace(def.Name) == "":
		return invalid("name is required")
	case def.View == "":
		return invalid("view is required")
	case !def.Role.Valid():
		return invalid("unknown role " + string(def.Role))
	}
	return nil
}

// Len returns the number of definitions.
func (t *Table) Len() int {
	return len(t.routes)
}

// Routes returns the definitions in declaration order. The slice is a copy.
func (t *Table) Routes() []RouteDefinition {
	out := make([]RouteDefinition, len(t.routes))
	copy(out, t.routes)
	return out
}

// Lookup finds the definition for path after trailing-slash normalization.
func (t *Table) Lookup(path string) (RouteDefinition, bool) {
	i, ok := t.byPath[normalizePath(path)]
	if !ok {
		return RouteDefinition{}, false
	}
	return t.routes[i], true
}

// LookupName finds the definition registered under name.
func (t *Table) LookupName(name string) (RouteDefinition, bool) {
	i, ok := t.byName[name]
	if !ok {
		return RouteDefinition{}, false
	}
	return t.routes[i], true
}

// ByRole returns the definitions tagged with role, in declaration order.
func (t *Table) ByRole(role Role) []RouteDefinition {
	role = normalizeRole(role)
	var out []RouteDefinition
	for _, def := range t.routes {
		if def.Role == role {
			out = append(out, def)
		}
	}
	return out
}

// Aliases returns every definition that targets view.
func (t *Table) Aliases(view ViewID) []RouteDefinition {
	var out []RouteDefinition
	for _, def := range t.routes {
		if def.View == view {
			out = append(out, def)
		}
	}
	return out
}

// Filter returns the definitions for which keep reports true.
func (t *Table) Filter(keep func(RouteDefinition) bool) []RouteDefinition {
	var out []RouteDefinition
	for _, def := range t.routes {
		if keep(def) {
			out = append(out, def)
		}
	}
	return out
}
