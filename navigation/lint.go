package navigation

import (
	"fmt"
	"strings"
)

// Warning is a style issue in a route table. Warnings never fail a build.
type Warning struct {
	Route   RouteDefinition
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s (%s): %s", w.Route.Path, w.Route.Name, w.Message)
}

// Lint reports paths and names that drift from the lowercase kebab-case
// convention used by most of the table, such as legacy "/PuchasesBooks".
func Lint(t *Table) []Warning {
	var warnings []Warning
	for _, def := range t.routes {
		if def.Path == "/" {
			continue
		}
		segments := strings.Split(strings.Trim(def.Path, "/"), "/")
		for _, seg := range segments {
			if !isKebab(seg) {
				warnings = append(warnings, Warning{
					Route:   def,
					Message: fmt.Sprintf("path segment %q is not lowercase kebab-case", seg),
				})
				break
			}
		}
		if slug := strings.Join(segments, "-"); slug != def.Name {
			warnings = append(warnings, Warning{
				Route:   def,
				Message: fmt.Sprintf("name does not match path slug %q", slug),
			})
		}
	}
	return warnings
}

func isKebab(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return false
		}
	}
	return true
}
