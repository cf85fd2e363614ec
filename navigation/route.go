package navigation

import "strings"

// ViewID is an opaque reference to a renderable view. The router never
// inspects it.
type ViewID string

// RouteDefinition binds a path and a stable name to a view.
type RouteDefinition struct {
	Path string `toml:"path" json:"path"`
	Name string `toml:"name" json:"name"`
	View ViewID `toml:"view" json:"view"`
	Role Role   `toml:"role" json:"role"`
}

// normalizePath strips trailing slashes. The root path stays "/".
func normalizePath(p string) string {
	trimmed := strings.TrimRight(p, "/")
	if trimmed == "" && p != "" {
		return "/"
	}
	return trimmed
}
