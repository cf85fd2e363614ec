// Package navigation maps requested paths and stable route names to opaque view
// identifiers for the marketplace front end.
//
// A Table is built once from an ordered list of RouteDefinitions and is
// immutable afterwards. Build rejects duplicate paths, duplicate names, paths
// that do not start with "/" and roles outside the closed set of roles, so an
// application with an ambiguous route table never starts.
//
// A Router wraps a Table and answers three questions:
//
//	view, err := r.ResolveByPath("/list-farm/") // trailing slash ignored
//	view, err := r.ResolveByName("list-farm")
//	path, err := r.PathFor("list-farm")         // for link generation
//
// Unknown paths and names are reported as *NotFoundError. The router never
// falls back to a default route; deciding what to show instead is up to the
// caller.
//
// # Manifest
//
// Route tables are declared in a TOML manifest:
//
//	[[route]]
//	path = "/list-farm"
//	name = "list-farm"
//	view = "ListFarmView"
//	role = "farmer"
//
// DefaultManifest holds the marketplace routes and LoadManifestFile reads an
// alternative one from disk.
//
// # Concurrency
//
// Table and Router never change after construction and can be shared between
// goroutines without locking. Navigator keeps per-session history and is not
// safe for concurrent use.
package navigation
