package navigation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table, err := DefaultTable()
	require.NoError(t, err)

	r := NewRouter(table)
	for path, want := range map[string]ViewID{
		"/":               "LoginView",
		"/login":          "LoginView",
		"/register":       "RegisterView",
		"/register-pick":  "RegisterPick",
		"/registerfarmer": "RegisterViewFarmer",
		"/list-farm/":     "ListFarmView",
		"/PuchasesBooks":  "PurchasesBooksView",
	} {
		view, err := r.ResolveByPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, view, path)
	}

	def, _ := table.LookupName("registerfarmer")
	assert.Equal(t, RoleFarmer, def.Role)
	assert.NotEmpty(t, table.ByRole(RoleTraveler))
}

func TestLoadManifest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		table, err := LoadManifest(strings.NewReader(`
[[route]]
path = "/"
name = "home"
view = "Landing"

[[route]]
path = "/list-farm"
name = "list-farm"
view = "ListFarmView"
role = "farmer"
`))
		require.NoError(t, err)
		assert.Equal(t, 2, table.Len())

		def, ok := table.Lookup("/list-farm")
		require.True(t, ok)
		assert.Equal(t, RoleFarmer, def.Role)
	})

	t.Run("duplicate_name", func(t *testing.T) {
		_, err := LoadManifest(strings.NewReader(`
[[route]]
path = "/register"
name = "register"
view = "RegisterView"

[[route]]
path = "/register-farmer"
name = "register"
view = "RegisterViewFarmer"
`))
		var dupErr *DuplicateNameError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "register", dupErr.Name)
	})

	t.Run("unknown_role", func(t *testing.T) {
		_, err := LoadManifest(strings.NewReader(`
[[route]]
path = "/"
name = "home"
view = "Landing"
role = "admin"
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown role "admin"`)
	})

	t.Run("unknown_key", func(t *testing.T) {
		_, err := LoadManifest(strings.NewReader(`
[[route]]
path = "/"
name = "home"
component = "Landing"
`))
		var keysErr *UnknownKeysError
		require.ErrorAs(t, err, &keysErr)
		assert.Equal(t, []string{"route.component"}, keysErr.Keys)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadManifest(strings.NewReader(`[[route]`))
		assert.Error(t, err)
	})
}

func TestLoadManifestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "routes.toml")
	require.NoError(t, os.WriteFile(path, []byte(DefaultManifest), 0o644))

	table, err := LoadManifestFile(path)
	require.NoError(t, err)

	defaults, err := DefaultTable()
	require.NoError(t, err)
	assert.Equal(t, defaults.Routes(), table.Routes())

	_, err = LoadManifestFile(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLint(t *testing.T) {
	table, err := DefaultTable()
	require.NoError(t, err)

	warnings := Lint(table)
	require.Len(t, warnings, 2)
	for _, w := range warnings {
		assert.Equal(t, "purchases-books", w.Route.Name)
	}
	assert.Contains(t, warnings[0].String(), `"PuchasesBooks" is not lowercase kebab-case`)

	clean := MustBuild([]RouteDefinition{
		{Path: "/", Name: "home", View: "Landing"},
		{Path: "/farmer/account", Name: "farmer-account", View: "FarmerAccountView"},
	})
	assert.Empty(t, Lint(clean))
}
