package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func landingTable(t *testing.T) *Table {
	t.Helper()
	table, err := Build([]RouteDefinition{
		{Path: "/", Name: "home", View: "Landing"},
		{Path: "/landing", Name: "landing", View: "Landing"},
		{Path: "/login", Name: "login", View: "LoginView"},
	})
	require.NoError(t, err)
	return table
}

func TestBuild(t *testing.T) {
	t.Run("valid_table", func(t *testing.T) {
		table := landingTable(t)
		assert.Equal(t, 3, table.Len())

		for _, def := range table.Routes() {
			got, ok := table.Lookup(def.Path)
			require.True(t, ok, def.Path)
			assert.Equal(t, def.View, got.View)
		}
	})

	t.Run("empty_role_becomes_none", func(t *testing.T) {
		table := landingTable(t)
		def, ok := table.LookupName("login")
		require.True(t, ok)
		assert.Equal(t, RoleNone, def.Role)
	})

	t.Run("input_is_copied", func(t *testing.T) {
		defs := []RouteDefinition{{Path: "/a", Name: "a", View: "A"}}
		table, err := Build(defs)
		require.NoError(t, err)

		defs[0].View = "Changed"
		def, _ := table.LookupName("a")
		assert.Equal(t, ViewID("A"), def.View)

		routes := table.Routes()
		routes[0].View = "Changed"
		def, _ = table.LookupName("a")
		assert.Equal(t, ViewID("A"), def.View)
	})

	t.Run("empty_table", func(t *testing.T) {
		table, err := Build(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())
	})
}

func TestBuild_DuplicatePath(t *testing.T) {
	tests := []struct {
		name  string
		paths [2]string
		want  string
	}{
		{name: "identical", paths: [2]string{"/list-farm", "/list-farm"}, want: "/list-farm"},
		{name: "trailing_slash", paths: [2]string{"/list-farm", "/list-farm/"}, want: "/list-farm"},
		{name: "root", paths: [2]string{"/", "//"}, want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Build([]RouteDefinition{
				{Path: tt.paths[0], Name: "first", View: "A"},
				{Path: tt.paths[1], Name: "second", View: "B"},
			})
			assert.Nil(t, table)

			var dupErr *DuplicatePathError
			require.ErrorAs(t, err, &dupErr)
			assert.Equal(t, tt.want, dupErr.Path)
			assert.Equal(t, "first", dupErr.First)
			assert.Equal(t, "second", dupErr.Second)
		})
	}
}

func TestBuild_PathsAreCaseSensitive(t *testing.T) {
	table, err := Build([]RouteDefinition{
		{Path: "/PuchasesBooks", Name: "purchases-books", View: "A"},
		{Path: "/puchasesbooks", Name: "purchases-books-lower", View: "A"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}

func TestBuild_DuplicateName(t *testing.T) {
	table, err := Build([]RouteDefinition{
		{Path: "/register", Name: "register", View: "RegisterView"},
		{Path: "/registerfarmer", Name: "register", View: "RegisterViewFarmer", Role: RoleFarmer},
	})
	assert.Nil(t, table)

	var dupErr *DuplicateNameError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "register", dupErr.Name)
	assert.Equal(t, "/register", dupErr.FirstPath)
	assert.Equal(t, "/registerfarmer", dupErr.SecondPath)
	assert.Contains(t, err.Error(), `"register"`)
}

func TestBuild_InvalidRoute(t *testing.T) {
	tests := []struct {
		name   string
		def    RouteDefinition
		reason string
	}{
		{name: "relative_path", def: RouteDefinition{Path: "login", Name: "login", View: "LoginView"}, reason: "path must begin with /"},
		{name: "empty_path", def: RouteDefinition{Name: "login", View: "LoginView"}, reason: "path must begin with /"},
		{name: "empty_name", def: RouteDefinition{Path: "/login", Name: " ", View: "LoginView"}, reason: "name is required"},
		{name: "empty_view", def: RouteDefinition{Path: "/login", Name: "login"}, reason: "view is required"},
		{name: "unknown_role", def: RouteDefinition{Path: "/login", Name: "login", View: "LoginView", Role: "admin"}, reason: "unknown role admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Build([]RouteDefinition{
				{Path: "/", Name: "home", View: "Landing"},
				tt.def,
			})
			assert.Nil(t, table)

			var invalid *InvalidRouteError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, 1, invalid.Index)
			assert.Equal(t, tt.reason, invalid.Reason)
		})
	}
}

func TestMustBuild(t *testing.T) {
	assert.NotPanics(t, func() {
		MustBuild([]RouteDefinition{{Path: "/", Name: "home", View: "Landing"}})
	})
	assert.Panics(t, func() {
		MustBuild([]RouteDefinition{
			{Path: "/", Name: "home", View: "Landing"},
			{Path: "/", Name: "root", View: "Landing"},
		})
	})
}

func TestTable_ByRoleAndAliases(t *testing.T) {
	table, err := Build([]RouteDefinition{
		{Path: "/", Name: "home", View: "LoginView"},
		{Path: "/login", Name: "login", View: "LoginView"},
		{Path: "/list-farm", Name: "list-farm", View: "ListFarmView", Role: RoleFarmer},
		{Path: "/traveler/history", Name: "traveler-history", View: "TravelerHistoryView", Role: RoleTraveler},
	})
	require.NoError(t, err)

	farmer := table.ByRole(RoleFarmer)
	require.Len(t, farmer, 1)
	assert.Equal(t, "list-farm", farmer[0].Name)

	shared := table.ByRole("")
	assert.Len(t, shared, 2)

	aliases := table.Aliases("LoginView")
	require.Len(t, aliases, 2)
	assert.Equal(t, "home", aliases[0].Name)
	assert.Equal(t, "login", aliases[1].Name)

	assert.Empty(t, table.Aliases("Nope"))
}
