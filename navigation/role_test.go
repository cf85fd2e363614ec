package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "", want: RoleNone},
		{in: "none", want: RoleNone},
		{in: "farmer", want: RoleFarmer},
		{in: "traveler", want: RoleTraveler},
		{in: "Farmer", wantErr: true},
		{in: "admin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "none", Role("").String())
	assert.Equal(t, "farmer", RoleFarmer.String())
}

func TestGuard(t *testing.T) {
	table := MustBuild([]RouteDefinition{
		{Path: "/", Name: "home", View: "LoginView"},
		{Path: "/list-farm", Name: "list-farm", View: "ListFarmView", Role: RoleFarmer},
		{Path: "/traveler/purchases", Name: "traveler-purchases", View: "PurchasesBooksView", Role: RoleTraveler},
	})

	names := func(defs []RouteDefinition) []string {
		var out []string
		for _, d := range defs {
			out = append(out, d.Name)
		}
		return out
	}

	assert.Equal(t, []string{"home", "list-farm"}, names(table.Filter(Guard(RoleFarmer))))
	assert.Equal(t, []string{"home", "traveler-purchases"}, names(table.Filter(Guard(RoleTraveler))))
	assert.Equal(t, []string{"home"}, names(table.Filter(Guard(""))))
}
