package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarsuperuser/marketnav/navigation"
	"github.com/sagarsuperuser/marketnav/store"
)

func create(t *testing.T, d store.Driver, name string, role navigation.Role) {
	t.Helper()
	_, err := d.CreateVisit(context.Background(), &store.CreateVisit{
		ID:        name + "-id",
		RouteName: name,
		Path:      "/" + name,
		View:      navigation.ViewID(name + "View"),
		Role:      role,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
}

func TestDB_ListNewestFirst(t *testing.T) {
	d := NewDB(10)
	create(t, d, "login", navigation.RoleNone)
	create(t, d, "list-farm", navigation.RoleFarmer)
	create(t, d, "traveler-history", navigation.RoleTraveler)

	list, err := d.ListVisits(context.Background(), &store.FindVisit{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "traveler-history", list[0].RouteName)
	assert.Equal(t, "login", list[2].RouteName)
}

func TestDB_Filters(t *testing.T) {
	d := NewDB(10)
	create(t, d, "login", navigation.RoleNone)
	create(t, d, "list-farm", navigation.RoleFarmer)
	create(t, d, "list-farm", navigation.RoleFarmer)

	name := "list-farm"
	list, err := d.ListVisits(context.Background(), &store.FindVisit{RouteName: &name})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	role := navigation.RoleNone
	list, err = d.ListVisits(context.Background(), &store.FindVisit{Role: &role})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "login", list[0].RouteName)

	limit := 1
	list, err = d.ListVisits(context.Background(), &store.FindVisit{Limit: &limit})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDB_Retention(t *testing.T) {
	d := NewDB(2)
	for i := 0; i < 5; i++ {
		create(t, d, fmt.Sprintf("r%d", i), navigation.RoleNone)
	}

	list, err := d.ListVisits(context.Background(), &store.FindVisit{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "r4", list[0].RouteName)
	assert.Equal(t, "r3", list[1].RouteName)
}

func TestDB_CanceledContext(t *testing.T) {
	d := NewDB(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.CreateVisit(ctx, &store.CreateVisit{RouteName: "login"})
	assert.ErrorIs(t, err, context.Canceled)
}
