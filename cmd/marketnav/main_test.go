package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarsuperuser/marketnav/navigation"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ROUTES_FILE", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routes.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRoutesCmd(t *testing.T) {
	out, err := execute(t, "routes")
	require.NoError(t, err)
	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, "/list-farm")
	assert.Contains(t, out, "/traveler/farms")
}

func TestRoutesCmd_Role(t *testing.T) {
	out, err := execute(t, "routes", "--role", "farmer")
	require.NoError(t, err)
	assert.Contains(t, out, "/list-farm")
	assert.NotContains(t, out, "/traveler/farms")
	assert.NotContains(t, out, "/login")

	_, err = execute(t, "routes", "--role", "admin")
	assert.Error(t, err)
}

func TestResolveCmd(t *testing.T) {
	out, err := execute(t, "resolve", "/landing", "login", "/list-farm/")
	require.NoError(t, err)
	assert.Contains(t, out, "/landing\tLanding\t/landing")
	assert.Contains(t, out, "login\tLoginView\t/login")
	assert.Contains(t, out, "/list-farm/\tListFarmView\t/list-farm")
}

func TestResolveCmd_NotFound(t *testing.T) {
	_, err := execute(t, "resolve", "/nope")
	require.Error(t, err)

	var nf *navigation.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "/nope", nf.Path)
}

func TestCheckCmd_Default(t *testing.T) {
	out, err := execute(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "PuchasesBooks")
	assert.Contains(t, out, "2 warnings")

	_, err = execute(t, "check", "--strict")
	assert.Error(t, err)
}

func TestCheckCmd_Duplicate(t *testing.T) {
	path := writeManifest(t, `
[[route]]
path = "/register"
name = "register"
view = "RegisterView"

[[route]]
path = "/register-pick"
name = "register"
view = "RegisterPick"
`)

	_, err := execute(t, "check", path)
	require.Error(t, err)
	assert.True(t, cerrdefs.IsConflict(err))

	var dup *navigation.DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "register", dup.Name)
}

func TestCheckCmd_UnknownKey(t *testing.T) {
	path := writeManifest(t, `
[[route]]
path = "/"
name = "home"
view = "Landing"
title = "Home"
`)

	_, err := execute(t, "--routes", path, "check")
	require.Error(t, err)
	assert.True(t, cerrdefs.IsInvalidArgument(err))
}

func TestNavigateCmd(t *testing.T) {
	out, err := execute(t, "navigate", "/landing", "list-farm", "back")
	require.NoError(t, err)
	assert.Contains(t, out, "mount Landing (landing) at /landing\n")
	assert.Contains(t, out, "mount ListFarmView (list-farm) at /list-farm\n")
	assert.Contains(t, out, "history depth 0\n")
}

func TestNavigateCmd_BackWithoutHistory(t *testing.T) {
	_, err := execute(t, "navigate", "back")
	assert.ErrorIs(t, err, navigation.ErrNoHistory)
}
