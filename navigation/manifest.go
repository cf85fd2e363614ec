package navigation

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultManifest is the marketplace route manifest compiled into the binary.
//
//go:embed routes.toml
var DefaultManifest string

type manifest struct {
	Routes []RouteDefinition `toml:"route"`
}

// DefaultTable builds the table declared by DefaultManifest.
func DefaultTable() (*Table, error) {
	return LoadManifest(strings.NewReader(DefaultManifest))
}

// LoadManifest decodes a TOML route manifest and builds its table. Keys the
// manifest schema does not know about are rejected so typos do not silently
// drop a field.
func LoadManifest(r io.Reader) (*Table, error) {
	var m manifest
	md, err := toml.NewDecoder(r).Decode(&m)
	if err != nil {
		return nil, fmt.Errorf("decode route manifest: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, &UnknownKeysError{Keys: keys}
	}
	return Build(m.Routes)
}

// LoadManifestFile reads the manifest at path.
func LoadManifestFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := LoadManifest(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// UnknownKeysError reports manifest keys outside the route schema.
type UnknownKeysError struct {
	Keys []string
}

func (e *UnknownKeysError) Error() string {
	return "route manifest has unknown keys: " + strings.Join(e.Keys, ", ")
}

func (e *UnknownKeysError) InvalidParameter() {}
