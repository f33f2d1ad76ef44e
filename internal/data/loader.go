package data

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the file name looked up in every data directory.
const ManifestFile = "games.yaml"

//go:embed games.yaml
var embeddedManifest []byte

// ErrUnknownGame is returned when a manifest has no entry for a game.
var ErrUnknownGame = errors.New("unknown game")

// Loader reads game definitions from a directory fallback hierarchy,
// ending with the copy compiled into the binary.
type Loader struct {
	dataDirs []string
}

// NewLoader initializes a new Loader with the given data directory fallback hierarchy
func NewLoader(dataDirs []string) *Loader {
	return &Loader{
		dataDirs: dataDirs,
	}
}

// LoadManifest returns the first games.yaml found in the data directories,
// or the embedded default.
func (l *Loader) LoadManifest() (*Manifest, error) {
	for _, dir := range l.dataDirs {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, ManifestFile)
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		defer f.Close()
		m, err := decode(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode manifest %s: %w", path, err)
		}
		return m, nil
	}

	m, err := decode(bytes.NewReader(embeddedManifest))
	if err != nil {
		return nil, fmt.Errorf("failed to decode embedded manifest: %w", err)
	}
	return m, nil
}

func decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}
	if len(m.Games) == 0 {
		return nil, errors.New("manifest defines no games")
	}
	return &m, nil
}

// Game returns the definition of a game by key.
func (m *Manifest) Game(key string) (GameDef, error) {
	g, ok := m.Games[key]
	if !ok {
		return GameDef{}, fmt.Errorf("%w: %s", ErrUnknownGame, key)
	}
	return g, nil
}
