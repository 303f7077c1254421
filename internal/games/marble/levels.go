package marble

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tilt-arcade/internal/core"
)

//go:embed levels/*.yaml
var builtinLevels embed.FS

// Tile is one maze cell.
type Tile uint8

const (
	TileFloor  Tile = iota
	TilePillar      // '#'
	TileCrate       // 'C'
	TileHole        // '.'
)

// Solid reports whether the ball bounces off the tile.
func (t Tile) Solid() bool {
	return t == TilePillar || t == TileCrate
}

// Level is a parsed maze.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Tiles    []Tile // row-major
	Start    core.Vec
	Pearls   []core.Vec
	Metadata map[string]string
	FilePath string
}

// yamlLevel is the on-disk level layout.
type yamlLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseLevel decodes a YAML maze. Rows may differ in length; short rows
// are padded with holes. A maze needs exactly one start cell.
func ParseLevel(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("levels: missing id")
	}
	if len(yl.Rows) == 0 {
		return Level{}, fmt.Errorf("levels: %s: no rows", yl.ID)
	}

	lvl := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Height:   len(yl.Rows),
		Metadata: yl.Metadata,
	}
	if lvl.Name == "" {
		lvl.Name = yl.ID
	}
	for _, row := range yl.Rows {
		lvl.Width = max(lvl.Width, len([]rune(row)))
	}
	lvl.Tiles = make([]Tile, lvl.Width*lvl.Height)

	starts := 0
	for y, row := range yl.Rows {
		runes := []rune(row)
		for x := range lvl.Width {
			ch := '.'
			if x < len(runes) {
				ch = runes[x]
			}
			tile := TileFloor
			switch ch {
			case '#':
				tile = TilePillar
			case 'C', 'c':
				tile = TileCrate
			case '.':
				tile = TileHole
			case 'o', 'O':
				lvl.Pearls = append(lvl.Pearls, cellCenter(x, y))
			case 'S', 's':
				lvl.Start = cellCenter(x, y)
				starts++
			case ' ':
			default:
				return Level{}, fmt.Errorf("levels: %s: unknown tile %q at %d,%d", yl.ID, ch, x, y)
			}
			lvl.Tiles[y*lvl.Width+x] = tile
		}
	}
	if starts != 1 {
		return Level{}, fmt.Errorf("levels: %s: want one start cell, found %d", yl.ID, starts)
	}
	return lvl, nil
}

func cellCenter(x, y int) core.Vec {
	return core.V(float64(x)+0.5, float64(y)+0.5)
}

// At returns the tile at a cell. Everything outside the maze is a hole.
func (l *Level) At(x, y int) Tile {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return TileHole
	}
	return l.Tiles[y*l.Width+x]
}

// Supports reports whether the ball rests on solid ground at p.
func (l *Level) Supports(p core.Vec) bool {
	x, y := p.Cell()
	return l.At(x, y) == TileFloor
}

// Loader reads maze files from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll loads every .yaml or .yml maze under Root, sorted by ID.
// Files that fail to parse are skipped.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isLevelFile(path) {
			return nil
		}
		lvl, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.Root, err)
	}
	sortLevels(levels)
	return levels, nil
}

// LoadFile loads a single maze file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading %s: %w", path, err)
	}
	lvl, err := ParseLevel(data)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing %s: %w", path, err)
	}
	lvl.FilePath = path
	return lvl, nil
}

// BuiltinLevels returns the mazes compiled into the binary.
func BuiltinLevels() []Level {
	var levels []Level
	//nolint:errcheck // The embedded directory is fixed at build time
	fs.WalkDir(builtinLevels, "levels", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !isLevelFile(path) {
			return nil
		}
		data, err := builtinLevels.ReadFile(path)
		if err != nil {
			return nil
		}
		if lvl, err := ParseLevel(data); err == nil {
			lvl.FilePath = path
			levels = append(levels, lvl)
		}
		return nil
	})
	sortLevels(levels)
	return levels
}

func isLevelFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func sortLevels(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}
