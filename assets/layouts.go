// Package assets loads map layouts authored in Tiled. A layout fixes the bounds, an
// optional spawn point and preset obstacles; random obstacles fill the rest.
package assets

import (
	"embed"
	"fmt"
	"image"
	"io/fs"
	"math"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

//go:embed all:layouts
var layoutFS embed.FS

const (
	groupObstacles = "Obstacles"
	groupSpawn     = "PlayerSpawn"
)

type Layout struct {
	Name      string
	Bounds    image.Rectangle
	Spawn     image.Point
	HasSpawn  bool
	Obstacles []image.Rectangle
}

// LoadLayout parses a TMX file from fsys. The bounds are the map's pixel size.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Name:   strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
		Bounds: image.Rect(0, 0, levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight),
	}
	if layout.Bounds.Empty() {
		return nil, fmt.Errorf("layout %s: map has no area", tmxPath)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupObstacles:
			for _, o := range og.Objects {
				r := image.Rect(
					round(o.X), round(o.Y),
					round(o.X+o.Width), round(o.Y+o.Height),
				)
				if r.Empty() {
					return nil, fmt.Errorf("layout %s: obstacle %d has no area", tmxPath, o.ID)
				}
				layout.Obstacles = append(layout.Obstacles, r)
			}
		case groupSpawn:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			layout.Spawn = image.Pt(round(o.X), round(o.Y))
			layout.HasSpawn = true
		}
	}

	// Presets are accepted in reading order; keep it stable across Tiled saves.
	sort.SliceStable(layout.Obstacles, func(i, j int) bool {
		a, b := layout.Obstacles[i].Min, layout.Obstacles[j].Min
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return layout, nil
}

func round(v float64) int {
	return int(math.Round(v))
}

// LayoutNames lists the embedded layouts.
func LayoutNames() ([]string, error) {
	entries, err := layoutFS.ReadDir("layouts")
	if err != nil {
		return nil, fmt.Errorf("read layouts: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			names = append(names, strings.TrimSuffix(entry.Name(), ".tmx"))
		}
	}
	return names, nil
}

// ResolveLayout loads name from the embedded layouts, or from disk when name ends in
// .tmx. An empty name means no layout.
func ResolveLayout(name string) (*Layout, error) {
	switch {
	case name == "":
		return nil, nil
	case filepath.Ext(name) == ".tmx":
		return LoadLayout(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	default:
		return LoadLayout(layoutFS, path.Join("layouts", name+".tmx"))
	}
}
