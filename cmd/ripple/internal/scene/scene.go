// Package scene decodes YAML scene files into view trees.
//
// A scene names its root view. Every view is a mapping with exactly one key
// naming its kind, plus optional modifier keys:
//
//	version: v1
//	root:
//	  vstack:
//	    spacing: 1
//	    children:
//	      - text: Hello
//	        padding: 1
//	      - rectangle: {}
//	        frame: {width: 4, height: 2}
//	        foreground: "#ff0000"
//
// Modifiers wrap the view in a fixed order, innermost first: aspect_ratio,
// fixed_size, frame, padding, background, foreground, clipped, offset,
// scale, opacity, hidden, geometry_group, animate, priority, transition and
// show.
package scene

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/ripple/cmd/ripple/internal/config"
	"github.com/go-drift/ripple/pkg/errors"
	"github.com/go-drift/ripple/pkg/view"
)

// Scene is a decoded scene file.
type Scene struct {
	Version string `yaml:"version,omitempty"`
	Root    *Node  `yaml:"root"`
}

// Parse decodes a scene.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.New("scene.Parse", errors.KindScene, err)
	}
	if v := strings.TrimSpace(s.Version); v != "" {
		if err := config.CheckVersion(v); err != nil {
			return nil, errors.New("scene.Parse", errors.KindScene, err)
		}
	}
	if s.Root == nil {
		return nil, errors.New("scene.Parse", errors.KindScene, fmt.Errorf("missing root view"))
	}
	return &s, nil
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithPath("scene.Load", errors.KindScene, path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.WithPath("scene.Load", errors.KindScene, path, err)
	}
	return s, nil
}

// View builds the scene's view tree.
func (s *Scene) View() (view.View, error) {
	v, err := s.Root.View()
	if err != nil {
		return nil, errors.New("scene.View", errors.KindScene, err)
	}
	return v, nil
}
