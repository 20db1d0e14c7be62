package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-fixed-landscape/pkg/fixed"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Scene       Scene  `json:"scene"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Scenes []SceneInfo `json:"scenes"`
}

var builtinScenes = map[string]struct {
	description string
	scene       Scene
}{
	"default": {
		"Camera at the origin looking along +z, lit from above",
		New(fixed.NewVec3(0, 50, 0), 0, fixed.NewVec3(0, -100, 0)),
	},
	"sunset": {
		"Low light in front of the camera, showing the sun disk",
		New(fixed.NewVec3(0, 50, 0), 0, fixed.NewVec3(0, 30, 100)),
	},
	"dune-field": {
		"Camera turned over the dunes",
		New(fixed.NewVec3(1234, -77, 999), 77, fixed.NewVec3(5, 30, 100)),
	},
	"quarter-turn": {
		"Camera turned a quarter of the way round",
		New(fixed.NewVec3(0, 50, 0), 64, fixed.NewVec3(-100, 20, 0)),
	},
}

// Lookup returns a built-in scene by ID
func Lookup(id string) (Scene, error) {
	s, ok := builtinScenes[id]
	if !ok {
		return Scene{}, fmt.Errorf("unknown scene %q", id)
	}
	return s.scene, nil
}

// ListScenes returns the built-in scenes sorted by display name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for id, s := range builtinScenes {
		scenes = append(scenes, SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: s.description,
			Scene:       s.scene,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes
}

// titleCase converts a string like "dune-field" to "Dune Field"
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}
	return strings.Join(words, " ")
}
