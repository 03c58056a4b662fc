package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/loaders"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "yaml"
	FilePath    string `json:"filePath"`    // Path to scene file (yaml type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

const (
	builtinGroup  = "Built-in Scenes"
	fileGroup     = "Scene Files"
	fileScenePref = "yaml:"
)

type builtinScene struct {
	info  SceneInfo
	build func(...CameraConfig) (*Scene, error)
}

var builtinScenes = []builtinScene{
	{SceneInfo{ID: "default", Name: "Default World", Description: "Two nested spheres lit from the upper left"}, NewDefaultScene},
	{SceneInfo{ID: "spheres", Name: "Sphere Room", Description: "Three spheres in a room built from flattened spheres"}, NewSpheresScene},
	{SceneInfo{ID: "planes", Name: "Striped Planes", Description: "Spheres on a striped floor against a striped wall"}, NewPlanesScene},
	{SceneInfo{ID: "patterns", Name: "Stripe Patterns", Description: "Stripe patterns with their own transforms"}, NewPatternsScene},
	{SceneInfo{ID: "globe", Name: "Globe", Description: "Texture mapped sphere over a white floor"}, NewGlobeScene},
}

// BuiltinScenes returns metadata for the scenes compiled into the binary
func BuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, len(builtinScenes))
	for i, b := range builtinScenes {
		info := b.info
		info.Group = builtinGroup
		info.Type = "builtin"
		infos[i] = info
	}
	return infos
}

// ListSceneFiles scans dir for *.yaml scene files. A missing directory yields
// an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if dir == "" {
		return []SceneInfo{}, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, path := range files {
		info, err := sceneFileInfo(path)
		if err != nil {
			// Skip broken files but keep listing the rest
			fmt.Printf("Warning: failed to read scene file %s: %v\n", path, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

func sceneFileInfo(path string) (SceneInfo, error) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	sf, err := loaders.LoadSceneFile(path)
	if err != nil {
		return SceneInfo{}, err
	}

	info := SceneInfo{
		ID:          fileScenePref + base,
		Name:        titleCase(sf.Name),
		Description: sf.Description,
		Group:       sf.Group,
		Type:        "yaml",
		FilePath:    path,
	}
	if info.Group == "" {
		info.Group = fileGroup
	}
	return info, nil
}

// ListAllScenes returns built-in and file scenes, built-ins first and the
// remaining groups alphabetically
func ListAllScenes(dir string) (ScenesResponse, error) {
	var response ScenesResponse

	fileScenes, err := ListSceneFiles(dir)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}

	response.Groups = append(response.Groups, SceneGroup{Name: builtinGroup, Scenes: BuiltinScenes()})

	groupMap := make(map[string][]SceneInfo)
	for _, s := range fileScenes {
		groupMap[s.Group] = append(groupMap[s.Group], s)
	}

	groupNames := make([]string, 0, len(groupMap))
	for name := range groupMap {
		groupNames = append(groupNames, name)
	}
	sort.Strings(groupNames)

	for _, name := range groupNames {
		if name == builtinGroup {
			response.Groups[0].Scenes = append(response.Groups[0].Scenes, groupMap[name]...)
			continue
		}
		response.Groups = append(response.Groups, SceneGroup{Name: name, Scenes: groupMap[name]})
	}

	return response, nil
}

// LoadScene creates a scene by ID. Built-in IDs are plain names; scene files
// use "yaml:<file name without extension>" and are looked up in dir.
func LoadScene(id, dir string, cameraOverrides ...CameraConfig) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.build(cameraOverrides...)
		}
	}

	if name, ok := strings.CutPrefix(id, fileScenePref); ok && dir != "" {
		// Scene IDs come from clients, so only bare file names are accepted
		if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
		}
		path := filepath.Join(dir, name+".yaml")
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
		}
		return NewFileScene(path, cameraOverrides...)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// titleCase converts a filename-style string to title case
// e.g., "three-spheres" -> "Three Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
