package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml scripts/*.tengo
var prefabsFS embed.FS

// Dir is the on-disk directory whose files override the embedded prefabs.
const Dir = "prefabs"

// Load returns the prefab bytes for name, preferring a copy on disk.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return prefabsFS.ReadFile(clean)
}

// LoadScript returns a tengo script from prefabs/scripts, preferring disk.
func LoadScript(name string) ([]byte, error) {
	return Load(cleanScriptPath(name))
}

// Name is the name a Watcher reports when the prefab called name changes.
func Name(name string) string {
	if name == "" {
		name = PlayerPrefab
	}
	return path.Base(cleanPrefabPath(name))
}

// ScriptName is the name a Watcher reports when the script called name
// changes.
func ScriptName(name string) string {
	return "scripts/" + path.Base(cleanScriptPath(name))
}

func cleanPrefabPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(p string) string {
	s := cleanPrefabPath(p)
	if strings.HasPrefix(s, "scripts/") {
		return s
	}
	return "scripts/" + s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
