package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPrefabName(t *testing.T) {
	cases := []struct {
		path string
		want string
		ok   bool
	}{
		{"prefabs/player.yaml", "player.yaml", true},
		{"prefabs/Other.YML", "Other.YML", true},
		{"prefabs/scripts/demo.tengo", "scripts/demo.tengo", true},
		{"prefabs/player.yaml.swp", "", false},
	}
	for _, c := range cases {
		got, ok := prefabName(c.path)
		if got != c.want || ok != c.ok {
			t.Fatalf("%s: got (%q, %v)", c.path, got, ok)
		}
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcherDirs(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("name: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Changes():
		if name != "player.yaml" {
			t.Fatalf("expected player.yaml, got %q", name)
		}
	case err := <-w.Errors():
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for change")
	}
}

func TestReportedNames(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{Name(""), "player.yaml"},
		{Name("player.yaml"), "player.yaml"},
		{Name("prefabs/player.yaml"), "player.yaml"},
		{ScriptName("demo.tengo"), "scripts/demo.tengo"},
		{ScriptName("scripts/demo.tengo"), "scripts/demo.tengo"},
		{ScriptName("prefabs/scripts/demo.tengo"), "scripts/demo.tengo"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Fatalf("expected %q, got %q", c.want, c.got)
		}
	}
}
