package prefabs

import (
	"errors"
	"testing"

	"github.com/milk9111/jackrun/config"
	"github.com/milk9111/jackrun/input"
)

func TestLoadPlayerSpecEmbedded(t *testing.T) {
	spec, err := LoadPlayerSpec("")
	if err != nil {
		t.Fatal(err)
	}
	if spec.Name != "jack" {
		t.Fatalf("expected jack, got %q", spec.Name)
	}
	for _, id := range []string{"idle", "walk", "run", "jump", "fall"} {
		if _, ok := spec.Animations.Clips[id]; !ok {
			t.Fatalf("missing clip %q", id)
		}
	}

	tuning, err := spec.ResolvedTuning()
	if err != nil {
		t.Fatal(err)
	}
	if tuning != config.DefaultTuning() {
		t.Fatalf("embedded tuning should match defaults, got %+v", tuning)
	}

	b, err := spec.Bindings()
	if err != nil {
		t.Fatal(err)
	}
	if len(b[input.Jump]) == 0 || b[input.Jump][0] != "Space" {
		t.Fatalf("unexpected jump binding %v", b[input.Jump])
	}
}

func TestDecodePlayerSpec(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		want    config.Tuning
		wantErr error
	}{
		{
			name: "defaults_fill_missing",
			doc:  "name: p\ntuning:\n  fall_speed: 98\n",
			want: config.Tuning{FallSpeed: 98, JumpImpulse: 95, WalkSpeed: 100, RunSpeed: 150},
		},
		{
			name:    "negative_rejected",
			doc:     "name: p\ntuning:\n  run_speed: -3\n",
			wantErr: config.ErrInvalidTuning,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec, err := DecodeSpec[PlayerSpec]([]byte(c.doc))
			if err != nil {
				t.Fatal(err)
			}
			got, err := spec.ResolvedTuning()
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}

func TestDecodeSpecSyntaxError(t *testing.T) {
	if _, err := DecodeSpec[PlayerSpec]([]byte("tuning: [")); err == nil {
		t.Fatalf("expected yaml error")
	}
}

func TestLoadScriptEmbedded(t *testing.T) {
	for _, name := range []string{"demo.tengo", "scripts/demo.tengo", "prefabs/scripts/demo.tengo"} {
		if _, err := LoadScript(name); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
}
