package registry_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-hexmatch/internal/core"
	"github.com/vovakirdan/tui-hexmatch/internal/registry"
)

type stubGame struct {
	id, title string
	resets    int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func register(id, title string) {
	registry.Register(id, func() registry.Game { return &stubGame{id: id, title: title} })
}

func init() {
	register("zeta", "Zeta")
	register("alpha", "Alpha")
}

func TestListSorted(t *testing.T) {
	games := registry.List()
	if len(games) != 2 {
		t.Fatalf("List() = %v, want 2 games", games)
	}
	if games[0].ID != "alpha" || games[1].ID != "zeta" {
		t.Errorf("List() order = %v", games)
	}
	if games[0].Title != "Alpha" {
		t.Errorf("title = %q, want Alpha", games[0].Title)
	}
	if ids := registry.IDs(); strings.Join(ids, ",") != "alpha,zeta" {
		t.Errorf("IDs() = %v", ids)
	}
}

func TestCreate(t *testing.T) {
	g, err := registry.Create("zeta")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zeta" {
		t.Errorf("ID() = %q", g.ID())
	}

	// Each call builds a fresh instance.
	other, _ := registry.Create("zeta")
	if g == other {
		t.Error("Create returned a shared instance")
	}

	_, err = registry.Create("missing")
	if err == nil {
		t.Fatal("expected error for unknown game")
	}
	if !strings.Contains(err.Error(), "alpha, zeta") {
		t.Errorf("error %q does not list known games", err)
	}
}

func TestExists(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"alpha", true},
		{"zeta", true},
		{"beta", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := registry.Exists(tt.id); got != tt.want {
			t.Errorf("Exists(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"duplicate", "alpha"},
		{"empty", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%q) did not panic", tt.id)
				}
			}()
			register(tt.id, "X")
		})
	}
}
