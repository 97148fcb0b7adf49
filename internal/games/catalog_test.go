package games

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/arenablitz/arcade/internal/assets"
	"github.com/arenablitz/arcade/internal/core"
	"github.com/arenablitz/arcade/internal/registry"
)

func TestCatalog(t *testing.T) {
	logger := log.New(io.Discard)
	r, err := Catalog(assets.NewLoader(assets.Embedded(), logger), logger)
	if err != nil {
		t.Fatal(err)
	}

	entries := r.Entries()
	if len(entries) != 2 {
		t.Fatalf("catalog has %d games, expected 2", len(entries))
	}

	for _, e := range entries {
		t.Run(e.ID.String(), func(t *testing.T) {
			g := e.New()
			if g.ID() != e.ID {
				t.Errorf("factory built %v", g.ID())
			}
			if g.Title() != e.Title {
				t.Errorf("title %q, entry says %q", g.Title(), e.Title)
			}

			g.Reset(core.DefaultConfig())
			st := g.Step(core.NewInputSnapshot()).State
			if st.Level != 1 || st.Score < 1 {
				t.Errorf("first step state = %+v", st)
			}

			dst := core.NewScreen(80, 24)
			g.Render(dst)
			if dst.String() == core.NewScreen(80, 24).String() {
				t.Error("render produced an empty screen")
			}
		})
	}

	if _, err := r.CreateByName("shadowops"); err != nil {
		t.Errorf("CreateByName: %v", err)
	}
	if _, err := r.Create(registry.GameID(99)); err == nil {
		t.Error("expected unknown game error")
	}
}
