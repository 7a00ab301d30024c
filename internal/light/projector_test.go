package light

import (
	"math"
	"testing"
)

func headlessProjector(strength float64) (*Projector, *Scene) {
	p := NewProjector(nil, White, strength, Vec2{}, Vec2{X: 1})
	s := NewScene(NewManager(), p)
	return p, s
}

func TestProjector_OffHasNoBeams(t *testing.T) {
	p, _ := headlessProjector(150)

	if p.On() || p.Tree() != nil || p.Beams() != nil {
		t.Fatal("a projector starts off with no beam tree")
	}
	if p.Rebuilds() != 0 {
		t.Fatalf("rebuilds = %d before ever turning on", p.Rebuilds())
	}
}

func TestProjector_InitialBeamShape(t *testing.T) {
	p, _ := headlessProjector(150)
	p.TurnOn()

	tree := p.Tree()
	if tree == nil || tree.Len() != 1 {
		t.Fatal("an unobstructed projector produces exactly one beam")
	}

	b := tree.Beam(0)
	if !approx(b.Width(), 14) {
		t.Fatalf("aperture width = %v, want 14", b.Width())
	}
	if !approxVec(b.Right().Source, Vec2{Y: -7}) || !approxVec(b.Left().Source, Vec2{Y: 7}) {
		t.Fatalf("sources = %v, %v, want (0,-7) and (0,7)", b.Right().Source, b.Left().Source)
	}
	if !approx(b.Right().Length, 150) || !approx(b.Left().Length, 150) {
		t.Fatalf("lengths = %v, %v, want the full strength 150", b.Right().Length, b.Left().Length)
	}
	if !approx(b.Right().Bound, 0) || !approx(b.Left().Bound, 1) {
		t.Fatalf("bounds = %v..%v, want 0..1", b.Right().Bound, b.Left().Bound)
	}
	// Without an image the aperture and image plane are the same size, so
	// the edges never converge.
	if _, converges := b.Intersection(); converges {
		t.Fatal("a headless projector beam must be collimated")
	}
}

func TestProjector_SettersSkipNoopRebuilds(t *testing.T) {
	p, _ := headlessProjector(150)
	p.TurnOn()
	if p.Rebuilds() != 1 {
		t.Fatalf("rebuilds = %d after turn on, want 1", p.Rebuilds())
	}

	if p.SetOrigin(Vec2{}) || p.SetDirection(Vec2{X: 1}) || p.SetStrength(150) ||
		p.SetImage(nil) || p.SetComponents(White) {
		t.Fatal("setting current values must report no change")
	}
	if p.Rebuilds() != 1 {
		t.Fatalf("rebuilds = %d after no-op setters, want still 1", p.Rebuilds())
	}

	if !p.SetOrigin(Vec2{X: 10}) {
		t.Fatal("moving the projector must report a change")
	}
	if p.Rebuilds() != 2 {
		t.Fatalf("rebuilds = %d after a move, want 2", p.Rebuilds())
	}
	if !approxVec(p.Tree().Beam(0).Origin(), Vec2{X: 10}) {
		t.Fatalf("beam origin = %v, want the new (10,0)", p.Tree().Beam(0).Origin())
	}
}

func TestProjector_RebuildDiscardsOldTree(t *testing.T) {
	p, _ := headlessProjector(150)
	p.TurnOn()

	old := p.Tree()
	h := old.Handle(0)
	p.SetStrength(300)

	if p.Tree() == old {
		t.Fatal("a rebuild must produce a fresh tree")
	}
	if old.Resolve(h) != nil {
		t.Fatal("handles into the replaced tree must go stale")
	}
	if got := p.Tree().Beam(0).Right().Length; !approx(got, 300) {
		t.Fatalf("rebuilt length = %v, want the new strength 300", got)
	}
}

func TestProjector_TurnOffDropsTree(t *testing.T) {
	p, _ := headlessProjector(150)
	p.TurnOn()

	tree := p.Tree()
	h := tree.Handle(0)
	p.TurnOff()

	if p.On() || p.Tree() != nil || p.Beams() != nil {
		t.Fatal("an off projector retains no beams")
	}
	if tree.Resolve(h) != nil {
		t.Fatal("turning off must stale every handle into the old tree")
	}

	// Setters on an off projector change state but build nothing.
	if !p.SetStrength(500) {
		t.Fatal("changing strength while off must still report the change")
	}
	if p.Tree() != nil {
		t.Fatal("an off projector must not propagate")
	}

	p.TurnOn()
	if got := p.Tree().Beam(0).Right().Length; !approx(got, 500) {
		t.Fatalf("length after turn on = %v, want the strength set while off", got)
	}
}

func TestProjector_UnparentedDoesNotPropagate(t *testing.T) {
	p := NewProjector(nil, White, 150, Vec2{}, Vec2{X: 1})
	p.TurnOn()
	if p.Tree() != nil {
		t.Fatal("a projector without a scene has nothing to propagate against")
	}

	NewScene(NewManager(), p)
	if p.Tree() == nil || p.Rebuilds() != 1 {
		t.Fatal("parenting an on projector must propagate immediately")
	}
}

func TestRotateProjector(t *testing.T) {
	p, _ := headlessProjector(150)

	if !RotateProjector(p, math.Pi/2) {
		t.Fatal("rotating must report a change")
	}
	if !approxVec(p.Direction(), Vec2{Y: 1}) {
		t.Fatalf("direction = %v, want (0,1)", p.Direction())
	}
	if !approx(p.Direction().Length(), 1) {
		t.Fatalf("direction length = %v, want unit", p.Direction().Length())
	}
}

func TestScene_RepropagateRebuildsLiveProjectors(t *testing.T) {
	filter := NewFilter(Vec2{X: 50}, Vec2{X: 1}, 30, 100, White)
	manager := NewManager()
	manager.AddInteractor(filter, true)

	p := NewProjector(nil, White, 100, Vec2{}, Vec2{X: 1})
	s := NewScene(manager, p)
	p.TurnOn()

	if p.Tree().Len() != 2 {
		t.Fatalf("tree has %d beams, want truncation plus continuation", p.Tree().Len())
	}

	// Recolor the filter out from under the projector; only Repropagate
	// makes the change visible.
	filter.SetComponents(Red)
	if got := p.Tree().Beam(1).Components(); got != White {
		t.Fatalf("components before repropagate = %v, want the stale White", got)
	}
	s.Repropagate()
	if got := p.Tree().Beam(1).Components(); got != Red {
		t.Fatalf("components after repropagate = %v, want Red", got)
	}
	if p.Rebuilds() != 2 {
		t.Fatalf("rebuilds = %d, want 2", p.Rebuilds())
	}
}

func TestNewTestScene_FilterSplitsBeam(t *testing.T) {
	s := NewTestScene(nil)

	p := s.Projectors()[0]
	if !p.On() || p.Tree() == nil {
		t.Fatal("the demo projector starts on and propagated")
	}
	// The filter face at x=60 spans y in [-20,80], covering the whole beam.
	if p.Tree().Len() != 2 {
		t.Fatalf("tree has %d beams, want 2", p.Tree().Len())
	}
	root := p.Tree().Beam(p.Tree().Roots()[0])
	if !approx(root.Right().Length, 60) {
		t.Fatalf("truncation at %v, want the filter face at 60", root.Right().Length)
	}
	child := p.Tree().Beam(root.Children()[0])
	if !approx(child.Right().Strength, 90) {
		t.Fatalf("continuation strength = %v, want 150-60=90", child.Right().Strength)
	}
}
