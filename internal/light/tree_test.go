package light

import "testing"

// filteredTree propagates the standard beam through one full-cover filter,
// yielding a two-beam tree: the truncated root and its continuation.
func filteredTree(t *testing.T) (*BeamTree, *Interactor) {
	t.Helper()
	filter := NewFilter(Vec2{X: 50}, Vec2{X: 1}, 30, 100, White)
	tree := NewBeamTree()
	tree.PropagateRoot(sceneWith(filter), collimatedBeam(7, 100))
	if tree.Len() != 2 {
		t.Fatalf("setup produced %d beams, want 2", tree.Len())
	}
	return tree, filter
}

func TestBeamTree_HandleResolves(t *testing.T) {
	tree, _ := filteredTree(t)

	h := tree.Handle(1)
	if got := tree.Resolve(h); got != tree.Beam(1) {
		t.Fatal("a fresh handle must resolve to its beam")
	}
	if tree.Resolve(BeamHandle{Gen: h.Gen + 1, Index: 1}) != nil {
		t.Fatal("a handle from another generation must resolve to nil")
	}
	if tree.Resolve(BeamHandle{Gen: h.Gen, Index: 99}) != nil {
		t.Fatal("an out-of-range handle must resolve to nil")
	}
	var dead *BeamTree
	if dead.Resolve(h) != nil {
		t.Fatal("resolving against a nil tree must return nil")
	}
}

func TestBeamTree_GenerationsDistinct(t *testing.T) {
	t1 := NewBeamTree()
	t2 := NewBeamTree()
	t1.PropagateRoot(sceneWith(), collimatedBeam(7, 100))
	t2.PropagateRoot(sceneWith(), collimatedBeam(7, 100))

	if t2.Resolve(t1.Handle(0)) != nil {
		t.Fatal("a handle must not resolve against another tree")
	}
}

func TestBeamTree_KillStalesHandlesAndAssociations(t *testing.T) {
	tree, filter := filteredTree(t)

	if got := len(filter.IncomingBeams(tree)); got != 1 {
		t.Fatalf("filter sees %d incoming beams, want 1", got)
	}
	if got := len(filter.OutgoingBeams(tree)); got != 1 {
		t.Fatalf("filter sees %d outgoing beams, want 1", got)
	}

	h := tree.Handle(0)
	tree.Kill()

	if tree.Resolve(h) != nil {
		t.Fatal("handles into a killed tree must resolve to nil")
	}
	if got := len(filter.IncomingBeams(tree)); got != 0 {
		t.Fatalf("filter still sees %d incoming beams after the kill", got)
	}
	if got := len(filter.OutgoingBeams(tree)); got != 0 {
		t.Fatalf("filter still sees %d outgoing beams after the kill", got)
	}
	if len(tree.Roots()) != 0 {
		t.Fatal("a killed tree must have no roots")
	}

	// Killing twice is harmless.
	tree.Kill()
}

func TestBeamTree_DepthAndWalk(t *testing.T) {
	tree, _ := filteredTree(t)

	if got := tree.Depth(); got != 2 {
		t.Fatalf("Depth() = %d, want 2", got)
	}

	var visited []int
	var depths []int
	tree.Walk(func(index, depth int, b *Beam) {
		visited = append(visited, index)
		depths = append(depths, depth)
	})
	if len(visited) != 2 || visited[0] != 0 || visited[1] != 1 {
		t.Fatalf("walk order = %v, want [0 1]", visited)
	}
	if depths[0] != 0 || depths[1] != 1 {
		t.Fatalf("walk depths = %v, want [0 1]", depths)
	}
}

func TestBeamTree_EmptyDepthZero(t *testing.T) {
	if got := NewBeamTree().Depth(); got != 0 {
		t.Fatalf("empty tree Depth() = %d, want 0", got)
	}
}
