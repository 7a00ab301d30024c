package light

// treeGen is the generation stamp handed to each new tree. The engine is
// single-threaded per update, so a plain counter is enough.
var treeGen uint64

// BeamHandle is a non-owning reference to a beam inside a BeamTree. Handles
// from a killed tree resolve to nil; nobody has to be told a beam died.
type BeamHandle struct {
	Gen   uint64
	Index int
}

// BeamTree owns every beam produced by one propagation pass. Beams are
// values in a single arena and reference each other by index, so the whole
// tree is discarded in one sweep and no ownership cycles can form.
type BeamTree struct {
	gen   uint64
	beams []Beam
	roots []int
	dead  bool
}

// NewBeamTree returns an empty tree with a fresh generation stamp.
func NewBeamTree() *BeamTree {
	treeGen++
	return &BeamTree{gen: treeGen}
}

// add stores a beam and returns its arena index, registering the outgoing
// association on the interactor that emitted it.
func (t *BeamTree) add(b Beam) int {
	idx := len(t.beams)
	t.beams = append(t.beams, b)
	if b.emitter != nil {
		b.emitter.noteOutgoing(BeamHandle{Gen: t.gen, Index: idx})
	}
	return idx
}

// Len is the number of beams in the tree.
func (t *BeamTree) Len() int { return len(t.beams) }

// Roots are the indexes of the beams split directly from the initial beam.
func (t *BeamTree) Roots() []int { return t.roots }

// Beam returns the beam at index. The pointer is only valid until the next
// propagation into this tree.
func (t *BeamTree) Beam(index int) *Beam { return &t.beams[index] }

// Handle returns a soft reference to the beam at index.
func (t *BeamTree) Handle(index int) BeamHandle {
	return BeamHandle{Gen: t.gen, Index: index}
}

// Resolve returns the beam a handle points at, or nil when the handle is
// stale: wrong generation, killed tree, or out of range.
func (t *BeamTree) Resolve(h BeamHandle) *Beam {
	if t == nil || t.dead || h.Gen != t.gen || h.Index < 0 || h.Index >= len(t.beams) {
		return nil
	}
	return &t.beams[h.Index]
}

// Depth returns the deepest child chain in the tree; an empty tree is 0 and
// a tree of only roots is 1.
func (t *BeamTree) Depth() int {
	depth := 0
	for _, root := range t.roots {
		if d := t.depthFrom(root); d > depth {
			depth = d
		}
	}
	return depth
}

func (t *BeamTree) depthFrom(index int) int {
	deepest := 0
	for _, child := range t.beams[index].children {
		if d := t.depthFrom(child); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Walk visits every beam depth-first from the roots.
func (t *BeamTree) Walk(visit func(index, depth int, b *Beam)) {
	for _, root := range t.roots {
		t.walkFrom(root, 0, visit)
	}
}

func (t *BeamTree) walkFrom(index, depth int, visit func(index, depth int, b *Beam)) {
	visit(index, depth, &t.beams[index])
	for _, child := range t.beams[index].children {
		t.walkFrom(child, depth+1, visit)
	}
}

// Kill cancels the whole tree: children are killed depth-first before each
// beam clears its own child set, interactor associations are dropped, and
// every handle into the tree goes stale.
func (t *BeamTree) Kill() {
	if t.dead {
		return
	}
	for _, root := range t.roots {
		t.killBeam(root)
	}
	t.roots = nil
	t.dead = true
}

func (t *BeamTree) killBeam(index int) {
	b := &t.beams[index]
	for _, child := range b.children {
		t.killBeam(child)
	}
	b.children = nil

	h := BeamHandle{Gen: t.gen, Index: index}
	if b.interactor != nil {
		b.interactor.dropIncoming(h)
	}
	if b.emitter != nil {
		b.emitter.dropOutgoing(h)
	}
}
