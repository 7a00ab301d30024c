package light

import (
	"math"
	"sort"
)

// maxPropagateDepth caps the interaction recursion. Strength strictly
// shrinks at every interaction so finite scenes terminate on their own; the
// cap only matters for degenerate zero-travel geometry.
const maxPropagateDepth = 64

// PropagateRoot splits the initial beam against the scene and stores the
// full resulting tree. The returned indexes are the direct, pre-interaction
// output beams of the initial beam.
func (t *BeamTree) PropagateRoot(m *Manager, initial Beam) []int {
	t.roots = t.propagate(m, initial, 0)
	return t.roots
}

// propagate stores the beams b splits into and recurses through their
// interactions, returning the stored indexes of b's direct pieces.
func (t *BeamTree) propagate(m *Manager, b Beam, depth int) []int {
	if depth > m.counters.MaxDepth {
		m.counters.MaxDepth = depth
	}
	if depth >= maxPropagateDepth {
		m.counters.BeamsBuilt++
		return []int{t.add(b)}
	}

	edges := m.CalculateIntersectingEdges(&b)
	front := frontFacing(&b, edges)
	if len(front) == 0 {
		// Terminal case: nothing to cut against, the beam passes unchanged.
		m.counters.BeamsBuilt++
		return []int{t.add(b)}
	}

	spans := sweepBeam(&b, front)
	if len(spans) == 0 {
		m.counters.BeamsBuilt++
		return []int{t.add(b)}
	}

	out := make([]int, 0, len(spans))
	for _, sp := range spans {
		m.counters.BeamsBuilt++
		idx := t.add(sp.beam)
		out = append(out, idx)

		if sp.edge == nil {
			continue
		}
		it := sp.edge.Interactor
		t.beams[idx].interactor = it
		it.noteIncoming(t.Handle(idx))

		children, err := it.CalculateInteraction(&t.beams[idx], *sp.edge)
		if err != nil {
			// Unmodeled obstacle kind: the beam still stops at its face,
			// it just spawns nothing.
			m.counters.Unsupported++
			continue
		}
		for _, child := range children {
			child.emitter = it
			kids := t.propagate(m, child, depth+1)
			t.beams[idx].children = append(t.beams[idx].children, kids...)
		}
	}
	return out
}

// frontFacing drops obstacle edges that show the beam their unlit side. An
// edge faces the light when its outward normal points against the projection
// ray at either of its endpoints. The test is per endpoint, not against the
// beam's forward axis: a fanning beam's sloped outer rays strike faces the
// axis alone would only graze.
func frontFacing(b *Beam, edges []ObstacleEdge) []ObstacleEdge {
	var front []ObstacleEdge
	for _, e := range edges {
		if e.Normal.Dot(b.projectionDir(e.Start)) < 0.0 || e.Normal.Dot(b.projectionDir(e.End)) < 0.0 {
			front = append(front, e)
		}
	}
	return front
}

// span is one output beam of a sweep plus the obstacle edge that was nearest
// while it was open; a nil edge means the span ran to its natural end.
type span struct {
	beam Beam
	edge *ObstacleEdge
}

const (
	evPoint = iota // projected obstacle edge endpoint
	evRightEnd     // the beam's right extremity, opens the sweep
	evLeftEnd      // the beam's left extremity, closes the sweep
)

// sweepEvent is one distinguished point of the sweep: an obstacle edge
// endpoint projected onto the beam's cross-section, or one of the beam's own
// extremities.
type sweepEvent struct {
	kind  int
	world Vec2            // the point being projected
	proj  Vec2            // its projection on the cross-section line
	dir   Vec2            // projection ray direction at this point
	s     float64         // transverse position across the beam width
	edges []*ObstacleEdge // obstacle edges meeting at this point
}

// sweepBeam partitions b across its width by the nearest obstacle edge,
// sweeping right to left over every projected edge endpoint and emitting a
// new output beam each time the nearest edge changes. An empty result means
// the geometry was too degenerate to cut and the caller keeps b whole.
func sweepBeam(b *Beam, edges []ObstacleEdge) []span {
	if b.width <= 0.0 {
		return nil
	}

	events := make([]sweepEvent, 0, 2*len(edges)+2)
	events = append(events, sweepEvent{
		kind: evRightEnd,
		proj: b.right.Source,
		dir:  b.right.Direction,
		s:    0.0,
	})

	// Project both endpoints of every usable edge, merging endpoints shared
	// between edges so corners arrive as a single event.
	eventAt := make(map[Vec2]int)
	usable := 0
	for i := range edges {
		e := &edges[i]
		startProj, startDir, startS, ok := b.projectPoint(e.Start)
		if !ok {
			continue
		}
		endProj, endDir, endS, ok := b.projectPoint(e.End)
		if !ok {
			continue
		}
		usable++
		events = appendPointEvent(events, eventAt, e.Start, startProj, startDir, startS, e)
		events = appendPointEvent(events, eventAt, e.End, endProj, endDir, endS, e)
	}
	if usable == 0 {
		return nil
	}

	events = append(events, sweepEvent{
		kind: evLeftEnd,
		proj: b.left.Source,
		dir:  b.left.Direction,
		s:    b.width,
	})

	// Stable transverse sort: the right extremity stays ahead of anything
	// sharing its position and the left extremity behind.
	sort.SliceStable(events, func(i, j int) bool { return events[i].s < events[j].s })

	var (
		spans   []span
		active  []*ObstacleEdge
		current *ObstacleEdge
		start   sweepEvent
		open    bool
	)

	for i := range events {
		ev := &events[i]

		// Edges ending at this point retire, edges starting here activate.
		// Both can happen at once at a shared corner.
		for _, e := range ev.edges {
			if idx := indexOfEdge(active, e); idx >= 0 {
				active = append(active[:idx], active[idx+1:]...)
			} else {
				active = append(active, e)
			}
		}

		switch ev.kind {
		case evRightEnd:
			start = *ev
			current = nearestEdge(b, ev, active)
			open = true

		case evLeftEnd:
			if open {
				spans = appendSpan(spans, b, start, *ev, current)
			}
			// Step past the left extremity opens nothing new.
			return spans

		case evPoint:
			if !open {
				continue
			}
			next := nearestEdge(b, ev, active)
			if next != current {
				spans = appendSpan(spans, b, start, *ev, current)
				start = *ev
				current = next
			}
		}
	}
	return spans
}

func appendPointEvent(events []sweepEvent, eventAt map[Vec2]int, world, proj, dir Vec2, s float64, e *ObstacleEdge) []sweepEvent {
	if idx, ok := eventAt[world]; ok {
		events[idx].edges = append(events[idx].edges, e)
		return events
	}
	eventAt[world] = len(events)
	return append(events, sweepEvent{
		kind:  evPoint,
		world: world,
		proj:  proj,
		dir:   dir,
		s:     s,
		edges: []*ObstacleEdge{e},
	})
}

// projectionDir is the direction light travels at a world point: along the
// fan ray from the vanishing point when the beam's edges meet, along the
// right edge when the beam is collimated. Zero for the vanishing point
// itself.
func (b *Beam) projectionDir(point Vec2) Vec2 {
	if !b.converges {
		return b.right.Direction
	}
	d := point.Sub(b.intersection)
	if d.Dot(b.direction) < 0.0 {
		d = d.Scale(-1)
	}
	return d.Normalize()
}

// projectPoint maps a world point onto the beam's cross-section: the
// projection ray through the point is intersected with the cross-section
// line. The returned s is the transverse position relative to the right
// edge source.
func (b *Beam) projectPoint(point Vec2) (proj Vec2, dir Vec2, s float64, ok bool) {
	dir = b.projectionDir(point)
	if (dir == Vec2{}) {
		return Vec2{}, Vec2{}, 0, false
	}

	proj, ok = RayIntersection(b.right.Source, b.normal, point, dir)
	if !ok {
		return Vec2{}, Vec2{}, 0, false
	}
	s = proj.Sub(b.right.Source).Dot(b.normal)
	return proj, dir, s, true
}

// nearestEdge returns the active edge first struck by the projection ray at
// ev, or nil when the beam's own end cap comes first. Ties keep the earlier
// activated edge.
func nearestEdge(b *Beam, ev *sweepEvent, active []*ObstacleEdge) *ObstacleEdge {
	best := b.endCapDistance(ev.proj, ev.dir)
	var bestEdge *ObstacleEdge
	for _, e := range active {
		d, ok := edgeDistance(ev.proj, ev.dir, e)
		if !ok || d <= 0.0 {
			continue
		}
		if d < best {
			best = d
			bestEdge = e
		}
	}
	return bestEdge
}

// edgeDistance is the signed distance along the ray o+t*dir to the obstacle
// edge's carrier line.
func edgeDistance(o, dir Vec2, e *ObstacleEdge) (float64, bool) {
	edgeDir := e.End.Sub(e.Start).Normalize()
	if (edgeDir == Vec2{}) {
		return 0, false
	}
	hit, ok := RayIntersection(o, dir, e.Start, edgeDir)
	if !ok {
		return 0, false
	}
	return hit.Sub(o).Dot(dir), true
}

// endCapDistance is the distance along the ray o+t*dir to the beam's far end
// cap, or +Inf when the ray never reaches it.
func (b *Beam) endCapDistance(o, dir Vec2) float64 {
	capDir := b.left.Sink.Sub(b.right.Sink).Normalize()
	if (capDir == Vec2{}) {
		// Fully converged beam: the cap is a single point.
		return b.right.Sink.Sub(o).Dot(dir)
	}
	hit, ok := RayIntersection(o, dir, b.right.Sink, capDir)
	if !ok {
		return math.Inf(1)
	}
	return hit.Sub(o).Dot(dir)
}

// appendSpan emits the output beam covering [from.s, to.s] with e as its
// nearest obstacle. Zero-width spans are dropped.
func appendSpan(spans []span, b *Beam, from, to sweepEvent, e *ObstacleEdge) []span {
	if to.s-from.s <= 0.0 {
		return spans
	}

	fFrom := from.s / b.width
	fTo := to.s / b.width

	rightStrength := lerp(b.right.Strength, b.left.Strength, fFrom)
	leftStrength := lerp(b.right.Strength, b.left.Strength, fTo)

	right := NewEdge(from.proj, from.dir, rightStrength,
		spanLength(b, from, e, rightStrength),
		lerp(b.right.Bound, b.left.Bound, fFrom))
	left := NewEdge(to.proj, to.dir, leftStrength,
		spanLength(b, to, e, leftStrength),
		lerp(b.right.Bound, b.left.Bound, fTo))

	out := NewBeamDirected(b.image, b.components, left, right, b.direction)
	out.emitter = b.emitter
	return append(spans, span{beam: out, edge: e})
}

// spanLength is how far the output edge at ev travels: to the nearest
// obstacle edge when there is one, else to the beam's end cap, never past
// the edge's strength.
func spanLength(b *Beam, ev sweepEvent, e *ObstacleEdge, strength float64) float64 {
	if e != nil {
		if d, ok := edgeDistance(ev.proj, ev.dir, e); ok && d > 0.0 {
			return math.Min(d, strength)
		}
	}
	d := b.endCapDistance(ev.proj, ev.dir)
	if math.IsInf(d, 1) || d > strength {
		return strength
	}
	if d < 0.0 {
		return 0.0
	}
	return d
}

func indexOfEdge(set []*ObstacleEdge, e *ObstacleEdge) int {
	for i, existing := range set {
		if existing == e {
			return i
		}
	}
	return -1
}
