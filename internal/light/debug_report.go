package light

import (
	"fmt"
	"strings"
)

// DebugReport dumps the scene's live beam trees and propagation counters as
// text, for the clipboard or a terminal.
func (s *Scene) DebugReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- light scene report ---\n")

	c := s.manager.Counters()
	fmt.Fprintf(&b, "interactors: active=%d inactive=%d\n", len(s.manager.active), len(s.manager.inactive))
	fmt.Fprintf(&b, "counters: edge_tests=%d beams_built=%d max_depth=%d unsupported=%d\n\n",
		c.EdgeTests, c.BeamsBuilt, c.MaxDepth, c.Unsupported)

	for i, it := range s.manager.active {
		fmt.Fprintf(&b, "interactor %d: kind=%s pos=(%.1f, %.1f) comps=%s verts=%d\n",
			i, it.kind, it.position.X, it.position.Y, it.components, len(it.bounds))
	}
	if len(s.manager.active) > 0 {
		b.WriteString("\n")
	}

	for i, p := range s.projectors {
		fmt.Fprintf(&b, "projector %d: on=%v origin=(%.1f, %.1f) dir=(%.2f, %.2f) strength=%.1f comps=%s\n",
			i, p.on, p.origin.X, p.origin.Y, p.direction.X, p.direction.Y, p.strength, p.components)

		tree := p.tree
		if tree == nil {
			b.WriteString("(no live beams)\n\n")
			continue
		}
		fmt.Fprintf(&b, "beams=%d depth=%d\n", tree.Len(), tree.Depth())
		tree.Walk(func(index, depth int, beam *Beam) {
			indent := strings.Repeat("  ", depth)
			hit := "-"
			if beam.interactor != nil {
				hit = beam.interactor.kind.String()
			}
			fmt.Fprintf(&b, "%s[%d] comps=%s origin=(%.1f, %.1f) width=%.1f len=(%.1f, %.1f) bounds=[%.2f, %.2f] hit=%s\n",
				indent, index, beam.components,
				beam.origin.X, beam.origin.Y, beam.width,
				beam.right.Length, beam.left.Length,
				beam.right.Bound, beam.left.Bound, hit)
		})
		b.WriteString("\n")
	}

	return b.String()
}
