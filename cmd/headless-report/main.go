package main

import (
	"flag"
	"fmt"

	"github.com/DragonMoffon/Acerola-Jam-0/internal/light"
)

type runStats struct {
	heading  float64
	beams    int
	depth    int
	counters light.Counters
}

func main() {
	var scenario string
	var strength float64
	var steps int
	var arc float64

	flag.StringVar(&scenario, "scenario", "colorlab", "scene to propagate (test | colorlab)")
	flag.Float64Var(&strength, "strength", 0, "override projector strength (0 keeps the scene default)")
	flag.IntVar(&steps, "steps", 9, "number of projector headings to sweep")
	flag.Float64Var(&arc, "arc", 0.6, "total sweep arc in radians, centered on the base heading")
	flag.Parse()

	if steps <= 0 {
		fmt.Println("error: -steps must be > 0")
		return
	}
	scene, err := buildScene(scenario)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	p := scene.Projectors()[0]
	if strength > 0 {
		p.SetStrength(strength)
	}

	fmt.Printf("=== Headless Light Report ===\n")
	fmt.Printf("scenario=%s steps=%d arc=%.2f strength=%.0f\n\n", scenario, steps, arc, p.Strength())

	all := make([]runStats, 0, steps)
	for i := 0; i < steps; i++ {
		heading := sweepHeading(i, steps, arc)
		stats := sample(scene, p, heading)
		all = append(all, stats)
		printRun(i+1, stats)
	}

	tests, built, unsupported, maxDepth := aggregate(all)
	fmt.Printf("--- aggregate ---\n")
	fmt.Printf("edge_tests=%d beams_built=%d max_depth=%d unsupported=%d\n\n",
		tests, built, maxDepth, unsupported)

	// Leave the projector on its base heading for the final scene dump.
	sample(scene, p, 0)
	fmt.Print(scene.DebugReport())
}

func buildScene(name string) (*light.Scene, error) {
	switch name {
	case "test":
		return light.NewTestScene(nil), nil
	case "colorlab":
		return light.NewColorLabScene(nil), nil
	}
	return nil, fmt.Errorf("unsupported scenario %q (supported: test, colorlab)", name)
}

// sweepHeading spreads the given step evenly across an arc centered on
// heading zero. A single step stays on the base heading.
func sweepHeading(step, steps int, arc float64) float64 {
	if steps == 1 {
		return 0
	}
	return arc * (float64(step)/float64(steps-1) - 0.5)
}

// sample reorients the projector, rebuilds its beam tree, and captures the
// counters that one propagation produced.
func sample(scene *light.Scene, p *light.Projector, heading float64) runStats {
	c := scene.Manager().Counters()
	c.Reset()
	if !light.RotateProjector(p, heading) {
		p.Refresh()
	}
	t := p.Tree()
	return runStats{heading: heading, beams: t.Len(), depth: t.Depth(), counters: *c}
}

func aggregate(all []runStats) (tests, built, unsupported, maxDepth int) {
	for _, rs := range all {
		tests += rs.counters.EdgeTests
		built += rs.counters.BeamsBuilt
		unsupported += rs.counters.Unsupported
		if rs.counters.MaxDepth > maxDepth {
			maxDepth = rs.counters.MaxDepth
		}
	}
	return tests, built, unsupported, maxDepth
}

func printRun(run int, rs runStats) {
	fmt.Printf("--- heading %d (%.3f rad) ---\n", run, rs.heading)
	fmt.Printf("beams=%d depth=%d edge_tests=%d beams_built=%d max_depth=%d unsupported=%d\n\n",
		rs.beams, rs.depth, rs.counters.EdgeTests, rs.counters.BeamsBuilt,
		rs.counters.MaxDepth, rs.counters.Unsupported)
}
