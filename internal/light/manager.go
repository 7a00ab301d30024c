package light

// ObstacleEdge is one world-space edge of an active interactor that overlaps
// a beam: its endpoints, its outward normal, and who owns it.
type ObstacleEdge struct {
	Start      Vec2
	End        Vec2
	Normal     Vec2
	Interactor *Interactor
}

// Counters accumulates cheap propagation statistics. They carry no
// correctness weight; the headless report and HUD read them.
type Counters struct {
	EdgeTests   int // beam-vs-edge overlap tests run
	BeamsBuilt  int // beams stored into trees
	MaxDepth    int // deepest recursion reached
	Unsupported int // interactions hitting an unimplemented kind
}

// Reset zeroes every counter.
func (c *Counters) Reset() { *c = Counters{} }

// Manager owns every interactor in the scene, split into the active set,
// which answers edge queries, and the inactive set, which has no edges at
// all as far as beams are concerned. An interactor lives in at most one set.
type Manager struct {
	active   []*Interactor
	inactive []*Interactor
	counters Counters
}

func NewManager() *Manager {
	return &Manager{}
}

// Counters exposes the propagation statistics for this manager.
func (m *Manager) Counters() *Counters { return &m.counters }

// Active returns the active interactors in registration order.
func (m *Manager) Active() []*Interactor { return m.active }

// Inactive returns the inactive interactors in registration order.
func (m *Manager) Inactive() []*Interactor { return m.inactive }

// AddInteractor registers an interactor. Re-adding one already tracked in
// either set is a no-op, whatever is passed for isActive.
func (m *Manager) AddInteractor(it *Interactor, isActive bool) {
	if containsInteractor(m.active, it) || containsInteractor(m.inactive, it) {
		return
	}
	if isActive {
		m.active = append(m.active, it)
	} else {
		m.inactive = append(m.inactive, it)
	}
}

// ActivateInteractor would move an interactor from the inactive to the
// active set. The transition itself is a known gap: untracked interactors
// are ignored, tracked ones report ErrNotImplemented.
func (m *Manager) ActivateInteractor(it *Interactor) error {
	if !containsInteractor(m.inactive, it) {
		return nil
	}
	return ErrNotImplemented
}

// DeactivateInteractor would move an interactor from the active to the
// inactive set; same known gap as ActivateInteractor.
func (m *Manager) DeactivateInteractor(it *Interactor) error {
	if !containsInteractor(m.active, it) {
		return nil
	}
	return ErrNotImplemented
}

// CalculateIntersectingEdges collects every active interactor edge that
// overlaps the beam, in registration order. Sorting across the beam happens
// later, in the sweep.
func (m *Manager) CalculateIntersectingEdges(b *Beam) []ObstacleEdge {
	var edges []ObstacleEdge
	for _, it := range m.active {
		for i := range it.bounds {
			start, end, normal := it.EdgeAdjusted(i)
			m.counters.EdgeTests++
			if b.IsEdgeInBeam(start, end) {
				edges = append(edges, ObstacleEdge{Start: start, End: end, Normal: normal, Interactor: it})
			}
		}
	}
	return edges
}

func containsInteractor(set []*Interactor, it *Interactor) bool {
	for _, existing := range set {
		if existing == it {
			return true
		}
	}
	return false
}
