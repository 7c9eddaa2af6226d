package sim

// scheduledKind tags a delayed action in the schedule queue.
type scheduledKind int

const (
	schedLaser scheduledKind = iota
)

type scheduled struct {
	at   float64 // Clock time to fire
	kind scheduledKind
}

// schedule is a small time-ordered queue of delayed actions running on the
// pausable game clock. Insertion keeps ascending order; ties fire FIFO.
type schedule struct {
	items []scheduled
}

func (s *schedule) push(at float64, kind scheduledKind) {
	i := len(s.items)
	for i > 0 && s.items[i-1].at > at {
		i--
	}
	s.items = append(s.items, scheduled{})
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = scheduled{at: at, kind: kind}
}

// due pops every action whose time has come.
func (s *schedule) due(now float64) []scheduled {
	n := 0
	for n < len(s.items) && s.items[n].at <= now {
		n++
	}
	if n == 0 {
		return nil
	}
	out := make([]scheduled, n)
	copy(out, s.items[:n])
	s.items = s.items[n:]
	return out
}

func (s *schedule) clear() {
	s.items = nil
}

func (s *schedule) pending(kind scheduledKind) bool {
	for _, it := range s.items {
		if it.kind == kind {
			return true
		}
	}
	return false
}
