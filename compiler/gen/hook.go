package gen

import "fmt"

// Hook is offered every assembled artifact of a table. Returning false
// discards the artifact. A hook offered a document may return a modified
// document; for every other kind the returned artifact is ignored.
type Hook func(*Table, Artifact) (Artifact, bool)

// State is the lifecycle state of an artifact assembly.
type State uint8

// Assembly states.
const (
	Building State = iota
	Offered
	Finalized
	Discarded
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Building:
		return "building"
	case Offered:
		return "offered"
	case Finalized:
		return "finalized"
	case Discarded:
		return "discarded"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Assembly tracks one artifact from building to its final state.
type Assembly struct {
	Kind  Kind
	Name  string
	State State
	// Artifact is the finalized artifact. It is nil once discarded.
	Artifact Artifact
	// Reason explains a discard.
	Reason string
}

// Assemble starts tracking an artifact whose fragments were collected.
func Assemble(a Artifact) *Assembly {
	return &Assembly{
		Kind:     a.Kind(),
		Name:     a.ArtifactName(),
		State:    Building,
		Artifact: a,
	}
}

// Offer folds the hooks over the artifact in registration order. The first
// hook that returns false discards it and later hooks are not called. An
// empty artifact is discarded without being offered.
func (as *Assembly) Offer(t *Table, hooks []Hook) State {
	if as.State != Building {
		return as.State
	}
	if as.Artifact.Empty() {
		as.discard("empty")
		return as.State
	}
	as.State = Offered
	current := as.Artifact
	for i, h := range hooks {
		next, ok := h(t, current)
		if !ok {
			as.discard(fmt.Sprintf("vetoed by hook %d", i))
			return as.State
		}
		if d, isDoc := next.(*Document); isDoc && current.Kind() == KindDocument && d != nil {
			current = d
		}
	}
	as.Artifact = current
	as.State = Finalized
	return as.State
}

func (as *Assembly) discard(reason string) {
	as.Artifact = nil
	as.Reason = reason
	as.State = Discarded
}
