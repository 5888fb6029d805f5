package publication

import (
	"github.com/diegorodrguez7/carta-digital-qr/internal/model"
)

// State is the publication state of a restaurant's menu, derived from the
// published flag and the menu link rather than stored separately.
type State string

const (
	// StateDraft means the menu has never been published (or was deleted):
	// published=false, menuLink=nil.
	StateDraft State = "DRAFT"
	// StatePublished means the menu is live: published=true, menuLink set.
	StatePublished State = "PUBLISHED"
	// StatePaused means the menu was unpublished but stays addressable:
	// published=false, menuLink retained.
	StatePaused State = "PAUSED"
)

// Event is a requested publication transition.
type Event string

const (
	EventPublish    Event = "PUBLISH"
	EventUnpublish  Event = "UNPUBLISH"
	EventDeleteMenu Event = "DELETE_MENU"
)

// Transition defines a valid state change.
type Transition struct {
	From  State
	Event Event
	To    State
}

// validTransitions is the authoritative state machine definition.
// Publish and unpublish are idempotent self-transitions where that is
// meaningful; deleting the menu is allowed from every state and lands back
// in draft with the dish set purged.
var validTransitions = []Transition{
	{From: StateDraft, Event: EventPublish, To: StatePublished},
	{From: StatePaused, Event: EventPublish, To: StatePublished},
	// Re-publishing is a no-op state-wise but still recomputes the menu link.
	{From: StatePublished, Event: EventPublish, To: StatePublished},
	{From: StatePublished, Event: EventUnpublish, To: StatePaused},
	// Unpublishing an already-paused menu stays paused.
	{From: StatePaused, Event: EventUnpublish, To: StatePaused},
	{From: StateDraft, Event: EventDeleteMenu, To: StateDraft},
	{From: StatePaused, Event: EventDeleteMenu, To: StateDraft},
	{From: StatePublished, Event: EventDeleteMenu, To: StateDraft},
}

type transitionKey struct {
	From  State
	Event Event
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]State {
	m := make(map[transitionKey]State)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.Event}] = t.To
	}
	return m
}()

// StateOf derives the publication state from a restaurant record.
func StateOf(r *model.Restaurant) State {
	switch {
	case r.Published:
		return StatePublished
	case r.MenuLink != nil:
		return StatePaused
	default:
		return StateDraft
	}
}

// Apply returns the state after event, or false if the transition is invalid
// from the given state.
func Apply(from State, event Event) (State, bool) {
	to, ok := transitionMap[transitionKey{From: from, Event: event}]
	return to, ok
}

// All returns the full transition table for documentation.
func All() []Transition {
	return validTransitions
}
