package poker

import "github.com/lox/pokerengine/card"

// EventKind tags what happened in one Event (§4.4 "Event is a tagged
// record of what happened").
type EventKind uint8

const (
	EventAntePosted EventKind = iota
	EventBetsCollected
	EventBlindPosted
	EventCardBurned
	EventHoleDealt
	EventBoardDealt
	EventDiscarded
	EventStoodPat
	EventFolded
	EventCheckedOrCalled
	EventBringInPosted
	EventRaisedTo
	EventShown
	EventMucked
	EventHandKilled
	EventChipsPushed
	EventChipsPulled
)

func (k EventKind) String() string {
	switch k {
	case EventAntePosted:
		return "ante-posted"
	case EventBetsCollected:
		return "bets-collected"
	case EventBlindPosted:
		return "blind-posted"
	case EventCardBurned:
		return "card-burned"
	case EventHoleDealt:
		return "hole-dealt"
	case EventBoardDealt:
		return "board-dealt"
	case EventDiscarded:
		return "discarded"
	case EventStoodPat:
		return "stood-pat"
	case EventFolded:
		return "folded"
	case EventCheckedOrCalled:
		return "checked-or-called"
	case EventBringInPosted:
		return "bring-in-posted"
	case EventRaisedTo:
		return "raised-to"
	case EventShown:
		return "shown"
	case EventMucked:
		return "mucked"
	case EventHandKilled:
		return "hand-killed"
	case EventChipsPushed:
		return "chips-pushed"
	case EventChipsPulled:
		return "chips-pulled"
	default:
		return "unknown"
	}
}

// Event is an append-only record of one state-machine step (§9 "flat
// event list"). Not every field is populated by every kind: Seat is -1
// when an event has no single associated seat (e.g. bets-collected).
type Event struct {
	Kind   EventKind
	Seat   int
	Cards  []card.Card
	Amount int
}
