package table

import (
	"github.com/google/uuid"
	"github.com/jason-s-yu/twoclubs/engine"
)

// EventType names a table event.
type EventType string

const (
	EventBoardStart EventType = "board_start" // Public: a new board was dealt.
	EventBid        EventType = "bid"         // Public: a call was made.
	EventContract   EventType = "contract"    // Public: the auction closed (or a contract was assigned).
	EventPassedOut  EventType = "passed_out"  // Public: the board was passed out.
	EventPlay       EventType = "play"        // Public: a card was played.
	EventTrickWon   EventType = "trick_won"   // Public: a trick was completed.
	EventBoardEnd   EventType = "board_end"   // Public: the board is scored.

	EventPrivateSyncState EventType = "private_sync_state" // Private: a seat's view of the board.
)

// Event is broadcast for every state change at a table. Optional fields are
// set according to Type.
type Event struct {
	ID      uuid.UUID `json:"id"`
	Type    EventType `json:"type"`
	TableID uuid.UUID `json:"tableId"`
	BoardID string    `json:"boardId"`
	Board   int       `json:"board"`

	Seat     *engine.Seat     `json:"seat,omitempty"`
	Call     *engine.Call     `json:"call,omitempty"`
	Play     *engine.Play     `json:"play,omitempty"`
	Contract *engine.Contract `json:"contract,omitempty"`
	Winner   *engine.Seat     `json:"winner,omitempty"`

	// Tricks are the declarer and defense trick counts after a trick_won or
	// board_end event.
	DeclarerTricks int  `json:"declarerTricks,omitempty"`
	DefenseTricks  int  `json:"defenseTricks,omitempty"`
	ScoreNS        *int `json:"scoreNS,omitempty"`

	State *BoardState `json:"state,omitempty"`
}

func (t *Table) newEvent(typ EventType, b *engine.Board) Event {
	return Event{
		ID:      uuid.New(),
		Type:    typ,
		TableID: t.ID,
		BoardID: b.ID(),
		Board:   b.Number(),
	}
}

// fireEvent sends ev to the BroadcastFn callback if one is set.
// Assumes lock is held by caller.
func (t *Table) fireEvent(ev Event) {
	if t.BroadcastFn != nil {
		t.BroadcastFn(ev)
	}
}

// syncSeats sends every seat its own view of b.
// Assumes lock is held by caller.
func (t *Table) syncSeats(b *engine.Board) {
	if t.SendToSeatFn == nil {
		return
	}
	for _, seat := range engine.Seats {
		ev := t.newEvent(EventPrivateSyncState, b)
		s := seat
		ev.Seat = &s
		state := SeatView(b, seat)
		state.TableID = t.ID
		ev.State = &state
		t.SendToSeatFn(seat, ev)
	}
}
