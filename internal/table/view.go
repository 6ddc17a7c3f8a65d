package table

import (
	"github.com/google/uuid"
	"github.com/jason-s-yu/twoclubs/engine"
)

// SeatState is one seat as seen by an observer. Cards is only set when the
// observer is allowed to see them.
type SeatState struct {
	Seat          engine.Seat    `json:"seat"`
	HandSize      int            `json:"handSize"`
	IsCurrentTurn bool           `json:"isCurrentTurn"`
	IsDummy       bool           `json:"isDummy"`
	Cards         engine.CardSet `json:"cards,omitempty"`
}

// BoardState is a board obfuscated for one seat.
type BoardState struct {
	TableID       uuid.UUID            `json:"tableId"`
	BoardID       string               `json:"boardId"`
	Number        int                  `json:"number"`
	Dealer        engine.Seat          `json:"dealer"`
	Vulnerability engine.Vulnerability `json:"vulnerability"`
	Status        string               `json:"status"`
	Observer      engine.Seat          `json:"observer"`

	Calls    []engine.Call    `json:"calls"`
	Contract *engine.Contract `json:"contract,omitempty"`
	Trick    []engine.Play    `json:"trick,omitempty"`

	DeclarerTricks int `json:"declarerTricks"`
	DefenseTricks  int `json:"defenseTricks"`

	Seats [engine.NumSeats]SeatState `json:"seats"`
}

// SeatView builds the state of b as observer may see it: its own cards,
// dummy's cards once the opening lead is made, and hand sizes for the rest.
// Once the board is complete every hand is shown as dealt.
func SeatView(b *engine.Board, observer engine.Seat) BoardState {
	st := BoardState{
		BoardID:        b.ID(),
		Number:         b.Number(),
		Dealer:         b.Dealer(),
		Vulnerability:  b.Vulnerability(),
		Status:         b.Status().String(),
		Observer:       observer,
		Calls:          b.Auction(),
		Contract:       b.Contract(),
		DeclarerTricks: b.DeclarerTricks(),
		DefenseTricks:  b.DefenseTricks(),
	}
	if tr, ok := b.CurrentTrick(); ok {
		st.Trick = tr.Plays
	}

	next, hasNext := b.NextToAct()
	dummy, hasDummy := b.Dummy()
	complete := b.Status() == engine.StatusComplete
	for _, seat := range engine.Seats {
		h := b.Hand(seat)
		ss := SeatState{
			Seat:          seat,
			HandSize:      h.Remaining.Len(),
			IsCurrentTurn: hasNext && next == seat,
			IsDummy:       hasDummy && dummy == seat,
		}
		switch {
		case complete:
			ss.Cards = h.Dealt
		case seat == observer:
			ss.Cards = h.Remaining
		case ss.IsDummy && b.DummyExposed():
			ss.Cards = h.Remaining
		}
		st.Seats[seat] = ss
	}
	return st
}
