package engine

import "strings"

// Play is one card contributed to a trick.
type Play struct {
	Seat Seat `json:"seat"`
	Card Card `json:"card"`
}

func (p Play) String() string { return p.Seat.String() + ":" + p.Card.String() }

// Trick is one round of up to four plays in seat rotation from Leader.
// The winner is fixed when the fourth card lands.
type Trick struct {
	Leader Seat
	Plays  []Play

	winner    Seat
	hasWinner bool
}

// NewTrick starts an empty trick led by leader.
func NewTrick(leader Seat) *Trick {
	return &Trick{Leader: leader, Plays: make([]Play, 0, NumSeats)}
}

// IsComplete reports whether all four seats have played.
func (t *Trick) IsComplete() bool { return len(t.Plays) == NumSeats }

// NextSeat returns the seat due to play, or false once the trick is complete.
func (t *Trick) NextSeat() (Seat, bool) {
	if t.IsComplete() {
		return 0, false
	}
	return Seat((int(t.Leader) + len(t.Plays)) % NumSeats), true
}

// LeadSuit returns the suit of the first card, or false before any play.
func (t *Trick) LeadSuit() (Suit, bool) {
	if len(t.Plays) == 0 {
		return NoSuit, false
	}
	return t.Plays[0].Card.Suit(), true
}

// leadOrNone is LeadSuit collapsed to NoSuit for an empty trick.
func (t *Trick) leadOrNone() Suit {
	s, _ := t.LeadSuit()
	return s
}

// CurrentBest returns the play that is winning so far under trump.
func (t *Trick) CurrentBest(trump Strain) (Play, bool) {
	if len(t.Plays) == 0 {
		return Play{}, false
	}
	best := t.Plays[0]
	for _, p := range t.Plays[1:] {
		if p.Card.Beats(best.Card, trump) {
			best = p
		}
	}
	return best, true
}

// Winner returns the seat that won the trick, or false until it is complete.
func (t *Trick) Winner() (Seat, bool) { return t.winner, t.hasWinner }

// Play adds seat's card to the trick and reports whether the trick is now
// complete. Follow-suit legality is the hand's concern; Play only enforces
// rotation.
func (t *Trick) Play(seat Seat, card Card, trump Strain) (bool, error) {
	next, ok := t.NextSeat()
	if !ok {
		return true, &InvalidStateError{Op: "play to a complete trick", Status: StatusPlay}
	}
	if seat != next {
		return false, &OutOfTurnError{Seat: seat, Expected: next}
	}
	t.Plays = append(t.Plays, Play{Seat: seat, Card: card})
	if !t.IsComplete() {
		return false, nil
	}
	best, _ := t.CurrentBest(trump)
	t.winner, t.hasWinner = best.Seat, true
	return true, nil
}

// Clone returns an independent copy.
func (t *Trick) Clone() *Trick {
	c := *t
	c.Plays = make([]Play, len(t.Plays), NumSeats)
	copy(c.Plays, t.Plays)
	return &c
}

// String renders the trick as "N:2C E:KC S:3S W:AC -> S".
func (t *Trick) String() string {
	parts := make([]string, 0, len(t.Plays)+2)
	for _, p := range t.Plays {
		parts = append(parts, p.String())
	}
	if w, ok := t.Winner(); ok {
		parts = append(parts, "->", w.String())
	}
	return strings.Join(parts, " ")
}
