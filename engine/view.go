package engine

// BidView is what a seat may see when it is due to call.
type BidView struct {
	Seat          Seat
	Dealer        Seat
	Vulnerability Vulnerability
	Hand          CardSet
	Calls         []Call
	Legal         []Bid
}

// PlayView is what a seat may see when it is due to play: its own cards,
// dummy once the opening lead is made, and every card played so far.
type PlayView struct {
	Seat     Seat
	Hand     CardSet
	Contract Contract

	DummySeat    Seat
	DummyVisible bool
	Dummy        CardSet

	Trick          Trick
	Completed      []Trick
	Legal          CardSet
	DeclarerTricks int
	DefenseTricks  int
}

// Lead returns the led suit of the trick in progress, or NoSuit.
func (v PlayView) Lead() Suit { return v.Trick.leadOrNone() }

// IsDeclaringSide reports whether the acting seat is declarer or dummy.
func (v PlayView) IsDeclaringSide() bool {
	return v.Seat.Partnership() == v.Contract.Partnership()
}

// BidView builds the bidding snapshot for seat.
func (b *Board) BidView(seat Seat) (BidView, error) {
	next, ok := b.NextBidder()
	if !ok {
		return BidView{}, &InvalidStateError{Op: "view the auction", Status: b.status}
	}
	if seat != next {
		return BidView{}, &OutOfTurnError{Seat: seat, Expected: next}
	}
	return BidView{
		Seat:          seat,
		Dealer:        b.cfg.Dealer,
		Vulnerability: b.cfg.Vulnerability,
		Hand:          b.hands[seat].Remaining,
		Calls:         b.Auction(),
		Legal:         b.auction.LegalBids(seat),
	}, nil
}

// PlayView builds the play snapshot for seat.
func (b *Board) PlayView(seat Seat) (PlayView, error) {
	next, ok := b.NextPlayer()
	if !ok {
		return PlayView{}, &InvalidStateError{Op: "view play", Status: b.status}
	}
	if seat != next {
		return PlayView{}, &OutOfTurnError{Seat: seat, Expected: next}
	}
	v := PlayView{
		Seat:           seat,
		Hand:           b.hands[seat].Remaining,
		Contract:       *b.contract,
		DummySeat:      b.contract.Dummy(),
		DummyVisible:   b.DummyExposed(),
		Legal:          b.LegalPlays(seat),
		DeclarerTricks: b.declarerTricks,
		DefenseTricks:  b.defenseTricks,
	}
	if v.DummyVisible {
		v.Dummy = b.hands[v.DummySeat].Remaining
	}
	if t, ok := b.CurrentTrick(); ok {
		v.Trick = t
	} else {
		v.Trick = *NewTrick(seat)
	}
	for _, t := range b.tricks {
		if t.IsComplete() {
			v.Completed = append(v.Completed, *t.Clone())
		}
	}
	return v, nil
}
