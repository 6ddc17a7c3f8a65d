package engine

// Hand is one seat's cards: the thirteen it was dealt and those it has not
// yet played. Remaining is always a subset of Dealt.
type Hand struct {
	Seat      Seat
	Dealt     CardSet
	Remaining CardSet
}

// NewHand deals cards to seat.
func NewHand(seat Seat, cards CardSet) Hand {
	return Hand{Seat: seat, Dealt: cards, Remaining: cards}
}

// Played returns the cards this hand has already contributed to tricks.
func (h Hand) Played() CardSet { return h.Dealt.Minus(h.Remaining) }

// Eligible returns the cards h may play to a trick led in lead. With
// NoSuit (h is leading) or a void in lead, every remaining card is eligible.
func (h Hand) Eligible(lead Suit) CardSet {
	if lead == NoSuit {
		return h.Remaining
	}
	if following := h.Remaining.InSuit(lead); !following.IsEmpty() {
		return following
	}
	return h.Remaining
}

// CheckPlayable validates card against the remaining holding and the
// follow-suit rule. It returns *IllegalPlayError or *RenegeError.
func (h Hand) CheckPlayable(card Card, lead Suit) error {
	if !h.Remaining.Has(card) {
		return &IllegalPlayError{Seat: h.Seat, Card: card}
	}
	if !h.Eligible(lead).Has(card) {
		return &RenegeError{Seat: h.Seat, Card: card, Lead: lead}
	}
	return nil
}

// play removes card from the remaining holding. Callers validate first.
func (h *Hand) play(card Card) { h.Remaining = h.Remaining.Without(card) }

// HighCardPoints of the dealt hand.
func (h Hand) HighCardPoints() int { return h.Dealt.HighCardPoints() }

// TotalPoints of the dealt hand: high-card plus distribution points.
func (h Hand) TotalPoints() int { return h.Dealt.TotalPoints() }
