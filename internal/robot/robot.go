// Package robot holds simple automated seats. Robots only choose among the
// actions the engine reports as legal; every rule lives in the engine.
package robot

import "github.com/jason-s-yu/twoclubs/engine"

// Bidder chooses a call from a bidding snapshot.
type Bidder interface {
	Bid(view engine.BidView) engine.Bid
}

// CardPlayer chooses a card from a play snapshot. It is asked for dummy's
// cards too, with the view built for dummy's seat.
type CardPlayer interface {
	Play(view engine.PlayView) engine.Card
}

// Player sits at a table for both phases.
type Player interface {
	Bidder
	CardPlayer
}

type composite struct {
	Bidder
	CardPlayer
}

// Compose pairs a bidder with a card player.
func Compose(b Bidder, p CardPlayer) Player {
	return composite{Bidder: b, CardPlayer: p}
}

// pick returns a uniformly chosen element of cards.
func pick(cards []engine.Card, rng engine.Rand) engine.Card {
	if len(cards) == 0 {
		return engine.NoCard
	}
	return cards[rng.Intn(len(cards))]
}

// lowest returns the lowest-ranked card of set, preferring non-trumps.
// Rank ties go to the lower suit.
func lowest(set engine.CardSet, trump engine.Strain) engine.Card {
	best := engine.NoCard
	for _, suit := range engine.Suits {
		c, ok := set.Lowest(suit)
		if !ok {
			continue
		}
		if best == engine.NoCard || lowerThan(c, best, trump) {
			best = c
		}
	}
	return best
}

func lowerThan(a, b engine.Card, trump engine.Strain) bool {
	aTrump, bTrump := a.Suit().Strain() == trump, b.Suit().Strain() == trump
	if aTrump != bTrump {
		return bTrump
	}
	return a.Rank() < b.Rank()
}
