package robot

import "github.com/jason-s-yu/twoclubs/engine"

// RandomPlayer bids now and then and plays a random legal card.
type RandomPlayer struct {
	rng engine.Rand

	// BidOdds is the chance, one in BidOdds, that the player tries a
	// non-pass call at all.
	BidOdds int
	// MaxLevel caps the level of normal bids it will make.
	MaxLevel int
}

// NewRandomPlayer returns a player drawing from rng with default odds.
func NewRandomPlayer(rng engine.Rand) *RandomPlayer {
	return &RandomPlayer{rng: rng, BidOdds: 3, MaxLevel: 4}
}

func (p *RandomPlayer) Bid(view engine.BidView) engine.Bid {
	odds := max(p.BidOdds, 1)
	if p.rng.Intn(odds) != 0 {
		return engine.Pass
	}
	var candidates []engine.Bid
	for _, b := range view.Legal {
		if b == engine.Pass || b.Level() > p.MaxLevel {
			continue
		}
		candidates = append(candidates, b)
	}
	if len(candidates) == 0 {
		return engine.Pass
	}
	return candidates[p.rng.Intn(len(candidates))]
}

func (p *RandomPlayer) Play(view engine.PlayView) engine.Card {
	return pick(view.Legal.Cards(), p.rng)
}

// PassiveBidder always passes and plays its lowest legal card.
type PassiveBidder struct{}

func (PassiveBidder) Bid(engine.BidView) engine.Bid { return engine.Pass }

func (PassiveBidder) Play(view engine.PlayView) engine.Card {
	return lowest(view.Legal, view.Contract.Strain)
}
