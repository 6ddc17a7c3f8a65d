package robot

import "github.com/jason-s-yu/twoclubs/engine"

// ThirdHandHigh plays the classic defaults: low in second seat, high in
// third seat, and just enough to win in fourth seat. It ruffs in fourth
// seat when void and leads low from a random suit.
type ThirdHandHigh struct {
	rng engine.Rand
}

func NewThirdHandHigh(rng engine.Rand) *ThirdHandHigh {
	return &ThirdHandHigh{rng: rng}
}

func (p *ThirdHandHigh) Play(view engine.PlayView) engine.Card {
	trump := view.Contract.Strain
	lead := view.Lead()
	played := len(view.Trick.Plays)

	if lead == engine.NoSuit {
		suits := view.Legal.Suits()
		suit := suits[p.rng.Intn(len(suits))]
		return lowest(view.Legal.InSuit(suit), trump)
	}

	following := view.Legal.InSuit(lead)
	switch {
	case !following.IsEmpty() && played == 2:
		return cover(view, following, true)
	case !following.IsEmpty() && played == 3:
		return cover(view, following, false)
	case !following.IsEmpty():
		return lowest(following, trump)
	}

	if trumpSuit, ok := trump.Suit(); ok && played >= 3 && lead != trumpSuit {
		if trumps := view.Legal.InSuit(trumpSuit); !trumps.IsEmpty() {
			return cover(view, trumps, false)
		}
	}
	return lowest(view.Legal, trump)
}

// cover returns the highest (or cheapest) candidate that beats the
// current best play when an opponent is winning; otherwise the lowest
// candidate.
func cover(view engine.PlayView, candidates engine.CardSet, high bool) engine.Card {
	trump := view.Contract.Strain
	best, ok := view.Trick.CurrentBest(trump)
	if !ok || best.Seat.Partnership() == view.Seat.Partnership() {
		return lowest(candidates, trump)
	}
	chosen := engine.NoCard
	for _, c := range candidates.Cards() {
		if !c.Beats(best.Card, trump) {
			continue
		}
		switch {
		case chosen == engine.NoCard:
			chosen = c
		case high && c.Beats(chosen, trump):
			chosen = c
		case !high && chosen.Beats(c, trump):
			chosen = c
		}
	}
	if chosen == engine.NoCard {
		return lowest(candidates, trump)
	}
	return chosen
}
