package robot

import "github.com/jason-s-yu/twoclubs/engine"

// PassOutPoints is the total-point count at or below which a hand is too
// weak to open. A board where every hand is this weak is passed out.
const PassOutPoints = 12

// AssignContract picks a contract for a freshly created board by looking at
// all four hands, skipping the auction. The stronger side declares; rng
// breaks a tie in side strength. If every hand is weak the board is passed
// out instead.
func AssignContract(b *engine.Board, rng engine.Rand) error {
	deal := b.Deal()
	weak := true
	for _, h := range deal {
		if h.TotalPoints() > PassOutPoints {
			weak = false
			break
		}
	}
	if weak {
		return b.PassOut()
	}

	side := engine.NS
	ns := deal[engine.North].TotalPoints() + deal[engine.South].TotalPoints()
	ew := deal[engine.East].TotalPoints() + deal[engine.West].TotalPoints()
	switch {
	case ew > ns:
		side = engine.EW
	case ew == ns:
		side = engine.Partnerships[rng.Intn(2)]
	}
	return b.AssignContract(ChooseContract(side, deal))
}

// ChooseContract picks level and strain for side from the combined strength
// of its two hands. Declarer is the hand with more total points, the first
// seat of the side on a tie.
func ChooseContract(side engine.Partnership, deal [engine.NumSeats]engine.CardSet) engine.Contract {
	seats := side.Seats()
	h1, h2 := deal[seats[0]], deal[seats[1]]
	points := h1.TotalPoints() + h2.TotalPoints()
	hcp := h1.HighCardPoints() + h2.HighCardPoints()

	var fit [engine.NumSuits]int
	stopped, wellStopped, slamNT, slamSuit := 0, 0, 0, 0
	for _, s := range engine.Suits {
		fit[s] = h1.SuitLen(s) + h2.SuitLen(s)
		if h1.Stopped(s) || h2.Stopped(s) {
			stopped++
		}
		if h1.WellStopped(s) || h2.WellStopped(s) {
			wellStopped++
		}
		if h1.FirstOrSecondRoundStopped(s, false) || h2.FirstOrSecondRoundStopped(s, false) {
			slamNT++
		}
		if h1.FirstOrSecondRoundStopped(s, true) || h2.FirstOrSecondRoundStopped(s, true) {
			slamSuit++
		}
	}

	best := BestFit(fit)
	major := engine.Spades
	if fit[engine.Hearts] > fit[engine.Spades] {
		major = engine.Hearts
	}
	minor := engine.Clubs
	if fit[engine.Diamonds] > fit[engine.Clubs] {
		minor = engine.Diamonds
	}

	declarer := seats[0]
	if h2.TotalPoints() > h1.TotalPoints() {
		declarer = seats[1]
	}

	c := engine.Contract{Declarer: declarer, Level: 1, Strain: engine.NoTrump}
	switch {
	case slamSuit == engine.NumSuits && points >= 32 && hcp >= 30 && fit[best] >= 8:
		c.Level, c.Strain = 6, best.Strain()
	case slamNT == engine.NumSuits && hcp >= 32:
		c.Level = 6
	case hcp >= 25 && stopped == engine.NumSuits, points >= 25 && wellStopped == engine.NumSuits:
		c.Level = 3
	case points >= 25 && fit[major] >= 8:
		c.Level, c.Strain = 4, major.Strain()
	case points >= 27 && fit[minor] >= 8:
		c.Level, c.Strain = 5, minor.Strain()
	case fit[best] >= 8:
		c.Strain = best.Strain()
	}
	return c
}

// BestFit returns the longest combined suit. Ties prefer the higher-ranking
// suit: spades, hearts, diamonds, clubs.
func BestFit(fit [engine.NumSuits]int) engine.Suit {
	best := engine.Spades
	for i := engine.NumSuits - 2; i >= 0; i-- {
		if s := engine.Suit(i); fit[s] > fit[best] {
			best = s
		}
	}
	return best
}
