package engine

import "fmt"

// ---------------------------------------------------------------------------
// Randomness
// ---------------------------------------------------------------------------

// Rand is the only source of randomness the engine uses.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// XorShift is a deterministic xorshift64 generator.
type XorShift struct {
	state uint64
}

// NewRand seeds a XorShift. A zero seed is replaced by 1 since xorshift
// never leaves zero.
func NewRand(seed uint64) *XorShift {
	if seed == 0 {
		seed = 1
	}
	return &XorShift{state: seed}
}

// Uint64 advances the generator.
func (x *XorShift) Uint64() uint64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	x.state = s
	return s
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (x *XorShift) Intn(n int) int {
	if n <= 0 {
		panic("engine: Intn argument must be positive")
	}
	return int(x.Uint64() % uint64(n))
}

// ---------------------------------------------------------------------------
// Deck and deal
// ---------------------------------------------------------------------------

// NewDeck returns the 52 cards in suit-then-rank order.
func NewDeck() []Card {
	deck := make([]Card, DeckSize)
	for i := range deck {
		deck[i] = Card(i)
	}
	return deck
}

// Shuffle permutes cards in place with Fisher-Yates.
func Shuffle(cards []Card, rng Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Deal shuffles a fresh deck and deals it round-robin starting with dealer.
// The result is indexed by seat.
func Deal(dealer Seat, rng Rand) [NumSeats]CardSet {
	deck := NewDeck()
	Shuffle(deck, rng)
	var hands [NumSeats]CardSet
	seat := dealer
	for _, c := range deck {
		hands[seat] = hands[seat].With(c)
		seat = seat.Next()
	}
	return hands
}

// ValidateDeal returns an error matching ErrInvalidDeal unless the four
// sets each hold 13 cards and together partition the deck.
func ValidateDeal(deal [NumSeats]CardSet) error {
	var seen CardSet
	for _, seat := range Seats {
		h := deal[seat]
		if n := h.Len(); n != NumRanks {
			return fmt.Errorf("%w: %s holds %d cards", ErrInvalidDeal, seat.Name(), n)
		}
		if dup := seen.Intersect(h); !dup.IsEmpty() {
			return fmt.Errorf("%w: %s shares %s with another hand", ErrInvalidDeal, seat.Name(), dup.Cards()[0])
		}
		seen = seen.Union(h)
	}
	if seen != FullDeck {
		return fmt.Errorf("%w: hands cover %d cards", ErrInvalidDeal, seen.Len())
	}
	return nil
}

// ---------------------------------------------------------------------------
// Standard duplicate rotation
// ---------------------------------------------------------------------------

// boardVulnerability is the 16-board vulnerability cycle, indexed by
// (number-1) % 16.
var boardVulnerability = [16]Vulnerability{
	VulNone, VulNS, VulEW, VulBoth,
	VulNS, VulEW, VulBoth, VulNone,
	VulEW, VulBoth, VulNone, VulNS,
	VulBoth, VulNone, VulNS, VulEW,
}

// StandardBoardConfig returns the dealer and vulnerability of board number
// n (1-based) under the standard duplicate rotation.
func StandardBoardConfig(n int) BoardConfig {
	if n < 1 {
		n = 1
	}
	return BoardConfig{
		Number:        n,
		Dealer:        Seat((n - 1) % NumSeats),
		Vulnerability: boardVulnerability[(n-1)%len(boardVulnerability)],
	}
}
