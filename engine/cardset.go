package engine

import (
	"fmt"
	"math/bits"
	"strings"
)

// CardSet is a set of cards packed into a uint64. Bit i is set when Card(i)
// is in the set, so each suit occupies its own 13-bit lane and suit queries
// are a shift and a mask.
type CardSet uint64

const suitMask CardSet = 1<<NumRanks - 1

// FullDeck contains all 52 cards.
const FullDeck CardSet = 1<<DeckSize - 1

// NewCardSet builds a set from the given cards.
func NewCardSet(cards ...Card) CardSet {
	var s CardSet
	for _, c := range cards {
		s = s.With(c)
	}
	return s
}

// With returns s plus c.
func (s CardSet) With(c Card) CardSet { return s | 1<<c }

// Without returns s minus c.
func (s CardSet) Without(c Card) CardSet { return s &^ (1 << c) }

// Has reports whether c is in s.
func (s CardSet) Has(c Card) bool { return c.Valid() && s&(1<<c) != 0 }

// Len returns the number of cards in s.
func (s CardSet) Len() int { return bits.OnesCount64(uint64(s)) }

// IsEmpty reports whether s has no cards.
func (s CardSet) IsEmpty() bool { return s == 0 }

// Union returns the cards in either set.
func (s CardSet) Union(o CardSet) CardSet { return s | o }

// Minus returns the cards of s not in o.
func (s CardSet) Minus(o CardSet) CardSet { return s &^ o }

// Intersect returns the cards in both sets.
func (s CardSet) Intersect(o CardSet) CardSet { return s & o }

// ranks returns the 13-bit rank lane of the given suit.
func (s CardSet) ranks(suit Suit) uint16 {
	return uint16((s >> (uint(suit) * NumRanks)) & suitMask)
}

// InSuit returns only the cards of the given suit.
func (s CardSet) InSuit(suit Suit) CardSet {
	return s & (suitMask << (uint(suit) * NumRanks))
}

// SuitLen returns the number of cards held in suit.
func (s CardSet) SuitLen(suit Suit) int { return bits.OnesCount16(s.ranks(suit)) }

// IsVoid reports whether s holds no card of suit.
func (s CardSet) IsVoid(suit Suit) bool { return s.ranks(suit) == 0 }

// HasRanks reports whether every given rank of suit is in s.
func (s CardSet) HasRanks(suit Suit, ranks ...Rank) bool {
	lane := s.ranks(suit)
	for _, r := range ranks {
		if lane&(1<<r) == 0 {
			return false
		}
	}
	return true
}

// Highest returns the highest card of suit in s.
func (s CardSet) Highest(suit Suit) (Card, bool) {
	lane := s.ranks(suit)
	if lane == 0 {
		return NoCard, false
	}
	return NewCard(suit, Rank(15-bits.LeadingZeros16(lane))), true
}

// Lowest returns the lowest card of suit in s.
func (s CardSet) Lowest(suit Suit) (Card, bool) {
	lane := s.ranks(suit)
	if lane == 0 {
		return NoCard, false
	}
	return NewCard(suit, Rank(bits.TrailingZeros16(lane))), true
}

// Cards returns the cards of s in display order: spades first, highest
// rank first within each suit.
func (s CardSet) Cards() []Card {
	out := make([]Card, 0, s.Len())
	for i := NumSuits - 1; i >= 0; i-- {
		out = append(out, s.SuitCards(Suit(i))...)
	}
	return out
}

// SuitCards returns the cards of one suit, highest first.
func (s CardSet) SuitCards(suit Suit) []Card {
	lane := s.ranks(suit)
	out := make([]Card, 0, bits.OnesCount16(lane))
	for r := int(Ace); r >= int(Two); r-- {
		if lane&(1<<r) != 0 {
			out = append(out, NewCard(suit, Rank(r)))
		}
	}
	return out
}

// Suits returns the suits s holds at least one card of, ascending.
func (s CardSet) Suits() []Suit {
	var out []Suit
	for _, suit := range Suits {
		if !s.IsVoid(suit) {
			out = append(out, suit)
		}
	}
	return out
}

// HighCardPoints counts A=4 K=3 Q=2 J=1 over the whole set.
func (s CardSet) HighCardPoints() int {
	total := 0
	for _, suit := range Suits {
		total += s.SuitHighCardPoints(suit)
	}
	return total
}

// SuitHighCardPoints counts high-card points in one suit.
func (s CardSet) SuitHighCardPoints(suit Suit) int {
	lane := s.ranks(suit)
	total := 0
	for r := Jack; r <= Ace; r++ {
		if lane&(1<<r) != 0 {
			total += r.HighCardPoints()
		}
	}
	return total
}

// TotalPoints adds distribution to high-card points: the larger of
// shortness points (3 - length for each suit shorter than three) and
// length points (length - 4 for each suit of five or more).
func (s CardSet) TotalPoints() int {
	shortness, length := 0, 0
	for _, suit := range Suits {
		n := s.SuitLen(suit)
		switch {
		case n < 3:
			shortness += 3 - n
		case n >= 5:
			length += n - 4
		}
	}
	return s.HighCardPoints() + max(shortness, length)
}

// Stopped reports whether suit is stopped for no-trump purposes:
// A, Kx, Qxx, Jxxx or any five cards.
func (s CardSet) Stopped(suit Suit) bool {
	n := s.SuitLen(suit)
	return s.HasRanks(suit, Ace) ||
		(n >= 2 && s.HasRanks(suit, King)) ||
		(n >= 3 && s.HasRanks(suit, Queen)) ||
		(n >= 4 && s.HasRanks(suit, Jack)) ||
		n > 4
}

// WellStopped is a stricter Stopped: AK, AQx, AJTx, KQx, QJxx or five cards.
func (s CardSet) WellStopped(suit Suit) bool {
	n := s.SuitLen(suit)
	return s.HasRanks(suit, Ace, King) ||
		(n >= 3 && s.HasRanks(suit, Ace, Queen)) ||
		(n >= 4 && s.HasRanks(suit, Ace, Jack, Ten)) ||
		(n >= 3 && s.HasRanks(suit, King, Queen)) ||
		(n >= 4 && s.HasRanks(suit, Queen, Jack)) ||
		n > 4
}

// FirstOrSecondRoundStopped reports an ace or a guarded king in suit. When
// voidCounts is set a void also stops the suit (suit contracts).
func (s CardSet) FirstOrSecondRoundStopped(suit Suit, voidCounts bool) bool {
	n := s.SuitLen(suit)
	if voidCounts && n == 0 {
		return true
	}
	return s.HasRanks(suit, Ace) || (n >= 2 && s.HasRanks(suit, King))
}

// String renders the set as "S:AK2 H:- D:QJT C:98".
func (s CardSet) String() string {
	parts := make([]string, 0, NumSuits)
	for i := NumSuits - 1; i >= 0; i-- {
		suit := Suit(i)
		parts = append(parts, suit.String()+":"+s.suitString(suit, "-"))
	}
	return strings.Join(parts, " ")
}

func (s CardSet) suitString(suit Suit, void string) string {
	cards := s.SuitCards(suit)
	if len(cards) == 0 {
		return void
	}
	var sb strings.Builder
	for _, c := range cards {
		sb.WriteString(c.Rank().String())
	}
	return sb.String()
}

// PBN renders the set in PBN hand notation: spades.hearts.diamonds.clubs,
// e.g. "AK2..QJT.98765432".
func (s CardSet) PBN() string {
	return strings.Join([]string{
		s.suitString(Spades, ""),
		s.suitString(Hearts, ""),
		s.suitString(Diamonds, ""),
		s.suitString(Clubs, ""),
	}, ".")
}

// ParsePBN parses a hand in PBN notation (see PBN).
func ParsePBN(str string) (CardSet, error) {
	parts := strings.Split(strings.TrimSpace(str), ".")
	if len(parts) != NumSuits {
		return 0, fmt.Errorf("invalid PBN hand %q: want 4 suits, got %d", str, len(parts))
	}
	var s CardSet
	for i, part := range parts {
		suit := Suit(NumSuits - 1 - i)
		for j := 0; j < len(part); j++ {
			r, ok := parseRank(strings.ToUpper(part[j : j+1])[0])
			if !ok {
				return 0, fmt.Errorf("invalid PBN hand %q: bad rank %q", str, part[j])
			}
			c := NewCard(suit, r)
			if s.Has(c) {
				return 0, fmt.Errorf("invalid PBN hand %q: duplicate %s", str, c)
			}
			s = s.With(c)
		}
	}
	return s, nil
}

func (s CardSet) MarshalText() ([]byte, error) {
	if s&^FullDeck != 0 {
		return nil, fmt.Errorf("cannot marshal card set with bits beyond the deck: %#x", uint64(s))
	}
	return []byte(s.PBN()), nil
}

func (s *CardSet) UnmarshalText(b []byte) error {
	parsed, err := ParsePBN(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
