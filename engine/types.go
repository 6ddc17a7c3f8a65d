package engine

import (
	"fmt"
	"strings"
)

// Suit of a card, ordered Clubs < Diamonds < Hearts < Spades.
type Suit uint8

const (
	Clubs    Suit = 0
	Diamonds Suit = 1
	Hearts   Suit = 2
	Spades   Suit = 3

	// NoSuit is the lead suit of a trick nobody has played to yet.
	NoSuit Suit = 0xFF
)

const NumSuits = 4

// Suits lists every suit in ascending order.
var Suits = [NumSuits]Suit{Clubs, Diamonds, Hearts, Spades}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Strain returns the strain named after this suit.
func (s Suit) Strain() Strain { return Strain(s) }

// IsMajor reports whether the suit is hearts or spades.
func (s Suit) IsMajor() bool { return s == Hearts || s == Spades }

// Rank of a card. Two is the lowest, Ace the highest.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const NumRanks = 13

const rankChars = "23456789TJQKA"

func (r Rank) String() string {
	if r > Ace {
		return "?"
	}
	return rankChars[r : r+1]
}

// HighCardPoints returns the Milton Work count for the rank: A=4 K=3 Q=2 J=1.
func (r Rank) HighCardPoints() int {
	if r < Jack {
		return 0
	}
	return int(r-Jack) + 1
}

// Card is a packed uint8: suit*13 + rank.
type Card uint8

// NoCard represents the absence of a card.
const NoCard Card = 0xFF

const DeckSize = NumSuits * NumRanks

// NewCard constructs a Card from suit and rank.
func NewCard(suit Suit, rank Rank) Card {
	return Card(uint8(suit)*NumRanks + uint8(rank))
}

// Suit returns the card's suit.
func (c Card) Suit() Suit { return Suit(uint8(c) / NumRanks) }

// Rank returns the card's rank.
func (c Card) Rank() Rank { return Rank(uint8(c) % NumRanks) }

// Valid reports whether c names one of the 52 cards.
func (c Card) Valid() bool { return uint8(c) < DeckSize }

func (c Card) String() string {
	if !c.Valid() {
		return "--"
	}
	return c.Rank().String() + c.Suit().String()
}

// Beats reports whether c wins against other under the given trump strain.
// Cards of the same suit compare by rank. Across suits only a trump beats a
// non-trump; any other cross-suit comparison is false.
func (c Card) Beats(other Card, trump Strain) bool {
	if c.Suit() == other.Suit() {
		return c.Rank() > other.Rank()
	}
	if trump == NoTrump {
		return false
	}
	return c.Suit().Strain() == trump
}

// ParseCard parses a card name such as "QH", "th", "10d" or "2c".
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 || len(s) > 3 {
		return NoCard, fmt.Errorf("invalid card %q", s)
	}
	suit, ok := parseSuit(s[len(s)-1])
	if !ok {
		return NoCard, fmt.Errorf("invalid suit in card %q", s)
	}
	rankStr := s[:len(s)-1]
	if rankStr == "10" {
		rankStr = "T"
	}
	if len(rankStr) != 1 {
		return NoCard, fmt.Errorf("invalid rank in card %q", s)
	}
	rank, ok := parseRank(rankStr[0])
	if !ok {
		return NoCard, fmt.Errorf("invalid rank in card %q", s)
	}
	return NewCard(suit, rank), nil
}

// MustParseCard is ParseCard for literals; it panics on error.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid card %d", uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Card) UnmarshalText(b []byte) error {
	parsed, err := ParseCard(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func parseSuit(ch byte) (Suit, bool) {
	switch ch {
	case 'C', 'c':
		return Clubs, true
	case 'D', 'd':
		return Diamonds, true
	case 'H', 'h':
		return Hearts, true
	case 'S', 's':
		return Spades, true
	}
	return NoSuit, false
}

func parseRank(ch byte) (Rank, bool) {
	i := strings.IndexByte(rankChars, ch)
	if i < 0 {
		return 0, false
	}
	return Rank(i), true
}

// Strain is the denomination of a bid or contract: a suit or no-trump.
// Ordered C < D < H < S < N.
type Strain uint8

const (
	StrainClubs    Strain = Strain(Clubs)
	StrainDiamonds Strain = Strain(Diamonds)
	StrainHearts   Strain = Strain(Hearts)
	StrainSpades   Strain = Strain(Spades)
	NoTrump        Strain = 4
)

const NumStrains = 5

// Strains lists every strain in ascending bidding order.
var Strains = [NumStrains]Strain{StrainClubs, StrainDiamonds, StrainHearts, StrainSpades, NoTrump}

func (s Strain) String() string {
	if s == NoTrump {
		return "N"
	}
	if s < NoTrump {
		return Suit(s).String()
	}
	return "?"
}

// Suit returns the trump suit, or false for no-trump.
func (s Strain) Suit() (Suit, bool) {
	if s >= NoTrump {
		return NoSuit, false
	}
	return Suit(s), true
}

// IsMinor reports whether the strain is clubs or diamonds.
func (s Strain) IsMinor() bool { return s == StrainClubs || s == StrainDiamonds }

// IsMajor reports whether the strain is hearts or spades.
func (s Strain) IsMajor() bool { return s == StrainHearts || s == StrainSpades }

// ParseStrain accepts C, D, H, S, N or NT in any case.
func ParseStrain(s string) (Strain, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "N", "NT":
		return NoTrump, nil
	case "C", "D", "H", "S":
		suit, _ := parseSuit(s[0])
		return suit.Strain(), nil
	}
	return 0, fmt.Errorf("invalid strain %q", s)
}

func (s Strain) MarshalText() ([]byte, error) {
	if s >= NumStrains {
		return nil, fmt.Errorf("cannot marshal invalid strain %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Strain) UnmarshalText(b []byte) error {
	parsed, err := ParseStrain(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Seat at the table. Play and bidding rotate N → E → S → W → N.
type Seat uint8

const (
	North Seat = 0
	East  Seat = 1
	South Seat = 2
	West  Seat = 3
)

const NumSeats = 4

// Seats lists the seats in rotation order starting at North.
var Seats = [NumSeats]Seat{North, East, South, West}

func (s Seat) String() string {
	switch s {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// Name returns the full seat name, e.g. "North".
func (s Seat) Name() string {
	switch s {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "?"
	}
}

// Next returns the seat that acts after s.
func (s Seat) Next() Seat { return (s + 1) % NumSeats }

// Partner returns the seat across the table.
func (s Seat) Partner() Seat { return (s + 2) % NumSeats }

// Partnership returns the side s plays for.
func (s Seat) Partnership() Partnership { return Partnership(s % 2) }

// ParseSeat accepts N, E, S, W or the full seat name in any case.
func ParseSeat(str string) (Seat, error) {
	str = strings.ToUpper(strings.TrimSpace(str))
	switch str {
	case "N", "NORTH":
		return North, nil
	case "E", "EAST":
		return East, nil
	case "S", "SOUTH":
		return South, nil
	case "W", "WEST":
		return West, nil
	}
	return 0, fmt.Errorf("invalid seat %q", str)
}

func (s Seat) MarshalText() ([]byte, error) {
	if s >= NumSeats {
		return nil, fmt.Errorf("cannot marshal invalid seat %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Seat) UnmarshalText(b []byte) error {
	parsed, err := ParseSeat(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Partnership is one of the two sides: North-South or East-West.
type Partnership uint8

const (
	NS Partnership = 0
	EW Partnership = 1
)

// Partnerships lists both sides.
var Partnerships = [2]Partnership{NS, EW}

func (p Partnership) String() string {
	if p == NS {
		return "NS"
	}
	return "EW"
}

// Opponent returns the other side.
func (p Partnership) Opponent() Partnership { return 1 - p }

// Seats returns the two seats of the partnership.
func (p Partnership) Seats() [2]Seat {
	if p == NS {
		return [2]Seat{North, South}
	}
	return [2]Seat{East, West}
}

// Vulnerability of a deal.
type Vulnerability uint8

const (
	VulNone Vulnerability = iota
	VulNS
	VulEW
	VulBoth
)

// Vulnerabilities lists every vulnerability setting.
var Vulnerabilities = [4]Vulnerability{VulNone, VulNS, VulEW, VulBoth}

func (v Vulnerability) String() string {
	switch v {
	case VulNone:
		return "none"
	case VulNS:
		return "NS"
	case VulEW:
		return "EW"
	case VulBoth:
		return "both"
	default:
		return "?"
	}
}

// IsVulnerable reports whether partnership p is vulnerable on this deal.
func (v Vulnerability) IsVulnerable(p Partnership) bool {
	switch v {
	case VulBoth:
		return true
	case VulNS:
		return p == NS
	case VulEW:
		return p == EW
	default:
		return false
	}
}

// ParseVulnerability accepts none, NS, EW or both (also "all" and "-").
func ParseVulnerability(s string) (Vulnerability, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE", "-", "LOVE":
		return VulNone, nil
	case "NS":
		return VulNS, nil
	case "EW":
		return VulEW, nil
	case "BOTH", "ALL":
		return VulBoth, nil
	}
	return 0, fmt.Errorf("invalid vulnerability %q", s)
}

func (v Vulnerability) MarshalText() ([]byte, error) {
	if v > VulBoth {
		return nil, fmt.Errorf("cannot marshal invalid vulnerability %d", uint8(v))
	}
	return []byte(v.String()), nil
}

func (v *Vulnerability) UnmarshalText(b []byte) error {
	parsed, err := ParseVulnerability(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Doubling state of a contract.
type Doubling uint8

const (
	Undoubled Doubling = iota
	Doubled
	Redoubled
)

func (d Doubling) String() string {
	switch d {
	case Doubled:
		return "doubled"
	case Redoubled:
		return "redoubled"
	default:
		return "undoubled"
	}
}

// suffix returns the contract suffix: "", "X" or "XX".
func (d Doubling) suffix() string {
	switch d {
	case Doubled:
		return "X"
	case Redoubled:
		return "XX"
	default:
		return ""
	}
}

func (d Doubling) MarshalText() ([]byte, error) {
	if d > Redoubled {
		return nil, fmt.Errorf("cannot marshal invalid doubling %d", uint8(d))
	}
	return []byte(d.String()), nil
}

func (d *Doubling) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "undoubled", "":
		*d = Undoubled
	case "doubled", "x":
		*d = Doubled
	case "redoubled", "xx":
		*d = Redoubled
	default:
		return fmt.Errorf("invalid doubling %q", b)
	}
	return nil
}
