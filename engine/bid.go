package engine

import (
	"fmt"
	"strings"
)

// Bid is a packed call: Pass, Double, Redouble, or a normal bid of
// level 1..7 in a strain. Normal bids occupy 3..37 in auction order, so
// one normal bid outranks another iff its value is larger.
type Bid uint8

const (
	Pass     Bid = 0
	Double   Bid = 1
	Redouble Bid = 2

	firstNormal Bid = 3
	lastNormal  Bid = firstNormal + MaxLevel*NumStrains - 1

	// NoBid marks the absence of a bid.
	NoBid Bid = 0xFF
)

const (
	MinLevel = 1
	MaxLevel = 7
)

// NewBid constructs a normal bid, validating level and strain.
func NewBid(level int, strain Strain) (Bid, error) {
	if level < MinLevel || level > MaxLevel {
		return NoBid, fmt.Errorf("bid level %d out of range %d..%d", level, MinLevel, MaxLevel)
	}
	if strain >= NumStrains {
		return NoBid, fmt.Errorf("invalid strain %d", strain)
	}
	return firstNormal + Bid((level-1)*NumStrains) + Bid(strain), nil
}

// MustBid is NewBid for literals; it panics on error.
func MustBid(level int, strain Strain) Bid {
	b, err := NewBid(level, strain)
	if err != nil {
		panic(err)
	}
	return b
}

// IsNormal reports whether b is a level-and-strain bid.
func (b Bid) IsNormal() bool { return b >= firstNormal && b <= lastNormal }

// Valid reports whether b is Pass, Double, Redouble or a normal bid.
func (b Bid) Valid() bool { return b <= lastNormal }

// Level returns the bid level, 0 for non-normal bids.
func (b Bid) Level() int {
	if !b.IsNormal() {
		return 0
	}
	return int(b-firstNormal)/NumStrains + 1
}

// Strain returns the bid strain; only meaningful for normal bids.
func (b Bid) Strain() Strain {
	if !b.IsNormal() {
		return NoTrump
	}
	return Strain((b - firstNormal) % NumStrains)
}

func (b Bid) String() string {
	switch {
	case b == Pass:
		return "P"
	case b == Double:
		return "X"
	case b == Redouble:
		return "XX"
	case b.IsNormal():
		return fmt.Sprintf("%d%s", b.Level(), b.Strain())
	default:
		return "?"
	}
}

// ParseBid accepts P/PASS, X/DBL, XX/RDBL, or a level and strain such as
// "1C", "3NT" or "7n".
func ParseBid(s string) (Bid, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "P", "PASS":
		return Pass, nil
	case "X", "DBL", "DOUBLE":
		return Double, nil
	case "XX", "RDBL", "REDOUBLE":
		return Redouble, nil
	}
	if len(s) < 2 || s[0] < '1' || s[0] > '7' {
		return NoBid, fmt.Errorf("invalid bid %q", s)
	}
	strain, err := ParseStrain(s[1:])
	if err != nil {
		return NoBid, fmt.Errorf("invalid bid %q: %w", s, err)
	}
	return NewBid(int(s[0]-'0'), strain)
}

// MustParseBid is ParseBid for literals; it panics on error.
func MustParseBid(s string) Bid {
	b, err := ParseBid(s)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Bid) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid bid %d", uint8(b))
	}
	return []byte(b.String()), nil
}

func (b *Bid) UnmarshalText(text []byte) error {
	parsed, err := ParseBid(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// AllBids returns every valid bid: Pass, Double, Redouble, then the 35
// normal bids in ascending order.
func AllBids() []Bid {
	out := make([]Bid, 0, int(lastNormal)+1)
	for b := Pass; b <= lastNormal; b++ {
		out = append(out, b)
	}
	return out
}

// Call is a bid attributed to the seat that made it.
type Call struct {
	Seat Seat `json:"seat"`
	Bid  Bid  `json:"bid"`
}

func (c Call) String() string { return c.Seat.String() + ":" + c.Bid.String() }
