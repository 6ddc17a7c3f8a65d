package engine

import "fmt"

// Contract is the outcome of an auction. It is immutable once derived.
type Contract struct {
	Declarer   Seat     `json:"declarer"`
	Level      int      `json:"level"`
	Strain     Strain   `json:"strain"`
	Vulnerable bool     `json:"vulnerable"`
	Doubling   Doubling `json:"doubling"`
}

// NewContract validates and builds a contract.
func NewContract(declarer Seat, level int, strain Strain, vulnerable bool, doubling Doubling) (*Contract, error) {
	if level < MinLevel || level > MaxLevel {
		return nil, fmt.Errorf("contract level %d out of range %d..%d", level, MinLevel, MaxLevel)
	}
	if strain >= NumStrains {
		return nil, fmt.Errorf("invalid contract strain %d", strain)
	}
	if declarer >= NumSeats {
		return nil, fmt.Errorf("invalid declarer %d", declarer)
	}
	if doubling > Redoubled {
		return nil, fmt.Errorf("invalid doubling %d", doubling)
	}
	return &Contract{
		Declarer:   declarer,
		Level:      level,
		Strain:     strain,
		Vulnerable: vulnerable,
		Doubling:   doubling,
	}, nil
}

// Partnership returns the declaring side.
func (c *Contract) Partnership() Partnership { return c.Declarer.Partnership() }

// Dummy returns declarer's partner.
func (c *Contract) Dummy() Seat { return c.Declarer.Partner() }

// OpeningLeader returns the seat to declarer's left.
func (c *Contract) OpeningLeader() Seat { return c.Declarer.Next() }

// TricksNeeded is level + 6.
func (c *Contract) TricksNeeded() int { return c.Level + 6 }

// IsGame reports whether the contract reaches game: 3NT, 4 of a major or
// 5 of a minor.
func (c *Contract) IsGame() bool { return c.Level >= gameLevel(c.Strain) }

// IsSlam reports a small or grand slam.
func (c *Contract) IsSlam() bool { return c.Level >= 6 }

// Bid returns the normal bid that names this contract.
func (c *Contract) Bid() Bid { return MustBid(c.Level, c.Strain) }

// String renders e.g. "4SX by N".
func (c *Contract) String() string {
	return fmt.Sprintf("%d%s%s by %s", c.Level, c.Strain, c.Doubling.suffix(), c.Declarer)
}

func gameLevel(s Strain) int {
	switch {
	case s == NoTrump:
		return 3
	case s.IsMajor():
		return 4
	default:
		return 5
	}
}
