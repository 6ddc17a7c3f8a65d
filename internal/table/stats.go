package table

import (
	"fmt"
	"strings"

	"github.com/jason-s-yu/twoclubs/engine"
)

// Bucket counts declared contracts of one kind.
type Bucket struct {
	Declared int `json:"declared"`
	Made     int `json:"made"`
	Score    int `json:"score"`
}

func (b *Bucket) add(made bool, score int) {
	b.Declared++
	if made {
		b.Made++
	}
	b.Score += score
}

func (b Bucket) String() string {
	return fmt.Sprintf("%d/%d %+d", b.Made, b.Declared, b.Score)
}

// SideStats aggregates the results of one partnership. Buckets only count
// boards the side declared.
type SideStats struct {
	Declared int `json:"declared"`
	Defended int `json:"defended"`
	Made     int `json:"made"`
	Down     int `json:"down"`
	// DefeatedContracts counts opponent contracts this side set.
	DefeatedContracts int `json:"defeatedContracts"`
	Score             int `json:"score"`

	NoTrump    Bucket `json:"noTrump"`
	Suit       Bucket `json:"suit"`
	Vulnerable Bucket `json:"vulnerable"`
	NonVul     Bucket `json:"nonVulnerable"`
	Slam       Bucket `json:"slam"`
	Game       Bucket `json:"game"`
	Partscore  Bucket `json:"partscore"`
}

// Stats aggregates completed boards across both partnerships.
type Stats struct {
	Boards    int          `json:"boards"`
	PassedOut int          `json:"passedOut"`
	Assigned  int          `json:"assigned"`
	Sides     [2]SideStats `json:"sides"`
}

// Add folds a complete board into the totals.
func (s *Stats) Add(b *engine.Board) error {
	score, err := b.Score()
	if err != nil {
		return fmt.Errorf("stats: board %d: %w", b.Number(), err)
	}
	s.Boards++
	if b.IsAssigned() {
		s.Assigned++
	}
	c := b.Contract()
	if c == nil {
		s.PassedOut++
		return nil
	}

	decl := &s.Sides[c.Partnership()]
	def := &s.Sides[c.Partnership().Opponent()]
	made := b.DeclarerTricks() >= c.TricksNeeded()

	decl.Declared++
	decl.Score += score
	def.Defended++
	def.Score -= score
	if made {
		decl.Made++
	} else {
		decl.Down++
		def.DefeatedContracts++
	}

	if c.Strain == engine.NoTrump {
		decl.NoTrump.add(made, score)
	} else {
		decl.Suit.add(made, score)
	}
	if c.Vulnerable {
		decl.Vulnerable.add(made, score)
	} else {
		decl.NonVul.add(made, score)
	}
	switch {
	case c.IsSlam():
		decl.Slam.add(made, score)
	case c.IsGame():
		decl.Game.add(made, score)
	default:
		decl.Partscore.add(made, score)
	}
	return nil
}

// String renders a short summary, one block per side.
func (s Stats) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "boards %d, passed out %d", s.Boards, s.PassedOut)
	if s.Assigned > 0 {
		fmt.Fprintf(&sb, ", assigned %d", s.Assigned)
	}
	for _, p := range engine.Partnerships {
		side := s.Sides[p]
		fmt.Fprintf(&sb, "\n%s: score %+d, declared %d (made %d, down %d), defended %d (set %d)",
			p, side.Score, side.Declared, side.Made, side.Down, side.Defended, side.DefeatedContracts)
		if side.Declared == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n    nt %s  suit %s  vul %s  nonvul %s",
			side.NoTrump, side.Suit, side.Vulnerable, side.NonVul)
		fmt.Fprintf(&sb, "\n    slam %s  game %s  partscore %s",
			side.Slam, side.Game, side.Partscore)
	}
	return sb.String()
}
