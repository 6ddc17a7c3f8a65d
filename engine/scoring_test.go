package engine

import "testing"

func contract(t *testing.T, level int, strain Strain, vul bool, dbl Doubling) *Contract {
	t.Helper()
	c, err := NewContract(North, level, strain, vul, dbl)
	if err != nil {
		t.Fatalf("NewContract: %v", err)
	}
	return c
}

func TestScoreMade(t *testing.T) {
	tests := []struct {
		name   string
		level  int
		strain Strain
		vul    bool
		dbl    Doubling
		tricks int
		want   int
	}{
		{"4S exactly", 4, StrainSpades, false, Undoubled, 10, 420},
		{"3NT vul exactly", 3, NoTrump, true, Undoubled, 9, 600},
		{"1NT partscore", 1, NoTrump, false, Undoubled, 7, 90},
		{"2S plus one", 2, StrainSpades, false, Undoubled, 9, 140},
		{"3NT plus one", 3, NoTrump, false, Undoubled, 10, 430},
		{"5C game", 5, StrainClubs, false, Undoubled, 11, 400},
		{"4C is partscore", 4, StrainClubs, true, Undoubled, 10, 130},
		{"4H vul doubled", 4, StrainHearts, true, Doubled, 10, 620},
		{"4H vul doubled plus one", 4, StrainHearts, true, Doubled, 11, 820},
		{"1C redoubled plus one", 1, StrainClubs, false, Redoubled, 8, 270},
		{"2D doubled plus two vul", 2, StrainDiamonds, true, Doubled, 10, 490},
		{"6S small slam", 6, StrainSpades, false, Undoubled, 12, 980},
		{"6S small slam vul", 6, StrainSpades, true, Undoubled, 12, 1430},
		{"6N plus one", 6, NoTrump, false, Undoubled, 13, 1020},
		{"7N grand slam vul", 7, NoTrump, true, Undoubled, 13, 2220},
		{"7C grand slam", 7, StrainClubs, false, Undoubled, 13, 1440},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := contract(t, tt.level, tt.strain, tt.vul, tt.dbl)
			if got := c.Score(tt.tricks); got != tt.want {
				t.Errorf("%s taking %d = %d, want %d", c, tt.tricks, got, tt.want)
			}
		})
	}
}

// TestScoreUndertricks covers the cumulative penalty table for every
// vulnerability and doubling state, down one through five.
func TestScoreUndertricks(t *testing.T) {
	tests := []struct {
		vul  bool
		dbl  Doubling
		want [5]int
	}{
		{false, Undoubled, [5]int{50, 100, 150, 200, 250}},
		{false, Doubled, [5]int{100, 300, 500, 800, 1100}},
		{false, Redoubled, [5]int{200, 600, 1000, 1600, 2200}},
		{true, Undoubled, [5]int{100, 200, 300, 400, 500}},
		{true, Doubled, [5]int{200, 500, 800, 1100, 1400}},
		{true, Redoubled, [5]int{400, 1000, 1600, 2200, 2800}},
	}
	for _, tt := range tests {
		c := contract(t, 4, StrainSpades, tt.vul, tt.dbl)
		for down := 1; down <= 5; down++ {
			got := c.Score(10 - down)
			if got != -tt.want[down-1] {
				t.Errorf("%s (vul=%v) down %d = %d, want %d", c, tt.vul, down, got, -tt.want[down-1])
			}
		}
	}
}

func TestScoreDownThreeDoubledVul(t *testing.T) {
	c := contract(t, 3, NoTrump, true, Doubled)
	if got := c.Score(6); got != -800 {
		t.Errorf("3NX vul down 3 = %d, want -800", got)
	}
}

func TestScoreFor(t *testing.T) {
	c, err := NewContract(East, 4, StrainHearts, false, Undoubled)
	if err != nil {
		t.Fatal(err)
	}
	if got := ScoreFor(c, 420, EW); got != 420 {
		t.Errorf("EW view = %d", got)
	}
	if got := ScoreFor(c, 420, NS); got != -420 {
		t.Errorf("NS view = %d", got)
	}
	if got := ScoreFor(nil, 0, NS); got != 0 {
		t.Errorf("passed out view = %d", got)
	}
}

func TestContractQueries(t *testing.T) {
	c, err := NewContract(West, 6, StrainDiamonds, true, Undoubled)
	if err != nil {
		t.Fatal(err)
	}
	if c.Dummy() != East || c.OpeningLeader() != North || c.Partnership() != EW {
		t.Errorf("seats wrong for %s", c)
	}
	if c.TricksNeeded() != 12 || !c.IsGame() || !c.IsSlam() {
		t.Errorf("%s: needed=%d game=%v slam=%v", c, c.TricksNeeded(), c.IsGame(), c.IsSlam())
	}
	if c.Bid().String() != "6D" {
		t.Errorf("Bid() = %s", c.Bid())
	}
	if _, err := NewContract(North, 8, NoTrump, false, Undoubled); err == nil {
		t.Error("level 8 should be rejected")
	}
	if _, err := NewContract(North, 0, NoTrump, false, Undoubled); err == nil {
		t.Error("level 0 should be rejected")
	}
}
