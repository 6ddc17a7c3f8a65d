package engine

import (
	"encoding/json"
	"testing"
)

// TestCardSuitRank verifies Suit/Rank roundtrip for every suit×rank combo.
func TestCardSuitRank(t *testing.T) {
	seen := make(map[Card]bool)
	for _, s := range Suits {
		for r := Two; r <= Ace; r++ {
			c := NewCard(s, r)
			if c.Suit() != s {
				t.Errorf("NewCard(%s,%s).Suit() = %s", s, r, c.Suit())
			}
			if c.Rank() != r {
				t.Errorf("NewCard(%s,%s).Rank() = %s", s, r, c.Rank())
			}
			if !c.Valid() {
				t.Errorf("NewCard(%s,%s) not valid", s, r)
			}
			if seen[c] {
				t.Errorf("NewCard(%s,%s) = %d collides", s, r, c)
			}
			seen[c] = true
		}
	}
	if len(seen) != DeckSize {
		t.Errorf("expected %d distinct cards, got %d", DeckSize, len(seen))
	}
	if NoCard.Valid() {
		t.Error("NoCard should not be valid")
	}
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in   string
		want Card
	}{
		{"QH", NewCard(Hearts, Queen)},
		{"qh", NewCard(Hearts, Queen)},
		{"TD", NewCard(Diamonds, Ten)},
		{"10d", NewCard(Diamonds, Ten)},
		{"2c", NewCard(Clubs, Two)},
		{" AS ", NewCard(Spades, Ace)},
	}
	for _, tt := range tests {
		got, err := ParseCard(tt.in)
		if err != nil {
			t.Errorf("ParseCard(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCard(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "Q", "1H", "QX", "11H", "QHS"} {
		if _, err := ParseCard(bad); err == nil {
			t.Errorf("ParseCard(%q) should fail", bad)
		}
	}
}

func TestCardString(t *testing.T) {
	if got := NewCard(Spades, Ace).String(); got != "AS" {
		t.Errorf("AS renders as %q", got)
	}
	if got := NewCard(Diamonds, Ten).String(); got != "TD" {
		t.Errorf("TD renders as %q", got)
	}
	if got := NoCard.String(); got != "--" {
		t.Errorf("NoCard renders as %q", got)
	}
}

// TestCardBeats covers same-suit rank order, trump precedence and the
// rule that an off-suit non-trump never beats.
func TestCardBeats(t *testing.T) {
	tests := []struct {
		a, b  string
		trump Strain
		want  bool
	}{
		{"AC", "KC", NoTrump, true},
		{"KC", "AC", NoTrump, false},
		{"2S", "AC", StrainSpades, true},
		{"AC", "2S", StrainSpades, false},
		{"2S", "AC", NoTrump, false},
		{"AC", "2S", NoTrump, false},
		{"AH", "2C", StrainSpades, false},
		{"2C", "AH", StrainSpades, false},
		{"3S", "2S", StrainSpades, true},
		{"2S", "3S", StrainSpades, false},
		{"2D", "AH", StrainDiamonds, true},
	}
	for _, tt := range tests {
		a, b := MustParseCard(tt.a), MustParseCard(tt.b)
		if got := a.Beats(b, tt.trump); got != tt.want {
			t.Errorf("%s.Beats(%s, %s) = %v, want %v", a, b, tt.trump, got, tt.want)
		}
	}
}

func TestSeatRotation(t *testing.T) {
	want := map[Seat]Seat{North: East, East: South, South: West, West: North}
	for s, next := range want {
		if got := s.Next(); got != next {
			t.Errorf("%s.Next() = %s, want %s", s, got, next)
		}
	}
	partners := map[Seat]Seat{North: South, East: West, South: North, West: East}
	for s, p := range partners {
		if got := s.Partner(); got != p {
			t.Errorf("%s.Partner() = %s, want %s", s, got, p)
		}
	}
	if North.Partnership() != NS || South.Partnership() != NS {
		t.Error("North and South should be NS")
	}
	if East.Partnership() != EW || West.Partnership() != EW {
		t.Error("East and West should be EW")
	}
	if NS.Opponent() != EW || EW.Opponent() != NS {
		t.Error("Opponent should swap sides")
	}
}

func TestVulnerability(t *testing.T) {
	tests := []struct {
		v      Vulnerability
		ns, ew bool
	}{
		{VulNone, false, false},
		{VulNS, true, false},
		{VulEW, false, true},
		{VulBoth, true, true},
	}
	for _, tt := range tests {
		if got := tt.v.IsVulnerable(NS); got != tt.ns {
			t.Errorf("%s.IsVulnerable(NS) = %v", tt.v, got)
		}
		if got := tt.v.IsVulnerable(EW); got != tt.ew {
			t.Errorf("%s.IsVulnerable(EW) = %v", tt.v, got)
		}
		parsed, err := ParseVulnerability(tt.v.String())
		if err != nil || parsed != tt.v {
			t.Errorf("ParseVulnerability(%q) = %s, %v", tt.v.String(), parsed, err)
		}
	}
}

func TestStrainOrder(t *testing.T) {
	for i := 1; i < NumStrains; i++ {
		if Strains[i-1] >= Strains[i] {
			t.Errorf("strain %s should rank below %s", Strains[i-1], Strains[i])
		}
	}
	for _, s := range Suits {
		got, ok := s.Strain().Suit()
		if !ok || got != s {
			t.Errorf("%s.Strain().Suit() = %s, %v", s, got, ok)
		}
	}
	if _, ok := NoTrump.Suit(); ok {
		t.Error("NoTrump should have no suit")
	}
	for _, in := range []string{"N", "nt", "NT"} {
		if s, err := ParseStrain(in); err != nil || s != NoTrump {
			t.Errorf("ParseStrain(%q) = %s, %v", in, s, err)
		}
	}
}

func TestTextMarshal(t *testing.T) {
	type wire struct {
		Seat   Seat          `json:"seat"`
		Card   Card          `json:"card"`
		Strain Strain        `json:"strain"`
		Vul    Vulnerability `json:"vul"`
		Dbl    Doubling      `json:"dbl"`
	}
	in := wire{Seat: West, Card: MustParseCard("TH"), Strain: NoTrump, Vul: VulEW, Dbl: Redoubled}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"seat":"W","card":"TH","strain":"N","vul":"EW","dbl":"redoubled"}`
	if string(data) != want {
		t.Fatalf("Marshal = %s, want %s", data, want)
	}
	var out wire
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("Unmarshal = %+v, want %+v", out, in)
	}
}
