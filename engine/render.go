package engine

import (
	"fmt"
	"strings"
)

// String renders the board for diagnostics: the deal as dealt, the
// auction grid, the tricks played and the result when complete.
func (b *Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Board %d  dealer %s  vul %s  [%s]\n", b.cfg.Number, b.cfg.Dealer, b.cfg.Vulnerability, b.status)

	pad := strings.Repeat(" ", 24)
	for _, line := range handLines(b.hands[North].Dealt) {
		sb.WriteString(pad + line + "\n")
	}
	west, east := handLines(b.hands[West].Dealt), handLines(b.hands[East].Dealt)
	for i := range west {
		fmt.Fprintf(&sb, "%-48s%s\n", west[i], east[i])
	}
	for _, line := range handLines(b.hands[South].Dealt) {
		sb.WriteString(pad + line + "\n")
	}

	if len(b.auction.Calls) > 0 {
		sb.WriteString("\n")
		sb.WriteString(b.auction.String())
	}

	if b.contract != nil {
		fmt.Fprintf(&sb, "\nContract %s", b.contract)
		if b.assigned {
			sb.WriteString(" (assigned)")
		}
		sb.WriteString("\n")
	}
	for i, t := range b.tricks {
		fmt.Fprintf(&sb, "%2d. %s\n", i+1, t)
	}

	if b.status == StatusComplete {
		if b.contract == nil {
			sb.WriteString("Passed out\n")
		} else {
			score, _ := b.Score()
			fmt.Fprintf(&sb, "Declarer %d tricks, defense %d, score %+d\n", b.declarerTricks, b.defenseTricks, score)
		}
	}
	return sb.String()
}

func handLines(h CardSet) []string {
	lines := make([]string, 0, NumSuits)
	for i := NumSuits - 1; i >= 0; i-- {
		suit := Suit(i)
		lines = append(lines, suit.String()+" "+h.suitString(suit, "-"))
	}
	return lines
}
