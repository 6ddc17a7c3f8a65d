package engine

import (
	"fmt"
	"strings"
)

// Auction is the append-only sequence of calls for one board, starting with
// the dealer. Every call in it was legal when appended.
type Auction struct {
	Dealer Seat
	Calls  []Call
}

// NewAuction starts an empty auction.
func NewAuction(dealer Seat) *Auction {
	return &Auction{Dealer: dealer}
}

// tail is the normalized lookback view of an auction: the last non-pass
// call, where it sits, and how many passes follow it.
type tail struct {
	last     Call
	index    int // -1 when no non-pass call has been made
	passes   int
	hasNorm  bool
	lastNorm Bid
}

// auctionTail is the only place that looks back through call history.
func auctionTail(calls []Call) tail {
	t := tail{index: -1, last: Call{Bid: NoBid}, lastNorm: NoBid}
	for i := len(calls) - 1; i >= 0; i-- {
		b := calls[i].Bid
		if t.index < 0 {
			if b == Pass {
				t.passes++
				continue
			}
			t.last = calls[i]
			t.index = i
		}
		if b.IsNormal() {
			t.hasNorm = true
			t.lastNorm = b
			break
		}
	}
	return t
}

// NextSeat returns the seat due to call. Meaningless once the auction is
// closed.
func (a *Auction) NextSeat() Seat {
	return Seat((int(a.Dealer) + len(a.Calls)) % NumSeats)
}

// IsClosed reports whether three passes have followed at least one call,
// or four opening passes have been made.
func (a *Auction) IsClosed() bool {
	n := len(a.Calls)
	if n < 4 {
		return false
	}
	return auctionTail(a.Calls).passes >= 3
}

// IsPassedOut reports whether the auction closed with four passes.
func (a *Auction) IsPassedOut() bool {
	return a.IsClosed() && !auctionTail(a.Calls).hasNorm
}

// IsLegal reports whether call may be appended now, ignoring turn order.
func (a *Auction) IsLegal(call Call) bool {
	return a.checkBid(call) == ""
}

// checkBid returns why call cannot be appended, or "" if it can.
func (a *Auction) checkBid(call Call) string {
	if a.IsClosed() {
		return "auction is closed"
	}
	b := call.Bid
	t := auctionTail(a.Calls)
	opponents := t.index >= 0 && t.last.Seat.Partnership() != call.Seat.Partnership()
	inWindow := t.passes == 0 || t.passes == 2

	switch {
	case b == Pass:
		return ""
	case b.IsNormal():
		if t.hasNorm && b <= t.lastNorm {
			return fmt.Sprintf("must be higher than %s", t.lastNorm)
		}
		return ""
	case b == Double:
		if t.index < 0 || !t.last.Bid.IsNormal() {
			return "nothing to double"
		}
		if !opponents || !inWindow {
			return "cannot double own side"
		}
		return ""
	case b == Redouble:
		if t.index < 0 || t.last.Bid != Double {
			return "nothing to redouble"
		}
		if !opponents || !inWindow {
			return "cannot redouble own side"
		}
		return ""
	default:
		return "not a bid"
	}
}

// Append adds call to the auction. It fails with *OutOfTurnError when
// call.Seat is not next, or *IllegalBidError when the bid breaks sequencing.
func (a *Auction) Append(call Call) error {
	if next := a.NextSeat(); call.Seat != next {
		return &OutOfTurnError{Seat: call.Seat, Expected: next}
	}
	if reason := a.checkBid(call); reason != "" {
		return &IllegalBidError{Seat: call.Seat, Bid: call.Bid, Reason: reason}
	}
	a.Calls = append(a.Calls, call)
	return nil
}

// LegalBids returns every bid seat could legally make now, in AllBids order.
func (a *Auction) LegalBids(seat Seat) []Bid {
	var out []Bid
	for _, b := range AllBids() {
		if a.IsLegal(Call{Seat: seat, Bid: b}) {
			out = append(out, b)
		}
	}
	return out
}

// Contract derives the contract from a closed auction. It returns nil when
// the auction is still open or was passed out. vul is the deal's
// vulnerability; the contract carries the declaring side's flag.
func (a *Auction) Contract(vul Vulnerability) *Contract {
	if !a.IsClosed() {
		return nil
	}
	t := auctionTail(a.Calls)
	if !t.hasNorm {
		return nil
	}

	doubling := Undoubled
	switch t.last.Bid {
	case Double:
		doubling = Doubled
	case Redouble:
		doubling = Redoubled
	}

	strain := t.lastNorm.Strain()
	var winner Call
	for i := len(a.Calls) - 1; i >= 0; i-- {
		if a.Calls[i].Bid == t.lastNorm {
			winner = a.Calls[i]
			break
		}
	}
	side := winner.Seat.Partnership()
	declarer := winner.Seat
	for _, c := range a.Calls {
		if c.Bid.IsNormal() && c.Bid.Strain() == strain && c.Seat.Partnership() == side {
			declarer = c.Seat
			break
		}
	}

	return &Contract{
		Declarer:   declarer,
		Level:      t.lastNorm.Level(),
		Strain:     strain,
		Vulnerable: vul.IsVulnerable(side),
		Doubling:   doubling,
	}
}

// Clone returns an independent copy.
func (a *Auction) Clone() *Auction {
	c := &Auction{Dealer: a.Dealer, Calls: make([]Call, len(a.Calls))}
	copy(c.Calls, a.Calls)
	return c
}

// String renders the auction as a grid with columns N E S W, leaving the
// cells before the dealer blank.
func (a *Auction) String() string {
	rows := [][]string{{"N", "E", "S", "W"}}
	row := make([]string, int(a.Dealer), NumSeats)
	for _, c := range a.Calls {
		row = append(row, c.Bid.String())
		if len(row) == NumSeats {
			rows = append(rows, row)
			row = make([]string, 0, NumSeats)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	var sb strings.Builder
	for _, r := range rows {
		line := ""
		for _, cell := range r {
			line += fmt.Sprintf("%-4s", cell)
		}
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
