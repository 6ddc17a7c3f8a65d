package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every typed error below matches one of these via errors.Is.
var (
	ErrIllegalBid   = errors.New("illegal bid")
	ErrIllegalPlay  = errors.New("illegal play")
	ErrRenege       = errors.New("renege")
	ErrOutOfTurn    = errors.New("out of turn")
	ErrInvalidState = errors.New("invalid board state")
	ErrInvalidDeal  = errors.New("invalid deal")
)

// IllegalBidError is returned when a call violates auction sequencing.
type IllegalBidError struct {
	Seat   Seat
	Bid    Bid
	Reason string
}

func (e *IllegalBidError) Error() string {
	return fmt.Sprintf("illegal bid %s by %s: %s", e.Bid, e.Seat, e.Reason)
}

func (e *IllegalBidError) Is(target error) bool { return target == ErrIllegalBid }

// IllegalPlayError is returned when the card is not in the seat's remaining
// holding.
type IllegalPlayError struct {
	Seat Seat
	Card Card
}

func (e *IllegalPlayError) Error() string {
	return fmt.Sprintf("illegal play %s by %s: card not held", e.Card, e.Seat)
}

func (e *IllegalPlayError) Is(target error) bool { return target == ErrIllegalPlay }

// RenegeError is returned when the card is held but the seat must follow
// the led suit.
type RenegeError struct {
	Seat Seat
	Card Card
	Lead Suit
}

func (e *RenegeError) Error() string {
	return fmt.Sprintf("renege by %s: played %s holding %s", e.Seat, e.Card, e.Lead)
}

func (e *RenegeError) Is(target error) bool {
	return target == ErrRenege || target == ErrIllegalPlay
}

// OutOfTurnError is returned when a seat acts while another seat is due.
type OutOfTurnError struct {
	Seat     Seat
	Expected Seat
}

func (e *OutOfTurnError) Error() string {
	return fmt.Sprintf("%s acted out of turn: %s is next", e.Seat, e.Expected)
}

func (e *OutOfTurnError) Is(target error) bool { return target == ErrOutOfTurn }

// InvalidStateError is returned when an operation is attempted in the wrong
// board status.
type InvalidStateError struct {
	Op     string
	Status Status
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s: board is %s", e.Op, e.Status)
}

func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }
