// Package table seats four players at a table and drives them through
// boards, broadcasting every state change and keeping running statistics.
package table

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jason-s-yu/twoclubs/engine"
	"github.com/jason-s-yu/twoclubs/internal/robot"
	"github.com/sirupsen/logrus"
)

// ErrNoPlayer is returned when a seat has no player.
var ErrNoPlayer = errors.New("seat has no player")

// OnBoardEndFunc is called with every board the table completes.
type OnBoardEndFunc func(b *engine.Board)

// Options configures a new Table.
type Options struct {
	Players [engine.NumSeats]robot.Player
	// Seed drives every deal and every random choice the table makes.
	Seed uint64
	// AssignContract skips the auction and picks a contract from the hands.
	AssignContract bool
	// Logger defaults to the logrus standard logger.
	Logger *logrus.Entry
}

// Table plays boards between four players.
type Table struct {
	ID      uuid.UUID
	Players [engine.NumSeats]robot.Player

	AssignContract bool

	// Communication callbacks, invoked with the table lock held.
	BroadcastFn  func(ev Event)
	SendToSeatFn func(seat engine.Seat, ev Event)
	OnBoardEnd   OnBoardEndFunc

	mu     sync.Mutex
	rng    *engine.XorShift
	log    *logrus.Entry
	played int
	stats  Stats
}

// NewTable creates a table with a fresh ID. Every seat must have a player.
func NewTable(opts Options) (*Table, error) {
	for _, seat := range engine.Seats {
		if opts.Players[seat] == nil {
			return nil, fmt.Errorf("new table: %s: %w", seat.Name(), ErrNoPlayer)
		}
	}
	t := &Table{
		ID:             uuid.New(),
		Players:        opts.Players,
		AssignContract: opts.AssignContract,
		rng:            engine.NewRand(opts.Seed),
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	t.log = logger.WithField("table", t.ID.String())
	return t, nil
}

// Played returns the number of boards the table has completed.
func (t *Table) Played() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.played
}

// Stats returns a copy of the running statistics.
func (t *Table) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// Run plays n boards numbered on from the boards already played, using the
// standard dealer and vulnerability rotation. It stops between boards once
// ctx is done and returns ctx.Err().
func (t *Table) Run(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			t.log.WithField("remaining", n-i).Info("Run stopped")
			return err
		}
		cfg := engine.StandardBoardConfig(t.Played() + 1)
		if _, err := t.PlayBoard(cfg); err != nil {
			return err
		}
	}
	return nil
}

// PlayBoard deals a board for cfg and plays it to completion. An illegal
// action from a player ends the board early: the partial board is returned
// with the wrapped engine error and nothing is retried.
func (t *Table) PlayBoard(cfg engine.BoardConfig) (*engine.Board, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	b, err := engine.NewSeededBoard(cfg, t.rng.Uint64())
	if err != nil {
		return nil, fmt.Errorf("board %d: %w", cfg.Number, err)
	}
	log := t.log.WithFields(logrus.Fields{
		"board":  b.Number(),
		"dealer": b.Dealer().String(),
		"vul":    b.Vulnerability().String(),
	})
	log.Debug("Board dealt")
	t.fireEvent(t.newEvent(EventBoardStart, b))

	if t.AssignContract {
		if err := robot.AssignContract(b, t.rng); err != nil {
			return b, fmt.Errorf("board %d: assign contract: %w", b.Number(), err)
		}
		t.announceContract(b)
	} else if err := b.Start(); err != nil {
		return b, fmt.Errorf("board %d: %w", b.Number(), err)
	}
	t.syncSeats(b)

	for {
		seat, ok := b.NextToAct()
		if !ok {
			break
		}
		var err error
		switch b.Status() {
		case engine.StatusBidding:
			err = t.bid(b, seat)
		case engine.StatusPlay:
			err = t.play(b, seat)
		}
		if err != nil {
			log.WithError(err).WithField("seat", seat.String()).Warn("Player defect")
			return b, fmt.Errorf("board %d: %w", b.Number(), err)
		}
	}

	t.finish(b, log)
	return b, nil
}

// bid asks seat for a call and submits it.
// Assumes lock is held by caller.
func (t *Table) bid(b *engine.Board, seat engine.Seat) error {
	view, err := b.BidView(seat)
	if err != nil {
		return err
	}
	call := engine.Call{Seat: seat, Bid: t.Players[seat].Bid(view)}
	outcome, err := b.SubmitBid(seat, call.Bid)
	if err != nil {
		return fmt.Errorf("%s bid %s: %w", seat.Name(), call.Bid, err)
	}

	ev := t.newEvent(EventBid, b)
	ev.Seat = &call.Seat
	ev.Call = &call
	t.fireEvent(ev)

	if outcome != engine.AuctionAdvanced {
		t.announceContract(b)
	}
	return nil
}

// play asks seat for a card and submits it. Dummy's cards are chosen by
// whoever sits in dummy's seat, as the engine asks for dummy in turn.
// Assumes lock is held by caller.
func (t *Table) play(b *engine.Board, seat engine.Seat) error {
	view, err := b.PlayView(seat)
	if err != nil {
		return err
	}
	first := !b.DummyExposed()
	p := engine.Play{Seat: seat, Card: t.Players[seat].Play(view)}
	outcome, err := b.SubmitPlay(seat, p.Card)
	if err != nil {
		return fmt.Errorf("%s play %s: %w", seat.Name(), p.Card, err)
	}

	ev := t.newEvent(EventPlay, b)
	ev.Seat = &p.Seat
	ev.Play = &p
	t.fireEvent(ev)

	if first {
		// Opening lead: dummy goes down.
		t.syncSeats(b)
	}
	if outcome == engine.TrickAdvanced {
		return nil
	}
	tr, _ := b.LastCompletedTrick()
	winner, _ := tr.Winner()
	ev = t.newEvent(EventTrickWon, b)
	ev.Winner = &winner
	ev.DeclarerTricks = b.DeclarerTricks()
	ev.DefenseTricks = b.DefenseTricks()
	t.fireEvent(ev)
	return nil
}

// announceContract fires contract or passed_out once the auction is over.
// Assumes lock is held by caller.
func (t *Table) announceContract(b *engine.Board) {
	c := b.Contract()
	if c == nil {
		t.fireEvent(t.newEvent(EventPassedOut, b))
		return
	}
	ev := t.newEvent(EventContract, b)
	ev.Contract = c
	declarer := c.Declarer
	ev.Seat = &declarer
	t.fireEvent(ev)
}

// finish scores a complete board and notifies listeners.
// Assumes lock is held by caller.
func (t *Table) finish(b *engine.Board, log *logrus.Entry) {
	t.played++
	if err := t.stats.Add(b); err != nil {
		// Unreachable: the board is complete.
		log.WithError(err).Error("Stats not updated")
	}

	ev := t.newEvent(EventBoardEnd, b)
	ev.DeclarerTricks = b.DeclarerTricks()
	ev.DefenseTricks = b.DefenseTricks()
	ev.Contract = b.Contract()
	if score, err := b.ScoreFor(engine.NS); err == nil {
		ev.ScoreNS = &score
	}
	t.fireEvent(ev)

	fields := logrus.Fields{"contract": "passed out"}
	if c := b.Contract(); c != nil {
		fields["contract"] = c.String()
		fields["tricks"] = b.DeclarerTricks()
	}
	if ev.ScoreNS != nil {
		fields["score_ns"] = *ev.ScoreNS
	}
	log.WithFields(fields).Info("Board complete")

	if t.OnBoardEnd != nil {
		t.OnBoardEnd(b)
	}
}
