package table

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/jason-s-yu/twoclubs/engine"
	"github.com/jason-s-yu/twoclubs/internal/robot"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBroadcaster captures table events for testing assertions.
type mockBroadcaster struct {
	mu         sync.Mutex
	allEvents  []Event
	seatEvents map[engine.Seat][]Event
}

func newMockBroadcaster() *mockBroadcaster {
	return &mockBroadcaster{seatEvents: make(map[engine.Seat][]Event)}
}

func (mb *mockBroadcaster) broadcastFn(ev Event) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.allEvents = append(mb.allEvents, ev)
}

func (mb *mockBroadcaster) sendToSeatFn(seat engine.Seat, ev Event) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.seatEvents[seat] = append(mb.seatEvents[seat], ev)
}

func (mb *mockBroadcaster) countByType(typ EventType) int {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	n := 0
	for _, ev := range mb.allEvents {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

// indexOf returns the position of the first event of typ, or -1.
func (mb *mockBroadcaster) indexOf(typ EventType) int {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	for i, ev := range mb.allEvents {
		if ev.Type == typ {
			return i
		}
	}
	return -1
}

// opener makes one opening bid and then passes; it plays its lowest card.
type opener struct {
	robot.PassiveBidder
	bid engine.Bid
}

func (o opener) Bid(v engine.BidView) engine.Bid {
	if len(v.Calls) == 0 {
		return o.bid
	}
	return engine.Pass
}

type redoubler struct{ robot.PassiveBidder }

func (redoubler) Bid(engine.BidView) engine.Bid { return engine.Redouble }

type noCard struct{ robot.PassiveBidder }

func (noCard) Play(engine.PlayView) engine.Card { return engine.NoCard }

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func randomPlayers(seed uint64) [engine.NumSeats]robot.Player {
	rng := engine.NewRand(seed)
	var ps [engine.NumSeats]robot.Player
	for i := range ps {
		ps[i] = robot.NewRandomPlayer(rng)
	}
	return ps
}

// setupTestTable builds a table wired to a fresh mock broadcaster.
func setupTestTable(t *testing.T, opts Options) (*Table, *mockBroadcaster) {
	t.Helper()
	opts.Logger = quietLogger()
	tbl, err := NewTable(opts)
	require.NoError(t, err)
	mb := newMockBroadcaster()
	tbl.BroadcastFn = mb.broadcastFn
	tbl.SendToSeatFn = mb.sendToSeatFn
	return tbl, mb
}

func TestNewTableRequiresEverySeat(t *testing.T) {
	players := randomPlayers(1)
	players[engine.South] = nil
	_, err := NewTable(Options{Players: players, Logger: quietLogger()})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoPlayer)
	assert.Contains(t, err.Error(), "South")
}

func TestPlayBoardEvents(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		tbl, mb := setupTestTable(t, Options{Players: randomPlayers(seed), Seed: seed})
		b, err := tbl.PlayBoard(engine.StandardBoardConfig(int(seed)))
		require.NoError(t, err, "seed %d", seed)
		require.Equal(t, engine.StatusComplete, b.Status())
		assert.NotEmpty(t, b.ID())

		require.NotEmpty(t, mb.allEvents)
		assert.Equal(t, EventBoardStart, mb.allEvents[0].Type)
		last := mb.allEvents[len(mb.allEvents)-1]
		assert.Equal(t, EventBoardEnd, last.Type)
		require.NotNil(t, last.ScoreNS)
		score, err := b.ScoreFor(engine.NS)
		require.NoError(t, err)
		assert.Equal(t, score, *last.ScoreNS)

		for _, ev := range mb.allEvents {
			assert.Equal(t, tbl.ID, ev.TableID)
			assert.Equal(t, b.ID(), ev.BoardID)
			assert.Equal(t, int(seed), ev.Board)
		}
		assert.Equal(t, len(b.Auction()), mb.countByType(EventBid))
		assert.Equal(t, 1, tbl.Played())

		if b.IsPassedOut() {
			assert.Equal(t, 1, mb.countByType(EventPassedOut))
			assert.Zero(t, mb.countByType(EventContract))
			assert.Zero(t, mb.countByType(EventPlay))
			continue
		}
		assert.Equal(t, 1, mb.countByType(EventContract))
		assert.Equal(t, 52, mb.countByType(EventPlay))
		assert.Equal(t, engine.TricksPerBoard, mb.countByType(EventTrickWon))
		assert.Less(t, mb.indexOf(EventContract), mb.indexOf(EventPlay))
	}
}

func TestPlayBoardSyncsSeats(t *testing.T) {
	others := robot.PassiveBidder{}
	players := [engine.NumSeats]robot.Player{opener{bid: engine.MustBid(1, engine.NoTrump)}, others, others, others}
	tbl, mb := setupTestTable(t, Options{Players: players, Seed: 3})

	b, err := tbl.PlayBoard(engine.StandardBoardConfig(1))
	require.NoError(t, err)
	require.Equal(t, "1N by N", b.Contract().String())

	for _, seat := range engine.Seats {
		evs := mb.seatEvents[seat]
		require.Len(t, evs, 2, "%s: once at the deal and once when dummy goes down", seat)
		for _, ev := range evs {
			assert.Equal(t, EventPrivateSyncState, ev.Type)
			require.NotNil(t, ev.State)
			assert.Equal(t, seat, ev.State.Observer)
			assert.Equal(t, tbl.ID, ev.State.TableID)
		}

		dealt, lead := evs[0].State, evs[1].State
		assert.Equal(t, "bidding", dealt.Status)
		assert.Equal(t, "play", lead.Status)
		assert.Equal(t, 13, dealt.Seats[engine.East].HandSize)
		assert.Equal(t, 12, lead.Seats[engine.East].HandSize)
		assert.Len(t, lead.Trick, 1)
		assert.Equal(t, seat == engine.South, !dealt.Seats[engine.South].Cards.IsEmpty())
		assert.Equal(t, b.Hand(engine.South).Dealt, lead.Seats[engine.South].Cards)
	}
}

func TestPlayBoardIllegalBid(t *testing.T) {
	others := robot.PassiveBidder{}
	players := [engine.NumSeats]robot.Player{redoubler{}, others, others, others}
	tbl, mb := setupTestTable(t, Options{Players: players})

	b, err := tbl.PlayBoard(engine.StandardBoardConfig(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrIllegalBid)
	require.NotNil(t, b)
	assert.Equal(t, engine.StatusBidding, b.Status())
	assert.Empty(t, b.Auction())
	assert.Zero(t, tbl.Played())
	assert.Zero(t, mb.countByType(EventBid))
	assert.Zero(t, mb.countByType(EventBoardEnd))
}

func TestPlayBoardIllegalPlay(t *testing.T) {
	players := [engine.NumSeats]robot.Player{
		opener{bid: engine.MustBid(1, engine.NoTrump)}, noCard{}, noCard{}, noCard{},
	}
	tbl, mb := setupTestTable(t, Options{Players: players})

	b, err := tbl.PlayBoard(engine.StandardBoardConfig(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrIllegalPlay)
	assert.Contains(t, err.Error(), "East")
	assert.Equal(t, engine.StatusPlay, b.Status())
	assert.Equal(t, 1, mb.countByType(EventContract))
	assert.Zero(t, mb.countByType(EventPlay))
	assert.Zero(t, tbl.Stats().Boards)
}

func TestPlayBoardAssignedContracts(t *testing.T) {
	tbl, mb := setupTestTable(t, Options{Players: randomPlayers(4), Seed: 11, AssignContract: true})
	var boards []*engine.Board
	tbl.OnBoardEnd = func(b *engine.Board) { boards = append(boards, b) }

	require.NoError(t, tbl.Run(context.Background(), 8))
	require.Len(t, boards, 8)
	for _, b := range boards {
		assert.Empty(t, b.Auction())
		assert.True(t, b.IsAssigned() || b.IsPassedOut())
	}
	assert.Zero(t, mb.countByType(EventBid))
	st := tbl.Stats()
	assert.Equal(t, 8, st.Boards)
	assert.Equal(t, 8, st.Assigned+st.PassedOut)
}

func TestRunRotatesBoards(t *testing.T) {
	tbl, _ := setupTestTable(t, Options{Players: randomPlayers(2), Seed: 2})
	var numbers []int
	var dealers []engine.Seat
	tbl.OnBoardEnd = func(b *engine.Board) {
		numbers = append(numbers, b.Number())
		dealers = append(dealers, b.Dealer())
	}

	require.NoError(t, tbl.Run(context.Background(), 4))
	require.NoError(t, tbl.Run(context.Background(), 2))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, numbers)
	assert.Equal(t, []engine.Seat{engine.North, engine.East, engine.South, engine.West, engine.North, engine.East}, dealers)
	assert.Equal(t, 6, tbl.Played())
	assert.Equal(t, 6, tbl.Stats().Boards)
}

func TestRunStopsWhenCancelled(t *testing.T) {
	tbl, _ := setupTestTable(t, Options{Players: randomPlayers(3)})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := tbl.Run(ctx, 3)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, tbl.Played())

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	tbl.OnBoardEnd = func(*engine.Board) {
		if tbl.played == 2 {
			cancel()
		}
	}
	err = tbl.Run(ctx, 5)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, tbl.Played())
}

func TestTablesWithSameSeedAgree(t *testing.T) {
	play := func() []engine.Record {
		tbl, _ := setupTestTable(t, Options{Players: randomPlayers(9), Seed: 42})
		var recs []engine.Record
		tbl.OnBoardEnd = func(b *engine.Board) {
			rec := b.Record()
			rec.ID = ""
			recs = append(recs, rec)
		}
		require.NoError(t, tbl.Run(context.Background(), 3))
		return recs
	}
	first, second := play(), play()
	require.Len(t, first, 3)
	assert.Equal(t, first, second)
	for _, rec := range first {
		assert.NotZero(t, rec.Seed)
	}
}
