package engine

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func trickWinners(b *Board) []Seat {
	var out []Seat
	for _, t := range b.Tricks() {
		if w, ok := t.Winner(); ok {
			out = append(out, w)
		}
	}
	return out
}

func playedSeededBoard(t *testing.T, seed uint64) *Board {
	t.Helper()
	b, err := NewSeededBoard(StandardBoardConfig(5), seed)
	if err != nil {
		t.Fatal(err)
	}
	bidAll(t, b, "1N", "X", "2C", "P", "3N", "P", "P", "P")
	playOut(t, b)
	return b
}

// TestReplayRoundTrip encodes a finished board, decodes it and replays it
// onto a fresh board: the score and every trick winner must match.
func TestReplayRoundTrip(t *testing.T) {
	for _, seed := range []uint64{1, 7, 12345} {
		b := playedSeededBoard(t, seed)
		rec := b.Record()
		if len(rec.Calls) != 8 || len(rec.Plays) != DeckSize {
			t.Fatalf("record has %d calls and %d plays", len(rec.Calls), len(rec.Plays))
		}

		var buf bytes.Buffer
		if err := WriteRecord(&buf, rec); err != nil {
			t.Fatalf("WriteRecord: %v", err)
		}
		decoded, err := ReadRecord(&buf)
		if err != nil {
			t.Fatalf("ReadRecord: %v", err)
		}
		if !reflect.DeepEqual(decoded, rec) {
			t.Fatalf("decoded record differs:\n%+v\n%+v", decoded, rec)
		}

		replayed, err := Replay(decoded)
		if err != nil {
			t.Fatalf("Replay: %v", err)
		}
		want, _ := b.Score()
		got, err := replayed.Score()
		if err != nil || got != want {
			t.Errorf("seed %d: replayed score %d (%v), want %d", seed, got, err, want)
		}
		if !reflect.DeepEqual(trickWinners(replayed), trickWinners(b)) {
			t.Errorf("seed %d: trick winners differ", seed)
		}
		if replayed.Seed() != seed {
			t.Errorf("replayed seed = %d", replayed.Seed())
		}
	}
}

// TestReplayFromSeed drops the deal and rebuilds it from the seed alone.
func TestReplayFromSeed(t *testing.T) {
	b := playedSeededBoard(t, 99)
	rec := b.Record()
	rec.Deal = [NumSeats]CardSet{}
	replayed, err := Replay(rec)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if replayed.Deal() != b.Deal() {
		t.Error("seed did not reproduce the deal")
	}
	want, _ := b.ScoreFor(NS)
	if got, _ := replayed.ScoreFor(NS); got != want {
		t.Errorf("score %d, want %d", got, want)
	}
}

func TestReplayRejectsTamperedHistory(t *testing.T) {
	rec := playedSeededBoard(t, 3).Record()
	rec.Plays[0], rec.Plays[1] = rec.Plays[1], rec.Plays[0]
	if _, err := Replay(rec); !errors.Is(err, ErrOutOfTurn) {
		t.Errorf("swapped plays: %v", err)
	}

	rec = playedSeededBoard(t, 3).Record()
	rec.Calls[1].Bid = MustParseBid("1C")
	if _, err := Replay(rec); !errors.Is(err, ErrIllegalBid) {
		t.Errorf("insufficient bid: %v", err)
	}
}

func TestReplayAssignedAndForced(t *testing.T) {
	b := newTestBoard(t, 1, suitedDeal())
	if err := b.AssignContract(Contract{Declarer: South, Level: 2, Strain: StrainClubs}); err != nil {
		t.Fatal(err)
	}
	playOut(t, b)
	replayed, err := Replay(b.Record())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if !replayed.IsAssigned() || replayed.Contract().String() != "2C by S" {
		t.Errorf("replayed contract = %v", replayed.Contract())
	}

	b = newTestBoard(t, 1, suitedDeal())
	if err := b.PassOut(); err != nil {
		t.Fatal(err)
	}
	replayed, err = Replay(b.Record())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if !replayed.IsPassedOut() {
		t.Error("forced pass out did not replay")
	}
}
