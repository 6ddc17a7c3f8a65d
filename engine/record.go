package engine

import (
	"encoding/json"
	"fmt"
	"io"
)

// Record is the replayable history of a board: its configuration, the deal
// (or the seed it was dealt from) and every call and play in order.
// Contract and Score are informational and ignored by Replay.
type Record struct {
	ID            string            `json:"id,omitempty"`
	Number        int               `json:"number"`
	Dealer        Seat              `json:"dealer"`
	Vulnerability Vulnerability     `json:"vulnerability"`
	Seed          uint64            `json:"seed,omitempty"`
	Deal          [NumSeats]CardSet `json:"deal"`
	Assigned      *Contract         `json:"assigned,omitempty"`
	ForcedPassOut bool              `json:"forced_pass_out,omitempty"`
	Calls         []Call            `json:"calls"`
	Plays         []Play            `json:"plays"`
	Contract      *Contract         `json:"contract,omitempty"`
	ScoreNS       *int              `json:"score_ns,omitempty"`
}

// Record captures the board's history so far.
func (b *Board) Record() Record {
	rec := Record{
		ID:            b.cfg.ID,
		Number:        b.cfg.Number,
		Dealer:        b.cfg.Dealer,
		Vulnerability: b.cfg.Vulnerability,
		Seed:          b.seed,
		Deal:          b.Deal(),
		ForcedPassOut: b.forced,
		Calls:         b.Auction(),
		Contract:      b.Contract(),
	}
	if b.assigned {
		rec.Assigned = b.Contract()
	}
	for _, t := range b.tricks {
		rec.Plays = append(rec.Plays, t.Plays...)
	}
	if score, err := b.ScoreFor(NS); err == nil {
		rec.ScoreNS = &score
	}
	return rec
}

// Config returns the board configuration the record was taken from.
func (r Record) Config() BoardConfig {
	return BoardConfig{
		ID:            r.ID,
		Number:        r.Number,
		Dealer:        r.Dealer,
		Vulnerability: r.Vulnerability,
	}
}

// Replay rebuilds a board from rec by submitting every call and play
// through the board's public entry points. The deal is taken from
// rec.Deal, or regenerated from rec.Seed when no deal was recorded.
func Replay(rec Record) (*Board, error) {
	var (
		b   *Board
		err error
	)
	if rec.Deal == [NumSeats]CardSet{} {
		b, err = NewSeededBoard(rec.Config(), rec.Seed)
	} else {
		b, err = NewBoardWithDeal(rec.Config(), rec.Deal)
		if b != nil {
			b.seed = rec.Seed
		}
	}
	if err != nil {
		return nil, err
	}

	switch {
	case rec.Assigned != nil:
		err = b.AssignContract(*rec.Assigned)
	case rec.ForcedPassOut:
		err = b.PassOut()
	default:
		err = b.Start()
	}
	if err != nil {
		return nil, err
	}

	for i, c := range rec.Calls {
		if _, err := b.SubmitBid(c.Seat, c.Bid); err != nil {
			return nil, fmt.Errorf("replay call %d (%s): %w", i+1, c, err)
		}
	}
	for i, p := range rec.Plays {
		if _, err := b.SubmitPlay(p.Seat, p.Card); err != nil {
			return nil, fmt.Errorf("replay play %d (%s): %w", i+1, p, err)
		}
	}
	return b, nil
}

// WriteRecord encodes rec as indented JSON.
func WriteRecord(w io.Writer, rec Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

// ReadRecord decodes a JSON record.
func ReadRecord(r io.Reader) (Record, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}
