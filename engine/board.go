// Package engine implements the rules of duplicate contract bridge: the
// auction, trick play and scoring of a single board.
//
// A Board is driven one action at a time through SubmitBid and SubmitPlay.
// Every action is validated before any state changes, so a rejected action
// leaves the board exactly as it was. The package has no global state and
// reads randomness only from the Rand it is given.
package engine

import "fmt"

// TricksPerBoard is the number of tricks in a complete play phase.
const TricksPerBoard = 13

// Status is the lifecycle stage of a board.
type Status uint8

const (
	StatusCreated Status = iota
	StatusBidding
	StatusPlay
	StatusComplete
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusBidding:
		return "bidding"
	case StatusPlay:
		return "play"
	case StatusComplete:
		return "complete"
	default:
		return "?"
	}
}

// BidOutcome describes what a successful SubmitBid did.
type BidOutcome uint8

const (
	AuctionAdvanced BidOutcome = iota
	ContractEstablished
	PassedOut
)

func (o BidOutcome) String() string {
	switch o {
	case AuctionAdvanced:
		return "auction_advanced"
	case ContractEstablished:
		return "contract_established"
	case PassedOut:
		return "passed_out"
	default:
		return "?"
	}
}

// PlayOutcome describes what a successful SubmitPlay did.
type PlayOutcome uint8

const (
	TrickAdvanced PlayOutcome = iota
	TrickWon
	BoardComplete
)

func (o PlayOutcome) String() string {
	switch o {
	case TrickAdvanced:
		return "trick_advanced"
	case TrickWon:
		return "trick_won"
	case BoardComplete:
		return "board_complete"
	default:
		return "?"
	}
}

// BoardConfig identifies a board and fixes its dealer and vulnerability.
type BoardConfig struct {
	ID            string
	Number        int
	Dealer        Seat
	Vulnerability Vulnerability
}

func (c BoardConfig) validate() error {
	if c.Dealer >= NumSeats {
		return fmt.Errorf("invalid dealer %d", c.Dealer)
	}
	if c.Vulnerability > VulBoth {
		return fmt.Errorf("invalid vulnerability %d", c.Vulnerability)
	}
	return nil
}

// Board is one deal of bridge from the deal through scoring. It is not safe
// for concurrent use.
type Board struct {
	cfg     BoardConfig
	seed    uint64
	hands   [NumSeats]Hand
	auction *Auction
	status  Status

	contract *Contract
	assigned bool // contract set without an auction
	forced   bool // passed out without an auction

	tricks         []*Trick
	declarerTricks int
	defenseTricks  int
}

// NewBoard deals a board by shuffling with rng.
func NewBoard(cfg BoardConfig, rng Rand) (*Board, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newBoard(cfg, Deal(cfg.Dealer, rng)), nil
}

// NewSeededBoard deals a board from a fresh XorShift seeded with seed. The
// seed is kept in the board's Record so the deal can be reproduced.
func NewSeededBoard(cfg BoardConfig, seed uint64) (*Board, error) {
	b, err := NewBoard(cfg, NewRand(seed))
	if err != nil {
		return nil, err
	}
	b.seed = seed
	return b, nil
}

// NewBoardWithDeal builds a board from a pre-built deal indexed by seat.
// The deal must partition the 52 cards into four hands of 13.
func NewBoardWithDeal(cfg BoardConfig, deal [NumSeats]CardSet) (*Board, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := ValidateDeal(deal); err != nil {
		return nil, err
	}
	return newBoard(cfg, deal), nil
}

func newBoard(cfg BoardConfig, deal [NumSeats]CardSet) *Board {
	b := &Board{
		cfg:     cfg,
		auction: NewAuction(cfg.Dealer),
		tricks:  make([]*Trick, 0, TricksPerBoard),
	}
	for _, s := range Seats {
		b.hands[s] = NewHand(s, deal[s])
	}
	return b
}

// ---------------------------------------------------------------------------
// Lifecycle transitions
// ---------------------------------------------------------------------------

// Start opens the auction.
func (b *Board) Start() error {
	if b.status != StatusCreated {
		return &InvalidStateError{Op: "start", Status: b.status}
	}
	b.status = StatusBidding
	return nil
}

// AssignContract skips the auction and moves straight to play. The
// contract's vulnerability is taken from the board.
func (b *Board) AssignContract(c Contract) error {
	if b.status != StatusCreated {
		return &InvalidStateError{Op: "assign a contract", Status: b.status}
	}
	vul := b.cfg.Vulnerability.IsVulnerable(c.Declarer.Partnership())
	contract, err := NewContract(c.Declarer, c.Level, c.Strain, vul, c.Doubling)
	if err != nil {
		return err
	}
	b.contract = contract
	b.assigned = true
	b.status = StatusPlay
	return nil
}

// PassOut completes the board with no contract and no auction.
func (b *Board) PassOut() error {
	if b.status != StatusCreated {
		return &InvalidStateError{Op: "pass out", Status: b.status}
	}
	b.forced = true
	b.status = StatusComplete
	return nil
}

// SubmitBid appends seat's call to the auction. On the closing pass it
// either establishes the contract or passes the board out.
func (b *Board) SubmitBid(seat Seat, bid Bid) (BidOutcome, error) {
	if b.status != StatusBidding {
		return AuctionAdvanced, &InvalidStateError{Op: "bid", Status: b.status}
	}
	if err := b.auction.Append(Call{Seat: seat, Bid: bid}); err != nil {
		return AuctionAdvanced, err
	}
	if !b.auction.IsClosed() {
		return AuctionAdvanced, nil
	}
	b.contract = b.auction.Contract(b.cfg.Vulnerability)
	if b.contract == nil {
		b.status = StatusComplete
		return PassedOut, nil
	}
	b.status = StatusPlay
	return ContractEstablished, nil
}

// SubmitPlay plays card from seat's hand to the current trick.
func (b *Board) SubmitPlay(seat Seat, card Card) (PlayOutcome, error) {
	if b.status != StatusPlay {
		return TrickAdvanced, &InvalidStateError{Op: "play", Status: b.status}
	}
	next, _ := b.NextPlayer()
	if seat != next {
		return TrickAdvanced, &OutOfTurnError{Seat: seat, Expected: next}
	}

	trick := b.openTrick()
	lead := NoSuit
	if trick != nil {
		lead = trick.leadOrNone()
	}
	if err := b.hands[seat].CheckPlayable(card, lead); err != nil {
		return TrickAdvanced, err
	}

	if trick == nil {
		trick = NewTrick(seat)
		b.tricks = append(b.tricks, trick)
	}
	complete, err := trick.Play(seat, card, b.contract.Strain)
	if err != nil {
		// Unreachable: seat was checked against the rotation above.
		return TrickAdvanced, err
	}
	b.hands[seat].play(card)
	if !complete {
		return TrickAdvanced, nil
	}

	winner, _ := trick.Winner()
	if winner.Partnership() == b.contract.Partnership() {
		b.declarerTricks++
	} else {
		b.defenseTricks++
	}
	if len(b.tricks) == TricksPerBoard {
		b.status = StatusComplete
		return BoardComplete, nil
	}
	return TrickWon, nil
}

// openTrick returns the trick in progress, or nil when the next card
// starts a new trick.
func (b *Board) openTrick() *Trick {
	if len(b.tricks) == 0 {
		return nil
	}
	last := b.tricks[len(b.tricks)-1]
	if last.IsComplete() {
		return nil
	}
	return last
}

// ---------------------------------------------------------------------------
// Turn order
// ---------------------------------------------------------------------------

// NextBidder returns the seat due to call while the auction is open.
func (b *Board) NextBidder() (Seat, bool) {
	if b.status != StatusBidding {
		return 0, false
	}
	return b.auction.NextSeat(), true
}

// NextPlayer returns the seat due to play: declarer's left-hand opponent
// for the opening lead, the previous trick's winner at a trick boundary,
// otherwise the next seat in rotation. It returns false outside play.
func (b *Board) NextPlayer() (Seat, bool) {
	if b.status != StatusPlay {
		return 0, false
	}
	if len(b.tricks) == 0 {
		return b.contract.OpeningLeader(), true
	}
	last := b.tricks[len(b.tricks)-1]
	if w, ok := last.Winner(); ok {
		return w, true
	}
	return last.NextSeat()
}

// NextToAct returns NextBidder or NextPlayer depending on status.
func (b *Board) NextToAct() (Seat, bool) {
	switch b.status {
	case StatusBidding:
		return b.NextBidder()
	case StatusPlay:
		return b.NextPlayer()
	default:
		return 0, false
	}
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func (b *Board) ID() string                   { return b.cfg.ID }
func (b *Board) Number() int                  { return b.cfg.Number }
func (b *Board) Dealer() Seat                 { return b.cfg.Dealer }
func (b *Board) Vulnerability() Vulnerability { return b.cfg.Vulnerability }
func (b *Board) Config() BoardConfig          { return b.cfg }
func (b *Board) Status() Status               { return b.status }
func (b *Board) DeclarerTricks() int          { return b.declarerTricks }
func (b *Board) DefenseTricks() int           { return b.defenseTricks }

// Seed returns the seed the board was dealt from, or 0 if it was dealt
// from a caller's Rand or a pre-built deal.
func (b *Board) Seed() uint64 { return b.seed }

// Hand returns a copy of seat's hand.
func (b *Board) Hand(seat Seat) Hand { return b.hands[seat%NumSeats] }

// Deal returns the original thirteen cards of every seat.
func (b *Board) Deal() [NumSeats]CardSet {
	var d [NumSeats]CardSet
	for _, s := range Seats {
		d[s] = b.hands[s].Dealt
	}
	return d
}

// Auction returns a copy of the calls made so far.
func (b *Board) Auction() []Call {
	out := make([]Call, len(b.auction.Calls))
	copy(out, b.auction.Calls)
	return out
}

// AuctionString renders the auction grid.
func (b *Board) AuctionString() string { return b.auction.String() }

// Tricks returns copies of every trick started so far, including the one
// in progress.
func (b *Board) Tricks() []Trick {
	out := make([]Trick, len(b.tricks))
	for i, t := range b.tricks {
		out[i] = *t.Clone()
	}
	return out
}

// CurrentTrick returns a copy of the trick in progress, if any.
func (b *Board) CurrentTrick() (Trick, bool) {
	t := b.openTrick()
	if t == nil {
		return Trick{}, false
	}
	return *t.Clone(), true
}

// LastCompletedTrick returns the most recent complete trick, if any.
func (b *Board) LastCompletedTrick() (Trick, bool) {
	for i := len(b.tricks) - 1; i >= 0; i-- {
		if b.tricks[i].IsComplete() {
			return *b.tricks[i].Clone(), true
		}
	}
	return Trick{}, false
}

// Contract returns a copy of the established contract, or nil.
func (b *Board) Contract() *Contract {
	if b.contract == nil {
		return nil
	}
	c := *b.contract
	return &c
}

// IsAssigned reports whether the contract was set without an auction.
func (b *Board) IsAssigned() bool { return b.assigned }

// IsPassedOut reports whether the board completed with no contract.
func (b *Board) IsPassedOut() bool {
	return b.status == StatusComplete && b.contract == nil
}

// Dummy returns declarer's partner once a contract exists.
func (b *Board) Dummy() (Seat, bool) {
	if b.contract == nil {
		return 0, false
	}
	return b.contract.Dummy(), true
}

// DummyExposed reports whether the opening lead has been made.
func (b *Board) DummyExposed() bool {
	return b.contract != nil && len(b.tricks) > 0
}

// LegalBids returns the bids seat may make now. It is empty unless seat is
// due to call.
func (b *Board) LegalBids(seat Seat) []Bid {
	if next, ok := b.NextBidder(); !ok || next != seat {
		return nil
	}
	return b.auction.LegalBids(seat)
}

// LegalPlays returns the cards seat may play now. It is empty unless seat
// is due to play.
func (b *Board) LegalPlays(seat Seat) CardSet {
	if next, ok := b.NextPlayer(); !ok || next != seat {
		return 0
	}
	lead := NoSuit
	if t := b.openTrick(); t != nil {
		lead = t.leadOrNone()
	}
	return b.hands[seat].Eligible(lead)
}

// Score returns the declarer-relative score of a complete board. A passed
// out board scores 0.
func (b *Board) Score() (int, error) {
	if b.status != StatusComplete {
		return 0, &InvalidStateError{Op: "score", Status: b.status}
	}
	if b.contract == nil {
		return 0, nil
	}
	return b.contract.Score(b.declarerTricks), nil
}

// ScoreFor returns the score of a complete board from side p's view.
func (b *Board) ScoreFor(p Partnership) (int, error) {
	score, err := b.Score()
	if err != nil {
		return 0, err
	}
	return ScoreFor(b.contract, score, p), nil
}

// Clone returns a deep copy that can be advanced independently.
func (b *Board) Clone() *Board {
	c := *b
	c.auction = b.auction.Clone()
	c.contract = b.Contract()
	c.tricks = make([]*Trick, len(b.tricks), TricksPerBoard)
	for i, t := range b.tricks {
		c.tricks[i] = t.Clone()
	}
	return &c
}
