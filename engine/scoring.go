package engine

// ---------------------------------------------------------------------------
// Duplicate scoring
// ---------------------------------------------------------------------------

// perTrickScore is the trick value of a strain: 20 for minors, 30 otherwise.
func perTrickScore(s Strain) int {
	if s.IsMinor() {
		return 20
	}
	return 30
}

// pick returns vul if vulnerable, else nonVul.
func pick(vulnerable bool, vul, nonVul int) int {
	if vulnerable {
		return vul
	}
	return nonVul
}

// Score returns the duplicate score for declarer taking tricks, signed from
// the declaring side: positive when made, negative when set.
func (c *Contract) Score(tricks int) int {
	if tricks >= c.TricksNeeded() {
		return c.madeScore(tricks - c.TricksNeeded())
	}
	return -c.undertrickPenalty(c.TricksNeeded() - tricks)
}

func (c *Contract) madeScore(overtricks int) int {
	score := c.Level * perTrickScore(c.Strain)
	if c.Strain == NoTrump {
		score += 10
	}

	switch c.Doubling {
	case Undoubled:
		score += overtricks * perTrickScore(c.Strain)
	case Doubled:
		score += overtricks * pick(c.Vulnerable, 200, 100)
	case Redoubled:
		score += overtricks * pick(c.Vulnerable, 400, 200)
	}

	if c.IsGame() {
		score += pick(c.Vulnerable, 500, 300)
	} else {
		score += 50
	}

	switch c.Level {
	case 6:
		score += pick(c.Vulnerable, 750, 500)
	case 7:
		score += pick(c.Vulnerable, 1500, 1000)
	}
	return score
}

// undertrickPenalty returns the cumulative penalty for going down.
// Doubled and redoubled penalties grow after the first undertrick and
// again after the third.
func (c *Contract) undertrickPenalty(down int) int {
	var first, second, rest int
	switch c.Doubling {
	case Undoubled:
		each := pick(c.Vulnerable, 100, 50)
		return down * each
	case Doubled:
		first, second, rest = pick(c.Vulnerable, 200, 100), pick(c.Vulnerable, 300, 200), 300
	case Redoubled:
		first, second, rest = pick(c.Vulnerable, 400, 200), pick(c.Vulnerable, 600, 400), 600
	}

	penalty := 0
	for i := 1; i <= down; i++ {
		switch {
		case i == 1:
			penalty += first
		case i <= 3:
			penalty += second
		default:
			penalty += rest
		}
	}
	return penalty
}

// ScoreFor converts a declarer-relative score to side p's perspective.
func ScoreFor(c *Contract, declarerScore int, p Partnership) int {
	if c == nil {
		return 0
	}
	if c.Partnership() == p {
		return declarerScore
	}
	return -declarerScore
}
