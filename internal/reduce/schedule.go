package reduce

import "f4gbc/internal/term"

// buildSchedule turns the pivot-column contributions gathered during
// preprocessing into a level-ordered list of elimination operations (§4.3.2).
// Each pivot column t has an operator row pivots[t] and a set of consumer
// rows; assigning consumer i to the earliest level at which both its own
// prior dependency level and the operator's level are already satisfied
// produces a schedule where every level's operations can run in parallel
// with no data races between them, while operations across levels that
// touch the same row execute in the level order that respects the true
// dependency chain.
func buildSchedule(rows []rowDef, pivots map[*term.Term]int, pivotOps map[*term.Term][]rowContribution, pivotTermsAsc []*term.Term) [][]Operation {
	level := make([]int, len(rows))
	// ready[r] is the first level after every operation targeting row r.
	ready := make([]int, len(rows))
	var levels [][]Operation

	for _, t := range pivotTermsAsc {
		o := pivots[t]
		for _, c := range pivotOps[t] {
			if c.Row == o {
				continue
			}
			lvl := level[c.Row]
			if ready[o] > lvl {
				lvl = ready[o]
			}
			for len(levels) <= lvl {
				levels = append(levels, nil)
			}
			levels[lvl] = append(levels[lvl], Operation{Target: c.Row, Oper: o, Factor: c.Coeff})
			level[c.Row] = lvl + 1
			ready[c.Row] = lvl + 1
			if level[o] < level[c.Row] {
				level[o] = level[c.Row]
			}
		}
	}

	for len(levels) > 0 && len(levels[len(levels)-1]) == 0 {
		levels = levels[:len(levels)-1]
	}
	return levels
}
