/* round.go
 * Round taxonomy and the position-id convention. Bracket position ids encode their round
 * in the hundreds digit (101-199 First Four, 201-299 first round, ... 701 championship),
 * so a game's round is always recomputed from its position id, never stored separately.
 */

package model

// RoundKind orders the rounds of the tournament from earliest to latest.
type RoundKind int

const (
	RoundFirstFour RoundKind = iota + 1
	RoundFirst
	RoundSecond
	RoundSweet16
	RoundElite8
	RoundFinalFour
	RoundChampionship
)

// RoundOrder lists the rounds earliest first, for iteration.
var RoundOrder = []RoundKind{
	RoundFirstFour,
	RoundFirst,
	RoundSecond,
	RoundSweet16,
	RoundElite8,
	RoundFinalFour,
	RoundChampionship,
}

// RoundNumber derives the round number from a bracket position id by integer division;
// ids 100-199 are round 1, 200-299 round 2, and so on. No lookup table, no traversal.
func RoundNumber(positionID int) int {
	return positionID / 100
}

// RoundFromPosition maps a bracket position id to its RoundKind. Out-of-range ids
// default to the first round rather than failing; malformed input degrades, it never
// panics.
func RoundFromPosition(positionID int) RoundKind {
	return RoundFromNumber(RoundNumber(positionID))
}

// RoundFromNumber maps a provider round number (1-7) to its RoundKind.
func RoundFromNumber(n int) RoundKind {
	if n >= int(RoundFirstFour) && n <= int(RoundChampionship) {
		return RoundKind(n)
	}
	return RoundFirst
}

func (k RoundKind) Label() string {
	switch k {
	case RoundFirstFour:
		return "First Four"
	case RoundFirst:
		return "1st Round"
	case RoundSecond:
		return "2nd Round"
	case RoundSweet16:
		return "Sweet 16"
	case RoundElite8:
		return "Elite Eight"
	case RoundFinalFour:
		return "Final Four"
	case RoundChampionship:
		return "Championship"
	default:
		return "Unknown"
	}
}

// IsFinalFour reports whether the round belongs to the National segment.
func (k RoundKind) IsFinalFour() bool {
	return k == RoundFinalFour || k == RoundChampionship
}

// Next returns the following round, or the zero RoundKind after the championship.
func (k RoundKind) Next() (RoundKind, bool) {
	if k >= RoundFirstFour && k < RoundChampionship {
		return k + 1, true
	}
	return 0, false
}

// Prev returns the preceding round, or the zero RoundKind before the First Four.
func (k RoundKind) Prev() (RoundKind, bool) {
	if k > RoundFirstFour && k <= RoundChampionship {
		return k - 1, true
	}
	return 0, false
}

// ActiveRound scans game statuses to find the round the tournament is currently in:
// the earliest round with a game in progress, or failing that the last round with a
// finished game. Drives the initial view on load.
func ActiveRound(t *Tournament) RoundKind {
	lastWithFinals := RoundFirst

	for _, kind := range RoundOrder {
		live := false
		finished := false
		for _, region := range t.Regions {
			for _, round := range region.Rounds {
				if round.Kind != kind {
					continue
				}
				for _, game := range round.Games {
					switch game.Status {
					case StatusInProgress:
						live = true
					case StatusFinal:
						finished = true
					}
				}
			}
		}
		if live {
			return kind
		}
		if finished {
			lastWithFinals = kind
		}
	}
	return lastWithFinals
}
