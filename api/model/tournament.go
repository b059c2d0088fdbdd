/* tournament.go
 * Domain types for the tournament bracket. These types are provider-agnostic; all knowledge
 * of wire formats lives in the external package mappers.
 */

package model

import "time"

// Tournament is the single authoritative bracket: an ordered set of regions plus the
// National (Final Four / Championship) segment, always last. It is constructed once per
// successful fetch and then mutated in place by the bridge and merger for the rest of
// the session.
type Tournament struct {
	ID      string
	Name    string
	Year    int
	Regions []*Region

	// byID indexes every game in the tree by its source-stable ID. Built once at
	// construction; the regions hold the same pointers, so a lookup hit mutates the
	// tree in place without walking it.
	byID map[string]*Game
}

// Region is a named grouping of rounds. Name falls back to "Region {sectionId}" when the
// provider has not assigned titles yet (pre-Selection Sunday); an empty-but-renderable
// region is valid state, not an error.
type Region struct {
	ID       string
	Name     string
	National bool
	Rounds   []*Round
}

// Round groups the games of one bracket depth within a region.
type Round struct {
	Kind  RoundKind
	Games []*Game
}

// Game is the unit of bracket topology.
//
// Identifier strategy: ID is stable within whichever source produced the game (bracket
// position id when the topology provider supplied it, live event id otherwise). LiveID is
// the live provider's event id, empty until the identity bridge links the two sources.
// The two are kept as separate fields on purpose; neither is globally unique across
// sources and they must never be conflated.
type Game struct {
	ID     string
	LiveID string

	Top    TeamSeed
	Bottom TeamSeed

	Status   GameStatus
	TopScore int
	BotScore int
	HasScore bool
	WinnerID string

	// AdvancesTo names the downstream game the winner feeds into, or "" for the
	// championship game.
	AdvancesTo string

	Period    int
	Clock     string
	StartTime time.Time
	Location  string
}

// TeamSeed is one slot of a game: either a resolved team or a placeholder ("TBA",
// "Winner of #42"). An unresolved slot is valid, renderable state.
type TeamSeed struct {
	Seed        int
	Team        *Team
	Placeholder string
}

// Team identifies a tournament participant.
type Team struct {
	ID        string
	Name      string
	ShortName string
	Abbrev    string
	Color     string
}

// GameStatus is the lifecycle of a single game.
type GameStatus int

const (
	StatusScheduled GameStatus = iota
	StatusInProgress
	StatusFinal
	StatusPostponed
)

func (s GameStatus) String() string {
	switch s {
	case StatusInProgress:
		return "in-progress"
	case StatusFinal:
		return "final"
	case StatusPostponed:
		return "postponed"
	default:
		return "scheduled"
	}
}

// NewTournament builds a Tournament from its regions and indexes every game by ID.
func NewTournament(id, name string, year int, regions []*Region) *Tournament {
	t := &Tournament{ID: id, Name: name, Year: year, Regions: regions}
	t.Reindex()
	return t
}

// Reindex rebuilds the game index from the region tree. Only needed after construction;
// topology is immutable once built.
func (t *Tournament) Reindex() {
	t.byID = make(map[string]*Game)
	for _, region := range t.Regions {
		for _, round := range region.Rounds {
			for _, game := range round.Games {
				t.byID[game.ID] = game
			}
		}
	}
}

// GameByID returns the game with the given source-stable ID, or nil.
func (t *Tournament) GameByID(id string) *Game {
	if t.byID == nil {
		t.Reindex()
	}
	return t.byID[id]
}

// GameByLiveID returns the bridged game carrying the given live provider event id, or
// nil if no game has been bridged to it yet. Walks the tree in region/round order so
// results are deterministic.
func (t *Tournament) GameByLiveID(liveID string) *Game {
	if liveID == "" {
		return nil
	}
	for _, region := range t.Regions {
		for _, round := range region.Rounds {
			for _, game := range round.Games {
				if game.LiveID == liveID {
					return game
				}
			}
		}
	}
	return nil
}

// GameCount returns the number of games in the bracket.
func (t *Tournament) GameCount() int {
	if t.byID == nil {
		t.Reindex()
	}
	return len(t.byID)
}

// Valid reports whether the tournament is structurally renderable: at least one region
// and at least one game. Unseeded slots and empty labels do not make a bracket invalid.
func (t *Tournament) Valid() bool {
	return t != nil && len(t.Regions) > 0 && t.GameCount() > 0
}

// National returns the Final Four / Championship segment, or nil pre-construction.
func (t *Tournament) NationalRegion() *Region {
	for _, region := range t.Regions {
		if region.National {
			return region
		}
	}
	return nil
}

// IsLive reports whether the game is currently in progress.
func (g *Game) IsLive() bool {
	return g.Status == StatusInProgress
}

// Bridged reports whether the identity bridge has linked this game to a live provider
// event.
func (g *Game) Bridged() bool {
	return g.LiveID != ""
}

// Winner resolves the winning team from the provider winner flag, avoiding edge-case
// score logic (overtime, forfeits). Returns nil while undecided.
func (g *Game) Winner() *Team {
	if g.WinnerID == "" {
		return nil
	}
	if g.Top.Team != nil && g.Top.Team.ID == g.WinnerID {
		return g.Top.Team
	}
	if g.Bottom.Team != nil && g.Bottom.Team.ID == g.WinnerID {
		return g.Bottom.Team
	}
	return nil
}

// Resolved reports whether the slot holds an actual team rather than a placeholder.
func (ts TeamSeed) Resolved() bool {
	return ts.Team != nil
}

// Label returns the display name for the slot: the team's short name when resolved,
// otherwise the placeholder text.
func (ts TeamSeed) Label() string {
	if ts.Team != nil {
		if ts.Team.ShortName != "" {
			return ts.Team.ShortName
		}
		return ts.Team.Name
	}
	if ts.Placeholder != "" {
		return ts.Placeholder
	}
	return "TBA"
}
