/* detail.go
 * Box score and play-by-play types, fetched on demand for a single game. Details are
 * keyed by the live provider's event id (the bridge identifier), never by bracket
 * position id; an unbridged game has no detail to fetch.
 */

package model

// GameDetail holds the drill-down view for one game.
type GameDetail struct {
	LiveID  string
	Plays   []Play
	HomeBox BoxScore
	AwayBox BoxScore
}

// Play is a single play-by-play entry.
type Play struct {
	Period      int
	Clock       string
	Description string
	HomeScore   int
	AwayScore   int
}

// BoxScore is one team's stat lines for a game.
type BoxScore struct {
	Team    *Team
	Players []PlayerLine
	Totals  PlayerLine
}

// PlayerLine is one row of a box score. FG strings keep the provider's "7-12" form.
type PlayerLine struct {
	Name     string
	Points   int
	Rebounds int
	Assists  int
	Minutes  string
	FG       string
	FG3      string
}
