/* espn_models.go
 * Wire types for the ESPN site APIs: the live provider. Three endpoints share these
 * shapes: the scoreboard (periodic refresh), the tournaments bracket (fallback topology)
 * and the per-game summary (box score + play-by-play). A separate schema from the NCAA
 * bracket API; the two are never mixed.
 */

package external

// ESPNTournamentsResponse is the v2 tournaments payload (bracket fallback).
type ESPNTournamentsResponse struct {
	Tournaments []ESPNTournamentEntry `json:"tournaments"`
}

type ESPNTournamentEntry struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Bracket ESPNBracket `json:"bracket"`
}

type ESPNBracket struct {
	Rounds []ESPNRound `json:"rounds"`
	Full   bool        `json:"full"`
}

// ESPNRound nests its games under "matchups" on some endpoints and "games" on others.
type ESPNRound struct {
	Number   int           `json:"number"`
	Name     string        `json:"name"`
	Matchups []ESPNMatchup `json:"matchups"`
	Games    []ESPNMatchup `json:"games"`
}

// AllMatchups flattens the two nesting variants into one list.
func (r ESPNRound) AllMatchups() []ESPNMatchup {
	if len(r.Matchups) == 0 {
		return r.Games
	}
	if len(r.Games) == 0 {
		return r.Matchups
	}
	all := make([]ESPNMatchup, 0, len(r.Matchups)+len(r.Games))
	all = append(all, r.Matchups...)
	all = append(all, r.Games...)
	return all
}

type ESPNMatchup struct {
	ID          string           `json:"id"`
	Event       *ESPNEvent       `json:"event"`
	Competitors []ESPNCompetitor `json:"competitors"`
	// Note carries the region name ("SOUTH", "EAST") on the tournaments endpoint.
	Note string `json:"note"`
}

// ESPNScoreboardResponse is the site v2 scoreboard payload.
type ESPNScoreboardResponse struct {
	Events []ESPNEvent `json:"events"`
}

type ESPNEvent struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Status       *ESPNStatus       `json:"status"`
	Competitions []ESPNCompetition `json:"competitions"`
	Date         string            `json:"date"`
	Venue        *ESPNVenue        `json:"venue"`
}

type ESPNStatus struct {
	Type         *ESPNStatusType `json:"type"`
	Period       int             `json:"period"`
	DisplayClock string          `json:"displayClock"`
}

type ESPNStatusType struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type ESPNCompetition struct {
	Competitors []ESPNCompetitor `json:"competitors"`
}

type ESPNCompetitor struct {
	ID       string    `json:"id"`
	HomeAway string    `json:"homeAway"`
	Team     *ESPNTeam `json:"team"`
	// Score arrives as a string on every ESPN endpoint.
	Score       string    `json:"score"`
	Winner      bool      `json:"winner"`
	CuratedRank *ESPNRank `json:"curatedRank"`
	Placeholder string    `json:"placeholder"`
}

type ESPNTeam struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
	Abbreviation     string `json:"abbreviation"`
	Color            string `json:"color"`
}

type ESPNRank struct {
	Current int `json:"current"`
}

type ESPNVenue struct {
	FullName string `json:"fullName"`
	City     string `json:"city"`
	State    string `json:"state"`
}

// ESPNSummaryResponse is the per-game detail payload.
type ESPNSummaryResponse struct {
	Plays    []ESPNPlay    `json:"plays"`
	Boxscore *ESPNBoxscore `json:"boxscore"`
}

type ESPNPlay struct {
	Period    *ESPNPeriod `json:"period"`
	Clock     *ESPNClock  `json:"clock"`
	Text      string      `json:"text"`
	HomeScore int         `json:"homeScore"`
	AwayScore int         `json:"awayScore"`
}

type ESPNPeriod struct {
	Number int `json:"number"`
}

type ESPNClock struct {
	DisplayValue string `json:"displayValue"`
}

type ESPNBoxscore struct {
	Players []ESPNTeamPlayers `json:"players"`
}

type ESPNTeamPlayers struct {
	Team       *ESPNTeam          `json:"team"`
	Statistics []ESPNStatCategory `json:"statistics"`
}

// ESPNStatCategory aligns parallel arrays: keys names the columns, each athlete's
// stats slice lines up with keys by index.
type ESPNStatCategory struct {
	Name     string            `json:"name"`
	Athletes []ESPNAthleteStat `json:"athletes"`
	Totals   []string          `json:"totals"`
	Keys     []string          `json:"keys"`
}

type ESPNAthleteStat struct {
	Athlete *ESPNAthlete `json:"athlete"`
	Stats   []string     `json:"stats"`
}

type ESPNAthlete struct {
	DisplayName string `json:"displayName"`
}
