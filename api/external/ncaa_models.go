/* ncaa_models.go
 * Wire types for the NCAA bracket API, the structurally authoritative topology source.
 * Endpoint: GET {base}/brackets/basketball-men/d1/{year}. Field naming is camelCase.
 */

package external

// NCAAResponse is the top-level payload of the bracket endpoint.
type NCAAResponse struct {
	Championships []NCAAChampionship `json:"championships"`
}

// NCAAChampionship carries the full bracket for one championship.
type NCAAChampionship struct {
	Title   string       `json:"title"`
	Year    int          `json:"year"`
	Games   []NCAAGame   `json:"games"`
	Rounds  []NCAARound  `json:"rounds"`
	Regions []NCAARegion `json:"regions"`
}

// NCAAGame is one bracket slot. Teams is empty pre-Selection Sunday; the position id
// encodes the round in its hundreds digit and VictorBracketPositionID names the game
// the winner advances into.
type NCAAGame struct {
	BracketPositionID       int        `json:"bracketPositionId"`
	VictorBracketPositionID int        `json:"victorBracketPositionId"`
	ContestID               int64      `json:"contestId"`
	GameState               string     `json:"gameState"`
	Teams                   []NCAATeam `json:"teams"`
	SectionID               int        `json:"sectionId"`
	StartDate               string     `json:"startDate"`
	StartTime               string     `json:"startTime"`
}

// NCAATeam is one side of an NCAA game. All fields are optional pre-seeding.
type NCAATeam struct {
	TeamID      string `json:"teamId"`
	Name        string `json:"name"`
	ShortName   string `json:"shortName"`
	Seed        int    `json:"seed"`
	Winner      bool   `json:"winner"`
	Description string `json:"description"`
}

type NCAARound struct {
	ID          string `json:"id"`
	RoundNumber int    `json:"roundNumber"`
	Label       string `json:"label"`
	Subtitle    string `json:"subtitle"`
}

// NCAARegion names one of the four regional brackets. Title is empty pre-Selection
// Sunday.
type NCAARegion struct {
	ID         string `json:"id"`
	SectionID  int    `json:"sectionId"`
	Title      string `json:"title"`
	RegionCode string `json:"regionCode"`
}
