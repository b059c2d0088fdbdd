/* tournament_test.go
 * Contains unit tests for the tournament tree, game index and slot helpers.
 */

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTournament() *Tournament {
	return NewTournament("ncaa-2025", "NCAA Tournament", 2025, []*Region{
		{
			ID: "section-1", Name: "East",
			Rounds: []*Round{
				{Kind: RoundFirst, Games: []*Game{
					{ID: "201", Top: TeamSeed{Seed: 1, Team: &Team{ID: "duke", Name: "Duke"}}, Bottom: TeamSeed{Seed: 16, Team: &Team{ID: "msm", Name: "Mount St. Mary's"}}, AdvancesTo: "301"},
					{ID: "202", Top: TeamSeed{Placeholder: "TBA"}, Bottom: TeamSeed{Placeholder: "TBA"}, AdvancesTo: "301"},
				}},
				{Kind: RoundSecond, Games: []*Game{
					{ID: "301", Top: TeamSeed{Placeholder: "TBA"}, Bottom: TeamSeed{Placeholder: "TBA"}},
				}},
			},
		},
		{
			ID: "national", Name: "National", National: true,
			Rounds: []*Round{
				{Kind: RoundChampionship, Games: []*Game{{ID: "701"}}},
			},
		},
	})
}

// TestTournament_GameByID looks games up through the index built at construction
func TestTournament_GameByID(t *testing.T) {
	tour := sampleTournament()

	game := tour.GameByID("201")
	assert.NotNil(t, game)
	assert.Equal(t, "Duke", game.Top.Team.Name)

	assert.Nil(t, tour.GameByID("999"))
	assert.Equal(t, 4, tour.GameCount())
}

// TestTournament_GameByLiveID only finds games the bridge has linked
func TestTournament_GameByLiveID(t *testing.T) {
	tour := sampleTournament()

	assert.Nil(t, tour.GameByLiveID("401625000"))
	assert.Nil(t, tour.GameByLiveID(""))

	tour.GameByID("201").LiveID = "401625000"
	found := tour.GameByLiveID("401625000")
	assert.NotNil(t, found)
	assert.Equal(t, "201", found.ID)
}

// TestTournament_Valid requires at least one region and one game
func TestTournament_Valid(t *testing.T) {
	assert.True(t, sampleTournament().Valid())

	var nilTour *Tournament
	assert.False(t, nilTour.Valid())

	empty := NewTournament("x", "Empty", 2025, nil)
	assert.False(t, empty.Valid())

	noGames := NewTournament("x", "No Games", 2025, []*Region{
		{ID: "east", Name: "East", Rounds: []*Round{{Kind: RoundFirst}}},
	})
	assert.False(t, noGames.Valid())
}

// TestTournament_NationalRegion returns the Final Four segment
func TestTournament_NationalRegion(t *testing.T) {
	tour := sampleTournament()

	national := tour.NationalRegion()
	assert.NotNil(t, national)
	assert.Equal(t, "National", national.Name)

	regional := NewTournament("x", "Regional Only", 2025, []*Region{
		{ID: "east", Name: "East"},
	})
	assert.Nil(t, regional.NationalRegion())
}

// TestGame_Winner resolves the winner from the provider flag, not from scores
func TestGame_Winner(t *testing.T) {
	game := &Game{
		Top:    TeamSeed{Team: &Team{ID: "duke", Name: "Duke"}},
		Bottom: TeamSeed{Team: &Team{ID: "uf", Name: "Florida"}},
	}

	assert.Nil(t, game.Winner())

	game.WinnerID = "uf"
	winner := game.Winner()
	assert.NotNil(t, winner)
	assert.Equal(t, "Florida", winner.Name)

	game.WinnerID = "unknown"
	assert.Nil(t, game.Winner())
}

// TestGame_Bridged reports bridge linkage from the live id field
func TestGame_Bridged(t *testing.T) {
	game := &Game{ID: "201"}
	assert.False(t, game.Bridged())

	game.LiveID = "401625000"
	assert.True(t, game.Bridged())
}

// TestTeamSeed_Label prefers short names, then placeholders, then TBA
func TestTeamSeed_Label(t *testing.T) {
	assert.Equal(t, "UConn", TeamSeed{Team: &Team{Name: "Connecticut Huskies", ShortName: "UConn"}}.Label())
	assert.Equal(t, "Gonzaga", TeamSeed{Team: &Team{Name: "Gonzaga"}}.Label())
	assert.Equal(t, "Winner of #42", TeamSeed{Placeholder: "Winner of #42"}.Label())
	assert.Equal(t, "TBA", TeamSeed{}.Label())
}

// TestTeamSeed_Resolved distinguishes teams from placeholders
func TestTeamSeed_Resolved(t *testing.T) {
	assert.True(t, TeamSeed{Team: &Team{Name: "Duke"}}.Resolved())
	assert.False(t, TeamSeed{Placeholder: "TBA"}.Resolved())
}
