/* search_test.go
 * Contains unit tests for team-name lookup over the bracket.
 */

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mmtui/api/model"
)

func bracketForSearch() *model.Tournament {
	return model.NewTournament("t", "Test", 2025, []*model.Region{
		{
			ID: "west", Name: "West",
			Rounds: []*model.Round{
				{Kind: model.RoundFirst, Games: []*model.Game{
					{ID: "201", Top: seed("1", "Gonzaga Bulldogs"), Bottom: seed("2", "Georgia Bulldogs")},
					{ID: "202", Top: seed("3", "Michigan State Spartans"), Bottom: seed("4", "Bryant Bulldogs")},
				}},
				{Kind: model.RoundSecond, Games: []*model.Game{
					{ID: "301", Top: seed("1", "Gonzaga Bulldogs"), Bottom: seed("3", "Michigan State Spartans")},
				}},
			},
		},
	})
}

// TestFindGameByTeam_ExactMatch resolves a full name to the team's latest game
func TestFindGameByTeam_ExactMatch(t *testing.T) {
	tour := bracketForSearch()

	game := FindGameByTeam(tour, "Gonzaga Bulldogs")

	assert.NotNil(t, game)
	assert.Equal(t, "301", game.ID)
}

// TestFindGameByTeam_QuotedQuery treats a quoted multi-word name as one term
func TestFindGameByTeam_QuotedQuery(t *testing.T) {
	tour := bracketForSearch()

	game := FindGameByTeam(tour, `"Michigan State Spartans"`)

	assert.NotNil(t, game)
	assert.Equal(t, "301", game.ID)
}

// TestFindGameByTeam_PartialMatch ranks a partial name onto the closest team
func TestFindGameByTeam_PartialMatch(t *testing.T) {
	tour := bracketForSearch()

	game := FindGameByTeam(tour, "gonzaga")

	assert.NotNil(t, game)
	assert.Equal(t, "301", game.ID)
}

// TestFindGameByTeam_NoMatch returns nil for a team not in the bracket
func TestFindGameByTeam_NoMatch(t *testing.T) {
	tour := bracketForSearch()

	assert.Nil(t, FindGameByTeam(tour, "zzzz qqqq"))
	assert.Nil(t, FindGameByTeam(tour, ""))
	assert.Nil(t, FindGameByTeam(tour, "   "))
}

// TestFindGameByTeam_EmptyBracket handles a bracket with no resolved teams
func TestFindGameByTeam_EmptyBracket(t *testing.T) {
	tour := model.NewTournament("t", "Test", 2025, []*model.Region{
		{ID: "east", Name: "East", Rounds: []*model.Round{
			{Kind: model.RoundFirst, Games: []*model.Game{
				{ID: "201", Top: model.TeamSeed{Placeholder: "TBA"}, Bottom: model.TeamSeed{Placeholder: "TBA"}},
			}},
		}},
	})

	assert.Nil(t, FindGameByTeam(tour, "Duke"))
}
