/* merge_test.go
 * Contains unit tests for the live update merger and winner advancement.
 */

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mmtui/api/model"
)

// bracketForMerge builds two first round games feeding one second round game. The first
// feeder is already bridged to live id 401.
func bracketForMerge() *model.Tournament {
	return model.NewTournament("t", "Test", 2025, []*model.Region{
		{
			ID: "east", Name: "East",
			Rounds: []*model.Round{
				{Kind: model.RoundFirst, Games: []*model.Game{
					{ID: "201", LiveID: "401", AdvancesTo: "301", Top: seed("150", "Duke"), Bottom: seed("2771", "Mount St. Mary's")},
					{ID: "202", LiveID: "402", AdvancesTo: "301", Top: seed("57", "Florida"), Bottom: seed("2507", "Norfolk State")},
				}},
				{Kind: model.RoundSecond, Games: []*model.Game{
					{ID: "301", Top: model.TeamSeed{Placeholder: "TBA"}, Bottom: model.TeamSeed{Placeholder: "TBA"}},
				}},
			},
		},
	})
}

// TestMerge_AppliesScoreAndStatus copies live fields onto the bridged game
func TestMerge_AppliesScoreAndStatus(t *testing.T) {
	tour := bracketForMerge()

	changed, err := Merge(tour, []model.Game{
		{LiveID: "401", Status: model.StatusInProgress, TopScore: 38, BotScore: 31, HasScore: true, Period: 2, Clock: "15:02"},
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"201"}, changed)

	game := tour.GameByID("201")
	assert.Equal(t, model.StatusInProgress, game.Status)
	assert.Equal(t, 38, game.TopScore)
	assert.Equal(t, 31, game.BotScore)
	assert.True(t, game.HasScore)
	assert.Equal(t, 2, game.Period)
	assert.Equal(t, "15:02", game.Clock)
}

// TestMerge_DropsUnbridgedUpdates silently ignores updates no game is bridged to
func TestMerge_DropsUnbridgedUpdates(t *testing.T) {
	tour := bracketForMerge()

	changed, err := Merge(tour, []model.Game{
		{LiveID: "999", Status: model.StatusFinal, TopScore: 80, BotScore: 60, HasScore: true},
	})

	assert.NoError(t, err)
	assert.Empty(t, changed)
	assert.Equal(t, model.StatusScheduled, tour.GameByID("201").Status)
}

// TestMerge_NoChangeNoReport reapplying identical data reports nothing changed
func TestMerge_NoChangeNoReport(t *testing.T) {
	tour := bracketForMerge()
	update := model.Game{LiveID: "401", Status: model.StatusInProgress, TopScore: 10, BotScore: 8, HasScore: true}

	changed, err := Merge(tour, []model.Game{update})
	assert.NoError(t, err)
	assert.Len(t, changed, 1)

	changed, err = Merge(tour, []model.Game{update})
	assert.NoError(t, err)
	assert.Empty(t, changed)
}

// TestMerge_AdvancesWinner fills the downstream placeholder slot with the winner's seed
// entry
func TestMerge_AdvancesWinner(t *testing.T) {
	tour := bracketForMerge()
	tour.GameByID("201").Top.Seed = 1

	changed, err := Merge(tour, []model.Game{
		{LiveID: "401", Status: model.StatusFinal, TopScore: 93, BotScore: 49, HasScore: true, WinnerID: "150"},
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"201"}, changed)

	downstream := tour.GameByID("301")
	assert.True(t, downstream.Top.Resolved())
	assert.Equal(t, "Duke", downstream.Top.Team.Name)
	assert.Equal(t, 1, downstream.Top.Seed)
	assert.False(t, downstream.Bottom.Resolved())
}

// TestMerge_AdvancementIdempotent reapplying the same winner changes nothing and raises
// no conflict
func TestMerge_AdvancementIdempotent(t *testing.T) {
	tour := bracketForMerge()
	update := model.Game{LiveID: "401", Status: model.StatusFinal, WinnerID: "150"}

	_, err := Merge(tour, []model.Game{update})
	assert.NoError(t, err)

	_, err = Merge(tour, []model.Game{update})
	assert.NoError(t, err)

	downstream := tour.GameByID("301")
	assert.Equal(t, "Duke", downstream.Top.Team.Name)
	assert.False(t, downstream.Bottom.Resolved())
}

// TestMerge_AdvancementConflict keeps the first-set slot and surfaces the conflict as a
// warning error
func TestMerge_AdvancementConflict(t *testing.T) {
	tour := bracketForMerge()

	_, err := Merge(tour, []model.Game{
		{LiveID: "401", Status: model.StatusFinal, WinnerID: "150"},
	})
	assert.NoError(t, err)

	// The same feeder later reports the other participant as winner.
	_, err = Merge(tour, []model.Game{
		{LiveID: "401", Status: model.StatusFinal, WinnerID: "2771"},
	})

	var conflict *AdvancementConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, "301", conflict.GameID)
	assert.Equal(t, "Duke", conflict.SlotTeam)
	assert.Equal(t, "Mount St. Mary's", conflict.Winner)

	// First-set value stands.
	assert.Equal(t, "Duke", tour.GameByID("301").Top.Team.Name)
}

// TestMerge_ConflictDoesNotAbortBatch applies the rest of the batch around a conflict
func TestMerge_ConflictDoesNotAbortBatch(t *testing.T) {
	tour := bracketForMerge()

	_, err := Merge(tour, []model.Game{{LiveID: "401", Status: model.StatusFinal, WinnerID: "150"}})
	assert.NoError(t, err)

	changed, err := Merge(tour, []model.Game{
		{LiveID: "401", Status: model.StatusFinal, WinnerID: "2771"},
		{LiveID: "402", Status: model.StatusFinal, TopScore: 77, BotScore: 55, HasScore: true, WinnerID: "57"},
	})

	assert.Error(t, err)
	assert.Contains(t, changed, "202")

	downstream := tour.GameByID("301")
	assert.Equal(t, "Duke", downstream.Top.Team.Name)
	assert.Equal(t, "Florida", downstream.Bottom.Team.Name)
}

// TestMerge_ResolvesPlaceholderSlots lets live data fill slots topology still shows as
// TBA
func TestMerge_ResolvesPlaceholderSlots(t *testing.T) {
	tour := model.NewTournament("t", "Test", 2025, []*model.Region{
		{ID: "east", Name: "East", Rounds: []*model.Round{
			{Kind: model.RoundFirst, Games: []*model.Game{
				{ID: "201", LiveID: "401", Top: model.TeamSeed{Placeholder: "TBA"}, Bottom: model.TeamSeed{Placeholder: "TBA"}},
			}},
		}},
	})

	changed, err := Merge(tour, []model.Game{
		{LiveID: "401", Top: seed("1", "Alabama"), Bottom: seed("2", "Robert Morris")},
	})

	assert.NoError(t, err)
	assert.Len(t, changed, 1)
	game := tour.GameByID("201")
	assert.Equal(t, "Alabama", game.Top.Team.Name)
	assert.Equal(t, "Robert Morris", game.Bottom.Team.Name)
}

// TestMerge_MissingDownstreamTarget logs and continues when an advancement pointer
// leads nowhere
func TestMerge_MissingDownstreamTarget(t *testing.T) {
	tour := model.NewTournament("t", "Test", 2025, []*model.Region{
		{ID: "east", Name: "East", Rounds: []*model.Round{
			{Kind: model.RoundFirst, Games: []*model.Game{
				{ID: "201", LiveID: "401", AdvancesTo: "999", Top: seed("1", "Duke"), Bottom: seed("2", "Florida")},
			}},
		}},
	})

	changed, err := Merge(tour, []model.Game{
		{LiveID: "401", Status: model.StatusFinal, WinnerID: "1"},
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"201"}, changed)
}

// TestMerge_EmptyBatch succeeds with nothing to do
func TestMerge_EmptyBatch(t *testing.T) {
	tour := bracketForMerge()

	changed, err := Merge(tour, nil)

	assert.NoError(t, err)
	assert.Empty(t, changed)
}
