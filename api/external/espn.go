/* espn.go
 * Client for the ESPN site APIs, the live provider. Three endpoints: the tournaments
 * bracket (fallback topology when the NCAA API is down), the scoreboard (periodic
 * score refresh) and the per-game summary (box score + play-by-play).
 */

package external

import (
	"context"
	"fmt"
	"log/slog"

	"mmtui/api/model"
)

// FetchESPNBracket fetches the tournaments endpoint for one year and maps the NCAA
// tournament entry out of it.
func (c *Client) FetchESPNBracket(ctx context.Context, year int) (*model.Tournament, error) {
	url := fmt.Sprintf("%s/tournaments?limit=25&year=%d", c.ESPNV2URL, year)

	var raw ESPNTournamentsResponse
	if err := c.getJSON(ctx, "espn", url, &raw); err != nil {
		return nil, err
	}
	entry, err := SelectTournamentEntry(raw.Tournaments, year)
	if err != nil {
		return nil, err
	}
	tournament, err := MapTournamentEntry(entry, year)
	if err != nil {
		return nil, err
	}
	slog.Debug("fetched espn bracket", "year", year, "games", tournament.GameCount())
	return tournament, nil
}

// FetchScoreboard fetches the tournament scoreboard and maps each event into a partial
// update game. groups=100 filters ESPN's feed to tournament games.
func (c *Client) FetchScoreboard(ctx context.Context) ([]model.Game, error) {
	url := c.ESPNSiteURL + "/scoreboard?groups=100&limit=50"

	var raw ESPNScoreboardResponse
	if err := c.getJSON(ctx, "espn", url, &raw); err != nil {
		return nil, err
	}

	games := make([]model.Game, 0, len(raw.Events))
	for _, event := range raw.Events {
		if event.ID == "" {
			continue
		}
		games = append(games, MapScoreboardEvent(event))
	}
	slog.Debug("fetched scoreboard", "events", len(games))
	return games, nil
}

// FetchGameDetail fetches the summary for one game, keyed by the live provider's event
// id. Callers must hold a bridge identifier; there is nothing to fetch for an
// unbridged game.
func (c *Client) FetchGameDetail(ctx context.Context, liveID string) (*model.GameDetail, error) {
	url := fmt.Sprintf("%s/summary?event=%s", c.ESPNSiteURL, liveID)

	var raw ESPNSummaryResponse
	if err := c.getJSON(ctx, "espn", url, &raw); err != nil {
		return nil, err
	}
	return MapSummary(liveID, raw), nil
}
