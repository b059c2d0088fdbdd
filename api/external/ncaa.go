/* ncaa.go
 * Client for the NCAA bracket API, the topology provider. It knows the bracket's shape
 * (regions, advancement, position ids) before and after Selection Sunday but never
 * carries live scores; those come from ESPN once the identity bridge links the two.
 */

package external

import (
	"context"
	"fmt"
	"log/slog"

	"mmtui/api/model"
)

// FetchNCAABracket fetches and maps the bracket for the given championship year.
func (c *Client) FetchNCAABracket(ctx context.Context, year int) (*model.Tournament, error) {
	url := fmt.Sprintf("%s/brackets/basketball-men/d1/%d", c.NCAABaseURL, year)

	var raw NCAAResponse
	if err := c.getJSON(ctx, "ncaa", url, &raw); err != nil {
		return nil, err
	}
	if len(raw.Championships) == 0 {
		return nil, &MappingError{Source: "ncaa", Reason: fmt.Sprintf("no championship data for %d", year)}
	}

	tournament, err := MapChampionship(raw.Championships[0])
	if err != nil {
		return nil, err
	}
	slog.Debug("fetched ncaa bracket",
		"year", year, "regions", len(tournament.Regions), "games", tournament.GameCount())
	return tournament, nil
}
