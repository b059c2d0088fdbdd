/* years_test.go
 * Contains unit tests for championship-year inference.
 */

package external

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestSeasonYear rolls over to the next calendar year once the season starts in November
func TestSeasonYear(t *testing.T) {
	assert.Equal(t, 2025, SeasonYear(time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2025, SeasonYear(time.Date(2025, time.October, 31, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, 2026, SeasonYear(time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2026, SeasonYear(time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2026, SeasonYear(time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)))
}

// TestCandidateYears_NearestFirst orders fallback years by distance from the current
// season, ties toward the earlier year
func TestCandidateYears_NearestFirst(t *testing.T) {
	// March 2027 season: 2027 first, then 2026/2028 (earlier wins the tie), then the
	// snapshot year.
	years := CandidateYears(time.Date(2027, time.March, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, []int{2027, 2026, 2028, 2025}, years)
}

// TestCandidateYears_SnapshotYearDeduped does not repeat 2025 when it is already a
// neighbor of the season
func TestCandidateYears_SnapshotYearDeduped(t *testing.T) {
	years := CandidateYears(time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, []int{2025, 2024, 2026}, years)

	years = CandidateYears(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, []int{2026, 2025, 2027}, years)
}

// TestCandidateYears_AlwaysIncludesSnapshot keeps the embedded snapshot's year reachable
// from any season
func TestCandidateYears_AlwaysIncludesSnapshot(t *testing.T) {
	years := CandidateYears(time.Date(2031, time.March, 15, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, years, 2025)
	assert.Equal(t, 2031, years[0])
}
