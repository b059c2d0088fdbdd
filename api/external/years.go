/* years.go
 * Championship-year inference. The tournament is played in March/April of the season's
 * closing year, so from November onward queries should target the next calendar year.
 */

package external

import "time"

// snapshotYear is the year of the embedded fallback bracket.
const snapshotYear = 2025

// SeasonYear returns the championship year for the season containing now.
func SeasonYear(now time.Time) int {
	if now.Month() >= time.November {
		return now.Year() + 1
	}
	return now.Year()
}

// CandidateYears lists the years worth querying the fallback bracket endpoint for,
// nearest to the current season first. The embedded snapshot's year is always included
// so a stale season query still lands on data that exists.
func CandidateYears(now time.Time) []int {
	season := SeasonYear(now)
	candidates := []int{season, season - 1, season + 1, snapshotYear}

	seen := make(map[int]bool)
	var years []int
	for _, y := range candidates {
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}

	// Nearest-first, ties broken toward the earlier year.
	for i := 1; i < len(years); i++ {
		for j := i; j > 0; j-- {
			a, b := years[j-1], years[j]
			da, db := abs(a-season), abs(b-season)
			if db < da || (db == da && b < a) {
				years[j-1], years[j] = b, a
			}
		}
	}
	return years
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
