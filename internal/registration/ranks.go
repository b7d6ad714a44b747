package registration

import (
	"fmt"
	"sort"
)

// Rank codes: professional dan ranks are 100+level, amateur dan ranks are
// positive, kyu ranks negative, 0 is a non-player.
const (
	RankNonPlayer = 0
	proRankBase   = 100
)

// rankNames is built once at startup and never mutated afterwards.
var rankNames = buildRankNames()

func buildRankNames() map[int]string {
	m := map[int]string{RankNonPlayer: "Non-player"}
	for p := 1; p <= 9; p++ {
		m[proRankBase+p] = fmt.Sprintf("%d dan pro", p)
	}
	for d := 1; d <= 9; d++ {
		m[d] = fmt.Sprintf("%d dan", d)
	}
	for k := 1; k <= 30; k++ {
		m[-k] = fmt.Sprintf("%d kyu", k)
	}
	return m
}

// RankName returns the human label for a rank code.
func RankName(code int) (string, bool) {
	name, ok := rankNames[code]
	return name, ok
}

// ValidRank reports whether code is a known rank.
func ValidRank(code int) bool {
	_, ok := rankNames[code]
	return ok
}

// RankCodes lists every known rank code, strongest first.
func RankCodes() []int {
	codes := make([]int, 0, len(rankNames))
	for c := range rankNames {
		codes = append(codes, c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(codes)))
	return codes
}
