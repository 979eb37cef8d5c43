package quiz

import "sort"

// DefaultLeaderboardSize is the number of entries kept on the board.
const DefaultLeaderboardSize = 5

// RankedEntry is one row of the leaderboard.
type RankedEntry struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// InsertRanked adds name/score to board, orders by score descending and
// keeps the first size entries with ranks renumbered from 1. Equal scores
// keep their existing order, so the new entry sorts after earlier ones.
// The input slice is not modified.
func InsertRanked(board []RankedEntry, name string, score, size int) []RankedEntry {
	if size <= 0 {
		size = DefaultLeaderboardSize
	}
	out := make([]RankedEntry, 0, len(board)+1)
	out = append(out, board...)
	out = append(out, RankedEntry{Name: name, Score: score})

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > size {
		out = out[:size]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
