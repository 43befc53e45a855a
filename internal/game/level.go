package game

import "fmt"

// Level bounds and round count are fixed for the whole game.
const (
	MinLevel       = 1
	MaxLevel       = 6
	RoundsPerLevel = 10
)

// LevelConfig describes one difficulty level.
type LevelConfig struct {
	ID            int
	TimeLimit     int  // Seconds to clear all ten rounds
	ColorArity    int  // Size of the palette subset in play (2 or 4)
	DuplicateMode bool // Board pads duplicate forbidden-color cells
}

// levels is the static catalog. DuplicateMode is flagged for levels 5 and 6,
// but the board generator only applies it at level 5 (see GenerateBoard).
var levels = [MaxLevel]LevelConfig{
	{ID: 1, TimeLimit: 20, ColorArity: 2},
	{ID: 2, TimeLimit: 15, ColorArity: 2},
	{ID: 3, TimeLimit: 20, ColorArity: 4},
	{ID: 4, TimeLimit: 15, ColorArity: 4},
	{ID: 5, TimeLimit: 15, ColorArity: 4, DuplicateMode: true},
	{ID: 6, TimeLimit: 5, ColorArity: 4, DuplicateMode: true},
}

// LevelFor returns the catalog entry for id. Callers clamp ids to
// [MinLevel, MaxLevel] first; an out-of-range id here is a programming error.
func LevelFor(id int) LevelConfig {
	if id < MinLevel || id > MaxLevel {
		panic(fmt.Sprintf("game: level %d out of range [%d, %d]", id, MinLevel, MaxLevel))
	}
	return levels[id-1]
}

// Levels returns a copy of the full catalog in level order.
func Levels() []LevelConfig {
	return append([]LevelConfig(nil), levels[:]...)
}

// TimeLimitFor returns the per-level time budget in seconds.
// Ids outside the catalog fall back to the tightest budget.
func TimeLimitFor(id int) int {
	if id < MinLevel || id > MaxLevel {
		return 5
	}
	return levels[id-1].TimeLimit
}

// ClampLevel restricts id to the valid level range.
func ClampLevel(id int) int {
	if id < MinLevel {
		return MinLevel
	}
	if id > MaxLevel {
		return MaxLevel
	}
	return id
}
