package game

// maxRun caps consecutive identical forbidden colors in a sequence.
// maxGenAttempts bounds every reject-and-redraw loop so generation always
// terminates: after the cap the last candidate is accepted as-is.
const (
	maxRun         = 3
	maxGenAttempts = 10
)

// SequenceSpec is the ordered list of forbidden colors for one level run,
// together with the arity-limited palette subset it was drawn from.
// It is created once per level start and read-only afterwards.
type SequenceSpec struct {
	Colors  []Color
	Palette []Color
}

// GenerateSequence draws the ten forbidden colors for a level. Each position
// is a uniform draw from the level's palette subset; a draw that would make
// a fourth consecutive identical color is redrawn, up to maxGenAttempts.
func GenerateSequence(level int, r Rand) SequenceSpec {
	pal := PaletteSubset(LevelFor(ClampLevel(level)).ColorArity)

	colors := make([]Color, 0, RoundsPerLevel)
	for i := 0; i < RoundsPerLevel; i++ {
		c := pal[intn(r, len(pal))]
		for attempt := 1; attempt < maxGenAttempts && extendsMaxRun(colors, c); attempt++ {
			c = pal[intn(r, len(pal))]
		}
		colors = append(colors, c)
	}

	return SequenceSpec{Colors: colors, Palette: pal}
}

// extendsMaxRun reports whether appending c would create a run of maxRun+1
// identical colors at the tail of colors.
func extendsMaxRun(colors []Color, c Color) bool {
	if len(colors) < maxRun {
		return false
	}
	for _, prev := range colors[len(colors)-maxRun:] {
		if prev != c {
			return false
		}
	}
	return true
}
