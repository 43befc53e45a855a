package game

// duplicateLevel is the only level where the board pads two identical
// forbidden-color trap cells. Level 6 carries the DuplicateMode flag in the
// catalog too, but the reference behavior never applies it there, so neither
// do we.
const duplicateLevel = 5

// GenerateBoard produces the button arrangement for one round. prev is the
// previous round's arrangement (nil at level start); on the two-color levels
// an element-wise repeat of prev forces a reshuffle, capped at maxGenAttempts.
func GenerateBoard(level int, forbidden Color, prev []Color, r Rand) []Color {
	cfg := LevelFor(ClampLevel(level))

	var cells []Color
	if cfg.ID == duplicateLevel {
		// Two visually identical trap cells plus the first two palette
		// colors that differ from the forbidden one.
		cells = []Color{forbidden, forbidden}
		for _, c := range Palette {
			if len(cells) == 4 {
				break
			}
			if c != forbidden {
				cells = append(cells, c)
			}
		}
	} else {
		cells = PaletteSubset(cfg.ColorArity)
	}

	shuffle(r, cells)

	if cfg.ColorArity == 2 {
		for attempt := 1; attempt < maxGenAttempts && sameArrangement(cells, prev); attempt++ {
			shuffle(r, cells)
		}
	}

	return cells
}

// sameArrangement reports element-wise equality of two arrangements.
func sameArrangement(a, b []Color) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
