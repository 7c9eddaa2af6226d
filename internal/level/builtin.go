package level

// BuiltinLevels returns the campaign in play order. Later levels introduce
// the living brick types gradually: durables first, then healers and spores,
// then turrets, mimics and portals.
func BuiltinLevels() []*Level {
	return []*Level{
		// Level 1: plain rows, standard bricks only
		ParseASCII("opening", "Opening", []string{
			"####################",
			"####################",
			"####################",
			"####################",
		}),

		// Level 2: durable shell around a standard core
		ParseASCII("bunker", "Bunker", []string{
			"DDDDDDDDDDDDDDDDDDDD",
			"D..................D",
			"D.################.D",
			"D.################.D",
			"D..................D",
			"DDDDDDDDDDDDDDDDDDDD",
		}),

		// Level 3: healers tucked behind durable walls
		ParseASCII("infirmary", "Infirmary", []string{
			"####################",
			"##.DDD..DDDD..DDD.##",
			"##.DHD..DHHD..DHD.##",
			"##.DDD..DDDD..DDD.##",
			"####################",
		}),

		// Level 4: spore colonies that regrow cleared ground
		ParseASCII("overgrowth", "Overgrowth", []string{
			"....S..........S....",
			"..####........####..",
			"..#SS#........#SS#..",
			"..####........####..",
			"######DDDDDDDD######",
		}),

		// Level 5: turret battery behind a durable line
		ParseASCII("battery", "Battery", []string{
			"..T....T....T....T..",
			"DDDDDDDDDDDDDDDDDDDD",
			"####################",
			"####################",
			"....................",
			"..O..............O..",
		}),

		// Level 6: mimics hiding among standards
		ParseASCII("masquerade", "Masquerade", []string{
			"#M##M###M##M###M##M#",
			"####################",
			"#M###M####M###M####M",
			"####################",
			"##M####M####M####M##",
		}),

		// Level 7: everything at once
		ParseASCII("menagerie", "Menagerie", []string{
			"T.DDDD..HSSH..DDDD.T",
			"D##################D",
			"D#M##############M#D",
			"D######O....O######D",
			"D##################D",
			"DDDDDDDDDDDDDDDDDDDD",
		}),
	}
}

// installed holds custom levels appended after the builtins.
var installed []*Level

// Install appends custom levels to the campaign. Levels with a rows/cols
// shape other than the builtin grid are rejected.
func Install(levels []*Level) {
	builtin := BuiltinLevels()
	if len(builtin) == 0 {
		return
	}
	rows, cols := builtin[0].Rows, builtin[0].Cols
	for _, lv := range levels {
		if lv.Rows != rows || lv.Cols != cols {
			continue
		}
		installed = append(installed, lv)
	}
}

// Campaign returns all levels: builtins followed by installed customs.
func Campaign() []*Level {
	return append(BuiltinLevels(), installed...)
}

// Get returns the level at index, cloned so the caller may mutate it.
// An out-of-range index falls back to level 0.
func Get(index int) *Level {
	levels := Campaign()
	if index < 0 || index >= len(levels) {
		index = 0
	}
	return levels[index].Clone()
}

// GetWrapped returns the level at index modulo the campaign length.
// Endless mode uses this to cycle stages.
func GetWrapped(index int) *Level {
	levels := Campaign()
	if index < 0 {
		index = 0
	}
	return levels[index%len(levels)].Clone()
}

// Count returns the number of campaign levels.
func Count() int {
	return len(Campaign())
}
