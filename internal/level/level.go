// Package level defines the brick layout data consumed by the simulation at
// level-init time. A layout is a flattened grid of type codes; the simulation
// treats it as read-only.
package level

// Brick type codes used in level layouts.
const (
	CodeEmpty    = 0
	CodeStandard = 1
	CodeDurable  = 2
	CodeMimic    = 3
	CodeHealer   = 4
	CodeSpore    = 5
	CodePortal   = 6
	CodeTurret   = 7

	codeMax = CodeTurret
)

// Level is a playable brick layout. Layout holds rows*cols type codes in
// row-major order.
type Level struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Rows   int    `yaml:"rows"`
	Cols   int    `yaml:"cols"`
	Layout []int  `yaml:"layout"`
}

// CodeAt returns the type code at the given flattened index. An out-of-range
// index falls back to the first layout entry rather than failing; invalid
// codes degrade to empty.
func (l *Level) CodeAt(i int) int {
	if len(l.Layout) == 0 {
		return CodeEmpty
	}
	if i < 0 || i >= len(l.Layout) {
		i = 0
	}
	c := l.Layout[i]
	if c < CodeEmpty || c > codeMax {
		return CodeEmpty
	}
	return c
}

// Code returns the type code at (row, col).
func (l *Level) Code(row, col int) int {
	return l.CodeAt(row*l.Cols + col)
}

// Valid reports whether the layout length matches the declared dimensions.
func (l *Level) Valid() bool {
	return l.Rows > 0 && l.Cols > 0 && len(l.Layout) == l.Rows*l.Cols
}

// CountBricks returns the number of non-empty cells in the layout.
func (l *Level) CountBricks() int {
	n := 0
	for i := range l.Layout {
		if l.CodeAt(i) != CodeEmpty {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the level.
func (l *Level) Clone() *Level {
	c := *l
	c.Layout = make([]int, len(l.Layout))
	copy(c.Layout, l.Layout)
	return &c
}

// ParseASCII creates a Level from an ASCII map. Builtin levels use this form
// because grids of digits are hard to read in source.
//
// Characters:
//
//	'.' = empty        '#' = standard      'D' = durable
//	'M' = mimic        'H' = healer        'S' = spore
//	'O' = portal       'T' = turret
func ParseASCII(id, name string, lines []string) *Level {
	maxWidth := 0
	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}

	l := &Level{
		ID:     id,
		Name:   name,
		Rows:   len(lines),
		Cols:   maxWidth,
		Layout: make([]int, len(lines)*maxWidth),
	}

	for row, line := range lines {
		for col := 0; col < maxWidth; col++ {
			var ch byte = '.'
			if col < len(line) {
				ch = line[col]
			}

			code := CodeEmpty
			switch ch {
			case '#':
				code = CodeStandard
			case 'D', 'd':
				code = CodeDurable
			case 'M', 'm':
				code = CodeMimic
			case 'H', 'h':
				code = CodeHealer
			case 'S', 's':
				code = CodeSpore
			case 'O', 'o':
				code = CodePortal
			case 'T', 't':
				code = CodeTurret
			}
			l.Layout[row*maxWidth+col] = code
		}
	}

	return l
}
