package fractal

// bucket assigns r to every iteration count up to and including max.
type bucket struct {
	max int
	r   rune
}

// buckets is ordered by max. Counts above the last bound map to overflow.
var buckets = [...]bucket{
	{2, ' '},
	{5, '.'},
	{10, '•'},
	{30, '*'},
	{100, '+'},
	{200, 'x'},
	{400, '$'},
	{700, '#'},
}

const overflow = '%'

// Symbol returns the display character for an escape time.
func Symbol(iters int) rune {
	for _, b := range buckets {
		if iters <= b.max {
			return b.r
		}
	}
	return overflow
}

// Palette returns the characters used by Symbol, from the fastest escaping
// points to the slowest.
func Palette() []rune {
	p := make([]rune, 0, len(buckets)+1)
	for _, b := range buckets {
		p = append(p, b.r)
	}
	return append(p, overflow)
}
