package shape

// Shape is a square 0/1 matrix. Row 0 is the top of the shape and
// rotation assumes the matrix stays square.
type Shape [][]int

type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindS
	KindZ
	KindT
	KindO

	Count = 7
)

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindT:
		return "T"
	case KindO:
		return "O"
	default:
		return "?"
	}
}

// Fill is the board cell value identifying this kind. Zero is reserved
// for empty cells, so fills run 1-7.
func (k Kind) Fill() int {
	return int(k) + 1
}

var templates = map[Kind]Shape{
	KindI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0}},
	KindJ: {
		{1, 0, 0},
		{1, 1, 1},
		{0, 0, 0}},
	KindL: {
		{0, 0, 1},
		{1, 1, 1},
		{0, 0, 0}},
	KindS: {
		{0, 1, 1},
		{1, 1, 0},
		{0, 0, 0}},
	KindZ: {
		{1, 1, 0},
		{0, 1, 1},
		{0, 0, 0}},
	KindT: {
		{0, 1, 0},
		{1, 1, 1},
		{0, 0, 0}},
	KindO: {
		{1, 1},
		{1, 1}},
}

// New returns a working copy of the template for k. The copy is safe
// to mutate by rotation; templates themselves are never handed out.
func New(k Kind) Shape {
	t := templates[k]

	s := make(Shape, len(t))
	for y := range t {
		s[y] = make([]int, len(t[y]))
		copy(s[y], t[y])
	}

	return s
}

func (s Shape) Size() int {
	return len(s)
}

func (s Shape) Filled(x int, y int) bool {
	return s[y][x] != 0
}

// Rotated returns s rotated 90 degrees clockwise: transpose, then
// reverse each row.
func (s Shape) Rotated() Shape {
	n := len(s)

	r := make(Shape, n)
	for y := 0; y < n; y++ {
		r[y] = make([]int, n)
		for x := 0; x < n; x++ {
			r[y][x] = s[x][y]
		}
	}

	for y := 0; y < n; y++ {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			r[y][i], r[y][j] = r[y][j], r[y][i]
		}
	}

	return r
}

func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}

	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}

		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}

	return true
}
