package snake

// Direction 移动方向
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

var directionNames = [...]string{"up", "right", "down", "left"}

func (d Direction) String() string {
	if d < Up || d > Left {
		return "unknown"
	}
	return directionNames[d]
}

// ParseDirection 解析 "up" "down" "left" "right"
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), true
		}
	}
	return Up, false
}

// RowCol 线性下标转换为行列
func RowCol(idx, size int) (int, int) {
	return idx / size, idx % size
}

// IndexOf 行列转换为线性下标
func IndexOf(row, col, size int) int {
	return row*size + col
}

// Neighbor returns the cell next to idx in direction d on a size×size torus.
// Left/Right stay in the same row, Up/Down stay in the same column.
func Neighbor(idx int, d Direction, size int) int {
	row, col := RowCol(idx, size)
	switch d {
	case Up:
		row = (row + size - 1) % size
	case Down:
		row = (row + 1) % size
	case Left:
		col = (col + size - 1) % size
	case Right:
		col = (col + 1) % size
	}
	return IndexOf(row, col, size)
}
