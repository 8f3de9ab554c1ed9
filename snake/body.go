package snake

// Body 蛇身, 第一个格子是蛇头
type Body struct {
	cells     []int
	heading   Direction
	queued    int
	hasQueued bool
}

func newBody(spawn int, heading Direction) *Body {
	return &Body{
		cells:   []int{spawn, spawn - 1, spawn - 2},
		heading: heading,
	}
}

func (b *Body) Head() int {
	return b.cells[0]
}

func (b *Body) Len() int {
	return len(b.cells)
}

func (b *Body) Heading() Direction {
	return b.heading
}

// Cells returns a copy of the body, head first.
func (b *Body) Cells() []int {
	out := make([]int, len(b.cells))
	copy(out, b.cells)
	return out
}

// contains reports whether idx is one of the cells from position `from` on.
func (b *Body) contains(idx, from int) bool {
	return b.indexOf(idx, from) >= 0
}

func (b *Body) indexOf(idx, from int) int {
	for i := from; i < len(b.cells); i++ {
		if b.cells[i] == idx {
			return i
		}
	}
	return -1
}

// Advance 每个格子移动到前一个格子原来的位置, 然后写入新蛇头
func (b *Body) Advance(next int) {
	snapshot := b.Cells()
	for i := 1; i < len(b.cells); i++ {
		b.cells[i] = snapshot[i-1]
	}
	b.cells[0] = next
}

// Grow appends a copy of the neck so the tail extends on the next Advance.
func (b *Body) Grow() {
	if len(b.cells) < 2 {
		b.cells = append(b.cells, b.cells[0])
		return
	}
	b.cells = append(b.cells, b.cells[1])
}

// ShrinkTo 截断到前 n 个格子, 至少保留蛇头
func (b *Body) ShrinkTo(n int) {
	if n < 1 {
		n = 1
	}
	if n < len(b.cells) {
		b.cells = b.cells[:n]
	}
}

// SetDirection queues d for the next tick unless it would turn the head back
// into the neck. It reports whether the turn was accepted.
func (b *Body) SetDirection(d Direction, size int) bool {
	next := Neighbor(b.Head(), d, size)
	if len(b.cells) > 1 && next == b.cells[1] {
		return false
	}
	b.heading = d
	b.queued = next
	b.hasQueued = true
	return true
}

func (b *Body) nextHead(size int) int {
	if b.hasQueued {
		b.hasQueued = false
		return b.queued
	}
	return Neighbor(b.Head(), b.heading, size)
}
