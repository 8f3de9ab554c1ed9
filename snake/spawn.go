package snake

import (
	"errors"
	"fmt"
)

var (
	ErrBoardSize      = errors.New("board size must be at least 1")
	ErrSpawnIndex     = errors.New("spawn index leaves no room for the initial body")
	ErrBoardSaturated = errors.New("no free cell left on the board")
)

// place 拒绝采样选出不在蛇身上的格子, 其他实体可以重叠
func (w *WorldMap) place() int {
	total := w.size * w.size
	for attempt := 0; attempt < total*4; attempt++ {
		idx := w.rnd.Uint(total)
		if !w.body.contains(idx, 0) {
			return idx
		}
	}

	// 随机数一直落在蛇身上, 从随机起点线性扫描
	start := w.rnd.Uint(total)
	for i := 0; i < total; i++ {
		idx := (start + i) % total
		if !w.body.contains(idx, 0) {
			return idx
		}
	}
	panic(fmt.Errorf("place on %dx%d board with snake length %d: %w", w.size, w.size, w.body.Len(), ErrBoardSaturated))
}

// roomForBonus is the headroom rule shared by super bonus and moving target.
func (w *WorldMap) roomForBonus() bool {
	return w.body.Len() < w.size*w.size-w.size
}

func (w *WorldMap) roomForTrap() bool {
	return w.body.Len() >= 3 && w.body.Len() <= w.size*w.size-10
}
