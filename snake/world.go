// 贪食蛇世界的状态与每个回合的更新
package snake

import "fmt"

type Status int

const (
	Paused Status = iota
	Played
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Played:
		return "played"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "paused"
	}
}

// Terminal reports whether no further tick can change the game.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

// Reason 失败原因, 只有 Lost 时才会设置
type Reason int

const (
	StillAlive Reason = iota
	Eaten
	NotActive
	Suicide
)

func (r Reason) String() string {
	switch r {
	case Eaten:
		return "eaten"
	case NotActive:
		return "not_active"
	case Suicide:
		return "suicide"
	default:
		return "still_alive"
	}
}

const (
	// stepsRefill is how many turns a reward or an empty budget buys back.
	stepsRefill = 7
	// starvationPeriod 每隔多少回合检查一次是否太久没吃东西
	starvationPeriod = 100
)

type WorldMap struct {
	size int
	rnd  RandomSource

	body       *Body
	reward     RewardCell
	trap       Slot[TrapCell]
	superBonus Slot[SuperBonusCell]
	target     Slot[MovingTarget]

	trapSteps           int
	superBonusSteps     int
	stepsToMovingTarget int
	steps               int

	points                int
	bonusTotal            int
	consumedRewards       int
	consumedTraps         int
	consumedSuperBonuses  int
	consumedMovingTargets int
	eaten                 int
	maxLength             int
	lifeSteps             int

	status Status
	reason Reason
}

type options struct {
	rnd     RandomSource
	clock   Clock
	heading Direction
}

type Option func(*options)

// WithRandom replaces the default PCG source.
func WithRandom(r RandomSource) Option {
	return func(o *options) { o.rnd = r }
}

func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithHeading 初始方向, 默认向上
func WithHeading(d Direction) Option {
	return func(o *options) { o.heading = d }
}

// New builds a paused world on a size×size board with the snake laid out on
// spawn, spawn-1 and spawn-2.
func New(size, spawn int, opts ...Option) (*WorldMap, error) {
	if size < 1 {
		return nil, fmt.Errorf("new world with size %d: %w", size, ErrBoardSize)
	}
	if spawn < 2 || spawn >= size*size {
		return nil, fmt.Errorf("new world with spawn %d on %dx%d board: %w", spawn, size, size, ErrSpawnIndex)
	}

	o := options{clock: SystemClock(), heading: Up}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rnd == nil {
		o.rnd = NewPCGSource(uint64(o.clock.Now()))
	}

	w := &WorldMap{
		size: size,
		rnd:  o.rnd,
		body: newBody(spawn, o.heading),
	}
	jitter := o.clock.Now() % size
	if jitter < 0 {
		jitter = -jitter
	}
	w.trapSteps = w.trapDelay()
	w.superBonusSteps = w.superBonusDelay() + jitter
	w.stepsToMovingTarget = w.movingTargetDelay() + jitter
	w.steps = 2*size + stepsRefill
	w.maxLength = w.body.Len()
	w.spawnReward()
	return w, nil
}

// StartGame 暂停状态转为进行中
func (w *WorldMap) StartGame() {
	if w.status == Paused {
		w.status = Played
	}
}

// ChangeDirection queues a turn for the next tick. A turn back into the neck
// is ignored, as is any input once the game is over.
func (w *WorldMap) ChangeDirection(d Direction) bool {
	if w.status.Terminal() {
		return false
	}
	return w.body.SetDirection(d, w.size)
}

// lose keeps the first terminal outcome of a tick.
func (w *WorldMap) lose(reason Reason) {
	if w.status.Terminal() {
		return
	}
	w.status = Lost
	w.reason = reason
}

func (w *WorldMap) Size() int { return w.size }

// Cells returns the snake body, head first.
func (w *WorldMap) Cells() []int { return w.body.Cells() }

func (w *WorldMap) SnakeLength() int { return w.body.Len() }

func (w *WorldMap) SnakeHead() int { return w.body.Head() }

func (w *WorldMap) Heading() Direction { return w.body.Heading() }

func (w *WorldMap) Reward() RewardCell { return w.reward }

func (w *WorldMap) Trap() (TrapCell, bool) { return w.trap.Get() }

func (w *WorldMap) SuperBonus() (SuperBonusCell, bool) { return w.superBonus.Get() }

func (w *WorldMap) MovingTarget() (MovingTarget, bool) { return w.target.Get() }

func (w *WorldMap) Points() int { return w.points }

func (w *WorldMap) BonusTotal() int { return w.bonusTotal }

// Steps 剩余回合预算
func (w *WorldMap) Steps() int { return w.steps }

func (w *WorldMap) Status() Status { return w.status }

func (w *WorldMap) Reason() Reason { return w.reason }

func (w *WorldMap) StatusText() string {
	switch w.status {
	case Played:
		return "Playing"
	case Won:
		return "You won!"
	case Lost:
		return "You lost!"
	default:
		return "Paused"
	}
}

func (w *WorldMap) ReasonText() string {
	switch w.reason {
	case Eaten:
		return "Eaten by the moving target"
	case NotActive:
		return "Starved: too few items eaten"
	case Suicide:
		return "Bit your own tail"
	default:
		return "Still alive"
	}
}

func (w *WorldMap) consumed() int {
	return w.consumedRewards + w.consumedTraps + w.consumedSuperBonuses + w.consumedMovingTargets
}
