package snake

const (
	movingTargetLife   = 50
	movingTargetPoints = 500
)

// MovingTarget wanders the board on its own cadence, independent of the
// player's input.
type MovingTarget struct {
	Index     int
	Direction Direction
	Points    int
	Life      int
	decide    int
	move      int
}

// Value 被蛇吃掉时的分数
func (mt MovingTarget) Value() int {
	return mt.Points + 15*mt.Life
}

func (w *WorldMap) movingTargetDelay() int {
	return w.rnd.Uint(w.size*4) + 5
}

func (w *WorldMap) clearMovingTarget() {
	w.target.Clear()
	w.stepsToMovingTarget = w.movingTargetDelay()
}

func (w *WorldMap) spawnMovingTarget() {
	w.target.Set(MovingTarget{
		Index:     w.place(),
		Direction: Direction(w.rnd.Uint(4)),
		Points:    movingTargetPoints,
		Life:      movingTargetLife,
		decide:    w.rnd.Uint(3),
		move:      w.rnd.Uint(2) + 2,
	})
}

func (w *WorldMap) tickMovingTarget() {
	mt := w.target.Ptr()
	if mt == nil {
		if w.stepsToMovingTarget > 0 {
			w.stepsToMovingTarget--
		}
		if w.stepsToMovingTarget > 0 {
			return
		}
		if !w.roomForBonus() {
			w.stepsToMovingTarget = w.movingTargetDelay()
			return
		}
		w.spawnMovingTarget()
		return
	}

	mt.Life--
	if mt.Life <= 0 {
		w.clearMovingTarget()
		return
	}

	if mt.decide > 0 {
		mt.decide--
		return
	}
	mt.decide = w.rnd.Uint(3)
	// 60% 的概率换方向
	if w.rnd.Uint(10) <= 5 {
		mt.Direction = Direction(w.rnd.Uint(4))
	}
	if mt.move > 0 {
		mt.move--
		return
	}
	mt.Index = Neighbor(mt.Index, mt.Direction, w.size)
	mt.move = w.rnd.Uint(2) + 2
}

func (w *WorldMap) consumeMovingTarget() {
	mt, _ := w.target.Get()
	w.body.Grow()
	w.points += mt.Value()
	w.bonusTotal += mt.Value()
	w.consumedMovingTargets++
	w.clearMovingTarget()
}

// biteSnake handles the target landing on a body cell other than the head.
func (w *WorldMap) biteSnake(at int) {
	mt := w.target.Ptr()
	w.points = 0
	w.eaten++
	mt.Points += 1500
	mt.Life += 30

	cut := max(at, 4)
	if cut <= 4 {
		w.lose(Eaten)
		return
	}
	w.body.ShrinkTo(cut)
}

// crossConsume applies the target's own interactions with the other entities.
func (w *WorldMap) crossConsume() {
	mt := w.target.Ptr()
	if mt == nil {
		return
	}

	if trap, ok := w.trap.Get(); ok && trap.Index == mt.Index {
		if mt.Life < 20 {
			w.clearMovingTarget()
			return
		}
		mt.Points = 0
		mt.Life = 10
	}
	if w.reward.Index == mt.Index {
		mt.Life += 10
		mt.Points += 100
		w.spawnReward()
	}
	if bonus, ok := w.superBonus.Get(); ok && bonus.Index == mt.Index {
		mt.Life += 15
		mt.Points += w.superBonusValue() + 300
		w.clearSuperBonus()
		w.spawnReward()
	}
}
