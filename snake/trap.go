package snake

type TrapCell struct {
	Index int
	Life  int
	Tier  Tier
}

func (w *WorldMap) trapDelay() int {
	return w.rnd.Uint(w.size) + 2
}

// tickTrap decays the trap, lets the head consume it and runs the respawn
// countdown.
func (w *WorldMap) tickTrap() {
	if trap := w.trap.Ptr(); trap != nil {
		trap.Life--
		if trap.Life <= 0 {
			w.trap.Clear()
		}
	}
	if trap, ok := w.trap.Get(); ok && trap.Index == w.body.Head() {
		w.consumeTrap()
	}

	if w.trapSteps > 0 {
		w.trapSteps--
	}
	if w.trapSteps > 0 || w.trap.Present() {
		return
	}
	if !w.roomForTrap() {
		w.trapSteps = w.trapDelay()
		return
	}
	life := w.rnd.Uint(10) + 2
	w.trap.Set(TrapCell{
		Index: w.place(),
		Life:  life,
		Tier:  Tier(w.rnd.Uint(4)),
	})
	w.trapSteps = life + w.rnd.Uint(w.size)
}

// consumeTrap 每吃到第 5 个陷阱返还奖励总分, 否则分数减半
func (w *WorldMap) consumeTrap() {
	w.consumedTraps++
	if w.consumedTraps%5 == 0 {
		w.points += w.bonusTotal
	} else {
		w.points /= 2
	}
	w.body.ShrinkTo(w.body.Len() - 1)
	w.trap.Clear()
}
