package snake

// Update advances the world by one tick. The order of the steps below decides
// every tie (head vs. stale tail, target vs. freshly moved body) and must not
// be rearranged.
func (w *WorldMap) Update() {
	if l := w.body.Len(); l > w.maxLength {
		w.maxLength = l
	}
	w.checkStarvation()

	if w.status != Played {
		return
	}

	w.lifeSteps++
	w.steps--

	next := w.body.nextHead(w.size)
	if mt, ok := w.target.Get(); ok && mt.Index == next {
		w.consumeMovingTarget()
	}
	w.body.Advance(next)

	w.tickSuperBonus()
	w.tickMovingTarget()

	if w.steps == 0 {
		w.reducePoints()
	}

	// 蛇头撞到自己
	if w.body.contains(w.body.Head(), 1) {
		w.lose(Suicide)
	}

	// 移动目标咬到蛇身
	if mt, ok := w.target.Get(); ok {
		if at := w.body.indexOf(mt.Index, 1); at > 0 {
			w.biteSnake(at)
		}
	}

	if w.reward.Index == w.body.Head() {
		w.consumeReward()
	}

	w.tickTrap()
	w.crossConsume()
}

// checkStarvation ends a game that has eaten too little over the last stretch.
func (w *WorldMap) checkStarvation() {
	if w.status.Terminal() || w.lifeSteps == 0 || w.lifeSteps%starvationPeriod != 0 {
		return
	}
	if w.consumed() < w.lifeSteps/20 {
		w.lose(NotActive)
	}
}
