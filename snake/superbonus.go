package snake

const superBonusLife = 5

type SuperBonusCell struct {
	Index int
	Life  int
}

// superBonusValue is computed when the bonus is eaten, never stored.
func (w *WorldMap) superBonusValue() int {
	return 300 + 10*w.body.Len()
}

func (w *WorldMap) superBonusDelay() int {
	return w.rnd.Uint(w.size*2) + 4
}

func (w *WorldMap) clearSuperBonus() {
	w.superBonus.Clear()
	w.superBonusSteps = w.superBonusDelay()
}

func (w *WorldMap) tickSuperBonus() {
	if bonus := w.superBonus.Ptr(); bonus != nil {
		if bonus.Index == w.body.Head() {
			value := w.superBonusValue()
			w.points += value
			w.bonusTotal += value
			w.consumedSuperBonuses++
			w.clearSuperBonus()
		} else {
			bonus.Life--
			// 倒计时不能比剩余寿命短
			if w.superBonusSteps < bonus.Life {
				w.superBonusSteps = bonus.Life
			}
			if bonus.Life <= 0 {
				w.clearSuperBonus()
			}
		}
	}

	if w.superBonusSteps > 0 {
		w.superBonusSteps--
	}
	if w.superBonusSteps > 0 || w.superBonus.Present() {
		return
	}
	w.superBonusSteps = w.superBonusDelay()
	if !w.roomForBonus() {
		return
	}
	w.superBonus.Set(SuperBonusCell{
		Index: w.place(),
		Life:  superBonusLife,
	})
}
