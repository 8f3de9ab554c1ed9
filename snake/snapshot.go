package snake

import "github.com/hoshinonyaruko/snake-world/structs"

func (w *WorldMap) cell(idx int) structs.Cell {
	row, col := RowCol(idx, w.size)
	return structs.Cell{Index: idx, Row: row, Col: col}
}

// Stats 汇总统计
func (w *WorldMap) Stats() structs.Stats {
	return structs.Stats{
		ConsumedRewards:       w.consumedRewards,
		ConsumedTraps:         w.consumedTraps,
		ConsumedSuperBonuses:  w.consumedSuperBonuses,
		ConsumedMovingTargets: w.consumedMovingTargets,
		MaxSnakeLength:        w.maxLength,
		LifeSteps:             w.lifeSteps,
		BonusTotal:            w.bonusTotal,
		EatenByEnemy:          w.eaten,
		TotalPoints:           w.points,
	}
}

// Snapshot copies everything a renderer needs out of the world.
func (w *WorldMap) Snapshot() structs.Snapshot {
	s := structs.Snapshot{
		Size:       w.size,
		Direction:  w.body.Heading().String(),
		Points:     w.points,
		Steps:      w.steps,
		Status:     w.status.String(),
		StatusText: w.StatusText(),
		Reason:     w.reason.String(),
		ReasonText: w.ReasonText(),
		Stats:      w.Stats(),
	}
	for _, idx := range w.body.cells {
		s.Snake = append(s.Snake, w.cell(idx))
	}

	s.Reward = w.cell(w.reward.Index)
	s.Reward.Tier = w.reward.Tier.String()
	s.Reward.Points = w.reward.Points

	if trap, ok := w.trap.Get(); ok {
		c := w.cell(trap.Index)
		c.Tier = trap.Tier.String()
		c.Life = trap.Life
		s.Trap = &c
	}
	if bonus, ok := w.superBonus.Get(); ok {
		c := w.cell(bonus.Index)
		c.Points = w.superBonusValue()
		c.Life = bonus.Life
		s.SuperBonus = &c
	}
	if mt, ok := w.target.Get(); ok {
		c := w.cell(mt.Index)
		c.Points = mt.Value()
		c.Life = mt.Life
		s.MovingTarget = &c
	}
	return s
}
