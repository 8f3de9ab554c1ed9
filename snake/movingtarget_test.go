package snake

import "testing"

func TestMovingTargetValue(t *testing.T) {
	mt := MovingTarget{Points: 500, Life: 50}
	if got := mt.Value(); got != 1250 {
		t.Errorf("Value() = %d, want 1250", got)
	}
}

func TestMovingTargetAI(t *testing.T) {
	tests := []struct {
		name      string
		start     MovingTarget
		rnd       []int
		wantIndex int
		wantDir   Direction
		wantDec   int
		wantMove  int
	}{
		{
			name:      "decision pending only counts down",
			start:     MovingTarget{Index: 0, Direction: Right, Life: 50, decide: 2, move: 0},
			wantIndex: 0,
			wantDir:   Right,
			wantDec:   1,
			wantMove:  0,
		},
		{
			name:      "decision and move due steps forward",
			start:     MovingTarget{Index: 0, Direction: Right, Life: 50},
			rnd:       []int{1, 9, 0},
			wantIndex: 1,
			wantDir:   Right,
			wantDec:   1,
			wantMove:  2,
		},
		{
			name:      "re-roll without moving",
			start:     MovingTarget{Index: 0, Direction: Right, Life: 50, move: 1},
			rnd:       []int{2, 3, 2},
			wantIndex: 0,
			wantDir:   Down,
			wantDec:   2,
			wantMove:  0,
		},
		{
			name:      "step wraps around the board",
			start:     MovingTarget{Index: 9, Direction: Right, Life: 50},
			rnd:       []int{0, 7, 1},
			wantIndex: 0,
			wantDir:   Right,
			wantDec:   0,
			wantMove:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 10, 50)
			w.rnd = &seqRandom{vals: tt.rnd}
			w.target.Set(tt.start)

			w.tickMovingTarget()

			mt, ok := w.MovingTarget()
			if !ok {
				t.Fatal("target disappeared")
			}
			if mt.Index != tt.wantIndex || mt.Direction != tt.wantDir {
				t.Errorf("target at %d heading %v, want %d heading %v", mt.Index, mt.Direction, tt.wantIndex, tt.wantDir)
			}
			if mt.decide != tt.wantDec || mt.move != tt.wantMove {
				t.Errorf("counters = %d/%d, want %d/%d", mt.decide, mt.move, tt.wantDec, tt.wantMove)
			}
			if mt.Life != tt.start.Life-1 {
				t.Errorf("life = %d, want %d", mt.Life, tt.start.Life-1)
			}
		})
	}
}

func TestMovingTargetExpires(t *testing.T) {
	w := newTestWorld(t, 10, 50)
	w.target.Set(MovingTarget{Index: 0, Life: 1})

	w.tickMovingTarget()

	if _, ok := w.MovingTarget(); ok {
		t.Error("target should expire at life 0")
	}
	if w.stepsToMovingTarget < 5 {
		t.Errorf("respawn countdown = %d, want >= 5", w.stepsToMovingTarget)
	}
}

func TestMovingTargetSpawn(t *testing.T) {
	w := newTestWorld(t, 10, 50)
	w.stepsToMovingTarget = 1

	w.tickMovingTarget()

	mt, ok := w.MovingTarget()
	if !ok {
		t.Fatal("target should spawn when the countdown runs out")
	}
	if mt.Life != movingTargetLife || mt.Points != movingTargetPoints {
		t.Errorf("target = %+v", mt)
	}
	if mt.decide < 0 || mt.decide > 2 || mt.move < 2 || mt.move > 3 {
		t.Errorf("cadence counters out of range: %d/%d", mt.decide, mt.move)
	}
	if w.body.contains(mt.Index, 0) {
		t.Errorf("target spawned on the snake at %d", mt.Index)
	}
}

func TestConsumeMovingTarget(t *testing.T) {
	w := newTestWorld(t, 5, 12)
	quiet(w)
	w.reward = RewardCell{Index: 24, Points: 3}
	w.target.Set(MovingTarget{Index: 7, Points: 500, Life: 50, decide: 2})
	w.StartGame()

	w.Update()

	if w.Points() != 1250 || w.BonusTotal() != 1250 {
		t.Errorf("points/bonus = %d/%d, want 1250/1250", w.Points(), w.BonusTotal())
	}
	if got := w.Cells(); !equalCells(got, []int{7, 12, 11, 10}) {
		t.Errorf("cells = %v, want [7 12 11 10]", got)
	}
	if _, ok := w.MovingTarget(); ok {
		t.Error("target should be consumed")
	}
	if w.Stats().ConsumedMovingTargets != 1 {
		t.Errorf("consumed = %d, want 1", w.Stats().ConsumedMovingTargets)
	}
}

func TestBiteTruncatesSnake(t *testing.T) {
	w := newTestWorld(t, 10, 50)
	w.body.cells = []int{50, 49, 48, 47, 46, 45, 44, 43}
	w.points = 900
	w.target.Set(MovingTarget{Index: 44, Points: 500, Life: 50})
	w.status = Played

	w.biteSnake(6)

	if w.body.Len() != 6 {
		t.Errorf("length = %d, want 6", w.body.Len())
	}
	if w.points != 0 || w.eaten != 1 {
		t.Errorf("points/eaten = %d/%d, want 0/1", w.points, w.eaten)
	}
	mt, _ := w.MovingTarget()
	if mt.Points != 2000 || mt.Life != 80 {
		t.Errorf("target = %d points %d life, want 2000/80", mt.Points, mt.Life)
	}
	if w.status != Played {
		t.Errorf("status = %v, want played", w.status)
	}
}

func TestBiteNearHeadKills(t *testing.T) {
	w := newTestWorld(t, 10, 50)
	w.body.cells = []int{50, 49, 48, 47, 46, 45}
	w.target.Set(MovingTarget{Index: 47, Points: 500, Life: 50})
	w.status = Played

	w.biteSnake(3)

	if w.Status() != Lost || w.Reason() != Eaten {
		t.Errorf("status/reason = %v/%v, want lost/eaten", w.Status(), w.Reason())
	}
}

func TestBiteDuringUpdate(t *testing.T) {
	w := newTestWorld(t, 10, 50)
	quiet(w)
	w.reward = RewardCell{Index: 99, Points: 3}
	// 目标不会在这一回合移动, 蛇移动后 49 变成第三节
	w.target.Set(MovingTarget{Index: 49, Points: 500, Life: 50, decide: 2})
	w.StartGame()

	w.Update()

	if w.Status() != Lost || w.Reason() != Eaten {
		t.Errorf("status/reason = %v/%v, want lost/eaten", w.Status(), w.Reason())
	}
	if w.Stats().EatenByEnemy != 1 {
		t.Errorf("eaten = %d, want 1", w.Stats().EatenByEnemy)
	}
}

func TestCrossConsume(t *testing.T) {
	t.Run("weak target dies on a trap", func(t *testing.T) {
		w := newTestWorld(t, 10, 50)
		w.trap.Set(TrapCell{Index: 5, Life: 3})
		w.target.Set(MovingTarget{Index: 5, Points: 500, Life: 15})

		w.crossConsume()

		if _, ok := w.MovingTarget(); ok {
			t.Error("target should be removed")
		}
		if _, ok := w.Trap(); !ok {
			t.Error("trap stays in place")
		}
	})

	t.Run("strong target is drained by a trap", func(t *testing.T) {
		w := newTestWorld(t, 10, 50)
		w.trap.Set(TrapCell{Index: 5, Life: 3})
		w.target.Set(MovingTarget{Index: 5, Points: 500, Life: 40})

		w.crossConsume()

		mt, ok := w.MovingTarget()
		if !ok || mt.Points != 0 || mt.Life != 10 {
			t.Errorf("target = %+v, %v; want 0 points 10 life", mt, ok)
		}
	})

	t.Run("target eats the reward", func(t *testing.T) {
		w := newTestWorld(t, 10, 50)
		w.rnd = &seqRandom{vals: []int{42}}
		w.reward = RewardCell{Index: 5, Points: 3}
		w.target.Set(MovingTarget{Index: 5, Points: 500, Life: 40})

		w.crossConsume()

		mt, _ := w.MovingTarget()
		if mt.Points != 600 || mt.Life != 50 {
			t.Errorf("target = %d points %d life, want 600/50", mt.Points, mt.Life)
		}
		if w.Reward().Index != 42 {
			t.Errorf("reward should respawn at 42, got %d", w.Reward().Index)
		}
	})

	t.Run("target eats the super bonus", func(t *testing.T) {
		w := newTestWorld(t, 10, 50)
		w.rnd = &seqRandom{vals: []int{42}}
		w.reward = RewardCell{Index: 77, Points: 3}
		w.superBonus.Set(SuperBonusCell{Index: 5, Life: 3})
		w.target.Set(MovingTarget{Index: 5, Points: 500, Life: 40})

		w.crossConsume()

		mt, _ := w.MovingTarget()
		// 330 + 300
		if mt.Points != 500+630 || mt.Life != 55 {
			t.Errorf("target = %d points %d life, want 1130/55", mt.Points, mt.Life)
		}
		if _, ok := w.SuperBonus(); ok {
			t.Error("super bonus should be gone")
		}
		if w.Reward().Index != 42 {
			t.Errorf("reward should respawn at 42, got %d", w.Reward().Index)
		}
	})
}
