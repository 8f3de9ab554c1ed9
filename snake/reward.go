package snake

// Tier 奖励的等级, 陷阱也用它作为颜色标签
type Tier int

const (
	Yellow Tier = iota
	Red
	Blue
	Black
)

var tierNames = [...]string{"yellow", "red", "blue", "black"}

func (t Tier) String() string {
	if t < Yellow || t > Black {
		return "unknown"
	}
	return tierNames[t]
}

type RewardCell struct {
	Index  int
	Tier   Tier
	Points int
}

// rewardFor returns the tier and points of a reward spawned at snake length l.
func rewardFor(l int) (Tier, int) {
	switch {
	case l >= 19:
		return Black, 5*l + 55
	case l >= 13:
		return Blue, 4 * l
	case l >= 8:
		return Red, 3 * l
	default:
		return Yellow, l
	}
}

func (w *WorldMap) spawnReward() {
	tier, points := rewardFor(w.body.Len())
	w.reward = RewardCell{
		Index:  w.place(),
		Tier:   tier,
		Points: points,
	}
}

// reducePoints 回合预算用完, 奖励减少三分之一
func (w *WorldMap) reducePoints() {
	w.reward.Points -= w.reward.Points / 3
	w.steps += stepsRefill
}

func (w *WorldMap) consumeReward() {
	if w.steps > stepsRefill {
		w.points += w.steps + 1
		w.bonusTotal += w.steps + 1
	}
	w.steps += stepsRefill
	w.points += w.reward.Points
	w.consumedRewards++

	w.body.Grow()
	if w.body.Len() >= w.size*w.size {
		if w.status == Played {
			w.status = Won
		}
		return
	}
	w.spawnReward()
}
