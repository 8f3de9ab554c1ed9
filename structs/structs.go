package structs

import "time"

// Cell 描述地图上的一个实体。
type Cell struct {
	Index  int    `json:"index"`            // 线性下标
	Row    int    `json:"row"`              // 行
	Col    int    `json:"col"`              // 列
	Tier   string `json:"tier,omitempty"`   // 颜色等级（奖励、陷阱）
	Points int    `json:"points,omitempty"` // 分数
	Life   int    `json:"life,omitempty"`   // 剩余寿命
}

// Stats 一局游戏的统计信息。
type Stats struct {
	ConsumedRewards       int `json:"consumed_rewards"`
	ConsumedTraps         int `json:"consumed_traps"`
	ConsumedSuperBonuses  int `json:"consumed_super_bonuses"`
	ConsumedMovingTargets int `json:"consumed_moving_targets"`
	MaxSnakeLength        int `json:"max_snake_length"`
	LifeSteps             int `json:"life_steps"`
	BonusTotal            int `json:"bonus_total"`
	EatenByEnemy          int `json:"eaten_by_enemy"`
	TotalPoints           int `json:"total_points"`
}

// Snapshot 渲染和接口返回用的只读视图。
type Snapshot struct {
	Size         int    `json:"size"`                    // 地图边长
	Snake        []Cell `json:"snake"`                   // 蛇身，蛇头在前
	Direction    string `json:"direction"`               // 当前方向
	Reward       Cell   `json:"reward"`                  // 奖励，总是存在
	Trap         *Cell  `json:"trap,omitempty"`          // 陷阱
	SuperBonus   *Cell  `json:"super_bonus,omitempty"`   // 超级奖励
	MovingTarget *Cell  `json:"moving_target,omitempty"` // 移动目标
	Points       int    `json:"points"`                  // 总分
	Steps        int    `json:"steps"`                   // 剩余回合预算
	Status       string `json:"status"`                  // paused/played/won/lost
	StatusText   string `json:"status_text"`
	Reason       string `json:"reason"`
	ReasonText   string `json:"reason_text"`
	Stats        Stats  `json:"stats"`
}

// Record 描述一局已经结束的游戏，写入数据库用于排行榜。
type Record struct {
	SessionID  string    `json:"session_id"`  // 会话标识
	Size       int       `json:"size"`        // 地图边长
	Status     string    `json:"status"`      // won/lost
	Reason     string    `json:"reason"`      // 失败原因
	Points     int       `json:"points"`      // 最终分数
	Stats      Stats     `json:"stats"`       // 统计信息
	FinishedAt time.Time `json:"finished_at"` // 结束时间
}
