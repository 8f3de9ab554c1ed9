package api

import (
	"database/sql"
	"log"
	"sync"
	"time"

	"github.com/hoshinonyaruko/snake-world/snake"
	"github.com/hoshinonyaruko/snake-world/sqlite"
	"github.com/hoshinonyaruko/snake-world/structs"
)

// maxCatchUp 一次请求最多补跑的回合数
const maxCatchUp = 1000

// Session is one game hosted by the server. The world is only touched while
// mu is held.
type Session struct {
	mu          sync.Mutex
	ID          string
	Seed        string
	World       *snake.WorldMap
	Interval    time.Duration
	LastRefresh time.Time
	recorded    bool
}

// Sessions 所有进行中的游戏, 以会话 ID 为 key
type Sessions struct {
	mu    sync.RWMutex
	games map[string]*Session
	now   func() time.Time
}

func NewSessions() *Sessions {
	return &Sessions{
		games: make(map[string]*Session),
		now:   time.Now,
	}
}

func (ss *Sessions) Get(id string) (*Session, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	s, ok := ss.games[id]
	return s, ok
}

func (ss *Sessions) Put(s *Session) {
	ss.mu.Lock()
	ss.games[s.ID] = s
	ss.mu.Unlock()
}

func (ss *Sessions) Delete(id string) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	_, ok := ss.games[id]
	delete(ss.games, id)
	return ok
}

// catchUp runs the ticks that should have happened since the last refresh,
// the same way a frame driver would have called Update on a timer.
func (s *Session) catchUp(now time.Time) int {
	if s.World.Status() != snake.Played || s.Interval <= 0 {
		s.LastRefresh = now
		return 0
	}

	elapsed := now.Sub(s.LastRefresh)
	moveCount := int(elapsed / s.Interval)
	if moveCount <= 0 {
		return 0
	}
	if moveCount > maxCatchUp {
		moveCount = maxCatchUp
		s.LastRefresh = now
	} else {
		s.LastRefresh = s.LastRefresh.Add(time.Duration(moveCount) * s.Interval)
	}

	ran := 0
	for ; ran < moveCount && s.World.Status() == snake.Played; ran++ {
		s.World.Update()
	}
	return ran
}

// finish writes the result the first time the game reaches Won or Lost.
func (s *Session) finish(db *sql.DB, now time.Time) {
	if s.recorded || !s.World.Status().Terminal() {
		return
	}
	rec := &structs.Record{
		SessionID:  s.ID,
		Size:       s.World.Size(),
		Status:     s.World.Status().String(),
		Reason:     s.World.Reason().String(),
		Points:     s.World.Points(),
		Stats:      s.World.Stats(),
		FinishedAt: now,
	}
	if err := sqlite.SaveRecord(db, rec); err != nil {
		log.Printf("save result of %s failed: %v", s.ID, err)
		return
	}
	s.recorded = true
	log.Printf("game %s finished: %s (%s), points %d", s.ID, rec.Status, rec.Reason, rec.Points)
}
