package api

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hoshinonyaruko/snake-world/snake"
	"github.com/hoshinonyaruko/snake-world/sqlite"
	_ "github.com/mattn/go-sqlite3"
)

const (
	minBoardSize = 3
	maxBoardSize = 64
	maxTicks     = 1000
)

// Settings 从配置中读取的服务参数
type Settings struct {
	SelfPath     string
	BlockSize    int
	BoardSize    int
	TickInterval time.Duration
	StaticDir    string
}

func InitDB(path string) *sql.DB {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Fatal(err)
	}

	sqlite.InitializeDatabase(db)

	return db
}

// RegisterRoutes wires every game endpoint onto router.
func RegisterRoutes(router *gin.Engine, db *sql.DB, sessions *Sessions, settings Settings) {
	// 新开一局
	router.GET("/new-game", NewGameHandler(db, sessions, settings))
	router.GET("/start-game", StartGameHandler(db, sessions))
	// 处理玩家改变方向
	router.GET("/update-direction", UpdateDirection(db, sessions))
	// 手动推进回合
	router.GET("/tick", TickHandler(db, sessions))
	router.GET("/state", StateHandler(db, sessions))
	// 渲染函数 返回静态地址
	router.GET("/render-map", RenderMapHandler(db, sessions, settings))
	router.GET("/leaderboard", LeaderboardHandler(db))
	// 删除地图
	router.GET("/delete-map", DeleteMapHandler(db, sessions))
}

// queryInt 读取整数参数, 缺省时返回 def
func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s must be an integer", key)
	}
	return v, nil
}

// withSession looks up the session named by ?id=, catches its world up to the
// current time and runs fn with the session locked.
func withSession(c *gin.Context, db *sql.DB, sessions *Sessions, fn func(s *Session)) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: id"})
		return
	}
	s, ok := sessions.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No game found with the specified id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := sessions.now()
	s.catchUp(now)
	fn(s)
	s.finish(db, now)
}

func NewGameHandler(db *sql.DB, sessions *Sessions, settings Settings) gin.HandlerFunc {
	return func(c *gin.Context) {
		size, err := queryInt(c, "size", settings.BoardSize)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if size < minBoardSize || size > maxBoardSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("size must be between %d and %d", minBoardSize, maxBoardSize)})
			return
		}

		id := uuid.New().String()
		now := sessions.now()
		seed := c.Query("seed")

		// 指定了种子就用可复现的随机源
		var rnd snake.RandomSource
		clock := snake.SystemClock()
		if seed != "" {
			rnd = snake.NewFairSource(seed, c.DefaultQuery("client", "snake-world"), 0)
			clock = snake.FixedClock(0)
		} else {
			rnd = snake.NewPCGSource(uint64(now.UnixNano()))
		}

		spawn, err := queryInt(c, "spawn", -1)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if spawn < 0 {
			spawn = rnd.Uint(size*size-2) + 2
		}

		world, err := snake.New(size, spawn, snake.WithRandom(rnd), snake.WithClock(clock))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := sqlite.InsertSession(db, id, size, seed, now); err != nil {
			fmt.Printf("err InsertSession :%v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create game"})
			return
		}

		sessions.Put(&Session{
			ID:          id,
			Seed:        seed,
			World:       world,
			Interval:    settings.TickInterval,
			LastRefresh: now,
		})
		log.Printf("game %s created: size %d spawn %d", id, size, spawn)

		c.JSON(http.StatusOK, gin.H{"id": id, "spawn": spawn, "state": world.Snapshot()})
	}
}

func StartGameHandler(db *sql.DB, sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		withSession(c, db, sessions, func(s *Session) {
			s.World.StartGame()
			s.LastRefresh = sessions.now()
			c.JSON(http.StatusOK, gin.H{"state": s.World.Snapshot()})
		})
	}
}

func UpdateDirection(db *sql.DB, sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		newDirection := c.Query("direction")
		d, ok := snake.ParseDirection(newDirection)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid direction '%s' provided", newDirection)})
			return
		}

		withSession(c, db, sessions, func(s *Session) {
			// 掉头会被忽略, accepted 为 false
			accepted := s.World.ChangeDirection(d)
			c.JSON(http.StatusOK, gin.H{"accepted": accepted, "direction": s.World.Heading().String()})
		})
	}
}

func TickHandler(db *sql.DB, sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := queryInt(c, "n", 1)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if n < 1 || n > maxTicks {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("n must be between 1 and %d", maxTicks)})
			return
		}

		withSession(c, db, sessions, func(s *Session) {
			for i := 0; i < n; i++ {
				s.World.Update()
			}
			s.LastRefresh = sessions.now()
			c.JSON(http.StatusOK, gin.H{"state": s.World.Snapshot()})
		})
	}
}

func StateHandler(db *sql.DB, sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		withSession(c, db, sessions, func(s *Session) {
			c.JSON(http.StatusOK, gin.H{"state": s.World.Snapshot()})
		})
	}
}

func RenderMapHandler(db *sql.DB, sessions *Sessions, settings Settings) gin.HandlerFunc {
	return func(c *gin.Context) {
		withSession(c, db, sessions, func(s *Session) {
			fileName := filepath.Join(settings.StaticDir, s.ID+".png")
			// 绘图
			if err := renderImageAndSave(s.World.Snapshot(), settings.BlockSize, fileName); err != nil {
				fmt.Printf("err renderImageAndSave :%v\n", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to render game map"})
				return
			}
			imageUrl := fmt.Sprintf("http://%s/static/%s.png", settings.SelfPath, s.ID)
			c.JSON(http.StatusOK, gin.H{"image_url": imageUrl, "status": s.World.StatusText()})
		})
	}
}

func LeaderboardHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := queryInt(c, "limit", 10)
		if err != nil || limit < 1 || limit > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		records, err := sqlite.TopRecords(db, limit)
		if err != nil {
			fmt.Printf("err TopRecords :%v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load leaderboard"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"records": records})
	}
}

func DeleteMapHandler(db *sql.DB, sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Query("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: id"})
			return
		}
		if !sessions.Delete(id) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No game found with the specified id"})
			return
		}
		if err := sqlite.DeleteSession(db, id); err != nil {
			fmt.Printf("err DeleteSession :%v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Game deleted successfully"})
	}
}
