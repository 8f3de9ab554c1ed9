package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hoshinonyaruko/snake-world/api"
	"github.com/hoshinonyaruko/snake-world/config"
	"github.com/hoshinonyaruko/snake-world/memimg"
)

func main() {
	// Initialize the configuration
	cfg := config.LoadConfig("./config.json")
	EnsureFoldersExist(cfg.SpriteDir, "static")

	blockSize := config.GetConfigValue("blocksize").(int)
	// 载入贴图到内存, 同时缩放到 blockSize
	if err := memimg.LoadSprites(cfg.SpriteDir, blockSize); err != nil {
		log.Printf("Failed to load sprites: %s", err)
	}
	// 检测并热更新到内存 加速绘图
	go func() {
		if err := memimg.WatchSprites(cfg.SpriteDir, nil); err != nil {
			log.Printf("Sprite watcher stopped: %s", err)
		}
	}()

	db := api.InitDB(config.GetConfigValue("dbpath").(string))
	defer db.Close()

	settings := api.Settings{
		SelfPath:     config.GetConfigValue("selfpath").(string),
		BlockSize:    blockSize,
		BoardSize:    config.GetConfigValue("boardsize").(int),
		TickInterval: time.Duration(config.GetConfigValue("tickinterval").(int)) * time.Millisecond,
		StaticDir:    "static",
	}

	router := gin.Default()
	api.RegisterRoutes(router, db, api.NewSessions(), settings)
	router.Static("/static", "./static") // 静态文件服务
	// 从配置单例读取端口 监听
	if err := router.Run(":" + config.GetConfigValue("port").(string)); err != nil {
		log.Fatalf("Server stopped: %s", err)
	}
}

// EnsureFoldersExist 检查并创建必需的文件夹
func EnsureFoldersExist(folders ...string) {
	for _, folder := range folders {
		if _, err := os.Stat(folder); os.IsNotExist(err) {
			// 文件夹不存在，尝试创建它
			err := os.MkdirAll(folder, 0755) // 使用0755权限以确保读写权限
			if err != nil {
				// 如果创建失败，则记录错误并可能退出程序
				log.Fatalf("Failed to create %s directory: %s", folder, err)
			}
			log.Printf("Created %s directory", folder)
		} else {
			// 文件夹已存在
			log.Printf("%s directory already exists", folder)
		}
	}
}
