package config

import (
	"encoding/json"
	"os"
	"sync"
)

// AppConfig holds the structure of the configuration
type AppConfig struct {
	SelfPath     string `json:"selfpath"`
	Port         string `json:"port"`
	Blocksize    int    `json:"blocksize"`
	BoardSize    int    `json:"boardsize"`
	TickInterval int    `json:"tickinterval"` // 毫秒
	DBPath       string `json:"dbpath"`
	SpriteDir    string `json:"spritedir"`
}

var (
	instance *AppConfig
	once     sync.Once
)

func defaults() *AppConfig {
	return &AppConfig{
		SelfPath:     "http://www.example.com",
		Port:         "38870",
		Blocksize:    20,
		BoardSize:    8,
		TickInterval: 500,
		DBPath:       "game.db",
		SpriteDir:    "./sprites",
	}
}

// LoadConfig initializes and returns the instance of AppConfig
func LoadConfig(filePath string) *AppConfig {
	once.Do(func() {
		instance = defaults()
		// Load the config file if it exists, otherwise create one
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			saveConfig(filePath)
		} else {
			loadConfig(filePath)
		}
	})
	return instance
}

// loadConfig loads the settings from the file
func loadConfig(filePath string) {
	file, err := os.Open(filePath)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(instance); err != nil {
		panic(err)
	}
	// 旧的配置文件里没有的字段保持默认值
	d := defaults()
	if instance.BoardSize < 3 {
		instance.BoardSize = d.BoardSize
	}
	if instance.TickInterval <= 0 {
		instance.TickInterval = d.TickInterval
	}
	if instance.DBPath == "" {
		instance.DBPath = d.DBPath
	}
	if instance.SpriteDir == "" {
		instance.SpriteDir = d.SpriteDir
	}
}

// saveConfig saves the current settings to the file
func saveConfig(filePath string) {
	file, err := os.Create(filePath)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(instance); err != nil {
		panic(err)
	}
}

// GetConfigValue returns the value of the configuration by key
func GetConfigValue(key string) interface{} {
	switch key {
	case "selfpath":
		return instance.SelfPath
	case "port":
		return instance.Port
	case "blocksize":
		return instance.Blocksize
	case "boardsize":
		return instance.BoardSize
	case "tickinterval":
		return instance.TickInterval
	case "dbpath":
		return instance.DBPath
	case "spritedir":
		return instance.SpriteDir
	default:
		return ""
	}
}
