package memimg

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fsnotify/fsnotify"
)

var (
	sprites      = make(map[string]image.Image)
	spritesMutex sync.RWMutex
	blockSize    = 20
)

// SmallName 缩放后的贴图文件名, reward_red.png -> reward_red_small.png
func SmallName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "_small" + ext
}

func isImage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// LoadSprites reads every image in directory into memory together with a
// copy scaled to size×size.
func LoadSprites(directory string, size int) error {
	spritesMutex.Lock()
	blockSize = size
	spritesMutex.Unlock()

	return filepath.Walk(directory, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !isImage(path) || strings.Contains(filepath.Base(path), "_small") {
			return nil
		}
		return storeSprite(path)
	})
}

func storeSprite(path string) error {
	img, err := LoadImage(path)
	if err != nil {
		return err
	}
	name := filepath.Base(path)

	spritesMutex.Lock()
	defer spritesMutex.Unlock()
	sprites[name] = img
	sprites[SmallName(name)] = imaging.Resize(img, blockSize, blockSize, imaging.Lanczos)
	return nil
}

func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// WatchSprites 监听贴图目录, 文件变化时热更新到内存, 直到 done 关闭
func WatchSprites(directory string, done <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(directory); err != nil {
		return err
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isImage(event.Name) || strings.Contains(filepath.Base(event.Name), "_small") {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				// 文件可能还没写完, 失败的话等下一次事件
				if err := storeSprite(event.Name); err == nil {
					log.Printf("sprite reloaded: %s", filepath.Base(event.Name))
				}
			}
			if event.Op&fsnotify.Remove == fsnotify.Remove {
				name := filepath.Base(event.Name)
				spritesMutex.Lock()
				delete(sprites, name)
				delete(sprites, SmallName(name))
				spritesMutex.Unlock()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Println("sprite watcher error:", err)
		case <-done:
			return nil
		}
	}
}

func GetSprite(name string) (image.Image, bool) {
	spritesMutex.RLock()
	img, exists := sprites[name]
	spritesMutex.RUnlock()
	return img, exists
}
