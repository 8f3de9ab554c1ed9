package api

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/hoshinonyaruko/snake-world/memimg"
	"github.com/hoshinonyaruko/snake-world/structs"
)

// 网格背景缓存, key 为 "size_blocksize"
var drawingCache sync.Map

// 找不到贴图时使用的颜色
var tierColors = map[string]string{
	"yellow": "#f2c80f",
	"red":    "#d64541",
	"blue":   "#3a7bd5",
	"black":  "#222222",
}

const (
	headColor   = "#1e6b2e"
	bodyColor   = "#4caf50"
	bonusColor  = "#ff9800"
	targetColor = "#8e44ad"
)

func background(size, blockSize int) image.Image {
	cacheKey := fmt.Sprintf("%d_%d", size, blockSize)
	if cached, ok := drawingCache.Load(cacheKey); ok {
		return cached.(image.Image)
	}

	canvas := size * blockSize
	dc := gg.NewContext(canvas, canvas)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	renderGrid(dc, canvas, canvas, blockSize)

	img := dc.Image()
	drawingCache.Store(cacheKey, img)
	return img
}

func renderGrid(dc *gg.Context, width, height, blockSize int) {
	dc.SetRGB(0.9, 0.9, 0.9)
	for x := 0; x <= width; x += blockSize {
		dc.DrawLine(float64(x), 0, float64(x), float64(height))
		dc.Stroke()
	}
	for y := 0; y <= height; y += blockSize {
		dc.DrawLine(0, float64(y), float64(width), float64(y))
		dc.Stroke()
	}
}

// drawCell draws the sprite called name on cell c, or a plain square in
// fallback when the sprite is not loaded.
func drawCell(dc *gg.Context, c structs.Cell, blockSize int, name, fallback string, round bool) {
	x, y := c.Col*blockSize, c.Row*blockSize
	if img, found := memimg.GetSprite(memimg.SmallName(name)); found {
		dc.DrawImage(img, x, y)
		return
	}
	dc.SetHexColor(fallback)
	if round {
		half := float64(blockSize) / 2
		dc.DrawCircle(float64(x)+half, float64(y)+half, half*0.8)
	} else {
		dc.DrawRectangle(float64(x), float64(y), float64(blockSize), float64(blockSize))
	}
	dc.Fill()
}

// RenderSnapshot draws the board. Finished games come back blurred with the
// outcome written across the middle.
func RenderSnapshot(snap structs.Snapshot, blockSize int) image.Image {
	canvas := snap.Size * blockSize
	dc := gg.NewContext(canvas, canvas)
	dc.DrawImage(background(snap.Size, blockSize), 0, 0)

	drawCell(dc, snap.Reward, blockSize, "reward_"+snap.Reward.Tier+".png", tierColors[snap.Reward.Tier], false)
	if snap.Trap != nil {
		drawCell(dc, *snap.Trap, blockSize, "trap.png", tierColors[snap.Trap.Tier], true)
	}
	if snap.SuperBonus != nil {
		drawCell(dc, *snap.SuperBonus, blockSize, "bonus.png", bonusColor, true)
	}
	// 蛇尾先画, 蛇头压在最上面
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			drawCell(dc, snap.Snake[i], blockSize, "head.png", headColor, false)
		} else {
			drawCell(dc, snap.Snake[i], blockSize, "body.png", bodyColor, false)
		}
	}
	if snap.MovingTarget != nil {
		drawCell(dc, *snap.MovingTarget, blockSize, "target.png", targetColor, true)
	}

	dc.SetRGB(0, 0, 0)
	dc.DrawString(fmt.Sprintf("%d", snap.Points), 2, 12)

	if snap.Status != "won" && snap.Status != "lost" {
		return dc.Image()
	}

	// 游戏结束, 模糊背景并写上结果
	final := gg.NewContextForImage(imaging.Blur(dc.Image(), 3))
	final.SetRGB(0, 0, 0)
	half := float64(canvas) / 2
	final.DrawStringAnchored(snap.StatusText, half, half-8, 0.5, 0.5)
	if snap.Status == "lost" {
		final.DrawStringAnchored(snap.ReasonText, half, half+8, 0.5, 0.5)
	}
	return final.Image()
}

// renderImageAndSave 渲染地图并保存为图片
func renderImageAndSave(snap structs.Snapshot, blockSize int, fileName string) error {
	if err := os.MkdirAll(filepath.Dir(fileName), os.ModePerm); err != nil {
		return err
	}
	return imaging.Save(RenderSnapshot(snap, blockSize), fileName)
}
