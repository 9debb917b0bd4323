package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/gonewx/ironsky/pkg/components"
)

// drawExplosion 用逐渐扩大并淡出的圆环表示爆炸帧
// 半径取自当前帧尺寸和缩放，随帧序号增大
func drawExplosion(screen *ebiten.Image, anim *components.AnimationComponent) {
	if !anim.IsPlaying() {
		return
	}
	r, opacity, ok := explosionShape(anim)
	if !ok {
		return
	}
	x, y := float32(anim.Pos.X), float32(anim.Pos.Y)
	vector.DrawFilledCircle(screen, x, y, float32(r), fade(colornames.Orange, opacity*0.6), true)
	vector.StrokeCircle(screen, x, y, float32(r), 3, fade(colornames.Yellow, opacity), true)
}

// explosionShape 返回爆炸当前帧的半径与不透明度
func explosionShape(anim *components.AnimationComponent) (radius, opacity float64, ok bool) {
	frame, ok := anim.Frame()
	if !ok {
		return 0, 0, false
	}
	n := len(anim.Sheet.Frames)
	t := float64(anim.FrameIndex()+1) / float64(n)
	radius = float64(frame.Dx()) / 2 * anim.Zoom * (0.3 + 0.7*t)
	return radius, 1 - anim.Progress(), true
}
