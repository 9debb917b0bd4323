package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/gonewx/ironsky/pkg/components"
)

// drawColliderDebug 绘制所有启用的碰撞体轮廓和 TPS/FPS（调试用）
// 由 game.drawDebug 控制
func (s *GameScene) drawColliderDebug(screen *ebiten.Image) {
	colliders := []*components.Collider{s.world.Player().GetCollider()}
	for _, m := range s.world.Missiles() {
		colliders = append(colliders, m.GetCollider())
	}
	for _, p := range s.world.Pickups() {
		colliders = append(colliders, p.GetCollider())
	}

	for _, c := range colliders {
		if !c.Enabled() {
			continue
		}
		vector.StrokeCircle(screen, float32(c.Pos.X), float32(c.Pos.Y), float32(c.Radius()), 1, colornames.Lime, false)
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("TPS %.1f  FPS %.1f  tick %d", ebiten.ActualTPS(), ebiten.ActualFPS(), s.world.Ticks()),
		scoreTextX, scoreTextY+16)
}
