package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/gonewx/ironsky/pkg/entities"
	"github.com/gonewx/ironsky/pkg/utils"
)

const (
	// HUD 文本位置
	scoreTextX = 16
	scoreTextY = 16

	// 指示器箭头尺寸（像素）
	pointerSize = 14
)

// drawHUD 左上角分数，结算提示由 GameOverScene 绘制
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", s.world.HUD().Score), scoreTextX, scoreTextY)
}

// drawOffscreenPointers 为屏幕外的导弹和拾取物绘制边缘箭头和缩略图
func (s *GameScene) drawOffscreenPointers(screen *ebiten.Image) {
	offset := s.cfg.OffscreenPointer.Offset

	for _, m := range s.world.Missiles() {
		if m.State() != entities.MissileActive {
			continue
		}
		ptr, ok := utils.PlacePointer(m.Position(), s.screenW, s.screenH, offset)
		if !ok {
			continue
		}
		drawOutline(screen, pointerArrow(ptr, pointerSize), 2, colornames.Red)
		drawMissile(screen, ptr.Pos, m.Rotation(), m.GetCollider().Radius(), utils.OverlayScale)
	}

	for _, p := range s.world.Pickups() {
		if p.State() != entities.PickupActive {
			continue
		}
		ptr, ok := utils.PlacePointer(p.Position(), s.screenW, s.screenH, offset)
		if !ok {
			continue
		}
		drawOutline(screen, pointerArrow(ptr, pointerSize), 2, colornames.Yellow)
		drawPickup(screen, ptr.Pos, p.Rotation(), p.GetCollider().Radius()*utils.OverlayScale, 1)
	}
}

// pointerArrow 指示器三角形
// 指示器旋转以朝上为 0 度，换算成以朝右为 0 度的机头方向
func pointerArrow(ptr utils.Pointer, size float64) [3]utils.Point {
	return shipOutline(ptr.Pos, ptr.Rotation-90, size)
}
