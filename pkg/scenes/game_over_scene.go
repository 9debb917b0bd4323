package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/gonewx/ironsky/pkg/game"
)

const (
	// 结算层遮罩淡入时长（秒）与最终不透明度
	gameOverFadeIn   = 0.5
	gameOverMaxAlpha = 0.6
)

// GameOverScene 对局结束后叠加在 GameScene 之上的结算层
// 只读取 World 的 HUD 状态；重开键由 GameScene 读取并录入帧中
type GameOverScene struct {
	world            *game.World
	screenW, screenH float64
	shown            float64 // 本次叠加后经过的时间（秒）
}

// NewGameOverScene 创建结算层
func NewGameOverScene(world *game.World) *GameOverScene {
	w, h := world.Config().ScreenSize()
	return &GameOverScene{world: world, screenW: w, screenH: h}
}

// Enter 每次叠加时重新开始淡入
func (s *GameOverScene) Enter() {
	s.shown = 0
	log.Printf("[GameOverScene] Final score %d", s.world.HUD().Score)
}

// Update 推进淡入计时
func (s *GameOverScene) Update(dt float64) {
	s.shown += dt
}

// Draw 半透明遮罩和结算文字
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.screenW), float32(s.screenH),
		fade(colornames.Black, s.overlayAlpha()), false)

	msg := fmt.Sprintf("GAME OVER  -  SCORE %d  -  PRESS SPACE TO RESTART", s.world.HUD().Score)
	// DebugPrint 字符宽 6 像素
	x := int(s.screenW)/2 - len(msg)*6/2
	ebitenutil.DebugPrintAt(screen, msg, x, int(s.screenH)/2)
}

// overlayAlpha 遮罩不透明度，gameOverFadeIn 内从 0 线性升到 gameOverMaxAlpha
func (s *GameOverScene) overlayAlpha() float64 {
	if s.shown >= gameOverFadeIn {
		return gameOverMaxAlpha
	}
	return gameOverMaxAlpha * s.shown / gameOverFadeIn
}
