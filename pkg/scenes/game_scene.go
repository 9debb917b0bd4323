package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/ironsky/internal/replay"
	"github.com/gonewx/ironsky/pkg/config"
	"github.com/gonewx/ironsky/pkg/game"
	"github.com/gonewx/ironsky/pkg/utils"
)

// InputSource 每个逻辑帧读取一次的按键状态
type InputSource interface {
	Poll() (left, right, restart bool)
}

// KeyboardInput 从键盘读取输入
// 左右方向键（或 A/D）转向，空格重开
type KeyboardInput struct{}

// Poll 实现 InputSource
func (KeyboardInput) Poll() (left, right, restart bool) {
	left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	restart = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	return left, right, restart
}

// GameScene represents the main gameplay screen.
// It forwards input to the World once per tick and draws the World read-only.
type GameScene struct {
	world    *game.World
	cfg      config.GameConfig
	input    InputSource
	recorder *replay.Recorder // 为 nil 时不录像

	screenW, screenH float64
	starField        [][]utils.Point // 每个背景层一个瓦片内的星星位置
}

// NewGameScene 创建游戏场景
//
// 参数:
//   - world: 模拟状态
//   - input: 输入来源
//   - recorder: 录像器，可为 nil
func NewGameScene(world *game.World, input InputSource, recorder *replay.Recorder) *GameScene {
	cfg := world.Config()
	w, h := cfg.ScreenSize()
	s := &GameScene{
		world:     world,
		cfg:       cfg,
		input:     input,
		recorder:  recorder,
		screenW:   w,
		screenH:   h,
		starField: newStarField(cfg.Background),
	}
	log.Printf("[GameScene] Created: %dx%d, %d background layers, recording=%v",
		cfg.Window.Width, cfg.Window.Height, len(s.starField), recorder != nil)
	return s
}

// Update 读取输入并推进一个逻辑帧
func (s *GameScene) Update(deltaTime float64) {
	left, right, restart := s.input.Poll()
	frame := replay.Frame{DT: deltaTime, Left: left, Right: right, Restart: restart}
	if s.recorder != nil {
		s.recorder.Record(frame)
	}
	replay.Apply(s.world, frame)
}

// Draw 绘制顺序：背景 → 拾取物 → 导弹 → 玩家 → 屏幕外指示器 → HUD → 调试信息
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)
	s.drawPickups(screen)
	s.drawMissiles(screen)
	s.drawPlayer(screen)
	s.drawOffscreenPointers(screen)
	s.drawHUD(screen)
	if s.cfg.Game.DrawDebug {
		s.drawColliderDebug(screen)
	}
}

// Status 实现 game.RoundScene，报告本帧结束时的对局状态
func (s *GameScene) Status() game.GameStatus {
	return s.world.HUD().Status
}

// World 返回场景驱动的模拟状态
func (s *GameScene) World() *game.World {
	return s.world
}
