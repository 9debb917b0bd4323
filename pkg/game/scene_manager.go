package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 以固定步长驱动对局场景，并根据对局状态切换结算层
//
// 对局场景每帧都会更新，结算期间导弹和爆炸照常演出；
// 对局场景报告 GameOver 后叠加结算层，重开回到 GameActive 后撤下。
type SceneManager struct {
	dt       float64
	round    RoundScene
	gameOver OverlayScene // 可为 nil
	showing  bool         // 结算层是否已叠加
	ticks    int          // 当前对局场景已推进的帧数
}

// NewSceneManager 创建场景管理器，dt 为固定逻辑步长（秒）
func NewSceneManager(dt float64) *SceneManager {
	return &SceneManager{dt: dt}
}

// SwitchTo 替换对局场景，撤下结算层并清零帧计数
func (sm *SceneManager) SwitchTo(round RoundScene) {
	sm.round = round
	sm.showing = false
	sm.ticks = 0
	log.Printf("[SceneManager] Switched to %T", round)
}

// SetGameOverScene 设置对局结束时叠加的结算层
func (sm *SceneManager) SetGameOverScene(overlay OverlayScene) {
	sm.gameOver = overlay
}

// GetCurrentScene 返回最上层的场景
// 结算层已叠加时返回结算层，否则返回对局场景，都没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	if sm.showing {
		return sm.gameOver
	}
	if sm.round == nil {
		return nil
	}
	return sm.round
}

// Update 推进一个逻辑帧
func (sm *SceneManager) Update() {
	if sm.round == nil {
		return
	}
	sm.round.Update(sm.dt)
	sm.ticks++
	sm.route(sm.round.Status())
	if sm.showing {
		sm.gameOver.Update(sm.dt)
	}
}

// route 根据对局状态叠加或撤下结算层
func (sm *SceneManager) route(status GameStatus) {
	switch {
	case status == GameOver && !sm.showing && sm.gameOver != nil:
		sm.showing = true
		sm.gameOver.Enter()
		log.Printf("[SceneManager] Round over at tick %d, showing %T", sm.ticks, sm.gameOver)
	case status == GameActive && sm.showing:
		sm.showing = false
		log.Printf("[SceneManager] Round restarted at tick %d", sm.ticks)
	}
}

// Draw 先画对局场景，再画已叠加的结算层
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.round == nil {
		return
	}
	sm.round.Draw(screen)
	if sm.showing {
		sm.gameOver.Draw(screen)
	}
}

// GameOverShown 结算层是否已叠加
func (sm *SceneManager) GameOverShown() bool {
	return sm.showing
}

// Ticks 返回当前对局场景已推进的帧数
func (sm *SceneManager) Ticks() int {
	return sm.ticks
}

// DeltaTime 返回固定逻辑步长（秒）
func (sm *SceneManager) DeltaTime() float64 {
	return sm.dt
}
