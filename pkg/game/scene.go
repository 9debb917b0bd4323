package game

import "github.com/hajimehoshi/ebiten/v2"

// Scene 由 SceneManager 驱动的一个画面层
// Update 每个逻辑帧调用一次，dt 为固定步长（秒）；Draw 只读取模拟状态
type Scene interface {
	Update(dt float64)
	Draw(screen *ebiten.Image)
}

// RoundScene 承载一局游戏的场景，每帧更新后向 SceneManager 报告对局状态
type RoundScene interface {
	Scene
	Status() GameStatus
}

// OverlayScene 叠加在对局场景之上的画面层
// 每次被叠加时先调用 Enter
type OverlayScene interface {
	Scene
	Enter()
}
