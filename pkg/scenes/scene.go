package scenes

import "github.com/gonewx/ironsky/pkg/game"

// GameScene 作为对局场景，GameOverScene 作为结算层，由 game.SceneManager 驱动
var (
	_ game.RoundScene   = (*GameScene)(nil)
	_ game.OverlayScene = (*GameOverScene)(nil)
)
