package game

import "github.com/gonewx/ironsky/pkg/entities"

// GameStatus HUD 显示的对局状态
type GameStatus int

const (
	GameActive GameStatus = iota // 玩家 Active 或正在爆炸
	GameOver                     // 玩家爆炸结束
)

func (s GameStatus) String() string {
	switch s {
	case GameActive:
		return "active"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// HUDState 每帧提供给渲染层的界面状态
type HUDState struct {
	Status GameStatus
	Score  int
}

// update 根据玩家状态和当前分数刷新
func (h *HUDState) update(player *entities.Player, score int) {
	h.Score = score
	if player.State() == entities.PlayerInactive {
		h.Status = GameOver
	} else {
		h.Status = GameActive
	}
}
