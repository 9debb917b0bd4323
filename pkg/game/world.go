package game

import (
	"log"
	"math/rand"

	"github.com/gonewx/ironsky/pkg/config"
	"github.com/gonewx/ironsky/pkg/entities"
	"github.com/gonewx/ironsky/pkg/systems"
	"github.com/gonewx/ironsky/pkg/utils"
)

// World 一局游戏的全部模拟状态
//
// 每个逻辑帧按固定顺序推进：
// 玩家 → 导弹 → 拾取物 → 背景 → 生成器 → 碰撞 → 计分 → HUD。
// 给定相同的种子、输入序列和 dt 序列，结果完全可复现。
type World struct {
	cfg config.GameConfig

	player   *entities.Player
	missiles entities.MissilePool
	pickups  entities.PickupPool

	missileGen *systems.MissileGenerator
	pickupGen  *systems.PickupGenerator
	background *systems.Background
	score      *systems.ScoreSystem

	hud   HUDState
	ticks int
}

// NewWorld 创建一局新游戏
//
// 参数:
//   - cfg: 已校验的游戏配置
//   - rng: 生成器使用的随机源
func NewWorld(cfg config.GameConfig, rng *rand.Rand) *World {
	w, h := cfg.ScreenSize()
	world := &World{
		cfg:        cfg,
		player:     entities.NewPlayer(cfg.Player, utils.NewPoint(w/2, h/2)),
		missiles:   entities.NewMissilePool(cfg),
		pickups:    entities.NewPickupPool(cfg),
		missileGen: systems.NewMissileGenerator(cfg, rng),
		pickupGen:  systems.NewPickupGenerator(cfg, rng),
		background: systems.NewBackground(cfg.Background),
		score:      systems.NewScoreSystem(cfg),
	}
	world.reset()
	return world
}

// Input 转发本帧的左右键状态
func (w *World) Input(left, right bool) {
	w.player.Input(left, right)
}

// Update 推进一个逻辑帧
func (w *World) Update(dt float64) {
	w.player.Update(dt)
	for _, m := range w.missiles {
		m.Update(dt, w.player)
	}
	for _, p := range w.pickups {
		p.Update(dt, w.player)
	}
	w.background.Update(dt, w.player)

	w.missileGen.Update(dt, w.player, w.missiles)
	w.pickupGen.Update(dt, w.player, w.pickups)

	exploded := systems.ExplosionCollisions(w.player, w.missiles)
	collected := systems.CollectCollisions(w.player, w.pickups)
	w.score.AddEvents(exploded, collected)
	w.score.Update(dt, w.player)

	w.hud.update(w.player, w.score.Score())
	w.ticks++
}

// Restart 重新开始一局
func (w *World) Restart() {
	w.reset()
	log.Printf("[World] Restarted after %d ticks", w.ticks)
	w.ticks = 0
}

func (w *World) reset() {
	w.player.Reset()
	w.missileGen.ResetPool(w.missiles)
	w.pickupGen.ResetPool(w.pickups)
	w.background.Reset()
	w.score.Reset()
	w.hud.update(w.player, w.score.Score())
}

// Config 返回游戏配置
func (w *World) Config() config.GameConfig { return w.cfg }

// Player 返回玩家（渲染只读使用）
func (w *World) Player() *entities.Player { return w.player }

// Missiles 返回导弹池
func (w *World) Missiles() entities.MissilePool { return w.missiles }

// Pickups 返回拾取物池
func (w *World) Pickups() entities.PickupPool { return w.pickups }

// Background 返回视差背景
func (w *World) Background() *systems.Background { return w.background }

// HUD 返回界面状态
func (w *World) HUD() HUDState { return w.hud }

// Ticks 返回本局已推进的逻辑帧数
func (w *World) Ticks() int { return w.ticks }

// Snapshot 一个逻辑帧结束时的可比较状态，用于回放校验
type Snapshot struct {
	Ticks          int
	PlayerState    entities.PlayerState
	PlayerRotation float64
	Missiles       []EntitySnapshot
	Pickups        []EntitySnapshot
	Score          int
}

// EntitySnapshot 池中单个对象的状态
type EntitySnapshot struct {
	State int
	Pos   utils.Point
}

// Snapshot 导出当前状态
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Ticks:          w.ticks,
		PlayerState:    w.player.State(),
		PlayerRotation: w.player.Rotation(),
		Missiles:       make([]EntitySnapshot, len(w.missiles)),
		Pickups:        make([]EntitySnapshot, len(w.pickups)),
		Score:          w.score.Score(),
	}
	for i, m := range w.missiles {
		s.Missiles[i] = EntitySnapshot{State: int(m.State()), Pos: m.Position()}
	}
	for i, p := range w.pickups {
		s.Pickups[i] = EntitySnapshot{State: int(p.State()), Pos: p.Position()}
	}
	return s
}
