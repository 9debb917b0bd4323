package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/ironsky/pkg/components"
	"github.com/gonewx/ironsky/pkg/config"
	"github.com/gonewx/ironsky/pkg/entities"
	"github.com/gonewx/ironsky/pkg/utils"
)

// MissileGenerator 定时从导弹池中投放导弹
// 导弹出现在以屏幕中心为圆心、固定半径的圆上，初速度为零
type MissileGenerator struct {
	timer        components.TimerComponent
	rng          *rand.Rand
	center       utils.Point
	radius       float64
	placeOnReset bool
}

// NewMissileGenerator 创建导弹生成器
//
// 参数:
//   - cfg: 游戏配置（使用 missileGenerator 段和屏幕尺寸）
//   - rng: 随机源，测试中传入固定种子以复现投放位置
func NewMissileGenerator(cfg config.GameConfig, rng *rand.Rand) *MissileGenerator {
	w, h := cfg.ScreenSize()
	g := &MissileGenerator{
		timer: components.TimerComponent{
			Name:       "missile_spawn",
			TargetTime: cfg.MissileGenerator.SpawnInterval,
		},
		rng:          rng,
		center:       utils.NewPoint(w/2, h/2),
		radius:       cfg.MissileGenerator.SpawnRadius,
		placeOnReset: cfg.MissileGenerator.PlaceOnReset,
	}
	log.Printf("[MissileGenerator] Initialized with interval=%.1fs, radius=%.0f",
		g.timer.TargetTime, g.radius)
	return g
}

// Update 推进生成计时器，到期时投放一枚导弹
// 玩家非 Active 时暂停计时；池满时本次投放跳过
func (g *MissileGenerator) Update(dt float64, player entities.Target, pool entities.MissilePool) {
	if !player.IsActive() {
		return
	}
	if g.timer.Tick(dt) {
		g.spawn(pool)
	}
}

func (g *MissileGenerator) spawn(pool entities.MissilePool) {
	idx := pool.FirstInactive()
	if idx < 0 {
		log.Printf("[MissileGenerator] Pool full (%d), spawn skipped", len(pool))
		return
	}
	pos := spawnPointOnRing(g.center, randomAngle(g.rng), g.radius)
	pool[idx].Place(pos, utils.Point{})
	log.Printf("[MissileGenerator] Spawned missile #%d at (%.0f, %.0f)", idx, pos.X, pos.Y)
}

// ResetPool 收回全部导弹并清零计时器
// placeOnReset 为 true 时立即投放第一枚，开局即有威胁
func (g *MissileGenerator) ResetPool(pool entities.MissilePool) {
	for _, m := range pool {
		m.Reset()
	}
	g.timer.Reset()
	if g.placeOnReset && len(pool) > 0 {
		g.spawn(pool)
	}
	log.Printf("[MissileGenerator] Pool reset")
}

// Elapsed 返回距上次投放的累计时间（秒）
func (g *MissileGenerator) Elapsed() float64 {
	return g.timer.CurrentTime
}
