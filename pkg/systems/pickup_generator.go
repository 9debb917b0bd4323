package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/ironsky/pkg/components"
	"github.com/gonewx/ironsky/pkg/config"
	"github.com/gonewx/ironsky/pkg/entities"
	"github.com/gonewx/ironsky/pkg/utils"
)

// PickupGenerator 定时从拾取物池中投放星星
// 与导弹不同，半径在 [minRadius, maxRadius] 内随机
type PickupGenerator struct {
	timer        components.TimerComponent
	rng          *rand.Rand
	center       utils.Point
	minRadius    float64
	maxRadius    float64
	placeOnReset bool
}

// NewPickupGenerator 创建拾取物生成器
func NewPickupGenerator(cfg config.GameConfig, rng *rand.Rand) *PickupGenerator {
	w, h := cfg.ScreenSize()
	g := &PickupGenerator{
		timer: components.TimerComponent{
			Name:       "pickup_spawn",
			TargetTime: cfg.PickupGenerator.SpawnInterval,
		},
		rng:          rng,
		center:       utils.NewPoint(w/2, h/2),
		minRadius:    cfg.PickupGenerator.MinSpawnRadius,
		maxRadius:    cfg.PickupGenerator.MaxSpawnRadius,
		placeOnReset: cfg.PickupGenerator.PlaceOnReset,
	}
	log.Printf("[PickupGenerator] Initialized with interval=%.1fs, radius=(%.0f-%.0f)",
		g.timer.TargetTime, g.minRadius, g.maxRadius)
	return g
}

// Update 推进生成计时器，到期时投放一个拾取物
func (g *PickupGenerator) Update(dt float64, player entities.Target, pool entities.PickupPool) {
	if !player.IsActive() {
		return
	}
	if g.timer.Tick(dt) {
		g.spawn(pool)
	}
}

func (g *PickupGenerator) spawn(pool entities.PickupPool) {
	idx := pool.FirstInactive()
	if idx < 0 {
		log.Printf("[PickupGenerator] Pool full (%d), spawn skipped", len(pool))
		return
	}
	angle := randomAngle(g.rng)
	radius := g.minRadius + g.rng.Float64()*(g.maxRadius-g.minRadius)
	pos := spawnPointOnRing(g.center, angle, radius)
	pool[idx].Place(pos)
	log.Printf("[PickupGenerator] Spawned pickup #%d at (%.0f, %.0f)", idx, pos.X, pos.Y)
}

// ResetPool 收回全部拾取物并清零计时器
func (g *PickupGenerator) ResetPool(pool entities.PickupPool) {
	for _, p := range pool {
		p.Reset()
	}
	g.timer.Reset()
	if g.placeOnReset && len(pool) > 0 {
		g.spawn(pool)
	}
	log.Printf("[PickupGenerator] Pool reset")
}

// Elapsed 返回距上次投放的累计时间（秒）
func (g *PickupGenerator) Elapsed() float64 {
	return g.timer.CurrentTime
}
