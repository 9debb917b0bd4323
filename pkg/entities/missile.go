package entities

import (
	"github.com/gonewx/ironsky/pkg/components"
	"github.com/gonewx/ironsky/pkg/config"
	"github.com/gonewx/ironsky/pkg/utils"
)

// MissileState 导弹状态
type MissileState int

const (
	MissileActive    MissileState = iota // 追踪玩家
	MissileExploding                     // 正在爆炸
	MissileInactive                      // 在池中待命
)

// Missile 追踪导弹
// 以加速度转向玩家，速度不超过 maxSpeed
type Missile struct {
	state     MissileState
	collider  *components.Collider
	velocity  utils.Point
	explosion *components.AnimationComponent

	maxSpeed     float64
	acceleration float64
}

// NewMissile 创建待命状态（Inactive、碰撞体禁用）的导弹
func NewMissile(cfg config.MissileConfig) *Missile {
	collider := components.MustCollider(utils.Point{}, cfg.ColliderRadius)
	collider.Disable()
	return &Missile{
		state:        MissileInactive,
		collider:     collider,
		explosion:    newExplosion(cfg.ExplosionSheet, cfg.ExplosionLength, cfg.ExplosionZoom),
		maxSpeed:     cfg.MaxSpeed,
		acceleration: cfg.Acceleration,
	}
}

// Update 推进导弹状态
//
// Active：x += v·dt，玩家存活时施加追踪加速度并限速，最后做滚动补偿。
// Exploding：继续位移和滚动补偿（不追踪），播放爆炸，播完转为 Inactive。
func (m *Missile) Update(dt float64, target Target) {
	switch m.state {
	case MissileActive:
		m.integrate(dt)
		if target.IsActive() {
			m.updateVelocity(dt, target)
		}
		m.collider.Pos = scroll(m.collider.Pos, target, dt)
	case MissileExploding:
		m.integrate(dt)
		m.collider.Pos = scroll(m.collider.Pos, target, dt)
		m.explosion.Update(dt)
		m.explosion.SetPos(m.collider.Pos)
		if !m.explosion.IsPlaying() {
			m.state = MissileInactive
		}
	case MissileInactive:
	}
}

func (m *Missile) integrate(dt float64) {
	m.collider.Pos = m.collider.Pos.Add(m.velocity.Mul(dt))
}

// updateVelocity v += normalize(玩家 - 自身) × a × dt，|v| >= maxSpeed 时缩放到 maxSpeed
func (m *Missile) updateVelocity(dt float64, target Target) {
	dir := target.Position().Sub(m.collider.Pos).Normalized()
	m.velocity = m.velocity.Add(dir.Mul(m.acceleration * dt))
	if m.velocity.Magnitude() >= m.maxSpeed {
		m.velocity = m.velocity.Normalized().Mul(m.maxSpeed)
	}
}

// Explode Active → Exploding，返回是否发生了状态切换
func (m *Missile) Explode() bool {
	if m.state != MissileActive {
		return false
	}
	m.state = MissileExploding
	m.collider.Disable()
	m.explosion.Play()
	m.explosion.SetPos(m.collider.Pos)
	return true
}

// Place 在 pos 以 velocity 重新投放导弹
func (m *Missile) Place(pos, velocity utils.Point) {
	m.collider.Pos = pos
	m.velocity = velocity
	m.state = MissileActive
	m.collider.Enable()
	m.explosion.Stop()
}

// Reset 收回对象池
func (m *Missile) Reset() {
	m.state = MissileInactive
	m.collider.Disable()
	m.explosion.Stop()
}

// GetCollider 实现 Collides
func (m *Missile) GetCollider() *components.Collider {
	return m.collider
}

// State 返回当前状态
func (m *Missile) State() MissileState {
	return m.state
}

// IsInactive 是否在池中待命
func (m *Missile) IsInactive() bool {
	return m.state == MissileInactive
}

// Position 返回位置
func (m *Missile) Position() utils.Point {
	return m.collider.Pos
}

// Velocity 返回速度
func (m *Missile) Velocity() utils.Point {
	return m.velocity
}

// Rotation 精灵朝向（度），即速度方向
func (m *Missile) Rotation() float64 {
	return m.velocity.HeadingDegrees()
}

// Explosion 返回爆炸动画（只读使用）
func (m *Missile) Explosion() *components.AnimationComponent {
	return m.explosion
}
