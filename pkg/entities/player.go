package entities

import (
	"log"

	"github.com/gonewx/ironsky/pkg/components"
	"github.com/gonewx/ironsky/pkg/config"
	"github.com/gonewx/ironsky/pkg/utils"
)

// PlayerState 玩家状态
type PlayerState int

const (
	PlayerActive    PlayerState = iota // 可操控
	PlayerExploding                    // 正在爆炸
	PlayerInactive                     // 已阵亡，等待重开
)

// PlayerAction 玩家转向动作（仅 Active 状态有效）
type PlayerAction int

const (
	ActionNoMove PlayerAction = iota
	ActionLeft
	ActionRight
)

// Player 玩家飞船
// 飞船固定在屏幕中心，只旋转；Velocity() 是世界滚动速度
type Player struct {
	state     PlayerState
	action    PlayerAction
	collider  *components.Collider
	explosion *components.AnimationComponent
	rot       float64 // 朝向（度）

	speed           float64
	angularVelocity float64
}

// NewPlayer 创建位于 center 的玩家，初始状态 Active(NoMove)
func NewPlayer(cfg config.PlayerConfig, center utils.Point) *Player {
	explosion := newExplosion(cfg.ExplosionSheet, cfg.ExplosionLength, cfg.ExplosionZoom)
	explosion.SetPos(center)
	return &Player{
		state:           PlayerActive,
		action:          ActionNoMove,
		collider:        components.MustCollider(center, cfg.ColliderRadius),
		explosion:       explosion,
		speed:           cfg.Speed,
		angularVelocity: cfg.AngularVelocity,
	}
}

// Input 根据左右键状态设置转向动作
// 同时按下或都未按下为 NoMove；非 Active 状态忽略
func (p *Player) Input(left, right bool) {
	if p.state != PlayerActive {
		return
	}
	switch {
	case left && !right:
		p.action = ActionLeft
	case right && !left:
		p.action = ActionRight
	default:
		p.action = ActionNoMove
	}
}

// Update 推进玩家状态
func (p *Player) Update(dt float64) {
	switch p.state {
	case PlayerActive:
		switch p.action {
		case ActionLeft:
			p.rot -= p.angularVelocity * dt
		case ActionRight:
			p.rot += p.angularVelocity * dt
		case ActionNoMove:
		}
	case PlayerExploding:
		p.explosion.Update(dt)
		if !p.explosion.IsPlaying() {
			p.state = PlayerInactive
			log.Printf("[Player] Explosion finished, player inactive")
		}
	case PlayerInactive:
	}
}

// Explode Active → Exploding，其他状态无效果
func (p *Player) Explode() {
	if p.state != PlayerActive {
		return
	}
	p.state = PlayerExploding
	p.collider.Disable()
	p.explosion.Play()
	log.Printf("[Player] Exploding at rot=%.1f", p.rot)
}

// Reset 完全复活：Active(NoMove)、朝向归零、碰撞体启用、爆炸停止
func (p *Player) Reset() {
	p.state = PlayerActive
	p.action = ActionNoMove
	p.rot = 0
	p.collider.Enable()
	p.explosion.Stop()
}

// Velocity 世界滚动速度 (cos(rot), sin(rot)) × speed
func (p *Player) Velocity() utils.Point {
	return utils.FromDegrees(p.rot).Mul(p.speed)
}

// IsActive 仅 Active 状态返回 true
func (p *Player) IsActive() bool {
	return p.state == PlayerActive
}

// Position 返回玩家（屏幕中心）位置
func (p *Player) Position() utils.Point {
	return p.collider.Pos
}

// GetCollider 实现 Collides
func (p *Player) GetCollider() *components.Collider {
	return p.collider
}

// State 返回当前状态
func (p *Player) State() PlayerState {
	return p.state
}

// Action 返回当前转向动作（非 Active 状态无意义）
func (p *Player) Action() PlayerAction {
	return p.action
}

// Rotation 返回朝向（度）
func (p *Player) Rotation() float64 {
	return p.rot
}

// Explosion 返回爆炸动画（只读使用）
func (p *Player) Explosion() *components.AnimationComponent {
	return p.explosion
}
