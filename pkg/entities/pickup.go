package entities

import (
	"github.com/gonewx/ironsky/pkg/components"
	"github.com/gonewx/ironsky/pkg/config"
	"github.com/gonewx/ironsky/pkg/utils"
)

// PickupState 拾取物状态
type PickupState int

const (
	PickupActive       PickupState = iota // 可被收集
	PickupCollected                       // 被收集，播放放大淡出动画
	PickupDisappearing                    // 超时，播放缩小淡出动画
	PickupInactive                        // 在池中待命
)

// pickupTweens 拾取物的视觉补间
type pickupTweens struct {
	rotation *components.Tween // 存活期间循环自转

	collectFade *components.Tween
	collectGrow *components.Tween
	collectSpin *components.Tween

	disappearFade   *components.Tween
	disappearShrink *components.Tween
	disappearSpin   *components.Tween
}

func newPickupTweens(cfg config.PickupConfig) pickupTweens {
	fade := []components.Keyframe{{Frac: 0, Value: 1}, {Frac: 1, Value: 0}}
	return pickupTweens{
		rotation: components.MustTween(
			[]components.Keyframe{{Frac: 0, Value: 0}, {Frac: 1, Value: 360}},
			cfg.RotationPeriod, utils.EasingLinear, true),

		collectFade: components.MustTween(fade, cfg.CollectLength, utils.EasingEaseIn, false),
		collectGrow: components.MustTween(
			[]components.Keyframe{{Frac: 0, Value: 1}, {Frac: 1, Value: 2}},
			cfg.CollectLength, utils.EasingEaseOut, false),
		collectSpin: components.MustTween(
			[]components.Keyframe{{Frac: 0, Value: 0}, {Frac: 1, Value: 720}},
			cfg.CollectLength, utils.EasingEaseOut, false),

		disappearFade: components.MustTween(fade, cfg.DisappearLength, utils.EasingLinear, false),
		disappearShrink: components.MustTween(
			[]components.Keyframe{{Frac: 0, Value: 1}, {Frac: 1, Value: 0}},
			cfg.DisappearLength, utils.EasingEaseIn, false),
		disappearSpin: components.MustTween(
			[]components.Keyframe{{Frac: 0, Value: 0}, {Frac: 1, Value: 360}},
			cfg.DisappearLength, utils.EasingEaseInOut, false),
	}
}

func (tw *pickupTweens) stopAll() {
	for _, t := range []*components.Tween{
		tw.rotation,
		tw.collectFade, tw.collectGrow, tw.collectSpin,
		tw.disappearFade, tw.disappearShrink, tw.disappearSpin,
	} {
		t.Stop()
	}
}

// Pickup 可收集的星星
type Pickup struct {
	state    PickupState
	collider *components.Collider
	lifetime components.LifetimeComponent
	tweens   pickupTweens
	baseRot  float64 // 离开 Active 时的自转角度
}

// NewPickup 创建待命状态（Inactive、碰撞体禁用）的拾取物
func NewPickup(cfg config.PickupConfig) *Pickup {
	collider := components.MustCollider(utils.Point{}, cfg.ColliderRadius)
	collider.Disable()
	return &Pickup{
		state:    PickupInactive,
		collider: collider,
		lifetime: components.LifetimeComponent{MaxLifetime: cfg.MaxLifetime},
		tweens:   newPickupTweens(cfg),
	}
}

// Update 推进拾取物状态，所有可见状态都做滚动补偿
func (p *Pickup) Update(dt float64, target Target) {
	switch p.state {
	case PickupActive:
		expired := p.lifetime.Tick(dt)
		p.tweens.rotation.Update(dt)
		p.collider.Pos = scroll(p.collider.Pos, target, dt)
		if expired {
			p.Disappear()
		}
	case PickupCollected:
		p.tweens.collectFade.Update(dt)
		p.tweens.collectGrow.Update(dt)
		p.tweens.collectSpin.Update(dt)
		p.collider.Pos = scroll(p.collider.Pos, target, dt)
		if !p.tweens.collectFade.IsPlaying() {
			p.state = PickupInactive
		}
	case PickupDisappearing:
		p.tweens.disappearFade.Update(dt)
		p.tweens.disappearShrink.Update(dt)
		p.tweens.disappearSpin.Update(dt)
		p.collider.Pos = scroll(p.collider.Pos, target, dt)
		if !p.tweens.disappearFade.IsPlaying() {
			p.state = PickupInactive
		}
	case PickupInactive:
	}
}

// Collect Active → Collected，返回是否发生了状态切换
func (p *Pickup) Collect() bool {
	if p.state != PickupActive {
		return false
	}
	p.state = PickupCollected
	p.collider.Disable()
	p.baseRot = p.tweens.rotation.Value()
	p.tweens.rotation.Stop()
	p.tweens.collectFade.Reset()
	p.tweens.collectGrow.Reset()
	p.tweens.collectSpin.Reset()
	return true
}

// Disappear Active → Disappearing，返回是否发生了状态切换
func (p *Pickup) Disappear() bool {
	if p.state != PickupActive {
		return false
	}
	p.state = PickupDisappearing
	p.collider.Disable()
	p.baseRot = p.tweens.rotation.Value()
	p.tweens.rotation.Stop()
	p.tweens.disappearFade.Reset()
	p.tweens.disappearShrink.Reset()
	p.tweens.disappearSpin.Reset()
	return true
}

// Place 在 pos 重新投放
func (p *Pickup) Place(pos utils.Point) {
	p.collider.Pos = pos
	p.state = PickupActive
	p.collider.Enable()
	p.tweens.rotation.Reset()
	p.lifetime.Reset()
}

// Reset 收回对象池
func (p *Pickup) Reset() {
	p.state = PickupInactive
	p.collider.Disable()
	p.tweens.stopAll()
}

// GetCollider 实现 Collides
func (p *Pickup) GetCollider() *components.Collider {
	return p.collider
}

// State 返回当前状态
func (p *Pickup) State() PickupState {
	return p.state
}

// IsInactive 是否在池中待命
func (p *Pickup) IsInactive() bool {
	return p.state == PickupInactive
}

// Position 返回位置
func (p *Pickup) Position() utils.Point {
	return p.collider.Pos
}

// TimeAlive 返回本次投放后的存活时间（秒）
func (p *Pickup) TimeAlive() float64 {
	return p.lifetime.CurrentLifetime
}

// Rotation 渲染朝向（度）
func (p *Pickup) Rotation() float64 {
	switch p.state {
	case PickupActive:
		return p.tweens.rotation.Value()
	case PickupCollected:
		return p.baseRot + p.tweens.collectSpin.Value()
	case PickupDisappearing:
		return p.baseRot + p.tweens.disappearSpin.Value()
	default:
		return 0
	}
}

// Opacity 渲染不透明度 [0,1]
func (p *Pickup) Opacity() float64 {
	switch p.state {
	case PickupActive:
		return 1
	case PickupCollected:
		return p.tweens.collectFade.Value()
	case PickupDisappearing:
		return p.tweens.disappearFade.Value()
	default:
		return 0
	}
}

// Scale 渲染缩放
func (p *Pickup) Scale() float64 {
	switch p.state {
	case PickupActive:
		return 1
	case PickupCollected:
		return p.tweens.collectGrow.Value()
	case PickupDisappearing:
		return p.tweens.disappearShrink.Value()
	default:
		return 0
	}
}
