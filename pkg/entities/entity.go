// Package entities 定义玩家、导弹、拾取物三类实体及其状态机
//
// 每个实体独占自己的碰撞体、爆炸动画和补间动画；
// 导弹与拾取物保存在固定容量的对象池中，只在 Active/Inactive 之间切换，从不增删。
package entities

import (
	"github.com/gonewx/ironsky/pkg/components"
	"github.com/gonewx/ironsky/pkg/config"
	"github.com/gonewx/ironsky/pkg/utils"
)

// Collides 拥有碰撞体的实体
type Collides interface {
	GetCollider() *components.Collider
}

// CollidesWith 判断两个实体的碰撞体是否相交
func CollidesWith(a, b Collides) bool {
	return a.GetCollider().CollidesWith(b.GetCollider())
}

// Target 导弹追踪和世界滚动所需的玩家信息
type Target interface {
	Position() utils.Point
	Velocity() utils.Point
	IsActive() bool
}

// newExplosion 按精灵表配置创建爆炸动画
func newExplosion(sheet config.SheetConfig, length, zoom float64) *components.AnimationComponent {
	frames := components.NewFrameSheet(
		sheet.Cols*sheet.FrameWidth, sheet.Rows*sheet.FrameHeight, sheet.Rows, sheet.Cols)
	return components.NewAnimation(frames, length, zoom)
}

// scroll 世界滚动补偿：玩家固定在屏幕中心，其余物体反向位移
func scroll(pos utils.Point, target Target, dt float64) utils.Point {
	return pos.Sub(target.Velocity().Mul(dt))
}
