package components

import (
	"errors"
	"fmt"

	"github.com/gonewx/ironsky/pkg/utils"
)

// ErrInvalidRadius 碰撞半径必须大于 0
var ErrInvalidRadius = errors.New("collider radius must be greater than 0")

// Collider 圆形碰撞体
// 由所属实体独占，通过 Enable/Disable 控制是否参与碰撞检测
type Collider struct {
	Pos     utils.Point // 圆心（屏幕坐标）
	radius  float64     // 半径（像素）
	enabled bool
}

// NewCollider 创建一个启用状态的圆形碰撞体
//
// 参数:
//   - pos: 圆心位置
//   - radius: 半径，必须大于 0
//
// 返回:
//   - *Collider: 碰撞体
//   - error: 半径非法时返回 ErrInvalidRadius
func NewCollider(pos utils.Point, radius float64) (*Collider, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	return &Collider{Pos: pos, radius: radius, enabled: true}, nil
}

// MustCollider 与 NewCollider 相同，但参数非法时 panic
// 用于参数已经过配置校验的场合
func MustCollider(pos utils.Point, radius float64) *Collider {
	c, err := NewCollider(pos, radius)
	if err != nil {
		panic(err)
	}
	return c
}

// CollidesWith 判断两个碰撞体是否相交
// 双方都启用且圆心距离严格小于半径之和时返回 true（相切不算碰撞）
func (c *Collider) CollidesWith(other *Collider) bool {
	if !c.enabled || !other.enabled {
		return false
	}
	return c.Pos.Distance(other.Pos) < c.radius+other.radius
}

// Radius 返回半径
func (c *Collider) Radius() float64 {
	return c.radius
}

// Enabled 是否参与碰撞检测
func (c *Collider) Enabled() bool {
	return c.enabled
}

// Enable 启用碰撞体
func (c *Collider) Enable() {
	c.enabled = true
}

// Disable 禁用碰撞体（不销毁）
func (c *Collider) Disable() {
	c.enabled = false
}
