package components

import (
	"errors"
	"testing"

	"github.com/gonewx/ironsky/pkg/utils"
)

// TestNewCollider_InvalidRadius 半径必须大于 0
func TestNewCollider_InvalidRadius(t *testing.T) {
	for _, r := range []float64{0, -1} {
		if _, err := NewCollider(utils.Point{}, r); !errors.Is(err, ErrInvalidRadius) {
			t.Errorf("NewCollider(r=%v) error = %v, 期望 ErrInvalidRadius", r, err)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("MustCollider(r=0) 应该 panic")
		}
	}()
	MustCollider(utils.Point{}, 0)
}

// TestColliderCollidesWith 测试圆形相交判定
func TestColliderCollidesWith(t *testing.T) {
	tests := []struct {
		name     string
		a, b     utils.Point
		ra, rb   float64
		expected bool
	}{
		{"重叠", utils.NewPoint(0, 0), utils.NewPoint(1.2, 1.2), 1, 1, true},
		{"分离", utils.NewPoint(0, 0), utils.NewPoint(-2, -2), 1, 1, false},
		{"相切不算碰撞", utils.NewPoint(0, 0), utils.NewPoint(3, 0), 1, 2, false},
		{"同心", utils.NewPoint(5, 5), utils.NewPoint(5, 5), 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustCollider(tt.a, tt.ra)
			b := MustCollider(tt.b, tt.rb)
			if got := a.CollidesWith(b); got != tt.expected {
				t.Errorf("a.CollidesWith(b) = %v, 期望 %v", got, tt.expected)
			}
			if got := b.CollidesWith(a); got != tt.expected {
				t.Errorf("b.CollidesWith(a) = %v, 期望 %v（对称性）", got, tt.expected)
			}
		})
	}
}

// TestColliderDisabled 禁用的碰撞体在任何方向都不碰撞
func TestColliderDisabled(t *testing.T) {
	a := MustCollider(utils.NewPoint(0, 0), 10)
	b := MustCollider(utils.NewPoint(0, 0), 10)

	a.Disable()
	if a.CollidesWith(b) || b.CollidesWith(a) {
		t.Error("禁用后不应碰撞")
	}
	if a.Enabled() {
		t.Error("Enabled() 应为 false")
	}

	a.Enable()
	if !a.CollidesWith(b) {
		t.Error("重新启用后应碰撞")
	}
}
