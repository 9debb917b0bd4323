package entities

import (
	"testing"

	"github.com/gonewx/ironsky/pkg/utils"
)

// TestNewPools 池容量来自配置，初始全部待命
func TestNewPools(t *testing.T) {
	cfg := testConfig()
	cfg.Game.MaxMissiles = 3
	cfg.Game.MaxPickups = 2

	missiles := NewMissilePool(cfg)
	pickups := NewPickupPool(cfg)

	if len(missiles) != 3 || len(pickups) != 2 {
		t.Fatalf("池容量 = %d/%d, 期望 3/2", len(missiles), len(pickups))
	}
	if missiles.ActiveCount() != 0 || pickups.ActiveCount() != 0 {
		t.Error("新建池不应有 Active 对象")
	}
	if missiles.FirstInactive() != 0 || pickups.FirstInactive() != 0 {
		t.Error("新建池第一个空位应为 0")
	}
}

// TestMissilePoolFirstInactive 按下标顺序找第一个空位
func TestMissilePoolFirstInactive(t *testing.T) {
	cfg := testConfig()
	cfg.Game.MaxMissiles = 3
	pool := NewMissilePool(cfg)

	pool[0].Place(utils.Point{}, utils.Point{})
	pool[2].Place(utils.Point{}, utils.Point{})
	if got := pool.FirstInactive(); got != 1 {
		t.Errorf("FirstInactive() = %d, 期望 1", got)
	}

	pool[1].Place(utils.Point{}, utils.Point{})
	if got := pool.FirstInactive(); got != -1 {
		t.Errorf("池满时 FirstInactive() = %d, 期望 -1", got)
	}

	// Exploding 不算空位，也不算 Active
	pool[0].Explode()
	if pool.FirstInactive() != -1 {
		t.Error("Exploding 的导弹不应被复用")
	}
	if pool.ActiveCount() != 2 {
		t.Errorf("ActiveCount() = %d, 期望 2", pool.ActiveCount())
	}
}

// TestPickupPoolFirstInactive 收集中的拾取物不可复用
func TestPickupPoolFirstInactive(t *testing.T) {
	cfg := testConfig()
	cfg.Game.MaxPickups = 2
	pool := NewPickupPool(cfg)

	pool[0].Place(utils.Point{})
	pool[0].Collect()
	if got := pool.FirstInactive(); got != 1 {
		t.Errorf("FirstInactive() = %d, 期望 1", got)
	}
	if pool.ActiveCount() != 0 {
		t.Errorf("ActiveCount() = %d, 期望 0", pool.ActiveCount())
	}
}
