package entities

import (
	"log"

	"github.com/gonewx/ironsky/pkg/config"
)

// MissilePool 固定容量的导弹对象池，按下标顺序扫描
type MissilePool []*Missile

// NewMissilePool 按 game.maxMissiles 创建导弹池（全部 Inactive）
func NewMissilePool(cfg config.GameConfig) MissilePool {
	pool := make(MissilePool, cfg.Game.MaxMissiles)
	for i := range pool {
		pool[i] = NewMissile(cfg.Missile)
	}
	log.Printf("[PoolFactory] Created missile pool, capacity=%d", len(pool))
	return pool
}

// FirstInactive 返回第一个待命导弹的下标，没有空位返回 -1
func (p MissilePool) FirstInactive() int {
	for i, m := range p {
		if m.IsInactive() {
			return i
		}
	}
	return -1
}

// ActiveCount 返回处于 Active 状态的导弹数量
func (p MissilePool) ActiveCount() int {
	n := 0
	for _, m := range p {
		if m.State() == MissileActive {
			n++
		}
	}
	return n
}

// PickupPool 固定容量的拾取物对象池
type PickupPool []*Pickup

// NewPickupPool 按 game.maxPickups 创建拾取物池（全部 Inactive）
func NewPickupPool(cfg config.GameConfig) PickupPool {
	pool := make(PickupPool, cfg.Game.MaxPickups)
	for i := range pool {
		pool[i] = NewPickup(cfg.Pickup)
	}
	log.Printf("[PoolFactory] Created pickup pool, capacity=%d", len(pool))
	return pool
}

// FirstInactive 返回第一个待命拾取物的下标，没有空位返回 -1
func (p PickupPool) FirstInactive() int {
	for i, pk := range p {
		if pk.IsInactive() {
			return i
		}
	}
	return -1
}

// ActiveCount 返回处于 Active 状态的拾取物数量
func (p PickupPool) ActiveCount() int {
	n := 0
	for _, pk := range p {
		if pk.State() == PickupActive {
			n++
		}
	}
	return n
}
