package systems

import (
	"github.com/gonewx/ironsky/pkg/entities"
)

// ExplosionCollisions 检测导弹之间、导弹与玩家之间的碰撞
//
// 先遍历所有 i<j 的导弹对以及每枚导弹与玩家，只做标记；
// 全部检测完成后再统一引爆。爆炸会立即禁用碰撞体，
// 边检测边引爆会让结果依赖遍历顺序。
//
// 返回:
//   - int: 本次新引爆的导弹数量（用于计分）
func ExplosionCollisions(player *entities.Player, missiles entities.MissilePool) int {
	marked := make([]bool, len(missiles))
	playerHit := false

	for i := 0; i < len(missiles); i++ {
		for j := i + 1; j < len(missiles); j++ {
			if entities.CollidesWith(missiles[i], missiles[j]) {
				marked[i] = true
				marked[j] = true
			}
		}
		if entities.CollidesWith(missiles[i], player) {
			marked[i] = true
			playerHit = true
		}
	}

	exploded := 0
	for i, m := range missiles {
		if marked[i] && m.Explode() {
			exploded++
		}
	}
	if playerHit {
		player.Explode()
	}
	return exploded
}

// CollectCollisions 检测玩家拾取星星
//
// 返回:
//   - int: 本次收集到的数量（用于计分）
func CollectCollisions(player *entities.Player, pickups entities.PickupPool) int {
	collected := 0
	for _, p := range pickups {
		if entities.CollidesWith(player, p) && p.Collect() {
			collected++
		}
	}
	return collected
}
