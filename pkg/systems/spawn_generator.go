package systems

import (
	"math"
	"math/rand"

	"github.com/gonewx/ironsky/pkg/utils"
)

// spawnPointOnRing 以 center 为圆心、radius 为半径的圆上取一点
// 位置 = center − (cos θ, sin θ) × radius
func spawnPointOnRing(center utils.Point, angle, radius float64) utils.Point {
	return center.Sub(utils.NewPoint(math.Cos(angle), math.Sin(angle)).Mul(radius))
}

// randomAngle 在 [0, 2π) 内均匀取角度
func randomAngle(rng *rand.Rand) float64 {
	return rng.Float64() * 2 * math.Pi
}
