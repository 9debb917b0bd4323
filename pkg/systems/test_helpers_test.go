package systems

import (
	"math/rand"

	"github.com/gonewx/ironsky/pkg/config"
	"github.com/gonewx/ironsky/pkg/entities"
	"github.com/gonewx/ironsky/pkg/utils"
)

// stubPlayer 只提供生成器和背景需要的玩家信息
type stubPlayer struct {
	vel    utils.Point
	active bool
}

func (s stubPlayer) Position() utils.Point { return utils.NewPoint(720, 480) }
func (s stubPlayer) Velocity() utils.Point { return s.vel }
func (s stubPlayer) IsActive() bool        { return s.active }

var _ entities.Target = stubPlayer{}

func testConfig() config.GameConfig {
	return config.DefaultGameConfig()
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}
