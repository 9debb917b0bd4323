package entities

import (
	"github.com/gonewx/ironsky/pkg/config"
	"github.com/gonewx/ironsky/pkg/utils"
)

// stubTarget 测试用的固定目标
type stubTarget struct {
	pos    utils.Point
	vel    utils.Point
	active bool
}

func (s stubTarget) Position() utils.Point { return s.pos }
func (s stubTarget) Velocity() utils.Point { return s.vel }
func (s stubTarget) IsActive() bool        { return s.active }

func testConfig() config.GameConfig {
	return config.DefaultGameConfig()
}
