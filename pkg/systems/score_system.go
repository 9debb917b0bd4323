package systems

import (
	"math"

	"github.com/gonewx/ironsky/pkg/components"
	"github.com/gonewx/ironsky/pkg/config"
	"github.com/gonewx/ironsky/pkg/entities"
	"github.com/gonewx/ironsky/pkg/utils"
)

// ScoreSystem 计分
//
// 分数由两部分组成：
//   - 事件分：每引爆一枚导弹、每收集一个星星加固定分数
//   - 存活分：按关键帧随存活时间增长，取整到 10 分，只在玩家 Active 时累积
type ScoreSystem struct {
	pointsPerMissile int
	pointsPerPickup  int
	points           int
	ticker           *components.Tween
}

// NewScoreSystem 创建计分系统，存活计时立即开始
func NewScoreSystem(cfg config.GameConfig) *ScoreSystem {
	kf := make([]components.Keyframe, len(cfg.Score.TickerKeyframes))
	for i, k := range cfg.Score.TickerKeyframes {
		kf[i] = components.Keyframe{Frac: k.Frac, Value: k.Value}
	}
	s := &ScoreSystem{
		pointsPerMissile: cfg.Game.PointsPerMissile,
		pointsPerPickup:  cfg.Game.PointsPerPickup,
		ticker:           components.MustTween(kf, cfg.Score.TickerLength, utils.EasingLinear, false),
	}
	s.ticker.Reset()
	return s
}

// Update 玩家 Active 时推进存活分
func (s *ScoreSystem) Update(dt float64, player entities.Target) {
	if player.IsActive() {
		s.ticker.Update(dt)
	}
}

// AddEvents 累加碰撞阶段产生的事件分
func (s *ScoreSystem) AddEvents(exploded, collected int) {
	s.points += exploded*s.pointsPerMissile + collected*s.pointsPerPickup
}

// Score 当前总分
func (s *ScoreSystem) Score() int {
	return s.points + int(math.Floor(s.ticker.Value()/10))*10
}

// Reset 清零并重新开始存活计时
func (s *ScoreSystem) Reset() {
	s.points = 0
	s.ticker.Reset()
}
