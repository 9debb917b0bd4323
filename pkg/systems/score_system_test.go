package systems

import (
	"testing"
)

// TestScoreSystem 存活分与事件分
func TestScoreSystem(t *testing.T) {
	s := NewScoreSystem(testConfig())
	active := stubPlayer{active: true}

	if s.Score() != 0 {
		t.Fatalf("初始 Score() = %d, 期望 0", s.Score())
	}

	// 10/7500 落在第一段 (0,0)-(0.0027,100)，约 49.38 分，取整到 40
	s.Update(10, active)
	if s.Score() != 40 {
		t.Errorf("存活 10s Score() = %d, 期望 40", s.Score())
	}

	s.AddEvents(2, 1)
	if s.Score() != 40+2*500+1000 {
		t.Errorf("Score() = %d, 期望 %d", s.Score(), 40+2*500+1000)
	}

	// 玩家非 Active 时存活分冻结
	s.Update(100, stubPlayer{active: false})
	if s.Score() != 2040 {
		t.Errorf("玩家非 Active 时 Score() = %d, 期望 2040", s.Score())
	}

	s.Reset()
	if s.Score() != 0 {
		t.Errorf("Reset 后 Score() = %d, 期望 0", s.Score())
	}
}

// TestScoreSystem_TickerEnd 存活计时结束后停在最终值
func TestScoreSystem_TickerEnd(t *testing.T) {
	cfg := testConfig()
	s := NewScoreSystem(cfg)

	s.Update(cfg.Score.TickerLength+1, stubPlayer{active: true})

	if s.Score() != 108000 {
		t.Errorf("Score() = %d, 期望 108000", s.Score())
	}
}
