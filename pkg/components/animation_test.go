package components

import (
	"image"
	"testing"
)

// TestNewFrameSheet 测试精灵表切分
func TestNewFrameSheet(t *testing.T) {
	sheet := NewFrameSheet(800, 400, 2, 4)
	if len(sheet.Frames) != 8 {
		t.Fatalf("帧数 = %d, 期望 8", len(sheet.Frames))
	}
	if sheet.Frames[0] != image.Rect(0, 0, 200, 200) {
		t.Errorf("第0帧 = %v", sheet.Frames[0])
	}
	if sheet.Frames[5] != image.Rect(200, 200, 400, 400) {
		t.Errorf("第5帧 = %v", sheet.Frames[5])
	}

	if empty := NewFrameSheet(100, 100, 0, 4); len(empty.Frames) != 0 {
		t.Errorf("非法网格应返回空帧表, got %d", len(empty.Frames))
	}
}

// TestAnimationPlayback 测试播放、帧索引和自动停止
func TestAnimationPlayback(t *testing.T) {
	anim := NewAnimation(NewFrameSheet(400, 400, 2, 2), 1.0, 1.5)

	anim.Update(0.5)
	if anim.IsPlaying() {
		t.Error("未调用 Play 时不应播放")
	}

	anim.Play()
	tests := []struct {
		advance  float64
		expected int
	}{
		{0.0, 0},
		{0.3, 1},
		{0.3, 2},
		{0.3, 3},
		{0.1, 3}, // elapsed == length，仍在播放，索引被限制
	}
	for _, tt := range tests {
		anim.Update(tt.advance)
		if got := anim.FrameIndex(); got != tt.expected {
			t.Errorf("elapsed=%.1f FrameIndex() = %d, 期望 %d", anim.elapsed, got, tt.expected)
		}
	}
	if !anim.IsPlaying() {
		t.Error("elapsed 等于 length 时仍应播放")
	}

	anim.Update(0.01)
	if anim.IsPlaying() {
		t.Error("elapsed 超过 length 后应自动停止")
	}
	if anim.FrameIndex() != 0 {
		t.Errorf("停止后应回到第0帧, got %d", anim.FrameIndex())
	}
}

// TestAnimationFrame 空帧表没有可用帧
func TestAnimationFrame(t *testing.T) {
	anim := NewAnimation(FrameSheet{}, 1, 1)
	if _, ok := anim.Frame(); ok {
		t.Error("空帧表不应返回帧")
	}

	anim = NewAnimation(NewFrameSheet(10, 10, 1, 1), 1, 1)
	if r, ok := anim.Frame(); !ok || r != image.Rect(0, 0, 10, 10) {
		t.Errorf("Frame() = %v, %v", r, ok)
	}
}

// TestTimerComponent 测试周期计时器保留余量
func TestTimerComponent(t *testing.T) {
	timer := &TimerComponent{Name: "test", TargetTime: 2}

	if timer.Tick(1.5) {
		t.Error("未到周期不应触发")
	}
	if !timer.Tick(0.5) {
		t.Error("累计恰好等于周期应触发")
	}
	if !timer.Tick(5) {
		t.Error("大步长应触发")
	}
	if timer.CurrentTime != 3 {
		t.Errorf("余量 = %v, 期望 3（每次调用只扣除一个周期）", timer.CurrentTime)
	}
	timer.Reset()
	if timer.CurrentTime != 0 {
		t.Error("Reset 后应归零")
	}
}

// TestLifetimeComponent 测试超时判定为严格大于
func TestLifetimeComponent(t *testing.T) {
	l := &LifetimeComponent{MaxLifetime: 1}
	if l.Tick(1) {
		t.Error("恰好等于上限不算超时")
	}
	if !l.Tick(0.001) {
		t.Error("超过上限应超时")
	}
	l.Reset()
	if l.IsExpired() {
		t.Error("Reset 后不应超时")
	}
}
