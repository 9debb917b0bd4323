package components

import (
	"errors"
	"math"
	"testing"

	"github.com/gonewx/ironsky/pkg/utils"
)

func linearKeyframes() []Keyframe {
	return []Keyframe{{0, 0}, {1, 100}}
}

// TestNewTween_Invalid 测试非法构造参数
func TestNewTween_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		keyframes []Keyframe
		length    float64
		wantErr   error
	}{
		{"时长为0", linearKeyframes(), 0, ErrInvalidTweenLength},
		{"关键帧不足", []Keyframe{{0, 0}}, 1, ErrTooFewKeyframes},
		{"关键帧乱序", []Keyframe{{0.5, 0}, {0.2, 1}}, 1, ErrUnsortedKeyframes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTween(tt.keyframes, tt.length, utils.EasingLinear, false); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, 期望 %v", err, tt.wantErr)
			}
		})
	}
}

// TestTweenValue 测试插值取值
func TestTweenValue(t *testing.T) {
	tests := []struct {
		name     string
		easing   utils.Easing
		advance  float64
		expected float64
	}{
		{"起点", utils.EasingLinear, 0, 0},
		{"线性中点", utils.EasingLinear, 5, 50},
		{"终点", utils.EasingLinear, 10, 100},
		{"缓出中点", utils.EasingEaseOut, 5, 87.5},
		{"缓入中点", utils.EasingEaseIn, 5, 12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := MustTween(linearKeyframes(), 10, tt.easing, false)
			tw.Reset()
			tw.Update(tt.advance)
			if got := tw.Value(); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Value() = %v, 期望 %v", got, tt.expected)
			}
		})
	}
}

// TestTweenMultipleKeyframes 测试多段关键帧定位
func TestTweenMultipleKeyframes(t *testing.T) {
	tw := MustTween([]Keyframe{{0, 0}, {0.5, 10}, {1, 110}}, 10, utils.EasingLinear, false)
	tw.Reset()

	tw.Update(2.5)
	if got := tw.Value(); math.Abs(got-5) > 1e-9 {
		t.Errorf("t=2.5 Value() = %v, 期望 5", got)
	}

	tw.Update(5)
	if got := tw.Value(); math.Abs(got-60) > 1e-9 {
		t.Errorf("t=7.5 Value() = %v, 期望 60", got)
	}
}

// TestTweenFirstKeyframeAboveZero 进度低于第一个关键帧时返回第一个值
func TestTweenFirstKeyframeAboveZero(t *testing.T) {
	tw := MustTween([]Keyframe{{0.5, 7}, {1, 9}}, 10, utils.EasingLinear, false)
	tw.Reset()
	tw.Update(1)
	if got := tw.Value(); got != 7 {
		t.Errorf("Value() = %v, 期望 7", got)
	}
}

// TestTweenLooped 循环补间超时后回绕
func TestTweenLooped(t *testing.T) {
	tw := MustTween(linearKeyframes(), 10, utils.EasingLinear, true)
	tw.Reset()
	tw.Update(12)

	if !tw.IsPlaying() {
		t.Error("循环补间应继续播放")
	}
	if math.Abs(tw.Elapsed()-2) > 1e-9 {
		t.Errorf("Elapsed() = %v, 期望 2", tw.Elapsed())
	}
	if got := tw.Value(); math.Abs(got-20) > 1e-9 {
		t.Errorf("Value() = %v, 期望 20", got)
	}
}

// TestTweenNonLoopedStops 非循环补间超时后停止并停在终点
func TestTweenNonLoopedStops(t *testing.T) {
	tw := MustTween(linearKeyframes(), 10, utils.EasingLinear, false)
	tw.Reset()
	tw.Update(11)

	if tw.IsPlaying() {
		t.Error("非循环补间超时后应停止")
	}
	if tw.Elapsed() != 10 {
		t.Errorf("Elapsed() = %v, 期望 10", tw.Elapsed())
	}
	// 停止状态返回最后一个关键帧的值
	if got := tw.Value(); got != 100 {
		t.Errorf("停止后 Value() = %v, 期望 100", got)
	}
}

// TestTweenUpdateWhileStopped 停止状态下 Update 无效果
func TestTweenUpdateWhileStopped(t *testing.T) {
	tw := MustTween(linearKeyframes(), 10, utils.EasingLinear, false)
	tw.Update(5)
	if tw.Elapsed() != 0 || tw.IsPlaying() {
		t.Errorf("未播放时 Update 不应生效: elapsed=%v playing=%v", tw.Elapsed(), tw.IsPlaying())
	}

	tw.Reset()
	tw.Update(3)
	tw.Stop()
	if tw.IsPlaying() || tw.Elapsed() != tw.Length() {
		t.Errorf("Stop() 后: elapsed=%v playing=%v", tw.Elapsed(), tw.IsPlaying())
	}
}
