package components

import (
	"errors"
	"fmt"

	"github.com/gonewx/ironsky/pkg/utils"
)

var (
	// ErrInvalidTweenLength 补间总时长必须大于 0
	ErrInvalidTweenLength = errors.New("tween length must be greater than 0")
	// ErrTooFewKeyframes 补间至少需要两个关键帧
	ErrTooFewKeyframes = errors.New("tween needs at least 2 keyframes")
	// ErrUnsortedKeyframes 关键帧必须按进度升序排列
	ErrUnsortedKeyframes = errors.New("tween keyframes must be sorted by fraction")
)

// Keyframe 补间关键帧
type Keyframe struct {
	Frac  float64 // 在总时长中的进度位置 [0,1]
	Value float64 // 该位置的取值
}

// Tween 基于关键帧的补间动画
// 用于驱动旋转、淡出、缩放等纯视觉效果
//
// 生命周期：创建后处于停止状态，Reset() 从头播放，
// Update(dt) 推进时间，非循环补间播放完后自动停止。
type Tween struct {
	keyframes []Keyframe
	length    float64 // 总时长（秒）
	elapsed   float64 // 已播放时长（秒）
	easing    utils.EasingFunc
	looped    bool
	playing   bool
}

// NewTween 创建补间动画（初始为停止状态）
//
// 参数:
//   - keyframes: 关键帧，至少两个，按 Frac 升序
//   - length: 总时长（秒），必须大于 0
//   - easing: 缓动类型
//   - looped: 是否循环
func NewTween(keyframes []Keyframe, length float64, easing utils.Easing, looped bool) (*Tween, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidTweenLength, length)
	}
	if len(keyframes) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewKeyframes, len(keyframes))
	}
	for i := 1; i < len(keyframes); i++ {
		if keyframes[i].Frac < keyframes[i-1].Frac {
			return nil, fmt.Errorf("%w: index %d", ErrUnsortedKeyframes, i)
		}
	}

	kf := make([]Keyframe, len(keyframes))
	copy(kf, keyframes)

	return &Tween{
		keyframes: kf,
		length:    length,
		easing:    easing.Func(),
		looped:    looped,
	}, nil
}

// MustTween 与 NewTween 相同，但参数非法时 panic
func MustTween(keyframes []Keyframe, length float64, easing utils.Easing, looped bool) *Tween {
	tw, err := NewTween(keyframes, length, easing, looped)
	if err != nil {
		panic(err)
	}
	return tw
}

// Update 推进补间时间
// 超出总时长时：循环补间减去一个周期；非循环补间停止并停在终点
func (tw *Tween) Update(dt float64) {
	if !tw.playing {
		return
	}
	tw.elapsed += dt
	if tw.elapsed > tw.length {
		if tw.looped {
			tw.elapsed -= tw.length
		} else {
			tw.playing = false
			tw.elapsed = tw.length
		}
	}
}

// Value 返回当前插值结果
// 停止状态下返回最后一个关键帧的值
func (tw *Tween) Value() float64 {
	last := tw.keyframes[len(tw.keyframes)-1]
	if !tw.playing {
		return last.Value
	}

	frac := tw.elapsed / tw.length

	// 第一个进度不小于当前进度的关键帧
	idx := -1
	for i, kf := range tw.keyframes {
		if kf.Frac >= frac {
			idx = i
			break
		}
	}

	switch {
	case idx < 0:
		return last.Value
	case idx == 0:
		return tw.keyframes[0].Value
	}

	from, to := tw.keyframes[idx-1], tw.keyframes[idx]
	local := (frac - from.Frac) / (to.Frac - from.Frac)
	return utils.Lerp(from.Value, to.Value, tw.easing(local))
}

// Reset 从头开始播放
func (tw *Tween) Reset() {
	tw.playing = true
	tw.elapsed = 0
}

// Stop 停止播放并停在终点
func (tw *Tween) Stop() {
	tw.playing = false
	tw.elapsed = tw.length
}

// IsPlaying 是否正在播放
func (tw *Tween) IsPlaying() bool {
	return tw.playing
}

// Elapsed 返回已播放时长（秒）
func (tw *Tween) Elapsed() float64 {
	return tw.elapsed
}

// Length 返回总时长（秒）
func (tw *Tween) Length() float64 {
	return tw.length
}
