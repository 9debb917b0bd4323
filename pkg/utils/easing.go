package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制补间动画的速度曲线。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// Easing 缓动类型，用于配置补间动画
type Easing int

const (
	EasingLinear    Easing = iota // 线性
	EasingEaseIn                  // 三次方缓入
	EasingEaseOut                 // 三次方缓出
	EasingEaseInOut               // 三次方缓入缓出
)

// EasingFunc 缓动函数签名
type EasingFunc func(t float64) float64

// Func 返回缓动类型对应的函数
// 未知类型退化为线性
func (e Easing) Func() EasingFunc {
	switch e {
	case EasingEaseIn:
		return EaseInCubic
	case EasingEaseOut:
		return EaseOutCubic
	case EasingEaseInOut:
		return EaseInOutCubic
	default:
		return EaseLinear
	}
}

// String 返回缓动类型名称（用于日志）
func (e Easing) String() string {
	switch e {
	case EasingLinear:
		return "linear"
	case EasingEaseIn:
		return "ease-in"
	case EasingEaseOut:
		return "ease-out"
	case EasingEaseInOut:
		return "ease-in-out"
	default:
		return "unknown"
	}
}

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseInCubic 三次方缓入
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseOutCubic 三次方缓出
// 公式：f(t) = (t-1)³ + 1
func EaseOutCubic(t float64) float64 {
	return math.Pow(t-1, 3) + 1
}

// EaseInOutCubic 三次方缓入缓出，关于 0.5 对称
// 公式：
//
//	t < 0.5:  f(t) = (2t)³ / 2
//	t >= 0.5: f(t) = (2t-2)³ / 2 + 1
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return math.Pow(t*2, 3) * 0.5
	}
	return math.Pow(t*2-2, 3)*0.5 + 1
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
