package utils

import "math"

// Point 二维向量（位置、速度、加速度共用）
// 值类型，按值传递
type Point struct {
	X float64
	Y float64
}

// NewPoint 创建一个二维向量
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add 向量加法
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub 向量减法
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Mul 标量乘法
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div 标量除法
// 除数为 0 属于调用方错误，直接 panic（与整数除零行为一致）
func (p Point) Div(s float64) Point {
	if s == 0 {
		panic("utils: tried to divide a point by zero")
	}
	return Point{X: p.X / s, Y: p.Y / s}
}

// Magnitude 返回向量长度
func (p Point) Magnitude() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalized 返回单位向量
// 零向量返回零向量，不视为错误
func (p Point) Normalized() Point {
	m := p.Magnitude()
	if m > 0 {
		return Point{X: p.X / m, Y: p.Y / m}
	}
	return Point{}
}

// Distance 返回两点间的欧氏距离
func (p Point) Distance(o Point) float64 {
	return p.Sub(o).Magnitude()
}

// HeadingDegrees 返回向量方向角（度），atan2(y, x)
// 屏幕坐标系 Y 轴向下，因此正角度为顺时针
func (p Point) HeadingDegrees() float64 {
	return math.Atan2(p.Y, p.X) * 180 / math.Pi
}

// FromDegrees 返回给定角度（度）的单位向量
func FromDegrees(deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{X: math.Cos(rad), Y: math.Sin(rad)}
}
