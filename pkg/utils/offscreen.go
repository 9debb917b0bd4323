package utils

import "math"

// OverlayScale 屏幕外对象在指示器位置绘制缩略图时的缩放比例
const OverlayScale = 0.4

// Pointer 屏幕外指示器的放置结果
type Pointer struct {
	Pos      Point   // 指示器中心（屏幕坐标）
	Rotation float64 // 旋转角度（度），0 表示朝上
}

// IsOffscreen 判断位置是否在屏幕外
// 贴边（x=0、y=0、x=width、y=height）也算屏幕外
func IsOffscreen(pos Point, width, height float64) bool {
	return pos.X <= 0 || pos.Y <= 0 || pos.X >= width || pos.Y >= height
}

// PlacePointer 计算屏幕外对象的边缘指示器位置和朝向
//
// 以屏幕中心（玩家）为原点，沿中心到对象的射线缩放，
// 取先碰到的那条内缩 offset 的矩形边，缩放比例为 min(半宽/|dx|, 半高/|dy|)。
// 因此指示器总是落在内缩矩形的边上，包括对象刚越过屏幕角附近的情况。
//
// 参数:
//   - pos: 对象的屏幕坐标
//   - width, height: 屏幕尺寸
//   - offset: 指示器距屏幕边缘的内缩距离
//
// 返回:
//   - Pointer: 指示器位置与朝向
//   - bool: 对象在屏幕内时返回 false
func PlacePointer(pos Point, width, height, offset float64) (Pointer, bool) {
	if !IsOffscreen(pos, width, height) {
		return Pointer{}, false
	}

	center := NewPoint(width/2, height/2)
	rel := pos.Sub(center)
	halfW, halfH := width/2-offset, height/2-offset

	// 屏幕外的对象至少有一个分量不为 0，scale 总是有限值且 ≤ 1
	scale := math.Inf(1)
	if rel.X != 0 {
		scale = halfW / math.Abs(rel.X)
	}
	if rel.Y != 0 {
		scale = math.Min(scale, halfH/math.Abs(rel.Y))
	}

	// +90 使 0 度朝上，与精灵朝向一致
	return Pointer{
		Pos:      center.Add(rel.Mul(scale)),
		Rotation: math.Atan2(rel.Y, rel.X)*180/math.Pi + 90,
	}, true
}
