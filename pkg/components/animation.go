package components

import (
	"image"

	"github.com/gonewx/ironsky/pkg/utils"
)

// FrameSheet 精灵表的帧表（rows×cols 网格，按行优先排列）
type FrameSheet struct {
	Frames []image.Rectangle
}

// NewFrameSheet 按网格切分精灵表
//
// 参数:
//   - width, height: 精灵表整图尺寸（像素）
//   - rows, cols: 网格行列数
func NewFrameSheet(width, height, rows, cols int) FrameSheet {
	if rows <= 0 || cols <= 0 {
		return FrameSheet{}
	}
	fw, fh := width/cols, height/rows
	frames := make([]image.Rectangle, 0, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			frames = append(frames, image.Rect(x*fw, y*fh, (x+1)*fw, (y+1)*fh))
		}
	}
	return FrameSheet{Frames: frames}
}

// AnimationComponent 管理基于精灵表的一次性帧动画（爆炸）
// 帧索引完全由 elapsed/length 决定，可重复播放
type AnimationComponent struct {
	Sheet   FrameSheet
	Pos     utils.Point // 绘制中心
	Zoom    float64     // 绘制缩放
	length  float64     // 总时长（秒）
	elapsed float64     // 已播放时长（秒）
	playing bool
}

// NewAnimation 创建停止状态的帧动画
func NewAnimation(sheet FrameSheet, length, zoom float64) *AnimationComponent {
	return &AnimationComponent{
		Sheet:  sheet,
		Zoom:   zoom,
		length: length,
	}
}

// Play 从第一帧开始播放
func (a *AnimationComponent) Play() {
	a.elapsed = 0
	a.playing = true
}

// Stop 停止并回到第一帧
func (a *AnimationComponent) Stop() {
	a.playing = false
	a.elapsed = 0
}

// Update 推进动画，超过总时长后自动停止
func (a *AnimationComponent) Update(dt float64) {
	if !a.playing {
		return
	}
	a.elapsed += dt
	if a.elapsed > a.length {
		a.Stop()
	}
}

// IsPlaying 是否正在播放
func (a *AnimationComponent) IsPlaying() bool {
	return a.playing
}

// SetPos 设置绘制中心
func (a *AnimationComponent) SetPos(p utils.Point) {
	a.Pos = p
}

// Progress 返回播放进度 [0,1]
func (a *AnimationComponent) Progress() float64 {
	if a.length <= 0 {
		return 0
	}
	p := a.elapsed / a.length
	if p > 1 {
		p = 1
	}
	return p
}

// FrameIndex 返回当前帧索引 floor(elapsed/length × 帧数)，限制在有效范围内
// 帧表为空时返回 -1
func (a *AnimationComponent) FrameIndex() int {
	n := len(a.Sheet.Frames)
	if n == 0 {
		return -1
	}
	idx := int(a.Progress() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// Frame 返回当前帧在精灵表中的矩形
func (a *AnimationComponent) Frame() (image.Rectangle, bool) {
	idx := a.FrameIndex()
	if idx < 0 {
		return image.Rectangle{}, false
	}
	return a.Sheet.Frames[idx], true
}
