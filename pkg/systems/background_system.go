package systems

import (
	"math"

	"github.com/gonewx/ironsky/pkg/config"
	"github.com/gonewx/ironsky/pkg/entities"
	"github.com/gonewx/ironsky/pkg/utils"
)

// BackgroundLayer 一层可平铺的视差背景
type BackgroundLayer struct {
	Name       string
	Factor     float64     // 相对世界滚动的速度系数
	TileWidth  float64
	TileHeight float64
	Offset     utils.Point // 平铺偏移，始终落在 [0,tile) 内
}

// Background 多层视差背景
type Background struct {
	Layers []*BackgroundLayer
}

// NewBackground 按配置创建背景层（按配置顺序从远到近）
func NewBackground(cfg config.BackgroundConfig) *Background {
	layers := make([]*BackgroundLayer, 0, len(cfg.Layers))
	for _, lc := range cfg.Layers {
		layers = append(layers, &BackgroundLayer{
			Name:       lc.Name,
			Factor:     lc.Factor,
			TileWidth:  lc.TileWidth,
			TileHeight: lc.TileHeight,
		})
	}
	return &Background{Layers: layers}
}

// Update 各层按 −velocity × dt × factor 滚动并回绕到单个瓦片内
func (b *Background) Update(dt float64, target entities.Target) {
	v := target.Velocity()
	for _, l := range b.Layers {
		l.Offset = l.Offset.Sub(v.Mul(dt * l.Factor))
		l.Offset.X = wrap(l.Offset.X, l.TileWidth)
		l.Offset.Y = wrap(l.Offset.Y, l.TileHeight)
	}
}

// Reset 所有层回到原点
func (b *Background) Reset() {
	for _, l := range b.Layers {
		l.Offset = utils.Point{}
	}
}

// wrap 正取模，结果在 [0,size)
func wrap(v, size float64) float64 {
	r := math.Mod(v, size)
	if r < 0 {
		r += size
	}
	if r >= size {
		r -= size
	}
	return r
}
