package scenes

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/gonewx/ironsky/pkg/config"
	"github.com/gonewx/ironsky/pkg/utils"
)

// newStarField 为每个背景层生成一个瓦片内的星星
// 使用独立的固定种子，不影响模拟的随机序列
func newStarField(cfg config.BackgroundConfig) [][]utils.Point {
	field := make([][]utils.Point, len(cfg.Layers))
	for i, layer := range cfg.Layers {
		rng := rand.New(rand.NewSource(int64(i) + 1))
		n := 48/(i+1) + 6
		stars := make([]utils.Point, n)
		for j := range stars {
			stars[j] = utils.NewPoint(rng.Float64()*layer.TileWidth, rng.Float64()*layer.TileHeight)
		}
		field[i] = stars
	}
	return field
}

// tileOrigins 返回覆盖 [0,extent) 所需的瓦片起点
// offset 为 [0,tile) 内的平铺偏移
func tileOrigins(offset, tile, extent float64) []float64 {
	var origins []float64
	for x := offset - tile; x < extent; x += tile {
		origins = append(origins, x)
	}
	return origins
}

// drawBackground 从远到近绘制视差星空
func (s *GameScene) drawBackground(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	for i, layer := range s.world.Background().Layers {
		size := float32(1 + float64(i)*0.35)
		c := fade(colornames.White, 0.35+0.65*layer.Factor)
		xs := tileOrigins(layer.Offset.X, layer.TileWidth, s.screenW)
		ys := tileOrigins(layer.Offset.Y, layer.TileHeight, s.screenH)
		for _, ox := range xs {
			for _, oy := range ys {
				for _, star := range s.starField[i] {
					x, y := ox+star.X, oy+star.Y
					if x < 0 || y < 0 || x >= s.screenW || y >= s.screenH {
						continue
					}
					vector.DrawFilledCircle(screen, float32(x), float32(y), size, c, false)
				}
			}
		}
	}
}
