package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/gonewx/ironsky/pkg/entities"
	"github.com/gonewx/ironsky/pkg/utils"
)

var (
	playerColor  = colornames.Deepskyblue
	missileColor = colornames.Orangered
	pickupColor  = colornames.Gold
)

func (s *GameScene) drawPlayer(screen *ebiten.Image) {
	p := s.world.Player()
	switch p.State() {
	case entities.PlayerActive:
		r := p.GetCollider().Radius()
		drawOutline(screen, shipOutline(p.Position(), p.Rotation(), r), 3, playerColor)
	case entities.PlayerExploding:
		drawExplosion(screen, p.Explosion())
	case entities.PlayerInactive:
	}
}

func (s *GameScene) drawMissiles(screen *ebiten.Image) {
	for _, m := range s.world.Missiles() {
		switch m.State() {
		case entities.MissileActive:
			drawMissile(screen, m.Position(), m.Rotation(), m.GetCollider().Radius(), 1)
		case entities.MissileExploding:
			drawExplosion(screen, m.Explosion())
		case entities.MissileInactive:
		}
	}
}

func (s *GameScene) drawPickups(screen *ebiten.Image) {
	for _, p := range s.world.Pickups() {
		if p.IsInactive() {
			continue
		}
		drawPickup(screen, p.Position(), p.Rotation(), p.GetCollider().Radius()*p.Scale(), p.Opacity())
	}
}

// drawMissile 导弹：实心圆加朝向线
func drawMissile(screen *ebiten.Image, pos utils.Point, heading, r, scale float64) {
	r *= scale
	nose := pos.Add(utils.FromDegrees(heading).Mul(r * 1.6))
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(r), missileColor, true)
	vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(nose.X), float32(nose.Y),
		float32(math.Max(1, r/4)), missileColor, true)
}

// drawPickup 星星：圆心加四条随自转旋转的光芒
func drawPickup(screen *ebiten.Image, pos utils.Point, rotation, r, opacity float64) {
	if r <= 0 || opacity <= 0 {
		return
	}
	c := fade(pickupColor, opacity)
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(r*0.5), c, true)
	for i := 0; i < 4; i++ {
		tip := pos.Add(utils.FromDegrees(rotation + float64(i)*90).Mul(r))
		vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(tip.X), float32(tip.Y),
			float32(math.Max(1, r/6)), c, true)
	}
}

// shipOutline 以 heading（度，0 朝右）为机头方向的三角形
func shipOutline(center utils.Point, heading, size float64) [3]utils.Point {
	return [3]utils.Point{
		center.Add(utils.FromDegrees(heading).Mul(size)),
		center.Add(utils.FromDegrees(heading + 140).Mul(size)),
		center.Add(utils.FromDegrees(heading - 140).Mul(size)),
	}
}

func drawOutline(screen *ebiten.Image, pts [3]utils.Point, width float32, c color.Color) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, c, true)
	}
}

// fade 按不透明度缩放预乘 alpha 颜色
func fade(c color.RGBA, opacity float64) color.RGBA {
	if opacity <= 0 {
		return color.RGBA{}
	}
	if opacity >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}
