// internal/ui/field_renderer.go
package ui

import (
	"go-space-shooter/internal/app"
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldRenderer рисует сущности снимка сессии
type FieldRenderer struct {
	sprites *assets.SpriteManager
}

func NewFieldRenderer(sprites *assets.SpriteManager) *FieldRenderer {
	return &FieldRenderer{sprites: sprites}
}

func (r *FieldRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(config.BackgroundColor)

	// Сначала фон, затем снаряды и корабли, взрывы поверх всего
	for _, p := range snap.Particles {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), config.ParticleColor, false)
	}
	for _, b := range snap.Bullets {
		r.drawBullet(screen, b)
	}
	for _, b := range snap.EnemyBullets {
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), config.EnemyBulletColor, true)
	}
	for _, e := range snap.Enemies {
		if img := r.sprites.Enemy(e.Sprite); img != nil {
			drawSprite(screen, img, e)
			continue
		}
		vector.DrawFilledRect(screen, float32(e.X), float32(e.Y), float32(e.Width), float32(e.Height), config.EnemyColors[0], true)
	}
	if snap.PlayerAlive {
		drawSprite(screen, r.sprites.Player(), snap.Player)
	}
	for _, x := range snap.Explosions {
		if img := r.sprites.Explosion(x.Sprite); img != nil {
			drawSprite(screen, img, x)
		}
	}
}

// drawBullet рисует пулю отрезком вдоль направления полёта.
func (r *FieldRenderer) drawBullet(screen *ebiten.Image, b component.Renderable) {
	if b.Angle == 0 {
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), config.BulletColor, true)
		return
	}
	cx, cy := b.X+b.Width/2, b.Y+b.Height/2
	dx, dy := math.Sin(b.Angle)*b.Height/2, -math.Cos(b.Angle)*b.Height/2
	vector.StrokeLine(screen, float32(cx-dx), float32(cy-dy), float32(cx+dx), float32(cy+dy), float32(b.Width), config.BulletColor, true)
}

func drawSprite(screen, img *ebiten.Image, e component.Renderable) {
	op := &ebiten.DrawImageOptions{}
	bw, bh := img.Bounds().Dx(), img.Bounds().Dy()
	op.GeoM.Scale(e.Width/float64(bw), e.Height/float64(bh))
	op.GeoM.Translate(e.X, e.Y)
	screen.DrawImage(img, op)
}
