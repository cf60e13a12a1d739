package assets

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/pkg/render"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpriteManager генерирует и кэширует спрайты кораблей и кадры взрывов.
// Картинок на диске нет, всё рисуется векторно при первом обращении.
type SpriteManager struct {
	white      *ebiten.Image
	player     *ebiten.Image
	enemies    []*ebiten.Image
	explosions []*ebiten.Image
	shipW      int
	shipH      int
}

// NewSpriteManager создает новый экземпляр SpriteManager.
func NewSpriteManager(shipWidth, shipHeight int) *SpriteManager {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &SpriteManager{
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		shipW: shipWidth,
		shipH: shipHeight,
	}
}

// Load строит все спрайты заранее, чтобы первый кадр игры не тормозил.
func (m *SpriteManager) Load(enemyVariants, explosionFrames int) {
	m.player = m.buildPlayer()
	m.enemies = make([]*ebiten.Image, enemyVariants)
	for i := range m.enemies {
		m.enemies[i] = m.buildEnemy(render.Pick(config.EnemyColors, i))
	}
	m.explosions = make([]*ebiten.Image, explosionFrames)
	for i := range m.explosions {
		m.explosions[i] = m.buildExplosionFrame(i, explosionFrames)
	}
	log.Printf("Generated sprites: 1 player, %d enemies, %d explosion frames", enemyVariants, explosionFrames)
}

func (m *SpriteManager) Player() *ebiten.Image {
	if m.player == nil {
		m.player = m.buildPlayer()
	}
	return m.player
}

// Enemy returns the sprite for variant i, or nil if it does not exist.
func (m *SpriteManager) Enemy(i int) *ebiten.Image {
	if i < 0 || i >= len(m.enemies) {
		return nil
	}
	return m.enemies[i]
}

// Explosion returns frame i. Player explosions have more frames than were
// generated, so the index is clamped to the last frame.
func (m *SpriteManager) Explosion(i int) *ebiten.Image {
	if i < 0 || len(m.explosions) == 0 {
		return nil
	}
	if i >= len(m.explosions) {
		i = len(m.explosions) - 1
	}
	return m.explosions[i]
}

// Cleanup освобождает GPU-память спрайтов.
func (m *SpriteManager) Cleanup() {
	for _, img := range append(append([]*ebiten.Image{m.player}, m.enemies...), m.explosions...) {
		if img != nil {
			img.Deallocate()
		}
	}
	m.player, m.enemies, m.explosions = nil, nil, nil
}

func (m *SpriteManager) buildPlayer() *ebiten.Image {
	w, h := float32(m.shipW), float32(m.shipH)
	img := ebiten.NewImage(m.shipW, m.shipH)

	var hull vector.Path
	hull.MoveTo(w/2, 0)
	hull.LineTo(w, h*0.85)
	hull.LineTo(w/2, h*0.7)
	hull.LineTo(0, h*0.85)
	hull.Close()
	m.fillPath(img, &hull, config.PlayerColor)

	vector.DrawFilledCircle(img, w/2, h*0.45, w*0.08, color.White, true)
	vector.DrawFilledRect(img, w*0.3, h*0.85, w*0.1, h*0.15, config.BulletColor, true)
	vector.DrawFilledRect(img, w*0.6, h*0.85, w*0.1, h*0.15, config.BulletColor, true)
	return img
}

func (m *SpriteManager) buildEnemy(c color.RGBA) *ebiten.Image {
	w, h := float32(m.shipW), float32(m.shipH)
	img := ebiten.NewImage(m.shipW, m.shipH)

	var hull vector.Path
	hull.MoveTo(0, h*0.1)
	hull.LineTo(w, h*0.1)
	hull.LineTo(w/2, h)
	hull.Close()
	m.fillPath(img, &hull, c)

	vector.DrawFilledCircle(img, w/2, h*0.4, w*0.12, render.DarkenColor(c, 0.85), true)
	vector.StrokeLine(img, w*0.15, h*0.1, w*0.15, 0, 2, c, true)
	vector.StrokeLine(img, w*0.85, h*0.1, w*0.85, 0, 2, c, true)
	return img
}

// buildExplosionFrame: кольцо растёт и тускнеет от кадра к кадру.
func (m *SpriteManager) buildExplosionFrame(frame, frames int) *ebiten.Image {
	w, h := float32(m.shipW), float32(m.shipH)
	img := ebiten.NewImage(m.shipW, m.shipH)
	progress := float64(frame+1) / float64(frames)

	alpha := uint8(255 * (1 - 0.7*progress))
	outer := render.Lerp(render.Pick(config.ExplosionColors, 0), render.Pick(config.ExplosionColors, len(config.ExplosionColors)-1), progress)
	inner := render.Pick(config.ExplosionColors, 0)
	r := float32(math.Min(float64(w), float64(h)) / 2 * (0.3 + 0.7*progress))

	vector.DrawFilledCircle(img, w/2, h/2, r, render.Fade(outer, alpha), true)
	vector.DrawFilledCircle(img, w/2, h/2, r*float32(1-progress)*0.8, render.Fade(inner, alpha), true)
	return img
}

func (m *SpriteManager) fillPath(dst *ebiten.Image, p *vector.Path, c color.RGBA) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	dst.DrawTriangles(vs, is, m.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
