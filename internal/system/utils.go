// internal/system/utils.go
package system

import "go-space-shooter/internal/component"

// DamagePlayer снимает жизни с игрока. Жизни не уходят ниже нуля.
// Возвращает оставшееся количество жизней.
func DamagePlayer(p *component.Player, amount int) int {
	if amount < 0 {
		amount = 0
	}
	p.Lives -= amount
	if p.Lives < 0 {
		p.Lives = 0
	}
	return p.Lives
}
