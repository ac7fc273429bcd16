package runner

import "github.com/vovakirdan/cyberrunner/internal/core"

// Collides reports whether a hazard touches the player. The hazard's box is
// used as drawn while the player's is shrunk by pad, which forgives glancing
// contact. A player box shrunk to nothing never collides.
func Collides(hazard, player core.Rect, pad float64) bool {
	return hazard.Intersects(player.Shrink(pad))
}

// anyCollision reports whether any spawned hazard touches the player.
func anyCollision(hazards []Hazard, player core.Rect, pad float64) bool {
	for _, h := range hazards {
		if h.Spawned() && Collides(h.Dst, player, pad) {
			return true
		}
	}
	return false
}
