package world

// Outcome is the result of resolving the player against other entities.
type Outcome struct {
	Collected []*Entity // Collectibles picked up by this call
	Points    int       // Sum of collected values
	Collided  bool      // The player overlaps a hostile entity
}

// Resolve tests the player against every entity. Overlapped uncollected
// collectibles are marked collected and reported once; hostile overlap sets
// Collided. Calling Resolve again without movement yields the same Collided
// value and collects nothing new.
func Resolve(player *Entity, others []Entity) Outcome {
	var out Outcome
	for i := range others {
		e := &others[i]
		if !e.Active() || !player.Bounds.Intersects(e.Bounds) {
			continue
		}

		switch {
		case e.Kind == KindCollectible:
			e.Collected = true
			out.Collected = append(out.Collected, e)
			out.Points += e.Value
		case e.Kind.Hostile():
			out.Collided = true
		}
	}
	return out
}
