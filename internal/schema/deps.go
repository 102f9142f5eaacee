package schema

// SortByDependencies orders entities so that every reference target comes
// before the entities pointing at it. Cycles are broken with a scoring
// heuristic: fewer unsatisfied dependencies win, entities sitting on a
// mutual cycle get a boost so the cycle is cut early, and ties fall back to
// name order to keep the output deterministic.
func SortByDependencies(entities []*Entity) []*Entity {
	var sorted []*Entity
	processed := make(map[string]bool)

	for len(sorted) < len(entities) {
		added := false

		// Pass 1: entities whose dependencies are all placed
		for _, e := range entities {
			if processed[e.Name] {
				continue
			}
			ready := true
			for _, dep := range e.Dependencies {
				if !processed[dep] {
					ready = false
					break
				}
			}
			if ready {
				sorted = append(sorted, e)
				processed[e.Name] = true
				added = true
			}
		}
		if added {
			continue
		}

		// Pass 2: nothing placed, so there is a cycle. Pick the best candidate.
		var best *Entity
		bestScore := -1 << 30

		for _, e := range entities {
			if processed[e.Name] {
				continue
			}

			score := 0
			unprocessed := 0
			for _, dep := range e.Dependencies {
				if !processed[dep] {
					unprocessed++
				}
			}
			score -= unprocessed * 100

			if onMutualCycle(e, entities, processed) {
				score += 500
			}

			if score > bestScore || (score == bestScore && (best == nil || e.Name < best.Name)) {
				bestScore = score
				best = e
			}
		}

		if best == nil {
			// all remaining entities unreachable; should not happen
			break
		}
		sorted = append(sorted, best)
		processed[best.Name] = true
	}

	return sorted
}

// onMutualCycle reports whether e has an unplaced dependency that depends
// back on e.
func onMutualCycle(e *Entity, entities []*Entity, processed map[string]bool) bool {
	for _, depName := range e.Dependencies {
		if processed[depName] {
			continue
		}
		for _, cand := range entities {
			if cand.Name != depName {
				continue
			}
			for _, candDep := range cand.Dependencies {
				if candDep == e.Name {
					return true
				}
			}
		}
	}
	return false
}
