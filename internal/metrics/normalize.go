package metrics

// Population collects every player's raw value per metric key, so that
// min/max are taken over the full candidate pool. Normalizing against a
// partial pool would skew min/max and make scores incomparable, so the
// pipeline builds the whole Population before normalizing any player.
type Population map[string][]float64

// Add records one player's raw value for the keyed metric.
func (p Population) Add(key string, value float64) {
	p[key] = append(p[key], value)
}

// AddAll records a full metric map under the given key prefix. Callers
// prefix by side and evaluating role, since the same metric name can
// exist on both sides or in more than one role's metric set.
func (p Population) AddAll(prefix string, values map[string]float64) {
	for name, v := range values {
		p.Add(prefix+name, v)
	}
}

// Normalize min-max rescales a single value against the pool for its
// metric. If every value in the pool is identical the result is 1: a
// metric the whole population ties on should not penalize anyone. The
// same applies to an empty or single-entry pool.
func (p Population) Normalize(key string, value float64) float64 {
	values := p[key]
	if len(values) == 0 {
		return 1
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		return 1
	}
	return (value - min) / (max - min)
}

// NormalizeAll rescales a player's metric map against the prefixed pools.
func (p Population) NormalizeAll(prefix string, raw map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(raw))
	for name, v := range raw {
		out[name] = p.Normalize(prefix+name, v)
	}
	return out
}
