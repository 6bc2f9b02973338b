package rng

// Reservoir draws one candidate, weighted, from a stream whose size is not
// known up front. Each offer replaces the current pick with chance
// weight/runningTotal.
type Reservoir[T any] struct {
	src   *Source
	total int
	pick  T
	found bool
}

// NewReservoir starts an empty draw
func NewReservoir[T any](src *Source) *Reservoir[T] {
	return &Reservoir[T]{src: src}
}

// Offer presents a candidate. Non-positive weights are ignored.
func (r *Reservoir[T]) Offer(candidate T, weight int) {
	if weight <= 0 {
		return
	}
	r.total += weight
	if r.src.XChanceInY(weight, r.total) {
		r.pick = candidate
		r.found = true
	}
}

// Pick returns the selection. ok is false when nothing was offered.
func (r *Reservoir[T]) Pick() (T, bool) {
	return r.pick, r.found
}

// Weighted pairs a value with its selection weight
type Weighted[T any] struct {
	Value  T
	Weight int
}

// Choose runs a reservoir over a fixed candidate list
func Choose[T any](src *Source, candidates ...Weighted[T]) (T, bool) {
	res := NewReservoir[T](src)
	for _, c := range candidates {
		res.Offer(c.Value, c.Weight)
	}
	return res.Pick()
}
