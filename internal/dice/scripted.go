package dice

// Scripted replays a fixed sequence of draws. Once a queue runs dry it keeps
// returning zero, which makes every chance roll succeed and every range pick
// its low end.
type Scripted struct {
	Ints   []int
	Floats []float64
}

// Intn returns the next queued int, reduced modulo n.
func (s *Scripted) Intn(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < 0 {
		v = -v
	}
	return v % n
}

// Float64 returns the next queued float.
func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// Remaining reports how many draws are still queued.
func (s *Scripted) Remaining() (ints, floats int) {
	return len(s.Ints), len(s.Floats)
}
