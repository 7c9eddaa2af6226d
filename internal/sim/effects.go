package sim

// EffectSet tracks timed modifier end-times against the pausable game clock.
// Collecting a pickup while its effect is running extends the end-time by the
// full duration rather than restarting it.
type EffectSet struct {
	until [effectKindCount]float64
}

// Active reports whether an effect is running at clock time now.
func (s *EffectSet) Active(k EffectKind, now float64) bool {
	return now < s.until[k]
}

// Remaining returns seconds left on an effect, zero when expired.
func (s *EffectSet) Remaining(k EffectKind, now float64) float64 {
	if r := s.until[k] - now; r > 0 {
		return r
	}
	return 0
}

// Extend adds duration seconds: stacking on the current end-time while the
// effect runs, starting fresh from now otherwise.
func (s *EffectSet) Extend(k EffectKind, now, duration float64) {
	if s.until[k] < now {
		s.until[k] = now
	}
	s.until[k] += duration
}

// Clear expires an effect immediately.
func (s *EffectSet) Clear(k EffectKind) {
	s.until[k] = 0
}

// ClearAll expires everything.
func (s *EffectSet) ClearAll() {
	s.until = [effectKindCount]float64{}
}

// EndTimes exposes the raw end-times for snapshots and soft resets.
func (s *EffectSet) EndTimes() [effectKindCount]float64 { return s.until }

// SetEndTimes restores raw end-times.
func (s *EffectSet) SetEndTimes(t [effectKindCount]float64) { s.until = t }
