package model

// StaminaPool tracks the stamina resource of one combatant.
// Whole units are kept as int32 (what skills consume and the UI shows);
// sub-unit drain and regeneration accumulate in a float remainder so that
// slow per-tick rates are not lost to truncation.
//
// Not safe for concurrent use: the combat core is single-threaded and
// mutation happens only from the owning entity's tick.
type StaminaPool struct {
	current int32
	max     int32

	// accumulator holds the fractional part not yet applied to current.
	// Positive values are pending regeneration, negative pending drain.
	accumulator float64
}

// NewStaminaPool создаёт пул стамины, заполненный до максимума.
func NewStaminaPool(max int32) *StaminaPool {
	if max < 0 {
		max = 0
	}
	return &StaminaPool{current: max, max: max}
}

// Current возвращает текущую стамину.
func (s *StaminaPool) Current() int32 {
	return s.current
}

// Max возвращает максимум стамины.
func (s *StaminaPool) Max() int32 {
	return s.max
}

// IsExhausted reports whether the pool is empty.
func (s *StaminaPool) IsExhausted() bool {
	return s.current <= 0
}

// HasEnough reports whether cost whole units are available.
func (s *StaminaPool) HasEnough(cost int32) bool {
	return s.current >= cost
}

// Consume removes cost whole units at once (skill activation cost).
// Returns false and leaves the pool untouched if not enough is available.
func (s *StaminaPool) Consume(cost int32) bool {
	if cost < 0 {
		return false
	}
	if s.current < cost {
		return false
	}
	s.current -= cost
	return true
}

// Drain removes rate*dt stamina, accumulating the fractional part.
// Used by continuous effects such as the Waiting phase upkeep.
// The pool never drops below zero.
func (s *StaminaPool) Drain(rate, dt float64) {
	if rate <= 0 || dt <= 0 {
		return
	}
	s.accumulator -= rate * dt
	s.settle()
}

// Regenerate adds amount stamina, accumulating the fractional part.
// The pool never exceeds max.
func (s *StaminaPool) Regenerate(amount float64) {
	if amount <= 0 {
		return
	}
	s.accumulator += amount
	s.settle()
}

// settle moves whole units from the accumulator into current,
// clamping to [0, max].
func (s *StaminaPool) settle() {
	for s.accumulator >= 1 {
		s.accumulator--
		s.current++
	}
	for s.accumulator <= -1 {
		s.accumulator++
		s.current--
	}
	if s.current > s.max {
		s.current = s.max
		s.accumulator = 0
	}
	if s.current < 0 {
		s.current = 0
		s.accumulator = 0
	}
	// A full pool discards pending regeneration; a dry pool discards
	// pending drain. Otherwise a long rest would bank invisible stamina.
	if s.current == s.max && s.accumulator > 0 {
		s.accumulator = 0
	}
	if s.current == 0 && s.accumulator < 0 {
		s.accumulator = 0
	}
}
