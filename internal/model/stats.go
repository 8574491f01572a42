package model

// Stats holds the combat attributes the execution core reads.
// Equipment and buff aggregation happen outside this core; these are the
// already-aggregated values.
type Stats struct {
	// Dexterity shortens charge times: time / (1 + dex/10).
	Dexterity int32
	// Focus speeds up ranged accuracy buildup.
	Focus int32
	// Will dampens incoming knockdown buildup displacement (reserved for
	// the resolver's damage side, not read by the meter itself).
	Will int32
}

// ChargeTimeFactor returns the divisor applied to base charge time.
func (s Stats) ChargeTimeFactor() float64 {
	return 1.0 + float64(s.Dexterity)/10.0
}

// FocusMultiplier returns the accuracy buildup multiplier.
func (s Stats) FocusMultiplier() float64 {
	return 1.0 + float64(s.Focus)/100.0
}
