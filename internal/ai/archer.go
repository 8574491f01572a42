package ai

import (
	"github.com/fynwyd/mabigo/internal/game/combat"
	"github.com/fynwyd/mabigo/internal/model"
)

// Archer aims at its target until the accuracy reaches a release threshold
// (or a patience limit) and fires.
type Archer struct {
	actor   *model.Combatant
	machine *combat.Machine

	// ReleaseAccuracy fires the shot once accuracy reaches this value.
	ReleaseAccuracy float64
	// MaxAimSeconds fires regardless after this long on target.
	MaxAimSeconds float64

	aimed float64
}

// NewArcher creates an archer driver with default release thresholds.
func NewArcher(actor *model.Combatant, machine *combat.Machine) *Archer {
	return &Archer{
		actor:           actor,
		machine:         machine,
		ReleaseAccuracy: 90,
		MaxAimSeconds:   4,
	}
}

func (a *Archer) Name() string { return a.actor.Name() }

func (a *Archer) Tick(dt float64) {
	target := a.actor.Target()
	if target == nil || target.IsDead() {
		return
	}

	switch a.machine.CurrentPhase() {
	case combat.PhaseUncharged:
		a.aimed = 0
		a.machine.StartAiming(target)
	case combat.PhaseAiming:
		a.aimed += dt
		if a.machine.Accuracy() >= a.ReleaseAccuracy || a.aimed >= a.MaxAimSeconds {
			a.machine.Execute()
		}
	}
}
