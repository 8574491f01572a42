package ai

import (
	"github.com/fynwyd/mabigo/internal/data"
	"github.com/fynwyd/mabigo/internal/game/combat"
	"github.com/fynwyd/mabigo/internal/model"
)

// Defender keeps a defensive window open whenever possible, resting to
// recover stamina when it runs too low to hold the stance.
type Defender struct {
	actor   *model.Combatant
	machine *combat.Machine
	skill   model.SkillKind
}

// NewDefender creates a defender driver holding the given defensive skill
// (Defense or Counter).
func NewDefender(actor *model.Combatant, machine *combat.Machine, skill model.SkillKind) *Defender {
	if !skill.IsDefensive() {
		skill = model.SkillDefense
	}
	return &Defender{actor: actor, machine: machine, skill: skill}
}

func (d *Defender) Name() string { return d.actor.Name() }

func (d *Defender) Tick(dt float64) {
	if d.machine.CurrentPhase() != combat.PhaseUncharged {
		return
	}
	if !d.actor.Status().CanAct() {
		return
	}

	tmpl := data.GetSkillTemplate(d.skill)
	if tmpl == nil {
		return
	}

	// Hold the stance only with a cushion above the activation cost,
	// otherwise rest until half full.
	if d.actor.Stamina().Current() < tmpl.StaminaCost*2 {
		d.actor.Status().StartRest()
		return
	}
	if d.actor.Status().IsResting() {
		if d.actor.Stamina().Current() < d.actor.Stamina().Max()/2 {
			return
		}
		d.actor.Status().StopRest()
	}

	d.machine.StartCharging(d.skill)
}
