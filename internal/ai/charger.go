package ai

import (
	"log/slog"

	"github.com/fynwyd/mabigo/internal/game/combat"
	"github.com/fynwyd/mabigo/internal/model"
)

// Charger cycles through a fixed rotation of melee skills: charge the next
// one whenever idle, execute as soon as the charge completes.
type Charger struct {
	actor    *model.Combatant
	machine  *combat.Machine
	rotation []model.SkillKind
	next     int
}

// NewCharger creates a charger driver with the given skill rotation.
func NewCharger(actor *model.Combatant, machine *combat.Machine, rotation []model.SkillKind) *Charger {
	if len(rotation) == 0 {
		rotation = []model.SkillKind{model.SkillAttack}
	}
	return &Charger{actor: actor, machine: machine, rotation: rotation}
}

func (c *Charger) Name() string { return c.actor.Name() }

func (c *Charger) Tick(dt float64) {
	target := c.actor.Target()
	if target == nil || target.IsDead() {
		return
	}

	switch c.machine.CurrentPhase() {
	case combat.PhaseUncharged:
		if !c.actor.Status().CanAct() {
			return
		}
		kind := c.rotation[c.next]
		if c.machine.StartCharging(kind) {
			c.next = (c.next + 1) % len(c.rotation)
			slog.Debug("driver charging", "entity", c.actor.Name(), "skill", kind)
		}
	case combat.PhaseCharged:
		c.machine.Execute()
	}
}
