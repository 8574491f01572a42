package data

import (
	"fmt"
	"log/slog"

	"github.com/fynwyd/mabigo/internal/model"
)

// SkillTable — глобальный registry всех skill templates.
// Загружается через LoadSkills() при старте симуляции.
var SkillTable map[model.SkillKind]*SkillTemplate

// GetSkillTemplate возвращает SkillTemplate по виду скилла.
// Returns nil если скилл не найден или таблица не загружена.
func GetSkillTemplate(kind model.SkillKind) *SkillTemplate {
	if SkillTable == nil {
		return nil
	}
	return SkillTable[kind]
}

// LoadSkills строит SkillTable из Go-литералов (skillDefs).
// Вызывается при старте; validates every template.
func LoadSkills() error {
	table := make(map[model.SkillKind]*SkillTemplate, len(skillDefs))

	for i := range skillDefs {
		tmpl := &skillDefs[i]
		if err := validateSkill(tmpl); err != nil {
			return fmt.Errorf("skill %s: %w", tmpl.Name, err)
		}
		if _, dup := table[tmpl.Kind]; dup {
			return fmt.Errorf("skill %s: duplicate kind %v", tmpl.Name, tmpl.Kind)
		}
		table[tmpl.Kind] = tmpl
	}

	SkillTable = table
	slog.Info("skill templates loaded", "count", len(SkillTable))
	return nil
}

// validateSkill checks template consistency at load time so that runtime
// code never needs to defend against a malformed table.
func validateSkill(t *SkillTemplate) error {
	if t.Name == "" {
		return fmt.Errorf("empty name")
	}
	if t.StaminaCost < 0 {
		return fmt.Errorf("negative stamina cost %d", t.StaminaCost)
	}
	if t.StartupTime < 0 || t.ActiveTime < 0 || t.RecoveryTime < 0 {
		return fmt.Errorf("negative phase time")
	}
	if t.Kind.IsRanged() {
		if t.BaseChargeTime != 0 {
			return fmt.Errorf("ranged skill must not charge")
		}
	} else if t.BaseChargeTime <= 0 {
		return fmt.Errorf("non-ranged skill needs a charge time")
	}
	if t.Kind.IsDefensive() {
		if t.WaitDrainPerSec <= 0 {
			return fmt.Errorf("defensive skill needs a waiting drain rate")
		}
	} else if t.WaitDrainPerSec != 0 {
		return fmt.Errorf("offensive skill must not have a waiting drain rate")
	}
	if t.CommittedMoveMod < 0 || t.CommittedMoveMod > 1 {
		return fmt.Errorf("movement modifier %.2f out of [0,1]", t.CommittedMoveMod)
	}
	return nil
}
