package data

import (
	"fmt"
	"log/slog"
)

// WeaponTable — глобальный registry всех weapon templates.
// Загружается через LoadWeapons() при старте симуляции.
var WeaponTable map[int32]*WeaponTemplate

// GetWeaponTemplate возвращает WeaponTemplate по ID.
// Returns nil если оружие не найдено или таблица не загружена.
func GetWeaponTemplate(id int32) *WeaponTemplate {
	if WeaponTable == nil {
		return nil
	}
	return WeaponTable[id]
}

// LoadWeapons строит WeaponTable из Go-литералов (weaponDefs).
func LoadWeapons() error {
	table := make(map[int32]*WeaponTemplate, len(weaponDefs))

	for i := range weaponDefs {
		tmpl := &weaponDefs[i]
		if tmpl.Name == "" {
			return fmt.Errorf("weapon %d: empty name", tmpl.ID)
		}
		if tmpl.Range <= 0 {
			return fmt.Errorf("weapon %s: range must be positive", tmpl.Name)
		}
		if tmpl.Speed <= 0 {
			return fmt.Errorf("weapon %s: speed must be positive", tmpl.Name)
		}
		if tmpl.MinDamage < 0 || tmpl.MaxDamage < tmpl.MinDamage {
			return fmt.Errorf("weapon %s: bad damage band [%d,%d]", tmpl.Name, tmpl.MinDamage, tmpl.MaxDamage)
		}
		if _, dup := table[tmpl.ID]; dup {
			return fmt.Errorf("weapon %s: duplicate ID %d", tmpl.Name, tmpl.ID)
		}
		table[tmpl.ID] = tmpl
	}

	WeaponTable = table
	slog.Info("weapon templates loaded", "count", len(WeaponTable))
	return nil
}
