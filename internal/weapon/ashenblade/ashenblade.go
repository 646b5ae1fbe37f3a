package ashenblade

import "github.com/srliao/nightsim/pkg/combat"

func init() {
	combat.RegisterWeapon("Ashen Blade", combat.WeaponProfile{
		MainStat:    combat.Strength,
		DamageBonus: 12,
	})
}
