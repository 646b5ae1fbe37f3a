package stormpike

import "github.com/srliao/nightsim/pkg/combat"

func init() {
	combat.RegisterWeapon("Storm Pike", combat.WeaponProfile{
		MainStat:    combat.Agility,
		DamageBonus: 8,
	})
}
