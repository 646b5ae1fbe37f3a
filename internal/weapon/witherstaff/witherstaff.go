package witherstaff

import "github.com/srliao/nightsim/pkg/combat"

func init() {
	combat.RegisterWeapon("Wither Staff", combat.WeaponProfile{
		MainStat:    combat.Intelligence,
		DamageBonus: 10,
	})
}
