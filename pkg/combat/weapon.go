package combat

import "sync"

var (
	muWeapon  sync.Mutex
	weaponMap = make(map[string]WeaponProfile)
)

// RegisterWeapon adds a named weapon preset. profiles can then equip it by
// name alone instead of spelling out the full WeaponProfile
func RegisterWeapon(name string, w WeaponProfile) {
	muWeapon.Lock()
	defer muWeapon.Unlock()
	if _, dup := weaponMap[name]; dup {
		panic("combat: RegisterWeapon called twice for " + name)
	}
	w.Name = name
	weaponMap[name] = w
}

// LookupWeapon returns the registered preset for name
func LookupWeapon(name string) (WeaponProfile, bool) {
	muWeapon.Lock()
	defer muWeapon.Unlock()
	w, ok := weaponMap[name]
	return w, ok
}
