package deh

// Role names one animation sequence of a thing, weapon or attack.
type Role int

const (
	RoleSpawn Role = iota
	RoleSee
	RoleMelee
	RoleMissile
	RolePain
	RoleDeath
	RoleXDeath
	RoleRaise
	RoleUp
	RoleDown
	RoleReady
	RoleAttack
	RoleFlash
)

// ThingRoles is the seeding priority for thing state groups.
var ThingRoles = []Role{
	RoleSpawn, RoleSee, RoleMelee, RoleMissile, RolePain, RoleDeath, RoleXDeath, RoleRaise,
}

// WeaponRoles is the seeding priority for weapon state groups.
var WeaponRoles = []Role{
	RoleUp, RoleDown, RoleReady, RoleAttack, RoleFlash,
}

// AttackRoles is the seeding priority for attack (projectile) state groups.
var AttackRoles = []Role{
	RoleSpawn, RoleDeath,
}

// Tag returns the DDF state label for the role.
func (r Role) Tag() string {
	switch r {
	case RoleSpawn:
		return "IDLE"
	case RoleSee:
		return "CHASE"
	case RoleMelee:
		return "MELEE"
	case RoleMissile:
		return "MISSILE"
	case RolePain:
		return "PAIN"
	case RoleDeath:
		return "DEATH"
	case RoleXDeath:
		return "OVERKILL"
	case RoleRaise:
		return "RESURRECT"
	case RoleUp:
		return "UP"
	case RoleDown:
		return "DOWN"
	case RoleReady:
		return "READY"
	case RoleAttack:
		return "ATTACK"
	case RoleFlash:
		return "FLASH"
	default:
		return "UNKNOWN"
	}
}
