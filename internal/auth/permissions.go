package auth

import "huurly_backend/internal/models"

// Static permission sets per role. Roles themselves only change through
// the transition table below.
var Permissions = map[models.UserRole][]string{
	models.UserRoleHuurder: {
		"profile:read:self",
		"profile:write:self",
		"documents:upload",
		"documents:read:self",
		"subscription:manage:self",
		"notifications:read:self",
	},
	models.UserRoleVerhuurder: {
		"profile:read:self",
		"profile:write:self",
		"search:tenants",
		"favorites:manage",
		"notifications:read:self",
	},
	models.UserRoleBeoordelaar: {
		"documents:review",
		"documents:read:pending",
		"notifications:read:self",
	},
	models.UserRoleBeheerder: {
		"users:read",
		"users:write",
		"users:role:change",
		"documents:review",
		"documents:read:all",
		"system:admin",
	},
}

// allowedRoleTransitions is the admin-defined table of role changes.
// Staff roles are fixed; huurder and verhuurder may switch sides.
var allowedRoleTransitions = map[models.UserRole][]models.UserRole{
	models.UserRoleHuurder:    {models.UserRoleVerhuurder},
	models.UserRoleVerhuurder: {models.UserRoleHuurder},
}

// HasPermission reports whether a role carries the permission.
func HasPermission(role models.UserRole, permission string) bool {
	permissions, exists := Permissions[role]
	if !exists {
		return false
	}
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// CanTransitionRole reports whether a role change is permitted.
func CanTransitionRole(from, to models.UserRole) bool {
	for _, allowed := range allowedRoleTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func IsAdmin(claims *Claims) bool {
	return models.UserRole(claims.Role) == models.UserRoleBeheerder
}

func IsReviewer(claims *Claims) bool {
	return models.UserRole(claims.Role) == models.UserRoleBeoordelaar
}
