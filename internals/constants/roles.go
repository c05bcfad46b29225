package constants

// Role pengguna aplikasi risk profile.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdminERM   = "admin_erm"
	RoleUser       = "user"
)

// AllowedRoles dipakai validasi DTO (tag `role`) & guard route admin.
var AllowedRoles = []string{RoleSuperAdmin, RoleAdminERM, RoleUser}

// IsAllowedRole melaporkan apakah role dikenal aplikasi.
func IsAllowedRole(role string) bool {
	for _, r := range AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}
