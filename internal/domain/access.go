package domain

// Наборы ролей для проверки прав
var (
	StaffRoles = []Role{RoleAdmin, RoleTeacher}
	AdminRoles = []Role{RoleAdmin}
)

// Allow проверяет, что пользователь обладает одной из требуемых ролей
// Анонимный пользователь (nil) не проходит ни одну проверку
func Allow(identity *User, required ...Role) bool {
	if identity == nil {
		return false
	}
	for _, role := range required {
		if identity.Role == role {
			return true
		}
	}
	return false
}
