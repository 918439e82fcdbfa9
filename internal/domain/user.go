package domain

// Role represents a user role
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// IsValid returns true for known roles
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleTeacher || r == RoleStudent
}

// User represents an account
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        string
	Phone        string
	Role         Role
	FullName     string
}

// DisplayName returns the name recorded against bookings: full name, falling back to username
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// IsAdmin returns true if the user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserUpdate частичное обновление пользователя (nil = не менять)
type UserUpdate struct {
	Email        *string
	Phone        *string
	Role         *Role
	PasswordHash *string
}
