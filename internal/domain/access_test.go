package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllow(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	teacher := &User{Role: RoleTeacher}
	student := &User{Role: RoleStudent}

	assert.True(t, Allow(admin, StaffRoles...))
	assert.True(t, Allow(teacher, StaffRoles...))
	assert.False(t, Allow(student, StaffRoles...))

	assert.True(t, Allow(admin, AdminRoles...))
	assert.False(t, Allow(teacher, AdminRoles...))

	assert.False(t, Allow(nil, StaffRoles...))
	assert.False(t, Allow(admin))
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Thế Anh", (&User{Username: "admin", FullName: "Thế Anh"}).DisplayName())
	assert.Equal(t, "admin", (&User{Username: "admin"}).DisplayName())
}

func TestValidatePassword(t *testing.T) {
	assert.ErrorIs(t, ValidatePassword("short!"), ErrPasswordTooShort)
	assert.ErrorIs(t, ValidatePassword("12345678!"[:8]), ErrPasswordTooShort)
	assert.ErrorIs(t, ValidatePassword("longpassword"), ErrPasswordNoSpecial)
	assert.NoError(t, ValidatePassword("longpass!"))
	assert.NoError(t, ValidatePassword("mật khẩu dài?"))
}

func TestRoomUpdate_Apply(t *testing.T) {
	room := &Room{Name: "A101", Capacity: 40, Equipment: "TV", Status: RoomAvailable}
	status := RoomMaintenance
	capacity := 50

	RoomUpdate{Capacity: &capacity, Status: &status}.Apply(room)

	assert.Equal(t, "A101", room.Name)
	assert.Equal(t, 50, room.Capacity)
	assert.Equal(t, "TV", room.Equipment)
	assert.True(t, room.IsUnderMaintenance())
}
