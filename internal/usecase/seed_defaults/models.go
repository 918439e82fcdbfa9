package seed_defaults

// Admin учётная запись администратора по умолчанию
type Admin struct {
	Username string
	Password string
	FullName string
	Email    string
	Phone    string
}

// Room комната по умолчанию
type Room struct {
	Name      string
	Capacity  int
	Equipment string
}

// Request начальные данные
type Request struct {
	Admin Admin
	Rooms []Room
}

// Response что было создано
type Response struct {
	AdminCreated bool
	RoomsCreated int
}
