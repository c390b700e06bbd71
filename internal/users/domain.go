package users

// Role determines which views the client routes a user to. The server does
// not gate endpoints by role; that mirrors the legacy behavior and is a
// known gap.
type Role string

const (
	RoleSeller        Role = "seller"
	RoleAdministrator Role = "administrator"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleSeller || r == RoleAdministrator
}

// User is an account that can log in and be attributed sales.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:64;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"size:60;not null"`
	Role         Role   `json:"role" gorm:"size:16;not null"`
}

// TableName returns the table name for the User model.
func (User) TableName() string {
	return "users"
}
