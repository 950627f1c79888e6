package domain

const (
	UserRoleEmployee      = "employee"
	UserRoleManager       = "manager"
	UserRoleSeniorManager = "senior_manager"
	UserRoleAdmin         = "admin"
)

type User struct {
	ID         int        `json:"id" yaml:"id"`
	Email      string     `json:"email" yaml:"email"`
	Name       string     `json:"name" yaml:"name"`
	Role       string     `json:"role" yaml:"role"`
	Department string     `json:"department,omitempty" yaml:"department,omitempty"`
	Phone      string     `json:"phone,omitempty" yaml:"phone,omitempty"`
	IsActive   bool       `json:"is_active" yaml:"is_active"`
	CreatedAt  Timestamp  `json:"created_at" yaml:"created_at"`
	LastLogin  *Timestamp `json:"last_login,omitempty" yaml:"last_login,omitempty"`
}

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.LastLogin = u.LastLogin.clone()
	return &c
}

type CreateUser struct {
	Email      string `json:"email" yaml:"email" validate:"required,email"`
	Name       string `json:"name" yaml:"name" validate:"required,notblank"`
	Role       string `json:"role" yaml:"role" validate:"required"`
	Department string `json:"department,omitempty" yaml:"department,omitempty"`
	Phone      string `json:"phone,omitempty" yaml:"phone,omitempty"`
}
