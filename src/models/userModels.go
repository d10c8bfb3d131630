package models

import "time"

type UserModel struct {
	Id        int        `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName string     `json:"firstname" gorm:"column:firstname;type:varchar(50);not null"`
	LastName  string     `json:"lastname" gorm:"column:lastname;type:varchar(50);not null"`
	Document  string     `json:"document" gorm:"column:document;type:varchar(20);not null;unique"`
	Email     string     `json:"email" gorm:"column:email;type:varchar(100);not null;unique"`
	Phone     *string    `json:"phone" gorm:"column:phone;type:varchar(20)"`
	BirthDate *time.Time `json:"birthDate" gorm:"column:birth_date;type:date"`
	Password  string     `json:"password,omitempty" gorm:"column:password;type:varchar(100);not null"`
	RoleID    int        `json:"roleId" gorm:"column:role_id;not null"`
	Role      *RoleModel `json:"role,omitempty" gorm:"foreignKey:RoleID;references:Id"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	UserModel
	PasswordConfirmation string `json:"passwordConfirmation" gorm:"-"`
}

type RegisterResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}
