package model

import (
	"time"

	"wildtrack/internal/domain/entity"
)

// UserModel is the bson struct for the 'users' collection. The _id is
// assigned by the store and omitted on insert.
type UserModel struct {
	Email     string    `bson:"email"`
	Name      string    `bson:"name"`
	Role      string    `bson:"role"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// FromUserDomain converts a domain User to its stored form.
func FromUserDomain(user *entity.User) *UserModel {
	if user == nil {
		return nil
	}

	return &UserModel{
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
