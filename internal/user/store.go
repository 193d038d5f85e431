package user

import "context"

type Repository interface {
	ListUsers(context context.Context) ([]*User, error)
	CreateUser(context context.Context, u *User) error
}
