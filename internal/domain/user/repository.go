package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByIDs(ctx context.Context, userIDs []uint) (map[uint]*User, error)
}
