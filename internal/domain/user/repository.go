package user

import "context"

// Repository defines persistence for operator accounts.
type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, page, pageSize int) ([]*User, int64, error)
}
