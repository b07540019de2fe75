package session

import "context"

// UseCase manages the bearer token the dashboard forwards to the API.
type UseCase interface {
	Login(ctx context.Context, token string) (Status, error)
	Status(ctx context.Context) (Status, error)
	Logout(ctx context.Context) error
}
