package usecase

import (
	"context"
	"strings"

	"dashboard-srv/internal/session"
)

// Login stores token. A token whose exp claim has already passed is refused.
func (uc *implUseCase) Login(ctx context.Context, token string) (session.Status, error) {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return session.Status{}, session.ErrTokenRequired
	}
	if uc.inspector.Expired(token, uc.now()) {
		return session.Status{}, session.ErrTokenExpired
	}

	if err := uc.tokens.SetToken(ctx, token); err != nil {
		uc.l.Errorf(ctx, "session.usecase.Login: SetToken failed: %v", err)
		return session.Status{}, err
	}
	return uc.describe(token), nil
}

func (uc *implUseCase) Status(ctx context.Context) (session.Status, error) {
	token, err := uc.tokens.Token(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.Status: Token failed: %v", err)
		return session.Status{}, err
	}
	if token == "" {
		return session.Status{}, nil
	}
	return uc.describe(token), nil
}

func (uc *implUseCase) Logout(ctx context.Context) error {
	if err := uc.tokens.Invalidate(ctx); err != nil {
		uc.l.Errorf(ctx, "session.usecase.Logout: Invalidate failed: %v", err)
		return err
	}
	return nil
}

// describe reads what it can from token. Opaque tokens are reported as authenticated without claims.
func (uc *implUseCase) describe(token string) session.Status {
	st := session.Status{Authenticated: true}

	claims, err := uc.inspector.Inspect(token)
	if err != nil {
		return st
	}
	st.Email = claims.Email
	st.Role = claims.Role
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		st.ExpiresAt = &exp
	}
	if uc.inspector.Expired(token, uc.now()) {
		st.Authenticated = false
		st.Expired = true
	}
	return st
}
