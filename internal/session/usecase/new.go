package usecase

import (
	"time"

	"dashboard-srv/internal/session"
	"dashboard-srv/pkg/jwt"
	"dashboard-srv/pkg/log"
	pkgSession "dashboard-srv/pkg/session"
)

type implUseCase struct {
	l         log.Logger
	tokens    pkgSession.TokenStore
	inspector jwt.IInspector
	now       func() time.Time
}

func New(l log.Logger, tokens pkgSession.TokenStore, inspector jwt.IInspector) session.UseCase {
	return &implUseCase{
		l:         l,
		tokens:    tokens,
		inspector: inspector,
		now:       time.Now,
	}
}
