package middleware

import (
	"dashboard-srv/pkg/log"
	"dashboard-srv/pkg/session"
)

type Middleware struct {
	l         log.Logger
	tokens    session.TokenStore
	loginPath string
}

func New(l log.Logger, tokens session.TokenStore, loginPath string) Middleware {
	return Middleware{
		l:         l,
		tokens:    tokens,
		loginPath: loginPath,
	}
}
