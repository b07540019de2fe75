package usecase

import (
	"dashboard-srv/internal/alert"
	"dashboard-srv/internal/company"
	"dashboard-srv/internal/dashboard"
	"dashboard-srv/pkg/log"
)

type implUseCase struct {
	l         log.Logger
	companies company.UseCase
	alerts    alert.UseCase
}

func New(l log.Logger, companies company.UseCase, alerts alert.UseCase) dashboard.UseCase {
	return &implUseCase{
		l:         l,
		companies: companies,
		alerts:    alerts,
	}
}
