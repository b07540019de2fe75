package usecase

import (
	"sync"

	"dashboard-srv/internal/alert"
	"dashboard-srv/internal/model"
	"dashboard-srv/pkg/gateway"
	"dashboard-srv/pkg/log"
	"dashboard-srv/pkg/metrics"
)

const (
	opList     = "alert_list"
	opMarkRead = "alert_mark_read"
)

type implUseCase struct {
	l       log.Logger
	gateway gateway.IGateway
	metrics metrics.IRecorder

	mu     sync.RWMutex
	alerts []model.Alert
}

// New creates the alert usecase. recorder may be nil.
func New(l log.Logger, gw gateway.IGateway, recorder metrics.IRecorder) alert.UseCase {
	if recorder == nil {
		recorder = metrics.NewNop()
	}
	return &implUseCase{
		l:       l,
		gateway: gw,
		metrics: recorder,
	}
}
