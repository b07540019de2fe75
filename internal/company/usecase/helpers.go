package usecase

import (
	"context"
	"time"

	"dashboard-srv/internal/company"
	"dashboard-srv/pkg/gateway"

	"github.com/google/uuid"
)

// call is one in-flight remote operation.
type call struct {
	op        company.Op
	seq       uint64
	companyID int64
	started   time.Time
}

func (uc *implUseCase) begin(op company.Op, companyID int64) call {
	seq := uc.tracker.begin(op)
	uc.metrics.Started(string(op))
	return call{op: op, seq: seq, companyID: companyID, started: uc.now()}
}

// release must be deferred right after begin.
func (uc *implUseCase) release(c call) {
	uc.tracker.end(c.op)
	uc.metrics.Finished(string(c.op))
}

func (uc *implUseCase) succeed(ctx context.Context, c call, applied bool) {
	outcome := company.OutcomeSuccess
	if !applied {
		outcome = company.OutcomeStale
		uc.l.Debugf(ctx, "company.usecase.%s: discarded stale result seq=%d", opName(c.op), c.seq)
	}
	uc.finish(ctx, c, outcome, nil)
}

// fail logs err once and reports it. The caller returns err unchanged.
func (uc *implUseCase) fail(ctx context.Context, c call, err error) {
	uc.l.Errorf(ctx, "company.usecase.%s: gateway failed: %v", opName(c.op), err)
	uc.finish(ctx, c, company.OutcomeFailure, err)
}

func (uc *implUseCase) finish(ctx context.Context, c call, outcome company.Outcome, err error) {
	elapsed := uc.now().Sub(c.started)

	e := company.Event{
		ID:        uuid.NewString(),
		Op:        c.op,
		Outcome:   outcome,
		CompanyID: c.companyID,
		Seq:       c.seq,
		Duration:  elapsed.Milliseconds(),
		At:        uc.now(),
	}
	label := string(outcome)
	if err != nil {
		e.Error = err.Error()
		e.ErrorKind = string(gateway.KindOf(err))
		if e.ErrorKind != "" {
			label = e.ErrorKind
		}
	}

	uc.metrics.Observe(ctx, string(c.op), label, elapsed)
	uc.reporter.Report(ctx, e)
}

func opName(op company.Op) string {
	switch op {
	case company.OpList:
		return "List"
	case company.OpGet:
		return "Get"
	case company.OpCreate:
		return "Create"
	case company.OpUpdate:
		return "Update"
	case company.OpDelete:
		return "Delete"
	case company.OpTrends:
		return "Trends"
	case company.OpRefresh:
		return "Refresh"
	}
	return string(op)
}
