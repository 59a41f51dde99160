package leave

import (
	"context"
	"sync"
	"sync/atomic"

	leaveerrors "hris-console/internal/leave/errors"
	"hris-console/internal/shared/counter"
)

// Board is the state of one screen: one leave type seen by one actor.
//
// Consistency contract: the board is eventually consistent after reload. It
// never patches rows locally; every verb adopts the list the service reloaded.
// Each reload takes a new generation token and a response carrying an older
// token is discarded, so a slow response never overwrites a newer one.
type Board struct {
	service   Service
	actor     Actor
	leaveType LeaveType

	gen      atomic.Uint64
	inflight *counter.InFlight

	mu   sync.RWMutex
	rows []DisplayRow
}

func NewBoard(service Service, actor Actor, leaveType LeaveType) *Board {
	return &Board{
		service:   service,
		actor:     actor,
		leaveType: leaveType,
		inflight:  counter.NewInFlight(),
	}
}

func (b *Board) LeaveType() LeaveType { return b.leaveType }

func (b *Board) Actor() Actor { return b.actor }

// Loading reports whether any request started by this board is pending.
func (b *Board) Loading() bool {
	return b.inflight.Active()
}

// Rows returns a copy of the rows currently shown.
func (b *Board) Rows() []DisplayRow {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]DisplayRow, len(b.rows))
	copy(out, b.rows)
	return out
}

// Row finds a shown row by id.
func (b *Board) Row(id string) (DisplayRow, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, r := range b.rows {
		if r.ID == id {
			return r, true
		}
	}
	return DisplayRow{}, false
}

// Reload fetches the list again. It returns ErrStaleResponse when another
// reload started after this one; the rows of the newer reload are kept.
func (b *Board) Reload(ctx context.Context) ([]DisplayRow, error) {
	token := b.gen.Add(1)
	done := b.inflight.Begin()
	defer done()

	rows, err := b.service.List(ctx, b.actor, b.leaveType)
	if err != nil {
		if !b.current(token) {
			return nil, leaveerrors.ErrStaleResponse
		}
		return nil, err
	}
	if !b.adopt(token, rows) {
		return nil, leaveerrors.ErrStaleResponse
	}
	return b.Rows(), nil
}

func (b *Board) Detail(ctx context.Context, id string) (DetailViewModel, error) {
	done := b.inflight.Begin()
	defer done()
	return b.service.Detail(ctx, b.actor, b.leaveType, id)
}

// CheckDecision refuses a decision on a loaded row that is no longer pending.
// Rows the board has not loaded are left to the store to judge.
func (b *Board) CheckDecision(id string, d Decision) error {
	row, ok := b.Row(id)
	if !ok {
		return nil
	}
	status := ParseStatus(row.Status)
	if status.Terminal() {
		return leaveerrors.ErrAlreadyDecided
	}
	if !CanTransition(status, d) {
		return leaveerrors.ErrNotDecidable
	}
	return nil
}

func (b *Board) Approve(ctx context.Context, id string, substitute *Substitute, confirmer Confirmer) (MutationOutcome, error) {
	if err := b.CheckDecision(id, DecisionApprove); err != nil {
		return MutationOutcome{}, err
	}
	return b.mutate(ctx, func(ctx context.Context) (MutationOutcome, error) {
		return b.service.SubmitApproval(ctx, b.actor, b.leaveType, id, substitute, confirmer)
	})
}

func (b *Board) Reject(ctx context.Context, id string, confirmer Confirmer) (MutationOutcome, error) {
	if err := b.CheckDecision(id, DecisionReject); err != nil {
		return MutationOutcome{}, err
	}
	return b.mutate(ctx, func(ctx context.Context) (MutationOutcome, error) {
		return b.service.SubmitRejection(ctx, b.actor, b.leaveType, id, confirmer)
	})
}

// Create files a request of the board's type.
func (b *Board) Create(ctx context.Context, payload CreatePayload) (MutationOutcome, error) {
	payload.LeaveType = b.leaveType
	return b.mutate(ctx, func(ctx context.Context) (MutationOutcome, error) {
		return b.service.SubmitCreate(ctx, b.actor, payload)
	})
}

// SearchSubstitutes is tracked by the in-flight counter like any other call.
func (b *Board) SearchSubstitutes(ctx context.Context, term string) ([]Employee, error) {
	done := b.inflight.Begin()
	defer done()
	return b.service.SearchSubstitutes(ctx, term)
}

// mutate runs a verb under a fresh token. When the verb's reload was
// superseded the outcome carries the newer rows instead.
func (b *Board) mutate(ctx context.Context, verb func(context.Context) (MutationOutcome, error)) (MutationOutcome, error) {
	token := b.gen.Add(1)
	done := b.inflight.Begin()
	defer done()

	out, err := verb(ctx)
	if err != nil || !out.Applied {
		return out, err
	}
	if !b.adopt(token, out.Rows) {
		out.Rows = b.Rows()
	}
	return out, nil
}

func (b *Board) current(token uint64) bool {
	return b.gen.Load() == token
}

func (b *Board) adopt(token uint64, rows []DisplayRow) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.current(token) {
		return false
	}
	b.rows = make([]DisplayRow, len(rows))
	copy(b.rows, rows)
	return true
}
