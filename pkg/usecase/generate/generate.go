package generate

import (
	"context"
	"sync"
	"unicode/utf8"

	"github.com/m-mizutani/duamind/pkg/adapter"
	"github.com/m-mizutani/duamind/pkg/model"
	"github.com/m-mizutani/duamind/pkg/service/prompt"
	"github.com/m-mizutani/goerr/v2"
)

const (
	minInputLen = 3
	maxInputLen = 1000
)

// Status is the generation lifecycle state. At most one request is in
// flight; Run rejects re-entry while Pending instead of queueing.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusDone
	StatusFailed
)

// Result is the outcome of a generation. SafetyNotice instructs the
// caller to show the help-resources notice.
type Result struct {
	Text         string
	SafetyNotice bool
}

// UseCase drives a single generation: validation, safety check, prompt
// build, one gateway call.
type UseCase struct {
	gateway adapter.Gateway

	mu     sync.Mutex
	status Status
}

// New creates a generation UseCase
func New(gateway adapter.Gateway) *UseCase {
	return &UseCase{gateway: gateway}
}

// Status returns the current lifecycle state.
func (u *UseCase) Status() Status {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.status
}

// Run validates the request, applies the safety filter, builds the prompt
// and calls the gateway once. Input length violations never reach the
// gateway.
func (u *UseCase) Run(ctx context.Context, req prompt.Request) (*Result, error) {
	u.mu.Lock()
	if u.status == StatusPending {
		u.mu.Unlock()
		return nil, model.ErrBusy
	}
	u.status = StatusPending
	u.mu.Unlock()

	result, err := u.run(ctx, req)

	u.mu.Lock()
	if err != nil {
		u.status = StatusFailed
	} else {
		u.status = StatusDone
	}
	u.mu.Unlock()

	return result, err
}

func (u *UseCase) run(ctx context.Context, req prompt.Request) (*Result, error) {
	if n := utf8.RuneCountInString(req.RawInput); n < minInputLen || n > maxInputLen {
		return nil, goerr.Wrap(model.ErrInvalidInput, "input length out of range", goerr.V("length", n))
	}

	verdict := prompt.Evaluate(req.RawInput)
	instruction, content := prompt.Build(req, verdict)

	text, err := u.gateway.Generate(ctx, instruction, content)
	if err != nil {
		return nil, err
	}

	return &Result{
		Text:         text,
		SafetyNotice: verdict.Triggered,
	}, nil
}
