// Package jobs hands payloads to the gojinn host for asynchronous execution
// by another function.
package jobs

import (
	sdkerrors "github.com/pauloappbr/gojinn-sdk/domain/errors"
	"github.com/pauloappbr/gojinn-sdk/domain/ports"
	"github.com/pauloappbr/gojinn-sdk/infrastructure/wasm"
)

const hostAccepted uint32 = 0

// Queue submits jobs through a ports.QueueHost.
type Queue struct {
	host ports.QueueHost
}

// New creates a Queue for host.
func New(host ports.QueueHost) *Queue {
	return &Queue{host: host}
}

// Enqueue asks the host to run target with payload as its request body.
// It returns an *errors.EnqueueError when the host refuses the job.
func (q *Queue) Enqueue(target, payload string) error {
	if code := q.host.Enqueue(target, payload); code != hostAccepted {
		return &sdkerrors.EnqueueError{Target: target, Code: code}
	}
	return nil
}

var std = New(wasm.NewHost())

// Enqueue submits a job to the default host.
func Enqueue(target, payload string) error {
	return std.Enqueue(target, payload)
}
