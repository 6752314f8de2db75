package notification

import (
	"encoding/json"

	"darshanam/models"

	"github.com/hibiken/asynq"
)

const TypeConfirmationSend = "confirmation:send"

// NewConfirmationTask wraps a confirmation payload in an asynq task.
func NewConfirmationTask(payload models.ConfirmationPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeConfirmationSend, b), nil
}

// Dispatcher enqueues confirmation tasks. It satisfies the booking
// orchestrator's ConfirmationDispatcher contract: enqueue is the only thing
// that happens on the booking path, delivery runs in the worker.
type Dispatcher struct {
	client *asynq.Client
}

// NewDispatcher creates a Dispatcher over the given redis queue.
func NewDispatcher(redisOpts asynq.RedisClientOpt) *Dispatcher {
	return &Dispatcher{client: asynq.NewClient(redisOpts)}
}

func (d *Dispatcher) EnqueueConfirmation(payload models.ConfirmationPayload) error {
	task, err := NewConfirmationTask(payload)
	if err != nil {
		return err
	}
	_, err = d.client.Enqueue(task, asynq.MaxRetry(3))
	return err
}

// Close releases the underlying asynq client.
func (d *Dispatcher) Close() error {
	return d.client.Close()
}
