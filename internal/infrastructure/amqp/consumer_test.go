package amqp

import (
	"context"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	ctxErrDuringHandle error
	deadlineSet        bool
	onHandle           func()
}

func (h *recordingHandler) Handle(ctx context.Context, delivery *amqp.Delivery) {
	if h.onHandle != nil {
		h.onHandle()
	}
	h.ctxErrDuringHandle = ctx.Err()
	_, h.deadlineSet = ctx.Deadline()
}

func TestDispatch_SurvivesRunContextCancellation(t *testing.T) {
	runCtx, cancel := context.WithCancel(context.Background())
	handler := &recordingHandler{}
	// Shutdown arrives while the delivery is mid-pipeline.
	handler.onHandle = cancel

	consumer := NewConsumer(NewClient(""), handler)
	consumer.dispatch(runCtx, &amqp.Delivery{})

	assert.NoError(t, handler.ctxErrDuringHandle)
	assert.True(t, handler.deadlineSet)
}

func TestDispatch_AppliesHandleTimeout(t *testing.T) {
	handler := &recordingHandler{}
	consumer := NewConsumer(NewClient(""), handler)
	consumer.handleTimeout = time.Nanosecond
	handler.onHandle = func() { time.Sleep(time.Millisecond) }

	consumer.dispatch(context.Background(), &amqp.Delivery{})

	assert.ErrorIs(t, handler.ctxErrDuringHandle, context.DeadlineExceeded)
}

func TestRun_ReturnsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// An unparseable broker URL makes the startup attempt fail immediately,
	// leaving only the cancelled context to observe.
	consumer := NewConsumer(NewClient("://not-a-url"), &recordingHandler{})

	done := make(chan struct{})
	go func() {
		consumer.Run(ctx, "some_queue")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "Run did not return after context cancellation")
	}
}
