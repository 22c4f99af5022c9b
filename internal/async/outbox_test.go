package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgarage/workshop-tracker/internal/mail"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []mail.Message
}

func (m *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func TestOutboxDeliversQueuedMail(t *testing.T) {
	mailer := &recordingMailer{}
	outbox := NewOutbox(mailer, nil, WithWorkers(2))

	for i := 0; i < 5; i++ {
		require.NoError(t, outbox.Enqueue(context.Background(), mail.Message{
			To:      "jess@example.com",
			Subject: "Invoice for ABC123",
		}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	outbox.Shutdown(ctx)

	assert.Equal(t, 5, mailer.count(), "shutdown must drain the queue")
}

func TestOutboxEnqueueAfterShutdownIsDropped(t *testing.T) {
	mailer := &recordingMailer{}
	outbox := NewOutbox(mailer, nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	outbox.Shutdown(ctx)

	require.NoError(t, outbox.Enqueue(context.Background(), mail.Message{To: "jess@example.com"}))
	assert.Zero(t, mailer.count())
}

func TestOutboxShutdownIsIdempotent(t *testing.T) {
	outbox := NewOutbox(&recordingMailer{}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	outbox.Shutdown(ctx)
	outbox.Shutdown(ctx)
}
