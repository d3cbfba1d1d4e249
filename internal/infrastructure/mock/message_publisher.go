// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"log/slog"
	"sync"

	"github.com/linuxfoundation/lfx-v2-authoring-service/internal/domain/port"
)

// PublishedMessage is a message recorded by MockMessagePublisher
type PublishedMessage struct {
	Subject string
	Message any
}

// MockMessagePublisher records published messages instead of sending them
type MockMessagePublisher struct {
	mu       sync.Mutex
	messages []PublishedMessage
	err      error
}

// Ensure MockMessagePublisher implements the MessagePublisher interface
var _ port.MessagePublisher = (*MockMessagePublisher)(nil)

// NewMockMessagePublisher creates a new mock publisher
func NewMockMessagePublisher() *MockMessagePublisher {
	return &MockMessagePublisher{}
}

// Policy records a policy message
func (m *MockMessagePublisher) Policy(ctx context.Context, subject string, message any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	m.messages = append(m.messages, PublishedMessage{Subject: subject, Message: message})
	slog.InfoContext(ctx, "mock policy message published", "subject", subject)
	return nil
}

// Messages returns a copy of the recorded messages
func (m *MockMessagePublisher) Messages() []PublishedMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]PublishedMessage(nil), m.messages...)
}

// SetError makes every following publish fail with err
func (m *MockMessagePublisher) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.err = err
}
