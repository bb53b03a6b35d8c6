package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// syncBuffer provides thread-safe access to a bytes.Buffer.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestNewInterruptHandler(t *testing.T) {
	tests := []struct {
		writer io.Writer
		name   string
	}{
		{
			name:   "with custom writer",
			writer: &bytes.Buffer{},
		},
		{
			name:   "with nil writer",
			writer: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewInterruptHandler(tt.writer)
			assert.NotNil(t, handler)
			assert.NotNil(t, handler.writer)
			assert.False(t, handler.interrupted)
		})
	}
}

func TestHandleInterrupts_CancelsContext(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output)

	ctx := handler.HandleInterrupts(context.Background(), true)

	select {
	case <-ctx.Done():
		t.Fatal("context should not be canceled before an interrupt")
	default:
	}

	handler.interrupt()

	<-ctx.Done()
	assert.True(t, handler.WasInterrupted())
	out := output.String()
	assert.Contains(t, out, "Validation interrupted!")
	assert.Contains(t, out, "sealed in the ledger")
}

func TestHandleInterrupts_ParentCanceledIsNotInterrupt(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output)

	parent, cancel := context.WithCancel(context.Background())
	ctx := handler.HandleInterrupts(parent, false)
	cancel()

	<-ctx.Done()
	assert.False(t, handler.WasInterrupted())
	assert.Empty(t, output.String())
}

func TestMultipleInterrupts(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output)
	_ = handler.HandleInterrupts(context.Background(), true)

	handler.interrupt()
	handler.interrupt()

	count := strings.Count(output.String(), "Validation interrupted!")
	assert.Equal(t, 1, count, "interrupt message should only be shown once")
}

func TestShowInterruptMessage(t *testing.T) {
	tests := []struct {
		name         string
		expected     []string
		notExpected  []string
		showProgress bool
	}{
		{
			name:         "with progress",
			showProgress: true,
			expected: []string{
				"Validation interrupted!",
				"sealed in the ledger",
				"aduana validate",
				"Hasta luego!",
			},
		},
		{
			name:         "without progress",
			showProgress: false,
			expected: []string{
				"Validation interrupted!",
				"Hasta luego!",
			},
			notExpected: []string{
				"sealed in the ledger",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer
			handler := &InterruptHandler{
				writer:       &output,
				showProgress: tt.showProgress,
			}

			handler.showInterruptMessage()

			out := output.String()
			for _, expected := range tt.expected {
				assert.Contains(t, out, expected)
			}
			for _, notExpected := range tt.notExpected {
				assert.NotContains(t, out, notExpected)
			}
		})
	}
}
