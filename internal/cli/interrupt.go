package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// InterruptHandler manages graceful shutdown with friendly messages.
type InterruptHandler struct {
	writer       io.Writer
	cancelFunc   context.CancelFunc
	interrupted  bool
	showProgress bool
	mu           sync.Mutex
}

// NewInterruptHandler creates a new interrupt handler.
func NewInterruptHandler(writer io.Writer) *InterruptHandler {
	if writer == nil {
		writer = os.Stdout
	}
	return &InterruptHandler{
		writer: writer,
	}
}

// HandleInterrupts sets up signal handling and returns a context that will be canceled on interrupt.
func (h *InterruptHandler) HandleInterrupts(ctx context.Context, showProgress bool) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	h.mu.Lock()
	h.cancelFunc = cancel
	h.showProgress = showProgress
	h.mu.Unlock()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case <-sigChan:
			h.interrupt()
		case <-ctx.Done():
		}
	}()

	return ctx
}

// interrupt records the interruption, shows the message once and cancels
// the context returned by HandleInterrupts.
func (h *InterruptHandler) interrupt() {
	h.mu.Lock()
	if !h.interrupted {
		h.interrupted = true
		h.showInterruptMessage()
	}
	cancel := h.cancelFunc
	h.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// showInterruptMessage displays a friendly interrupt message.
func (h *InterruptHandler) showInterruptMessage() {
	msg := "\n\n" + FormatWarning("Validation interrupted!")

	if h.showProgress {
		msg += "\n" + FormatInfo("Documents already validated are sealed in the ledger. Re-run the rest with: aduana validate")
	}

	msg += "\n" + FormatInfo("Hasta luego! "+CustomsIcon) + "\n"

	if _, err := fmt.Fprint(h.writer, msg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write interrupt message: %v\n", err)
	}
}

// WasInterrupted returns true if the process was interrupted.
func (h *InterruptHandler) WasInterrupted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.interrupted
}
