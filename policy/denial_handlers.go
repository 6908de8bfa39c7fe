package policy

import (
	"fmt"
	"log/slog"
	"os"
)

// Ensure implementations satisfy the interface.
var (
	_ DenialHandler = (*StderrDenialHandler)(nil)
	_ DenialHandler = (*NopDenialHandler)(nil)
	_ DenialHandler = (*SlogDenialHandler)(nil)
)

// StderrDenialHandler logs denials to stderr.
type StderrDenialHandler struct{}

func (h *StderrDenialHandler) OnDenial(req Request, reason string) {
	fmt.Fprintf(os.Stderr, "Permission Denied [%s]: %s (Reason: %s)\n", req.Capability.String(), req.Subject, reason)
}

// NopDenialHandler does nothing.
type NopDenialHandler struct{}

func (h *NopDenialHandler) OnDenial(req Request, reason string) {}

// SlogDenialHandler logs denials through a structured logger.
type SlogDenialHandler struct {
	Logger *slog.Logger
}

func (h *SlogDenialHandler) OnDenial(req Request, reason string) {
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("capability denied",
		"subject", req.Subject,
		"capability", req.Capability.String(),
		"reason", reason,
	)
}
