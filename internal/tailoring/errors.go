// Package tailoring assembles truth-verified application materials for a
// scored job posting.
package tailoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobpilot/internal/types"
)

// UnverifiedContentError reports that one or more generated assets failed
// truth verification. The bundle is still returned alongside this error
// with per-asset failure flags; callers decide whether to block delivery.
type UnverifiedContentError struct {
	Failed []types.AssetType
}

func (e *UnverifiedContentError) Error() string {
	names := make([]string, len(e.Failed))
	for i, asset := range e.Failed {
		names[i] = string(asset)
	}
	return fmt.Sprintf("truth verification failed for assets: %s", strings.Join(names, ", "))
}

// GenerationError represents a failure to assemble assets at all.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("asset generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("asset generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
