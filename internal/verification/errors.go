// Package verification validates generated content against the achievement
// bank, rejecting text that makes unsupported claims.
package verification

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobpilot/internal/types"
)

// VerificationError reports that content failed truth verification. The
// full result, including every detected issue, is attached.
//
//nolint:revive // name stutters by design; it is the package's one error type
type VerificationError struct {
	ContentType string
	Result      *types.VerificationResult
}

func (e *VerificationError) Error() string {
	descriptions := make([]string, 0, len(e.Result.Issues))
	for _, issue := range e.Result.Issues {
		descriptions = append(descriptions, issue.Description)
	}
	return fmt.Sprintf("content verification failed for %s. Issues: %s",
		e.ContentType, strings.Join(descriptions, "; "))
}
