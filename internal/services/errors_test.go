package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/desertthunder/insightboard/internal/shared"
)

func TestClassifyError(t *testing.T) {
	tt := []struct {
		err  error
		want ErrorKind
	}{
		{err: nil, want: KindNone},
		{err: fmt.Errorf("%w: x", shared.ErrInvalidVideoID), want: KindInvalidID},
		{err: shared.ErrNotConfigured, want: KindNotConfigured},
		{err: fmt.Errorf("%w: abc", shared.ErrVideoNotFound), want: KindNotFound},
		{err: fmt.Errorf("%w: slow down", shared.ErrQuotaExceeded), want: KindQuotaExceeded},
		{err: errors.New("boom"), want: KindUnknown},
	}

	for _, tc := range tt {
		t.Run(tc.want.String(), func(t *testing.T) {
			if got := ClassifyError(tc.err); got != tc.want {
				t.Errorf("ClassifyError(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	t.Run("each kind has a distinct message", func(t *testing.T) {
		errs := []error{shared.ErrInvalidVideoID, shared.ErrNotConfigured, shared.ErrVideoNotFound, shared.ErrQuotaExceeded}
		seen := make(map[string]bool)
		for _, err := range errs {
			msg := UserMessage(err)
			if msg == "" || seen[msg] {
				t.Errorf("message for %v is empty or repeated: %q", err, msg)
			}
			seen[msg] = true
		}
	})

	t.Run("actionable hints", func(t *testing.T) {
		if msg := UserMessage(shared.ErrQuotaExceeded); !strings.Contains(msg, "try again later") {
			t.Errorf("quota message = %q", msg)
		}
		if msg := UserMessage(shared.ErrNotConfigured); !strings.Contains(msg, "setup guide") {
			t.Errorf("not configured message = %q", msg)
		}
	})

	t.Run("unknown falls back to raw text", func(t *testing.T) {
		if msg := UserMessage(errors.New("socket closed")); msg != "socket closed" {
			t.Errorf("UserMessage() = %q", msg)
		}
	})

	t.Run("nil", func(t *testing.T) {
		if msg := UserMessage(nil); msg != "" {
			t.Errorf("UserMessage(nil) = %q", msg)
		}
	})
}
