package guard

import (
	"errors"
	"testing"

	"github.com/example/bindery/internal/errs"
)

func TestResultError(t *testing.T) {
	if err := Allow().Error(); err != nil {
		t.Errorf("Allow().Error() = %v, want nil", err)
	}

	err := Deny(errs.ErrConflict, "already promoted").Error()
	if !errors.Is(err, errs.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
	if err.Error() != "already promoted" {
		t.Errorf("Error() = %q, want %q", err.Error(), "already promoted")
	}

	untyped := Result{Reason: "nope"}.Error()
	if !errors.Is(untyped, errs.ErrInvalidState) {
		t.Errorf("kindless refusal should default to ErrInvalidState, got %v", untyped)
	}
}
