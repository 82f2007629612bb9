package objspec

import (
	"errors"
	"fmt"
)

// ValidationError reports a rejected request. Fatal is false only for
// problems that are reported but allowed to reach the cm invocation.
type ValidationError struct {
	Message string
	Fatal   bool
}

func (e *ValidationError) Error() string { return e.Message }

// IsFatal reports whether err is a validation problem that must stop the run.
// Errors that are not a *ValidationError are always fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fatal
	}
	return true
}

// Validate checks req. An invalid destination is fatal only when strict is
// set; otherwise it is returned as a non-fatal error and the caller decides
// whether to continue.
func Validate(req Request, strict bool) error {
	if req.First.Kind() == KindUnknown {
		return &ValidationError{
			Message: fmt.Sprintf("Invalid object spec: %s", req.First),
			Fatal:   true,
		}
	}
	if !req.HasSecond {
		return nil
	}

	if req.First.IsBranch() {
		return &ValidationError{
			Message: "A branch cannot be the source of a diff.",
			Fatal:   true,
		}
	}

	if req.Second.IsChangeset() {
		return nil
	}
	return &ValidationError{
		Message: fmt.Sprintf("Invalid destination spec: %s", req.Second),
		Fatal:   strict,
	}
}
