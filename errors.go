package desbordante

import (
	"context"
	"errors"
	"fmt"

	"github.com/BUYT-1/Desbordante/fdep"
)

// ConfigurationError reports an unknown/ambiguous column name,
// out-of-range index, or an empty RHS supplied to the verifier.
type ConfigurationError struct {
	Detail string
	cause  error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Detail)
}

func (e *ConfigurationError) Unwrap() error { return e.cause }

// NewConfigurationError builds a ConfigurationError wrapping cause.
func NewConfigurationError(detail string, cause error) *ConfigurationError {
	return &ConfigurationError{Detail: detail, cause: cause}
}

// InputError reports an empty dataset or a malformed row encountered
// while loading a relation.
type InputError struct {
	Detail string
	cause  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input error: %s", e.Detail)
}

func (e *InputError) Unwrap() error { return e.cause }

// NewInputError builds an InputError wrapping cause.
func NewInputError(detail string, cause error) *InputError {
	return &InputError{Detail: detail, cause: cause}
}

// UsageError reports a capability invoked out of order, e.g. Execute
// before Fit, or a result accessor called before Execute.
type UsageError struct {
	Detail string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage error: %s", e.Detail)
}

// NewUsageError builds a UsageError.
func NewUsageError(detail string) *UsageError {
	return &UsageError{Detail: detail}
}

// InternalError reports an invariant violation inside the core
// algorithms (e.g. an inconsistent PLI probing vector). These are fatal;
// callers should not expect the instance to recover.
type InternalError struct {
	Detail string
	cause  error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Detail)
}

func (e *InternalError) Unwrap() error { return e.cause }

// NewInternalError builds an InternalError wrapping cause.
func NewInternalError(detail string, cause error) *InternalError {
	return &InternalError{Detail: detail, cause: cause}
}

// ErrNotFitted names the condition of calling Execute before a successful
// Fit. Miner.Execute and Verifier.Execute report that condition as a
// *UsageError; they neither return nor wrap ErrNotFitted.
var ErrNotFitted = errors.New("desbordante: Fit must succeed before this call")

// translateError maps an error from a collaborator package (model, table,
// fdep, verifier) into this package's error taxonomy, so callers only
// ever need to errors.As against the four kinds above. Cancellation
// (context errors and fdep.ErrCancelled) is returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, fdep.ErrCancelled) {
		return err
	}
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return err
	}
	var ie *InputError
	if errors.As(err, &ie) {
		return err
	}
	return NewInternalError(err.Error(), err)
}
