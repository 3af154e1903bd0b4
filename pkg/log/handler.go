package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	lerrors "github.com/YuminosukeSato/lassoviz/pkg/errors"
)

// Attribute keys added next to ErrAttrKey by ErrFmtHandler.
const (
	ErrKindAttrKey = "error.kind"
	ErrOpAttrKey   = "error.op"
)

// ErrFmtHandler is a slog handler that expands an error attribute into its
// cockroachdb/errors stack trace, a stable kind and the failing operation.
type ErrFmtHandler struct {
	handler slog.Handler
}

// WrapByErrFmtHandler wraps handler. Records without an ErrAttrKey attribute
// pass through unchanged.
func WrapByErrFmtHandler(handler slog.Handler) slog.Handler {
	return &ErrFmtHandler{handler: handler}
}

func (eh *ErrFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return eh.handler.Enabled(ctx, l)
}

func (eh *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key != ErrAttrKey {
			return true
		}
		err, _ = attr.Value.Any().(error)
		return false
	})
	if err == nil {
		return eh.handler.Handle(ctx, r)
	}

	r.AddAttrs(slog.String(ErrKindAttrKey, ErrorKind(err)))
	if op := errorOp(err); op != "" {
		r.AddAttrs(slog.String(ErrOpAttrKey, op))
	}
	if st := extractStacktrace(err); st != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, st))
	}
	return eh.handler.Handle(ctx, r)
}

func (eh *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithAttrs(attrs)}
}

func (eh *ErrFmtHandler) WithGroup(g string) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithGroup(g)}
}

// ErrorKind classifies err for log queries. Sentinels win over types, so a
// SingularMatrixError reports "singular_matrix".
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, lerrors.ErrSingularMatrix):
		return "singular_matrix"
	case errors.Is(err, lerrors.ErrNonPositiveDOF):
		return "non_positive_dof"
	case errors.Is(err, lerrors.ErrStaleResult):
		return "stale_result"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}

	var (
		dimErr   *lerrors.DimensionError
		valErr   *lerrors.ValidationError
		argErr   *lerrors.ValueError
		numErr   *lerrors.NumericalInstabilityError
		panicErr *lerrors.PanicError
	)
	switch {
	case errors.As(err, &dimErr):
		return "invalid_dimension"
	case errors.As(err, &valErr), errors.As(err, &argErr):
		return "validation"
	case errors.As(err, &numErr):
		return "numerical_instability"
	case errors.As(err, &panicErr):
		return "panic"
	}
	return "internal"
}

func errorOp(err error) string {
	var (
		dimErr *lerrors.DimensionError
		sinErr *lerrors.SingularMatrixError
		dofErr *lerrors.DegreesOfFreedomError
		valErr *lerrors.ValueError
	)
	switch {
	case errors.As(err, &dimErr):
		return dimErr.Op
	case errors.As(err, &sinErr):
		return sinErr.Op
	case errors.As(err, &dofErr):
		return dofErr.Op
	case errors.As(err, &valErr):
		return valErr.Op
	}
	return ""
}

func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}
