package shared

import (
	"checkin-core/internal/infra"
	"checkin-core/internal/pkg/errs"
)

// ClassifyRemoteErr marks a store failure with the domain error the caller
// should see.
func ClassifyRemoteErr(err error, msg string) error {
	wrapped := errs.Wrap(err, msg)
	switch {
	case infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(wrapped, errs.ErrRemoteUnavailable)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(wrapped, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindCapacity):
		return errs.Mark(errs.Mark(wrapped, errs.ErrSlotJustFilled), errs.ErrSlotFull)
	}
	return errs.Mark(wrapped, errs.ErrRemoteRejected)
}
