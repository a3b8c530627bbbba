package remote

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"strings"

	"checkin-core/internal/infra"
	"checkin-core/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

const capacityConstraint = "service_records_slot_capacity"

// classify maps a pgx error to a repository error kind.
func classify(err error) infra.RepositoryErrorKind {
	if pgconv.IsNoRows(err) {
		return infra.KindNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505":
			return infra.KindDuplicateKey
		case pgErr.Code == "23514" && pgErr.ConstraintName == capacityConstraint:
			return infra.KindCapacity
		case strings.HasPrefix(pgErr.Code, "08"), pgErr.Code == "57P01", pgErr.Code == "57P03", pgErr.Code == "53300":
			return infra.KindUnavailable
		case strings.HasPrefix(pgErr.Code, "22"), strings.HasPrefix(pgErr.Code, "23"), strings.HasPrefix(pgErr.Code, "42"):
			return infra.KindRejected
		}
		return infra.KindDBFailure
	}

	var connErr *pgconn.ConnectError
	var netErr net.Error
	switch {
	case errors.As(err, &connErr), errors.As(err, &netErr), pgconn.Timeout(err),
		errors.Is(err, context.DeadlineExceeded):
		return infra.KindUnavailable
	}
	return infra.KindDBFailure
}

func wrapErr(logger *slog.Logger, msg string, err error) error {
	return infra.WrapRepoErr(logger, classify(err), msg, err)
}
