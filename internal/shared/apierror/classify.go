package apierror

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ClassifyDB converts a low-level persistence failure into exactly one of the
// two database kinds. Repositories call it at the point the failure occurs;
// no raw pgx error may escape the data access layer.
//
// Transient connectivity failures (pool exhaustion, network timeouts, the
// server refusing connections) classify as TemporaryUnavailable. Everything
// else (constraint violations, no row affected, scan errors) classifies as
// DbAccess. The operation message ("Select failed." and friends) is folded
// into the wrapped cause for logs; clients only ever see the kind's default
// message.
func ClassifyDB(message string, err error) *Error {
	if isTransient(err) {
		return Wrap(TemporaryUnavailable, "", err)
	}
	return Wrap(DbAccess, "", fmt.Errorf("%s: %w", message, err))
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}

	// Cancelled or timed-out operations: the statement never completed, a
	// retry may succeed once the pool or the network recovers.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08 - connection exception, 57P03 - cannot_connect_now.
		if strings.HasPrefix(pgErr.Code, "08") || pgErr.Code == "57P03" {
			return true
		}
	}

	return false
}
