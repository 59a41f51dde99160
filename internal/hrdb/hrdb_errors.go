package hrdb

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrLeaveNotFound          = errors.New("hrdb: leave request not found")
	ErrAlreadyDecided         = errors.New("hrdb: leave request is no longer pending")
	ErrDuplicateLeave         = errors.New("hrdb: leave request already exists")
	ErrUnknownEmployee        = errors.New("hrdb: employee does not exist")
	ErrAttachmentsUnsupported = errors.New("hrdb: attachments are not supported in direct database mode")
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrLeaveNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrDuplicateLeave
		case "23503":
			return ErrUnknownEmployee
		}
	}

	return err
}
