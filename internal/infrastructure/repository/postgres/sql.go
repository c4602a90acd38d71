package postgres

import (
	"database/sql"
	"errors"
)

// isNotFound reports whether err is the driver's empty-result error,
// which repositories translate into a (zero, false, nil) lookup miss.
func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
