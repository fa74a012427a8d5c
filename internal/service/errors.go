package service

import (
	"errors"

	"tenderdesk/internal/domain"
)

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
