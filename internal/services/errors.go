package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/taskboard-api/internal/apperror"
	"gorm.io/gorm"
)

// lookupError maps a missing row to a NotFound domain error and wraps
// anything else.
func lookupError(err error, resource, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(resource, id)
	}
	return fmt.Errorf("failed to find %s: %w", resource, err)
}
