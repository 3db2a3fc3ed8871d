package get_available_slots

import (
	"fmt"

	"github.com/facilitae/FAC-AmenityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AmenityID == "" {
		return fmt.Errorf("%w: amenityID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.IsValidMode(req.Mode) {
		return fmt.Errorf("%w: unknown consumer mode %q", ErrInvalidInput, req.Mode)
	}

	return nil
}
