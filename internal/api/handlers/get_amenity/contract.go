package get_amenity

import (
	"context"

	"github.com/facilitae/FAC-AmenityService/internal/service/amenities/models"
)

type AmenityService interface {
	GetByID(ctx context.Context, id string) (*models.AmenityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
