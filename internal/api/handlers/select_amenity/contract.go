package select_amenity

import (
	"context"

	"github.com/facilitae/FAC-AmenityService/internal/service/wizard"
)

type WizardService interface {
	SelectAmenity(ctx context.Context, sessionID, amenityID string, rebook bool) (*wizard.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
