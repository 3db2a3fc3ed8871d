package confirm_reservation

import (
	"context"

	"github.com/facilitae/FAC-AmenityService/internal/service/wizard"
)

type WizardService interface {
	Confirm(ctx context.Context, sessionID string) (*wizard.ConfirmResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
