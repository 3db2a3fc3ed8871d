package select_datetime

import (
	"context"
	"time"

	"github.com/facilitae/FAC-AmenityService/internal/service/wizard"
	"github.com/facilitae/FAC-AmenityService/pkg/types"
)

type WizardService interface {
	SelectDate(ctx context.Context, sessionID string, date time.Time) (*wizard.SessionView, error)
	SelectTime(sessionID string, slotTime types.TimeString) (*wizard.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
