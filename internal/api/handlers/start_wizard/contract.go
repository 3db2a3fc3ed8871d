package start_wizard

import (
	"github.com/facilitae/FAC-AmenityService/internal/service/wizard"
)

type WizardService interface {
	Start(userID int64) *wizard.SessionView
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
