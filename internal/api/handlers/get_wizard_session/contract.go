package get_wizard_session

import (
	"github.com/facilitae/FAC-AmenityService/internal/service/wizard"
)

type WizardService interface {
	Get(sessionID string) (*wizard.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
