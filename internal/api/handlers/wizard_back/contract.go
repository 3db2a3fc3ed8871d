package wizard_back

import (
	"github.com/facilitae/FAC-AmenityService/internal/service/wizard"
)

type WizardService interface {
	Back(sessionID string) (*wizard.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
