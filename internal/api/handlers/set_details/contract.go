package set_details

import (
	"github.com/facilitae/FAC-AmenityService/internal/service/wizard"
)

type WizardService interface {
	SetDetails(sessionID string, req *wizard.DetailsRequest) (*wizard.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
