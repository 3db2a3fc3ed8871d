package set_details

import (
	"github.com/facilitae/FAC-AmenityService/internal/service/wizard"
)

// SetDetailsRequest HTTP request model.
// People задает количество человек абсолютно, peopleDelta сдвигает на +/-1
// (выход за границы игнорируется). Остальные nil-поля не изменяются.
type SetDetailsRequest struct {
	People      *int    `json:"people,omitempty"`
	PeopleDelta *int    `json:"peopleDelta,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	IsInsured   *bool   `json:"isInsured,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SetDetailsRequest) ToServiceRequest() *wizard.DetailsRequest {
	return &wizard.DetailsRequest{
		People:      r.People,
		PeopleDelta: r.PeopleDelta,
		Notes:       r.Notes,
		IsInsured:   r.IsInsured,
	}
}
