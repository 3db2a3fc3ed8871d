package wizard

import "github.com/facilitae/FAC-AmenityService/internal/domain"

// Виды справочных доп. услуг
const (
	AddOnCleaningService = "cleaning_service"
	AddOnPenalty         = "penalty"
)

// AddOnDisclosure справочная информация о доп. услуге для отображения.
// На доступность слотов не влияет; итоговая сумма здесь не считается.
type AddOnDisclosure struct {
	Kind        string  `json:"kind"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// ResolveAddOns собирает включенные доп. услуги объекта для показа
// на шаге деталей и для payload отправки
func ResolveAddOns(amenity *domain.Amenity) []AddOnDisclosure {
	var addOns []AddOnDisclosure

	if amenity.CleaningService.Enabled {
		addOns = append(addOns, AddOnDisclosure{
			Kind:        AddOnCleaningService,
			Amount:      amenity.CleaningService.Amount,
			Description: amenity.CleaningService.Description,
		})
	}

	if amenity.Penalty.Enabled {
		addOns = append(addOns, AddOnDisclosure{
			Kind:        AddOnPenalty,
			Amount:      amenity.Penalty.Amount,
			Description: amenity.Penalty.Description,
		})
	}

	return addOns
}
