package get_available_slots

import (
	"sort"
	"time"

	"github.com/facilitae/FAC-AmenityService/internal/domain"
	"github.com/facilitae/FAC-AmenityService/pkg/types"
)

// generateSlots строит итоговый список слотов для (объект, дата, режим):
// источник кандидатов -> статус по правилу отсечки -> дедупликация -> сортировка.
//
// Результат детерминирован: для фиксированных входных данных список
// всегда одинаков.
func generateSlots(
	amenity *domain.Amenity,
	selectedDate time.Time,
	now time.Time,
	mode domain.ConsumerMode,
) []domain.TimeSlot {
	// Без выбранной даты время не предлагается
	if selectedDate.IsZero() {
		return []domain.TimeSlot{}
	}

	weekday := domain.WeekdayFromTime(selectedDate)
	candidates := candidateStartTimes(amenity, weekday, mode)

	// Дедупликация по точному значению HH:MM. Дубликаты возникают только
	// из объединения смен всех дней недели; статус зависит лишь от пары
	// (дата, время), поэтому дубликаты всегда совпадают по статусу и
	// достаточно set-union без слияния
	seen := make(map[types.TimeString]struct{}, len(candidates))
	slots := make([]domain.TimeSlot, 0, len(candidates))

	for _, candidate := range candidates {
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}

		status, err := slotStatusAt(selectedDate, candidate, now)
		if err != nil {
			// Искаженное значение времени в расписании не попадает в выдачу;
			// корректность значений обеспечивает валидация каталога
			continue
		}

		slots = append(slots, domain.TimeSlot{Time: candidate, Status: status})
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Time.IsBefore(slots[j].Time)
	})

	return slots
}
