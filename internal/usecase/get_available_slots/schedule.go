package get_available_slots

import (
	"github.com/facilitae/FAC-AmenityService/internal/domain"
	"github.com/facilitae/FAC-AmenityService/pkg/types"
)

// candidateStartTimes возвращает исходный набор времен начала для
// (объект, день недели, режим потребителя).
//
// Приоритет источников:
//  1. "24 horas": у круглосуточных объектов сетка каждые два часа,
//     независимо от недельного расписания (только клиентский режим)
//  2. Легаси-расписание с явным списком слотов на выбранный день
//     (только клиентский режим)
//  3. Сменное недельное расписание
//  4. Резервная почасовая сетка 09:00..18:00, чтобы объект с пустым
//     расписанием оставался частично бронируемым
func candidateStartTimes(amenity *domain.Amenity, weekday domain.Weekday, mode domain.ConsumerMode) []types.TimeString {
	if mode == domain.ModeCustomer {
		if amenity.IsAllDay() {
			return domain.AllDaySlots
		}

		// Непустой легаси-день имеет приоритет над сменным расписанием
		// в клиентском режиме (админские экраны всегда видят смены)
		if amenity.LegacySchedule.HasSlotsFor(weekday) {
			return amenity.LegacySchedule.ForDay(weekday).AvailableSlots
		}
	}

	candidates := shiftStartTimes(amenity.WeeklyShifts, weekday)
	if len(candidates) == 0 {
		return domain.FallbackSlots
	}
	return candidates
}

// shiftStartTimes возвращает времена начала смен для выбранного дня.
//
// Если все семь дней открыты с непустыми сменами, источником становится
// объединение времён начала всех дней недели независимо от выбранного дня.
// Историческое поведение для объектов "открыто каждый день, одинаковые
// часы"; воспроизводится и для объектов с различающимися сменами по дням.
func shiftStartTimes(week domain.WeekSchedule, weekday domain.Weekday) []types.TimeString {
	if week.AllDaysOpen() {
		var starts []types.TimeString
		for _, day := range domain.Weekdays {
			for _, shift := range week.ForDay(day).Shifts {
				starts = append(starts, shift.Start)
			}
		}
		return starts
	}

	day := week.ForDay(weekday)
	if !day.HasShifts() {
		// День закрыт либо открыт без смен: источник пуст, сработает
		// резервная сетка
		return nil
	}

	starts := make([]types.TimeString, 0, len(day.Shifts))
	for _, shift := range day.Shifts {
		starts = append(starts, shift.Start)
	}
	return starts
}
