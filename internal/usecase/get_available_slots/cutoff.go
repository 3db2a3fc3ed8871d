package get_available_slots

import (
	"time"

	"github.com/facilitae/FAC-AmenityService/internal/domain"
	"github.com/facilitae/FAC-AmenityService/pkg/types"
)

// slotStatusAt возвращает статус кандидата по правилу отсечки:
// если выбранная дата совпадает с сегодняшней и момент начала слота
// строго раньше now + CutoffMinutes, слот недоступен. Будущие даты
// проходят всегда (прошлые даты календарь не предлагает).
func slotStatusAt(selectedDate time.Time, candidate types.TimeString, now time.Time) (domain.SlotStatus, error) {
	if !isSameDay(selectedDate, now) {
		return domain.SlotAvailable, nil
	}

	// Совмещаем календарную дату с временем суток в локации текущего
	// момента, чтобы сравнивать абсолютные моменты времени
	dayStart := time.Date(selectedDate.Year(), selectedDate.Month(), selectedDate.Day(), 0, 0, 0, 0, now.Location())
	instant, err := candidate.OnDate(dayStart)
	if err != nil {
		return "", err
	}

	cutoff := now.Add(domain.CutoffMinutes * time.Minute)
	if instant.Before(cutoff) {
		return domain.SlotUnavailable, nil
	}
	return domain.SlotAvailable, nil
}

// isSameDay проверяет, что две даты относятся к одному календарному дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
