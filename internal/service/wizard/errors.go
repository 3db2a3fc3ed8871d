package wizard

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("wizard session not found")

	// ErrInvalidStep возвращается при попытке операции, недопустимой на
	// текущем шаге мастера; переход просто отклоняется
	ErrInvalidStep = errors.New("operation not allowed at current wizard step")

	// ErrAmenityNotFound возвращается, когда объект не найден в каталоге
	ErrAmenityNotFound = errors.New("amenity not found")

	// ErrAmenityNotSelectable возвращается при выборе объекта, недоступного
	// для новых бронирований
	ErrAmenityNotSelectable = errors.New("amenity is not selectable for new reservations")

	// ErrDateRequired возвращается, когда операция требует выбранной даты
	ErrDateRequired = errors.New("date must be selected first")

	// ErrTimeRequired возвращается, когда операция требует выбранного слота
	ErrTimeRequired = errors.New("time slot must be selected first")

	// ErrSlotNotAvailable возвращается при выборе слота, отсутствующего в
	// текущем списке или недоступного
	ErrSlotNotAvailable = errors.New("selected time slot is not available")

	// ErrPeopleOutOfRange возвращается, когда количество человек вне [1, capacity]
	ErrPeopleOutOfRange = errors.New("people count is out of range")

	// ErrSlotTaken возвращается, когда внешний сервис отклонил бронирование
	// из-за занятого слота; черновик сохраняется для повторной попытки
	ErrSlotTaken = errors.New("slot already taken")

	// ErrSubmissionFailed возвращается при неуспехе отправки бронирования;
	// черновик сохраняется для повторной попытки
	ErrSubmissionFailed = errors.New("reservation submission failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wizard: internal error")
)
