package get_available_slots

import "errors"

var (
	// ErrAmenityNotFound возвращается, когда объект не найден в каталоге
	ErrAmenityNotFound = errors.New("amenity not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
