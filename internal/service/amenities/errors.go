package amenities

import "errors"

var (
	// ErrAmenityNotFound возвращается, когда объект не найден
	ErrAmenityNotFound = errors.New("amenity not found")

	// ErrDuplicateAmenity возвращается при конфликте ID при создании
	ErrDuplicateAmenity = errors.New("amenity already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
