package amenity

import "errors"

var (
	// ErrAmenityNotFound возвращается, когда объект не найден
	ErrAmenityNotFound = errors.New("amenity.repository: amenity not found")

	// ErrDuplicateAmenity возвращается при конфликте ID при создании
	ErrDuplicateAmenity = errors.New("amenity.repository: duplicate amenity id")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("amenity.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("amenity.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("amenity.repository: failed to scan row")

	// ErrMarshalSchedule возвращается при ошибке сериализации расписания
	ErrMarshalSchedule = errors.New("amenity.repository: failed to marshal schedule")

	// ErrUnmarshalSchedule возвращается при ошибке десериализации расписания
	ErrUnmarshalSchedule = errors.New("amenity.repository: failed to unmarshal schedule")
)
