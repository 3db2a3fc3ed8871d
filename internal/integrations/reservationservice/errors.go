package reservationservice

import "errors"

var (
	// ErrSlotTaken возвращается, когда внешний сервис отклонил бронирование
	// из-за занятого слота (гонка двух сессий разрешается на его стороне)
	ErrSlotTaken = errors.New("reservationservice client: slot already taken")

	// ErrRejected возвращается, когда внешний сервис отклонил данные бронирования
	ErrRejected = errors.New("reservationservice client: reservation rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("reservationservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("reservationservice client: invalid response")
)
