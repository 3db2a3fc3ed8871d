package reservationservice

// Reservation payload завершенного черновика бронирования,
// передаваемого во внешний сервис хранения и уведомлений
type Reservation struct {
	AmenityID   string  `json:"amenity_id"`
	AmenityName string  `json:"amenity_name"`
	UserID      int64   `json:"user_id"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Time        string  `json:"time"` // HH:MM
	People      int     `json:"people"`
	Notes       string  `json:"notes"`
	IsInsured   bool    `json:"is_insured"`
	AddOns      []AddOn `json:"add_ons,omitempty"`
}

// AddOn справочная информация о доп. услуге, прикрепленная к бронированию
type AddOn struct {
	Kind        string  `json:"kind"` // cleaning_service, penalty
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// SubmissionAck подтверждение принятого бронирования
type SubmissionAck struct {
	ReservationID string `json:"reservation_id"`
	Status        string `json:"status"`
}

// ErrorResponse модель ошибки от ReservationService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
