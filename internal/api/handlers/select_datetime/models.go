package select_datetime

// SelectDateTimeRequest HTTP request model.
// Поля опциональны: сначала клиент присылает дату (и получает слоты),
// затем время. Оба поля сразу тоже допустимы.
type SelectDateTimeRequest struct {
	Date string `json:"date,omitempty"` // YYYY-MM-DD
	Time string `json:"time,omitempty"` // HH:MM
}
