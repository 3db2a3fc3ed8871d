package select_amenity

// SelectAmenityRequest HTTP request model.
// Rebook позволяет повторно забронировать объект вне статуса available
// (сценарий "повторить бронирование" из истории пользователя).
type SelectAmenityRequest struct {
	AmenityID string `json:"amenityId"`
	Rebook    bool   `json:"rebook,omitempty"`
}
