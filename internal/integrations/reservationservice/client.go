package reservationservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с ReservationService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ReservationService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SubmitReservation передает завершенный черновик бронирования внешнему сервису.
// Любой неуспех трактуется вызывающей стороной как восстановимая ошибка:
// черновик сохраняется, пользователь может повторить отправку.
func (c *Client) SubmitReservation(ctx context.Context, reservation *Reservation) (*SubmissionAck, error) {
	url := fmt.Sprintf("%s/internal/reservations", c.baseURL)

	payload, err := json.Marshal(reservation)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal reservation: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	c.log.Info("SubmitReservation: amenity=%s, user=%d, date=%s, time=%s",
		reservation.AmenityID, reservation.UserID, reservation.Date, reservation.Time)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		// Продолжаем обработку
	case http.StatusConflict:
		c.log.Warn("SubmitReservation: slot taken for amenity=%s, date=%s, time=%s",
			reservation.AmenityID, reservation.Date, reservation.Time)
		return nil, ErrSlotTaken
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s", ErrRejected, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var ack SubmissionAck
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("SubmitReservation: accepted, reservation_id=%s", ack.ReservationID)
	return &ack, nil
}
