package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lexly/LM-BookingService/internal/domain"
	"github.com/lexly/LM-BookingService/pkg/types"
)

var (
	// ErrCorruptSnapshot возвращается, когда файл снапшота не парсится
	ErrCorruptSnapshot = errors.New("snapshot: corrupt snapshot file")
)

// Store файловый persistence-коллаборатор: load на старте, save при остановке.
// Это не полноценный слой хранения - коллекция пишется целиком, без блокировок
// между процессами, last-write-wins.
type Store struct {
	path string
}

// NewStore создает снапшот-хранилище для указанного файла
func NewStore(path string) *Store {
	return &Store{path: path}
}

// bookingRecord сериализуемое представление бронирования
type bookingRecord struct {
	ID              string    `json:"id"`
	ClientID        int64     `json:"clientId"`
	LawyerID        int64     `json:"lawyerId"`
	Date            string    `json:"date"`
	StartTime       string    `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	SessionType     string    `json:"sessionType"`
	Status          string    `json:"status"`
	Price           float64   `json:"price"`
	Topic           *string   `json:"topic,omitempty"`
	RescheduleCount int       `json:"rescheduleCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Load читает коллекцию бронирований из файла.
// Отсутствующий файл - пустая коллекция, не ошибка.
func (s *Store) Load() ([]*domain.Booking, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.Booking{}, nil
		}
		return nil, fmt.Errorf("snapshot: failed to read %s: %w", s.path, err)
	}

	var records []bookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	bookings := make([]*domain.Booking, 0, len(records))
	for _, rec := range records {
		bookings = append(bookings, &domain.Booking{
			ID:              rec.ID,
			ClientID:        rec.ClientID,
			LawyerID:        rec.LawyerID,
			Date:            rec.Date,
			StartTime:       types.TimeString(rec.StartTime),
			DurationMinutes: rec.DurationMinutes,
			SessionType:     domain.SessionType(rec.SessionType),
			Status:          domain.BookingStatus(rec.Status),
			Price:           rec.Price,
			Topic:           rec.Topic,
			RescheduleCount: rec.RescheduleCount,
			CreatedAt:       rec.CreatedAt,
			UpdatedAt:       rec.UpdatedAt,
		})
	}

	return bookings, nil
}

// Save пишет коллекцию бронирований в файл целиком
func (s *Store) Save(bookings []*domain.Booking) error {
	records := make([]bookingRecord, 0, len(bookings))
	for _, b := range bookings {
		records = append(records, bookingRecord{
			ID:              b.ID,
			ClientID:        b.ClientID,
			LawyerID:        b.LawyerID,
			Date:            b.Date,
			StartTime:       b.StartTime.String(),
			DurationMinutes: b.DurationMinutes,
			SessionType:     string(b.SessionType),
			Status:          string(b.Status),
			Price:           b.Price,
			Topic:           b.Topic,
			RescheduleCount: b.RescheduleCount,
			CreatedAt:       b.CreatedAt,
			UpdatedAt:       b.UpdatedAt,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot: failed to marshal bookings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("snapshot: failed to create directory: %w", err)
	}

	// Пишем во временный файл и переименовываем, чтобы не оставить битый снапшот
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("snapshot: failed to write %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("snapshot: failed to replace %s: %w", s.path, err)
	}

	return nil
}
