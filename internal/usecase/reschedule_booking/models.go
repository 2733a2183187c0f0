package reschedule_booking

import (
	"time"

	"github.com/lexly/LM-BookingService/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID string
	UserID    int64 // переносить может только клиент бронирования
	NewDate   string
	NewTime   types.TimeString
	NewTopic  *string
}

// Response модель ответа с перенесённым бронированием и advisory-флагами политики
type Response struct {
	ID              string
	Date            string
	StartTime       types.TimeString
	Status          string
	Topic           *string
	RescheduleCount int
	UpdatedAt       time.Time

	// Advisory-флаги: сервис только сигнализирует, списание и блокировка
	// выполняются внешними системами
	FeeApplies     bool
	FeeAmount      float64
	SuspensionRisk bool
}
