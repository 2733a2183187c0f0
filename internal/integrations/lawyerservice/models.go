package lawyerservice

// Lawyer карточка юриста из каталога.
// Booking хранит только LawyerID - данные карточки никогда не денормализуются
// в бронирование, всегда запрашиваются у каталога.
type Lawyer struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	AvatarURL        string   `json:"avatarUrl"`
	Specializations  []string `json:"specializations"`
	ConsultationRate float64  `json:"consultationRate"` // цена за сессию консультации
	MentorshipRate   float64  `json:"mentorshipRate"`   // цена за сессию менторства
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
