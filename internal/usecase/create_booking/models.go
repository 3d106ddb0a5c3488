package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID string    // ID пользователя (из X-User-ID)
	OvenID string    // ID печи
	Title  string    // Название эксперимента (опционально)
	Start  time.Time // Начало (включительно)
	End    time.Time // Конец (не включительно)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string
	UserID    string
	OvenID    string
	OvenName  string
	Title     string
	Start     time.Time
	End       time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
