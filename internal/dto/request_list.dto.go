package dto

type ParentDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type RequestListDTO struct {
	ID        uint      `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	Parent    ParentDTO `json:"parent"`
}
