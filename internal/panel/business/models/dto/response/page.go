package response

// Page — пагинационный конверт бэкенда. Непагинированные эндпоинты
// возвращают голый массив, поэтому Content может прийти и без конверта.
type Page[T any] struct {
	Content       []T `json:"content"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
	Size          int `json:"size"`
}

// ErrorEnvelope — тело ошибки бэкенда; может нести message либо error.
type ErrorEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Text возвращает первое непустое поле конверта.
func (e ErrorEnvelope) Text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// OrderStats — агрегаты по заказам с GET /orders/stats.
type OrderStats struct {
	TotalOrders    int            `json:"totalOrders"`
	TotalRevenue   float64        `json:"totalRevenue"`
	CountsByStatus map[string]int `json:"countsByStatus"`
}

// UploadResult — ответ эндпоинта загрузки изображений.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}
