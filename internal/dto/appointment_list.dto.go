package dto

type AppointmentListDTO struct {
	ID          uint    `json:"id"`
	BookingCode string  `json:"booking_code"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      string  `json:"status"`
	Price       float64 `json:"price"`
	ClientName  string  `json:"client_name"`
	ServiceName string  `json:"service_name"`
}
