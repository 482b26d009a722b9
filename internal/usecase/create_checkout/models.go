package create_checkout

import (
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// Результаты оформления для метрик
const (
	ResultCreated       = "created"
	ResultConflict      = "conflict"
	ResultPriceMismatch = "price_mismatch"
	ResultRejected      = "rejected"
	ResultProviderError = "provider_error"
	ResultError         = "error"

	conflictStage = "checkout"
)

// amountTolerance допустимое расхождение сумм из-за округления на клиенте
const amountTolerance = 0.005

// Request модель запроса на оформление. Суммы клиента сверяются с расчетом сервера
type Request struct {
	CheckIn         types.Date
	CheckOut        types.Date
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	Adults          int
	ChildrenUnder12 int

	TotalAmount   float64
	WeekdayNights int
	WeekendNights int
	CleaningFee   float64
	OccupancyFee  float64
}

// Response модель ответа: куда перенаправить гостя
type Response struct {
	ReservationID string
	SessionID     string
	URL           string
}
