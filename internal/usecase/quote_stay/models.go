package quote_stay

import (
	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/internal/pricing"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// Результаты расчета для метрик
const (
	ResultPriced   = "priced"
	ResultRejected = "rejected"
	ResultConflict = "conflict"
)

// Request модель запроса на расчет стоимости
type Request struct {
	CheckIn         types.Date // Дата заезда
	CheckOut        types.Date // Дата выезда (ночь выезда не оплачивается)
	Adults          int
	ChildrenUnder12 int
}

// Response модель ответа с расчетом.
// Breakdown пустой, если диапазон не оценивается или пересекается с недоступными днями
type Response struct {
	CheckIn   types.Date
	CheckOut  types.Date
	Bookable  bool
	Breakdown *domain.StayBreakdown
	Nightly   []pricing.NightlyLine
	Rejection pricing.Rejection
	Conflict  domain.UnavailableReason
	Message   string
}
