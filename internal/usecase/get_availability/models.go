package get_availability

import (
	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/internal/pricing"
	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// DefaultWindowDays окно по умолчанию, если to не передан
const DefaultWindowDays = 90

// Request модель запроса календаря. Пустые границы заменяются значениями по умолчанию
type Request struct {
	From types.Date // Первый день окна (по умолчанию сегодня)
	To   types.Date // День после последнего (по умолчанию From + DefaultWindowDays)
}

// Response модель ответа с недоступными днями
type Response struct {
	Today         types.Date
	From          types.Date
	To            types.Date
	MinimumNights int
	MaximumNights *int
	DisabledDates []domain.DisabledDay
	Spans         []pricing.DisabledSpan
}
