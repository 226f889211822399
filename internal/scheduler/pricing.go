package scheduler

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceSet carries the base prices of a bulk request plus optional
// weekend overrides. A zero override means "use the base price".
type PriceSet struct {
	Regular        decimal.Decimal
	Vip            decimal.Decimal
	WeekendRegular decimal.Decimal
	WeekendVip     decimal.Decimal
}

// IsWeekend classifies start in the cinema chain's operating locale,
// regardless of the timezone the service itself runs in.
func IsWeekend(start time.Time, loc *time.Location) bool {
	day := start.In(loc).Weekday()

	return day == time.Saturday || day == time.Sunday
}

// For returns the regular and VIP prices applying to a slot starting at
// start. Weekend overrides kick in independently per tier and only when
// set to a positive amount.
func (p PriceSet) For(start time.Time, loc *time.Location) (regular, vip decimal.Decimal) {
	regular, vip = p.Regular, p.Vip

	if !IsWeekend(start, loc) {
		return regular, vip
	}

	if p.WeekendRegular.IsPositive() {
		regular = p.WeekendRegular
	}
	if p.WeekendVip.IsPositive() {
		vip = p.WeekendVip
	}

	return regular, vip
}
