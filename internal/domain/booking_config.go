package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-StayBooking/pkg/types"
)

// BlockedRange dates closed by the owner, both ends inclusive
type BlockedRange struct {
	Start types.Date `json:"start"`
	End   types.Date `json:"end"`
	Note  string     `json:"note,omitempty"`
}

// Contains returns true if d is within [Start, End]
func (b BlockedRange) Contains(d types.Date) bool {
	return !d.Before(b.Start) && !d.After(b.End)
}

// CustomRatePeriod seasonal nightly rate, both ends inclusive
type CustomRatePeriod struct {
	ID        string     `json:"id"`
	StartDate types.Date `json:"startDate"`
	EndDate   types.Date `json:"endDate"`
	Rate      float64    `json:"rate"`
	Label     string     `json:"label"`
}

// Contains returns true if d is within [StartDate, EndDate]
func (p CustomRatePeriod) Contains(d types.Date) bool {
	return !d.Before(p.StartDate) && !d.After(p.EndDate)
}

// DayOfWeekRates optional nightly rate override per weekday
type DayOfWeekRates struct {
	Monday    *float64 `json:"monday,omitempty"`
	Tuesday   *float64 `json:"tuesday,omitempty"`
	Wednesday *float64 `json:"wednesday,omitempty"`
	Thursday  *float64 `json:"thursday,omitempty"`
	Friday    *float64 `json:"friday,omitempty"`
	Saturday  *float64 `json:"saturday,omitempty"`
	Sunday    *float64 `json:"sunday,omitempty"`
}

// For returns the override for the weekday. Missing or non-positive values are not overrides
func (r DayOfWeekRates) For(day time.Weekday) (float64, bool) {
	var rate *float64
	switch day {
	case time.Monday:
		rate = r.Monday
	case time.Tuesday:
		rate = r.Tuesday
	case time.Wednesday:
		rate = r.Wednesday
	case time.Thursday:
		rate = r.Thursday
	case time.Friday:
		rate = r.Friday
	case time.Saturday:
		rate = r.Saturday
	case time.Sunday:
		rate = r.Sunday
	}

	if rate == nil || *rate <= 0 {
		return 0, false
	}
	return *rate, true
}

// OccupancyPolicy extra adult surcharge
type OccupancyPolicy struct {
	Enabled       bool    `json:"enabled"`
	BaseOccupancy int     `json:"baseOccupancy"`
	MaxOccupancy  int     `json:"maxOccupancy"`
	PerAdultRate  float64 `json:"perAdultRate"`
	Description   string  `json:"description,omitempty"`
}

// PanelText booking panel copy, empty fields fall back to defaults
type PanelText struct {
	Eyebrow     string `json:"eyebrow"`
	Heading     string `json:"heading"`
	Description string `json:"description"`
	Detail1     string `json:"detail1"`
	Detail2     string `json:"detail2"`
}

// BookingConfig pricing and availability settings edited by the owner
type BookingConfig struct {
	WeekdayRate             float64            `json:"weekdayRate"`
	WeekendRate             float64            `json:"weekendRate"`
	CleaningFee             float64            `json:"cleaningFee"`
	MinimumNights           int                `json:"minimumNights"`
	MaximumNights           *int               `json:"maximumNights"`
	MaxAdvanceBookingMonths *int               `json:"maxAdvanceBookingMonths,omitempty"`
	BlockedDates            []BlockedRange     `json:"blockedDates"`
	CustomRates             []CustomRatePeriod `json:"customRates"`
	DayOfWeekRates          DayOfWeekRates     `json:"dayOfWeekRates"`
	OccupancyPricing        OccupancyPolicy    `json:"occupancyPricing"`
	PanelText               *PanelText         `json:"panelText,omitempty"`
}

// MaxNights returns the maximum stay if one is configured
func (c *BookingConfig) MaxNights() (int, bool) {
	if c.MaximumNights == nil || *c.MaximumNights <= 0 {
		return 0, false
	}
	return *c.MaximumNights, true
}

// AdvanceBookingLimit returns the booking horizon in months if one is configured
func (c *BookingConfig) AdvanceBookingLimit() (int, bool) {
	if c.MaxAdvanceBookingMonths == nil || *c.MaxAdvanceBookingMonths <= 0 {
		return 0, false
	}
	return *c.MaxAdvanceBookingMonths, true
}

// ResolvedPanelText fills missing panel copy with the defaults
func (c *BookingConfig) ResolvedPanelText() PanelText {
	resolved := PanelText{
		Eyebrow:     DefaultPanelEyebrow,
		Heading:     DefaultPanelHeading,
		Description: DefaultPanelDescription,
		Detail1:     DefaultPanelDetail1,
		Detail2:     DefaultPanelDetail2,
	}
	if c.PanelText == nil {
		return resolved
	}

	pick := func(value, fallback string) string {
		if strings.TrimSpace(value) == "" {
			return fallback
		}
		return value
	}
	resolved.Eyebrow = pick(c.PanelText.Eyebrow, resolved.Eyebrow)
	resolved.Heading = pick(c.PanelText.Heading, resolved.Heading)
	resolved.Description = pick(c.PanelText.Description, resolved.Description)
	resolved.Detail1 = pick(c.PanelText.Detail1, resolved.Detail1)
	resolved.Detail2 = pick(c.PanelText.Detail2, resolved.Detail2)
	return resolved
}

// Validate checks the invariants of the config before it is saved
func (c *BookingConfig) Validate() error {
	if c.WeekdayRate < 0 || c.WeekendRate < 0 || c.CleaningFee < 0 {
		return fmt.Errorf("%w: rates and cleaning fee must not be negative", ErrInvalidBookingConfig)
	}
	if c.MinimumNights < MinMinimumNights {
		return fmt.Errorf("%w: minimumNights must be at least %d", ErrInvalidBookingConfig, MinMinimumNights)
	}
	if maxNights, ok := c.MaxNights(); ok && maxNights < c.MinimumNights {
		return fmt.Errorf("%w: maximumNights %d is less than minimumNights %d", ErrInvalidBookingConfig, maxNights, c.MinimumNights)
	}
	if months, ok := c.AdvanceBookingLimit(); ok && months > MaxAdvanceBookingMonths {
		return fmt.Errorf("%w: maxAdvanceBookingMonths must not exceed %d", ErrInvalidBookingConfig, MaxAdvanceBookingMonths)
	}

	for i, blocked := range c.BlockedDates {
		if blocked.Start.IsZero() || blocked.End.IsZero() {
			return fmt.Errorf("%w: blocked range #%d has no dates", ErrInvalidBookingConfig, i+1)
		}
		if blocked.End.Before(blocked.Start) {
			return fmt.Errorf("%w: blocked range %s to %s ends before it starts", ErrInvalidBookingConfig, blocked.Start, blocked.End)
		}
	}

	for i, period := range c.CustomRates {
		if period.StartDate.IsZero() || period.EndDate.IsZero() {
			return fmt.Errorf("%w: custom rate #%d has no dates", ErrInvalidBookingConfig, i+1)
		}
		if period.EndDate.Before(period.StartDate) {
			return fmt.Errorf("%w: custom rate %s to %s ends before it starts", ErrInvalidBookingConfig, period.StartDate, period.EndDate)
		}
		if period.Rate <= 0 {
			return fmt.Errorf("%w: custom rate %s to %s must be positive", ErrInvalidBookingConfig, period.StartDate, period.EndDate)
		}
	}

	occupancy := c.OccupancyPricing
	if occupancy.Enabled {
		if occupancy.BaseOccupancy < 1 || occupancy.BaseOccupancy > occupancy.MaxOccupancy {
			return fmt.Errorf("%w: occupancy requires 1 <= baseOccupancy <= maxOccupancy", ErrInvalidBookingConfig)
		}
		if occupancy.PerAdultRate < 0 {
			return fmt.Errorf("%w: perAdultRate must not be negative", ErrInvalidBookingConfig)
		}
	}

	return nil
}
