package domain

import "github.com/m04kA/SMC-StayBooking/pkg/ptr"

// SiteContent the whole editable document of the site
type SiteContent struct {
	Hero         HeroContent     `json:"hero"`
	Gallery      []GalleryImage  `json:"gallery"`
	Details      PropertyDetails `json:"details"`
	Bookings     BookingConfig   `json:"bookings"`
	Reservations []Reservation   `json:"reservations"`
}

type HeroContent struct {
	Eyebrow     string `json:"eyebrow"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
}

type GalleryImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type PropertyDetails struct {
	IntroHeading string      `json:"introHeading"`
	IntroCopy    string      `json:"introCopy"`
	Highlights   []Highlight `json:"highlights"`
	Amenities    []string    `json:"amenities"`
}

type Highlight struct {
	Title       string `json:"title"`
	Highlight   string `json:"highlight"`
	Description string `json:"description"`
}

// FindReservation returns the index of the reservation or -1
func (c *SiteContent) FindReservation(id string) int {
	for i := range c.Reservations {
		if c.Reservations[i].ID == id {
			return i
		}
	}
	return -1
}

// ActiveReservations pending and confirmed reservations
func (c *SiteContent) ActiveReservations() []Reservation {
	active := make([]Reservation, 0, len(c.Reservations))
	for _, r := range c.Reservations {
		if r.IsActive() {
			active = append(active, r)
		}
	}
	return active
}

// DefaultSiteContent document seeded on first read
func DefaultSiteContent() SiteContent {
	return SiteContent{
		Hero: HeroContent{
			Eyebrow:     "Snowy Mountains Retreat",
			Headline:    "The Loft @ Jindabyne",
			Description: "A two bedroom apartment with a loft and lake views, a short walk from the township.",
		},
		Gallery: []GalleryImage{},
		Details: PropertyDetails{
			IntroHeading: "About The Loft @ Jindabyne",
			IntroCopy:    "A two bedroom apartment with a loft and lake views. The perfect base for winter and summer activities.",
			Highlights: []Highlight{
				{Title: "Sleeps", Highlight: "Up to 8 guests", Description: "Two bedrooms plus a loft."},
				{Title: "Check-in / Check-out", Highlight: "1:00 pm / 11:00 am", Description: "Self check-in with door code provided prior to arrival."},
			},
			Amenities: []string{
				"Lake views from apartment",
				"Self check-in with door code",
				"No smoking, no pets, no parties",
			},
		},
		Bookings: BookingConfig{
			WeekdayRate:    DefaultWeekdayRate,
			WeekendRate:    DefaultWeekendRate,
			CleaningFee:    DefaultCleaningFee,
			MinimumNights:  DefaultMinimumNights,
			BlockedDates:   []BlockedRange{},
			CustomRates:    []CustomRatePeriod{},
			DayOfWeekRates: DayOfWeekRates{},
			OccupancyPricing: OccupancyPolicy{
				Enabled:       false,
				BaseOccupancy: DefaultBaseOccupancy,
				MaxOccupancy:  DefaultMaxOccupancy,
				PerAdultRate:  DefaultPerAdultRate,
				Description:   DefaultOccupancyDescription,
			},
			PanelText: ptr.Ptr(PanelText{
				Eyebrow:     DefaultPanelEyebrow,
				Heading:     DefaultPanelHeading,
				Description: DefaultPanelDescription,
				Detail1:     DefaultPanelDetail1,
				Detail2:     DefaultPanelDetail2,
			}),
		},
		Reservations: []Reservation{},
	}
}

// PublicSiteContent document as served to visitors: reservations reduced to spans
type PublicSiteContent struct {
	Hero         HeroContent       `json:"hero"`
	Gallery      []GalleryImage    `json:"gallery"`
	Details      PropertyDetails   `json:"details"`
	Bookings     BookingConfig     `json:"bookings"`
	PanelText    PanelText         `json:"panelText"`
	Reservations []ReservationSpan `json:"reservations"`
}

// Public strips guest data and resolves the panel copy
func (c *SiteContent) Public() PublicSiteContent {
	spans := make([]ReservationSpan, 0, len(c.Reservations))
	for i := range c.Reservations {
		spans = append(spans, c.Reservations[i].PublicSpan())
	}

	return PublicSiteContent{
		Hero:         c.Hero,
		Gallery:      c.Gallery,
		Details:      c.Details,
		Bookings:     c.Bookings,
		PanelText:    c.Bookings.ResolvedPanelText(),
		Reservations: spans,
	}
}

// CalendarReservations reservations restored from the public spans
func (p *PublicSiteContent) CalendarReservations() []Reservation {
	reservations := make([]Reservation, 0, len(p.Reservations))
	for _, span := range p.Reservations {
		reservations = append(reservations, span.AsReservation())
	}
	return reservations
}
