package store

import (
	"time"

	"grandhorizon/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedReservations builds the demo data set. Fresh records on every call
// so Reset never hands out aliases of a previous generation.
func seedReservations() []*domain.Reservation {
	return []*domain.Reservation{
		{
			Confirmation:    "GH-78432",
			GuestName:       "John Smith",
			LastName:        "smith",
			Phone:           "+1-555-123-4567",
			Email:           "john.smith@email.com",
			CheckIn:         date(2026, time.January, 15),
			CheckOut:        date(2026, time.January, 18),
			RoomType:        "deluxe",
			RoomNumber:      "412",
			Guests:          2,
			Nights:          3,
			RatePerNight:    199.00,
			TotalCost:       597.00,
			Status:          domain.ReservationConfirmed,
			PaymentStatus:   domain.PaymentPaid,
			SpecialRequests: []string{"Late check-in around 9 PM", "High floor preferred"},
			CreatedAt:       date(2025, time.December, 20),
		},
		{
			Confirmation:    "GH-92156",
			GuestName:       "Sarah Johnson",
			LastName:        "johnson",
			Phone:           "+1-555-987-6543",
			Email:           "sarah.j@email.com",
			CheckIn:         date(2026, time.January, 10),
			CheckOut:        date(2026, time.January, 12),
			RoomType:        "suite",
			RoomNumber:      "801",
			Guests:          4,
			Nights:          2,
			RatePerNight:    349.00,
			TotalCost:       698.00,
			Status:          domain.ReservationConfirmed,
			PaymentStatus:   domain.PaymentPaid,
			SpecialRequests: []string{"Airport shuttle pickup", "Champagne upon arrival"},
			CreatedAt:       date(2025, time.December, 15),
		},
		{
			Confirmation:    "GH-45891",
			GuestName:       "Michael Chen",
			LastName:        "chen",
			Phone:           "+1-555-456-7890",
			Email:           "mchen@business.com",
			CheckIn:         date(2026, time.January, 20),
			CheckOut:        date(2026, time.January, 25),
			RoomType:        "standard",
			RoomNumber:      "215",
			Guests:          1,
			Nights:          5,
			RatePerNight:    149.00,
			TotalCost:       745.00,
			Status:          domain.ReservationConfirmed,
			PaymentStatus:   domain.PaymentDepositPaid,
			SpecialRequests: []string{"Early check-in if possible", "Extra pillows"},
			CreatedAt:       date(2025, time.December, 22),
		},
		{
			Confirmation:    "GH-33567",
			GuestName:       "Emily Rodriguez",
			LastName:        "rodriguez",
			Phone:           "+1-555-234-5678",
			Email:           "emily.r@email.com",
			CheckIn:         date(2026, time.January, 8),
			CheckOut:        date(2026, time.January, 10),
			RoomType:        "deluxe",
			RoomNumber:      "518",
			Guests:          2,
			Nights:          2,
			RatePerNight:    199.00,
			TotalCost:       398.00,
			Status:          domain.ReservationConfirmed,
			PaymentStatus:   domain.PaymentPaid,
			SpecialRequests: []string{"Anniversary celebration", "Ocean view room"},
			CreatedAt:       date(2025, time.December, 18),
		},
		{
			Confirmation:    "GH-67234",
			GuestName:       "David Williams",
			LastName:        "williams",
			Phone:           "+1-555-345-6789",
			Email:           "d.williams@email.com",
			CheckIn:         date(2026, time.February, 1),
			CheckOut:        date(2026, time.February, 5),
			RoomType:        "penthouse",
			RoomNumber:      "2001",
			Guests:          4,
			Nights:          4,
			RatePerNight:    699.00,
			TotalCost:       2796.00,
			Status:          domain.ReservationConfirmed,
			PaymentStatus:   domain.PaymentPaid,
			SpecialRequests: []string{"Private dinner on terrace", "Spa appointments for 2"},
			CreatedAt:       date(2025, time.December, 10),
		},
		{
			Confirmation:    "GH-11223",
			GuestName:       "Lisa Thompson",
			LastName:        "thompson",
			Phone:           "+1-555-678-9012",
			Email:           "lisa.t@email.com",
			CheckIn:         date(2026, time.January, 25),
			CheckOut:        date(2026, time.January, 27),
			RoomType:        "standard",
			RoomNumber:      "302",
			Guests:          2,
			Nights:          2,
			RatePerNight:    149.00,
			TotalCost:       298.00,
			Status:          domain.ReservationConfirmed,
			PaymentStatus:   domain.PaymentPaid,
			SpecialRequests: []string{"Quiet room away from elevator"},
			CreatedAt:       date(2025, time.December, 23),
		},
	}
}
