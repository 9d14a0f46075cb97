package catalog

// Default returns the Grand Horizon Hotel & Spa catalog.
func Default() *Catalog {
	return &Catalog{
		fields: map[string]string{
			"name":           "Grand Horizon Hotel & Spa",
			"address":        "1250 Oceanview Boulevard, Marina Bay, CA 90210",
			"phone":          "+1-800-555-4685",
			"email":          "reservations@grandhorizonhotel.com",
			"website":        "www.grandhorizonhotel.com",
			"check_in_time":  "3:00 PM",
			"early_check_in": "Available from 12:00 PM for a $50 fee, subject to availability",
			"check_out_time": "11:00 AM",
			"late_check_out": "Available until 2:00 PM for a $75 fee, subject to availability",
			"location":       "Located in the heart of Marina Bay, just 15 minutes from the airport and steps away from the beach, shopping, and dining",
			"directions":     "From the airport, take Highway 101 South, exit at Oceanview Boulevard, hotel is on the right",
			"contact":        "You can reach us 24/7 at +1-800-555-4685, by email at reservations@grandhorizonhotel.com, or through our website",
		},
		amenities: map[string]string{
			"pool":            "Rooftop infinity pool with panoramic ocean views, open daily 6 AM to 10 PM. Poolside bar and cabana service available",
			"gym":             "24-hour fitness center featuring state-of-the-art equipment, personal trainers available by appointment",
			"spa":             "Full-service Serenity Spa offering massages, facials, and body treatments. Reservations recommended, call extension 500",
			"restaurant":      "Horizon Grill serves breakfast 6:30-10:30 AM, lunch 11:30 AM-2:30 PM, dinner 5:30-10 PM. Reservations recommended for dinner",
			"bar":             "Skyline Lounge on the 20th floor, open 5 PM to midnight, featuring craft cocktails and stunning sunset views",
			"wifi":            "Complimentary high-speed WiFi throughout the hotel. Premium bandwidth available for $15 per day",
			"parking":         "Valet parking $35 per night, self-parking garage $25 per night. Electric vehicle charging stations available",
			"business_center": "24-hour business center with printing, scanning, and video conferencing facilities",
			"concierge":       "24-hour concierge service for restaurant reservations, tours, and local recommendations",
			"room_service":    "In-room dining available 24 hours. Full menu until 11 PM, limited menu overnight",
		},
		amenityOrder: []string{
			"pool", "gym", "spa", "restaurant", "bar", "wifi", "parking",
			"business_center", "concierge", "room_service",
		},
		policies: map[string]string{
			"cancellation":    "Free cancellation if done 48 hours or more before check-in. Cancellations within 48 hours will be charged for the first night. No-shows will be charged the full reservation amount",
			"pets":            "We welcome dogs under 50 pounds with a $75 per stay pet fee. Please inform us in advance. Service animals are always welcome at no charge",
			"smoking":         "Grand Horizon is a 100% non-smoking property. A $250 cleaning fee applies if smoking is detected in rooms",
			"age_requirement": "Guests must be 21 years or older to check in. Valid government-issued ID required",
			"payment":         "We accept all major credit cards. A valid credit card is required at check-in for incidentals",
			"quiet_hours":     "Quiet hours are from 10 PM to 8 AM to ensure all guests enjoy a peaceful stay",
		},
		roomTypes: []RoomType{
			{
				Key:           "standard",
				Name:          "Standard Room",
				Description:   "Comfortable 325 sq ft room with one king or two queen beds, city view",
				PricePerNight: 149,
				MaxGuests:     2,
			},
			{
				Key:           "deluxe",
				Name:          "Deluxe Room",
				Description:   "Spacious 425 sq ft room with ocean view, sitting area, and premium amenities",
				PricePerNight: 199,
				MaxGuests:     3,
			},
			{
				Key:           "suite",
				Name:          "Executive Suite",
				Description:   "Luxurious 650 sq ft suite with separate living area, ocean view, and executive lounge access",
				PricePerNight: 349,
				MaxGuests:     4,
			},
			{
				Key:           "penthouse",
				Name:          "Penthouse Suite",
				Description:   "Ultimate luxury in 1,200 sq ft with wraparound terrace, private butler service, and panoramic views",
				PricePerNight: 699,
				MaxGuests:     6,
			},
		},
		roomIndex: map[string]int{
			"standard":  0,
			"deluxe":    1,
			"suite":     2,
			"penthouse": 3,
		},
	}
}
