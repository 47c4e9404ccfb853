package units

import "pillowstat/models"

func DefaultContractLengths() []models.ContractLength {
	return []models.ContractLength{
		{Weeks: 8, Label: "8 weeks", Discount: 0, Description: "Standard contract"},
		{Weeks: 13, Label: "13 weeks", Discount: 5, Description: "5% discount"},
		{Weeks: 26, Label: "26 weeks", Discount: 10, Description: "10% discount"},
	}
}

// DefaultUnits is the three-unit waterfront property.
func DefaultUnits() []models.Unit {
	return []models.Unit{
		{
			ID:           "studio-suite",
			Name:         "Studio Suite",
			Tier:         "premium",
			Tagline:      "Complete privacy with waterfront living.",
			Description:  "A fully private 450 sqft studio apartment with its own ground-level entrance, private deck, full kitchen and in-unit laundry.",
			MonthlyPrice: 2100,
			Features: []string{
				"Private entrance (ground level)",
				"Private deck with partial bay views",
				"Full kitchen with modern appliances",
				"Queen bed with premium linens",
				"Dedicated work desk with ergonomic chair",
				"In-unit washer/dryer",
				"Blackout curtains (ideal for night shift)",
				"High-speed WiFi (100+ Mbps)",
				"Smart TV with streaming",
				"Dedicated parking spot",
				"Climate control (heating/AC)",
			},
			PrivacyLevel: "Full Privacy",
			Bedrooms:     0,
			Bathrooms:    1,
			Sqft:         450,
			Image:        "/studio-suite.jpg",
			PerfectFor:   "Solo travel nurses, day sleepers, those who value complete privacy",
		},
		{
			ID:           "garden-suite",
			Name:         "Garden Suite",
			Tier:         "economy",
			Tagline:      "Comfortable living at a smart price.",
			Description:  "A cozy 280 sqft private bedroom and bathroom on the garden level, sharing a full kitchen with the Upper Retreat.",
			MonthlyPrice: 1750,
			Features: []string{
				"Private bedroom (280 sqft)",
				"Private bathroom",
				"Shared full kitchen (with Upper Retreat only)",
				"Queen bed with quality linens",
				"Wardrobe and desk area",
				"Access to shared garden space",
				"Ground floor convenience",
				"High-speed WiFi (100+ Mbps)",
				"Smart TV with streaming",
				"Street parking available",
				"Climate control (heating/AC)",
			},
			PrivacyLevel: "Shared Kitchen",
			Bedrooms:     1,
			Bathrooms:    1,
			Sqft:         280,
			Image:        "/garden-suite.jpg",
			PerfectFor:   "Budget-conscious nurses, social professionals, those who enjoy community",
		},
		{
			ID:           "upper-retreat",
			Name:         "Upper Retreat",
			Tier:         "spacious-premium",
			Tagline:      "Expansive living with stunning bay views.",
			Description:  "The entire 850 sqft upper level with bay and mountain views, a full kitchen, living room, den and private deck. Only laundry is shared.",
			MonthlyPrice: 2200,
			Features: []string{
				"Entire upper floor (850 sqft)",
				"Master bedroom with bay views",
				"Views of Olympic Mountains",
				"Full kitchen",
				"Living room and den",
				"Private deck overlooking Liberty Bay",
				"Shared laundry only",
				"High-speed WiFi (100+ Mbps)",
				"Smart TV with streaming",
				"Dedicated parking spot",
				"Climate control (heating/AC)",
				"Abundant natural light",
			},
			PrivacyLevel: "Shared Laundry Only",
			Bedrooms:     1,
			Bathrooms:    1,
			Sqft:         850,
			Image:        "/upper-retreat.jpg",
			PerfectFor:   "Nurses wanting space, couples on assignment, those who love waterfront views",
		},
	}
}
