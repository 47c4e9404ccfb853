package models

// AnalyticsQuery is resolved by the handler: EndDate defaults to today and
// StartDate to EndDate minus Days.
type AnalyticsQuery struct {
	StartDate Date
	EndDate   Date
	Days      int
}

type UnitOccupancy struct {
	UnitID        string `json:"unitId"`
	UnitName      string `json:"unitName"`
	OccupancyRate int    `json:"occupancyRate"`
	BookedDays    int    `json:"bookedDays"`
	TotalDays     int    `json:"totalDays"`
}

type UnitRevenue struct {
	UnitID   string  `json:"unitId"`
	UnitName string  `json:"unitName"`
	Revenue  float64 `json:"revenue"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type RevenueMetrics struct {
	TotalRevenue        float64          `json:"totalRevenue"`
	MonthlyRevenue      float64          `json:"monthlyRevenue"`
	AverageBookingValue float64          `json:"averageBookingValue"`
	RevenueByUnit       []UnitRevenue    `json:"revenueByUnit"`
	RevenueByMonth      []MonthlyRevenue `json:"revenueByMonth"`
}

type StatusCount struct {
	Status BookingStatus `json:"status"`
	Count  int           `json:"count"`
}

type BookingTrends struct {
	TotalBookings     int           `json:"totalBookings"`
	BookingsThisMonth int           `json:"bookingsThisMonth"`
	BookingsLastMonth int           `json:"bookingsLastMonth"`
	AverageStayLength int           `json:"averageStayLength"`
	StatusBreakdown   []StatusCount `json:"statusBreakdown"`
}

type AdditionalMetrics struct {
	TotalGuests     int     `json:"totalGuests"`
	RepeatGuests    int     `json:"repeatGuests"`
	RepeatGuestRate int     `json:"repeatGuestRate"`
	AverageRating   float64 `json:"averageRating"`
	TotalReviews    int     `json:"totalReviews"`
}

type AnalyticsReport struct {
	Occupancy         []UnitOccupancy   `json:"occupancy"`
	OverallOccupancy  int               `json:"overallOccupancy"`
	Revenue           RevenueMetrics    `json:"revenue"`
	BookingTrends     BookingTrends     `json:"bookingTrends"`
	Period            Period            `json:"period"`
	AdditionalMetrics AdditionalMetrics `json:"additionalMetrics"`
}
