package utils

// AnalyticsCachePrefix is the prefix used for Redis analytics snapshot keys.
const AnalyticsCachePrefix = "analytics:"

// Default page sizes for admin listings.
const (
	DefaultPageLimit    = 10
	DefaultMessageLimit = 20
)

// ID prefixes for generated record ids.
const (
	BookingIDPrefix     = "booking-"
	GuestIDPrefix       = "guest-"
	TransactionIDPrefix = "txn-"
	MessageIDPrefix     = "msg-"
	InquiryIDPrefix     = "inquiry-"
)
