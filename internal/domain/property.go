package domain

// Property is a catalog entry for a single rental unit. Records come from
// admin CRUD or from a channel-manager sync; the identifier never changes
// after creation.
type Property struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	Beds          int      `json:"beds"`
	Bathrooms     int      `json:"bathrooms"`
	MaxGuests     int      `json:"maxGuests"`
	PricePerNight float64  `json:"pricePerNight"` // 0 means "price on request"
	Images        []string `json:"images"`
	Amenities     []string `json:"amenities"`
	Available     bool     `json:"available"`
	ExternalURL   string   `json:"externalUrl,omitempty"`
	// BookingURL points at the channel manager's booking page. A non-empty
	// value marks the property as gateway-linked: booking requests for it are
	// submitted upstream instead of emailed to the operator.
	BookingURL string `json:"bookingUrl,omitempty"`
}

// GatewayLinked reports whether bookings for this property go through the
// channel manager.
func (p Property) GatewayLinked() bool { return p.BookingURL != "" }

// BookingRequest is a public booking inquiry. It is appended to the inquiry
// log and then dispatched exactly once, to the gateway or to the operator
// inbox.
type BookingRequest struct {
	PropertyID      string `json:"propertyId" validate:"required"`
	CheckIn         string `json:"checkIn" validate:"required"`
	CheckOut        string `json:"checkOut" validate:"required"`
	Guests          int    `json:"guests" validate:"required,min=1"`
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,min=8"`
	SpecialRequests string `json:"specialRequests,omitempty" validate:"omitempty"`
}

// ContactForm is a public contact inquiry. Logged on receipt, no downstream
// dispatch.
type ContactForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required,min=10"`
}

// RoomOffer is a live availability quote from the channel manager.
type RoomOffer struct {
	RoomID    string  `json:"roomId"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// BookingSubmission is the payload handed to the channel manager when a
// gateway-linked property is booked.
type BookingSubmission struct {
	RoomID    string
	CheckIn   string
	CheckOut  string
	NumAdults int
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Notes     string
}

// BookingResult is the outcome of an upstream booking submission. Failures
// are data, not errors: the caller decides whether they matter, and for the
// public booking flow they do not block the ack.
type BookingResult struct {
	OK        bool
	BookingID string
	Error     string
}
