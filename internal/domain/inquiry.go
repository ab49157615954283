package domain

import "time"

// InquiryKind discriminates inquiry log entries.
type InquiryKind string

const (
	InquiryContact InquiryKind = "contact"
	InquiryBooking InquiryKind = "booking"
)

// Inquiry is one entry in the append-only request log. Every inbound contact
// form and booking request is recorded here before anything else happens.
type Inquiry struct {
	ID         string
	Kind       InquiryKind
	Payload    []byte // raw JSON of the validated request
	ReceivedAt time.Time
}
