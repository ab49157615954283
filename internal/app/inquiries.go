package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"smarthjem/internal/adapters/observability"
	"smarthjem/internal/domain"
)

type DispatchRoute string

const (
	RouteGateway DispatchRoute = "gateway"
	RouteEmail   DispatchRoute = "email"
)

// DispatchResult makes the fate of a booking's downstream leg explicit. The
// public endpoint acks regardless; this is what the operator sees in logs and
// metrics when the downstream leg failed and needs manual follow-up.
type DispatchResult struct {
	Route      DispatchRoute
	UpstreamID string // gateway booking id, when routed upstream
	MessageID  string // mail provider message id, when routed to email
	Err        error
}

func (d DispatchResult) OK() bool { return d.Err == nil }

// BookingAck is what the guest gets back: a reference, always, once the
// request has been validated and logged.
type BookingAck struct {
	Ref      string
	Dispatch DispatchResult
}

// InquiryService handles the public contact and booking submissions.
type InquiryService struct {
	inquiries domain.InquiryLog
	repo      domain.PropertyRepository
	channel   domain.ChannelClient
	notifier  domain.BookingNotifier
}

func NewInquiryService(l domain.InquiryLog, r domain.PropertyRepository, ch domain.ChannelClient, n domain.BookingNotifier) *InquiryService {
	return &InquiryService{inquiries: l, repo: r, channel: ch, notifier: n}
}

// SubmitContact appends the form to the inquiry log. No downstream dispatch
// is wired for this path.
func (s *InquiryService) SubmitContact(ctx context.Context, f domain.ContactForm) error {
	in, err := s.inquiries.AppendContact(ctx, f)
	if err != nil {
		return err
	}
	log.Info().Str("inquiry", in.ID).Str("subject", f.Subject).Msg("contact form received")
	return nil
}

// SubmitBooking logs the request, then routes it to exactly one of the
// gateway or the operator inbox. The returned ack never depends on the
// routed leg's outcome; failures are surfaced through logs and the dispatch
// counter for manual reconciliation.
func (s *InquiryService) SubmitBooking(ctx context.Context, b domain.BookingRequest) (BookingAck, error) {
	in, err := s.inquiries.AppendBooking(ctx, b)
	if err != nil {
		return BookingAck{}, err
	}

	ack := BookingAck{Ref: fmt.Sprintf("BK-%d", time.Now().UnixMilli())}

	propertyName := b.PropertyID
	var linked bool
	p, err := s.repo.Get(ctx, b.PropertyID)
	switch {
	case err == nil:
		propertyName = p.Name
		linked = p.GatewayLinked()
	case errors.Is(err, domain.ErrNotFound):
		// Unknown id still gets logged and emailed; the operator sorts it out.
	default:
		log.Warn().Str("property", b.PropertyID).Err(err).Msg("property lookup failed, routing to email")
	}

	if linked && s.channel.Configured() {
		res := s.channel.CreateBooking(ctx, domain.BookingSubmission{
			RoomID:    b.PropertyID,
			CheckIn:   b.CheckIn,
			CheckOut:  b.CheckOut,
			NumAdults: b.Guests,
			FirstName: b.FirstName,
			LastName:  b.LastName,
			Email:     b.Email,
			Phone:     b.Phone,
			Notes:     b.SpecialRequests,
		})
		ack.Dispatch = DispatchResult{Route: RouteGateway, UpstreamID: res.BookingID}
		if !res.OK {
			ack.Dispatch.Err = errors.New(res.Error)
		}
	} else {
		msgID, err := s.notifier.NotifyBooking(ctx, b, propertyName)
		ack.Dispatch = DispatchResult{Route: RouteEmail, MessageID: msgID, Err: err}
	}

	observability.ObserveDispatch(string(ack.Dispatch.Route), ack.Dispatch.OK())
	ev := log.Info()
	if !ack.Dispatch.OK() {
		ev = log.Warn().Err(ack.Dispatch.Err)
	}
	ev.Str("inquiry", in.ID).
		Str("ref", ack.Ref).
		Str("property", b.PropertyID).
		Str("route", string(ack.Dispatch.Route)).
		Msg("booking request dispatched")

	return ack, nil
}
