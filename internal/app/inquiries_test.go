package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"smarthjem/internal/app"
	"smarthjem/internal/domain"
)

// ---- more fakes ----

type fakeLog struct {
	entries []domain.Inquiry
	fail    bool
}

func (l *fakeLog) AppendContact(ctx context.Context, f domain.ContactForm) (domain.Inquiry, error) {
	return l.append(domain.InquiryContact)
}

func (l *fakeLog) AppendBooking(ctx context.Context, b domain.BookingRequest) (domain.Inquiry, error) {
	return l.append(domain.InquiryBooking)
}

func (l *fakeLog) append(kind domain.InquiryKind) (domain.Inquiry, error) {
	if l.fail {
		return domain.Inquiry{}, errors.New("log unavailable")
	}
	in := domain.Inquiry{ID: "in-1", Kind: kind}
	l.entries = append(l.entries, in)
	return in, nil
}

type fakeChannel struct {
	configured  bool
	result      domain.BookingResult
	submissions []domain.BookingSubmission
}

func (c *fakeChannel) Configured() bool { return c.configured }
func (c *fakeChannel) FetchProperties(ctx context.Context) ([]domain.Property, error) {
	return nil, nil
}
func (c *fakeChannel) CheckAvailability(ctx context.Context, roomID, in, out string, g int) (*domain.RoomOffer, error) {
	return nil, nil
}
func (c *fakeChannel) CreateBooking(ctx context.Context, s domain.BookingSubmission) domain.BookingResult {
	c.submissions = append(c.submissions, s)
	return c.result
}

type fakeNotifier struct {
	calls []string // property names
	err   error
}

func (n *fakeNotifier) NotifyBooking(ctx context.Context, b domain.BookingRequest, propertyName string) (string, error) {
	n.calls = append(n.calls, propertyName)
	if n.err != nil {
		return "", n.err
	}
	return "msg-1", nil
}

func booking(propertyID string) domain.BookingRequest {
	return domain.BookingRequest{
		PropertyID: propertyID,
		CheckIn:    "2025-07-01",
		CheckOut:   "2025-07-05",
		Guests:     4,
		FirstName:  "Ola",
		LastName:   "Nordmann",
		Email:      "ola@example.no",
		Phone:      "+4712345678",
	}
}

// ---- tests ----

func TestSubmitBooking_UnlinkedPropertyRoutesToEmail(t *testing.T) {
	repo := &fakeRepo{}
	_ = repo.Create(context.Background(), domain.Property{ID: "smolasen-tjorhom", Name: "Flott hytte"})
	lg := &fakeLog{}
	ch := &fakeChannel{configured: true}
	nt := &fakeNotifier{}
	s := app.NewInquiryService(lg, repo, ch, nt)

	ack, err := s.SubmitBooking(context.Background(), booking("smolasen-tjorhom"))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !strings.HasPrefix(ack.Ref, "BK-") {
		t.Fatalf("expected BK- reference, got %q", ack.Ref)
	}
	if ack.Dispatch.Route != app.RouteEmail || !ack.Dispatch.OK() || ack.Dispatch.MessageID != "msg-1" {
		t.Fatalf("unexpected dispatch: %+v", ack.Dispatch)
	}
	if len(nt.calls) != 1 || nt.calls[0] != "Flott hytte" {
		t.Fatalf("notifier should get the resolved display name: %v", nt.calls)
	}
	if len(ch.submissions) != 0 {
		t.Fatal("gateway must not be called for an unlinked property")
	}
	if len(lg.entries) != 1 {
		t.Fatal("booking must be logged")
	}
}

func TestSubmitBooking_LinkedPropertyRoutesToGateway(t *testing.T) {
	repo := &fakeRepo{}
	_ = repo.Create(context.Background(), domain.Property{
		ID: "1001", Name: "Rom A",
		BookingURL: "https://beds24.com/booking2.php?propid=100",
	})
	lg := &fakeLog{}
	ch := &fakeChannel{configured: true, result: domain.BookingResult{OK: true, BookingID: "987"}}
	nt := &fakeNotifier{}
	s := app.NewInquiryService(lg, repo, ch, nt)

	ack, err := s.SubmitBooking(context.Background(), booking("1001"))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if ack.Dispatch.Route != app.RouteGateway || ack.Dispatch.UpstreamID != "987" {
		t.Fatalf("unexpected dispatch: %+v", ack.Dispatch)
	}
	if len(ch.submissions) != 1 {
		t.Fatalf("expected one gateway submission, got %d", len(ch.submissions))
	}
	sub := ch.submissions[0]
	if sub.RoomID != "1001" || sub.NumAdults != 4 || sub.CheckIn != "2025-07-01" {
		t.Fatalf("unexpected submission: %+v", sub)
	}
	if len(nt.calls) != 0 {
		t.Fatal("notifier must not be called when the gateway handled the booking")
	}
}

func TestSubmitBooking_LinkedButUnconfiguredFallsBackToEmail(t *testing.T) {
	repo := &fakeRepo{}
	_ = repo.Create(context.Background(), domain.Property{
		ID: "1001", Name: "Rom A", BookingURL: "https://beds24.com/booking2.php?propid=100",
	})
	ch := &fakeChannel{configured: false}
	nt := &fakeNotifier{}
	s := app.NewInquiryService(&fakeLog{}, repo, ch, nt)

	ack, err := s.SubmitBooking(context.Background(), booking("1001"))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if ack.Dispatch.Route != app.RouteEmail || len(nt.calls) != 1 {
		t.Fatalf("expected email fallback: %+v", ack.Dispatch)
	}
}

func TestSubmitBooking_DownstreamFailureStillAcks(t *testing.T) {
	repo := &fakeRepo{}
	_ = repo.Create(context.Background(), domain.Property{
		ID: "1001", Name: "Rom A", BookingURL: "https://beds24.com/booking2.php?propid=100",
	})
	ch := &fakeChannel{configured: true, result: domain.BookingResult{Error: "rejected upstream"}}
	s := app.NewInquiryService(&fakeLog{}, repo, ch, &fakeNotifier{})

	ack, err := s.SubmitBooking(context.Background(), booking("1001"))
	if err != nil {
		t.Fatalf("ack must not depend on the downstream leg: %v", err)
	}
	if ack.Ref == "" || ack.Dispatch.OK() {
		t.Fatalf("expected acked-with-failed-dispatch: %+v", ack)
	}

	// Same policy on the email leg.
	nt := &fakeNotifier{err: errors.New("smtp down")}
	s2 := app.NewInquiryService(&fakeLog{}, &fakeRepo{}, &fakeChannel{}, nt)
	ack2, err := s2.SubmitBooking(context.Background(), booking("whatever"))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if ack2.Ref == "" || ack2.Dispatch.OK() {
		t.Fatalf("expected acked-with-failed-dispatch: %+v", ack2)
	}
}

func TestSubmitBooking_UnknownPropertyUsesIdAsName(t *testing.T) {
	nt := &fakeNotifier{}
	s := app.NewInquiryService(&fakeLog{}, &fakeRepo{}, &fakeChannel{}, nt)

	if _, err := s.SubmitBooking(context.Background(), booking("ghost-id")); err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(nt.calls) != 1 || nt.calls[0] != "ghost-id" {
		t.Fatalf("expected raw id as display name: %v", nt.calls)
	}
}

func TestSubmitBooking_LogFailureIsAnError(t *testing.T) {
	s := app.NewInquiryService(&fakeLog{fail: true}, &fakeRepo{}, &fakeChannel{}, &fakeNotifier{})
	if _, err := s.SubmitBooking(context.Background(), booking("p1")); err == nil {
		t.Fatal("logging is a precondition for the ack")
	}
}

func TestSubmitContact_Logged(t *testing.T) {
	lg := &fakeLog{}
	s := app.NewInquiryService(lg, &fakeRepo{}, &fakeChannel{}, &fakeNotifier{})
	err := s.SubmitContact(context.Background(), domain.ContactForm{
		Name: "Kari", Email: "kari@example.no", Subject: "Hei", Message: "Er hytta ledig i juli?",
	})
	if err != nil || len(lg.entries) != 1 || lg.entries[0].Kind != domain.InquiryContact {
		t.Fatalf("contact not logged: %v %v", err, lg.entries)
	}
}
