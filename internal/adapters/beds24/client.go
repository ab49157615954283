// internal/adapters/beds24/client.go
package beds24

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"smarthjem/internal/adapters/observability"
	"smarthjem/internal/domain"
)

const (
	// Refresh credentials longer than this are treated as one-time invite
	// codes and exchanged for a real refresh token on first use.
	inviteCodeMinLen = 100

	// Tokens are refreshed this long before their reported expiry.
	expiryMargin = 5 * time.Minute
)

// Defaults applied when the channel manager omits a field. The upstream
// inventory endpoint exposes neither photos nor stable nightly pricing, so
// price is always reported as "on request" (zero).
const (
	defaultBeds      = 2
	defaultBathrooms = 1
	defaultMaxGuests = 4
	placeholderImage = "/stock_images/luxury_vacation_cabi_fd229fff.jpg"
)

var defaultAmenities = []string{"WiFi", "Smart Lås", "Rengjøring"}

var (
	ErrNotConfigured = errors.New("beds24: not configured")
	ErrNotFound      = errors.New("beds24: not found")
	ErrUnauthorized  = errors.New("beds24: unauthorized")
	ErrForbidden     = errors.New("beds24: forbidden")
)

// session holds one cached bearer token. Read and write operations may be
// backed by differently scoped credentials, so each role gets its own session.
type session struct {
	mu      sync.Mutex
	refresh string // configured credential; may start life as an invite code
	token   string
	expiry  time.Time
}

type Client struct {
	base  string
	hc    *http.Client
	rl    *rate.Limiter
	read  *session
	write *session
}

// New builds a client against the channel manager. Empty credentials are not
// an error: the integration is simply disabled and every operation degrades
// to its empty result. When writeCred is empty, booking submissions reuse the
// read credential.
func New(base, readCred, writeCred string, rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	c := &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
		read: &session{refresh: readCred},
	}
	if writeCred != "" {
		c.write = &session{refresh: writeCred}
	} else {
		c.write = c.read
	}
	return c
}

func (c *Client) Configured() bool { return c.read.refresh != "" }

// ---- Public API ----

// FetchProperties pulls the property inventory with nested room data and
// flattens it into one catalog record per room; a property with no rooms
// yields one record for the property itself. Missing credential returns an
// empty list without any network call.
func (c *Client) FetchProperties(ctx context.Context) ([]domain.Property, error) {
	tok, err := c.token(ctx, c.read)
	if errors.Is(err, ErrNotConfigured) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var props []beds24Property
	if err := c.getJSON(ctx, c.base+"/properties?includeAllRooms=true", tok, &props); err != nil {
		return nil, err
	}

	out := make([]domain.Property, 0, len(props))
	for _, p := range props {
		if len(p.RoomTypes) == 0 {
			out = append(out, mapRecord(p, nil))
			continue
		}
		for i := range p.RoomTypes {
			out = append(out, mapRecord(p, &p.RoomTypes[i]))
		}
	}
	return out, nil
}

// CheckAvailability asks the channel manager for an offer on the given room
// and date range. Returns nil when the integration is disabled or the room has
// no offer.
func (c *Client) CheckAvailability(ctx context.Context, roomID, checkIn, checkOut string, guests int) (*domain.RoomOffer, error) {
	tok, err := c.token(ctx, c.read)
	if errors.Is(err, ErrNotConfigured) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("roomId", roomID)
	q.Set("checkIn", checkIn)
	q.Set("checkOut", checkOut)
	q.Set("numAdults", strconv.Itoa(guests))

	var offers []domain.RoomOffer
	if err := c.getJSON(ctx, c.base+"/inventory/rooms/offers?"+q.Encode(), tok, &offers); err != nil {
		return nil, err
	}
	for i := range offers {
		if offers[i].RoomID == roomID {
			return &offers[i], nil
		}
	}
	return nil, nil
}

// CreateBooking submits a pre-confirmed booking upstream using the
// write-scoped token. It never returns a Go error: failure is carried in the
// result and the caller decides whether it is fatal (for the public booking
// flow it is not).
func (c *Client) CreateBooking(ctx context.Context, s domain.BookingSubmission) domain.BookingResult {
	tok, err := c.token(ctx, c.write)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			return domain.BookingResult{Error: "API not configured"}
		}
		return domain.BookingResult{Error: err.Error()}
	}

	roomID, err := strconv.ParseInt(s.RoomID, 10, 64)
	if err != nil {
		return domain.BookingResult{Error: fmt.Sprintf("room id %q is not a channel room", s.RoomID)}
	}

	payload := []bookingPayload{{
		RoomID:    roomID,
		Arrival:   s.CheckIn,
		Departure: s.CheckOut,
		NumAdult:  s.NumAdults,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
		Mobile:    s.Phone,
		Notes:     s.Notes,
		Status:    "confirmed",
	}}

	var results []bookingResponse
	if err := c.postJSON(ctx, c.base+"/bookings", tok, payload, &results); err != nil {
		return domain.BookingResult{Error: err.Error()}
	}
	if len(results) == 0 {
		return domain.BookingResult{Error: "empty booking response"}
	}
	r := results[0]
	if !r.Success {
		msg := r.Error
		if msg == "" {
			msg = "booking rejected"
		}
		return domain.BookingResult{Error: msg}
	}
	return domain.BookingResult{OK: true, BookingID: strconv.FormatInt(r.New.ID, 10)}
}

// ---- Token handling ----

type tokenResponse struct {
	Token        string `json:"token"`
	ExpiresIn    int    `json:"expiresIn"`
	RefreshToken string `json:"refreshToken"`
}

// token returns a valid bearer token for the session, fetching a fresh one
// synchronously when the cached token is past its margin-adjusted expiry.
func (c *Client) token(ctx context.Context, s *session) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refresh == "" {
		return "", ErrNotConfigured
	}
	if s.token != "" && time.Now().Before(s.expiry) {
		return s.token, nil
	}

	// A long credential is a one-time invite code: exchange it for a real
	// refresh token first, then run the normal token flow.
	if len(s.refresh) > inviteCodeMinLen {
		rt, err := c.exchangeInvite(ctx, s.refresh)
		if err != nil {
			return "", err
		}
		s.refresh = rt
	}

	var tr tokenResponse
	if err := c.authGET(ctx, c.base+"/authentication/token", "refreshToken", s.refresh, &tr); err != nil {
		return "", err
	}
	if tr.Token == "" {
		return "", errors.New("beds24: token endpoint returned no token")
	}
	s.token = tr.Token
	s.expiry = time.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - expiryMargin)
	return s.token, nil
}

func (c *Client) exchangeInvite(ctx context.Context, code string) (string, error) {
	var tr tokenResponse
	if err := c.authGET(ctx, c.base+"/authentication/setup", "code", code, &tr); err != nil {
		return "", err
	}
	if tr.RefreshToken == "" {
		return "", errors.New("beds24: invite exchange returned no refresh token")
	}
	return tr.RefreshToken, nil
}

// ---- Upstream shapes & mapping ----

type beds24Property struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	City        string       `json:"city"`
	RoomTypes   []beds24Room `json:"roomTypes"`
}

type beds24Room struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	MaxGuests    int      `json:"maxGuests"`
	NumBedrooms  int      `json:"numBedrooms"`
	NumBathrooms int      `json:"numBathrooms"`
	Photos       []string `json:"photos"`
	Amenities    []string `json:"amenities"`
}

type bookingPayload struct {
	RoomID    int64  `json:"roomId"`
	Arrival   string `json:"arrival"`
	Departure string `json:"departure"`
	NumAdult  int    `json:"numAdult"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	Notes     string `json:"notes,omitempty"`
	Status    string `json:"status"`
}

type bookingResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	New     struct {
		ID int64 `json:"id"`
	} `json:"new"`
}

// mapRecord flattens one upstream property/room pair into a catalog record.
// Room-level name and description win over property-level; nil room means the
// property had no nested rooms and stands for itself.
func mapRecord(p beds24Property, r *beds24Room) domain.Property {
	id := p.ID
	name := p.Name
	desc := p.Description
	beds, baths, guests := 0, 0, 0
	var photos, amenities []string
	if r != nil {
		id = r.ID
		if r.Name != "" {
			name = r.Name
		}
		if r.Description != "" {
			desc = r.Description
		}
		beds, baths, guests = r.NumBedrooms, r.NumBathrooms, r.MaxGuests
		photos, amenities = r.Photos, r.Amenities
	}
	if name == "" {
		name = "Ukjent eiendom"
	}
	if desc == "" {
		desc = "Ingen beskrivelse tilgjengelig."
	}
	location := p.City
	if location == "" {
		location = "Norge"
	}
	if beds <= 0 {
		beds = defaultBeds
	}
	if baths <= 0 {
		baths = defaultBathrooms
	}
	if guests <= 0 {
		guests = defaultMaxGuests
	}
	if len(photos) == 0 {
		photos = []string{placeholderImage}
	}
	if len(amenities) == 0 {
		amenities = append([]string(nil), defaultAmenities...)
	}
	return domain.Property{
		ID:            strconv.FormatInt(id, 10),
		Name:          name,
		Description:   desc,
		Location:      location,
		Beds:          beds,
		Bathrooms:     baths,
		MaxGuests:     guests,
		PricePerNight: 0,
		Images:        photos,
		Amenities:     amenities,
		Available:     true,
		BookingURL:    fmt.Sprintf("https://beds24.com/booking2.php?propid=%d", p.ID),
	}
}

// ---- HTTP plumbing ----

func (c *Client) authGET(ctx context.Context, url, header, value string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(header, value)
	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, url, token string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("token", token)
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, url, token string, body, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("token", token)
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("User-Agent", "smarthjem/1.0")
	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("beds24", req.URL.Path, 0, time.Since(start))
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("beds24", req.URL.Path, resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("beds24: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}
