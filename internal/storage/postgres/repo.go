package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"smarthjem/internal/domain"
)

type Repo struct{ pool *pgxpool.Pool }

func New(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// Connect opens a pgx pool against the configured connection string.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	cfg.MinConns = 1
	cfg.MaxConns = 10
	cfg.MaxConnLifetime = time.Hour
	cfg.HealthCheckPeriod = 30 * time.Second
	return pgxpool.NewWithConfig(ctx, cfg)
}

func (r *Repo) Create(ctx context.Context, p domain.Property) error {
	_, err := r.pool.Exec(ctx, insertPropertySQL, args(p)...)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
		return domain.ErrConflict
	}
	return err
}

func (r *Repo) Upsert(ctx context.Context, p domain.Property) error {
	_, err := r.pool.Exec(ctx, upsertPropertySQL, args(p)...)
	return err
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, deletePropertySQL, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (domain.Property, error) {
	row := r.pool.QueryRow(ctx, getPropertySQL, id)
	p, err := scanProperty(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Property{}, domain.ErrNotFound
	}
	return p, err
}

func (r *Repo) List(ctx context.Context) ([]domain.Property, error) {
	rows, err := r.pool.Query(ctx, listPropertiesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) AppendContact(ctx context.Context, f domain.ContactForm) (domain.Inquiry, error) {
	return r.append(ctx, domain.InquiryContact, f)
}

func (r *Repo) AppendBooking(ctx context.Context, b domain.BookingRequest) (domain.Inquiry, error) {
	return r.append(ctx, domain.InquiryBooking, b)
}

func (r *Repo) append(ctx context.Context, kind domain.InquiryKind, payload any) (domain.Inquiry, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return domain.Inquiry{}, err
	}
	in := domain.Inquiry{
		ID:         uuid.NewString(),
		Kind:       kind,
		Payload:    raw,
		ReceivedAt: time.Now().UTC(),
	}
	_, err = r.pool.Exec(ctx, insertInquirySQL, in.ID, string(in.Kind), in.Payload, in.ReceivedAt)
	return in, err
}

func args(p domain.Property) []any {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	amenities := p.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return []any{
		p.ID, p.Name, p.Description, p.Location,
		p.Beds, p.Bathrooms, p.MaxGuests, p.PricePerNight,
		images, amenities, p.Available,
		nullable(p.ExternalURL), nullable(p.BookingURL),
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func scanProperty(row pgx.Row) (domain.Property, error) {
	var p domain.Property
	var externalURL, bookingURL *string
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Location,
		&p.Beds, &p.Bathrooms, &p.MaxGuests, &p.PricePerNight,
		&p.Images, &p.Amenities, &p.Available,
		&externalURL, &bookingURL,
	)
	if err != nil {
		return domain.Property{}, err
	}
	if externalURL != nil {
		p.ExternalURL = *externalURL
	}
	if bookingURL != nil {
		p.BookingURL = *bookingURL
	}
	return p, nil
}
