package postgres

const propertyCols = `
  id, name, description, location, beds, bathrooms, max_guests,
  price_per_night, images, amenities, available, external_url, booking_url`

const insertPropertySQL = `
INSERT INTO properties
  (id, name, description, location, beds, bathrooms, max_guests,
   price_per_night, images, amenities, available, external_url, booking_url)
VALUES
  ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
`

const upsertPropertySQL = insertPropertySQL + `
ON CONFLICT (id) DO UPDATE SET
  name            = EXCLUDED.name,
  description     = EXCLUDED.description,
  location        = EXCLUDED.location,
  beds            = EXCLUDED.beds,
  bathrooms       = EXCLUDED.bathrooms,
  max_guests      = EXCLUDED.max_guests,
  price_per_night = EXCLUDED.price_per_night,
  images          = EXCLUDED.images,
  amenities       = EXCLUDED.amenities,
  available       = EXCLUDED.available,
  external_url    = EXCLUDED.external_url,
  booking_url     = EXCLUDED.booking_url,
  updated_at      = CURRENT_TIMESTAMP
`

const deletePropertySQL = `DELETE FROM properties WHERE id = $1`

const getPropertySQL = `SELECT ` + propertyCols + ` FROM properties WHERE id = $1`

// created_at keeps listings stable across restarts.
const listPropertiesSQL = `SELECT ` + propertyCols + ` FROM properties ORDER BY created_at, id`

const insertInquirySQL = `
INSERT INTO inquiries (id, kind, payload, received_at)
VALUES ($1, $2, $3, $4)
`
