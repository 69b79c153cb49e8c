package mysql

const upsertEstablishmentSQL = `
INSERT INTO establishments
  (id, position, name, area, category, rating, rating_count, hero_image, address, about,
   activities, team, contact, lat, lon, map_span, map_title)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  position     = VALUES(position),
  name         = VALUES(name),
  area         = VALUES(area),
  category     = VALUES(category),
  rating       = VALUES(rating),
  rating_count = VALUES(rating_count),
  hero_image   = VALUES(hero_image),
  address      = VALUES(address),
  about        = VALUES(about),
  activities   = VALUES(activities),
  team         = VALUES(team),
  contact      = VALUES(contact),
  lat          = VALUES(lat),
  lon          = VALUES(lon),
  map_span     = VALUES(map_span),
  map_title    = VALUES(map_title),
  updated_at   = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const getEstablishmentSQL = `
SELECT
  id, name, area, category, rating, rating_count, hero_image, address, about,
  activities, team, contact, lat, lon, map_span, map_title
FROM establishments
WHERE id = ?
`

// Positions mirror the generator's (offset + i), so a window over
// [offset, offset+count) returns the same ranked slice.
const listEstablishmentsSQL = `
SELECT id, name, area, category, rating
FROM establishments
WHERE position >= ? AND position < ?
ORDER BY position, id
LIMIT ?
`
