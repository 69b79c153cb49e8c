package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"hobby_catalog/internal/domain"
)

func valJSON(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertEstablishment(ctx context.Context, position int, d domain.EstablishmentDetail) error {
	acts, err := valJSON(nonNil(d.Activities))
	if err != nil {
		return fmt.Errorf("marshal activities: %w", err)
	}
	team, err := valJSON(nonNil(d.Team))
	if err != nil {
		return fmt.Errorf("marshal team: %w", err)
	}
	contact, err := valJSON(d.Contact)
	if err != nil {
		return fmt.Errorf("marshal contact: %w", err)
	}

	var lat, lon, span, title any
	if d.Location != nil {
		lat, lon = d.Location.Point.Lat(), d.Location.Point.Lon()
		span = d.Location.SpanDeg
		title = d.Location.Title
	}

	_, err = r.db.ExecContext(ctx, upsertEstablishmentSQL,
		d.ID,
		position,
		d.Name,
		d.Area,
		d.Category,
		d.Rating,
		max(d.RatingCount, 0),
		string(d.HeroImageRef),
		d.Address,
		d.About,
		acts,
		team,
		contact,
		lat, lon, span, title,
	)
	return err
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (r *Repo) GetEstablishment(ctx context.Context, id string) (domain.EstablishmentDetail, error) {
	row := r.db.QueryRowContext(ctx, getEstablishmentSQL, id)

	var d domain.EstablishmentDetail
	var hero string
	var about, mapTitle sql.NullString
	var acts, team, contact []byte
	var lat, lon, span sql.NullFloat64

	if err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Area,
		&d.Category,
		&d.Rating,
		&d.RatingCount,
		&hero,
		&d.Address,
		&about,
		&acts, &team, &contact,
		&lat, &lon, &span,
		&mapTitle,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.EstablishmentDetail{}, domain.ErrNotFound
		}
		return domain.EstablishmentDetail{}, err
	}

	d.HeroImageRef = domain.ImageRef(hero)
	d.About = about.String
	if err := unmarshalOpt(acts, &d.Activities); err != nil {
		return domain.EstablishmentDetail{}, fmt.Errorf("decode activities of %s: %w", id, err)
	}
	if err := unmarshalOpt(team, &d.Team); err != nil {
		return domain.EstablishmentDetail{}, fmt.Errorf("decode team of %s: %w", id, err)
	}
	if err := unmarshalOpt(contact, &d.Contact); err != nil {
		return domain.EstablishmentDetail{}, fmt.Errorf("decode contact of %s: %w", id, err)
	}
	if lat.Valid && lon.Valid {
		d.Location = &domain.Location{
			Point:   orb.Point{lon.Float64, lat.Float64},
			SpanDeg: span.Float64,
			Title:   mapTitle.String,
		}
	}
	return d, nil
}

func unmarshalOpt(b []byte, dst any) error {
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, dst)
}

func (r *Repo) ListEstablishments(ctx context.Context, count, offset int) ([]domain.EstablishmentRecord, error) {
	if count <= 0 {
		return []domain.EstablishmentRecord{}, nil
	}
	rows, err := r.db.QueryContext(ctx, listEstablishmentsSQL, offset, offset+count, count)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.EstablishmentRecord, 0, count)
	for rows.Next() {
		var rec domain.EstablishmentRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Area, &rec.Category, &rec.Rating); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// List lets the repo stand in for the generator as a domain.CatalogSource.
func (r *Repo) List(ctx context.Context, count, offset int) ([]domain.EstablishmentRecord, error) {
	return r.ListEstablishments(ctx, count, offset)
}
