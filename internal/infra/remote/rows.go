package remote

import (
	"time"

	"checkin-core/internal/domain/guest"
	"checkin-core/internal/domain/service"
	"checkin-core/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type recordParams struct {
	SubjectID    string
	Type         string
	SlotKey      pgtype.Text
	LaundryMode  pgtype.Text
	ScheduledFor pgtype.Date
	Status       string
	BagNumber    string
	Note         string
	Quantity     int32
	CreatedAt    time.Time
	LastUpdated  time.Time
	CompletedAt  pgtype.Timestamptz
}

func toParams(rec service.Record) (recordParams, error) {
	day, err := pgconv.DateFromKey(rec.ScheduledFor)
	if err != nil {
		return recordParams{}, err
	}
	var mode *string
	if rec.LaundryMode != "" {
		m := string(rec.LaundryMode)
		mode = &m
	}
	return recordParams{
		SubjectID:    rec.SubjectID,
		Type:         string(rec.Type),
		SlotKey:      pgconv.StringPtrToPgtype(rec.SlotKey),
		LaundryMode:  pgconv.StringPtrToPgtype(mode),
		ScheduledFor: day,
		Status:       string(rec.Status),
		BagNumber:    rec.BagNumber,
		Note:         rec.Note,
		Quantity:     int32(rec.Quantity), // #nosec G115 -- validated non-negative and small
		CreatedAt:    rec.CreatedAt,
		LastUpdated:  rec.LastUpdated,
		CompletedAt:  pgconv.TimePtrToPgtype(rec.CompletedAt),
	}, nil
}

func scanRecord(row pgx.Row) (service.Record, error) {
	var (
		rec         service.Record
		typ, status string
		slotKey     pgtype.Text
		mode        pgtype.Text
		day         pgtype.Date
		quantity    int32
		completedAt pgtype.Timestamptz
	)
	err := row.Scan(&rec.ID, &rec.SubjectID, &typ, &slotKey, &mode, &day, &status,
		&rec.BagNumber, &rec.Note, &quantity, &rec.CreatedAt, &rec.LastUpdated, &completedAt)
	if err != nil {
		return service.Record{}, err
	}
	rec.Type = service.Type(typ)
	rec.Status = service.Status(status)
	rec.SlotKey = pgconv.StringPtrFromPgtype(slotKey)
	if mode.Valid {
		rec.LaundryMode = service.LaundryMode(mode.String)
	}
	rec.ScheduledFor = pgconv.DateToKey(day)
	rec.Quantity = int(quantity)
	rec.CompletedAt = pgconv.TimePtrFromPgtype(completedAt)
	return rec, nil
}

func scanSubject(row pgx.Row) (guest.Subject, error) {
	var (
		sub      guest.Subject
		until    pgtype.Timestamptz
		services []string
	)
	if err := row.Scan(&sub.ID, &sub.DisplayName, &until, &sub.RestrictionReason, &services, &sub.LastUpdated); err != nil {
		return guest.Subject{}, err
	}
	sub.RestrictedUntil = pgconv.TimePtrFromPgtype(until)
	for _, s := range services {
		sub.RestrictedServices = append(sub.RestrictedServices, service.Type(s))
	}
	return sub, nil
}
