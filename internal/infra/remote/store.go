package remote

import (
	"context"
	"log/slog"

	"checkin-core/internal/domain/guest"
	"checkin-core/internal/domain/service"
	"checkin-core/internal/domain/slot"
	"checkin-core/internal/infra"
	"checkin-core/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is the authoritative record store.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresStore(pool *pgxpool.Pool, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{pool: pool, logger: logger}
}

const recordColumns = `id::text, subject_id, service_type, slot_key, laundry_mode, scheduled_for, status,
	bag_number, note, quantity, created_at, last_updated, completed_at`

func (s *PostgresStore) InsertRecord(ctx context.Context, rec service.Record) (service.Record, error) {
	p, err := toParams(rec)
	if err != nil {
		return service.Record{}, infra.WrapRepoErr(s.logger, infra.KindRejected, "invalid record", err)
	}

	var out service.Record
	err = s.within(ctx, func(ctx context.Context, tx DBTX) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO service_records (subject_id, service_type, slot_key, laundry_mode, scheduled_for, status,
				bag_number, note, quantity, created_at, last_updated, completed_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING `+recordColumns,
			p.SubjectID, p.Type, p.SlotKey, p.LaundryMode, p.ScheduledFor, p.Status,
			p.BagNumber, p.Note, p.Quantity, p.CreatedAt, p.LastUpdated, p.CompletedAt)
		out, err = scanRecord(row)
		return err
	})
	if err != nil {
		return service.Record{}, wrapErr(s.logger, "failed to insert record", err)
	}
	return out, nil
}

func (s *PostgresStore) UpdateRecord(ctx context.Context, rec service.Record) (service.Record, error) {
	p, err := toParams(rec)
	if err != nil {
		return service.Record{}, infra.WrapRepoErr(s.logger, infra.KindRejected, "invalid record", err)
	}

	var out service.Record
	err = s.within(ctx, func(ctx context.Context, tx DBTX) error {
		row := tx.QueryRow(ctx, `
			UPDATE service_records
			SET slot_key = $2, status = $3, bag_number = $4, note = $5, quantity = $6,
				last_updated = $7, completed_at = $8
			WHERE id = $1::uuid
			RETURNING `+recordColumns,
			rec.ID, p.SlotKey, p.Status, p.BagNumber, p.Note, p.Quantity, p.LastUpdated, p.CompletedAt)
		out, err = scanRecord(row)
		return err
	})
	if err != nil {
		return service.Record{}, wrapErr(s.logger, "failed to update record", err)
	}
	return out, nil
}

func (s *PostgresStore) UpsertRecord(ctx context.Context, rec service.Record) (service.Record, error) {
	p, err := toParams(rec)
	if err != nil {
		return service.Record{}, infra.WrapRepoErr(s.logger, infra.KindRejected, "invalid record", err)
	}

	var out service.Record
	err = s.within(ctx, func(ctx context.Context, tx DBTX) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO service_records (id, subject_id, service_type, slot_key, laundry_mode, scheduled_for, status,
				bag_number, note, quantity, created_at, last_updated, completed_at)
			VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			ON CONFLICT (id) DO UPDATE SET
				slot_key = EXCLUDED.slot_key,
				status = EXCLUDED.status,
				bag_number = EXCLUDED.bag_number,
				note = EXCLUDED.note,
				quantity = EXCLUDED.quantity,
				last_updated = EXCLUDED.last_updated,
				completed_at = EXCLUDED.completed_at
			RETURNING `+recordColumns,
			rec.ID, p.SubjectID, p.Type, p.SlotKey, p.LaundryMode, p.ScheduledFor, p.Status,
			p.BagNumber, p.Note, p.Quantity, p.CreatedAt, p.LastUpdated, p.CompletedAt)
		out, err = scanRecord(row)
		return err
	})
	if err != nil {
		return service.Record{}, wrapErr(s.logger, "failed to upsert record", err)
	}
	return out, nil
}

func (s *PostgresStore) DeleteRecord(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM service_records WHERE id = $1::uuid`, id)
	if err != nil {
		return wrapErr(s.logger, "failed to delete record", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "record "+id)
	}
	return nil
}

func (s *PostgresStore) CountActiveInSlot(ctx context.Context, t service.Type, date, slotKey string) (int, error) {
	day, err := pgconv.DateFromKey(date)
	if err != nil {
		return 0, infra.WrapRepoErr(s.logger, infra.KindRejected, "invalid date", err)
	}
	var n int
	err = s.pool.QueryRow(ctx, `
		SELECT count(*) FROM service_records
		WHERE service_type = $1 AND scheduled_for = $2 AND slot_key = $3
		  AND status NOT IN ('cancelled', 'waitlisted')`,
		string(t), day, slotKey).Scan(&n)
	if err != nil {
		return 0, wrapErr(s.logger, "failed to count slot", err)
	}
	return n, nil
}

func (s *PostgresStore) ListRecords(ctx context.Context, date string) ([]service.Record, error) {
	day, err := pgconv.DateFromKey(date)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindRejected, "invalid date", err)
	}
	rows, err := s.pool.Query(ctx, `
		SELECT `+recordColumns+` FROM service_records
		WHERE scheduled_for = $1
		ORDER BY created_at, id`, day)
	if err != nil {
		return nil, wrapErr(s.logger, "failed to list records", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (service.Record, error) {
		return scanRecord(row)
	})
	if err != nil {
		return nil, wrapErr(s.logger, "failed to scan records", err)
	}
	return out, nil
}

func (s *PostgresStore) GetSubject(ctx context.Context, id string) (guest.Subject, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, display_name, restricted_until, restriction_reason, restricted_services, last_updated
		FROM subjects WHERE id = $1`, id)
	sub, err := scanSubject(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return guest.Subject{}, infra.NewRepoErr(infra.KindNotFound, "subject "+id)
		}
		return guest.Subject{}, wrapErr(s.logger, "failed to get subject", err)
	}
	return sub, nil
}

func (s *PostgresStore) UpdateSubject(ctx context.Context, sub guest.Subject) (guest.Subject, error) {
	services := make([]string, 0, len(sub.RestrictedServices))
	for _, t := range sub.RestrictedServices {
		services = append(services, string(t))
	}
	row := s.pool.QueryRow(ctx, `
		INSERT INTO subjects (id, display_name, restricted_until, restriction_reason, restricted_services, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			restricted_until = EXCLUDED.restricted_until,
			restriction_reason = EXCLUDED.restriction_reason,
			restricted_services = EXCLUDED.restricted_services,
			last_updated = EXCLUDED.last_updated
		RETURNING id, display_name, restricted_until, restriction_reason, restricted_services, last_updated`,
		sub.ID, sub.DisplayName, pgconv.TimePtrToPgtype(sub.RestrictedUntil), sub.RestrictionReason, services, sub.LastUpdated)
	out, err := scanSubject(row)
	if err != nil {
		return guest.Subject{}, wrapErr(s.logger, "failed to update subject", err)
	}
	return out, nil
}

// SyncCapacities writes the configured slot capacities so the store-side
// check agrees with the local ledger.
func (s *PostgresStore) SyncCapacities(ctx context.Context, caps slot.Capacities) error {
	for _, t := range []service.Type{service.TypeShower, service.TypeLaundry} {
		_, err := s.pool.Exec(ctx, `
			INSERT INTO slot_capacities (service_type, capacity) VALUES ($1, $2)
			ON CONFLICT (service_type) DO UPDATE SET capacity = EXCLUDED.capacity`,
			string(t), caps.For(t))
		if err != nil {
			return wrapErr(s.logger, "failed to sync slot capacities", err)
		}
	}
	return nil
}
