//go:build unit || e2e

package builder

import (
	"time"

	"checkin-core/internal/domain/guest"
	"checkin-core/internal/domain/service"

	"github.com/google/uuid"
)

var BaseTime = time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

const BaseDate = "2026-03-14"

type RecordBuilder struct {
	ID           string
	SubjectID    string
	Type         service.Type
	SlotKey      *string
	LaundryMode  service.LaundryMode
	ScheduledFor string
	Status       service.Status
	BagNumber    string
	Quantity     int
	CreatedAt    time.Time
	PendingSync  bool
	QueueID      string
}

func NewRecordBuilder() *RecordBuilder {
	slot := "08:00"
	return &RecordBuilder{
		ID:           uuid.NewString(),
		SubjectID:    uuid.NewString(),
		Type:         service.TypeShower,
		SlotKey:      &slot,
		ScheduledFor: BaseDate,
		Status:       service.StatusAwaiting,
		CreatedAt:    BaseTime,
	}
}

func (b *RecordBuilder) With(mutate func(*RecordBuilder)) *RecordBuilder {
	mutate(b)
	return b
}

func (b *RecordBuilder) WithSlot(slot string) *RecordBuilder {
	b.SlotKey = &slot
	return b
}

func (b *RecordBuilder) WithoutSlot() *RecordBuilder {
	b.SlotKey = nil
	return b
}

func (b *RecordBuilder) WithSubject(id string) *RecordBuilder {
	b.SubjectID = id
	return b
}

func (b *RecordBuilder) WithStatus(s service.Status) *RecordBuilder {
	b.Status = s
	return b
}

func (b *RecordBuilder) WithID(id string) *RecordBuilder {
	b.ID = id
	return b
}

func (b *RecordBuilder) Laundry(mode service.LaundryMode) *RecordBuilder {
	b.Type = service.TypeLaundry
	b.LaundryMode = mode
	b.Status = service.InitialStatus(service.TypeLaundry, mode)
	b.BagNumber = "B-12"
	if mode == service.LaundryOffsite {
		b.SlotKey = nil
	}
	return b
}

func (b *RecordBuilder) Waitlisted() *RecordBuilder {
	b.Type = service.TypeShower
	b.Status = service.StatusWaitlisted
	b.SlotKey = nil
	return b
}

func (b *RecordBuilder) Pending() *RecordBuilder {
	b.ID = service.NewPlaceholderID()
	b.PendingSync = true
	b.QueueID = uuid.NewString()
	return b
}

func (b *RecordBuilder) BuildDomain() service.Record {
	var slot *string
	if b.SlotKey != nil {
		s := *b.SlotKey
		slot = &s
	}
	return service.Record{
		ID:           b.ID,
		SubjectID:    b.SubjectID,
		Type:         b.Type,
		SlotKey:      slot,
		LaundryMode:  b.LaundryMode,
		ScheduledFor: b.ScheduledFor,
		Status:       b.Status,
		BagNumber:    b.BagNumber,
		Quantity:     b.Quantity,
		CreatedAt:    b.CreatedAt,
		LastUpdated:  b.CreatedAt,
		PendingSync:  b.PendingSync,
		QueueID:      b.QueueID,
	}
}

type SubjectBuilder struct {
	ID                 string
	DisplayName        string
	RestrictedUntil    *time.Time
	RestrictionReason  string
	RestrictedServices []service.Type
}

func NewSubjectBuilder() *SubjectBuilder {
	return &SubjectBuilder{
		ID:          uuid.NewString(),
		DisplayName: "Alex Rivera",
	}
}

func (b *SubjectBuilder) With(mutate func(*SubjectBuilder)) *SubjectBuilder {
	mutate(b)
	return b
}

func (b *SubjectBuilder) RestrictedUntilTime(until time.Time, reason string, services ...service.Type) *SubjectBuilder {
	b.RestrictedUntil = &until
	b.RestrictionReason = reason
	b.RestrictedServices = services
	return b
}

func (b *SubjectBuilder) BuildDomain() guest.Subject {
	return guest.Subject{
		ID:                 b.ID,
		DisplayName:        b.DisplayName,
		RestrictedUntil:    b.RestrictedUntil,
		RestrictionReason:  b.RestrictionReason,
		RestrictedServices: b.RestrictedServices,
		LastUpdated:        BaseTime,
	}
}
