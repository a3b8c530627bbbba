package response

import (
	"time"

	"checkin-core/internal/domain/guest"
	"checkin-core/internal/domain/service"
	"checkin-core/internal/domain/slot"
	"checkin-core/internal/usecase/commands"
)

type RecordResponse struct {
	ID           string     `json:"id"`
	SubjectID    string     `json:"subjectId"`
	Type         string     `json:"type"`
	SlotKey      *string    `json:"slotKey,omitempty"`
	LaundryMode  string     `json:"laundryMode,omitempty"`
	ScheduledFor string     `json:"scheduledFor"`
	Status       string     `json:"status"`
	BagNumber    string     `json:"bagNumber,omitempty"`
	Note         string     `json:"note,omitempty"`
	Quantity     int        `json:"quantity,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastUpdated  time.Time  `json:"lastUpdated"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	PendingSync  bool       `json:"pendingSync"`
}

// CreateRecordResponse is returned for every creation. Queued records exist
// only on this client until the offline queue drains.
type CreateRecordResponse struct {
	Record    RecordResponse `json:"record"`
	Queued    bool           `json:"queued"`
	HistoryID string         `json:"historyId,omitempty"`
}

type SlotResponse struct {
	Slot     string `json:"slot"`
	Count    int    `json:"count"`
	Capacity int    `json:"capacity"`
	Full     bool   `json:"full"`
}

type SubjectResponse struct {
	ID                 string     `json:"id"`
	DisplayName        string     `json:"displayName"`
	RestrictedUntil    *time.Time `json:"restrictedUntil,omitempty"`
	RestrictionReason  string     `json:"restrictionReason,omitempty"`
	RestrictedServices []string   `json:"restrictedServices,omitempty"`
	LastUpdated        time.Time  `json:"lastUpdated"`
}

func FromRecord(r service.Record) RecordResponse {
	return RecordResponse{
		ID:           r.ID,
		SubjectID:    r.SubjectID,
		Type:         string(r.Type),
		SlotKey:      r.SlotKey,
		LaundryMode:  string(r.LaundryMode),
		ScheduledFor: r.ScheduledFor,
		Status:       string(r.Status),
		BagNumber:    r.BagNumber,
		Note:         r.Note,
		Quantity:     r.Quantity,
		CreatedAt:    r.CreatedAt,
		LastUpdated:  r.LastUpdated,
		CompletedAt:  r.CompletedAt,
		PendingSync:  r.PendingSync,
	}
}

func FromRecords(records []service.Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromRecord(r))
	}
	return out
}

func FromResult(res commands.Result) CreateRecordResponse {
	return CreateRecordResponse{
		Record:    FromRecord(res.Record),
		Queued:    res.Queued,
		HistoryID: res.HistoryID,
	}
}

func FromOccupancy(occ []slot.Occupancy) []SlotResponse {
	out := make([]SlotResponse, 0, len(occ))
	for _, o := range occ {
		out = append(out, SlotResponse{Slot: o.Slot, Count: o.Count, Capacity: o.Capacity, Full: o.Full()})
	}
	return out
}

func FromSubject(s guest.Subject) SubjectResponse {
	resp := SubjectResponse{
		ID:                s.ID,
		DisplayName:       s.DisplayName,
		RestrictedUntil:   s.RestrictedUntil,
		RestrictionReason: s.RestrictionReason,
		LastUpdated:       s.LastUpdated,
	}
	for _, t := range s.RestrictedServices {
		resp.RestrictedServices = append(resp.RestrictedServices, string(t))
	}
	return resp
}
