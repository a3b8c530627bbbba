package response

import (
	"time"

	"checkin-core/internal/domain/history"
	"checkin-core/internal/usecase/offline"
	"checkin-core/internal/usecase/queries"
)

type HistoryEntryResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	Actor       string    `json:"actor,omitempty"`
	RecordID    string    `json:"recordId"`
	Resource    string    `json:"resource"`
}

type HistoryListResponse struct {
	Items      []HistoryEntryResponse `json:"items"`
	NextCursor string                 `json:"nextCursor,omitempty"`
}

type UndoResponse struct {
	Undone bool `json:"undone"`
}

type PendingEntryResponse struct {
	QueueID   string    `json:"queueId"`
	Resource  string    `json:"resource"`
	RecordID  string    `json:"recordId"`
	CreatedAt time.Time `json:"createdAt"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"lastError,omitempty"`
}

type SyncStatusResponse struct {
	Online     bool                   `json:"online"`
	QueueDepth int                    `json:"queueDepth"`
	Pending    []PendingEntryResponse `json:"pending"`
	// LastSynced is null for resources never written since start.
	LastSynced map[string]*time.Time  `json:"lastSynced"`
}

type FlushResponse struct {
	Synced    int `json:"synced"`
	Rejected  int `json:"rejected"`
	Remaining int `json:"remaining"`
}

type NoticeResponse struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	Actor   string    `json:"actor,omitempty"`
	At      time.Time `json:"at"`
}

func FromHistory(entries []history.Entry, next *queries.Cursor) HistoryListResponse {
	resp := HistoryListResponse{Items: make([]HistoryEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Items = append(resp.Items, HistoryEntryResponse{
			ID:          e.ID,
			Type:        string(e.Type),
			Timestamp:   e.Timestamp,
			Description: e.Description,
			Actor:       e.Actor,
			RecordID:    e.Data.RecordID,
			Resource:    string(e.Data.Resource),
		})
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}

func FromSyncStatus(st queries.SyncStatus) SyncStatusResponse {
	resp := SyncStatusResponse{
		Online:     st.Online,
		QueueDepth: st.QueueDepth,
		Pending:    make([]PendingEntryResponse, 0, len(st.Pending)),
		LastSynced: make(map[string]*time.Time, len(st.LastSynced)),
	}
	for _, e := range st.Pending {
		resp.Pending = append(resp.Pending, PendingEntryResponse{
			QueueID:   e.QueueID,
			Resource:  string(e.Resource),
			RecordID:  e.Payload.ID,
			CreatedAt: e.CreatedAt,
			Attempts:  e.Attempts,
			LastError: e.LastError,
		})
	}
	for r, at := range st.LastSynced {
		if at.IsZero() {
			resp.LastSynced[string(r)] = nil
			continue
		}
		resp.LastSynced[string(r)] = &at
	}
	return resp
}

func FromFlushResult(res offline.FlushResult) FlushResponse {
	return FlushResponse{Synced: res.Synced, Rejected: res.Rejected, Remaining: res.Remaining}
}

func FromNotices(notices []queries.NoticeView) []NoticeResponse {
	out := make([]NoticeResponse, 0, len(notices))
	for _, n := range notices {
		out = append(out, NoticeResponse{Level: n.Level, Message: n.Message, Actor: n.Actor, At: n.At})
	}
	return out
}
