package request

import (
	"strings"

	"checkin-core/internal/domain/service"
	"checkin-core/internal/usecase/commands"
)

// Dates are YYYY-MM-DD in the center's timezone; empty means today.
// Slot keys are HH:MM.

type BookShowerRequest struct {
	SubjectID string `json:"subjectId" binding:"required,max=64"`
	SlotKey   string `json:"slotKey" binding:"required,datetime=15:04"`
	Date      string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

func (r BookShowerRequest) ToInput() commands.BookSlotInput {
	return commands.BookSlotInput{
		SubjectID:    strings.TrimSpace(r.SubjectID),
		SlotKey:      r.SlotKey,
		DateOverride: r.Date,
	}
}

type WaitlistRequest struct {
	SubjectID string `json:"subjectId" binding:"required,max=64"`
	Date      string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

func (r WaitlistRequest) ToInput() commands.WaitlistInput {
	return commands.WaitlistInput{
		SubjectID:    strings.TrimSpace(r.SubjectID),
		DateOverride: r.Date,
	}
}

type BookLaundryRequest struct {
	SubjectID string `json:"subjectId" binding:"required,max=64"`
	Mode      string `json:"mode" binding:"required,oneof=onsite offsite"`
	SlotKey   string `json:"slotKey,omitempty" binding:"omitempty,datetime=15:04"`
	BagNumber string `json:"bagNumber,omitempty" binding:"max=20"`
	Date      string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

func (r BookLaundryRequest) ToInput() commands.LaundryInput {
	return commands.LaundryInput{
		SubjectID:    strings.TrimSpace(r.SubjectID),
		Mode:         service.LaundryMode(r.Mode),
		SlotKey:      r.SlotKey,
		BagNumber:    strings.TrimSpace(r.BagNumber),
		DateOverride: r.Date,
	}
}

type BicycleRepairRequest struct {
	SubjectID string `json:"subjectId" binding:"required,max=64"`
	Note      string `json:"note,omitempty" binding:"max=500"`
	Date      string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

func (r BicycleRepairRequest) ToInput() commands.RepairInput {
	return commands.RepairInput{
		SubjectID:    strings.TrimSpace(r.SubjectID),
		Note:         strings.TrimSpace(r.Note),
		DateOverride: r.Date,
	}
}

type LogServiceRequest struct {
	Type      string `json:"type" binding:"required,oneof=meal donation item"`
	SubjectID string `json:"subjectId" binding:"required,max=64"`
	Quantity  int    `json:"quantity,omitempty" binding:"omitempty,min=1,max=100"`
	Note      string `json:"note,omitempty" binding:"max=500"`
	Date      string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

func (r LogServiceRequest) ToInput() commands.LogInput {
	return commands.LogInput{
		Type:         service.Type(r.Type),
		SubjectID:    strings.TrimSpace(r.SubjectID),
		Quantity:     r.Quantity,
		Note:         strings.TrimSpace(r.Note),
		DateOverride: r.Date,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,max=32"`
}

type RescheduleRequest struct {
	SlotKey string `json:"slotKey" binding:"required,datetime=15:04"`
}

type BagNumberRequest struct {
	BagNumber string `json:"bagNumber" binding:"required,max=20"`
}
