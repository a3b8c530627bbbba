package commands

import "checkin-core/internal/domain/service"

// BookSlotInput books a shower slot. DateOverride (YYYY-MM-DD) books another
// day; empty means today in the center's timezone.
type BookSlotInput struct {
	SubjectID    string
	SlotKey      string
	DateOverride string
}

type WaitlistInput struct {
	SubjectID    string
	DateOverride string
}

// LaundryInput books laundry. On-site needs a slot; off-site has none.
type LaundryInput struct {
	SubjectID    string
	Mode         service.LaundryMode
	SlotKey      string
	BagNumber    string
	DateOverride string
}

type RepairInput struct {
	SubjectID    string
	Note         string
	DateOverride string
}

// LogInput records a meal, donation or item handed out.
type LogInput struct {
	Type         service.Type
	SubjectID    string
	Quantity     int
	Note         string
	DateOverride string
}
