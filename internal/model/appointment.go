package model

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Appointment is a read-only join onto a patient record. Appointments are
// managed elsewhere; this service only lists them on single-patient fetch.
type Appointment struct {
	ID        ID                `db:"id" json:"id"`
	PatientID ID                `db:"patient_id" json:"patientId"`
	StartTime time.Time         `db:"start_time" json:"startTime"`
	Reason    string            `db:"reason" json:"reason,omitempty"`
	Status    AppointmentStatus `db:"status" json:"status"`
	CreatedAt time.Time         `db:"created_at" json:"createdAt"`
}
