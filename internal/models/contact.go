package models

import "time"

type ContactSubject string

const (
	SubjectGeneral    ContactSubject = "general"
	SubjectMembership ContactSubject = "membership"
	SubjectTraining   ContactSubject = "training"
	SubjectClasses    ContactSubject = "classes"
)

type ContactMessage struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone,omitempty"`
	Subject    ContactSubject `json:"subject"`
	Message    string         `json:"message"`
	ReceivedAt time.Time      `json:"received_at"`
}
