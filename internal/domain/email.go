package domain

import "time"

// Limits applied to email content. The store schema mirrors these.
const (
	MaxSubjectLen = 255
	MaxBodyLen    = 5000
)

// Email is a message sent from one user to another. ID and CreatedAt are
// assigned by the store at insert time; CreatedAt is the inbox sort key.
// Emails are immutable once inserted.
type Email struct {
	ID        int64     `json:"id" db:"id"`
	Subject   string    `json:"message_subject" db:"message_subject" validate:"required,max=255"`
	Body      string    `json:"body" db:"body" validate:"required,max=5000"`
	Sender    string    `json:"sender_username" db:"sender_username" validate:"required"`
	Recipient string    `json:"recipient_username" db:"recipient_username" validate:"required"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewEmail validates and constructs an Email ready for insertion. It returns
// a *ValidationError wrapping ErrEmptyField when subject or body is empty,
// or ErrTooLong when subject exceeds 255 or body exceeds 5000 characters.
// Sender/recipient existence is a service concern, not checked here.
func NewEmail(subject, body, sender, recipient string) (*Email, error) {
	e := &Email{Subject: subject, Body: body, Sender: sender, Recipient: recipient}
	if err := checkStruct(e); err != nil {
		return nil, err
	}
	return e, nil
}
