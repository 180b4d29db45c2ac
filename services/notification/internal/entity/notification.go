package entity

import (
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrProvider   = errors.New("push provider request failed")
)

// ValidationError names the offending request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

type Source string

const (
	SourcePublish Source = "publish"
	SourceManual  Source = "manual"
)

// NotifiableKinds have their own push topics.
var NotifiableKinds = []string{"news", "event", "job"}

func IsNotifiableKind(kind string) bool {
	for _, k := range NotifiableKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Attempt is the outcome of one provider send.
type Attempt struct {
	Target     string `json:"target"`
	Lang       string `json:"lang"`
	MessageID  string `json:"message_id,omitempty"`
	Error      string `json:"error,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}

func (a Attempt) Succeeded() bool {
	return a.Error == ""
}

// NotificationLog is the durable record of one fan-out.
type NotificationLog struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	ContentID    string    `json:"content_id,omitempty"`
	Source       Source    `json:"source"`
	Title        string    `json:"title"`
	SuccessCount int       `json:"success_count"`
	FailureCount int       `json:"failure_count"`
	Attempts     []Attempt `json:"attempts"`
	CreatedAt    time.Time `json:"created_at"`
}

// Tally fills the success and failure counts from the attempts.
func (l *NotificationLog) Tally() {
	l.SuccessCount, l.FailureCount = 0, 0
	for _, a := range l.Attempts {
		if a.Succeeded() {
			l.SuccessCount++
		} else {
			l.FailureCount++
		}
	}
}

type LogFilter struct {
	Kind      string
	ContentID string
	Source    Source
	Limit     int
	Offset    int
}

// ManualSend is an admin-composed notification. Exactly one of Topic or
// Tokens is set; a topic is expanded to one provider topic per language.
type ManualSend struct {
	Topic    string
	Tokens   []string
	Lang     string
	Title    string
	TitleTa  string
	Body     string
	BodyTa   string
	ImageURL string
	Link     string
}

// TopicChange asks to add or remove one device from the topics of kinds.
type TopicChange struct {
	Token string
	Kinds []string
	Lang  string
}

type TopicStatus struct {
	Topic string `json:"topic"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
