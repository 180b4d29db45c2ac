package entity

import (
	"strings"
	"time"
)

type Kind string

const (
	KindNews               Kind = "news"
	KindEvent              Kind = "event"
	KindJob                Kind = "job"
	KindBusiness           Kind = "business"
	KindVideo              Kind = "video"
	KindMagazineCollection Kind = "magazine_collection"
	KindMagazine           Kind = "magazine"
	KindRadioFolder        Kind = "radio_folder"
	KindRadioShow          Kind = "radio_show"
)

// IsNotifiable reports whether publishing a record of this kind sends a push.
func (k Kind) IsNotifiable() bool {
	switch k {
	case KindNews, KindEvent, KindJob:
		return true
	}
	return false
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

const (
	CounterViews     = "views"
	CounterDownloads = "downloads"
	CounterPlays     = "plays"
)

// Record is implemented by every content kind.
type Record interface {
	GetID() string
	SetID(id string)
	Kind() Kind
	Validate() error
}

// Publishable kinds carry a draft/published/archived status.
type Publishable interface {
	GetStatus() Status
	SetStatus(s Status)
	GetPublishedAt() *time.Time
	SetPublishedAt(t *time.Time)
}

// Notifiable kinds announce themselves when published.
type Notifiable interface {
	Announcement() Announcement
}

// Child kinds reference a parent collection or folder.
type Child interface {
	ParentID() string
	ParentField() string
}

// Slugged kinds are reachable by slug on the public site.
type Slugged interface {
	GetSlug() string
	SetSlug(slug string)
}

// RichText kinds hold editor HTML that must be cleaned before storage.
type RichText interface {
	SanitizeHTML(clean func(string) string)
}

// Announcement is the bilingual push payload of a published record.
// Body fields may contain HTML; Path is relative to the public site.
type Announcement struct {
	Title    string
	TitleTa  string
	Body     string
	BodyTa   string
	ImageURL string
	Path     string
}

type ListFilter struct {
	Category string
	Featured *bool
	Status   Status
	ParentID string
	Query    string
	Limit    int
	Offset   int
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, "is required")
	}
	return nil
}

func validStatus(s Status) error {
	if s != "" && !s.IsValid() {
		return NewValidationError("status", "must be one of draft, published, archived")
	}
	return nil
}

func nonNegative(field string, v int) error {
	if v < 0 {
		return NewValidationError(field, "must not be negative")
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
