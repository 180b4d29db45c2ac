package entity

import "time"

type Event struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	TitleTa       string     `json:"title_ta"`
	Description   string     `json:"description"`
	DescriptionTa string     `json:"description_ta"`
	Location      string     `json:"location"`
	LocationTa    string     `json:"location_ta"`
	Category      string     `json:"category"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	ImageURL      string     `json:"image_url"`
	Organizer     string     `json:"organizer"`
	Slug          string     `json:"slug"`
	Featured      bool       `json:"featured"`
	Status        Status     `json:"status"`
	Views         int        `json:"views"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (e *Event) GetID() string   { return e.ID }
func (e *Event) SetID(id string) { e.ID = id }
func (e *Event) Kind() Kind      { return KindEvent }

func (e *Event) Validate() error {
	if err := firstError(
		required("title", e.Title),
		EventCategories.check(e.Category),
		validStatus(e.Status),
	); err != nil {
		return err
	}
	if e.StartDate.IsZero() {
		return NewValidationError("start_date", "is required")
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return NewValidationError("end_date", "must not be before start_date")
	}
	return nil
}

func (e *Event) GetStatus() Status           { return e.Status }
func (e *Event) SetStatus(s Status)          { e.Status = s }
func (e *Event) GetPublishedAt() *time.Time  { return e.PublishedAt }
func (e *Event) SetPublishedAt(t *time.Time) { e.PublishedAt = t }
func (e *Event) GetSlug() string             { return e.Slug }
func (e *Event) SetSlug(slug string)         { e.Slug = slug }

func (e *Event) SanitizeHTML(clean func(string) string) {
	e.Description = clean(e.Description)
	e.DescriptionTa = clean(e.DescriptionTa)
}

func (e *Event) Announcement() Announcement {
	body, bodyTa := e.Description, e.DescriptionTa
	if body == "" {
		body = e.Location
	}
	if bodyTa == "" {
		bodyTa = e.LocationTa
	}
	return Announcement{
		Title:    e.Title,
		TitleTa:  e.TitleTa,
		Body:     body,
		BodyTa:   bodyTa,
		ImageURL: e.ImageURL,
		Path:     "/events/" + e.Slug,
	}
}
