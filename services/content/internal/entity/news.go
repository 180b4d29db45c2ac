package entity

import "time"

type News struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	TitleTa     string     `json:"title_ta"`
	Excerpt     string     `json:"excerpt"`
	ExcerptTa   string     `json:"excerpt_ta"`
	Content     string     `json:"content"`
	ContentTa   string     `json:"content_ta"`
	Category    string     `json:"category"`
	ImageURL    string     `json:"image_url"`
	Author      string     `json:"author"`
	Slug        string     `json:"slug"`
	Featured    bool       `json:"featured"`
	Status      Status     `json:"status"`
	Views       int        `json:"views"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (n *News) GetID() string   { return n.ID }
func (n *News) SetID(id string) { n.ID = id }
func (n *News) Kind() Kind      { return KindNews }

func (n *News) Validate() error {
	return firstError(
		required("title", n.Title),
		NewsCategories.check(n.Category),
		validStatus(n.Status),
	)
}

func (n *News) GetStatus() Status           { return n.Status }
func (n *News) SetStatus(s Status)          { n.Status = s }
func (n *News) GetPublishedAt() *time.Time  { return n.PublishedAt }
func (n *News) SetPublishedAt(t *time.Time) { n.PublishedAt = t }
func (n *News) GetSlug() string             { return n.Slug }
func (n *News) SetSlug(slug string)         { n.Slug = slug }

func (n *News) SanitizeHTML(clean func(string) string) {
	n.Content = clean(n.Content)
	n.ContentTa = clean(n.ContentTa)
}

func (n *News) Announcement() Announcement {
	body, bodyTa := n.Excerpt, n.ExcerptTa
	if body == "" {
		body = n.Content
	}
	if bodyTa == "" {
		bodyTa = n.ContentTa
	}
	return Announcement{
		Title:    n.Title,
		TitleTa:  n.TitleTa,
		Body:     body,
		BodyTa:   bodyTa,
		ImageURL: n.ImageURL,
		Path:     "/news/" + n.Slug,
	}
}
