package entity

import "time"

type Video struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	TitleTa         string     `json:"title_ta"`
	Description     string     `json:"description"`
	DescriptionTa   string     `json:"description_ta"`
	Category        string     `json:"category"`
	VideoURL        string     `json:"video_url"`
	ThumbnailURL    string     `json:"thumbnail_url"`
	DurationSeconds int        `json:"duration_seconds"`
	Featured        bool       `json:"featured"`
	Status          Status     `json:"status"`
	Views           int        `json:"views"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (v *Video) GetID() string   { return v.ID }
func (v *Video) SetID(id string) { v.ID = id }
func (v *Video) Kind() Kind      { return KindVideo }

func (v *Video) Validate() error {
	return firstError(
		required("title", v.Title),
		required("video_url", v.VideoURL),
		VideoCategories.check(v.Category),
		validStatus(v.Status),
		nonNegative("duration_seconds", v.DurationSeconds),
	)
}

func (v *Video) GetStatus() Status           { return v.Status }
func (v *Video) SetStatus(s Status)          { v.Status = s }
func (v *Video) GetPublishedAt() *time.Time  { return v.PublishedAt }
func (v *Video) SetPublishedAt(t *time.Time) { v.PublishedAt = t }
