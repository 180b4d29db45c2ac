package entity

import "time"

type Job struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	TitleTa       string     `json:"title_ta"`
	Description   string     `json:"description"`
	DescriptionTa string     `json:"description_ta"`
	Company       string     `json:"company"`
	Location      string     `json:"location"`
	LocationTa    string     `json:"location_ta"`
	Category      string     `json:"category"`
	Salary        string     `json:"salary"`
	ApplyURL      string     `json:"apply_url"`
	ContactEmail  string     `json:"contact_email"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	Featured      bool       `json:"featured"`
	Status        Status     `json:"status"`
	Views         int        `json:"views"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (j *Job) GetID() string   { return j.ID }
func (j *Job) SetID(id string) { j.ID = id }
func (j *Job) Kind() Kind      { return KindJob }

func (j *Job) Validate() error {
	return firstError(
		required("title", j.Title),
		JobCategories.check(j.Category),
		validStatus(j.Status),
	)
}

func (j *Job) GetStatus() Status           { return j.Status }
func (j *Job) SetStatus(s Status)          { j.Status = s }
func (j *Job) GetPublishedAt() *time.Time  { return j.PublishedAt }
func (j *Job) SetPublishedAt(t *time.Time) { j.PublishedAt = t }

func (j *Job) SanitizeHTML(clean func(string) string) {
	j.Description = clean(j.Description)
	j.DescriptionTa = clean(j.DescriptionTa)
}

func (j *Job) Announcement() Announcement {
	body := j.Company
	if j.Location != "" {
		if body != "" {
			body += ", "
		}
		body += j.Location
	}
	if body == "" {
		body = j.Description
	}
	return Announcement{
		Title:   j.Title,
		TitleTa: j.TitleTa,
		Body:    body,
		BodyTa:  j.LocationTa,
		Path:    "/jobs/" + j.ID,
	}
}
