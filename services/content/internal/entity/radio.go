package entity

import "time"

type RadioFolder struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	NameTa        string    `json:"name_ta"`
	Description   string    `json:"description"`
	DescriptionTa string    `json:"description_ta"`
	CoverURL      string    `json:"cover_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (f *RadioFolder) GetID() string   { return f.ID }
func (f *RadioFolder) SetID(id string) { f.ID = id }
func (f *RadioFolder) Kind() Kind      { return KindRadioFolder }

func (f *RadioFolder) Validate() error {
	return required("name", f.Name)
}

type RadioShow struct {
	ID              string    `json:"id"`
	FolderID        string    `json:"folder_id"`
	Title           string    `json:"title"`
	TitleTa         string    `json:"title_ta"`
	Description     string    `json:"description"`
	DescriptionTa   string    `json:"description_ta"`
	Host            string    `json:"host"`
	HostTa          string    `json:"host_ta"`
	Category        string    `json:"category"`
	AudioURL        string    `json:"audio_url"`
	CoverURL        string    `json:"cover_url"`
	DurationSeconds int       `json:"duration_seconds"`
	Featured        bool      `json:"featured"`
	Plays           int       `json:"plays"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (s *RadioShow) GetID() string   { return s.ID }
func (s *RadioShow) SetID(id string) { s.ID = id }
func (s *RadioShow) Kind() Kind      { return KindRadioShow }

func (s *RadioShow) Validate() error {
	return firstError(
		required("title", s.Title),
		required("audio_url", s.AudioURL),
		required("folder_id", s.FolderID),
		RadioShowCategories.check(s.Category),
		nonNegative("duration_seconds", s.DurationSeconds),
	)
}

func (s *RadioShow) ParentID() string    { return s.FolderID }
func (s *RadioShow) ParentField() string { return "folder_id" }
