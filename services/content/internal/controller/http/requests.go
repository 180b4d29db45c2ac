package http

import (
	"time"

	"hello-madurai/services/content/internal/entity"
)

type NewsRequest struct {
	Title       string     `json:"title"`
	TitleTa     string     `json:"title_ta"`
	Excerpt     string     `json:"excerpt"`
	ExcerptTa   string     `json:"excerpt_ta"`
	Content     string     `json:"content"`
	ContentTa   string     `json:"content_ta"`
	Category    string     `json:"category"`
	ImageURL    string     `json:"image_url" binding:"omitempty,url"`
	Author      string     `json:"author"`
	Featured    bool       `json:"featured"`
	Status      string     `json:"status" binding:"omitempty,oneof=draft published archived"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

func (r *NewsRequest) toEntity() *entity.News {
	return &entity.News{
		Title:       r.Title,
		TitleTa:     r.TitleTa,
		Excerpt:     r.Excerpt,
		ExcerptTa:   r.ExcerptTa,
		Content:     r.Content,
		ContentTa:   r.ContentTa,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		Author:      r.Author,
		Featured:    r.Featured,
		Status:      entity.Status(r.Status),
		ScheduledAt: r.ScheduledAt,
	}
}

type EventRequest struct {
	Title         string     `json:"title"`
	TitleTa       string     `json:"title_ta"`
	Description   string     `json:"description"`
	DescriptionTa string     `json:"description_ta"`
	Location      string     `json:"location"`
	LocationTa    string     `json:"location_ta"`
	Category      string     `json:"category"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	ImageURL      string     `json:"image_url" binding:"omitempty,url"`
	Organizer     string     `json:"organizer"`
	Featured      bool       `json:"featured"`
	Status        string     `json:"status" binding:"omitempty,oneof=draft published archived"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
}

func (r *EventRequest) toEntity() *entity.Event {
	return &entity.Event{
		Title:         r.Title,
		TitleTa:       r.TitleTa,
		Description:   r.Description,
		DescriptionTa: r.DescriptionTa,
		Location:      r.Location,
		LocationTa:    r.LocationTa,
		Category:      r.Category,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		ImageURL:      r.ImageURL,
		Organizer:     r.Organizer,
		Featured:      r.Featured,
		Status:        entity.Status(r.Status),
		ScheduledAt:   r.ScheduledAt,
	}
}

type JobRequest struct {
	Title         string     `json:"title"`
	TitleTa       string     `json:"title_ta"`
	Description   string     `json:"description"`
	DescriptionTa string     `json:"description_ta"`
	Company       string     `json:"company"`
	Location      string     `json:"location"`
	LocationTa    string     `json:"location_ta"`
	Category      string     `json:"category"`
	Salary        string     `json:"salary"`
	ApplyURL      string     `json:"apply_url" binding:"omitempty,url"`
	ContactEmail  string     `json:"contact_email" binding:"omitempty,email"`
	Deadline      *time.Time `json:"deadline"`
	Featured      bool       `json:"featured"`
	Status        string     `json:"status" binding:"omitempty,oneof=draft published archived"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
}

func (r *JobRequest) toEntity() *entity.Job {
	return &entity.Job{
		Title:         r.Title,
		TitleTa:       r.TitleTa,
		Description:   r.Description,
		DescriptionTa: r.DescriptionTa,
		Company:       r.Company,
		Location:      r.Location,
		LocationTa:    r.LocationTa,
		Category:      r.Category,
		Salary:        r.Salary,
		ApplyURL:      r.ApplyURL,
		ContactEmail:  r.ContactEmail,
		Deadline:      r.Deadline,
		Featured:      r.Featured,
		Status:        entity.Status(r.Status),
		ScheduledAt:   r.ScheduledAt,
	}
}

type BusinessRequest struct {
	Name          string `json:"name"`
	NameTa        string `json:"name_ta"`
	Description   string `json:"description"`
	DescriptionTa string `json:"description_ta"`
	Address       string `json:"address"`
	AddressTa     string `json:"address_ta"`
	Category      string `json:"category"`
	Phone         string `json:"phone"`
	Website       string `json:"website" binding:"omitempty,url"`
	Email         string `json:"email" binding:"omitempty,email"`
	ImageURL      string `json:"image_url" binding:"omitempty,url"`
	Verified      bool   `json:"verified"`
	Featured      bool   `json:"featured"`
}

func (r *BusinessRequest) toEntity() *entity.Business {
	return &entity.Business{
		Name:          r.Name,
		NameTa:        r.NameTa,
		Description:   r.Description,
		DescriptionTa: r.DescriptionTa,
		Address:       r.Address,
		AddressTa:     r.AddressTa,
		Category:      r.Category,
		Phone:         r.Phone,
		Website:       r.Website,
		Email:         r.Email,
		ImageURL:      r.ImageURL,
		Verified:      r.Verified,
		Featured:      r.Featured,
	}
}

type VideoRequest struct {
	Title           string `json:"title"`
	TitleTa         string `json:"title_ta"`
	Description     string `json:"description"`
	DescriptionTa   string `json:"description_ta"`
	Category        string `json:"category"`
	VideoURL        string `json:"video_url" binding:"omitempty,url"`
	ThumbnailURL    string `json:"thumbnail_url" binding:"omitempty,url"`
	DurationSeconds int    `json:"duration_seconds" binding:"gte=0"`
	Featured        bool   `json:"featured"`
	Status          string `json:"status" binding:"omitempty,oneof=draft published archived"`
}

func (r *VideoRequest) toEntity() *entity.Video {
	return &entity.Video{
		Title:           r.Title,
		TitleTa:         r.TitleTa,
		Description:     r.Description,
		DescriptionTa:   r.DescriptionTa,
		Category:        r.Category,
		VideoURL:        r.VideoURL,
		ThumbnailURL:    r.ThumbnailURL,
		DurationSeconds: r.DurationSeconds,
		Featured:        r.Featured,
		Status:          entity.Status(r.Status),
	}
}

// CollectionRequest is shared by magazine collections and radio folders.
type CollectionRequest struct {
	Name          string `json:"name"`
	NameTa        string `json:"name_ta"`
	Description   string `json:"description"`
	DescriptionTa string `json:"description_ta"`
	CoverURL      string `json:"cover_url" binding:"omitempty,url"`
}

func (r *CollectionRequest) toMagazineCollection() *entity.MagazineCollection {
	return &entity.MagazineCollection{
		Name:          r.Name,
		NameTa:        r.NameTa,
		Description:   r.Description,
		DescriptionTa: r.DescriptionTa,
		CoverURL:      r.CoverURL,
	}
}

func (r *CollectionRequest) toRadioFolder() *entity.RadioFolder {
	return &entity.RadioFolder{
		Name:          r.Name,
		NameTa:        r.NameTa,
		Description:   r.Description,
		DescriptionTa: r.DescriptionTa,
		CoverURL:      r.CoverURL,
	}
}

type MagazineRequest struct {
	CollectionID  string `json:"collection_id"`
	Title         string `json:"title"`
	TitleTa       string `json:"title_ta"`
	Description   string `json:"description"`
	DescriptionTa string `json:"description_ta"`
	Category      string `json:"category"`
	PDFURL        string `json:"pdf_url" binding:"omitempty,url"`
	CoverURL      string `json:"cover_url" binding:"omitempty,url"`
	IssueNumber   int    `json:"issue_number" binding:"gte=0"`
	Featured      bool   `json:"featured"`
}

func (r *MagazineRequest) toEntity() *entity.Magazine {
	return &entity.Magazine{
		CollectionID:  r.CollectionID,
		Title:         r.Title,
		TitleTa:       r.TitleTa,
		Description:   r.Description,
		DescriptionTa: r.DescriptionTa,
		Category:      r.Category,
		PDFURL:        r.PDFURL,
		CoverURL:      r.CoverURL,
		IssueNumber:   r.IssueNumber,
		Featured:      r.Featured,
	}
}

type RadioShowRequest struct {
	FolderID        string `json:"folder_id"`
	Title           string `json:"title"`
	TitleTa         string `json:"title_ta"`
	Description     string `json:"description"`
	DescriptionTa   string `json:"description_ta"`
	Host            string `json:"host"`
	HostTa          string `json:"host_ta"`
	Category        string `json:"category"`
	AudioURL        string `json:"audio_url" binding:"omitempty,url"`
	CoverURL        string `json:"cover_url" binding:"omitempty,url"`
	DurationSeconds int    `json:"duration_seconds" binding:"gte=0"`
	Featured        bool   `json:"featured"`
}

func (r *RadioShowRequest) toEntity() *entity.RadioShow {
	return &entity.RadioShow{
		FolderID:        r.FolderID,
		Title:           r.Title,
		TitleTa:         r.TitleTa,
		Description:     r.Description,
		DescriptionTa:   r.DescriptionTa,
		Host:            r.Host,
		HostTa:          r.HostTa,
		Category:        r.Category,
		AudioURL:        r.AudioURL,
		CoverURL:        r.CoverURL,
		DurationSeconds: r.DurationSeconds,
		Featured:        r.Featured,
	}
}
