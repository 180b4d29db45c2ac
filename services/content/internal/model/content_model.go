package model

import (
	"time"

	"hello-madurai/pkg/slug"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newID(id *string) {
	if *id == "" {
		*id = uuid.New().String()
	}
}

type NewsModel struct {
	ID          string     `gorm:"type:uuid;primary_key" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	TitleTa     string     `gorm:"type:varchar(255)" json:"title_ta"`
	Excerpt     string     `gorm:"type:text" json:"excerpt"`
	ExcerptTa   string     `gorm:"type:text" json:"excerpt_ta"`
	Content     string     `gorm:"type:text" json:"content"`
	ContentTa   string     `gorm:"type:text" json:"content_ta"`
	Category    string     `gorm:"type:varchar(50);not null;index" json:"category"`
	ImageURL    string     `gorm:"type:varchar(500)" json:"image_url"`
	Author      string     `gorm:"type:varchar(255)" json:"author"`
	Slug        string     `gorm:"type:varchar(120);uniqueIndex" json:"slug"`
	Featured    bool       `gorm:"default:false;index" json:"featured"`
	Status      string     `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	Views       int        `gorm:"default:0" json:"views"`
	ScheduledAt *time.Time `gorm:"index" json:"scheduled_at"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (NewsModel) TableName() string { return "news" }

func (n *NewsModel) BeforeCreate(tx *gorm.DB) error {
	newID(&n.ID)
	if n.Slug == "" {
		n.Slug = slug.WithID(n.Title, n.ID)
	}
	return nil
}

type EventModel struct {
	ID            string     `gorm:"type:uuid;primary_key" json:"id"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	TitleTa       string     `gorm:"type:varchar(255)" json:"title_ta"`
	Description   string     `gorm:"type:text" json:"description"`
	DescriptionTa string     `gorm:"type:text" json:"description_ta"`
	Location      string     `gorm:"type:varchar(255)" json:"location"`
	LocationTa    string     `gorm:"type:varchar(255)" json:"location_ta"`
	Category      string     `gorm:"type:varchar(50);not null;index" json:"category"`
	StartDate     time.Time  `gorm:"not null;index" json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	ImageURL      string     `gorm:"type:varchar(500)" json:"image_url"`
	Organizer     string     `gorm:"type:varchar(255)" json:"organizer"`
	Slug          string     `gorm:"type:varchar(120);uniqueIndex" json:"slug"`
	Featured      bool       `gorm:"default:false;index" json:"featured"`
	Status        string     `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	Views         int        `gorm:"default:0" json:"views"`
	ScheduledAt   *time.Time `gorm:"index" json:"scheduled_at"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (EventModel) TableName() string { return "events" }

func (e *EventModel) BeforeCreate(tx *gorm.DB) error {
	newID(&e.ID)
	if e.Slug == "" {
		e.Slug = slug.WithID(e.Title, e.ID)
	}
	return nil
}

type JobModel struct {
	ID            string     `gorm:"type:uuid;primary_key" json:"id"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	TitleTa       string     `gorm:"type:varchar(255)" json:"title_ta"`
	Description   string     `gorm:"type:text" json:"description"`
	DescriptionTa string     `gorm:"type:text" json:"description_ta"`
	Company       string     `gorm:"type:varchar(255)" json:"company"`
	Location      string     `gorm:"type:varchar(255)" json:"location"`
	LocationTa    string     `gorm:"type:varchar(255)" json:"location_ta"`
	Category      string     `gorm:"type:varchar(50);not null;index" json:"category"`
	Salary        string     `gorm:"type:varchar(100)" json:"salary"`
	ApplyURL      string     `gorm:"type:varchar(500)" json:"apply_url"`
	ContactEmail  string     `gorm:"type:varchar(255)" json:"contact_email"`
	Deadline      *time.Time `json:"deadline"`
	Featured      bool       `gorm:"default:false;index" json:"featured"`
	Status        string     `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	Views         int        `gorm:"default:0" json:"views"`
	ScheduledAt   *time.Time `gorm:"index" json:"scheduled_at"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (JobModel) TableName() string { return "jobs" }

func (j *JobModel) BeforeCreate(tx *gorm.DB) error {
	newID(&j.ID)
	return nil
}

type BusinessModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	NameTa        string    `gorm:"type:varchar(255)" json:"name_ta"`
	Description   string    `gorm:"type:text" json:"description"`
	DescriptionTa string    `gorm:"type:text" json:"description_ta"`
	Address       string    `gorm:"type:varchar(500)" json:"address"`
	AddressTa     string    `gorm:"type:varchar(500)" json:"address_ta"`
	Category      string    `gorm:"type:varchar(50);not null;index" json:"category"`
	Phone         string    `gorm:"type:varchar(30)" json:"phone"`
	Website       string    `gorm:"type:varchar(500)" json:"website"`
	Email         string    `gorm:"type:varchar(255)" json:"email"`
	ImageURL      string    `gorm:"type:varchar(500)" json:"image_url"`
	Verified      bool      `gorm:"default:false" json:"verified"`
	Featured      bool      `gorm:"default:false;index" json:"featured"`
	Slug          string    `gorm:"type:varchar(120);uniqueIndex" json:"slug"`
	Views         int       `gorm:"default:0" json:"views"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (BusinessModel) TableName() string { return "businesses" }

func (b *BusinessModel) BeforeCreate(tx *gorm.DB) error {
	newID(&b.ID)
	if b.Slug == "" {
		b.Slug = slug.WithID(b.Name, b.ID)
	}
	return nil
}

type VideoModel struct {
	ID              string     `gorm:"type:uuid;primary_key" json:"id"`
	Title           string     `gorm:"type:varchar(255);not null" json:"title"`
	TitleTa         string     `gorm:"type:varchar(255)" json:"title_ta"`
	Description     string     `gorm:"type:text" json:"description"`
	DescriptionTa   string     `gorm:"type:text" json:"description_ta"`
	Category        string     `gorm:"type:varchar(50);not null;index" json:"category"`
	VideoURL        string     `gorm:"type:varchar(500);not null" json:"video_url"`
	ThumbnailURL    string     `gorm:"type:varchar(500)" json:"thumbnail_url"`
	DurationSeconds int        `gorm:"default:0" json:"duration_seconds"`
	Featured        bool       `gorm:"default:false;index" json:"featured"`
	Status          string     `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	Views           int        `gorm:"default:0" json:"views"`
	PublishedAt     *time.Time `json:"published_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (VideoModel) TableName() string { return "videos" }

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	newID(&v.ID)
	return nil
}
