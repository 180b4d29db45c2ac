package model

import (
	"time"

	"gorm.io/gorm"
)

type MagazineCollectionModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	NameTa        string    `gorm:"type:varchar(255)" json:"name_ta"`
	Description   string    `gorm:"type:text" json:"description"`
	DescriptionTa string    `gorm:"type:text" json:"description_ta"`
	CoverURL      string    `gorm:"type:varchar(500)" json:"cover_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (MagazineCollectionModel) TableName() string { return "magazine_collections" }

func (m *MagazineCollectionModel) BeforeCreate(tx *gorm.DB) error {
	newID(&m.ID)
	return nil
}

type MagazineModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	CollectionID  string    `gorm:"type:uuid;not null;index" json:"collection_id"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	TitleTa       string    `gorm:"type:varchar(255)" json:"title_ta"`
	Description   string    `gorm:"type:text" json:"description"`
	DescriptionTa string    `gorm:"type:text" json:"description_ta"`
	Category      string    `gorm:"type:varchar(50);not null;index" json:"category"`
	PDFURL        string    `gorm:"column:pdf_url;type:varchar(500);not null" json:"pdf_url"`
	CoverURL      string    `gorm:"type:varchar(500)" json:"cover_url"`
	IssueNumber   int       `gorm:"default:0" json:"issue_number"`
	Featured      bool      `gorm:"default:false;index" json:"featured"`
	Views         int       `gorm:"default:0" json:"views"`
	Downloads     int       `gorm:"default:0" json:"downloads"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (MagazineModel) TableName() string { return "magazines" }

func (m *MagazineModel) BeforeCreate(tx *gorm.DB) error {
	newID(&m.ID)
	return nil
}

type RadioFolderModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	NameTa        string    `gorm:"type:varchar(255)" json:"name_ta"`
	Description   string    `gorm:"type:text" json:"description"`
	DescriptionTa string    `gorm:"type:text" json:"description_ta"`
	CoverURL      string    `gorm:"type:varchar(500)" json:"cover_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (RadioFolderModel) TableName() string { return "radio_folders" }

func (f *RadioFolderModel) BeforeCreate(tx *gorm.DB) error {
	newID(&f.ID)
	return nil
}

type RadioShowModel struct {
	ID              string    `gorm:"type:uuid;primary_key" json:"id"`
	FolderID        string    `gorm:"type:uuid;not null;index" json:"folder_id"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	TitleTa         string    `gorm:"type:varchar(255)" json:"title_ta"`
	Description     string    `gorm:"type:text" json:"description"`
	DescriptionTa   string    `gorm:"type:text" json:"description_ta"`
	Host            string    `gorm:"type:varchar(255)" json:"host"`
	HostTa          string    `gorm:"type:varchar(255)" json:"host_ta"`
	Category        string    `gorm:"type:varchar(50);not null;index" json:"category"`
	AudioURL        string    `gorm:"type:varchar(500);not null" json:"audio_url"`
	CoverURL        string    `gorm:"type:varchar(500)" json:"cover_url"`
	DurationSeconds int       `gorm:"default:0" json:"duration_seconds"`
	Featured        bool      `gorm:"default:false;index" json:"featured"`
	Plays           int       `gorm:"default:0" json:"plays"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (RadioShowModel) TableName() string { return "radio_shows" }

func (s *RadioShowModel) BeforeCreate(tx *gorm.DB) error {
	newID(&s.ID)
	return nil
}
