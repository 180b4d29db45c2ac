package entity

import "time"

type MagazineCollection struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	NameTa        string    `json:"name_ta"`
	Description   string    `json:"description"`
	DescriptionTa string    `json:"description_ta"`
	CoverURL      string    `json:"cover_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (m *MagazineCollection) GetID() string   { return m.ID }
func (m *MagazineCollection) SetID(id string) { m.ID = id }
func (m *MagazineCollection) Kind() Kind      { return KindMagazineCollection }

func (m *MagazineCollection) Validate() error {
	return required("name", m.Name)
}

type Magazine struct {
	ID            string    `json:"id"`
	CollectionID  string    `json:"collection_id"`
	Title         string    `json:"title"`
	TitleTa       string    `json:"title_ta"`
	Description   string    `json:"description"`
	DescriptionTa string    `json:"description_ta"`
	Category      string    `json:"category"`
	PDFURL        string    `json:"pdf_url"`
	CoverURL      string    `json:"cover_url"`
	IssueNumber   int       `json:"issue_number"`
	Featured      bool      `json:"featured"`
	Views         int       `json:"views"`
	Downloads     int       `json:"downloads"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (m *Magazine) GetID() string   { return m.ID }
func (m *Magazine) SetID(id string) { m.ID = id }
func (m *Magazine) Kind() Kind      { return KindMagazine }

func (m *Magazine) Validate() error {
	return firstError(
		required("title", m.Title),
		required("pdf_url", m.PDFURL),
		required("collection_id", m.CollectionID),
		MagazineCategories.check(m.Category),
		nonNegative("issue_number", m.IssueNumber),
	)
}

func (m *Magazine) ParentID() string    { return m.CollectionID }
func (m *Magazine) ParentField() string { return "collection_id" }
