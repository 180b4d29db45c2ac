package entity

import "time"

type Business struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	NameTa        string    `json:"name_ta"`
	Description   string    `json:"description"`
	DescriptionTa string    `json:"description_ta"`
	Address       string    `json:"address"`
	AddressTa     string    `json:"address_ta"`
	Category      string    `json:"category"`
	Phone         string    `json:"phone"`
	Website       string    `json:"website"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	Verified      bool      `json:"verified"`
	Featured      bool      `json:"featured"`
	Slug          string    `json:"slug"`
	Views         int       `json:"views"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (b *Business) GetID() string   { return b.ID }
func (b *Business) SetID(id string) { b.ID = id }
func (b *Business) Kind() Kind      { return KindBusiness }

func (b *Business) Validate() error {
	return firstError(
		required("name", b.Name),
		BusinessCategories.check(b.Category),
	)
}

func (b *Business) GetSlug() string     { return b.Slug }
func (b *Business) SetSlug(slug string) { b.Slug = slug }

func (b *Business) SanitizeHTML(clean func(string) string) {
	b.Description = clean(b.Description)
	b.DescriptionTa = clean(b.DescriptionTa)
}
