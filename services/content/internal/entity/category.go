package entity

import "strings"

// Categories is the fixed set of category values allowed for a kind.
type Categories []string

func (c Categories) Has(v string) bool {
	for _, s := range c {
		if s == v {
			return true
		}
	}
	return false
}

func (c Categories) check(v string) error {
	if v == "" {
		return NewValidationError("category", "is required")
	}
	if !c.Has(v) {
		return NewValidationError("category", "must be one of "+strings.Join(c, ", "))
	}
	return nil
}

var (
	NewsCategories = Categories{
		"corporation", "agriculture", "police", "politics", "education", "health",
		"sports", "business", "culture", "weather", "transport", "general",
	}
	EventCategories = Categories{
		"festival", "music", "sports", "workshop", "exhibition", "religious",
		"food", "community", "education",
	}
	JobCategories = Categories{
		"full_time", "part_time", "contract", "internship", "freelance",
	}
	BusinessCategories = Categories{
		"restaurant", "hotel", "hospital", "shopping", "education", "services",
		"temple", "transport", "entertainment", "other",
	}
	VideoCategories = Categories{
		"news", "culture", "food", "travel", "interview", "events", "devotional",
	}
	MagazineCategories = Categories{
		"monthly", "special", "annual",
	}
	RadioShowCategories = Categories{
		"talk", "music", "news", "devotional", "interview", "comedy", "kids",
	}
)

// CategoriesFor returns the allowed categories, or nil for kinds without one.
func CategoriesFor(k Kind) Categories {
	switch k {
	case KindNews:
		return NewsCategories
	case KindEvent:
		return EventCategories
	case KindJob:
		return JobCategories
	case KindBusiness:
		return BusinessCategories
	case KindVideo:
		return VideoCategories
	case KindMagazine:
		return MagazineCategories
	case KindRadioShow:
		return RadioShowCategories
	}
	return nil
}
