package persistent

import (
	"hello-madurai/services/content/internal/entity"

	"gorm.io/gorm"
)

func NewNewsRepository(db *gorm.DB) Repository[entity.News] {
	return newGormRepository(db, columns{
		search:    []string{"title", "title_ta", "excerpt"},
		counters:  []string{entity.CounterViews},
		slug:      true,
		featured:  true,
		status:    true,
		scheduled: true,
	}, ToNewsEntity, ToNewsModel)
}

func NewEventRepository(db *gorm.DB) Repository[entity.Event] {
	return newGormRepository(db, columns{
		search:    []string{"title", "title_ta", "location"},
		order:     "start_date ASC",
		counters:  []string{entity.CounterViews},
		slug:      true,
		featured:  true,
		status:    true,
		scheduled: true,
	}, ToEventEntity, ToEventModel)
}

func NewJobRepository(db *gorm.DB) Repository[entity.Job] {
	return newGormRepository(db, columns{
		search:    []string{"title", "title_ta", "company"},
		counters:  []string{entity.CounterViews},
		featured:  true,
		status:    true,
		scheduled: true,
	}, ToJobEntity, ToJobModel)
}

func NewBusinessRepository(db *gorm.DB) Repository[entity.Business] {
	return newGormRepository(db, columns{
		search:   []string{"name", "name_ta", "address"},
		order:    "verified DESC, name ASC",
		counters: []string{entity.CounterViews},
		slug:     true,
		featured: true,
	}, ToBusinessEntity, ToBusinessModel)
}

func NewVideoRepository(db *gorm.DB) Repository[entity.Video] {
	return newGormRepository(db, columns{
		search:   []string{"title", "title_ta"},
		counters: []string{entity.CounterViews},
		featured: true,
		status:   true,
	}, ToVideoEntity, ToVideoModel)
}

func NewMagazineCollectionRepository(db *gorm.DB) Repository[entity.MagazineCollection] {
	return newGormRepository(db, columns{
		search: []string{"name", "name_ta"},
		order:  "name ASC",
	}, ToMagazineCollectionEntity, ToMagazineCollectionModel)
}

func NewMagazineRepository(db *gorm.DB) Repository[entity.Magazine] {
	return newGormRepository(db, columns{
		search:   []string{"title", "title_ta"},
		order:    "issue_number DESC, created_at DESC",
		counters: []string{entity.CounterViews, entity.CounterDownloads},
		parent:   "collection_id",
		featured: true,
	}, ToMagazineEntity, ToMagazineModel)
}

func NewRadioFolderRepository(db *gorm.DB) Repository[entity.RadioFolder] {
	return newGormRepository(db, columns{
		search: []string{"name", "name_ta"},
		order:  "name ASC",
	}, ToRadioFolderEntity, ToRadioFolderModel)
}

func NewRadioShowRepository(db *gorm.DB) Repository[entity.RadioShow] {
	return newGormRepository(db, columns{
		search:   []string{"title", "title_ta", "host"},
		counters: []string{entity.CounterPlays},
		parent:   "folder_id",
		featured: true,
	}, ToRadioShowEntity, ToRadioShowModel)
}

// Repositories bundles the store of every content kind.
type Repositories struct {
	News                Repository[entity.News]
	Events              Repository[entity.Event]
	Jobs                Repository[entity.Job]
	Businesses          Repository[entity.Business]
	Videos              Repository[entity.Video]
	MagazineCollections Repository[entity.MagazineCollection]
	Magazines           Repository[entity.Magazine]
	RadioFolders        Repository[entity.RadioFolder]
	RadioShows          Repository[entity.RadioShow]
	Admins              AdminRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		News:                NewNewsRepository(db),
		Events:              NewEventRepository(db),
		Jobs:                NewJobRepository(db),
		Businesses:          NewBusinessRepository(db),
		Videos:              NewVideoRepository(db),
		MagazineCollections: NewMagazineCollectionRepository(db),
		Magazines:           NewMagazineRepository(db),
		RadioFolders:        NewRadioFolderRepository(db),
		RadioShows:          NewRadioShowRepository(db),
		Admins:              NewAdminRepository(db),
	}
}
