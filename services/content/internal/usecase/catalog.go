package usecase

import (
	"hello-madurai/services/content/internal/entity"
	"hello-madurai/services/content/internal/repo/persistent"
)

// Catalog holds the use case of every content kind.
type Catalog struct {
	News                ContentUseCase[entity.News]
	Events              ContentUseCase[entity.Event]
	Jobs                ContentUseCase[entity.Job]
	Businesses          ContentUseCase[entity.Business]
	Videos              ContentUseCase[entity.Video]
	MagazineCollections ContentUseCase[entity.MagazineCollection]
	Magazines           ContentUseCase[entity.Magazine]
	RadioFolders        ContentUseCase[entity.RadioFolder]
	RadioShows          ContentUseCase[entity.RadioShow]
}

func NewCatalog(repos *persistent.Repositories, deps Deps) *Catalog {
	return &Catalog{
		News:       NewContentUseCase(repos.News, deps, WithPriority(8)),
		Events:     NewContentUseCase(repos.Events, deps, WithPriority(6)),
		Jobs:       NewContentUseCase(repos.Jobs, deps, WithPriority(4)),
		Businesses: NewContentUseCase(repos.Businesses, deps),
		Videos:     NewContentUseCase(repos.Videos, deps),
		MagazineCollections: NewContentUseCase(repos.MagazineCollections, deps,
			WithChildren(repos.Magazines)),
		Magazines: NewContentUseCase(repos.Magazines, deps,
			WithParent(repos.MagazineCollections)),
		RadioFolders: NewContentUseCase(repos.RadioFolders, deps,
			WithChildren(repos.RadioShows)),
		RadioShows: NewContentUseCase(repos.RadioShows, deps,
			WithParent(repos.RadioFolders)),
	}
}

// Schedulable returns the kinds that support scheduled publishing.
func (c *Catalog) Schedulable() []DuePublisher {
	return []DuePublisher{c.News, c.Events, c.Jobs}
}
