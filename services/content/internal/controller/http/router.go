package http

import (
	"hello-madurai/pkg/logger"
	"hello-madurai/services/content/internal/entity"
	"hello-madurai/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers of the content service.
type Handlers struct {
	News                *ResourceHandler[entity.News]
	Events              *ResourceHandler[entity.Event]
	Jobs                *ResourceHandler[entity.Job]
	Businesses          *ResourceHandler[entity.Business]
	Videos              *ResourceHandler[entity.Video]
	MagazineCollections *ResourceHandler[entity.MagazineCollection]
	Magazines           *ResourceHandler[entity.Magazine]
	RadioFolders        *ResourceHandler[entity.RadioFolder]
	RadioShows          *ResourceHandler[entity.RadioShow]
	Auth                *AuthHandler
	Uploads             *UploadHandler
}

func NewHandlers(catalog *usecase.Catalog, auth usecase.AuthUseCase, uploads usecase.UploadUseCase, log *logger.Logger) *Handlers {
	return &Handlers{
		News:       NewResourceHandler(catalog.News, bindJSON((*NewsRequest).toEntity), newsView, log),
		Events:     NewResourceHandler(catalog.Events, bindJSON((*EventRequest).toEntity), eventView, log),
		Jobs:       NewResourceHandler(catalog.Jobs, bindJSON((*JobRequest).toEntity), jobView, log),
		Businesses: NewResourceHandler(catalog.Businesses, bindJSON((*BusinessRequest).toEntity), businessView, log),
		Videos:     NewResourceHandler(catalog.Videos, bindJSON((*VideoRequest).toEntity), videoView, log),
		MagazineCollections: NewResourceHandler(catalog.MagazineCollections,
			bindJSON((*CollectionRequest).toMagazineCollection), magazineCollectionView, log),
		Magazines: NewResourceHandler(catalog.Magazines, bindJSON((*MagazineRequest).toEntity), magazineView, log),
		RadioFolders: NewResourceHandler(catalog.RadioFolders,
			bindJSON((*CollectionRequest).toRadioFolder), radioFolderView, log),
		RadioShows: NewResourceHandler(catalog.RadioShows, bindJSON((*RadioShowRequest).toEntity), radioShowView, log),
		Auth:       NewAuthHandler(auth, log),
		Uploads:    NewUploadHandler(uploads, log),
	}
}

// Register mounts every route under api. Admin routes run behind guard.
func (h *Handlers) Register(api *gin.RouterGroup, guard ...gin.HandlerFunc) {
	api.POST("/auth/login", h.Auth.Login)

	h.News.RegisterPublic(api.Group("/news"), entity.CounterViews)
	h.Events.RegisterPublic(api.Group("/events"), entity.CounterViews)
	h.Jobs.RegisterPublic(api.Group("/jobs"), entity.CounterViews)
	h.Businesses.RegisterPublic(api.Group("/businesses"), entity.CounterViews)
	h.Videos.RegisterPublic(api.Group("/videos"), entity.CounterViews)
	h.Magazines.RegisterPublic(api.Group("/magazines"), entity.CounterViews, entity.CounterDownloads)
	h.RadioShows.RegisterPublic(api.Group("/radio/shows"), entity.CounterPlays)

	collections := api.Group("/magazines/collections")
	h.MagazineCollections.RegisterPublic(collections)
	h.MagazineCollections.RegisterWrites(collections.Group("", guard...))

	folders := api.Group("/radio/folders")
	h.RadioFolders.RegisterPublic(folders)
	h.RadioFolders.RegisterWrites(folders.Group("", guard...))

	admin := api.Group("/admin", guard...)
	h.News.RegisterAdmin(admin.Group("/news"))
	h.Events.RegisterAdmin(admin.Group("/events"))
	h.Jobs.RegisterAdmin(admin.Group("/jobs"))
	h.Businesses.RegisterAdmin(admin.Group("/businesses"))
	h.Videos.RegisterAdmin(admin.Group("/videos"))
	h.Magazines.RegisterAdmin(admin.Group("/magazines"))
	h.RadioShows.RegisterAdmin(admin.Group("/radio/shows"))
	admin.POST("/uploads", h.Uploads.Upload)
}
