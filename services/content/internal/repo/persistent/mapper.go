package persistent

import (
	"hello-madurai/services/content/internal/entity"
	"hello-madurai/services/content/internal/model"
)

func ToNewsEntity(m *model.NewsModel) *entity.News {
	if m == nil {
		return nil
	}

	return &entity.News{
		ID:          m.ID,
		Title:       m.Title,
		TitleTa:     m.TitleTa,
		Excerpt:     m.Excerpt,
		ExcerptTa:   m.ExcerptTa,
		Content:     m.Content,
		ContentTa:   m.ContentTa,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		Author:      m.Author,
		Slug:        m.Slug,
		Featured:    m.Featured,
		Status:      entity.Status(m.Status),
		Views:       m.Views,
		ScheduledAt: m.ScheduledAt,
		PublishedAt: m.PublishedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToNewsModel(e *entity.News) *model.NewsModel {
	if e == nil {
		return nil
	}

	return &model.NewsModel{
		ID:          e.ID,
		Title:       e.Title,
		TitleTa:     e.TitleTa,
		Excerpt:     e.Excerpt,
		ExcerptTa:   e.ExcerptTa,
		Content:     e.Content,
		ContentTa:   e.ContentTa,
		Category:    e.Category,
		ImageURL:    e.ImageURL,
		Author:      e.Author,
		Slug:        e.Slug,
		Featured:    e.Featured,
		Status:      string(e.Status),
		Views:       e.Views,
		ScheduledAt: e.ScheduledAt,
		PublishedAt: e.PublishedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToEventEntity(m *model.EventModel) *entity.Event {
	if m == nil {
		return nil
	}

	return &entity.Event{
		ID:            m.ID,
		Title:         m.Title,
		TitleTa:       m.TitleTa,
		Description:   m.Description,
		DescriptionTa: m.DescriptionTa,
		Location:      m.Location,
		LocationTa:    m.LocationTa,
		Category:      m.Category,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		ImageURL:      m.ImageURL,
		Organizer:     m.Organizer,
		Slug:          m.Slug,
		Featured:      m.Featured,
		Status:        entity.Status(m.Status),
		Views:         m.Views,
		ScheduledAt:   m.ScheduledAt,
		PublishedAt:   m.PublishedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToEventModel(e *entity.Event) *model.EventModel {
	if e == nil {
		return nil
	}

	return &model.EventModel{
		ID:            e.ID,
		Title:         e.Title,
		TitleTa:       e.TitleTa,
		Description:   e.Description,
		DescriptionTa: e.DescriptionTa,
		Location:      e.Location,
		LocationTa:    e.LocationTa,
		Category:      e.Category,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		ImageURL:      e.ImageURL,
		Organizer:     e.Organizer,
		Slug:          e.Slug,
		Featured:      e.Featured,
		Status:        string(e.Status),
		Views:         e.Views,
		ScheduledAt:   e.ScheduledAt,
		PublishedAt:   e.PublishedAt,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToJobEntity(m *model.JobModel) *entity.Job {
	if m == nil {
		return nil
	}

	return &entity.Job{
		ID:            m.ID,
		Title:         m.Title,
		TitleTa:       m.TitleTa,
		Description:   m.Description,
		DescriptionTa: m.DescriptionTa,
		Company:       m.Company,
		Location:      m.Location,
		LocationTa:    m.LocationTa,
		Category:      m.Category,
		Salary:        m.Salary,
		ApplyURL:      m.ApplyURL,
		ContactEmail:  m.ContactEmail,
		Deadline:      m.Deadline,
		Featured:      m.Featured,
		Status:        entity.Status(m.Status),
		Views:         m.Views,
		ScheduledAt:   m.ScheduledAt,
		PublishedAt:   m.PublishedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToJobModel(e *entity.Job) *model.JobModel {
	if e == nil {
		return nil
	}

	return &model.JobModel{
		ID:            e.ID,
		Title:         e.Title,
		TitleTa:       e.TitleTa,
		Description:   e.Description,
		DescriptionTa: e.DescriptionTa,
		Company:       e.Company,
		Location:      e.Location,
		LocationTa:    e.LocationTa,
		Category:      e.Category,
		Salary:        e.Salary,
		ApplyURL:      e.ApplyURL,
		ContactEmail:  e.ContactEmail,
		Deadline:      e.Deadline,
		Featured:      e.Featured,
		Status:        string(e.Status),
		Views:         e.Views,
		ScheduledAt:   e.ScheduledAt,
		PublishedAt:   e.PublishedAt,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToBusinessEntity(m *model.BusinessModel) *entity.Business {
	if m == nil {
		return nil
	}

	return &entity.Business{
		ID:            m.ID,
		Name:          m.Name,
		NameTa:        m.NameTa,
		Description:   m.Description,
		DescriptionTa: m.DescriptionTa,
		Address:       m.Address,
		AddressTa:     m.AddressTa,
		Category:      m.Category,
		Phone:         m.Phone,
		Website:       m.Website,
		Email:         m.Email,
		ImageURL:      m.ImageURL,
		Verified:      m.Verified,
		Featured:      m.Featured,
		Slug:          m.Slug,
		Views:         m.Views,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToBusinessModel(e *entity.Business) *model.BusinessModel {
	if e == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:            e.ID,
		Name:          e.Name,
		NameTa:        e.NameTa,
		Description:   e.Description,
		DescriptionTa: e.DescriptionTa,
		Address:       e.Address,
		AddressTa:     e.AddressTa,
		Category:      e.Category,
		Phone:         e.Phone,
		Website:       e.Website,
		Email:         e.Email,
		ImageURL:      e.ImageURL,
		Verified:      e.Verified,
		Featured:      e.Featured,
		Slug:          e.Slug,
		Views:         e.Views,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}

	return &entity.Video{
		ID:              m.ID,
		Title:           m.Title,
		TitleTa:         m.TitleTa,
		Description:     m.Description,
		DescriptionTa:   m.DescriptionTa,
		Category:        m.Category,
		VideoURL:        m.VideoURL,
		ThumbnailURL:    m.ThumbnailURL,
		DurationSeconds: m.DurationSeconds,
		Featured:        m.Featured,
		Status:          entity.Status(m.Status),
		Views:           m.Views,
		PublishedAt:     m.PublishedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToVideoModel(e *entity.Video) *model.VideoModel {
	if e == nil {
		return nil
	}

	return &model.VideoModel{
		ID:              e.ID,
		Title:           e.Title,
		TitleTa:         e.TitleTa,
		Description:     e.Description,
		DescriptionTa:   e.DescriptionTa,
		Category:        e.Category,
		VideoURL:        e.VideoURL,
		ThumbnailURL:    e.ThumbnailURL,
		DurationSeconds: e.DurationSeconds,
		Featured:        e.Featured,
		Status:          string(e.Status),
		Views:           e.Views,
		PublishedAt:     e.PublishedAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToMagazineCollectionEntity(m *model.MagazineCollectionModel) *entity.MagazineCollection {
	if m == nil {
		return nil
	}

	return &entity.MagazineCollection{
		ID:            m.ID,
		Name:          m.Name,
		NameTa:        m.NameTa,
		Description:   m.Description,
		DescriptionTa: m.DescriptionTa,
		CoverURL:      m.CoverURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToMagazineCollectionModel(e *entity.MagazineCollection) *model.MagazineCollectionModel {
	if e == nil {
		return nil
	}

	return &model.MagazineCollectionModel{
		ID:            e.ID,
		Name:          e.Name,
		NameTa:        e.NameTa,
		Description:   e.Description,
		DescriptionTa: e.DescriptionTa,
		CoverURL:      e.CoverURL,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToMagazineEntity(m *model.MagazineModel) *entity.Magazine {
	if m == nil {
		return nil
	}

	return &entity.Magazine{
		ID:            m.ID,
		CollectionID:  m.CollectionID,
		Title:         m.Title,
		TitleTa:       m.TitleTa,
		Description:   m.Description,
		DescriptionTa: m.DescriptionTa,
		Category:      m.Category,
		PDFURL:        m.PDFURL,
		CoverURL:      m.CoverURL,
		IssueNumber:   m.IssueNumber,
		Featured:      m.Featured,
		Views:         m.Views,
		Downloads:     m.Downloads,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToMagazineModel(e *entity.Magazine) *model.MagazineModel {
	if e == nil {
		return nil
	}

	return &model.MagazineModel{
		ID:            e.ID,
		CollectionID:  e.CollectionID,
		Title:         e.Title,
		TitleTa:       e.TitleTa,
		Description:   e.Description,
		DescriptionTa: e.DescriptionTa,
		Category:      e.Category,
		PDFURL:        e.PDFURL,
		CoverURL:      e.CoverURL,
		IssueNumber:   e.IssueNumber,
		Featured:      e.Featured,
		Views:         e.Views,
		Downloads:     e.Downloads,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToRadioFolderEntity(m *model.RadioFolderModel) *entity.RadioFolder {
	if m == nil {
		return nil
	}

	return &entity.RadioFolder{
		ID:            m.ID,
		Name:          m.Name,
		NameTa:        m.NameTa,
		Description:   m.Description,
		DescriptionTa: m.DescriptionTa,
		CoverURL:      m.CoverURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToRadioFolderModel(e *entity.RadioFolder) *model.RadioFolderModel {
	if e == nil {
		return nil
	}

	return &model.RadioFolderModel{
		ID:            e.ID,
		Name:          e.Name,
		NameTa:        e.NameTa,
		Description:   e.Description,
		DescriptionTa: e.DescriptionTa,
		CoverURL:      e.CoverURL,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToRadioShowEntity(m *model.RadioShowModel) *entity.RadioShow {
	if m == nil {
		return nil
	}

	return &entity.RadioShow{
		ID:              m.ID,
		FolderID:        m.FolderID,
		Title:           m.Title,
		TitleTa:         m.TitleTa,
		Description:     m.Description,
		DescriptionTa:   m.DescriptionTa,
		Host:            m.Host,
		HostTa:          m.HostTa,
		Category:        m.Category,
		AudioURL:        m.AudioURL,
		CoverURL:        m.CoverURL,
		DurationSeconds: m.DurationSeconds,
		Featured:        m.Featured,
		Plays:           m.Plays,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToRadioShowModel(e *entity.RadioShow) *model.RadioShowModel {
	if e == nil {
		return nil
	}

	return &model.RadioShowModel{
		ID:              e.ID,
		FolderID:        e.FolderID,
		Title:           e.Title,
		TitleTa:         e.TitleTa,
		Description:     e.Description,
		DescriptionTa:   e.DescriptionTa,
		Host:            e.Host,
		HostTa:          e.HostTa,
		Category:        e.Category,
		AudioURL:        e.AudioURL,
		CoverURL:        e.CoverURL,
		DurationSeconds: e.DurationSeconds,
		Featured:        e.Featured,
		Plays:           e.Plays,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToAdminEntity(m *model.AdminModel) *entity.Admin {
	if m == nil {
		return nil
	}

	return &entity.Admin{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		LastLoginAt:  m.LastLoginAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToAdminModel(e *entity.Admin) *model.AdminModel {
	if e == nil {
		return nil
	}

	return &model.AdminModel{
		ID:           e.ID,
		Email:        e.Email,
		Name:         e.Name,
		PasswordHash: e.PasswordHash,
		Role:         e.Role,
		LastLoginAt:  e.LastLoginAt,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
