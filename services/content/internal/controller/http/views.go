package http

import (
	"hello-madurai/pkg/locale"
	"hello-madurai/services/content/internal/entity"

	"github.com/gin-gonic/gin"
)

// Reader views carry the language-selected value under the primary field name.

func newsView(n *entity.News, loc locale.Locale) gin.H {
	return gin.H{
		"id":           n.ID,
		"slug":         n.Slug,
		"title":        locale.Pick(loc, n.Title, n.TitleTa),
		"excerpt":      locale.Pick(loc, n.Excerpt, n.ExcerptTa),
		"content":      locale.Pick(loc, n.Content, n.ContentTa),
		"category":     n.Category,
		"image_url":    n.ImageURL,
		"author":       n.Author,
		"featured":     n.Featured,
		"views":        n.Views,
		"published_at": n.PublishedAt,
		"lang":         loc,
	}
}

func eventView(e *entity.Event, loc locale.Locale) gin.H {
	return gin.H{
		"id":           e.ID,
		"slug":         e.Slug,
		"title":        locale.Pick(loc, e.Title, e.TitleTa),
		"description":  locale.Pick(loc, e.Description, e.DescriptionTa),
		"location":     locale.Pick(loc, e.Location, e.LocationTa),
		"category":     e.Category,
		"start_date":   e.StartDate,
		"end_date":     e.EndDate,
		"image_url":    e.ImageURL,
		"organizer":    e.Organizer,
		"featured":     e.Featured,
		"views":        e.Views,
		"published_at": e.PublishedAt,
		"lang":         loc,
	}
}

func jobView(j *entity.Job, loc locale.Locale) gin.H {
	return gin.H{
		"id":            j.ID,
		"title":         locale.Pick(loc, j.Title, j.TitleTa),
		"description":   locale.Pick(loc, j.Description, j.DescriptionTa),
		"company":       j.Company,
		"location":      locale.Pick(loc, j.Location, j.LocationTa),
		"category":      j.Category,
		"salary":        j.Salary,
		"apply_url":     j.ApplyURL,
		"contact_email": j.ContactEmail,
		"deadline":      j.Deadline,
		"featured":      j.Featured,
		"views":         j.Views,
		"published_at":  j.PublishedAt,
		"lang":          loc,
	}
}

func businessView(b *entity.Business, loc locale.Locale) gin.H {
	return gin.H{
		"id":          b.ID,
		"slug":        b.Slug,
		"name":        locale.Pick(loc, b.Name, b.NameTa),
		"description": locale.Pick(loc, b.Description, b.DescriptionTa),
		"address":     locale.Pick(loc, b.Address, b.AddressTa),
		"category":    b.Category,
		"phone":       b.Phone,
		"website":     b.Website,
		"email":       b.Email,
		"image_url":   b.ImageURL,
		"verified":    b.Verified,
		"featured":    b.Featured,
		"views":       b.Views,
		"lang":        loc,
	}
}

func videoView(v *entity.Video, loc locale.Locale) gin.H {
	return gin.H{
		"id":               v.ID,
		"title":            locale.Pick(loc, v.Title, v.TitleTa),
		"description":      locale.Pick(loc, v.Description, v.DescriptionTa),
		"category":         v.Category,
		"video_url":        v.VideoURL,
		"thumbnail_url":    v.ThumbnailURL,
		"duration_seconds": v.DurationSeconds,
		"featured":         v.Featured,
		"views":            v.Views,
		"published_at":     v.PublishedAt,
		"lang":             loc,
	}
}

func magazineCollectionView(m *entity.MagazineCollection, loc locale.Locale) gin.H {
	return gin.H{
		"id":          m.ID,
		"name":        locale.Pick(loc, m.Name, m.NameTa),
		"description": locale.Pick(loc, m.Description, m.DescriptionTa),
		"cover_url":   m.CoverURL,
		"lang":        loc,
	}
}

func magazineView(m *entity.Magazine, loc locale.Locale) gin.H {
	return gin.H{
		"id":            m.ID,
		"collection_id": m.CollectionID,
		"title":         locale.Pick(loc, m.Title, m.TitleTa),
		"description":   locale.Pick(loc, m.Description, m.DescriptionTa),
		"category":      m.Category,
		"pdf_url":       m.PDFURL,
		"cover_url":     m.CoverURL,
		"issue_number":  m.IssueNumber,
		"featured":      m.Featured,
		"views":         m.Views,
		"downloads":     m.Downloads,
		"lang":          loc,
	}
}

func radioFolderView(f *entity.RadioFolder, loc locale.Locale) gin.H {
	return gin.H{
		"id":          f.ID,
		"name":        locale.Pick(loc, f.Name, f.NameTa),
		"description": locale.Pick(loc, f.Description, f.DescriptionTa),
		"cover_url":   f.CoverURL,
		"lang":        loc,
	}
}

func radioShowView(s *entity.RadioShow, loc locale.Locale) gin.H {
	return gin.H{
		"id":               s.ID,
		"folder_id":        s.FolderID,
		"title":            locale.Pick(loc, s.Title, s.TitleTa),
		"description":      locale.Pick(loc, s.Description, s.DescriptionTa),
		"host":             locale.Pick(loc, s.Host, s.HostTa),
		"category":         s.Category,
		"audio_url":        s.AudioURL,
		"cover_url":        s.CoverURL,
		"duration_seconds": s.DurationSeconds,
		"featured":         s.Featured,
		"plays":            s.Plays,
		"lang":             loc,
	}
}
