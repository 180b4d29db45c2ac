package usecase

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"hello-madurai/pkg/logger"
	"hello-madurai/pkg/queue"
	"hello-madurai/services/content/internal/entity"
	"hello-madurai/services/content/internal/repo/persistent"
	"hello-madurai/services/content/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	mu    sync.Mutex
	tasks []queue.NotificationTask
	err   error
}

func (p *fakePublisher) PublishNotificationTask(ctx context.Context, task queue.NotificationTask) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.tasks = append(p.tasks, task)
	return nil
}

func (p *fakePublisher) published() []queue.NotificationTask {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]queue.NotificationTask(nil), p.tasks...)
}

type fakeTracker struct {
	seen map[string]bool
	err  error
}

func (f *fakeTracker) MarkSeen(ctx context.Context, key string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	return true, nil
}

var fixedNow = time.Date(2026, 4, 14, 9, 30, 0, 0, time.UTC)

func testLogger() *logger.Logger {
	return logger.NewWithOptions(logger.Options{Output: io.Discard})
}

func newTestCatalog(t *testing.T, pub queue.Publisher) (*Catalog, *persistent.Repositories) {
	t.Helper()
	repos := persistent.NewRepositories(testutil.NewDB(t))
	catalog := NewCatalog(repos, Deps{
		Publisher: pub,
		Views:     &fakeTracker{seen: map[string]bool{}},
		PublicURL: "https://hellomadurai.in/",
		Logger:    testLogger(),
		Now:       func() time.Time { return fixedNow },
	})
	return catalog, repos
}

func TestCreate_PublishedNewsEnqueuesOnce(t *testing.T) {
	pub := &fakePublisher{}
	catalog, _ := newTestCatalog(t, pub)
	ctx := context.Background()

	news, err := catalog.News.Create(ctx, &entity.News{
		Title:     "Road Works Begin",
		ExcerptTa: "பெரியார் பேருந்து நிலைய சாலை மூடல்",
		Content:   "<p>Periyar bus stand road closed for <b>two weeks</b>.</p><script>alert(1)</script>",
		Category:  "corporation",
		Status:    entity.StatusPublished,
	})
	require.NoError(t, err)

	require.NotNil(t, news.PublishedAt)
	assert.True(t, fixedNow.Equal(*news.PublishedAt))
	assert.NotContains(t, news.Content, "<script>")

	tasks := pub.published()
	require.Len(t, tasks, 1)
	task := tasks[0]
	assert.Equal(t, "news", task.Kind)
	assert.Equal(t, news.ID, task.ContentID)
	assert.Equal(t, "Road Works Begin", task.Title)
	assert.Empty(t, task.TitleTa)
	assert.Equal(t, "Periyar bus stand road closed for two weeks.", task.Body)
	assert.Equal(t, "பெரியார் பேருந்து நிலைய சாலை மூடல்", task.BodyTa)
	assert.Equal(t, "https://hellomadurai.in/news/"+news.Slug, task.Link)
	assert.Equal(t, 8, task.Priority)

	// Updating an already published record does not announce it again.
	news.Title = "Road Works Begin Monday"
	_, err = catalog.News.Update(ctx, news.ID, news)
	require.NoError(t, err)
	assert.Len(t, pub.published(), 1)
}

func TestCreate_DraftDoesNotEnqueue(t *testing.T) {
	pub := &fakePublisher{}
	catalog, _ := newTestCatalog(t, pub)

	job, err := catalog.Jobs.Create(context.Background(), &entity.Job{
		Title:    "Staff Nurse",
		Category: "full_time",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusDraft, job.Status)
	assert.Nil(t, job.PublishedAt)
	assert.Empty(t, pub.published())
}

func TestUpdate_TransitionToPublishedEnqueues(t *testing.T) {
	pub := &fakePublisher{}
	catalog, _ := newTestCatalog(t, pub)
	ctx := context.Background()

	event, err := catalog.Events.Create(ctx, &entity.Event{
		Title:     "Chithirai Festival",
		TitleTa:   "சித்திரை திருவிழா",
		Category:  "festival",
		StartDate: fixedNow.Add(72 * time.Hour),
	})
	require.NoError(t, err)
	require.Empty(t, pub.published())

	event.Status = entity.StatusPublished
	updated, err := catalog.Events.Update(ctx, event.ID, event)
	require.NoError(t, err)

	require.NotNil(t, updated.PublishedAt)
	assert.Equal(t, event.Slug, updated.Slug)

	tasks := pub.published()
	require.Len(t, tasks, 1)
	assert.Equal(t, "event", tasks[0].Kind)
	assert.Equal(t, "சித்திரை திருவிழா", tasks[0].TitleTa)
}

func TestCreate_EnqueueFailureDoesNotFailWrite(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker unreachable")}
	catalog, repos := newTestCatalog(t, pub)
	ctx := context.Background()

	news, err := catalog.News.Create(ctx, &entity.News{
		Title:    "Water Supply Cut",
		Category: "corporation",
		Status:   entity.StatusPublished,
	})
	require.NoError(t, err)

	stored, err := repos.News.GetByID(ctx, news.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPublished, stored.Status)
}

func TestCreate_WithoutPublisher(t *testing.T) {
	catalog, _ := newTestCatalog(t, nil)

	_, err := catalog.News.Create(context.Background(), &entity.News{
		Title:    "Water Supply Cut",
		Category: "corporation",
		Status:   entity.StatusPublished,
	})

	assert.NoError(t, err)
}

func TestCreate_ValidationError(t *testing.T) {
	catalog, repos := newTestCatalog(t, &fakePublisher{})
	ctx := context.Background()

	_, err := catalog.News.Create(ctx, &entity.News{Title: "   ", Category: "corporation"})

	var vErr *entity.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "title", vErr.Field)
	assert.ErrorIs(t, err, entity.ErrValidation)

	_, total, err := repos.News.List(ctx, entity.ListFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCreate_ChildWithMissingParentIsRejected(t *testing.T) {
	catalog, repos := newTestCatalog(t, nil)
	ctx := context.Background()

	_, err := catalog.RadioShows.Create(ctx, &entity.RadioShow{
		Title:    "Morning Talk",
		AudioURL: "https://cdn.hellomadurai.in/audio/a.mp3",
		FolderID: "00000000-0000-0000-0000-000000000000",
		Category: "talk",
	})

	var vErr *entity.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "folder_id", vErr.Field)

	_, total, err := repos.RadioShows.List(ctx, entity.ListFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestDelete_ParentWithChildrenIsBlocked(t *testing.T) {
	catalog, _ := newTestCatalog(t, nil)
	ctx := context.Background()

	collection, err := catalog.MagazineCollections.Create(ctx, &entity.MagazineCollection{Name: "Madurai Monthly"})
	require.NoError(t, err)

	magazine, err := catalog.Magazines.Create(ctx, &entity.Magazine{
		CollectionID: collection.ID,
		Title:        "April Issue",
		PDFURL:       "https://cdn.hellomadurai.in/documents/april.pdf",
		Category:     "monthly",
		IssueNumber:  4,
	})
	require.NoError(t, err)

	err = catalog.MagazineCollections.Delete(ctx, collection.ID)
	assert.ErrorIs(t, err, entity.ErrHasChildren)

	require.NoError(t, catalog.Magazines.Delete(ctx, magazine.ID))
	require.NoError(t, catalog.MagazineCollections.Delete(ctx, collection.ID))

	_, err = catalog.MagazineCollections.Get(ctx, collection.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUpdate_KeepsCounters(t *testing.T) {
	catalog, repos := newTestCatalog(t, nil)
	ctx := context.Background()

	video, err := catalog.Videos.Create(ctx, &entity.Video{
		Title:    "Meenakshi Temple at Dawn",
		VideoURL: "https://cdn.hellomadurai.in/videos/dawn.mp4",
		Category: "culture",
		Status:   entity.StatusPublished,
	})
	require.NoError(t, err)
	require.NoError(t, repos.Videos.Increment(ctx, video.ID, entity.CounterViews))

	video.Views = 500
	video.Title = "Meenakshi Temple at Sunrise"
	updated, err := catalog.Videos.Update(ctx, video.ID, video)
	require.NoError(t, err)

	assert.Equal(t, "Meenakshi Temple at Sunrise", updated.Title)
	assert.Equal(t, 1, updated.Views)
}

func TestUpdate_NotFound(t *testing.T) {
	catalog, _ := newTestCatalog(t, nil)

	_, err := catalog.Businesses.Update(context.Background(), "00000000-0000-0000-0000-000000000000", &entity.Business{
		Name:     "Murugan Idli Shop",
		Category: "restaurant",
	})

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestGetPublic_HidesDrafts(t *testing.T) {
	catalog, _ := newTestCatalog(t, nil)
	ctx := context.Background()

	draft, err := catalog.News.Create(ctx, &entity.News{Title: "Embargoed", Category: "politics"})
	require.NoError(t, err)

	_, err = catalog.News.Get(ctx, draft.Slug)
	require.NoError(t, err)

	_, err = catalog.News.GetPublic(ctx, draft.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	items, total, err := catalog.News.ListPublic(ctx, entity.ListFilter{Status: entity.StatusDraft})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
}

func TestTrack_CountsOncePerViewer(t *testing.T) {
	catalog, _ := newTestCatalog(t, nil)
	ctx := context.Background()

	business, err := catalog.Businesses.Create(ctx, &entity.Business{Name: "Murugan Idli Shop", Category: "restaurant"})
	require.NoError(t, err)

	counted, err := catalog.Businesses.Track(ctx, business.ID, entity.CounterViews, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, counted)

	counted, err = catalog.Businesses.Track(ctx, business.ID, entity.CounterViews, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, counted)

	counted, err = catalog.Businesses.Track(ctx, business.ID, entity.CounterViews, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, counted)

	got, err := catalog.Businesses.Get(ctx, business.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Views)
}

func TestTrack_TrackerFailureStillCounts(t *testing.T) {
	repos := persistent.NewRepositories(testutil.NewDB(t))
	uc := NewContentUseCase(repos.RadioFolders, Deps{Logger: testLogger()})
	shows := NewContentUseCase(repos.RadioShows, Deps{
		Views:  &fakeTracker{err: errors.New("redis down")},
		Logger: testLogger(),
	}, WithParent(repos.RadioFolders))
	ctx := context.Background()

	folder, err := uc.Create(ctx, &entity.RadioFolder{Name: "Morning Shows"})
	require.NoError(t, err)
	show, err := shows.Create(ctx, &entity.RadioShow{
		FolderID: folder.ID,
		Title:    "Kaalai Vanakkam",
		AudioURL: "https://cdn.hellomadurai.in/audio/kv.mp3",
		Category: "talk",
	})
	require.NoError(t, err)

	counted, err := shows.Track(ctx, show.ID, entity.CounterPlays, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, counted)

	_, err = shows.Track(ctx, show.ID, entity.CounterViews, "10.0.0.1")
	assert.ErrorIs(t, err, entity.ErrValidation)

	_, err = shows.Track(ctx, "00000000-0000-0000-0000-000000000000", entity.CounterPlays, "10.0.0.1")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestPublishDue(t *testing.T) {
	pub := &fakePublisher{}
	catalog, _ := newTestCatalog(t, pub)
	ctx := context.Background()

	past := fixedNow.Add(-time.Minute)
	future := fixedNow.Add(time.Hour)

	due, err := catalog.Jobs.Create(ctx, &entity.Job{Title: "Data Entry Operator", Category: "part_time", ScheduledAt: &past})
	require.NoError(t, err)
	_, err = catalog.Jobs.Create(ctx, &entity.Job{Title: "Accountant", Category: "full_time", ScheduledAt: &future})
	require.NoError(t, err)

	n, err := catalog.Jobs.PublishDue(ctx, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := catalog.Jobs.Get(ctx, due.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPublished, got.Status)

	tasks := pub.published()
	require.Len(t, tasks, 1)
	assert.Equal(t, due.ID, tasks[0].ContentID)
	assert.Equal(t, "https://hellomadurai.in/jobs/"+due.ID, tasks[0].Link)

	n, err = catalog.Jobs.PublishDue(ctx, fixedNow)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestScheduler_RunOnce(t *testing.T) {
	pub := &fakePublisher{}
	catalog, _ := newTestCatalog(t, pub)
	ctx := context.Background()

	past := fixedNow.Add(-time.Minute)
	_, err := catalog.News.Create(ctx, &entity.News{Title: "Rain Alert", Category: "weather", ScheduledAt: &past})
	require.NoError(t, err)
	_, err = catalog.Events.Create(ctx, &entity.Event{
		Title:       "Book Fair",
		Category:    "exhibition",
		StartDate:   fixedNow.Add(24 * time.Hour),
		ScheduledAt: &past,
	})
	require.NoError(t, err)

	s, err := NewScheduler("@every 1m", testLogger(), catalog.Schedulable()...)
	require.NoError(t, err)
	s.now = func() time.Time { return fixedNow }

	assert.Equal(t, 2, s.RunOnce(ctx))
	assert.Len(t, pub.published(), 2)
}

func TestNewScheduler_InvalidSpec(t *testing.T) {
	_, err := NewScheduler("every minute", testLogger())
	assert.Error(t, err)
}
