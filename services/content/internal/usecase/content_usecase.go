package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hello-madurai/pkg/cache"
	"hello-madurai/pkg/logger"
	"hello-madurai/pkg/queue"
	"hello-madurai/pkg/richtext"
	"hello-madurai/services/content/internal/entity"
	"hello-madurai/services/content/internal/repo/persistent"

	"github.com/google/uuid"
)

const announcementBodyLimit = 160

// ContentUseCase is the admin and reader API of one content kind.
type ContentUseCase[E any] interface {
	Kind() entity.Kind
	Create(ctx context.Context, item *E) (*E, error)
	// Get accepts an id, or a slug for kinds that have one.
	Get(ctx context.Context, idOrSlug string) (*E, error)
	// GetPublic hides records that are not published.
	GetPublic(ctx context.Context, idOrSlug string) (*E, error)
	List(ctx context.Context, filter entity.ListFilter) ([]*E, int64, error)
	ListPublic(ctx context.Context, filter entity.ListFilter) ([]*E, int64, error)
	Update(ctx context.Context, id string, item *E) (*E, error)
	Delete(ctx context.Context, id string) error
	// Track bumps a counter once per viewer and reports whether it counted.
	Track(ctx context.Context, id, counter, viewer string) (bool, error)
	// PublishDue publishes scheduled drafts and returns how many went live.
	PublishDue(ctx context.Context, now time.Time) (int, error)
}

// ParentChecker reports whether a parent record exists.
type ParentChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// ChildCounter counts the children stored under a parent.
type ChildCounter interface {
	CountByParent(ctx context.Context, parentID string) (int64, error)
}

// Deps are the collaborators shared by every content kind.
type Deps struct {
	Publisher queue.Publisher
	Sanitizer richtext.Sanitizer
	Views     cache.ViewTracker
	PublicURL string
	Logger    *logger.Logger
	Now       func() time.Time
}

type Option func(*kindOptions)

type kindOptions struct {
	parents  ParentChecker
	children ChildCounter
	priority int
}

// WithParent rejects records whose parent id is unknown to parents.
func WithParent(parents ParentChecker) Option {
	return func(o *kindOptions) { o.parents = parents }
}

// WithChildren blocks deletion while children still reference the record.
func WithChildren(children ChildCounter) Option {
	return func(o *kindOptions) { o.children = children }
}

// WithPriority sets the queue priority of notification tasks.
func WithPriority(p int) Option {
	return func(o *kindOptions) { o.priority = p }
}

type record[E any] interface {
	*E
	entity.Record
}

type contentUseCase[E any, P record[E]] struct {
	repo persistent.Repository[E]
	deps Deps
	opts kindOptions
	kind entity.Kind
}

func NewContentUseCase[E any, P record[E]](repo persistent.Repository[E], deps Deps, options ...Option) ContentUseCase[E] {
	if deps.Now == nil {
		deps.Now = func() time.Time { return time.Now().UTC() }
	}
	if deps.Sanitizer == nil {
		deps.Sanitizer = richtext.NewSanitizer()
	}

	var opts kindOptions
	for _, o := range options {
		o(&opts)
	}

	return &contentUseCase[E, P]{
		repo: repo,
		deps: deps,
		opts: opts,
		kind: P(new(E)).Kind(),
	}
}

func (uc *contentUseCase[E, P]) Kind() entity.Kind {
	return uc.kind
}

func (uc *contentUseCase[E, P]) prepare(ctx context.Context, item P) error {
	if pub, ok := any(item).(entity.Publishable); ok && pub.GetStatus() == "" {
		pub.SetStatus(entity.StatusDraft)
	}

	if err := item.Validate(); err != nil {
		return err
	}

	if child, ok := any(item).(entity.Child); ok && uc.opts.parents != nil {
		exists, err := uc.opts.parents.Exists(ctx, child.ParentID())
		if err != nil {
			return fmt.Errorf("failed to check parent: %w", err)
		}
		if !exists {
			return entity.NewValidationError(child.ParentField(), "does not reference an existing record")
		}
	}

	if rt, ok := any(item).(entity.RichText); ok {
		rt.SanitizeHTML(uc.deps.Sanitizer.Sanitize)
	}
	return nil
}

func (uc *contentUseCase[E, P]) Create(ctx context.Context, item *E) (*E, error) {
	p := P(item)
	p.SetID("")

	if err := uc.prepare(ctx, p); err != nil {
		return nil, err
	}

	published := false
	if pub, ok := any(p).(entity.Publishable); ok {
		pub.SetPublishedAt(nil)
		if pub.GetStatus() == entity.StatusPublished {
			now := uc.deps.Now()
			pub.SetPublishedAt(&now)
			published = true
		}
	}
	if s, ok := any(p).(entity.Slugged); ok {
		s.SetSlug("")
	}

	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", uc.kind, err)
	}

	if published {
		uc.enqueue(ctx, p)
	}
	return item, nil
}

func (uc *contentUseCase[E, P]) Get(ctx context.Context, idOrSlug string) (*E, error) {
	_, slugged := any(P(new(E))).(entity.Slugged)
	if uuid.Validate(idOrSlug) != nil {
		if !slugged {
			return nil, entity.ErrNotFound
		}
		return uc.repo.GetBySlug(ctx, idOrSlug)
	}

	item, err := uc.repo.GetByID(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *contentUseCase[E, P]) GetPublic(ctx context.Context, idOrSlug string) (*E, error) {
	item, err := uc.Get(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	if pub, ok := any(P(item)).(entity.Publishable); ok && pub.GetStatus() != entity.StatusPublished {
		return nil, entity.ErrNotFound
	}
	return item, nil
}

func (uc *contentUseCase[E, P]) List(ctx context.Context, filter entity.ListFilter) ([]*E, int64, error) {
	items, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s: %w", uc.kind, err)
	}
	return items, total, nil
}

func (uc *contentUseCase[E, P]) ListPublic(ctx context.Context, filter entity.ListFilter) ([]*E, int64, error) {
	filter.Status = ""
	if _, ok := any(P(new(E))).(entity.Publishable); ok {
		filter.Status = entity.StatusPublished
	}
	return uc.List(ctx, filter)
}

func (uc *contentUseCase[E, P]) Update(ctx context.Context, id string, item *E) (*E, error) {
	stored, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p := P(item)
	p.SetID(id)

	if err := uc.prepare(ctx, p); err != nil {
		return nil, err
	}

	published := false
	if pub, ok := any(p).(entity.Publishable); ok {
		prev := any(P(stored)).(entity.Publishable)
		pub.SetPublishedAt(prev.GetPublishedAt())
		if pub.GetStatus() == entity.StatusPublished && prev.GetStatus() != entity.StatusPublished {
			now := uc.deps.Now()
			pub.SetPublishedAt(&now)
			published = true
		}
	}
	if s, ok := any(p).(entity.Slugged); ok {
		s.SetSlug(any(P(stored)).(entity.Slugged).GetSlug())
	}

	if err := uc.repo.Update(ctx, item); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update %s: %w", uc.kind, err)
	}

	updated, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if published {
		uc.enqueue(ctx, P(updated))
	}
	return updated, nil
}

func (uc *contentUseCase[E, P]) Delete(ctx context.Context, id string) error {
	if uc.opts.children != nil {
		count, err := uc.opts.children.CountByParent(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count children: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%s %s has %d children: %w", uc.kind, id, count, entity.ErrHasChildren)
		}
	}

	return uc.repo.Delete(ctx, id)
}

func (uc *contentUseCase[E, P]) Track(ctx context.Context, id, counter, viewer string) (bool, error) {
	exists, err := uc.repo.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to look up %s: %w", uc.kind, err)
	}
	if !exists {
		return false, entity.ErrNotFound
	}

	if uc.deps.Views != nil && viewer != "" {
		first, err := uc.deps.Views.MarkSeen(ctx, cache.EngagementKey(string(uc.kind), counter, id, viewer))
		if err != nil {
			uc.deps.Logger.Warn("View de-duplication unavailable for %s %s: %v", uc.kind, id, err)
		} else if !first {
			return false, nil
		}
	}

	if err := uc.repo.Increment(ctx, id, counter); err != nil {
		return false, err
	}
	return true, nil
}

func (uc *contentUseCase[E, P]) PublishDue(ctx context.Context, now time.Time) (int, error) {
	due, err := uc.repo.ListDue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to list due %s: %w", uc.kind, err)
	}

	published := 0
	for _, item := range due {
		pub, ok := any(P(item)).(entity.Publishable)
		if !ok {
			continue
		}
		pub.SetStatus(entity.StatusPublished)

		id := P(item).GetID()
		if _, err := uc.Update(ctx, id, item); err != nil {
			uc.deps.Logger.Error("Failed to publish scheduled %s %s: %v", uc.kind, id, err)
			continue
		}
		published++
	}
	return published, nil
}

func (uc *contentUseCase[E, P]) enqueue(ctx context.Context, item P) {
	n, ok := any(item).(entity.Notifiable)
	if !ok || !uc.kind.IsNotifiable() {
		return
	}
	if uc.deps.Publisher == nil {
		uc.deps.Logger.Warn("No notification queue, skipping announcement for %s %s", uc.kind, item.GetID())
		return
	}

	task := uc.task(item.GetID(), n.Announcement())
	if err := uc.deps.Publisher.PublishNotificationTask(ctx, task); err != nil {
		uc.deps.Logger.Error("Failed to enqueue notification for %s %s: %v", uc.kind, item.GetID(), err)
		return
	}
	uc.deps.Logger.Info("Enqueued notification for %s %s", uc.kind, item.GetID())
}

func (uc *contentUseCase[E, P]) task(id string, a entity.Announcement) queue.NotificationTask {
	link := ""
	if a.Path != "" {
		link = strings.TrimSuffix(uc.deps.PublicURL, "/") + a.Path
	}

	return queue.NotificationTask{
		Kind:      string(uc.kind),
		ContentID: id,
		Title:     a.Title,
		TitleTa:   a.TitleTa,
		Body:      uc.deps.Sanitizer.PlainText(a.Body, announcementBodyLimit),
		BodyTa:    uc.deps.Sanitizer.PlainText(a.BodyTa, announcementBodyLimit),
		ImageURL:  a.ImageURL,
		Link:      link,
		Priority:  uc.opts.priority,
	}
}
