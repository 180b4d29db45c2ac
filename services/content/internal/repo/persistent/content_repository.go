package persistent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hello-madurai/services/content/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the store of one content kind.
type Repository[E any] interface {
	Create(ctx context.Context, item *E) error
	GetByID(ctx context.Context, id string) (*E, error)
	GetBySlug(ctx context.Context, slug string) (*E, error)
	List(ctx context.Context, filter entity.ListFilter) ([]*E, int64, error)
	// Update replaces every admin-owned column; counters and created_at are kept.
	Update(ctx context.Context, item *E) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	CountByParent(ctx context.Context, parentID string) (int64, error)
	Increment(ctx context.Context, id, counter string) error
	// ListDue returns drafts whose scheduled_at is not after now.
	ListDue(ctx context.Context, now time.Time) ([]*E, error)
}

// columns describes the table layout a gormRepository works against.
type columns struct {
	search    []string
	order     string
	counters  []string
	parent    string
	slug      bool
	featured  bool
	status    bool
	scheduled bool
}

func (c columns) hasCounter(name string) bool {
	for _, col := range c.counters {
		if col == name {
			return true
		}
	}
	return false
}

type gormRepository[E any, M any] struct {
	db       *gorm.DB
	cols     columns
	toEntity func(*M) *E
	toModel  func(*E) *M
}

func newGormRepository[E any, M any](db *gorm.DB, cols columns, toEntity func(*M) *E, toModel func(*E) *M) *gormRepository[E, M] {
	if cols.order == "" {
		cols.order = "created_at DESC"
	}
	return &gormRepository[E, M]{
		db:       db,
		cols:     cols,
		toEntity: toEntity,
		toModel:  toModel,
	}
}

// validID guards uuid columns against values postgres would refuse to cast.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrNotFound
	}
	return err
}

func (r *gormRepository[E, M]) Create(ctx context.Context, item *E) error {
	m := r.toModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.toEntity(m)
	return nil
}

func (r *gormRepository[E, M]) GetByID(ctx context.Context, id string) (*E, error) {
	if !validID(id) {
		return nil, entity.ErrNotFound
	}
	var m M
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, notFound(err)
	}
	return r.toEntity(&m), nil
}

func (r *gormRepository[E, M]) GetBySlug(ctx context.Context, slug string) (*E, error) {
	if !r.cols.slug {
		return nil, entity.ErrNotFound
	}
	var m M
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		return nil, notFound(err)
	}
	return r.toEntity(&m), nil
}

func (r *gormRepository[E, M]) filtered(ctx context.Context, filter entity.ListFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(new(M))

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Featured != nil && r.cols.featured {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.Status != "" && r.cols.status {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.ParentID != "" && r.cols.parent != "" {
		if !validID(filter.ParentID) {
			return query.Where("1 = 0")
		}
		query = query.Where(r.cols.parent+" = ?", filter.ParentID)
	}
	if q := strings.TrimSpace(filter.Query); q != "" && len(r.cols.search) > 0 {
		pattern := "%" + strings.ToLower(q) + "%"
		conds := make([]string, len(r.cols.search))
		args := make([]interface{}, len(r.cols.search))
		for i, col := range r.cols.search {
			conds[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		query = query.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
	return query
}

func (r *gormRepository[E, M]) List(ctx context.Context, filter entity.ListFilter) ([]*E, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.filtered(ctx, filter).Order(r.cols.order)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var models []M
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*E, len(models))
	for i := range models {
		items[i] = r.toEntity(&models[i])
	}
	return items, total, nil
}

func (r *gormRepository[E, M]) Update(ctx context.Context, item *E) error {
	m := r.toModel(item)
	omit := append([]string{"id", "created_at"}, r.cols.counters...)

	result := r.db.WithContext(ctx).Model(m).Select("*").Omit(omit...).Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *gormRepository[E, M]) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return entity.ErrNotFound
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(M))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *gormRepository[E, M]) Exists(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(new(M)).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *gormRepository[E, M]) CountByParent(ctx context.Context, parentID string) (int64, error) {
	if r.cols.parent == "" {
		return 0, fmt.Errorf("table has no parent column")
	}
	if !validID(parentID) {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(new(M)).Where(r.cols.parent+" = ?", parentID).Count(&count).Error
	return count, err
}

func (r *gormRepository[E, M]) Increment(ctx context.Context, id, counter string) error {
	if !r.cols.hasCounter(counter) {
		return entity.NewValidationError("counter", "unknown counter "+counter)
	}
	if !validID(id) {
		return entity.ErrNotFound
	}

	result := r.db.WithContext(ctx).Model(new(M)).Where("id = ?", id).
		UpdateColumn(counter, clause.Expr{SQL: counter + " + ?", Vars: []interface{}{1}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *gormRepository[E, M]) ListDue(ctx context.Context, now time.Time) ([]*E, error) {
	if !r.cols.scheduled {
		return nil, nil
	}

	var models []M
	err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?", string(entity.StatusDraft), now).
		Order("scheduled_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	items := make([]*E, len(models))
	for i := range models {
		items[i] = r.toEntity(&models[i])
	}
	return items, nil
}
