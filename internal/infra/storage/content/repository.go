package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StayBooking/internal/domain"
	"github.com/m04kA/SMC-StayBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayBooking/pkg/psqlbuilder"
)

const (
	tableName = "site_content"
	rowID     = "singleton"

	pqUndefinedTable = "42P01"
)

// Repository хранит весь контент сайта одним JSON-документом в единственной строке
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория контента
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get читает документ. Если строки еще нет, записывает контент по умолчанию
func (r *Repository) Get(ctx context.Context) (*domain.SiteContent, error) {
	content, err := r.selectContent(ctx, false)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	if err := r.seed(ctx); err != nil {
		return nil, err
	}

	content, err = r.selectContent(ctx, false)
	if err != nil {
		return nil, r.noRows(err, "Get")
	}
	return content, nil
}

// GetForUpdate читает документ с блокировкой строки до конца транзакции
// Используется для read-modify-write внутри txmanager.DoSerializable
func (r *Repository) GetForUpdate(ctx context.Context) (*domain.SiteContent, error) {
	if !dbmetrics.IsInTransaction(ctx) {
		return nil, ErrNotInTransaction
	}

	content, err := r.selectContent(ctx, true)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	if err := r.seed(ctx); err != nil {
		return nil, err
	}

	content, err = r.selectContent(ctx, true)
	if err != nil {
		return nil, r.noRows(err, "GetForUpdate")
	}
	return content, nil
}

// Update записывает документ целиком
func (r *Repository) Update(ctx context.Context, content *domain.SiteContent) error {
	payload, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("%w: Update - encode content: %v", ErrDecodeContent, err)
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("id", "content", "updated_at").
		Values(rowID, payload, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (id) DO UPDATE SET content = EXCLUDED.content, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build upsert query: %v", ErrBuildQuery, err)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return mapError(fmt.Errorf("%w: Update - execute upsert: %v", ErrExecQuery, err), err)
	}

	return nil
}

func (r *Repository) selectContent(ctx context.Context, forUpdate bool) (*domain.SiteContent, error) {
	builder := psqlbuilder.Select("content").
		From(tableName).
		Where(squirrel.Eq{"id": rowID})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: select content: %v", ErrBuildQuery, err)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	var raw []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, mapError(fmt.Errorf("%w: select content: %v", ErrScanRow, err), err)
	}

	content := domain.DefaultSiteContent()
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeContent, err)
	}
	normalize(&content)

	return &content, nil
}

func (r *Repository) seed(ctx context.Context) error {
	payload, err := json.Marshal(domain.DefaultSiteContent())
	if err != nil {
		return fmt.Errorf("%w: seed - encode default content: %v", ErrDecodeContent, err)
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("id", "content", "updated_at").
		Values(rowID, payload, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: seed - build insert query: %v", ErrBuildQuery, err)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return mapError(fmt.Errorf("%w: seed - execute insert: %v", ErrExecQuery, err), err)
	}

	return nil
}

func (r *Repository) noRows(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s - content row missing after seed", ErrExecQuery, op)
	}
	return err
}

// normalize заменяет nil-срезы пустыми, чтобы в JSON-ответах были [] вместо null
func normalize(content *domain.SiteContent) {
	if content.Gallery == nil {
		content.Gallery = []domain.GalleryImage{}
	}
	if content.Reservations == nil {
		content.Reservations = []domain.Reservation{}
	}
	if content.Bookings.BlockedDates == nil {
		content.Bookings.BlockedDates = []domain.BlockedRange{}
	}
	if content.Bookings.CustomRates == nil {
		content.Bookings.CustomRates = []domain.CustomRatePeriod{}
	}
}

// mapError подменяет ошибку на ErrTableMissing, если драйвер сообщил об отсутствующей таблице
func mapError(wrapped, cause error) error {
	var pqErr *pq.Error
	if errors.As(cause, &pqErr) && string(pqErr.Code) == pqUndefinedTable {
		return ErrTableMissing
	}
	return wrapped
}
