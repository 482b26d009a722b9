package content

import "errors"

var (
	// ErrTableMissing возвращается, если таблица site_content не создана (не применена миграция)
	ErrTableMissing = errors.New("content.repository: table site_content does not exist, run migrations")

	// ErrNotInTransaction возвращается, если блокирующее чтение вызвано вне транзакции
	ErrNotInTransaction = errors.New("content.repository: GetForUpdate requires a transaction")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("content.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("content.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("content.repository: failed to scan row")

	// ErrDecodeContent возвращается, если документ в БД не разбирается
	ErrDecodeContent = errors.New("content.repository: failed to decode content document")
)
