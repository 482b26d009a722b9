package content

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном контенте или тексте админки
	ErrInvalidInput = errors.New("content service: invalid input")

	// ErrStorageNotReady возвращается, если хранилище не подготовлено (нет таблицы)
	ErrStorageNotReady = errors.New("content service: storage is not initialised")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("content service: internal error")
)
