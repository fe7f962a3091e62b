package port

import "errors"

var (
	// ErrBackendUnavailable: бэкенд компьютерного зрения не подключён, детекция невозможна.
	ErrBackendUnavailable = errors.New("vision backend is unavailable")

	// ErrResultNotFound: результата с таким ID нет в хранилище.
	ErrResultNotFound = errors.New("detection result not found")

	// ErrInvalidImage: изображение не удалось разобрать.
	ErrInvalidImage = errors.New("invalid image")
)
