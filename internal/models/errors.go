package models

import "errors"

var (
	// ErrNotFound - запись с указанным id отсутствует
	ErrNotFound = errors.New("not found")
	// ErrReferenceNotFound - вставка ссылается на несуществующую родительскую запись
	ErrReferenceNotFound = errors.New("referenced record does not exist")
	// ErrProviderNotConfigured - для внешнего сервиса не заданы ключи
	ErrProviderNotConfigured = errors.New("provider is not configured")
	// ErrUpstream - внешний сервис недоступен или отклонил запрос
	ErrUpstream = errors.New("upstream service failure")
)
