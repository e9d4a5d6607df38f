// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-letters-client/internal/adapter"
	"github.com/MKhiriev/go-letters-client/internal/service"
)

const (
	msgServerUnavailable = "Отсутствует сеть или Сервер недоступен"
	msgUnexpected        = "Произошла ошибка при выполнении запроса."
)

// humanizeError turns an error returned by the letters service into the text
// of the error dialog.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrFilesNotSelected):
		return "Пожалуйста, выберите оба файла"
	case errors.Is(err, service.ErrFileNotFound):
		return "Файл не найден"
	case errors.Is(err, service.ErrNotRegularFile):
		return "Указанный путь не является файлом"
	case errors.Is(err, service.ErrUnsupportedFileType):
		return "Разрешены только Excel файлы (.xlsx, .xls)"
	case errors.Is(err, service.ErrInvalidWorkbook):
		return "Файл не является книгой Excel или повреждён"
	case errors.Is(err, service.ErrInvalidFileName):
		return "Некорректное имя файла"
	case errors.Is(err, service.ErrLetterIndexOutOfRange):
		return "Письмо не найдено"
	case errors.Is(err, service.ErrLocalStoreNotConfigured):
		return "Локальное хранилище не настроено"
	}

	var srvErr *adapter.ServerError
	if errors.As(err, &srvErr) {
		return srvErr.Message
	}
	if adapter.IsNetworkError(err) {
		return msgServerUnavailable
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}
