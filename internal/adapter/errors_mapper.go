package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-letters-client/models"
	"github.com/go-resty/resty/v2"
)

// Messages shown when a failed response carries no "error" field.
const (
	fallbackUpload      = "Ошибка при загрузке файлов"
	fallbackProcess     = "Ошибка при обработке данных"
	fallbackDownloadAll = "Ошибка при скачивании архива"
	fallbackDownload    = "Ошибка при скачивании файла"
	fallbackStatus      = "Ошибка при получении статуса"
)

func mapHTTPError(resp *resty.Response, fallback string) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := fallback
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if msg := strings.TrimSpace(body.Error); msg != "" {
			message = msg
		}
	}

	var kind error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		kind = ErrBadRequest
	case http.StatusNotFound:
		kind = ErrNotFound
	case http.StatusInternalServerError:
		kind = ErrInternalServerError
	default:
		kind = ErrUnexpectedStatus
	}

	return &ServerError{StatusCode: resp.StatusCode(), Message: message, kind: kind}
}
