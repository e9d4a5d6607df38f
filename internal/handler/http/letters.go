package http

import (
	"archive/zip"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-letters-client/internal/logger"
	"github.com/MKhiriev/go-letters-client/internal/utils"
	"github.com/MKhiriev/go-letters-client/models"
	"github.com/go-chi/chi/v5"
)

const maxUploadSize = 64 << 20

// writeFault answers with the fault injected for route, if any.
func (h *Handler) writeFault(w http.ResponseWriter, r *http.Request, route string) bool {
	f, ok := h.backend.fault(route)
	if !ok {
		return false
	}

	logger.FromRequest(r).Debug().Str("route", route).Int("status", f.Status).Msg("injected fault")
	if f.Message == "" {
		// a bare status without the JSON body, like a proxy error page
		w.WriteHeader(f.Status)
		return true
	}
	utils.WriteError(w, f.Message, f.Status)
	return true
}

func isExcelFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	if h.writeFault(w, r, RouteUpload) {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Err(err).Msg("invalid multipart form")
		utils.WriteError(w, "Необходимо загрузить оба файла: отчетность и СЭД", http.StatusBadRequest)
		return
	}

	reporting, reportingHeader, err := r.FormFile("reporting_file")
	if err != nil {
		utils.WriteError(w, "Необходимо загрузить оба файла: отчетность и СЭД", http.StatusBadRequest)
		return
	}
	defer reporting.Close()

	sed, sedHeader, err := r.FormFile("sed_file")
	if err != nil {
		utils.WriteError(w, "Необходимо загрузить оба файла: отчетность и СЭД", http.StatusBadRequest)
		return
	}
	defer sed.Close()

	if reportingHeader.Filename == "" || sedHeader.Filename == "" {
		utils.WriteError(w, "Файлы не выбраны", http.StatusBadRequest)
		return
	}
	if !isExcelFile(reportingHeader.Filename) || !isExcelFile(sedHeader.Filename) {
		utils.WriteError(w, "Разрешены только Excel файлы (.xlsx, .xls)", http.StatusBadRequest)
		return
	}

	h.backend.markUploaded()
	log.Info().
		Str("reporting_file", reportingHeader.Filename).
		Int64("reporting_size", reportingHeader.Size).
		Str("sed_file", sedHeader.Filename).
		Int64("sed_size", sedHeader.Size).
		Msg("files uploaded")

	utils.WriteJSON(w, models.UploadResponse{
		Message:       "Файлы успешно загружены",
		ReportingFile: "reporting.xlsx",
		SedFile:       "sed.xlsx",
	}, http.StatusOK)
}

func (h *Handler) process(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	if h.writeFault(w, r, RouteProcess) {
		return
	}

	if !h.backend.uploaded() {
		utils.WriteError(w, "Файлы не найдены. Загрузите файлы сначала.", http.StatusBadRequest)
		return
	}

	letters, files := h.backend.generate()
	log.Info().Int("letters_count", len(letters)).Int("files", len(files)).Msg("letters generated")

	utils.WriteJSON(w, models.ProcessResponse{
		Message:        fmt.Sprintf("Обработано и сгенерировано %d писем", len(letters)),
		LettersCount:   len(letters),
		LettersData:    letters,
		FilesGenerated: files,
	}, http.StatusOK)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	if h.writeFault(w, r, RouteStatus) {
		return
	}
	utils.WriteJSON(w, h.backend.status(), http.StatusOK)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	if h.writeFault(w, r, RouteDownload) {
		return
	}

	name := chi.URLParam(r, "filename")
	// chi routes on RawPath when the request carries one
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
	}

	content, ok := h.backend.document(name)
	if !ok {
		utils.WriteError(w, "Файл не найден", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(name)))
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}

func (h *Handler) downloadAll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	if h.writeFault(w, r, RouteDownloadAll) {
		return
	}

	docs := h.backend.allDocuments()
	if len(docs) == 0 {
		utils.WriteError(w, "Нет сгенерированных файлов для скачивания", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="all_letters.zip"`)

	zw := zip.NewWriter(w)
	for _, doc := range docs {
		fw, err := zw.Create(doc.name)
		if err != nil {
			log.Err(err).Str("file", doc.name).Msg("failed to add file to archive")
			break
		}
		if _, err = fw.Write(doc.content); err != nil {
			log.Err(err).Str("file", doc.name).Msg("failed to write archive entry")
			break
		}
	}
	if err := zw.Close(); err != nil {
		log.Err(err).Msg("failed to finish archive")
	}
}
