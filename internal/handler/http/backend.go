package http

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-letters-client/models"
	"github.com/shopspring/decimal"
)

// Route names accepted by [Backend.InjectFault].
const (
	RouteUpload      = "upload"
	RouteProcess     = "process"
	RouteStatus      = "status"
	RouteDownloadAll = "download_all"
	RouteDownload    = "download"
)

// Fault is a canned error response for a route.
type Fault struct {
	Status  int
	Message string
}

// Backend holds the server-side state of the stub.
type Backend struct {
	mu sync.Mutex

	fixtures []models.LetterSummary

	reportingUploaded bool
	sedUploaded       bool

	// generated documents in creation order
	names     []string
	documents map[string][]byte

	faults map[string]Fault
}

// NewBackend returns a backend that generates documents for fixtures on
// every process call.
func NewBackend(fixtures []models.LetterSummary) *Backend {
	return &Backend{
		fixtures:  append([]models.LetterSummary(nil), fixtures...),
		documents: make(map[string][]byte),
		faults:    make(map[string]Fault),
	}
}

// DefaultFixtures returns the letters generated when no fixtures are given.
func DefaultFixtures() []models.LetterSummary {
	return []models.LetterSummary{
		{
			ContractorName:      `ООО "Ромашка"`,
			ContractorShortName: "Ромашка",
			OrderNumber:         "4500012345",
			TotalAmount:         decimal.RequireFromString("1234567.89"),
			TotalPenalty:        decimal.RequireFromString("12345.67"),
			TotalPositions:      3,
			BEName:              "ПАО Энергия",
			RegNumber:           "СЭД-17/2",
			RegDate:             "15.01.2026",
			PlannedDate:         "01.12.2025",
			Category:            "Поставка",
		},
		{
			ContractorName:      `АО "Лютик"`,
			ContractorShortName: "Лютик",
			OrderNumber:         "4500067890",
			TotalAmount:         decimal.RequireFromString("98000"),
			TotalPenalty:        decimal.RequireFromString("980.5"),
			TotalPositions:      1,
		},
	}
}

// InjectFault makes route answer with status and message until cleared.
func (b *Backend) InjectFault(route string, status int, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.faults[route] = Fault{Status: status, Message: message}
}

// ClearFaults removes every injected fault.
func (b *Backend) ClearFaults() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.faults)
}

func (b *Backend) fault(route string) (Fault, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	f, ok := b.faults[route]
	return f, ok
}

func (b *Backend) markUploaded() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reportingUploaded = true
	b.sedUploaded = true
}

func (b *Backend) uploaded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reportingUploaded && b.sedUploaded
}

// generate replaces the generated documents with a letter and an appendix
// per fixture and returns the fixtures with the new file names.
func (b *Backend) generate() ([]models.LetterSummary, []string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.names = b.names[:0]
	clear(b.documents)

	for i, letter := range b.fixtures {
		for _, name := range []string{letter.LetterFileName(i), letter.AppendixFileName(i)} {
			b.names = append(b.names, name)
			b.documents[name] = []byte(fmt.Sprintf("%s\n%s\n%s\n", name, letter.ContractorName, letter.OrderNumber))
		}
	}

	return append([]models.LetterSummary(nil), b.fixtures...), append([]string(nil), b.names...)
}

func (b *Backend) status() models.StatusResponse {
	b.mu.Lock()
	defer b.mu.Unlock()
	return models.StatusResponse{
		ReportingFileUploaded: b.reportingUploaded,
		SedFileUploaded:       b.sedUploaded,
		// the real service counts generated .docx files, two per letter
		GeneratedLettersCount: len(b.names),
	}
}

func (b *Backend) document(name string) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	content, ok := b.documents[name]
	return content, ok
}

type namedDocument struct {
	name    string
	content []byte
}

func (b *Backend) allDocuments() []namedDocument {
	b.mu.Lock()
	defer b.mu.Unlock()

	docs := make([]namedDocument, 0, len(b.names))
	for _, name := range b.names {
		docs = append(docs, namedDocument{name: name, content: b.documents[name]})
	}
	return docs
}
