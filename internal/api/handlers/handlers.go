package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Mirzasalman11/bank-statement-to-json/internal/api/middleware"
	"github.com/Mirzasalman11/bank-statement-to-json/internal/statement"
	"github.com/rs/zerolog"
)

// maxUploadBytes bounds the multipart form held in memory per request.
const maxUploadBytes = 32 << 20

// Processor runs one PDF through the extraction pipeline. Satisfied by
// *pipeline.Processor; an interface here so handler tests can stub it.
type Processor interface {
	Process(ctx context.Context, pdfData []byte) (*statement.Result, error)
}

// StatementHandler handles the statement processing endpoints.
type StatementHandler struct {
	processor Processor
	log       zerolog.Logger
}

// NewStatementHandler creates a new statement handler.
func NewStatementHandler(processor Processor, log zerolog.Logger) *StatementHandler {
	return &StatementHandler{processor: processor, log: log}
}

// ProcessStatement handles POST /api/process-statement. It accepts a
// multipart upload with a "file" field holding a PDF and responds with the
// full StatementResult JSON, or an error payload - never a partial result.
func (h *StatementHandler) ProcessStatement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "A 'file' form field is required")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		middleware.WriteError(w, http.StatusBadRequest, "Only PDF files are supported")
		return
	}

	pdfData, err := io.ReadAll(file)
	if err != nil {
		h.log.Error().Err(err).Str("filename", header.Filename).Msg("Failed to read upload")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	h.log.Info().
		Str("filename", header.Filename).
		Int("bytes", len(pdfData)).
		Str("request_id", middleware.GetRequestID(ctx)).
		Msg("Processing statement")

	result, err := h.processor.Process(ctx, pdfData)
	if err != nil {
		if errors.Is(err, statement.ErrNoContent) {
			middleware.WriteError(w, http.StatusBadRequest, "Failed to process PDF: no tables or text could be extracted")
			return
		}
		h.log.Error().Err(err).Str("filename", header.Filename).Msg("Pipeline execution failed")
		middleware.WriteError(w, http.StatusInternalServerError, "Error processing file: "+err.Error())
		return
	}

	middleware.WriteJSON(w, http.StatusOK, result)
}

// Health handles GET /api/health.
func (h *StatementHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Bank Statement Processor API is running",
	})
}
