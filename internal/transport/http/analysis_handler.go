package http

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	apierrors "finlens/internal/errors"
	"finlens/internal/services"
)

// maxMultipartMemory bounds the in-memory portion of multipart parsing.
// Larger uploads spill to temporary files.
const maxMultipartMemory = 4 << 20

// AnalysisHandler handles document analysis HTTP requests with RFC 7807 compliance.
type AnalysisHandler struct {
	service      AnalysisServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewAnalysisHandler creates a new analysis handler with RFC 7807 error handling.
func NewAnalysisHandler(service AnalysisServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *AnalysisHandler {
	return &AnalysisHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "analysis_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the analysis routes with proper Chi patterns.
func (h *AnalysisHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/", h.AnalyzeDocument)

	return r
}

// AnalyzeDocument handles POST /api/analysis.
//
// The document can be submitted two ways:
//
//   - multipart/form-data with the file in the "file" field
//   - a raw request body, with the format inferred from Content-Type
//     and the optional X-Filename header
func (h *AnalysisHandler) AnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	data, filename, contentType, err := h.readDocument(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "failed to read uploaded document",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
		)
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "analyzing document",
		slog.String("request_id", reqID),
		slog.String("filename", filename),
		slog.String("content_type", contentType),
		slog.Int("size_bytes", len(data)),
	)

	result, err := h.service.AnalyzeDocument(r.Context(), data, filename, contentType)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "document analysis failed",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID),
			slog.String("filename", filename),
		)
		h.errorHandler.HandleError(w, r, h.mapServiceError(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, result)
}

// readDocument extracts the document bytes, filename and content type from
// the request, supporting both multipart uploads and raw bodies.
func (h *AnalysisHandler) readDocument(r *http.Request) ([]byte, string, string, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mediaType = ""
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		return h.readMultipart(r)
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, "", "", apierrors.ErrPayloadTooLarge
		}
		return nil, "", "", apierrors.InvalidRequestWithError(err)
	}

	filename := r.Header.Get("X-Filename")
	return data, filename, mediaType, nil
}

func (h *AnalysisHandler) readMultipart(r *http.Request) ([]byte, string, string, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, "", "", apierrors.ErrPayloadTooLarge
		}
		return nil, "", "", apierrors.InvalidRequestWithError(err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", "", apierrors.ErrValidation("file", "multipart field 'file' is required")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", "", apierrors.InvalidRequestWithError(err)
	}

	contentType := header.Header.Get("Content-Type")
	return data, header.Filename, contentType, nil
}

// mapServiceError converts service sentinel errors to API errors. Domain
// errors from the decoding and extraction layers pass through unchanged so
// the central error handler can map them to problem details.
func (h *AnalysisHandler) mapServiceError(err error) error {
	switch {
	case errors.Is(err, services.ErrEmptyDocument):
		return apierrors.New(http.StatusBadRequest, "EMPTY_DOCUMENT", "Request contained no document data")
	case errors.Is(err, services.ErrDocumentTooLarge):
		return apierrors.ErrPayloadTooLarge
	case errors.Is(err, services.ErrInvalidInput):
		return apierrors.InvalidRequestWithError(err)
	case errors.Is(err, services.ErrServiceUnavailable):
		return apierrors.ErrServiceUnavailable
	default:
		return err
	}
}
