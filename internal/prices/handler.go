package prices

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/latinta/dashboard/pkg/handlers"
	"github.com/latinta/dashboard/pkg/routes"
	"github.com/latinta/dashboard/pkg/tabular"
)

// Handler provides HTTP endpoints for price list operations.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
	exportName    string
}

// NewHandler creates a Handler with the given system, logger, upload size limit,
// and the filename offered for spreadsheet exports.
func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64, exportName string) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "prices"),
		maxUploadSize: maxUploadSize,
		exportName:    exportName,
	}
}

// Routes returns the route group definition for price endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/prices",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "PUT", Pattern: "", Handler: h.Update},
			{Method: "DELETE", Pattern: "", Handler: h.Delete},
			{Method: "GET", Pattern: "/stats", Handler: h.Stats},
			{Method: "GET", Pattern: "/export", Handler: h.Export},
			{Method: "POST", Pattern: "/import", Handler: h.Import},
		},
	}
}

// List returns every price record, optionally filtered by line and search text.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.sys.List(r.Context(), FiltersFromQuery(r.URL.Query()))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, records)
}

// Stats returns aggregate figures over the price list.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.sys.Stats(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}

// Create appends one record. The display price is derived from price_clp.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var rec Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, invalidBody(err))
		return
	}

	added, err := h.sys.Create(r.Context(), rec)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"added":   added,
		"source":  h.sys.Source(),
	})
}

// Update sets a new price on the record matching paper_id and measure_label.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd UpdateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, invalidBody(err))
		return
	}
	if err := requireKey(cmd.Key()); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	updated, err := h.sys.Update(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"updated": updated,
		"source":  h.sys.Source(),
	})
}

// Delete removes every record matching paper_id and measure_label.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var key Key
	if err := json.NewDecoder(r.Body).Decode(&key); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, invalidBody(err))
		return
	}
	if err := requireKey(key); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Delete(r.Context(), key); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Precio eliminado",
		"source":  h.sys.Source(),
	})
}

// Export streams the price list as a spreadsheet attachment.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.sys.Export(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.Header().Set("Content-Type", tabular.XLSXContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+h.exportName)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Import replaces the whole price list with the rows of an uploaded
// spreadsheet sent in the multipart field "file".
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge,
				fmt.Errorf("%w (%s)", ErrFileTooLarge, humanize.IBytes(uint64(tooLarge.Limit))))
			return
		}
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidFile, err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: no se proporciono ningun archivo", ErrInvalidFile))
		return
	}
	defer file.Close()

	if !spreadsheetName(header.Filename) {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}

	count, err := h.sys.Import(r.Context(), data)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Precios actualizados correctamente",
		"count":   count,
		"source":  h.sys.Source(),
	})
}

func spreadsheetName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}

func requireKey(k Key) error {
	if strings.TrimSpace(k.PaperID) == "" || strings.TrimSpace(k.MeasureLabel) == "" {
		return fmt.Errorf("%w: faltan paper_id o measure_label", ErrInvalidRecord)
	}
	return nil
}

func invalidBody(err error) error {
	if errors.Is(err, ErrInvalidRecord) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
}
