package httpapi

import "net/http"

func (h *Handler) ListArchives(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListArchives")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.archiveService.ListArchivedSeasons(ctx))
}

func (h *Handler) GetHallOfFame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHallOfFame")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.archiveService.HallOfFame(ctx))
}

func (h *Handler) ExportArchives(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportArchives")
	defer span.End()

	result, err := h.exportService.ExportAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "archive export failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
