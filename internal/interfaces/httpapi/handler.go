package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/hasysamur-cmd/cosmus-league/internal/usecase"
)

type Handler struct {
	authService    *usecase.AuthService
	seasonService  *usecase.SeasonService
	queryService   *usecase.QueryService
	statsService   *usecase.StatsService
	archiveService *usecase.ArchiveService
	cupService     *usecase.CupService
	exportService  *usecase.ExportService
	logger         *slog.Logger
	validator      *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	seasonService *usecase.SeasonService,
	queryService *usecase.QueryService,
	statsService *usecase.StatsService,
	archiveService *usecase.ArchiveService,
	cupService *usecase.CupService,
	exportService *usecase.ExportService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		authService:    authService,
		seasonService:  seasonService,
		queryService:   queryService,
		statsService:   statsService,
		archiveService: archiveService,
		cupService:     cupService,
		exportService:  exportService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	token, ok, err := h.authService.Login(ctx, req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "login failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: wrong password", usecase.ErrUnauthorized))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, loginResponse{Token: token})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	token := bearerToken(r)
	if token != "" {
		h.authService.Logout(ctx, token)
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func bearerToken(r *http.Request) string {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}
