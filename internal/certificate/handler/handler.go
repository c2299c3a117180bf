package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"signet/internal/certificate/models"
	"signet/internal/certificate/service"
	"signet/internal/certificate/store"
	"signet/internal/facematch"
	"signet/internal/platform/device"
	"signet/internal/platform/middleware"
	dErrors "signet/pkg/domain-errors"
	"signet/pkg/platform/httputil"
)

// Service defines the certificate operations the transport layer consumes.
type Service interface {
	Issue(ctx context.Context, req models.IssueRequest, ic service.IssueContext) (*models.IssueResult, error)
	Verify(ctx context.Context, number string) (*models.VerificationResult, error)
	Get(ctx context.Context, number, ownerEmail string) (*service.CertificateView, error)
	List(ctx context.Context, ownerEmail string) ([]*service.CertificateView, error)
	Delete(ctx context.Context, number, ownerEmail string) error
	CompareSignatoryFace(ctx context.Context, comparer facematch.Comparer, number, ownerEmail, candidateRef string) (facematch.Result, error)
}

// Handler wires certificate endpoints to the certificate service.
type Handler struct {
	service  Service
	comparer facematch.Comparer
	logger   *slog.Logger
}

// New constructs a certificate handler with its dependencies. comparer may be
// nil when no face comparison backend is configured.
func New(service Service, comparer facematch.Comparer, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		comparer: comparer,
		logger:   logger,
	}
}

// Register mounts the authenticated certificate endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/certificates", h.HandleIssue)
	r.Get("/certificates", h.HandleList)
	r.Get("/certificates/{number}", h.HandleGet)
	r.Delete("/certificates/{number}", h.HandleDelete)
	r.Post("/face/verify", h.HandleFaceVerify)
}

// RegisterPublic mounts the unauthenticated verification endpoint.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Get("/verify/{number}", h.HandleVerify)
}

// HandleIssue handles POST /certificates requests.
func (h *Handler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	start := time.Now()

	email := middleware.GetEmail(ctx)
	if email == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	req, ok := httputil.Decode[IssueRequest](w, r, h.logger)
	if !ok {
		return
	}

	result, err := h.service.Issue(ctx, req.ToModel(), service.IssueContext{
		IssuerEmail: email,
		DeviceIP:    device.ClientIP(r),
		Device:      device.ParseUserAgent(r.UserAgent()),
		RequestID:   requestID,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "certificate issuance failed",
			"request_id", requestID,
			"issuer_email", email,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "certificate issued",
		"request_id", requestID,
		"certificate_number", result.CertificateNumber,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusCreated, fromIssueResult(result))
}

// HandleList handles GET /certificates requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := middleware.GetEmail(ctx)
	if email == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	views, err := h.service.List(ctx, email)
	if err != nil {
		h.logger.ErrorContext(ctx, "certificate list failed",
			"request_id", middleware.GetRequestID(ctx),
			"issuer_email", email,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	out := make([]CertificateResponse, 0, len(views))
	for _, v := range views {
		out = append(out, fromView(v))
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /certificates/{number} requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := middleware.GetEmail(ctx)
	if email == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	view, err := h.service.Get(ctx, chi.URLParam(r, "number"), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "certificate fetch failed",
			"request_id", middleware.GetRequestID(ctx),
			"issuer_email", email,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, fromView(view))
}

// HandleDelete handles DELETE /certificates/{number} requests.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := middleware.GetEmail(ctx)
	if email == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	number := chi.URLParam(r, "number")
	if err := h.service.Delete(ctx, number, email); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.logger.ErrorContext(ctx, "certificate delete failed",
				"request_id", middleware.GetRequestID(ctx),
				"certificate_number", number,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleVerify handles GET /verify/{number} requests. Verification is public
// and every verdict is a 200 response; only infrastructure failures surface
// as errors.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	number := chi.URLParam(r, "number")

	result, err := h.service.Verify(ctx, number)
	if err != nil {
		h.logger.ErrorContext(ctx, "certificate verification failed",
			"request_id", middleware.GetRequestID(ctx),
			"certificate_number", number,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, fromVerification(result))
}

// HandleFaceVerify handles POST /face/verify requests.
func (h *Handler) HandleFaceVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := middleware.GetEmail(ctx)
	if email == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}
	if h.comparer == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "face verification is not configured"))
		return
	}

	req, ok := httputil.Decode[FaceVerifyRequest](w, r, h.logger)
	if !ok {
		return
	}
	if req.CertificateNumber == "" || req.CandidateRef == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "certificate_number and candidate_ref are required"))
		return
	}

	result, err := h.service.CompareSignatoryFace(ctx, h.comparer, req.CertificateNumber, email, req.CandidateRef)
	if err != nil {
		h.logger.ErrorContext(ctx, "face verification failed",
			"request_id", middleware.GetRequestID(ctx),
			"certificate_number", req.CertificateNumber,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, fromFaceResult(result))
}
