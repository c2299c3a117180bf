package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"signet/internal/certificate/handler/mocks"
	"signet/internal/certificate/models"
	"signet/internal/certificate/service"
	"signet/internal/certificate/store"
	"signet/internal/facematch"
	"signet/internal/platform/middleware"
	dErrors "signet/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/certificate-mocks.go -package=mocks Service
type CertificateHandlerSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *CertificateHandlerSuite) SetupSuite() {
	s.ctx = context.Background()
}

func TestCertificateHandlerSuite(t *testing.T) {
	suite.Run(t, new(CertificateHandlerSuite))
}

func newTestHandler(t *testing.T, comparer facematch.Comparer) (*Handler, *mocks.MockService, chi.Router) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := New(mockService, comparer, logger)
	r := chi.NewRouter()
	h.Register(r)
	h.RegisterPublic(r)
	return h, mockService, r
}

func asIssuer(req *http.Request, email string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.ContextKeyUserID, "user123")
	ctx = context.WithValue(ctx, middleware.ContextKeyEmail, email)
	return req.WithContext(ctx)
}

func (s *CertificateHandlerSuite) TestHandleIssue() {
	_, mockService, r := newTestHandler(s.T(), nil)

	mockService.EXPECT().Issue(gomock.Any(), models.IssueRequest{
		Particulars:   "Deed A",
		Description:   "desc",
		SignatoryName: "J. Doe",
		ExpiryDate:    "2030-01-01",
	}, gomock.Any()).Return(&models.IssueResult{
		CertificateNumber: "0001",
		Digest:            "deadbeef",
		TransactionRef:    "0xabc",
	}, nil)

	body, err := json.Marshal(IssueRequest{
		Particulars:   " Deed A ",
		Description:   "desc",
		SignatoryName: "J. Doe",
		ExpiryDate:    "2030-01-01",
	})
	require.NoError(s.T(), err)

	req := asIssuer(httptest.NewRequest(http.MethodPost, "/certificates", bytes.NewReader(body)), "issuer@example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusCreated, w.Code)
	var resp IssueResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), "0001", resp.CertificateNumber)
	assert.Equal(s.T(), "0xabc", resp.TransactionRef)
}

func (s *CertificateHandlerSuite) TestHandleIssueValidationError() {
	_, mockService, r := newTestHandler(s.T(), nil)

	mockService.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeValidation, "particulars is required"))

	req := asIssuer(httptest.NewRequest(http.MethodPost, "/certificates", bytes.NewReader([]byte(`{}`))), "issuer@example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	assert.Contains(s.T(), w.Body.String(), "validation_failed")
}

func (s *CertificateHandlerSuite) TestHandleIssueLedgerFailure() {
	_, mockService, r := newTestHandler(s.T(), nil)

	mockService.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, dErrors.Wrap(dErrors.CodeLedgerWrite, "failed to anchor certificate on ledger", errors.New("rpc down")))

	body, _ := json.Marshal(IssueRequest{Particulars: "x", Description: "y", SignatoryName: "z", ExpiryDate: "2030-01-01"})
	req := asIssuer(httptest.NewRequest(http.MethodPost, "/certificates", bytes.NewReader(body)), "issuer@example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusBadGateway, w.Code)
}

func (s *CertificateHandlerSuite) TestHandleIssueRequiresAuth() {
	h, _, _ := newTestHandler(s.T(), nil)

	req := httptest.NewRequest(http.MethodPost, "/certificates", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	h.HandleIssue(w, req)

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *CertificateHandlerSuite) TestHandleIssueMalformedBody() {
	h, _, _ := newTestHandler(s.T(), nil)

	req := asIssuer(httptest.NewRequest(http.MethodPost, "/certificates", bytes.NewReader([]byte(`{not json`))), "issuer@example.com")
	w := httptest.NewRecorder()
	h.HandleIssue(w, req)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *CertificateHandlerSuite) TestHandleGet() {
	_, mockService, r := newTestHandler(s.T(), nil)

	mockService.EXPECT().Get(gomock.Any(), "0001", "issuer@example.com").Return(&service.CertificateView{
		Certificate: models.Certificate{
			Number:      "0001",
			IssuerEmail: "issuer@example.com",
			Particulars: "Deed A",
		},
		DocumentPhotoURL: "http://localhost:8080/certificate_images/0001/doc.jpg",
	}, nil)

	req := asIssuer(httptest.NewRequest(http.MethodGet, "/certificates/0001", nil), "issuer@example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	var resp CertificateResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), "0001", resp.CertificateNumber)
	assert.Equal(s.T(), "http://localhost:8080/certificate_images/0001/doc.jpg", resp.DocumentPhotoURL)
}

func (s *CertificateHandlerSuite) TestHandleGetNotFound() {
	_, mockService, r := newTestHandler(s.T(), nil)

	mockService.EXPECT().Get(gomock.Any(), "9999", "issuer@example.com").Return(nil, store.ErrNotFound)

	req := asIssuer(httptest.NewRequest(http.MethodGet, "/certificates/9999", nil), "issuer@example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *CertificateHandlerSuite) TestHandleList() {
	_, mockService, r := newTestHandler(s.T(), nil)

	mockService.EXPECT().List(gomock.Any(), "issuer@example.com").Return([]*service.CertificateView{
		{Certificate: models.Certificate{Number: "0002"}},
		{Certificate: models.Certificate{Number: "0001"}},
	}, nil)

	req := asIssuer(httptest.NewRequest(http.MethodGet, "/certificates", nil), "issuer@example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	var resp []CertificateResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(s.T(), resp, 2)
	assert.Equal(s.T(), "0002", resp[0].CertificateNumber)
}

func (s *CertificateHandlerSuite) TestHandleDelete() {
	_, mockService, r := newTestHandler(s.T(), nil)

	mockService.EXPECT().Delete(gomock.Any(), "0001", "issuer@example.com").Return(nil)

	req := asIssuer(httptest.NewRequest(http.MethodDelete, "/certificates/0001", nil), "issuer@example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusNoContent, w.Code)
}

func (s *CertificateHandlerSuite) TestHandleVerifyIsPublic() {
	anchoredAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name    string
		result  *models.VerificationResult
		verdict string
	}{
		{
			name: "verified",
			result: &models.VerificationResult{
				CertificateNumber: "0001",
				Verdict:           models.VerdictVerified,
				StoredDigest:      "aa",
				LedgerDigest:      "aa",
				AnchoredAt:        &anchoredAt,
				TransactionRef:    "0xabc",
			},
			verdict: "verified",
		},
		{
			name:    "unknown",
			result:  &models.VerificationResult{CertificateNumber: "9999", Verdict: models.VerdictUnknown},
			verdict: "certificate_unknown",
		},
		{
			name:    "tampered",
			result:  &models.VerificationResult{CertificateNumber: "0001", Verdict: models.VerdictTampered},
			verdict: "tampered_or_mismatched",
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, mockService, r := newTestHandler(s.T(), nil)
			mockService.EXPECT().Verify(gomock.Any(), tc.result.CertificateNumber).Return(tc.result, nil)

			// No auth context: verification is public.
			req := httptest.NewRequest(http.MethodGet, "/verify/"+tc.result.CertificateNumber, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(s.T(), http.StatusOK, w.Code)
			var resp VerificationResponse
			require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(s.T(), tc.verdict, resp.Verdict)
		})
	}
}

func (s *CertificateHandlerSuite) TestHandleVerifyLedgerReadFailure() {
	_, mockService, r := newTestHandler(s.T(), nil)

	mockService.EXPECT().Verify(gomock.Any(), "0001").
		Return(nil, dErrors.Wrap(dErrors.CodeLedgerRead, "ledger lookup failed", errors.New("rpc down")))

	req := httptest.NewRequest(http.MethodGet, "/verify/0001", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusBadGateway, w.Code)
}

type nopComparer struct{}

func (nopComparer) Compare(ctx context.Context, referenceRef, candidateRef string) (facematch.Result, error) {
	return facematch.Result{}, nil
}

func (s *CertificateHandlerSuite) TestHandleFaceVerify() {
	comparer := nopComparer{}
	_, mockService, r := newTestHandler(s.T(), comparer)

	mockService.EXPECT().CompareSignatoryFace(gomock.Any(), comparer, "0001", "issuer@example.com", "uploads/probe.jpg").
		Return(facematch.Result{IsMatch: true, Confidence: 0.91}, nil)

	body, _ := json.Marshal(FaceVerifyRequest{CertificateNumber: "0001", CandidateRef: "uploads/probe.jpg"})
	req := asIssuer(httptest.NewRequest(http.MethodPost, "/face/verify", bytes.NewReader(body)), "issuer@example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	var resp FaceVerifyResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(s.T(), resp.IsMatch)
	assert.InDelta(s.T(), 0.91, resp.Confidence, 0.0001)
}

func (s *CertificateHandlerSuite) TestHandleFaceVerifyUnconfigured() {
	_, _, r := newTestHandler(s.T(), nil)

	body, _ := json.Marshal(FaceVerifyRequest{CertificateNumber: "0001", CandidateRef: "uploads/probe.jpg"})
	req := asIssuer(httptest.NewRequest(http.MethodPost, "/face/verify", bytes.NewReader(body)), "issuer@example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}
