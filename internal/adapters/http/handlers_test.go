package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jw013/dlx/internal/dlx"
	"github.com/jw013/dlx/internal/domain"
	"github.com/jw013/dlx/internal/usecase"
	"github.com/jw013/dlx/internal/validator"
)

func newTestHandler() *Handler {
	s := dlx.NewSolver()
	uc := usecase.NewService(s, nil, validator.New(), nil, nil)
	return New(uc)
}

func TestHandleSolveFindsSolution(t *testing.T) {
	h := newTestHandler()
	mux := http.NewServeMux()
	h.Register(mux)

	body, _ := json.Marshal(solveReq{
		Instance: domain.Instance{
			CSR:     domain.CSR{ColInd: []uint{0, 1, 2}, RowPtr: []uint{0, 1, 2, 3}},
			NumCols: 3,
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp solveResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Found || len(resp.Result.Rows) != 3 {
		t.Fatalf("got %+v", resp)
	}
}

func TestHandleSolveRejectsWrongMethod(t *testing.T) {
	h := newTestHandler()
	mux := http.NewServeMux()
	h.Register(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/solve", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestHandleValidateReportsProblems(t *testing.T) {
	h := newTestHandler()
	mux := http.NewServeMux()
	h.Register(mux)

	body, _ := json.Marshal(validateReq{
		Instance: domain.Instance{
			CSR:     domain.CSR{ColInd: []uint{5}, RowPtr: []uint{0, 1}},
			NumCols: 2,
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/validate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var resp validateResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.OK || len(resp.Problems) == 0 {
		t.Fatalf("expected validation problems, got %+v", resp)
	}
}

func TestHandleListWithoutStorageReturnsError(t *testing.T) {
	h := newTestHandler()
	mux := http.NewServeMux()
	h.Register(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/list", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 (no storage configured)", rec.Code)
	}
}
