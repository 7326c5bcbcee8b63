package app

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthurium-ai/txn-classify/internal/classify"
	"github.com/anthurium-ai/txn-classify/internal/metrics"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	index := classify.NewMerchantIndex()
	engine, err := classify.NewEngine(classify.Options{Index: index, Log: zerolog.Nop()})
	require.NoError(t, err)
	return &App{
		Engine: engine,
		Met:    metrics.New(func() float64 { return float64(index.Len()) }),
		Log:    zerolog.Nop(),
	}
}

func TestHandleClassify(t *testing.T) {
	a := newTestApp(t)
	srv := httptest.NewServer(a.Router())
	defer srv.Close()

	body := `{"merchantName":"SAFEWAY #1444","amount":"-54.20","importSource":"MANUAL"}`
	resp, err := http.Post(srv.URL+"/classify", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out classifyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "groceries", out.Category.Primary)
	assert.Equal(t, classify.TypeExpense, out.Type.Type)
}

func TestHandleClassifyInvalidJSON(t *testing.T) {
	a := newTestApp(t)
	srv := httptest.NewServer(a.Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/classify", "application/json", strings.NewReader("{nope"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleAddMerchant(t *testing.T) {
	a := newTestApp(t)
	srv := httptest.NewServer(a.Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/merchants", "application/json",
		strings.NewReader(`{"merchant":"Zorbly Media","category":"subscriptions"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// the learned merchant is used on the next classification
	body := `{"merchantName":"Zorbly Media","amount":"-9.99","importSource":"MANUAL"}`
	resp, err = http.Post(srv.URL+"/classify", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	var out classifyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "subscriptions", out.Category.Primary)
}

func TestHandleAddMerchantValidation(t *testing.T) {
	a := newTestApp(t)
	srv := httptest.NewServer(a.Router())
	defer srv.Close()

	for _, body := range []string{
		`{"merchant":"","category":"dining"}`,
		`{"merchant":"zorbly","category":""}`,
		`{"merchant":"zorbly","category":"not-a-category"}`,
		`{nope`,
	} {
		resp, err := http.Post(srv.URL+"/merchants", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}
}

func TestHandleClassifyCSV(t *testing.T) {
	a := newTestApp(t)
	srv := httptest.NewServer(a.Router())
	defer srv.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "export.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("Amount,Merchant Name\n-12.00,STARBUCKS 7710\nbad,ROW\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/classify/csv", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out csvResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 1, out.Skipped)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "dining", out.Results[0].Category.Primary)
}

func TestHandleHealthz(t *testing.T) {
	a := newTestApp(t)
	srv := httptest.NewServer(a.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
