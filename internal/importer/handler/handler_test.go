package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseimport-service/internal/config"
	"caseimport-service/internal/importer/model"
	"caseimport-service/internal/store"
	"caseimport-service/internal/store/memory"
)

func testConfig() config.Config {
	return config.Config{
		MaxUploadMB: 8,
		BatchSize:   10,
		BatchDelay:  0,
		PreviewRows: 5,
	}
}

func newTestStore() *memory.Store {
	mem := memory.New()
	mem.AddTeamMember("user-1", "firm-1")
	mem.AddClient(store.Client{ID: "c1", FirmID: "firm-1", FullName: "John Doe"})
	return mem
}

func multipartUpload(t *testing.T, userID, filename, csv string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("user_id", userID))
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(fw, csv)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

const sampleCSV = "Title,CNR,Client\n" +
	"Disposed Case A,GJHC-24-000001-2020,John Doe\n" +
	",GJHC-24-000002-2020,\n" +
	"Case C,,Unknown Person\n"

func TestImportHandler(t *testing.T) {
	mem := newTestStore()
	body, contentType := multipartUpload(t, "user-1", "cases.csv", sampleCSV)

	req := httptest.NewRequest(http.MethodPost, "/import/cases", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	Import(testConfig(), zerolog.Nop(), mem, config.DefaultAliases())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res model.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, model.StateDone, res.State)
	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 2, res.FailureCount)
	assert.Equal(t, 0, res.ClientNotFoundCount)
	assert.Len(t, mem.Cases(), 1)
}

func TestImportHandlerNoFirm(t *testing.T) {
	mem := newTestStore()
	body, contentType := multipartUpload(t, "stranger", "cases.csv", sampleCSV)

	req := httptest.NewRequest(http.MethodPost, "/import/cases", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	Import(testConfig(), zerolog.Nop(), mem, config.DefaultAliases())(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, mem.Cases())
}

func TestImportHandlerMissingUser(t *testing.T) {
	mem := newTestStore()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, _ := mw.CreateFormFile("file", "cases.csv")
	_, _ = io.WriteString(fw, sampleCSV)
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/import/cases", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	Import(testConfig(), zerolog.Nop(), mem, config.DefaultAliases())(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreviewHandlerWritesNothing(t *testing.T) {
	mem := newTestStore()
	body, contentType := multipartUpload(t, "user-1", "cases.csv", sampleCSV)

	req := httptest.NewRequest(http.MethodPost, "/import/preview", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	Preview(testConfig(), zerolog.Nop(), mem, config.DefaultAliases())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var preview model.Preview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &preview))

	assert.Len(t, preview.Results, 3)
	assert.True(t, preview.Results[0].HasRequiredFields)
	assert.Equal(t, "John Doe", preview.Results[0].MatchedClient)
	assert.False(t, preview.Results[1].HasRequiredFields)
	assert.Empty(t, mem.Cases())
}

func TestReportHandler(t *testing.T) {
	res := model.Result{
		State:        model.StateDone,
		SuccessCount: 1,
		SuccessfulImports: []model.SuccessEntry{
			{RowNumber: 2, Title: "Case A", Identifier: "GJHC240000012020"},
		},
	}
	payload, err := json.Marshal(res)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/import/report", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	Report(zerolog.Nop())(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotZero(t, rec.Body.Len())
}
