package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"docugen/internal/domain"
	"docugen/internal/handler"
	"docugen/internal/middleware"
	"docugen/internal/service"
	"docugen/mocks"
)

func generateContext(w *httptest.ResponseRecorder, body []byte) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/documents/generate", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.ContextKeyUsername, "clerk1")
	return c
}

func TestDocumentHandler_Generate_Success(t *testing.T) {
	mockGen := new(mocks.MockGenerationService)
	h := handler.NewDocumentHandler(mockGen)

	out := &service.GenerateOutput{
		Data:        []byte("PK-docx-bytes"),
		FileName:    "GST Resolution.docx",
		ContentType: domain.DocxContentType,
	}
	mockGen.On("Generate", mock.Anything, "clerk1", mock.MatchedBy(func(req *domain.GenerateRequest) bool {
		return req.DocType == "GST Resolution" && len(req.Directors) == 2
	})).Return(out, nil)

	body := []byte(`{
		"page": "GST Resolution",
		"COMPANY_NAME": "Acme Industries Pvt Ltd",
		"directors": [
			{"name": "Asha Mehta", "din": "01234567"},
			{"name": "Ravi Kumar", "din": "07654321"}
		]
	}`)

	w := httptest.NewRecorder()
	h.Generate(generateContext(w, body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.DocxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "GST Resolution.docx")
	assert.Equal(t, []byte("PK-docx-bytes"), w.Body.Bytes())
	mockGen.AssertExpectations(t)
}

func TestDocumentHandler_Generate_UnknownType(t *testing.T) {
	mockGen := new(mocks.MockGenerationService)
	h := handler.NewDocumentHandler(mockGen)

	mockGen.On("Generate", mock.Anything, "clerk1", mock.Anything).
		Return(nil, domain.ErrUnknownDocumentType)

	w := httptest.NewRecorder()
	h.Generate(generateContext(w, []byte(`{"page": "Lease Agreement"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "UNKNOWN_DOCUMENT_TYPE", resp.Error.Code)
}

func TestDocumentHandler_Generate_TemplateMissing(t *testing.T) {
	mockGen := new(mocks.MockGenerationService)
	h := handler.NewDocumentHandler(mockGen)

	mockGen.On("Generate", mock.Anything, "clerk1", mock.Anything).
		Return(nil, domain.ErrTemplateNotFound)

	w := httptest.NewRecorder()
	h.Generate(generateContext(w, []byte(`{"page": "GST Resolution"}`)))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentHandler_Generate_InvalidJSON(t *testing.T) {
	mockGen := new(mocks.MockGenerationService)
	h := handler.NewDocumentHandler(mockGen)

	w := httptest.NewRecorder()
	h.Generate(generateContext(w, []byte(`{not json`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockGen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentHandler_Generate_MalformedGroup(t *testing.T) {
	mockGen := new(mocks.MockGenerationService)
	h := handler.NewDocumentHandler(mockGen)

	w := httptest.NewRecorder()
	h.Generate(generateContext(w, []byte(`{"page": "GST Resolution", "directors": "not-an-array"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "MALFORMED_PAYLOAD", resp.Error.Code)
	mockGen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentHandler_Generate_MissingUserContext(t *testing.T) {
	mockGen := new(mocks.MockGenerationService)
	h := handler.NewDocumentHandler(mockGen)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/documents/generate", bytes.NewReader([]byte(`{}`)))

	h.Generate(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockGen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}
