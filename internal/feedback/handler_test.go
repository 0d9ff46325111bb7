package feedback

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestFeedbackRouter(sender Sender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	engine := gin.New()
	handler := NewFeedbackHandler(logger, newTestFeedbackService(sender))
	RegisterFeedbackRoutes(handler, engine.Group("/api/v1"))
	return engine
}

func TestSubmitFeedbackValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "empty message",
			body: `{"name":"Ada","email":"ada@example.com","subject":"Hello","message":""}`,
		},
		{
			name: "missing subject",
			body: `{"name":"Ada","email":"ada@example.com","message":"Hi"}`,
		},
		{
			name: "malformed email",
			body: `{"name":"Ada","email":"not-an-email","subject":"Hello","message":"Hi"}`,
		},
		{
			name: "not json",
			body: `message=Hi`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &MockSender{}
			engine := newTestFeedbackRouter(sender)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			engine.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			sender.AssertNotCalled(t, "Send")
		})
	}
}

func TestSubmitFeedbackDelivers(t *testing.T) {
	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.Anything, mock.Anything, "ada@example.com", mock.Anything, mock.Anything).
		Return(nil)
	engine := newTestFeedbackRouter(sender)

	body := `{"name":"Ada","email":"ada@example.com","subject":"Hello","message":"Just saying hi."}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"delivered":true`)
	sender.AssertExpectations(t)
}
