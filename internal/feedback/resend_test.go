package feedback

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResendClientSend(t *testing.T) {
	var got resendEmailRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewResendClient("re_test_key")
	client.endpoint = server.URL

	err := client.Send(context.Background(),
		"noreply@byterank.dev", "team@byterank.dev", "ada@example.com",
		"Hello", "feedback body")

	assert.NoError(t, err)
	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.Equal(t, "noreply@byterank.dev", got.From)
	assert.Equal(t, []string{"team@byterank.dev"}, got.To)
	assert.Equal(t, "ada@example.com", got.ReplyTo)
	assert.Equal(t, "Hello", got.Subject)
	assert.Equal(t, "feedback body", got.Text)
}

func TestResendClientSendRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer server.Close()

	client := NewResendClient("re_test_key")
	client.endpoint = server.URL

	err := client.Send(context.Background(),
		"bad", "team@byterank.dev", "", "Hello", "body")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid from address")
}
