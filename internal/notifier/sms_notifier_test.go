package notifier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	config "github.com/Keoroanthony/bakery-ledger/configs"
)

func newTestSender(t *testing.T, handler http.HandlerFunc) *AfricasTalking {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewAfricasTalking(config.AfricaTalkingConfig{
		Username: "sandbox",
		APIKey:   "secret",
		SMSURL:   server.URL,
		SenderID: "BAKERY",
	})
}

func TestSendSMS(t *testing.T) {
	t.Run("Posts the form and accepts 201", func(t *testing.T) {
		sender := newTestSender(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "secret", r.Header.Get("apikey"))
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "sandbox", r.PostForm.Get("username"))
			assert.Equal(t, "+48600100200", r.PostForm.Get("to"))
			assert.Equal(t, "hello", r.PostForm.Get("message"))
			assert.Equal(t, "BAKERY", r.PostForm.Get("from"))

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"SMSMessageData":{"Message":"Sent to 1/1","Recipients":[{"statusCode":101,"number":"+48600100200","status":"Success"}]}}`))
		})

		assert.NoError(t, sender.SendSMS(context.Background(), "+48600100200", "hello"))
	})

	t.Run("Fails on non-success status", func(t *testing.T) {
		sender := newTestSender(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"SMSMessageData":{"Message":"InvalidCredentials"}}`))
		})

		err := sender.SendSMS(context.Background(), "+48600100200", "hello")
		assert.ErrorContains(t, err, "non-success status: 401")
	})

	t.Run("Fails on undecodable body", func(t *testing.T) {
		sender := newTestSender(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`not json`))
		})

		err := sender.SendSMS(context.Background(), "+48600100200", "hello")
		assert.ErrorContains(t, err, "failed to decode SMS response")
	})
}

func TestReminderMessage(t *testing.T) {
	msg := ReminderMessage("Anna", "23.12", 82.5)
	assert.Equal(t, "Hello Anna, your bakery order for 23.12 is ready. Amount due: 82.50 PLN. Thank you!", msg)
}
