package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Keoroanthony/bakery-ledger/internal/db/dbtest"
	"github.com/Keoroanthony/bakery-ledger/internal/handlers"
	"github.com/Keoroanthony/bakery-ledger/internal/ledger"
	"github.com/Keoroanthony/bakery-ledger/internal/models"
)

// MockSMSSender is a testify mock of notifier.SMSSender.
type MockSMSSender struct {
	mock.Mock
}

func (m *MockSMSSender) SendSMS(ctx context.Context, toPhoneNumber, message string) error {
	args := m.Called(ctx, toPhoneNumber, message)
	return args.Error(0)
}

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *MockSMSSender) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testDB := dbtest.Open(t)
	sms := new(MockSMSSender)

	h := handlers.New(ledger.New(testDB), sms, models.DefaultDeliveryDate)
	store := cookie.NewStore([]byte("test-secret-key"))

	return handlers.NewRouter(h, store), testDB, sms
}

func createRequest(method, path string, body interface{}) *http.Request {
	var reqBody []byte
	switch b := body.(type) {
	case nil:
	case string:
		reqBody = []byte(b)
	default:
		reqBody, _ = json.Marshal(b)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, createRequest(method, path, body))
	return recorder
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out), recorder.Body.String())
	return out
}

func seedCustomer(t *testing.T, testDB *gorm.DB, name, phone string, date models.DeliveryDate) models.Customer {
	t.Helper()

	customer := models.Customer{Name: name, Phone: phone, DeliveryDate: date}
	require.NoError(t, testDB.Create(&customer).Error)
	return customer
}

func seedProduct(t *testing.T, testDB *gorm.DB, name string, price float64) models.Product {
	t.Helper()

	product := models.Product{Name: name, Price: price}
	require.NoError(t, testDB.Create(&product).Error)
	return product
}

func seedOrder(t *testing.T, testDB *gorm.DB, order models.Order) models.Order {
	t.Helper()

	require.NoError(t, testDB.Create(&order).Error)
	return order
}
