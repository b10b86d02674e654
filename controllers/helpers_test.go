package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/vastra-crm/app"
	"github.com/yeremiapane/vastra-crm/controllers"
	"github.com/yeremiapane/vastra-crm/models"
	"github.com/yeremiapane/vastra-crm/testutil"
	"github.com/yeremiapane/vastra-crm/utils"
)

var nov1 = time.Date(2025, time.November, 1, 11, 0, 0, 0, time.UTC)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

func setupEnv(t *testing.T) *app.Env {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return testutil.NewEnv(t, nov1)
}

func setupRouter(env *app.Env) *gin.Engine {
	r := gin.New()

	reportCtrl := controllers.NewReportController(env)
	r.GET("/dashboard", reportCtrl.Dashboard)
	r.GET("/payments", reportCtrl.Payments)
	r.GET("/reports", reportCtrl.Summary)
	r.GET("/reports/export-pdf", reportCtrl.ExportPDF)

	customerCtrl := controllers.NewCustomerController(env)
	r.GET("/customers", customerCtrl.ListCustomers)
	r.POST("/customers", customerCtrl.CreateCustomer)
	r.GET("/customers/new", customerCtrl.NewCustomerForm)
	r.GET("/customers/:code", customerCtrl.GetCustomer)

	orderCtrl := controllers.NewOrderController(env)
	r.GET("/orders", orderCtrl.ListOrders)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/new", orderCtrl.NewOrderForm)
	r.GET("/orders/:code", orderCtrl.GetOrder)
	r.POST("/orders/edit/:code", orderCtrl.UpdateOrder)
	r.PUT("/orders/:code", orderCtrl.UpdateOrder)

	followUpCtrl := controllers.NewFollowUpController(env)
	r.GET("/followups", followUpCtrl.ListFollowUps)
	r.POST("/followups", followUpCtrl.CreateFollowUp)
	return r
}

func postForm(r http.Handler, method, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func seedCustomer(t *testing.T, env *app.Env, code, name string) {
	t.Helper()
	require.NoError(t, env.DB.Create(&models.Customer{Code: code, Name: name, City: "Chennai"}).Error)
}

func seedOrder(t *testing.T, env *app.Env, o models.Order) {
	t.Helper()
	if o.OrderDate.IsZero() {
		o.OrderDate = utils.DateOf(nov1)
	}
	require.NoError(t, env.DB.Create(&o).Error)
}

func orderValues(kv ...string) url.Values {
	v := url.Values{
		"customer_id":     {"CUST0001"},
		"date":            {"2025-11-01"},
		"saree_type":      {"Banarasi"},
		"amount":          {"4500"},
		"purchase_type":   {"Online"},
		"payment_status":  {"Paid"},
		"payment_mode":    {"UPI"},
		"delivery_status": {"Pending"},
	}
	for i := 0; i+1 < len(kv); i += 2 {
		v.Set(kv[i], kv[i+1])
	}
	return v
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
