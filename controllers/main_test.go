package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/freelance-api/store"
	"github.com/kendall-kelly/freelance-api/testutil"
	"github.com/stretchr/testify/require"
)

// setupTestRouter wires every controller onto a bare router backed by a fresh store
func setupTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := testutil.NewTestStore(t)
	router := gin.New()

	users := NewUserController(st)
	router.GET("/users", users.ListUsers)
	router.POST("/users", users.CreateUser)
	router.GET("/users/:id", users.GetUser)
	router.PUT("/users/:id", users.UpdateUser)
	router.DELETE("/users/:id", users.DeleteUser)

	orders := NewOrderController(st)
	router.GET("/orders", orders.ListOrders)
	router.POST("/orders", orders.CreateOrder)
	router.GET("/orders/:id", orders.GetOrder)
	router.PUT("/orders/:id", orders.UpdateOrder)
	router.DELETE("/orders/:id", orders.DeleteOrder)

	offers := NewOfferController(st)
	router.GET("/offers", offers.ListOffers)
	router.POST("/offers", offers.CreateOffer)
	router.GET("/offers/:id", offers.GetOffer)
	router.PUT("/offers/:id", offers.UpdateOffer)
	router.DELETE("/offers/:id", offers.DeleteOffer)

	system := NewSystemController(st)
	router.GET("/health", system.HealthCheck)
	router.GET("/database/status", system.DatabaseStatus)

	return router, st
}

// errorCode extracts error.code from a failure envelope
func errorCode(t *testing.T, response map[string]interface{}) string {
	t.Helper()
	require.Equal(t, false, response["success"], "Failure responses should carry success=false")
	errObj, ok := response["error"].(map[string]interface{})
	require.True(t, ok, "Failure responses should carry an error object")
	code, _ := errObj["code"].(string)
	return code
}

// assertNotFound checks a 404 response with the NOT_FOUND code
func assertNotFound(t *testing.T, router http.Handler, method, path string, body interface{}) {
	t.Helper()
	w := testutil.DoJSON(t, router, method, path, body)
	require.Equal(t, http.StatusNotFound, w.Code, "%s %s should be 404, body: %s", method, path, w.Body.String())

	var response map[string]interface{}
	testutil.DecodeJSON(t, w, &response)
	require.Equal(t, "NOT_FOUND", errorCode(t, response))
}

func jsonString(t *testing.T, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}
