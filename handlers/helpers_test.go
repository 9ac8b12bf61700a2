package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"restaurant-orders-api/config"
	"restaurant-orders-api/handlers"
	"restaurant-orders-api/routes"
	"restaurant-orders-api/store"
)

func newTestAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := config.InitDB("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)

	api := gin.New()
	routes.SetupRoutes(api, handlers.New(store.NewSQL(db), zerolog.Nop()))
	return api, db
}

func do(t *testing.T, api http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	api.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), into))
}

func validRestaurant() map[string]interface{} {
	return map[string]interface{}{
		"name":     "Taizu",
		"isKosher": false,
		"cuisines": []string{"asian", "fusion"},
	}
}

// createRestaurant posts a valid restaurant and returns its assigned id.
func createRestaurant(t *testing.T, api http.Handler) int64 {
	t.Helper()
	w := do(t, api, http.MethodPost, "/restaurants", validRestaurant())
	require.Equal(t, http.StatusCreated, w.Code)

	var list []struct {
		ID int64 `json:"id"`
	}
	w = do(t, api, http.MethodGet, "/restaurants", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &list)
	require.NotEmpty(t, list)
	return list[len(list)-1].ID
}

func addDish(t *testing.T, api http.Handler, restaurantID int64, name string, price float64) {
	t.Helper()
	w := do(t, api, http.MethodPost, restaurantPath(restaurantID)+"/dishes", map[string]interface{}{
		"name":        name,
		"description": "",
		"price":       price,
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func restaurantPath(id int64) string {
	return "/restaurants/" + strconv.FormatInt(id, 10)
}
