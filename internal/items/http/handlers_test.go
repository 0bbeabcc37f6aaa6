package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoslab/platform-api/internal/db"
	"github.com/leoslab/platform-api/internal/items/domain"
	"github.com/leoslab/platform-api/internal/items/repository"
	"github.com/leoslab/platform-api/internal/items/service"
)

func newRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	conn := db.NewTestDB(t)
	handler := New(service.NewItemService(repository.NewItemRepository(conn)))

	r := gin.New()
	handler.Register(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestCreateItem(t *testing.T) {
	r := newRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/items", map[string]any{"name": "widget"})
	require.Equal(t, http.StatusCreated, rr.Code)

	var item domain.Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &item))
	assert.NotZero(t, item.ID)
	assert.Equal(t, "widget", item.Name)
	assert.Nil(t, item.Description)
	assert.Equal(t, item.CreatedAt, item.UpdatedAt)

	// description must be serialized as an explicit null
	assert.Contains(t, rr.Body.String(), `"description":null`)
}

func TestCreateItemInvalidPayload(t *testing.T) {
	r := newRouter(t)

	for _, body := range []any{
		map[string]any{},
		map[string]any{"name": ""},
		map[string]any{"name": "   "},
		map[string]any{"name": 42},
	} {
		rr := doJSON(t, r, http.MethodPost, "/items", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body: %v", body)
		assert.Contains(t, rr.Body.String(), `"status":"error"`)
	}
}

func TestGetItemNotFound(t *testing.T) {
	r := newRouter(t)

	rr := doJSON(t, r, http.MethodGet, "/items/999", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Item not found")
}

func TestGetItemInvalidID(t *testing.T) {
	r := newRouter(t)

	rr := doJSON(t, r, http.MethodGet, "/items/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestItemLifecycle(t *testing.T) {
	r := newRouter(t)

	// create
	rr := doJSON(t, r, http.MethodPost, "/items", map[string]any{
		"name":        "widget",
		"description": "a widget",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created domain.Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	// read back
	rr = doJSON(t, r, http.MethodGet, "/items/"+itoa(created.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got domain.Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "widget", got.Name)

	// update
	rr = doJSON(t, r, http.MethodPut, "/items/"+itoa(created.ID), map[string]any{"name": "gadget"})
	require.Equal(t, http.StatusOK, rr.Code)

	var updated domain.Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "gadget", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "a widget", *updated.Description)

	// delete returns no body
	rr = doJSON(t, r, http.MethodDelete, "/items/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	// further operations report not found
	rr = doJSON(t, r, http.MethodGet, "/items/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, r, http.MethodDelete, "/items/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, r, http.MethodPut, "/items/"+itoa(created.ID), map[string]any{"name": "ghost"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateItemInvalidPayload(t *testing.T) {
	r := newRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/items", map[string]any{"name": "widget"})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created domain.Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	rr = doJSON(t, r, http.MethodPut, "/items/"+itoa(created.ID), map[string]any{"name": ""})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListItems(t *testing.T) {
	r := newRouter(t)

	rr := doJSON(t, r, http.MethodGet, "/items", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())

	doJSON(t, r, http.MethodPost, "/items", map[string]any{"name": "one"})
	doJSON(t, r, http.MethodPost, "/items", map[string]any{"name": "two"})

	rr = doJSON(t, r, http.MethodGet, "/items", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var items []domain.Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "one", items[0].Name)
	assert.Equal(t, "two", items[1].Name)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
