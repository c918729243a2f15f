package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "lokapasar/pkg/errors"
)

func newContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	c, rec := newContext(t)

	require.NoError(t, Success(c, map[string]string{"hello": "world"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
	assert.NotEmpty(t, body.Timestamp)
}

func TestErrorMapsAppErrorStatus(t *testing.T) {
	c, rec := newContext(t)

	require.NoError(t, Error(c, apperrors.NotFound("Product", nil)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "Product not found", body.Error.Message)
}

func TestErrorHidesUnknownErrors(t *testing.T) {
	c, rec := newContext(t)

	require.NoError(t, Error(c, assert.AnError))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Equal(t, "An unexpected error occurred", body.Error.Message)
}

func TestPaginatedRoundsUpTotalPages(t *testing.T) {
	c, rec := newContext(t)

	require.NoError(t, Paginated(c, []string{"a", "b", "c"}, 21, 1, 10))

	body := decode(t, rec)
	require.True(t, body.Success)

	raw, err := json.Marshal(body.Data)
	require.NoError(t, err)
	var page PaginatedResponse
	require.NoError(t, json.Unmarshal(raw, &page))
	assert.Equal(t, int64(21), page.Total)
	assert.Equal(t, 3, page.TotalPages)
}
