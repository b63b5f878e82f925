package render

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_JSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		data := map[string]any{"key1": 1, "key2": "222"}
		JSON(w, data)
	}))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/test")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"key1":1,"key2":"222"}`+"\n", string(body))
}

func TestRender_JSONWithStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		JSONWithStatus(w, map[string]any{"id": 1}, http.StatusCreated)
	}))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/test")
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRender_ServiceError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		message := "something terrible happened"
		ServiceError(w, message, http.StatusConflict)
	}))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/test")
	require.NoError(t, err)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `{
			"error": "service_error",
			"message": "something terrible happened"
		}`,
		string(body),
	)
}

func TestRender_BindAndValidate(t *testing.T) {
	type request struct {
		Title  string  `json:"title" validate:"required,max=255"`
		Amount float64 `json:"amount" validate:"required"`
	}

	newServer := func(t *testing.T) *httptest.Server {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			value, err := BindAndValidate[request](w, r)
			if err != nil {
				return
			}
			JSON(w, value)
		}))
		t.Cleanup(ts.Close)
		return ts
	}

	t.Run("valid body", func(t *testing.T) {
		ts := newServer(t)

		resp, err := http.Post(ts.URL, "application/json", strings.NewReader(`{"title": "rent", "amount": 100}`))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"title": "rent", "amount": 100}`, string(body))
	})

	t.Run("missing required field", func(t *testing.T) {
		ts := newServer(t)

		resp, err := http.Post(ts.URL, "application/json", strings.NewReader(`{"amount": 100}`))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(body), ValidationErrorType)
		assert.Contains(t, string(body), `"title"`, "field name from the json tag should be reported")
	})

	t.Run("broken json", func(t *testing.T) {
		ts := newServer(t)

		resp, err := http.Post(ts.URL, "application/json", strings.NewReader(`{"title": `))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(body), DecodingErrorType)
	})

	t.Run("wrong field type", func(t *testing.T) {
		ts := newServer(t)

		resp, err := http.Post(ts.URL, "application/json", strings.NewReader(`{"title": 42, "amount": 100}`))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(body), "Invalid data type for field 'title'")
	})
}
