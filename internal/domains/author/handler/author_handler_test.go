package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookfinder-backend/internal/domains/author"
	"bookfinder-backend/internal/shared/apierror"
)

type fakeService struct {
	err error
}

func (f *fakeService) Register(ctx context.Context, a *author.Author) (*author.Author, error) {
	if f.err != nil {
		return nil, f.err
	}
	a.ID = 1
	return a, nil
}

func (f *fakeService) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	if f.err != nil {
		return nil, f.err
	}
	return a, nil
}

func setupRouter(svc author.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthorHandler(svc)

	router := gin.New()
	router.POST("/author", h.Register)
	router.PUT("/author", h.Update)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, "/author", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	t.Run("persists and echoes the author", func(t *testing.T) {
		w := doJSON(t, setupRouter(&fakeService{}), http.MethodPost,
			`{"name":"Haruki Murakami","birthDate":"1949-01-12"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"name":"Haruki Murakami","birthDate":"1949-01-12"}`, w.Body.String())
	})

	t.Run("malformed date in body", func(t *testing.T) {
		w := doJSON(t, setupRouter(&fakeService{}), http.MethodPost,
			`{"name":"X","birthDate":"12/01/1949"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var body apierror.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Invalid field value.", body.Message)
		assert.Equal(t, "/author", body.Path)
	})

	t.Run("blank name", func(t *testing.T) {
		w := doJSON(t, setupRouter(&fakeService{}), http.MethodPost,
			`{"name":"","birthDate":"1949-01-12"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var body apierror.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body.Message, "name must not be blank")
	})
}

func TestUpdate(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		w := doJSON(t, setupRouter(&fakeService{}), http.MethodPut,
			`{"name":"Haruki Murakami","birthDate":"1949-01-12"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var body apierror.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body.Message, "id must not be null")
	})

	t.Run("updates an existing author", func(t *testing.T) {
		w := doJSON(t, setupRouter(&fakeService{}), http.MethodPut,
			`{"id":7,"name":"Murakami Haruki","birthDate":"1949-01-12"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":7,"name":"Murakami Haruki","birthDate":"1949-01-12"}`, w.Body.String())
	})

	t.Run("repository failure surfaces as 500 with the generic message", func(t *testing.T) {
		svc := &fakeService{err: apierror.New(apierror.DbAccess, "")}
		w := doJSON(t, setupRouter(svc), http.MethodPut,
			`{"id":7,"name":"Murakami Haruki","birthDate":"1949-01-12"}`)

		require.Equal(t, http.StatusInternalServerError, w.Code)

		var body apierror.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, http.StatusInternalServerError, body.Status)
		assert.Equal(t, "Internal Server Error", body.Error)
		assert.Equal(t, "An error occurred while connecting to the database.", body.Message)
	})
}
