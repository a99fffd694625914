package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Register(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("ok", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/user/register", 0, `{"login":"john","password":"p"}`)
		assert.Equal(t, http.StatusOK, rr.Code)

		hasCookie := false
		for _, c := range rr.Result().Cookies() {
			if c.Name == "auth_token" {
				hasCookie = true
			}
		}
		assert.True(t, hasCookie, "Set-Cookie auth_token expected")

		body := decodeBody[map[string]any](t, rr)
		assert.Equal(t, "john", body["login"])
	})

	t.Run("conflict", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/user/register", 0, `{"login":"john","password":"p"}`)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("empty credentials", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/user/register", 0, `{"login":"","password":""}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUser_Login(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/user/register", 0, `{"login":"alice","password":"secret"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	t.Run("ok", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/user/login", 0, `{"login":"alice","password":"secret"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		hasCookie := false
		for _, c := range rr.Result().Cookies() {
			if c.Name == "auth_token" {
				hasCookie = true
			}
		}
		assert.True(t, hasCookie)
	})

	t.Run("wrong password", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/user/login", 0, `{"login":"alice","password":"bad"}`)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unknown login", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/user/login", 0, `{"login":"ghost","password":"secret"}`)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestUser_Status(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("anonymous", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/user/test", 0, "")
		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody[map[string]string](t, rr)
		assert.Equal(t, "anonymous", body["result"])
	})

	t.Run("authorized", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/user/test", 77, "")
		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody[map[string]string](t, rr)
		assert.Contains(t, body["result"], "User ID = 77")
	})
}
