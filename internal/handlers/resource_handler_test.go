package handlers_test

import (
	"net/http"
	"testing"

	"GardenGuru/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResources_Board(t *testing.T) {
	router, db := newTestRouter(t)
	author := seedUser(t, db, "author")
	other := seedUser(t, db, "other")

	var resourceID string

	t.Run("create", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/resources", author,
			`{"title":"Pruning basics","type":"Video","url":"https://example.com/v"}`)
		require.Equal(t, http.StatusCreated, rr.Code)
		res := decodeBody[model.Resource](t, rr)
		assert.Equal(t, model.ResourceVideo, res.Type)
		resourceID = res.ID
	})

	t.Run("type defaults to Article", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/resources", author, `{"title":"Soil pH notes"}`)
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, model.ResourceArticle, decodeBody[model.Resource](t, rr).Type)
	})

	t.Run("title required", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/resources", author, `{"url":"https://example.com"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("list is public", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, "/api/resources", 0, "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decodeBody[[]model.Resource](t, rr), 2)
	})

	t.Run("only author deletes", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodDelete, "/api/resources/"+resourceID, other, "")
		assert.Equal(t, http.StatusForbidden, rr.Code)

		rr = doJSON(t, router, http.MethodDelete, "/api/resources/"+resourceID, author, "")
		require.Equal(t, http.StatusOK, rr.Code)

		rr = doJSON(t, router, http.MethodDelete, "/api/resources/"+resourceID, author, "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
