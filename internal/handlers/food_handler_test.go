package handlers_test

import (
	"net/http"
	"testing"

	"github.com/khalilrez/food-log-api/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFood_CRUD(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(t, http.MethodPost, "/food", foodBody(1, "oats", 300), "")
	assert.Equal(t, http.StatusCreated, rr.Code)
	created := decode[model.Food](t, rr)
	assert.Equal(t, model.Food{ID: 1, Name: "oats", ServingSize: "1 cup", KcalPerServing: 300, ProteinGrams: 2.5}, created)

	// повторный POST с тем же id перезаписывает
	rr = app.do(t, http.MethodPost, "/food", foodBody(1, "rolled oats", 280), "")
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = app.do(t, http.MethodGet, "/food/1", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "rolled oats", decode[model.Food](t, rr).Name)

	app.do(t, http.MethodPost, "/food", foodBody(2, "milk", 100), "")
	rr = app.do(t, http.MethodGet, "/food/all", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]model.Food](t, rr), 2)

	rr = app.do(t, http.MethodPut, "/food/2", foodBody(99, "skim milk", 80), "")
	assert.Equal(t, http.StatusOK, rr.Code)
	updated := decode[model.Food](t, rr)
	assert.Equal(t, int64(2), updated.ID)
	assert.Equal(t, "skim milk", updated.Name)

	rr = app.do(t, http.MethodDelete, "/food/2", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
}

func TestFood_NotFoundIsConsistent(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/food/7", nil, "").Code)
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodPut, "/food/7", foodBody(7, "x", 1), "").Code)
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodDelete, "/food/7", nil, "").Code)
}

func TestFood_Validation(t *testing.T) {
	app := newTestApp(t)

	body := foodBody(1, "oats", -1)
	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/food", body, "").Code)

	body = foodBody(1, "", 10)
	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/food", body, "").Code)

	body = foodBody(1, "oats", 10)
	delete(body, "kcal_per_serving")
	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/food", body, "").Code)

	// ноль калорий допустим
	assert.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/food", foodBody(2, "water", 0), "").Code)

	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodGet, "/food/abc", nil, "").Code)
}

func TestFood_UpdateZeroID(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/food", foodBody(0, "water", 0), "").Code)

	rr := app.do(t, http.MethodPut, "/food/0", foodBody(0, "tea", 2), "")
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = app.do(t, http.MethodGet, "/food/0", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "tea", decode[model.Food](t, rr).Name)
}
