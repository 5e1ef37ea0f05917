package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/saverentacar/saverent-backend/internal/airtable"
	"github.com/saverentacar/saverent-backend/internal/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFleetStore struct {
	cars []airtable.Car
	err  error
}

func (f *fakeFleetStore) ListCars(ctx context.Context) ([]airtable.Car, error) {
	return f.cars, f.err
}

func fleetRouter(store handlers.FleetStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/fleet", handlers.GetFleet(store))
	return r
}

func TestGetFleet(t *testing.T) {
	t.Run("returns the normalized car list", func(t *testing.T) {
		price := 25.0
		count := 0.0
		image := "https://cdn.example.com/corolla.jpg"
		store := &fakeFleetStore{cars: []airtable.Car{
			{
				ID:       "rec1",
				Name:     "Toyota Corolla",
				Category: "Economy",
				ImageURL: &image,
				Price:    &price,
				Count:    &count,
				Colors:   "White",
				Bookings: []string{},
			},
			{ID: "rec2", Name: "Bare Record", Bookings: []string{}},
		}}

		req := httptest.NewRequest("GET", "/api/fleet", nil)
		w := httptest.NewRecorder()
		fleetRouter(store).ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)

		var cars []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cars))
		require.Len(t, cars, 2)

		assert.Equal(t, "Toyota Corolla", cars[0]["name"])
		// a sold-out car still reports its zero count, the page gates on it
		assert.Equal(t, 0.0, cars[0]["count"])
		assert.Equal(t, image, cars[0]["imageUrl"])

		// blank record-store fields stay null rather than becoming zeros
		assert.Nil(t, cars[1]["imageUrl"])
		assert.Nil(t, cars[1]["price"])
		assert.Nil(t, cars[1]["count"])
	})

	t.Run("surfaces read failures as a server error", func(t *testing.T) {
		store := &fakeFleetStore{err: fmt.Errorf("record store returned status 503")}

		req := httptest.NewRequest("GET", "/api/fleet", nil)
		w := httptest.NewRecorder()
		fleetRouter(store).ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error": "record store returned status 503"}`, w.Body.String())
	})
}
