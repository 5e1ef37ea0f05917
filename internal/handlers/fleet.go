package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/saverentacar/saverent-backend/internal/airtable"
	"github.com/saverentacar/saverent-backend/internal/services"
)

// FleetStore reads the vehicle inventory from the record store.
type FleetStore interface {
	ListCars(ctx context.Context) ([]airtable.Car, error)
}

// GetFleet returns the full vehicle list. Served from the Redis cache when
// warm; the record store is only hit on a miss.
func GetFleet(store FleetStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if cars, ok := services.CachedFleet(ctx); ok {
			c.JSON(200, cars)
			return
		}

		cars, err := store.ListCars(ctx)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		services.CacheFleet(ctx, cars)
		c.JSON(200, cars)
	}
}
