package api

import (
	"rentals/server/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(router *gin.Engine, db *database.Database, logger *logrus.Logger) {
	handler := NewHandler(db, logger)

	api := router.Group("/api")
	{
		api.POST("/owners", handler.AddOwner)
		api.GET("/owners/:id", handler.GetOwner)
		api.DELETE("/owners/:id", handler.DeleteOwner)
		api.GET("/owners/:id/rating", handler.GetOwnerRating)
		api.GET("/owners/:id/apartments", handler.GetOwnerApartments)
		api.PUT("/owners/:id/apartments/:apartment_id", handler.OwnerOwnsApartment)
		api.DELETE("/owners/:id/apartments/:apartment_id", handler.OwnerDropsApartment)

		api.POST("/apartments", handler.AddApartment)
		api.GET("/apartments/:id", handler.GetApartment)
		api.DELETE("/apartments/:id", handler.DeleteApartment)
		api.GET("/apartments/:id/owner", handler.GetApartmentOwner)
		api.GET("/apartments/:id/rating", handler.GetApartmentRating)

		api.POST("/customers", handler.AddCustomer)
		api.GET("/customers/:id", handler.GetCustomer)
		api.DELETE("/customers/:id", handler.DeleteCustomer)
		api.GET("/customers/:id/recommendations", handler.GetRecommendations)

		api.POST("/reservations", handler.MakeReservation)
		api.DELETE("/reservations", handler.CancelReservation)

		api.POST("/reviews", handler.AddReview)
		api.PUT("/reviews", handler.UpdateReview)

		reports := api.Group("/reports")
		{
			reports.GET("/top-customer", handler.GetTopCustomer)
			reports.GET("/reservations-per-owner", handler.GetReservationsPerOwner)
			reports.GET("/location-owners", handler.GetAllLocationOwners)
			reports.GET("/best-value", handler.GetBestValueForMoney)
			reports.GET("/profit", handler.GetProfitPerMonth)
		}
	}
}
