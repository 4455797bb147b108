package api

import (
	"net/http"
	"os"
	"rentals/server/internal/database"
	"rentals/server/internal/models"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	db     *database.Database
	logger *logrus.Logger
}

type ReservationRequest struct {
	CustomerID  int     `json:"customer_id"`
	ApartmentID int     `json:"apartment_id"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	TotalPrice  float64 `json:"total_price"`
}

type CancellationQuery struct {
	CustomerID  int    `form:"customer_id"`
	ApartmentID int    `form:"apartment_id"`
	StartDate   string `form:"start_date" binding:"required"`
}

type ReviewRequest struct {
	CustomerID  int    `json:"customer_id"`
	ApartmentID int    `json:"apartment_id"`
	Date        string `json:"date" binding:"required"`
	Rating      int    `json:"rating"`
	Text        string `json:"review_text"`
}

func NewHandler(db *database.Database, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		db:     db,
		logger: logger,
	}
}

// statusFor maps a data layer result to the HTTP status returned to clients
func statusFor(result models.ReturnValue, success int) int {
	switch result {
	case models.OK:
		return success
	case models.BadParams:
		return http.StatusBadRequest
	case models.NotExists:
		return http.StatusNotFound
	case models.AlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) respond(c *gin.Context, result models.ReturnValue, success int) {
	if result != models.OK {
		h.logger.WithFields(logrus.Fields{
			"path":   c.FullPath(),
			"result": result.String(),
		}).Info("Request rejected")
	}
	c.JSON(statusFor(result, success), gin.H{"result": result.String()})
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	h.logger.WithError(err).WithField("path", c.FullPath()).Info("Failed to parse request")
	c.JSON(http.StatusBadRequest, gin.H{"result": models.BadParams.String()})
}

func (h *Handler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"result": models.NotExists.String()})
}

// idParam reads a path parameter, returning 0 when it is not a number so the
// data layer rejects it
func idParam(c *gin.Context, name string) int {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0
	}
	return id
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(models.DateLayout, value)
}

func (h *Handler) AddOwner(c *gin.Context) {
	var owner models.Owner
	if err := c.ShouldBindJSON(&owner); err != nil {
		h.badRequest(c, err)
		return
	}
	h.respond(c, h.db.AddOwner(c.Request.Context(), owner), http.StatusCreated)
}

func (h *Handler) GetOwner(c *gin.Context) {
	owner := h.db.GetOwner(c.Request.Context(), idParam(c, "id"))
	if owner.IsBad() {
		h.notFound(c)
		return
	}
	c.JSON(http.StatusOK, owner)
}

func (h *Handler) DeleteOwner(c *gin.Context) {
	h.respond(c, h.db.DeleteOwner(c.Request.Context(), idParam(c, "id")), http.StatusOK)
}

func (h *Handler) GetOwnerApartments(c *gin.Context) {
	c.JSON(http.StatusOK, h.db.GetOwnerApartments(c.Request.Context(), idParam(c, "id")))
}

func (h *Handler) GetOwnerRating(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rating": h.db.GetOwnerRating(c.Request.Context(), idParam(c, "id"))})
}

func (h *Handler) OwnerOwnsApartment(c *gin.Context) {
	result := h.db.OwnerOwnsApartment(c.Request.Context(), idParam(c, "id"), idParam(c, "apartment_id"))
	h.respond(c, result, http.StatusCreated)
}

func (h *Handler) OwnerDropsApartment(c *gin.Context) {
	result := h.db.OwnerDropsApartment(c.Request.Context(), idParam(c, "id"), idParam(c, "apartment_id"))
	h.respond(c, result, http.StatusOK)
}

func (h *Handler) AddApartment(c *gin.Context) {
	var apartment models.Apartment
	if err := c.ShouldBindJSON(&apartment); err != nil {
		h.badRequest(c, err)
		return
	}
	h.respond(c, h.db.AddApartment(c.Request.Context(), apartment), http.StatusCreated)
}

func (h *Handler) GetApartment(c *gin.Context) {
	apartment := h.db.GetApartment(c.Request.Context(), idParam(c, "id"))
	if apartment.IsBad() {
		h.notFound(c)
		return
	}
	c.JSON(http.StatusOK, apartment)
}

func (h *Handler) DeleteApartment(c *gin.Context) {
	h.respond(c, h.db.DeleteApartment(c.Request.Context(), idParam(c, "id")), http.StatusOK)
}

func (h *Handler) GetApartmentOwner(c *gin.Context) {
	owner := h.db.GetApartmentOwner(c.Request.Context(), idParam(c, "id"))
	if owner.IsBad() {
		h.notFound(c)
		return
	}
	c.JSON(http.StatusOK, owner)
}

func (h *Handler) GetApartmentRating(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rating": h.db.GetApartmentRating(c.Request.Context(), idParam(c, "id"))})
}

func (h *Handler) AddCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		h.badRequest(c, err)
		return
	}
	h.respond(c, h.db.AddCustomer(c.Request.Context(), customer), http.StatusCreated)
}

func (h *Handler) GetCustomer(c *gin.Context) {
	customer := h.db.GetCustomer(c.Request.Context(), idParam(c, "id"))
	if customer.IsBad() {
		h.notFound(c)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	h.respond(c, h.db.DeleteCustomer(c.Request.Context(), idParam(c, "id")), http.StatusOK)
}

func (h *Handler) GetRecommendations(c *gin.Context) {
	c.JSON(http.StatusOK, h.db.GetApartmentRecommendation(c.Request.Context(), idParam(c, "id")))
}

func (h *Handler) MakeReservation(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		h.badRequest(c, err)
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	result := h.db.CustomerMadeReservation(c.Request.Context(), req.CustomerID, req.ApartmentID, start, end, req.TotalPrice)
	h.respond(c, result, http.StatusCreated)
}

func (h *Handler) CancelReservation(c *gin.Context) {
	var query CancellationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.badRequest(c, err)
		return
	}
	start, err := parseDate(query.StartDate)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	result := h.db.CustomerCancelledReservation(c.Request.Context(), query.CustomerID, query.ApartmentID, start)
	h.respond(c, result, http.StatusOK)
}

func (h *Handler) AddReview(c *gin.Context) {
	req, date, ok := h.bindReview(c)
	if !ok {
		return
	}
	result := h.db.CustomerReviewedApartment(c.Request.Context(), req.CustomerID, req.ApartmentID, date, req.Rating, req.Text)
	h.respond(c, result, http.StatusCreated)
}

func (h *Handler) UpdateReview(c *gin.Context) {
	req, date, ok := h.bindReview(c)
	if !ok {
		return
	}
	result := h.db.CustomerUpdatedReview(c.Request.Context(), req.CustomerID, req.ApartmentID, date, req.Rating, req.Text)
	h.respond(c, result, http.StatusOK)
}

func (h *Handler) bindReview(c *gin.Context) (ReviewRequest, time.Time, bool) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return req, time.Time{}, false
	}
	date, err := parseDate(req.Date)
	if err != nil {
		h.badRequest(c, err)
		return req, time.Time{}, false
	}
	return req, date, true
}

func (h *Handler) GetTopCustomer(c *gin.Context) {
	customer := h.db.GetTopCustomer(c.Request.Context())
	if customer.IsBad() {
		h.notFound(c)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) GetReservationsPerOwner(c *gin.Context) {
	c.JSON(http.StatusOK, h.db.ReservationsPerOwner(c.Request.Context()))
}

func (h *Handler) GetAllLocationOwners(c *gin.Context) {
	c.JSON(http.StatusOK, h.db.GetAllLocationOwners(c.Request.Context()))
}

func (h *Handler) GetBestValueForMoney(c *gin.Context) {
	apartment := h.db.BestValueForMoney(c.Request.Context())
	if apartment.IsBad() {
		h.notFound(c)
		return
	}
	c.JSON(http.StatusOK, apartment)
}

func (h *Handler) GetProfitPerMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		h.badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.db.ProfitPerMonth(c.Request.Context(), year))
}
