package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/freelance-api/models"
	"github.com/kendall-kelly/freelance-api/store"
)

// OfferRequest represents the request body for creating or replacing an offer
type OfferRequest struct {
	OrderID    *uint `json:"order_id" binding:"required"`
	ExecutorID *uint `json:"executor_id" binding:"required"`
}

func (r *OfferRequest) apply(o *models.Offer) {
	o.OrderID = *r.OrderID
	o.ExecutorID = *r.ExecutorID
}

// OfferController serves the /offers resource
type OfferController struct {
	offers *store.Repository[models.Offer]
}

// NewOfferController creates a controller backed by st
func NewOfferController(st *store.Store) *OfferController {
	return &OfferController{offers: st.Offers}
}

// ListOffers handles GET /offers
func (oc *OfferController) ListOffers(c *gin.Context) {
	offers, err := oc.offers.List(c.Request.Context())
	if err != nil {
		storeErrorResponse(c, err, "offer")
		return
	}
	c.JSON(http.StatusOK, offers)
}

// CreateOffer handles POST /offers
func (oc *OfferController) CreateOffer(c *gin.Context) {
	var req OfferRequest
	if !bindJSON(c, &req) {
		return
	}

	var offer models.Offer
	req.apply(&offer)
	if err := oc.offers.Create(c.Request.Context(), &offer); err != nil {
		storeErrorResponse(c, err, "offer")
		return
	}

	c.JSON(http.StatusCreated, offer)
}

// GetOffer handles GET /offers/:id
func (oc *OfferController) GetOffer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	offer, err := oc.offers.Get(c.Request.Context(), id)
	if err != nil {
		storeErrorResponse(c, err, "offer")
		return
	}
	c.JSON(http.StatusOK, offer)
}

// UpdateOffer handles PUT /offers/:id
func (oc *OfferController) UpdateOffer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req OfferRequest
	if !bindJSON(c, &req) {
		return
	}

	// The fetched record is mutated and saved inside one transaction
	offer, err := oc.offers.Update(c.Request.Context(), id, req.apply)
	if err != nil {
		storeErrorResponse(c, err, "offer")
		return
	}
	messageResponse(c, "offer_changed", offer)
}

// DeleteOffer handles DELETE /offers/:id
func (oc *OfferController) DeleteOffer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := oc.offers.Delete(c.Request.Context(), id); err != nil {
		storeErrorResponse(c, err, "offer")
		return
	}
	messageResponse(c, "offer_deleted", nil)
}
