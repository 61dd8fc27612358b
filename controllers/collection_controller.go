package controllers

import (
	"net/http"

	"jewelry-shop/models"
	"jewelry-shop/services"

	"github.com/gin-gonic/gin"
)

type CollectionController struct {
	collectionService *services.CollectionService
}

func NewCollectionController(collectionService *services.CollectionService) *CollectionController {
	return &CollectionController{collectionService: collectionService}
}

// @Summary List collections
// @Tags Collections
// @Produce json
// @Success 200 {object} models.Response
// @Router /collections [get]
func (ctrl *CollectionController) GetAllCollections(c *gin.Context) {
	collections, err := ctrl.collectionService.GetAllCollections(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve collections")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Collections retrieved successfully",
		Data:    collections,
	})
}

// @Summary Get collection by ID
// @Description Get a collection and its products
// @Tags Collections
// @Produce json
// @Param id path string true "Collection ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /collections/{id} [get]
func (ctrl *CollectionController) GetCollectionByID(c *gin.Context) {
	collection, products, err := ctrl.collectionService.GetCollectionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve collection")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Collection retrieved successfully",
		Data: gin.H{
			"collection": collection,
			"products":   products,
		},
	})
}

// @Summary Create collection
// @Tags Admin - Collections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param collection body models.CreateCollectionRequest true "Collection data"
// @Success 201 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/collections [post]
func (ctrl *CollectionController) CreateCollection(c *gin.Context) {
	var req models.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	collection, err := ctrl.collectionService.CreateCollection(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create collection")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Collection created successfully",
		Data:    collection,
	})
}

// @Summary Update collection
// @Tags Admin - Collections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Collection ID"
// @Param collection body models.UpdateCollectionRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/collections/{id} [patch]
func (ctrl *CollectionController) UpdateCollection(c *gin.Context) {
	var req models.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	collection, err := ctrl.collectionService.UpdateCollection(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update collection")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Collection updated successfully",
		Data:    collection,
	})
}

// @Summary Delete collection
// @Description Soft-delete a collection (Admin)
// @Tags Admin - Collections
// @Security BearerAuth
// @Produce json
// @Param id path string true "Collection ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/collections/{id} [delete]
func (ctrl *CollectionController) DeleteCollection(c *gin.Context) {
	if err := ctrl.collectionService.DeleteCollection(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete collection")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Collection deleted successfully",
	})
}
