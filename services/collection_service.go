package services

import (
	"context"

	"jewelry-shop/models"
	"jewelry-shop/repositories"
)

type CollectionService struct {
	collectionRepo *repositories.CollectionRepository
	productRepo    *repositories.ProductRepository
}

func NewCollectionService(collectionRepo *repositories.CollectionRepository, productRepo *repositories.ProductRepository) *CollectionService {
	return &CollectionService{collectionRepo: collectionRepo, productRepo: productRepo}
}

func (s *CollectionService) GetAllCollections(ctx context.Context) ([]models.Collection, error) {
	return s.collectionRepo.FindAll(ctx)
}

// GetCollectionByID returns the collection along with its first page of
// products.
func (s *CollectionService) GetCollectionByID(ctx context.Context, id string) (*models.Collection, []models.Product, error) {
	collection, err := s.collectionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	products, _, err := s.productRepo.FindAll(ctx, models.ProductFilter{
		CollectionID: id,
		Limit:        50,
	})
	if err != nil {
		return nil, nil, err
	}
	return collection, products, nil
}

func (s *CollectionService) CreateCollection(ctx context.Context, req models.CreateCollectionRequest) (*models.Collection, error) {
	collection := &models.Collection{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := s.collectionRepo.Create(ctx, collection); err != nil {
		return nil, err
	}
	return collection, nil
}

func (s *CollectionService) UpdateCollection(ctx context.Context, id string, req models.UpdateCollectionRequest) (*models.Collection, error) {
	collection, err := s.collectionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		collection.Name = *req.Name
	}
	if req.Slug != nil {
		collection.Slug = *req.Slug
	}
	if req.Description != nil {
		collection.Description = *req.Description
	}
	if req.ImageURL != nil {
		collection.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		collection.IsActive = *req.IsActive
	}

	if err := s.collectionRepo.Update(ctx, collection); err != nil {
		return nil, err
	}
	return collection, nil
}

func (s *CollectionService) DeleteCollection(ctx context.Context, id string) error {
	return s.collectionRepo.Delete(ctx, id)
}
