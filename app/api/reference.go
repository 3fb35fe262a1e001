package api

import (
	"context"
	"fmt"
	"net/url"

	"coalert/app/models"
)

// HTTPCategoryService implements CategoryService against the remote API
type HTTPCategoryService struct {
	client *Client
}

// NewCategoryService creates a new HTTPCategoryService
func NewCategoryService(client *Client) *HTTPCategoryService {
	return &HTTPCategoryService{client: client}
}

// List retrieves all disaster categories
func (s *HTTPCategoryService) List(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	if err := s.client.get(ctx, "/categoria-desastre", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID retrieves a category by ID
func (s *HTTPCategoryService) GetByID(ctx context.Context, id int) (*models.Category, error) {
	var category models.Category
	if err := s.client.get(ctx, fmt.Sprintf("/categoria-desastre/%d", id), &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Create creates a new category
func (s *HTTPCategoryService) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	var created models.Category
	if err := s.client.post(ctx, "/categoria-desastre", category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update updates an existing category
func (s *HTTPCategoryService) Update(ctx context.Context, category *models.Category) (*models.Category, error) {
	var updated models.Category
	if err := s.client.put(ctx, fmt.Sprintf("/categoria-desastre/%d", category.ID), category, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete deletes a category by ID
func (s *HTTPCategoryService) Delete(ctx context.Context, id int) error {
	return s.client.delete(ctx, fmt.Sprintf("/categoria-desastre/%d", id))
}

// ListByType retrieves the categories of a given type
func (s *HTTPCategoryService) ListByType(ctx context.Context, categoryType string) ([]*models.Category, error) {
	var categories []*models.Category
	path := "/categoria-desastre/tipo/" + url.PathEscape(categoryType)
	if err := s.client.get(ctx, path, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListByTitle retrieves the categories matching a title
func (s *HTTPCategoryService) ListByTitle(ctx context.Context, title string) ([]*models.Category, error) {
	var categories []*models.Category
	path := "/categoria-desastre/titulo/" + url.PathEscape(title)
	if err := s.client.get(ctx, path, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// HTTPLocationService implements LocationService against the remote API
type HTTPLocationService struct {
	client *Client
}

// NewLocationService creates a new HTTPLocationService
func NewLocationService(client *Client) *HTTPLocationService {
	return &HTTPLocationService{client: client}
}

// List retrieves all locations
func (s *HTTPLocationService) List(ctx context.Context) ([]*models.Location, error) {
	var locations []*models.Location
	if err := s.client.get(ctx, "/localizacao", &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// GetByID retrieves a location by ID
func (s *HTTPLocationService) GetByID(ctx context.Context, id int) (*models.Location, error) {
	var location models.Location
	if err := s.client.get(ctx, fmt.Sprintf("/localizacao/%d", id), &location); err != nil {
		return nil, err
	}
	return &location, nil
}

// Create creates a new location
func (s *HTTPLocationService) Create(ctx context.Context, location *models.Location) (*models.Location, error) {
	var created models.Location
	if err := s.client.post(ctx, "/localizacao", location, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update updates an existing location
func (s *HTTPLocationService) Update(ctx context.Context, location *models.Location) (*models.Location, error) {
	var updated models.Location
	if err := s.client.put(ctx, fmt.Sprintf("/localizacao/%d", location.ID), location, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete deletes a location by ID
func (s *HTTPLocationService) Delete(ctx context.Context, id int) error {
	return s.client.delete(ctx, fmt.Sprintf("/localizacao/%d", id))
}

// ListByCity retrieves the locations in a city
func (s *HTTPLocationService) ListByCity(ctx context.Context, city string) ([]*models.Location, error) {
	var locations []*models.Location
	path := "/localizacao/cidade/" + url.PathEscape(city)
	if err := s.client.get(ctx, path, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// ListByState retrieves the locations in a state
func (s *HTTPLocationService) ListByState(ctx context.Context, state string) ([]*models.Location, error) {
	var locations []*models.Location
	path := "/localizacao/estado/" + url.PathEscape(state)
	if err := s.client.get(ctx, path, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// GetByCEP retrieves the location for a CEP
func (s *HTTPLocationService) GetByCEP(ctx context.Context, cep string) (*models.Location, error) {
	var location models.Location
	path := "/localizacao/cep/" + url.PathEscape(cep)
	if err := s.client.get(ctx, path, &location); err != nil {
		return nil, err
	}
	return &location, nil
}
