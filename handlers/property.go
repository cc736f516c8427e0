package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"RealEstateBackend/filters"
	"RealEstateBackend/models"
	"RealEstateBackend/seed"
	"RealEstateBackend/store"
	"RealEstateBackend/utils"
)

const (
	propertyCollection = "property"
	listCachePrefix    = "properties"
	listCacheTTL       = 60 * time.Second
)

type propertyStore interface {
	store.Lister
	GetByID(ctx context.Context, collection, id string) (bson.M, error)
}

type listCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

type PropertyController struct {
	store  propertyStore
	cache  listCache
	seeder *seed.Seeder
	log    *zap.Logger
}

func NewPropertyController(st *store.Store, cache *utils.Cache, log *zap.Logger) *PropertyController {
	return &PropertyController{
		store:  st,
		cache:  cache,
		seeder: seed.NewSeeder(st, log),
		log:    log,
	}
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	criteria := ParseFilterCriteria(c)

	cacheKey := utils.QueryCacheKey(listCachePrefix, queryParamMap(c))
	var cached []map[string]interface{}
	hit, err := pc.cache.Get(context.Background(), cacheKey, &cached)
	if err != nil {
		pc.log.Warn("failed to read property list cache", zap.Error(err))
	} else if hit {
		return c.JSON(http.StatusOK, cached)
	}

	docs := store.ListOrEmpty(context.Background(), pc.store, propertyCollection, filters.Build(criteria), pc.log)
	properties := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		properties = append(properties, utils.SerializeDoc(doc))
	}

	// An empty list is never cached: it may be a degraded result from an
	// unreachable store, and caching it would keep the outage (or a
	// pre-seed state) visible after the data is back.
	if len(properties) > 0 {
		if err := pc.cache.Set(context.Background(), cacheKey, properties, listCacheTTL); err != nil {
			pc.log.Warn("failed to cache property list", zap.Error(err))
		}
	}
	return c.JSON(http.StatusOK, properties)
}

func (pc *PropertyController) FeaturedProperties(c echo.Context) error {
	featured := true
	criteria := models.FilterCriteria{Featured: &featured}

	docs := store.ListOrEmpty(context.Background(), pc.store, propertyCollection, filters.Build(criteria), pc.log)
	properties := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		properties = append(properties, utils.SerializeDoc(doc))
	}
	return c.JSON(http.StatusOK, properties)
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	id := c.Param("id")
	doc, err := pc.store.GetByID(context.Background(), propertyCollection, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
		case errors.Is(err, store.ErrNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		default:
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Database not available"})
		}
	}
	return c.JSON(http.StatusOK, utils.SerializeDoc(doc))
}

func (pc *PropertyController) SeedProperties(c echo.Context) error {
	inserted, err := pc.seeder.Run(context.Background())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Database not available"})
	}
	if inserted > 0 {
		if err := pc.cache.DeletePrefix(context.Background(), listCachePrefix); err != nil {
			pc.log.Warn("failed to invalidate property list cache", zap.Error(err))
		}
	}
	return c.JSON(http.StatusOK, map[string]int{"inserted": inserted})
}

// ParseFilterCriteria reads the optional search query parameters. Missing or
// unparseable parameters are treated as absent.
func ParseFilterCriteria(c echo.Context) models.FilterCriteria {
	var criteria models.FilterCriteria

	if city := c.QueryParam("city"); city != "" {
		criteria.City = &city
	}
	if propertyType := c.QueryParam("property_type"); propertyType != "" {
		criteria.PropertyType = &propertyType
	}
	if minPrice := c.QueryParam("min_price"); minPrice != "" {
		if min, err := strconv.ParseFloat(minPrice, 64); err == nil {
			criteria.MinPrice = &min
		}
	}
	if maxPrice := c.QueryParam("max_price"); maxPrice != "" {
		if max, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			criteria.MaxPrice = &max
		}
	}
	if bedrooms := c.QueryParam("bedrooms"); bedrooms != "" {
		if num, err := strconv.Atoi(bedrooms); err == nil {
			criteria.Bedrooms = &num
		}
	}
	if bathrooms := c.QueryParam("bathrooms"); bathrooms != "" {
		if num, err := strconv.ParseFloat(bathrooms, 64); err == nil {
			criteria.Bathrooms = &num
		}
	}
	if q := c.QueryParam("q"); q != "" {
		criteria.Query = &q
	}
	if featured := c.QueryParam("featured"); featured != "" {
		switch featured {
		case "true":
			value := true
			criteria.Featured = &value
		case "false":
			value := false
			criteria.Featured = &value
		}
	}
	return criteria
}

func queryParamMap(c echo.Context) map[string]string {
	params := make(map[string]string)
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}
