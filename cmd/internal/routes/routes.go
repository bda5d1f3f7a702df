package routes

import (
	"fleetdesk/cmd/internal/domain/entity"
	"fleetdesk/cmd/internal/http/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Clients      *handler.DefaultClientRoute
	Cooperatives *handler.DefaultCooperativeRoute
	Equipment    *handler.DefaultEquipmentRoute
	Models       *handler.DefaultModelRoute
	Products     *handler.DefaultProductRoute
}

// Register mounts every API route under /api.
func Register(e *echo.Echo, h Handlers) {
	api := e.Group("/api")

	// Clients
	api.GET("/clients", h.Clients.GetClients)
	api.GET("/clients/:id", h.Clients.GetClient)
	api.GET("/clients/uuid/:uuid", h.Clients.GetClientByUUID)
	api.GET("/clients/cooperative/:cooperativeId", h.Clients.GetClientsByCooperative)
	api.POST("/clients", h.Clients.CreateClient)
	api.PUT("/clients/:id", h.Clients.UpdateClient)
	api.DELETE("/clients/:id", h.Clients.DeleteClient)

	// Cooperatives
	api.GET("/cooperatives", h.Cooperatives.GetAllCooperatives)
	api.GET("/cooperatives/paged", h.Cooperatives.GetCooperatives)
	api.GET("/cooperatives/:id", h.Cooperatives.GetCooperative)
	api.GET("/cooperatives/tax-code/:taxCode", h.Cooperatives.GetCooperativeByTaxCode)
	api.POST("/cooperatives", h.Cooperatives.CreateCooperative)
	api.PUT("/cooperatives/:id", h.Cooperatives.UpdateCooperative)
	api.DELETE("/cooperatives/:id", h.Cooperatives.DeleteCooperative)

	api.GET("/cooperatives/search", h.Cooperatives.SearchByName)
	api.GET("/cooperatives/search/paged", h.Cooperatives.SearchByNamePage)
	for _, path := range []string{
		"/cooperatives/city/:city",
		"/cooperatives/state/:state",
		"/cooperatives/active/:active",
		"/cooperatives/city/:city/state/:state",
	} {
		api.GET(path, h.Cooperatives.Search)
		api.GET(path+"/paged", h.Cooperatives.SearchPage)
	}

	// Equipment
	api.GET("/equipment", h.Equipment.GetEquipmentPage)
	api.GET("/equipment/:id", h.Equipment.GetEquipment)
	api.POST("/equipment", h.Equipment.CreateEquipment)
	api.PUT("/equipment/:id", h.Equipment.UpdateEquipment)
	api.DELETE("/equipment/:id", h.Equipment.DeleteEquipment)

	// Models
	api.GET("/models", h.Models.GetModels)
	api.GET("/models/equipment", h.Models.GetModelsOf(entity.CategoryEquipment))
	api.GET("/models/vehicles", h.Models.GetModelsOf(entity.CategoryVehicle))
	api.GET("/models/:id", h.Models.GetModel)
	api.POST("/models", h.Models.CreateModel)
	api.PUT("/models/:id", h.Models.UpdateModel)
	api.DELETE("/models/:id", h.Models.DeleteModel)

	// Products
	api.GET("/products", h.Products.GetAllProducts)
	api.GET("/products/paged", h.Products.GetProducts)
	api.GET("/products/search", h.Products.Search)
	api.GET("/products/search/paged", h.Products.SearchPage)
	api.GET("/products/:id", h.Products.GetProduct)
	api.POST("/products", h.Products.CreateProduct)
	api.PUT("/products/:id", h.Products.UpdateProduct)
	api.DELETE("/products/:id", h.Products.DeleteProduct)
}
