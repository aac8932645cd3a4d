package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiprakart/seller-backend/api/controllers"
	"github.com/shiprakart/seller-backend/api/middleware"
	"github.com/shiprakart/seller-backend/api/responses"
	"github.com/shiprakart/seller-backend/internal/bulkimport"
	"github.com/shiprakart/seller-backend/internal/catalog"
	"github.com/shiprakart/seller-backend/internal/hierarchy"
	"github.com/shiprakart/seller-backend/internal/identity"
	"github.com/shiprakart/seller-backend/internal/inventory"
	"github.com/shiprakart/seller-backend/internal/onboarding"
	"github.com/shiprakart/seller-backend/internal/orders"
	"github.com/shiprakart/seller-backend/pkg/config"
	"github.com/shiprakart/seller-backend/pkg/logger"
	"github.com/shiprakart/seller-backend/pkg/storage"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Config *config.Config
	Logger *logger.Logger

	Identity   identity.Service
	Onboarding onboarding.Service
	Hierarchy  hierarchy.Service
	Catalog    catalog.Service
	Inventory  inventory.Service
	BulkImport bulkimport.Service
	Orders     orders.Service

	Store storage.ObjectStore
	DB    controllers.Pinger
	Cache controllers.Pinger
}

// NewRouter assembles the middleware chain and all route groups.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer(d.Logger))
	r.Use(middleware.RequestID(d.Logger))
	r.Use(middleware.Logging(d.Logger))
	r.Use(middleware.CORS(d.Config.App.CORSOrigins))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteMessageFailure(w, http.StatusNotFound, "Endpoint not found. Check your URL.")
	})

	authn := middleware.Auth(d.Config.JWT, d.Logger)
	owner := middleware.ProductOwner(d.Catalog, d.Logger)
	maxMB := d.Config.BulkUpload.MaxUploadMB

	r.Get("/health/live", controllers.HealthLive())
	r.Get("/health/ready", controllers.HealthReady(d.DB, d.Cache, d.Logger))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.Login(d.Identity, d.Logger))
			r.Post("/login-email", controllers.LoginEmail(d.Identity, d.Logger))

			r.Group(func(r chi.Router) {
				r.Use(authn)
				r.Put("/onboard/gst", controllers.RecordGST(d.Onboarding, d.Logger))
				r.Put("/onboard/basic-info", controllers.RecordBasicInfo(d.Onboarding, d.Store, maxMB, d.Logger))
				r.Put("/onboard/bank", controllers.RecordBank(d.Onboarding, d.Store, maxMB, d.Logger))
				r.Get("/onboarding-status", controllers.OnboardingStatus(d.Onboarding, d.Logger))
			})
		})

		r.Route("/brand", func(r chi.Router) {
			r.Use(authn)
			r.Post("/onboard/brand", controllers.RecordBrand(d.Onboarding, d.Store, maxMB, d.Logger))
		})

		r.Route("/warehouse", func(r chi.Router) {
			r.Use(authn)
			r.Post("/add", controllers.AddWarehouse(d.Onboarding, d.Logger))
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/tree", controllers.CategoryTree(d.Hierarchy, d.Logger))
			r.Get("/sub/{subId}/types", controllers.ProductTypes(d.Hierarchy, d.Logger))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/{handle}", controllers.GetProductByHandle(d.Catalog, d.Logger))

			r.Group(func(r chi.Router) {
				r.Use(authn)
				r.Post("/", controllers.CreateProduct(d.Catalog, d.Logger))
				r.Post("/bulk-upload", controllers.BulkUpload(d.BulkImport, d.Config.BulkUpload.TempDir, maxMB, d.Logger))
				r.Post("/update-stock", controllers.UpdateStock(d.Inventory, d.Logger))
				r.Post("/{productId}/variants", controllers.AddVariants(d.Catalog, d.Logger))

				r.Group(func(r chi.Router) {
					r.Use(owner)
					r.Delete("/{productId}", controllers.DeleteProduct(d.Catalog, d.Logger))
					r.Post("/{productId}/images", controllers.UploadImages(d.Catalog, maxMB, d.Logger))
				})
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(authn)
			r.Get("/my-orders", controllers.MyOrders(d.Orders, d.Logger))
			r.Get("/seller/dashboard", controllers.Dashboard(d.Orders, d.Logger))
			r.Patch("/item/{orderItemId}/status", controllers.UpdateItemStatus(d.Orders, d.Logger))
		})
	})

	return r
}
