package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/linemk/storefront/internal/app/handlers"
	"github.com/linemk/storefront/internal/lib/logger/handlers/urllog"
	"github.com/linemk/storefront/internal/service"
)

// RouterServices — сервисы, которые раздаются по маршрутам.
type RouterServices struct {
	Contact service.ContactService
	Product service.ProductService
	Order   service.OrderService
	Upload  service.UploadService
}

// NewRouter собирает chi-роутер со сквозными middleware и всеми маршрутами.
// scratchDir отдается статикой по /uploads, туда же складываются принятые файлы.
func NewRouter(log *slog.Logger, svc RouterServices, scratchDir string) http.Handler {
	router := chi.NewRouter()

	// настройка middleware
	router.Use(middleware.RequestID)
	router.Use(urllog.CustomLoggerMiddleware(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	router.Get("/contact", handlers.ListContactsHandler(log, svc.Contact))
	router.Get("/products", handlers.ListProductsHandler(log, svc.Product))
	router.Get("/orders", handlers.ListOrdersHandler(log, svc.Order))

	router.Post("/contact", handlers.CreateContactHandler(log, svc.Contact))
	router.Post("/order", handlers.CreateOrderHandler(log, svc.Order))
	router.Post("/upload", handlers.UploadHandler(log, svc.Upload, scratchDir))
	router.Post("/add", handlers.CreateProductHandler(log, svc.Product))
	router.Post("/update", handlers.UpdateProductHandler(log, svc.Product))

	router.Post("/delete/product", handlers.DeleteProductHandler(log, svc.Product))
	router.Post("/delete/contact", handlers.DeleteContactHandler(log, svc.Contact))
	router.Post("/delete/order", handlers.DeleteOrderHandler(log, svc.Order))

	// принятые файлы доступны обратно как статика
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(scratchDir)))
	router.Get("/uploads/*", fileServer.ServeHTTP)

	return router
}
