package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/swaggo/swag"

	"github.com/jhoicas/ilms-api/internal/application/inventory"
	appmirror "github.com/jhoicas/ilms-api/internal/application/mirror"
	"github.com/jhoicas/ilms-api/internal/application/trace"
	"github.com/jhoicas/ilms-api/internal/application/usecase"
	"github.com/jhoicas/ilms-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	Log         *logger.Logger
	InventoryUC *inventory.UseCase
	TraceUC     *trace.UseCase
	WarehouseUC *usecase.WarehouseUseCase
	MaterialUC  *usecase.MaterialUseCase
	PackagingUC *usecase.PackagingUseCase
	LabelUC     *usecase.LabelTemplateUseCase
	Mirror      *appmirror.Job
}

// Router registra middlewares y rutas de la API. CORS abierto a cualquier origen.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: "*"}))
	if deps.Log != nil {
		app.Use(RequestLogger(deps.Log.Component("http")))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	app.Get("/api/docs/doc.json", swaggerDoc)

	api := app.Group("/api")

	// Inventory (counts antes de :serial)
	invHandler := NewInventoryHandler(deps.InventoryUC)
	inv := api.Group("/inventory")
	inv.Get("/", invHandler.List)
	inv.Get("/counts", invHandler.Counts)
	inv.Post("/register-batch", invHandler.RegisterBatch)
	inv.Post("/pack-box", invHandler.PackBox)
	inv.Get("/:serial", invHandler.GetBySerial)

	containerHandler := NewContainerHandler(deps.InventoryUC)
	containers := api.Group("/containers")
	containers.Get("/", containerHandler.List)
	containers.Post("/", containerHandler.Create)
	containers.Get("/:serial", containerHandler.Get)
	containers.Get("/:serial/contents", containerHandler.Contents)
	containers.Post("/:serial/nest", containerHandler.Nest)
	containers.Post("/:serial/seal", containerHandler.Seal)

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses := api.Group("/warehouses")
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Save)
	warehouses.Get("/:code", warehouseHandler.Get)
	warehouses.Put("/:code", warehouseHandler.Update)
	warehouses.Delete("/:code", warehouseHandler.Delete)
	api.Get("/locations/:id", warehouseHandler.Location)

	labelHandler := NewLabelTemplateHandler(deps.LabelUC)
	labels := api.Group("/label-templates")
	labels.Get("/", labelHandler.List)
	labels.Post("/", labelHandler.Create)
	labels.Get("/:id", labelHandler.Get)
	labels.Put("/:id", labelHandler.Update)
	labels.Delete("/:id", labelHandler.Delete)
	labels.Get("/:id/render", labelHandler.Render)
	labels.Get("/:id/export", labelHandler.Export)

	// Trace (events antes de :serial)
	traceHandler := NewTraceHandler(deps.TraceUC)
	tr := api.Group("/trace")
	tr.Post("/events", traceHandler.RecordEvent)
	tr.Get("/:serial", traceHandler.History)
	tr.Get("/:serial/qr", traceHandler.QR)

	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials := api.Group("/materials")
	materials.Get("/", materialHandler.List)
	materials.Post("/", materialHandler.Save)
	materials.Get("/:code", materialHandler.Get)
	materials.Put("/:code", materialHandler.Update)
	materials.Delete("/:code", materialHandler.Delete)
	materials.Get("/:code/images", materialHandler.ListImages)
	materials.Post("/:code/images", materialHandler.AddImage)
	materials.Get("/:code/documents", materialHandler.ListDocuments)
	materials.Post("/:code/documents", materialHandler.AddDocument)

	packagingHandler := NewPackagingHandler(deps.PackagingUC)
	packaging := api.Group("/packaging-hierarchy")
	packaging.Get("/", packagingHandler.List)
	packaging.Post("/", packagingHandler.Create)
	packaging.Get("/:id", packagingHandler.Get)
	packaging.Put("/:id", packagingHandler.Update)
	packaging.Delete("/:id", packagingHandler.Delete)

	syncHandler := NewSyncHandler(deps.Mirror)
	api.Post("/sync/mirror", syncHandler.Mirror)

	// rutas desconocidas: 404 sin cuerpo
	app.Use(func(c *fiber.Ctx) error {
		c.Status(fiber.StatusNotFound)
		return nil
	})
}

// swaggerDoc sirve el documento OpenAPI registrado por el paquete docs.
func swaggerDoc(c *fiber.Ctx) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.SendString(doc)
}
