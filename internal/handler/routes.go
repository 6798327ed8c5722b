package handler

import (
	"naplan-prep/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every API handler.
type Handlers struct {
	Catalog  *CatalogHandler
	Admin    *AdminHandler
	Purchase *PurchaseHandler
	Feedback *FeedbackHandler
}

// Register mounts the API routes on api. adminAuth guards the /admin group
// and the purchase state transitions; creating a purchase and reading a
// child's quizzes stay public.
func Register(api fiber.Router, h Handlers, adminAuth fiber.Handler) {
	vm := middleware.NewValidationMiddleware()

	api.Get("/bundles", vm.ValidateYearQuery(), h.Catalog.ListBundles)
	api.Get("/bundles/:bundleId", vm.ValidateIDParam("bundleId"), h.Catalog.GetBundle)

	admin := api.Group("/admin", adminAuth)
	admin.Post("/sync", h.Admin.RunSync)
	admin.Get("/sync/latest", h.Admin.LatestSync)
	admin.Get("/sync/unparseable", h.Admin.Unparseable)
	admin.Post("/quizzes/parse", h.Admin.ParseQuizzes)

	purchases := api.Group("/purchases")
	purchases.Post("/", h.Purchase.CreatePurchase)
	purchases.Post("/:id/paid", adminAuth, vm.ValidateIDParam("id"), h.Purchase.MarkPaid)
	purchases.Post("/:id/provision", adminAuth, vm.ValidateIDParam("id"), h.Purchase.Provision)
	purchases.Post("/:id/failed", adminAuth, vm.ValidateIDParam("id"), h.Purchase.MarkFailed)

	api.Get("/children/:childId/quizzes", vm.ValidateIDParam("childId"), h.Purchase.ChildQuizzes)

	api.Post("/feedback/writing", h.Feedback.EvaluateWriting)
	api.Post("/feedback/subject", h.Feedback.EvaluateSubject)
}
