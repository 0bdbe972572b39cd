package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/fkuebler/paymirror/app/repository"
	"github.com/fkuebler/paymirror/internal/pkg/cache"
)

const dashboardCountTTL = 60 * time.Second

// AdminController renders the dashboard over the repository layer.
type AdminController struct {
	repos *repository.Repositories
}

// NewAdminController creates a new admin controller with repository dependencies
func NewAdminController(repos *repository.Repositories) *AdminController {
	return &AdminController{
		repos: repos,
	}
}

// cachedCount serves an entity count from redis, falling back to the
// database and repopulating the cache on a miss.
func cachedCount(name string, count func() (int64, error)) (int64, error) {
	key := "admin:count:" + name
	if n, err := cache.GetInt64(key); err == nil {
		return n, nil
	}
	n, err := count()
	if err != nil {
		return 0, err
	}
	if err := cache.Set(key, n, dashboardCountTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("could not cache dashboard count")
	}
	return n, nil
}

// HandleDashboard renders per-entity record counts.
func (ac *AdminController) HandleDashboard(c *fiber.Ctx) error {
	counts := []struct {
		Name  string
		Count func() (int64, error)
	}{
		{"customers", ac.repos.Customer.Count},
		{"orders", ac.repos.Order.Count},
		{"invoices", ac.repos.Invoice.Count},
		{"charges", ac.repos.Charge.Count},
		{"plans", ac.repos.Plan.Count},
		{"subscriptions", ac.repos.Subscription.Count},
		{"coupons", ac.repos.Coupon.Count},
		{"products", ac.repos.Product.Count},
		{"skus", ac.repos.Sku.Count},
		{"transfers", ac.repos.Transfer.Count},
		{"accounts", ac.repos.Account.Count},
		{"events", ac.repos.Event.Count},
	}

	type entityCount struct {
		Name  string
		Count int64
	}
	result := make([]entityCount, 0, len(counts))
	for _, e := range counts {
		n, err := cachedCount(e.Name, e.Count)
		if err != nil {
			return handleError(c, "Failed to count "+e.Name, err)
		}
		result = append(result, entityCount{Name: e.Name, Count: n})
	}

	return c.Render("admin/dashboard", fiber.Map{
		"Title":  "Dashboard",
		"Counts": result,
	}, "layouts/admin")
}
