package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fkuebler/paymirror/app/repository"
)

// AdminCustomersController renders the customer list and detail pages.
type AdminCustomersController struct {
	repos *repository.Repositories
}

func NewAdminCustomersController(repos *repository.Repositories) *AdminCustomersController {
	return &AdminCustomersController{repos: repos}
}

// HandleList renders one page of customers with search and filters applied.
func (cc *AdminCustomersController) HandleList(c *fiber.Ctx) error {
	filters := cc.repos.Customer.Filters()
	params := listParams(c, filters)

	customers, total, err := cc.repos.Customer.List(params)
	if err != nil {
		return handleError(c, "Failed to list customers", err)
	}

	return c.Render("admin/customers", fiber.Map{
		"Title":     "Customers",
		"Customers": customers,
		"Total":     total,
		"Query":     params.Query,
		"Filters":   filterViews(c, filters),
		"Page":      currentPage(c),
		"Pages":     pages(total),
	}, "layouts/admin")
}

// HandleDetail renders one customer with cards and subscriptions.
func (cc *AdminCustomersController) HandleDetail(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notFound(c)
	}
	customer, err := cc.repos.Customer.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return handleError(c, "Failed to load customer", err)
	}

	return c.Render("admin/customer_detail", fiber.Map{
		"Title":    "Customer " + customer.StripeID,
		"Customer": customer,
	}, "layouts/admin")
}
