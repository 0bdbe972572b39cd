package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fkuebler/paymirror/app/repository"
)

// AdminBillingController renders the billing-side listings: orders, invoices,
// charges and subscriptions.
type AdminBillingController struct {
	repos *repository.Repositories
}

func NewAdminBillingController(repos *repository.Repositories) *AdminBillingController {
	return &AdminBillingController{repos: repos}
}

func (bc *AdminBillingController) HandleOrders(c *fiber.Ctx) error {
	filters := bc.repos.Order.Filters()
	params := listParams(c, filters)

	orders, total, err := bc.repos.Order.List(params)
	if err != nil {
		return handleError(c, "Failed to list orders", err)
	}

	return c.Render("admin/orders", fiber.Map{
		"Title":   "Orders",
		"Orders":  orders,
		"Total":   total,
		"Query":   params.Query,
		"Filters": filterViews(c, filters),
		"Page":    currentPage(c),
		"Pages":   pages(total),
	}, "layouts/admin")
}

func (bc *AdminBillingController) HandleOrderDetail(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notFound(c)
	}
	order, err := bc.repos.Order.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return handleError(c, "Failed to load order", err)
	}

	return c.Render("admin/order_detail", fiber.Map{
		"Title": "Order " + order.StripeID,
		"Order": order,
	}, "layouts/admin")
}

func (bc *AdminBillingController) HandleInvoices(c *fiber.Ctx) error {
	filters := bc.repos.Invoice.Filters()
	params := listParams(c, filters)

	invoices, total, err := bc.repos.Invoice.List(params)
	if err != nil {
		return handleError(c, "Failed to list invoices", err)
	}

	return c.Render("admin/invoices", fiber.Map{
		"Title":    "Invoices",
		"Invoices": invoices,
		"Total":    total,
		"Query":    params.Query,
		"Filters":  filterViews(c, filters),
		"Page":     currentPage(c),
		"Pages":    pages(total),
	}, "layouts/admin")
}

func (bc *AdminBillingController) HandleInvoiceDetail(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notFound(c)
	}
	invoice, err := bc.repos.Invoice.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return handleError(c, "Failed to load invoice", err)
	}

	return c.Render("admin/invoice_detail", fiber.Map{
		"Title":   "Invoice " + invoice.StripeID,
		"Invoice": invoice,
	}, "layouts/admin")
}

func (bc *AdminBillingController) HandleCharges(c *fiber.Ctx) error {
	filters := bc.repos.Charge.Filters()
	params := listParams(c, filters)

	charges, total, err := bc.repos.Charge.List(params)
	if err != nil {
		return handleError(c, "Failed to list charges", err)
	}

	return c.Render("admin/charges", fiber.Map{
		"Title":   "Charges",
		"Charges": charges,
		"Total":   total,
		"Query":   params.Query,
		"Filters": filterViews(c, filters),
		"Page":    currentPage(c),
		"Pages":   pages(total),
	}, "layouts/admin")
}

func (bc *AdminBillingController) HandleSubscriptions(c *fiber.Ctx) error {
	filters := bc.repos.Subscription.Filters()
	params := listParams(c, filters)

	subs, total, err := bc.repos.Subscription.List(params)
	if err != nil {
		return handleError(c, "Failed to list subscriptions", err)
	}

	return c.Render("admin/subscriptions", fiber.Map{
		"Title":         "Subscriptions",
		"Subscriptions": subs,
		"Total":         total,
		"Query":         params.Query,
		"Filters":       filterViews(c, filters),
		"Page":          currentPage(c),
		"Pages":         pages(total),
	}, "layouts/admin")
}
