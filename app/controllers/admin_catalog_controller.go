package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fkuebler/paymirror/app/repository"
)

// AdminCatalogController renders the catalog listings: plans, coupons,
// products and SKUs. All read-only; the catalog changes through sync and
// action commands, never through the browser.
type AdminCatalogController struct {
	repos *repository.Repositories
}

func NewAdminCatalogController(repos *repository.Repositories) *AdminCatalogController {
	return &AdminCatalogController{repos: repos}
}

func (cc *AdminCatalogController) HandlePlans(c *fiber.Ctx) error {
	params := listParams(c, nil)

	plans, total, err := cc.repos.Plan.List(params)
	if err != nil {
		return handleError(c, "Failed to list plans", err)
	}

	return c.Render("admin/plans", fiber.Map{
		"Title": "Plans",
		"Plans": plans,
		"Total": total,
		"Query": params.Query,
		"Page":  currentPage(c),
		"Pages": pages(total),
	}, "layouts/admin")
}

func (cc *AdminCatalogController) HandleCoupons(c *fiber.Ctx) error {
	params := listParams(c, nil)

	coupons, total, err := cc.repos.Coupon.List(params)
	if err != nil {
		return handleError(c, "Failed to list coupons", err)
	}

	return c.Render("admin/coupons", fiber.Map{
		"Title":   "Coupons",
		"Coupons": coupons,
		"Total":   total,
		"Query":   params.Query,
		"Page":    currentPage(c),
		"Pages":   pages(total),
	}, "layouts/admin")
}

func (cc *AdminCatalogController) HandleProducts(c *fiber.Ctx) error {
	params := listParams(c, nil)

	products, total, err := cc.repos.Product.List(params)
	if err != nil {
		return handleError(c, "Failed to list products", err)
	}

	return c.Render("admin/products", fiber.Map{
		"Title":    "Products",
		"Products": products,
		"Total":    total,
		"Query":    params.Query,
		"Page":     currentPage(c),
		"Pages":    pages(total),
	}, "layouts/admin")
}

func (cc *AdminCatalogController) HandleSkus(c *fiber.Ctx) error {
	params := listParams(c, nil)

	skus, total, err := cc.repos.Sku.List(params)
	if err != nil {
		return handleError(c, "Failed to list skus", err)
	}

	return c.Render("admin/skus", fiber.Map{
		"Title": "SKUs",
		"Skus":  skus,
		"Total": total,
		"Query": params.Query,
		"Page":  currentPage(c),
		"Pages": pages(total),
	}, "layouts/admin")
}
