package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fkuebler/paymirror/app/repository"
)

// AdminLedgerController renders transfers, connected accounts and recorded
// webhook events.
type AdminLedgerController struct {
	repos *repository.Repositories
}

func NewAdminLedgerController(repos *repository.Repositories) *AdminLedgerController {
	return &AdminLedgerController{repos: repos}
}

func (lc *AdminLedgerController) HandleTransfers(c *fiber.Ctx) error {
	filters := lc.repos.Transfer.Filters()
	params := listParams(c, filters)

	transfers, total, err := lc.repos.Transfer.List(params)
	if err != nil {
		return handleError(c, "Failed to list transfers", err)
	}

	return c.Render("admin/transfers", fiber.Map{
		"Title":     "Transfers",
		"Transfers": transfers,
		"Total":     total,
		"Query":     params.Query,
		"Filters":   filterViews(c, filters),
		"Page":      currentPage(c),
		"Pages":     pages(total),
	}, "layouts/admin")
}

func (lc *AdminLedgerController) HandleAccounts(c *fiber.Ctx) error {
	params := listParams(c, nil)

	accounts, total, err := lc.repos.Account.List(params)
	if err != nil {
		return handleError(c, "Failed to list accounts", err)
	}

	return c.Render("admin/accounts", fiber.Map{
		"Title":    "Accounts",
		"Accounts": accounts,
		"Total":    total,
		"Query":    params.Query,
		"Page":     currentPage(c),
		"Pages":    pages(total),
	}, "layouts/admin")
}

func (lc *AdminLedgerController) HandleEvents(c *fiber.Ctx) error {
	params := listParams(c, nil)

	events, total, err := lc.repos.Event.List(params)
	if err != nil {
		return handleError(c, "Failed to list events", err)
	}

	return c.Render("admin/events", fiber.Map{
		"Title":  "Events",
		"Events": events,
		"Total":  total,
		"Query":  params.Query,
		"Page":   currentPage(c),
		"Pages":  pages(total),
	}, "layouts/admin")
}
