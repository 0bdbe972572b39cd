package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/fkuebler/paymirror/app/repository"
)

const defaultPerPage = 25

// listParams builds repository list parameters from the request querystring:
// ?page, ?q plus one querystring key per registered filter.
func listParams(c *fiber.Ctx, filters []repository.Filter) repository.ListParams {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	selected := make(map[string]string)
	for _, f := range filters {
		if v := c.Query(f.Name()); v != "" {
			selected[f.Name()] = v
		}
	}
	return repository.ListParams{
		Offset:  (page - 1) * defaultPerPage,
		Limit:   defaultPerPage,
		Query:   c.Query("q"),
		Filters: selected,
	}
}

// pages returns the page numbers for the pagination strip.
func pages(total int64) []int {
	n := int(total) / defaultPerPage
	if int(total)%defaultPerPage > 0 {
		n++
	}
	if n < 1 {
		n = 1
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func currentPage(c *fiber.Ctx) int {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	return page
}

// filterView is what the list templates render per filter.
type filterView struct {
	Name     string
	Label    string
	Selected string
	Options  []repository.FilterOption
}

func filterViews(c *fiber.Ctx, filters []repository.Filter) []filterView {
	views := make([]filterView, 0, len(filters))
	for _, f := range filters {
		views = append(views, filterView{
			Name:     f.Name(),
			Label:    f.Label(),
			Selected: c.Query(f.Name()),
			Options:  f.Lookups(),
		})
	}
	return views
}

func handleError(c *fiber.Ctx, msg string, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg(msg)
	return c.Status(fiber.StatusInternalServerError).Render("admin/error", fiber.Map{
		"Title":   "Error",
		"Message": msg,
	}, "layouts/admin")
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("admin/error", fiber.Map{
		"Title":   "Not found",
		"Message": "The requested record does not exist.",
	}, "layouts/admin")
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	return uint(id), err
}
