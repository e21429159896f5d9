package analytics

import (
	stats "cat-tracker/app/analytics"
	"cat-tracker/app/domain"
	"cat-tracker/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func GetSummaryAPI(c *fiber.Ctx, t *domain.Tracker) error {
	session := auth.SessionFromContext(c)
	return c.JSON(stats.StudentSummary(t.ListRecords(session.Handle)))
}

func GetTrendsAPI(c *fiber.Ctx, t *domain.Tracker) error {
	session := auth.SessionFromContext(c)
	return c.JSON(fiber.Map{
		"points": stats.TrendSeries(t.ListRecords(session.Handle)),
	})
}

func GetSectionsAPI(c *fiber.Ctx, t *domain.Tracker) error {
	session := auth.SessionFromContext(c)
	return c.JSON(fiber.Map{
		"sections": stats.SectionBreakdown(t.ListRecords(session.Handle)),
	})
}

func GetInsightsAPI(c *fiber.Ctx, t *domain.Tracker) error {
	session := auth.SessionFromContext(c)
	return c.JSON(fiber.Map{
		"insights": stats.Insights(t.ListRecords(session.Handle)),
	})
}

func GetTopPerformersAPI(c *fiber.Ctx, t *domain.Tracker) error {
	ranks := stats.TopPerformers(t.AccountsSnapshot(), t.RecordsSnapshot())
	return c.JSON(fiber.Map{"performers": ranks})
}

func GetClassAveragesAPI(c *fiber.Ctx, t *domain.Tracker) error {
	averages := stats.StudentAverages(t.AccountsSnapshot(), t.RecordsSnapshot())
	return c.JSON(fiber.Map{"students": averages})
}
