package report

import (
	"fmt"
	"net/http"
	"reflect"

	"bizmanage/backend/foundation/web"
	"bizmanage/backend/internal/repository/postgres/report"

	"github.com/sirupsen/logrus"
)

type Controller struct {
	report Report
	cache  Cache
}

func NewController(reportRepo Report, cache Cache) *Controller {
	return &Controller{report: reportRepo, cache: cache}
}

// GetDashboard serves the aggregate dashboard numbers, cached for a short
// TTL. A cache failure degrades to a direct query.
func (uc Controller) GetDashboard(c *web.Context) error {
	var filter report.Filter

	if from, ok := c.GetQueryFunc(reflect.String, "from").(*string); ok {
		filter.From = from
	}
	if to, ok := c.GetQueryFunc(reflect.String, "to").(*string); ok {
		filter.To = to
	}

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	key := cacheKey(filter)

	var cached report.DashboardResponse
	hit, err := uc.cache.Get(c.Ctx, key, &cached)
	if err != nil {
		logrus.WithError(err).Warn("dashboard cache read failed")
	}
	if hit {
		return c.Respond(map[string]interface{}{
			"data":   cached,
			"status": true,
		}, http.StatusOK)
	}

	response, err := uc.report.GetDashboard(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	if err = uc.cache.Set(c.Ctx, key, response); err != nil {
		logrus.WithError(err).Warn("dashboard cache write failed")
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func cacheKey(filter report.Filter) string {
	from, to := "", ""
	if filter.From != nil {
		from = *filter.From
	}
	if filter.To != nil {
		to = *filter.To
	}
	return fmt.Sprintf("dashboard:%s:%s", from, to)
}
