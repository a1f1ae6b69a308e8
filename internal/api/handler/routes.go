package handler

import (
	"net/http"

	"github.com/vfg2006/shop-manager-api/internal/api/handler/router"
	"github.com/vfg2006/shop-manager-api/internal/usecases/dashboarding"
	"github.com/vfg2006/shop-manager-api/internal/usecases/holding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/refresh",
			Method:  http.MethodPost,
			Handler: RefreshDashboard(service),
		},
	}
}

func Holds(tracker holding.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/holds",
			Method:  http.MethodGet,
			Handler: ListHolds(tracker),
		},
		{
			Path:    "/v1/holds",
			Method:  http.MethodPost,
			Handler: CreateHold(tracker),
		},
		{
			Path:    "/v1/holds/:id",
			Method:  http.MethodDelete,
			Handler: DeleteHold(tracker),
		},
		{
			Path:    "/v1/holds/summary",
			Method:  http.MethodGet,
			Handler: GetHoldsSummary(tracker),
		},
		{
			Path:    "/v1/holds/banner",
			Method:  http.MethodGet,
			Handler: GetBanner(tracker),
		},
		{
			Path:    "/v1/holds/banner/dismiss",
			Method:  http.MethodPost,
			Handler: DismissBanner(tracker),
		},
		{
			Path:    "/v1/holds/banner/snooze",
			Method:  http.MethodPost,
			Handler: SnoozeBanner(tracker),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
