package handler

import (
	"net/http"

	"github.com/vfg2006/goodtill-sales-archiver/internal/api/handler/router"
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

func Export(services ExportServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/export/status",
			Method:  http.MethodGet,
			Handler: GetExportStatus(services),
		},
		{
			Path:    "/v1/export/run",
			Method:  http.MethodPost,
			Handler: RunExport(services),
		},
	}
}
