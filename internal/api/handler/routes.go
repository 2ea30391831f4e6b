package handler

import (
	"net/http"

	"github.com/betpicks/betsites-api/internal/api/handler/router"
	"github.com/betpicks/betsites-api/internal/usecases/listing"
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

// RankItems exposes the CRUD surface of the ranked listing under
// /rankitems. A reverse proxy may serve it as /api/rankitems by stripping
// the /api prefix.
func RankItems(service listing.ListingService) []router.Route {
	return []router.Route{
		{
			Path:    "/rankitems",
			Method:  http.MethodGet,
			Handler: ListRankItems(service),
		},
		{
			Path:    "/rankitems",
			Method:  http.MethodPost,
			Handler: CreateRankItem(service),
		},
		{
			Path:    "/rankitems/:id",
			Method:  http.MethodGet,
			Handler: GetRankItem(service),
		},
		{
			Path:    "/rankitems/:id",
			Method:  http.MethodPut,
			Handler: UpdateRankItem(service),
		},
		{
			Path:    "/rankitems/:id",
			Method:  http.MethodDelete,
			Handler: DeleteRankItem(service),
		},
	}
}
