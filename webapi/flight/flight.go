// Package flight exposes the flight query endpoint: a single POST
// route dispatching on the action field.
package flight

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vuelasur/booking/pkg/config"
	"github.com/vuelasur/booking/pkg/dto"
	flightsvc "github.com/vuelasur/booking/pkg/service/flight"
	"github.com/vuelasur/booking/webapi/common"
)

// Request is the action-dispatch body of POST /flights.
type Request struct {
	Action       string        `json:"action" validate:"required,oneof=search popular_routes price_trends"`
	SearchParams *SearchParams `json:"search_params"`
	FromAirport  string        `json:"from_airport"`
	ToAirport    string        `json:"to_airport"`
}

// SearchParams carries the optional search filters. Absent fields are
// not applied.
type SearchParams struct {
	FromAirport    string  `json:"from_airport"`
	ToAirport      string  `json:"to_airport"`
	DepartureDate  string  `json:"departure_date"`
	Passengers     int     `json:"passengers"`
	MaxPrice       float64 `json:"max_price"`
	DirectOnly     bool    `json:"direct_only"`
	Airline        string  `json:"airline"`
	TimePreference string  `json:"time_preference" validate:"omitempty,oneof=morning afternoon evening"`
}

// SearchResponse echoes the filters alongside the matching flights.
type SearchResponse struct {
	Flights      []flightsvc.Result `json:"flights"`
	SearchParams *SearchParams      `json:"search_params"`
	TotalResults int                `json:"total_results"`
}

// PopularRoutesResponse wraps the popular-routes ranking.
type PopularRoutesResponse struct {
	PopularRoutes []flightsvc.PopularRoute `json:"popular_routes"`
}

// Routes registers the flight endpoint.
func Routes(app *fiber.App, svc *flightsvc.Service, cfg *config.App) {
	app.Post("/flights", Actions(svc, cfg))
}

// Actions returns the POST /flights handler.
// @Summary Search flights, rank popular routes or chart price trends
// @Description Dispatches on the action field: "search" filters the flight inventory, "popular_routes" ranks routes by recent confirmed bookings, "price_trends" aggregates economy fares per departure date on one route
// @Tags flights
// @Accept json
// @Produce json
// @Param request body Request true "Flight query action"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} common.ErrorBody
// @Failure 500 {object} common.ErrorBody
// @Router /flights [post]
func Actions(svc *flightsvc.Service, cfg *config.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := common.BindAndValidate[Request](c, cfg.Debug)
		if req == nil {
			return err
		}

		switch req.Action {
		case "search":
			return search(c, svc, cfg, req)
		case "popular_routes":
			return popularRoutes(c, svc, cfg)
		default:
			return priceTrends(c, svc, cfg, req)
		}
	}
}

func search(
	c *fiber.Ctx,
	svc *flightsvc.Service,
	cfg *config.App,
	req *Request,
) error {
	params := req.SearchParams
	if params == nil {
		params = &SearchParams{}
	}
	flights, err := svc.Search(c.Context(), dto.FlightSearchFilter{
		FromAirport:    params.FromAirport,
		ToAirport:      params.ToAirport,
		DepartureDate:  params.DepartureDate,
		Passengers:     params.Passengers,
		MaxPrice:       params.MaxPrice,
		DirectOnly:     params.DirectOnly,
		Airline:        params.Airline,
		TimePreference: params.TimePreference,
	})
	if err != nil {
		return common.ErrorResponseJSON(
			c,
			common.ErrorToStatusCode(err),
			common.ErrorToTitle(err),
			err,
			cfg.Debug,
		)
	}

	return c.JSON(SearchResponse{
		Flights:      flights,
		SearchParams: params,
		TotalResults: len(flights),
	})
}

func popularRoutes(c *fiber.Ctx, svc *flightsvc.Service, cfg *config.App) error {
	routes, err := svc.PopularRoutes(c.Context())
	if err != nil {
		return common.ErrorResponseJSON(
			c,
			common.ErrorToStatusCode(err),
			common.ErrorToTitle(err),
			err,
			cfg.Debug,
		)
	}
	return c.JSON(PopularRoutesResponse{PopularRoutes: routes})
}

func priceTrends(
	c *fiber.Ctx,
	svc *flightsvc.Service,
	cfg *config.App,
	req *Request,
) error {
	trends, err := svc.PriceTrends(c.Context(), req.FromAirport, req.ToAirport)
	if err != nil {
		return common.ErrorResponseJSON(
			c,
			common.ErrorToStatusCode(err),
			common.ErrorToTitle(err),
			err,
			cfg.Debug,
		)
	}
	return c.JSON(trends)
}
