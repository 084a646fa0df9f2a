// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wonder

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/worldwonders/internal/platform/apperr"
	requestutil "github.com/taibuivan/worldwonders/internal/platform/request"
	"github.com/taibuivan/worldwonders/internal/platform/respond"
	"github.com/taibuivan/worldwonders/internal/platform/validate"
	"github.com/taibuivan/worldwonders/pkg/slice"
)

// Error codes returned for query failures.
const (
	CodeNoWondersLeft     = "NO_WONDERS_LEFT"
	CodeNoMatchingName    = "NO_MATCHING_NAME"
	CodeConflictingLimits = "CONFLICTING_LIMIT_PARAMS"
)

// maxTextFilterLen bounds the name and location substring filters.
const maxTextFilterLen = 150

// Handler implements the wonder HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new wonder [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with all wonder routes registered.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listWonders)
	router.Get("/count", handler.countWonders)
	router.Get("/categories", handler.listCategories)
	router.Get("/time-periods", handler.listTimePeriods)
	router.Get("/sort-by", handler.listSortOptions)
	router.Get("/random", handler.randomWonder)
	router.Get("/oldest", handler.oldestWonder)
	router.Get("/youngest", handler.youngestWonder)
	router.Get("/name/{name}", handler.getWonderByName)

	return router
}

// # Collection Handlers

// listWonders handles GET /v0/wonders.
func (handler *Handler) listWonders(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()
	validator := &validate.Validator{}

	filter := parseFilter(values, validator)
	order := parseSort(values, validator)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	wonders, err := handler.service.ListWonders(request.Context(), filter, order)
	if err != nil {
		respond.Error(writer, request, toAppError(err))
		return
	}
	respond.OK(writer, wonders)
}

// countWonders handles GET /v0/wonders/count.
func (handler *Handler) countWonders(writer http.ResponseWriter, request *http.Request) {
	filter, err := filterFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	count, err := handler.service.CountWonders(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, toAppError(err))
		return
	}
	respond.OK(writer, count)
}

// # Enumeration Handlers

// listCategories handles GET /v0/wonders/categories.
func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	validator := &validate.Validator{}
	excludeGames := validator.Bool(FieldExcludeGames, request.URL.Query().Get(FieldExcludeGames))
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, handler.service.ListCategories(excludeGames))
}

// listTimePeriods handles GET /v0/wonders/time-periods.
func (handler *Handler) listTimePeriods(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.ListTimePeriods())
}

// listSortOptions handles GET /v0/wonders/sort-by.
func (handler *Handler) listSortOptions(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.ListSortOptions())
}

// # Single Wonder Handlers

// randomWonder handles GET /v0/wonders/random.
func (handler *Handler) randomWonder(writer http.ResponseWriter, request *http.Request) {
	filter, err := filterFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	w, err := handler.service.RandomWonder(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, toAppError(err))
		return
	}
	respond.OK(writer, w)
}

// oldestWonder handles GET /v0/wonders/oldest.
func (handler *Handler) oldestWonder(writer http.ResponseWriter, request *http.Request) {
	filter, err := filterFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	w, err := handler.service.OldestWonder(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, toAppError(err))
		return
	}
	respond.OK(writer, w)
}

// youngestWonder handles GET /v0/wonders/youngest.
func (handler *Handler) youngestWonder(writer http.ResponseWriter, request *http.Request) {
	filter, err := filterFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	w, err := handler.service.YoungestWonder(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, toAppError(err))
		return
	}
	respond.OK(writer, w)
}

// getWonderByName handles GET /v0/wonders/name/{name}.
func (handler *Handler) getWonderByName(writer http.ResponseWriter, request *http.Request) {
	w, err := handler.service.GetWonderBySlug(request.Context(), requestutil.Param(request, "name"))
	if err != nil {
		respond.Error(writer, request, toAppError(err))
		return
	}
	respond.OK(writer, w)
}

// # Request Parsing

// filterFromRequest parses only the filter parameters of request.
func filterFromRequest(request *http.Request) (FilterSpec, error) {
	validator := &validate.Validator{}
	filter := parseFilter(request.URL.Query(), validator)
	return filter, validator.Err()
}

// parseFilter reads the filter parameters, recording any invalid value on validator.
// Empty parameters are treated as absent.
func parseFilter(values url.Values, validator *validate.Validator) FilterSpec {
	filter := FilterSpec{
		NameContains:     values.Get(FieldName),
		LocationContains: values.Get(FieldLocation),
	}
	validator.MaxLen(FieldName, filter.NameContains, maxTextFilterLen)
	validator.MaxLen(FieldLocation, filter.LocationContains, maxTextFilterLen)

	if raw := values.Get(FieldTimePeriod); raw != "" {
		validator.OneOf(FieldTimePeriod, raw, slice.Strings(TimePeriods())...)
		filter.TimePeriod = TimePeriod(raw)
	}

	if raw := values.Get(FieldCategory); raw != "" {
		validator.OneOf(FieldCategory, raw, slice.Strings(Categories(false))...)
		filter.Category = Category(raw)
	}

	filter.LowerLimit = validator.Int16(FieldLowerLimit, values.Get(FieldLowerLimit))
	filter.UpperLimit = validator.Int16(FieldUpperLimit, values.Get(FieldUpperLimit))

	return filter
}

// parseSort reads the sort parameters, recording any invalid value on validator.
func parseSort(values url.Values, validator *validate.Validator) SortSpec {
	var order SortSpec

	if raw := values.Get(FieldSortBy); raw != "" {
		validator.OneOf(FieldSortBy, raw, slice.Strings(SortOptions())...)
		order.By = SortBy(raw)
	}
	order.Reverse = validator.Bool(FieldSortReverse, values.Get(FieldSortReverse))

	return order
}

// # Error Mapping

// toAppError converts query engine errors into client-facing 400 responses.
// Unknown errors pass through and are rendered as internal errors.
func toAppError(err error) error {
	var noName *NoMatchingNameError
	var conflict *ConflictingLimitsError

	switch {
	case errors.Is(err, ErrNoWondersLeft):
		return apperr.BadRequest(CodeNoWondersLeft, err.Error())
	case errors.As(err, &noName):
		return apperr.BadRequest(CodeNoMatchingName, err.Error())
	case errors.As(err, &conflict):
		return apperr.BadRequest(CodeConflictingLimits, err.Error())
	default:
		return err
	}
}
