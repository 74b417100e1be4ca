package preference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tzform/infras/otel"
	"tzform/internal/domains/preference/model"
	"tzform/internal/domains/preference/model/dto"
	"tzform/internal/domains/preference/service"
	"tzform/shared/constant"
	gDto "tzform/shared/dto"
	"tzform/shared/logger"
	"tzform/shared/validator"
	"tzform/transport/http/response"
)

type Handler struct {
	service service.Preference
	otel    otel.Otel
}

func New(service service.Preference, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/preferences", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePreference)
		routerGroup.Get("/", handler.GetPreferences)
		routerGroup.Get("/{id}", handler.GetPreferenceByID)
		routerGroup.Put("/{id}", handler.UpdatePreference)
		routerGroup.Delete("/{id}", handler.DeletePreference)
	})
}

// CreatePreference stores a new contact preference.
// @Summary Create a preference
// @Description Store a contact preference. dateTime is an RFC 3339 instant and is kept in UTC; timeZone is a display hint.
// @Tags Preference
// @Accept json
// @Produce json
// @Param request body dto.PreferenceRequest true "Preference"
// @Success 201 {object} response.Data[dto.MutationResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/preferences [post]
func (handler *Handler) CreatePreference(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePreference")
	defer scope.End()

	req := dto.PreferenceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	pref, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to create preference")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Preference created successfully")

	response.WithJSON(writer, http.StatusCreated, dto.MutationResponse{
		Message:    "Preference created successfully",
		Preference: pref,
	})
}

// GetPreferences lists preferences.
// @Summary List preferences
// @Description Paginated list with optional name and email filters (case-insensitive contains).
// @Tags Preference
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort_by query string false "Sort field" Enums(created_at, modified_at, name, email, date_time)
// @Param sort_dir query string false "Sort direction" Enums(ASC, DESC)
// @Param name query string false "Filter by name"
// @Param email query string false "Filter by email"
// @Success 200 {object} response.Data[dto.GetPreferencesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/preferences [get]
func (handler *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPreferences")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := model.Filter{
		Name:  r.URL.Query().Get(constant.RequestParamName),
		Email: r.URL.Query().Get(constant.RequestParamEmail),
	}

	prefs, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get preferences")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Preferences retrieved successfully")

	response.WithJSON(w, http.StatusOK, prefs)
}

// GetPreferenceByID returns one preference.
// @Summary Get a preference
// @Tags Preference
// @Produce json
// @Param id path string true "Preference ID"
// @Success 200 {object} response.Data[dto.PreferenceResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/preferences/{id} [get]
func (handler *Handler) GetPreferenceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPreferenceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	pref, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Str("id", id).Msg("failed to get preference by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Preference retrieved successfully")

	response.WithJSON(w, http.StatusOK, pref)
}

// UpdatePreference replaces a preference.
// @Summary Replace a preference
// @Description Full replace. An omitted timeZone keeps the stored one, an empty string clears it.
// @Tags Preference
// @Accept json
// @Produce json
// @Param id path string true "Preference ID"
// @Param request body dto.PreferenceRequest true "Preference"
// @Success 200 {object} response.Data[dto.MutationResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/preferences/{id} [put]
func (handler *Handler) UpdatePreference(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePreference")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.PreferenceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	pref, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Str("id", id).Msg("failed to update preference")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Preference updated successfully")

	response.WithJSON(w, http.StatusOK, dto.MutationResponse{
		Message:    "Preference updated successfully",
		Preference: pref,
	})
}

// DeletePreference removes a preference.
// @Summary Delete a preference
// @Tags Preference
// @Produce json
// @Param id path string true "Preference ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/preferences/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeletePreference(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePreference")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Str("id", id).Msg("failed to delete preference")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Preference deleted successfully")

	response.WithMessage(w, http.StatusOK, "Preference deleted successfully")
}
