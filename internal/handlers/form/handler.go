package form

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"tzform/config"
	"tzform/infras/otel"
	"tzform/internal/domains/form/model/dto"
	"tzform/internal/domains/form/service"
	"tzform/shared"
	"tzform/shared/constant"
	"tzform/shared/failure"
	"tzform/shared/logger"
	"tzform/shared/validator"
	"tzform/transport/http/response"
)

const (
	clockWriteTimeout = 5 * time.Second
	clockCloseTimeout = time.Second
)

type Handler struct {
	service  service.Form
	otel     otel.Otel
	upgrader websocket.Upgrader
}

func New(service service.Form, otel otel.Otel, cfg *config.Config) Handler {
	cors := cfg.App.CORS

	return Handler{
		service: service,
		otel:    otel,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || !cors.Enable || slices.Contains(cors.AllowedOrigins, constant.Asterix) {
					return true
				}

				return slices.Contains(cors.AllowedOrigins, origin)
			},
		},
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/form", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ViewForm)
		routerGroup.Get("/clock", handler.Clock)
		routerGroup.Post("/preferences", handler.SubmitForm)
		routerGroup.Get("/preferences/{id}", handler.EditForm)
		routerGroup.Put("/preferences/{id}", handler.ResubmitForm)
	})
}

// ViewForm opens the form.
// @Summary Open the preference form
// @Description Zone catalog (network zone, then local zone, then every installed zone), the default and selected zones and the current reading in the selected zone. A failed network lookup only sets the advisory.
// @Tags Form
// @Produce json
// @Param zone query string false "Zone to select"
// @Param local_zone query string false "Zone of the browser, overrides the server zone"
// @Success 200 {object} response.Data[dto.ViewResponse]
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/form [get]
func (handler *Handler) ViewForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewForm")
	defer scope.End()

	view, err := handler.service.View(ctx, dto.ViewRequest{
		ClientIP:  shared.ClientIP(r),
		Zone:      r.URL.Query().Get(constant.RequestParamZone),
		LocalZone: r.URL.Query().Get(constant.RequestParamLocal),
	})
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to open form")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, view)
}

// SubmitForm stores a reading typed in a zone.
// @Summary Submit the preference form
// @Description dateTime is a wall clock reading (YYYY-MM-DDTHH:MM) in timeZone. Readings in a gap move forward, readings in a fold take the earlier occurrence.
// @Tags Form
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequest true "Form"
// @Success 201 {object} response.Data[dto.SubmitResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/form/preferences [post]
func (handler *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitForm")
	defer scope.End()

	req := dto.SubmitRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to submit form")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Form submitted, resolution " + string(res.Resolution.Kind))

	response.WithJSON(w, http.StatusCreated, res)
}

// EditForm shows a stored preference as an editable reading.
// @Summary Edit a preference in the form
// @Description The reading uses the stored zone, then the zone query parameter, then the form default.
// @Tags Form
// @Produce json
// @Param id path string true "Preference ID"
// @Param zone query string false "Zone when the record has none"
// @Param local_zone query string false "Zone of the browser"
// @Success 200 {object} response.Data[dto.EditResponse]
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/form/preferences/{id} [get]
func (handler *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditForm")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Edit(ctx, id, dto.EditRequest{
		ClientIP:  shared.ClientIP(r),
		Zone:      r.URL.Query().Get(constant.RequestParamZone),
		LocalZone: r.URL.Query().Get(constant.RequestParamLocal),
	})
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Str("id", id).Msg("failed to load form")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ResubmitForm replaces a stored preference from the form.
// @Summary Resubmit the preference form
// @Tags Form
// @Accept json
// @Produce json
// @Param id path string true "Preference ID"
// @Param request body dto.SubmitRequest true "Form"
// @Success 200 {object} response.Data[dto.SubmitResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/form/preferences/{id} [put]
func (handler *Handler) ResubmitForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResubmitForm")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SubmitRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Resubmit(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Str("id", id).Msg("failed to resubmit form")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Clock streams the current reading over a websocket.
// @Summary Form clock
// @Description Websocket. One JSON frame {zone, now} per interval in the selected zone. An unknown zone closes the socket with a policy violation.
// @Tags Form
// @Param zone query string false "Zone to show"
// @Param local_zone query string false "Zone of the browser"
// @Success 101
// @Router /v1/form/clock [get]
func (handler *Handler) Clock(w http.ResponseWriter, r *http.Request) {
	conn, err := handler.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Ctx(r.Context()).Warn().Err(err).Msg("failed to upgrade clock connection")

		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Reading is required to notice the peer closing.
	go func() {
		defer cancel()

		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	err = handler.service.Clock(ctx, dto.ClockRequest{
		ClientIP:  shared.ClientIP(r),
		Zone:      r.URL.Query().Get(constant.RequestParamZone),
		LocalZone: r.URL.Query().Get(constant.RequestParamLocal),
	}, func(frame dto.ClockFrame) error {
		if err := conn.SetWriteDeadline(time.Now().Add(clockWriteTimeout)); err != nil {
			return err //nolint:wrapcheck
		}

		return conn.WriteJSON(frame) //nolint:wrapcheck
	})

	code, reason := websocket.CloseNormalClosure, ""

	var fail *failure.Failure

	switch {
	case err == nil:
	case errors.As(err, &fail):
		code, reason = websocket.ClosePolicyViolation, fail.Message
	default:
		logger.Ctx(r.Context()).Warn().Err(err).Msg("clock stream ended")

		code = websocket.CloseInternalServerErr
	}

	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(clockCloseTimeout))
}
