package form_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tzform/config"
	otelMocks "tzform/infras/otel/mocks"
	formMocks "tzform/internal/domains/form/mocks"
	"tzform/internal/domains/form/model/dto"
	"tzform/internal/handlers/form"
	"tzform/shared/civiltime"
	"tzform/shared/failure"
	"tzform/shared/zonecatalog"
)

func newRouter(t *testing.T) (*formMocks.MockForm, http.Handler) {
	t.Helper()

	svc := formMocks.NewMockForm(gomock.NewController(t))
	handler := form.New(svc, otelMocks.NewOtel(), &config.Config{})

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.7")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

const submitBody = `{
	"name": "Jane Roe",
	"email": "jane@example.com",
	"phoneNumber": "5550100",
	"dateTime": "2025-03-09T02:30",
	"timeZone": "America/New_York"
}`

func TestHandler_ViewForm(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().View(gomock.Any(), dto.ViewRequest{ClientIP: "203.0.113.7", Zone: "UTC", LocalZone: "Europe/Berlin"}).
		Return(dto.ViewResponse{
			Catalog:      []zonecatalog.Entry{{Zone: "Europe/Berlin", Source: zonecatalog.SourceLocal}},
			DefaultZone:  "Europe/Berlin",
			SelectedZone: "UTC",
			Advisory:     "Could not detect your time zone from the network",
			Now:          civiltime.MustParse("2025-07-01T12:00"),
		}, nil)

	rec := serve(router, http.MethodGet, "/v1/form?zone=UTC&local_zone=Europe/Berlin", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "UTC", data["selectedZone"])
	assert.Equal(t, "2025-07-01T12:00", data["now"])
	assert.NotContains(t, data, "detectedZone")
	assert.Equal(t, "local-environment", data["catalog"].([]any)[0].(map[string]any)["source"])
}

func TestHandler_ViewFormUnknownZone(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().View(gomock.Any(), gomock.Any()).
		Return(dto.ViewResponse{}, failure.UnprocessableEntity(errors.New(`unknown zone "Mars/Olympus"`)))

	rec := serve(router, http.MethodGet, "/v1/form?zone=Mars/Olympus", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, `unknown zone "Mars/Olympus"`, decode(t, rec)["error"])
}

func TestHandler_SubmitForm(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.SubmitRequest) (dto.SubmitResponse, error) {
			assert.Equal(t, "2025-03-09T02:30", req.DateTime)
			assert.Equal(t, "America/New_York", req.TimeZone)

			return dto.SubmitResponse{
				Message:    "Preference created successfully",
				Preference: dto.FormPreference{ID: "42", DateTime: civiltime.MustParse("2025-03-09T03:30"), TimeZone: req.TimeZone},
				Resolution: dto.Resolution{Kind: civiltime.KindGap, Advisory: "moved forward"},
			}, nil
		})

	rec := serve(router, http.MethodPost, "/v1/form/preferences", submitBody)

	assert.Equal(t, http.StatusCreated, rec.Code)

	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "gap", data["resolution"].(map[string]any)["kind"])
	assert.Equal(t, "2025-03-09T03:30", data["preference"].(map[string]any)["dateTime"])
}

func TestHandler_SubmitFormInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "rfc3339 instead of a reading", body: strings.Replace(submitBody, "2025-03-09T02:30", "2025-03-09T02:30:00Z", 1)},
		{name: "missing zone", body: strings.Replace(submitBody, "America/New_York", "", 1)},
		{name: "missing name", body: strings.Replace(submitBody, "Jane Roe", "", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := newRouter(t)

			rec := serve(router, http.MethodPost, "/v1/form/preferences", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_EditForm(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Edit(gomock.Any(), "1", dto.EditRequest{ClientIP: "203.0.113.7", Zone: "Asia/Tokyo"}).
		Return(dto.EditResponse{
			Preference: dto.FormPreference{ID: "1", DateTime: civiltime.MustParse("2025-01-01T19:00"), TimeZone: "Asia/Tokyo"},
			ZoneSource: dto.ZoneFromRequest,
		}, nil)
	svc.EXPECT().Edit(gomock.Any(), "404", gomock.Any()).
		Return(dto.EditResponse{}, failure.NotFound("Preference not found"))

	rec := serve(router, http.MethodGet, "/v1/form/preferences/1?zone=Asia/Tokyo", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "requested", decode(t, rec)["data"].(map[string]any)["zoneSource"])

	rec = serve(router, http.MethodGet, "/v1/form/preferences/404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_ResubmitForm(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Resubmit(gomock.Any(), "1", gomock.Any()).
		Return(dto.SubmitResponse{Message: "Preference updated successfully"}, nil)

	rec := serve(router, http.MethodPut, "/v1/form/preferences/1", submitBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Preference updated successfully", decode(t, rec)["data"].(map[string]any)["message"])
}

func dialClock(t *testing.T, router http.Handler, query string) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/v1/form/clock" + query

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestHandler_Clock(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Clock(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.ClockRequest, emit func(dto.ClockFrame) error) error {
			assert.Equal(t, "Asia/Tokyo", req.Zone)

			for _, reading := range []string{"2025-07-01T21:00", "2025-07-01T21:01"} {
				if err := emit(dto.ClockFrame{Zone: req.Zone, Now: civiltime.MustParse(reading)}); err != nil {
					return err
				}
			}

			return nil
		})

	conn := dialClock(t, router, "?zone=Asia/Tokyo")

	for _, want := range []string{"2025-07-01T21:00", "2025-07-01T21:01"} {
		var frame dto.ClockFrame
		require.NoError(t, conn.ReadJSON(&frame))
		assert.Equal(t, "Asia/Tokyo", frame.Zone)
		assert.Equal(t, want, frame.Now.String())
	}

	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestHandler_ClockUnknownZone(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Clock(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(failure.UnprocessableEntity(errors.New(`unknown zone "Mars/Olympus"`)))

	conn := dialClock(t, router, "?zone=Mars/Olympus")

	_, _, err := conn.ReadMessage()

	var closeErr *websocket.CloseError
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, websocket.ClosePolicyViolation, closeErr.Code)
	assert.Equal(t, `unknown zone "Mars/Olympus"`, closeErr.Text)
}
