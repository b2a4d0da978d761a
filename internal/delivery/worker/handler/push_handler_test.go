package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skywitness/config"
	deliverycontext "skywitness/internal/delivery/context"
	"skywitness/internal/domain/service"
	mockUsecase "skywitness/internal/mocks/usecase"
	"skywitness/internal/usecase"
	"skywitness/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(t *testing.T, alertUC usecase.AlertUsecase) *PushHandler {
	t.Helper()

	return NewPushHandler(PushHandlerParams{
		Config:  &config.Config{},
		Logger:  slog.Default(),
		AlertUC: alertUC,
	})
}

func pushRequestBody(t *testing.T, event *service.SightingEvent, attributes map[string]string) string {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/test/subscriptions/sighting-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(t *testing.T, h *PushHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.HandlePush(e.NewContext(req, rec))
	require.NoError(t, err)

	return rec
}

func TestPushHandler_HandlePush_Success(t *testing.T) {
	event := &service.SightingEvent{
		RequestID:  "req-123",
		SightingID: "6b4a4c39-98b2-4a53-9fc9-7a02cbe9e3f1",
		Latitude:   25.0330,
		Longitude:  121.5654,
	}

	mockAlertUC := mockUsecase.NewMockAlertUsecase(t)
	mockAlertUC.EXPECT().
		ProcessSightingEvent(mock.Anything, mock.AnythingOfType("*service.SightingEvent")).
		Run(func(ctx context.Context, got *service.SightingEvent) {
			assert.Equal(t, event.SightingID, got.SightingID)
			assert.InDelta(t, event.Latitude, got.Latitude, 1e-9)
			assert.Equal(t, "req-123", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(&usecase.AlertDispatchResult{Matched: 2, Sent: 2}, nil)

	h := newPushHandler(t, mockAlertUC)
	rec := doPush(t, h, pushRequestBody(t, event, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_AttributeRequestIDWins(t *testing.T) {
	event := &service.SightingEvent{
		RequestID:  "req-from-event",
		SightingID: "6b4a4c39-98b2-4a53-9fc9-7a02cbe9e3f1",
		Latitude:   25.0,
		Longitude:  121.5,
	}

	mockAlertUC := mockUsecase.NewMockAlertUsecase(t)
	mockAlertUC.EXPECT().
		ProcessSightingEvent(mock.Anything, mock.AnythingOfType("*service.SightingEvent")).
		Run(func(ctx context.Context, got *service.SightingEvent) {
			assert.Equal(t, "req-from-attr", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(&usecase.AlertDispatchResult{}, nil)

	h := newPushHandler(t, mockAlertUC)
	rec := doPush(t, h, pushRequestBody(t, event, map[string]string{"request_id": "req-from-attr"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RetryableFailure(t *testing.T) {
	event := &service.SightingEvent{
		SightingID: "6b4a4c39-98b2-4a53-9fc9-7a02cbe9e3f1",
		Latitude:   25.0,
		Longitude:  121.5,
	}

	mockAlertUC := mockUsecase.NewMockAlertUsecase(t)
	mockAlertUC.EXPECT().
		ProcessSightingEvent(mock.Anything, mock.AnythingOfType("*service.SightingEvent")).
		Return(nil, errors.New("database connection refused"))

	h := newPushHandler(t, mockAlertUC)
	rec := doPush(t, h, pushRequestBody(t, event, nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_MalformedEventNotRetried(t *testing.T) {
	event := &service.SightingEvent{
		SightingID: "not-a-uuid",
		Latitude:   25.0,
		Longitude:  121.5,
	}

	mockAlertUC := mockUsecase.NewMockAlertUsecase(t)
	mockAlertUC.EXPECT().
		ProcessSightingEvent(mock.Anything, mock.AnythingOfType("*service.SightingEvent")).
		Return(nil, errors.Wrap(impl.ErrInvalidSightingEvent, "malformed sighting id"))

	h := newPushHandler(t, mockAlertUC)
	rec := doPush(t, h, pushRequestBody(t, event, nil))

	// 200 keeps Pub/Sub from redelivering a permanently broken event
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_InvalidBase64(t *testing.T) {
	mockAlertUC := mockUsecase.NewMockAlertUsecase(t)

	h := newPushHandler(t, mockAlertUC)
	rec := doPush(t, h, `{"message":{"data":"%%%not-base64%%%"},"subscription":"s"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_InvalidJSONPayload(t *testing.T) {
	mockAlertUC := mockUsecase.NewMockAlertUsecase(t)

	data := base64.StdEncoding.EncodeToString([]byte("not json"))

	h := newPushHandler(t, mockAlertUC)
	rec := doPush(t, h, `{"message":{"data":"`+data+`"},"subscription":"s"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRetryableError_Unwrap(t *testing.T) {
	base := errors.New("push transport down")
	wrapped := newRetryableError(base)

	assert.True(t, isRetryableError(wrapped))
	assert.False(t, isRetryableError(base))
	assert.ErrorIs(t, wrapped, base)
}
