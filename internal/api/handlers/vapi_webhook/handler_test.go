package vapi_webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callassist/CallAssist-BookingService/internal/service/calls/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCallService struct {
	inboundPhone      string
	inboundExternalID string

	finished *models.FinishCallRequest
}

func (f *fakeCallService) RecordInbound(_ context.Context, phone, _, externalID string) (*models.CallResponse, error) {
	f.inboundPhone = phone
	f.inboundExternalID = externalID
	return &models.CallResponse{ID: 1}, nil
}

func (f *fakeCallService) FinishByExternalID(_ context.Context, req *models.FinishCallRequest) (*models.CallResponse, error) {
	f.finished = req
	return &models.CallResponse{ID: 1}, nil
}

type fakeDispatcher struct {
	result interface{}
	err    error

	gotName string
	gotArgs json.RawMessage
}

func (f *fakeDispatcher) Dispatch(_ context.Context, name string, args json.RawMessage) (interface{}, error) {
	f.gotName = name
	f.gotArgs = args
	return f.result, f.err
}

func post(t *testing.T, h *Handler, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/vapi", bytes.NewBufferString(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_StatusUpdate(t *testing.T) {
	svc := &fakeCallService{}
	h := NewHandler(svc, &fakeDispatcher{}, "", nopLogger{})

	body := `{"message":{"type":"status-update","status":"in-progress",` +
		`"call":{"id":"call-1","customer":{"number":"+15551234567"}}}}`
	rec := post(t, h, body, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "+15551234567", svc.inboundPhone)
	assert.Equal(t, "call-1", svc.inboundExternalID)
}

func TestHandler_EndOfCallReport(t *testing.T) {
	svc := &fakeCallService{}
	h := NewHandler(svc, &fakeDispatcher{}, "", nopLogger{})

	body := `{"message":{"type":"end-of-call-report","call":{"id":"call-1"},"transcript":"hi there"}}`
	rec := post(t, h, body, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.finished)
	assert.Equal(t, "call-1", svc.finished.ExternalID)
	require.NotNil(t, svc.finished.Transcript)
	assert.Equal(t, "hi there", *svc.finished.Transcript)
}

func TestHandler_ToolCalls(t *testing.T) {
	t.Run("dispatches function and encodes result", func(t *testing.T) {
		dispatcher := &fakeDispatcher{result: map[string]interface{}{"ok": true}}
		h := NewHandler(&fakeCallService{}, dispatcher, "", nopLogger{})

		body := `{"message":{"type":"tool-calls","toolCallList":[` +
			`{"id":"tc-1","function":{"name":"check_availability","arguments":{"date":"2026-09-10"}}}]}}`
		rec := post(t, h, body, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "check_availability", dispatcher.gotName)

		var resp ToolCallResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "tc-1", resp.Results[0].ToolCallID)
		assert.JSONEq(t, `{"ok":true}`, resp.Results[0].Result)
	})

	t.Run("function error is returned as text result", func(t *testing.T) {
		dispatcher := &fakeDispatcher{err: assert.AnError}
		h := NewHandler(&fakeCallService{}, dispatcher, "", nopLogger{})

		body := `{"message":{"type":"tool-calls","toolCallList":[` +
			`{"id":"tc-1","function":{"name":"book_appointment","arguments":{}}}]}}`
		rec := post(t, h, body, nil)

		// Ошибка функции не превращается в HTTP ошибку
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp ToolCallResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 1)
		assert.Equal(t, assert.AnError.Error(), resp.Results[0].Result)
	})
}

func TestHandler_Signature(t *testing.T) {
	const secret = "whsec"
	body := `{"message":{"type":"status-update"}}`

	sign := func(payload string) string {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write([]byte(payload))
		return hex.EncodeToString(mac.Sum(nil))
	}

	t.Run("valid signature accepted", func(t *testing.T) {
		h := NewHandler(&fakeCallService{}, &fakeDispatcher{}, secret, nopLogger{})
		rec := post(t, h, body, map[string]string{"x-vapi-signature": sign(body)})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad signature rejected", func(t *testing.T) {
		h := NewHandler(&fakeCallService{}, &fakeDispatcher{}, secret, nopLogger{})
		rec := post(t, h, body, map[string]string{"x-vapi-signature": "deadbeef"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("empty secret disables verification", func(t *testing.T) {
		h := NewHandler(&fakeCallService{}, &fakeDispatcher{}, "", nopLogger{})
		rec := post(t, h, body, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandler_UnknownMessageType(t *testing.T) {
	h := NewHandler(&fakeCallService{}, &fakeDispatcher{}, "", nopLogger{})

	rec := post(t, h, `{"message":{"type":"speech-update"}}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_MalformedBody(t *testing.T) {
	h := NewHandler(&fakeCallService{}, &fakeDispatcher{}, "", nopLogger{})

	rec := post(t, h, `{not json`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
