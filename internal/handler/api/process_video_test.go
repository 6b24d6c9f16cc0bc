package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"video-processor/internal/port"
	"video-processor/internal/usecase/video"
)

type mockProcessor struct {
	out *port.ProcessVideoOutput
	err error
	in  port.ProcessVideoInput

	called bool
}

func (m *mockProcessor) ProcessVideo(ctx context.Context, in port.ProcessVideoInput) (*port.ProcessVideoOutput, error) {
	m.called = true
	m.in = in
	return m.out, m.err
}

func pushBody(t *testing.T, payload string) *bytes.Buffer {
	t.Helper()
	body := map[string]any{
		"message": map[string]any{
			"data": base64.StdEncoding.EncodeToString([]byte(payload)),
		},
	}
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewBuffer(raw)
}

func TestProcessVideoHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       *bytes.Buffer
		svcOut     *port.ProcessVideoOutput
		svcErr     error
		wantStatus int
		wantBody   string
		wantCalled bool
		wantObject string
	}{
		{
			name:       "success",
			svcOut:     &port.ProcessVideoOutput{VideoID: "user123-abc"},
			wantStatus: http.StatusOK,
			wantBody:   "Video processing complete",
			wantCalled: true,
			wantObject: "user123-abc.mp4",
		},
		{
			name:       "already processed",
			svcOut:     &port.ProcessVideoOutput{VideoID: "user123-abc", AlreadyProcessed: true},
			wantStatus: http.StatusOK,
			wantBody:   "Video processing complete",
			wantCalled: true,
			wantObject: "user123-abc.mp4",
		},
		{
			name:       "conversion failure",
			svcErr:     fmt.Errorf("%w: exit status 1", video.ErrConversionFailed),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Internal Server Error: video conversion failed",
			wantCalled: true,
		},
		{
			name:       "other pipeline failure",
			svcErr:     errors.New("ledger down"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Internal Server Error: video processing failed",
			wantCalled: true,
		},
		{
			name:       "invalid JSON body",
			body:       bytes.NewBufferString("{ not json"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "Bad Request: missing file name",
		},
		{
			name:       "empty envelope",
			body:       bytes.NewBufferString("{}"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "Bad Request: missing file name",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := &mockProcessor{out: tc.svcOut, err: tc.svcErr}
			handlerFn := ProcessVideoHandler(mockSvc)

			body := tc.body
			if body == nil {
				body = pushBody(t, `{"name":"user123-abc.mp4"}`)
			}
			req := httptest.NewRequest(http.MethodPost, "/process-video", body)
			rec := httptest.NewRecorder()

			handlerFn(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if got := rec.Body.String(); got != tc.wantBody {
				t.Errorf("body = %q; want %q", got, tc.wantBody)
			}
			if mockSvc.called != tc.wantCalled {
				t.Errorf("service called = %v; want %v", mockSvc.called, tc.wantCalled)
			}
			if tc.wantObject != "" && mockSvc.in.ObjectName != tc.wantObject {
				t.Errorf("service got object = %q; want %q", mockSvc.in.ObjectName, tc.wantObject)
			}
		})
	}
}

func TestProcessVideoHandler_PayloadMissingName(t *testing.T) {
	mockSvc := &mockProcessor{}
	handlerFn := ProcessVideoHandler(mockSvc)

	req := httptest.NewRequest(http.MethodPost, "/process-video", pushBody(t, `{"other":"field"}`))
	rec := httptest.NewRecorder()

	handlerFn(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "missing file name") {
		t.Errorf("body = %q; want missing file name message", rec.Body.String())
	}
	if mockSvc.called {
		t.Error("expected no pipeline run for a payload with no name")
	}
}

func TestProcessVideoHandler_PayloadNotBase64(t *testing.T) {
	mockSvc := &mockProcessor{}
	handlerFn := ProcessVideoHandler(mockSvc)

	body := bytes.NewBufferString(`{"message":{"data":"%%% not base64 %%%"}}`)
	req := httptest.NewRequest(http.MethodPost, "/process-video", body)
	rec := httptest.NewRecorder()

	handlerFn(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusBadRequest)
	}
	if mockSvc.called {
		t.Error("expected no pipeline run for an undecodable payload")
	}
}
