package controller

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"woodshop-assistant-be/internal/dto"
	"woodshop-assistant-be/pkg/citation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCitationService struct {
	stageResp    *dto.StageContextResponse
	extractResp  *dto.ExtractCitationsResponse
	gotKey       string
	gotAnswer    string
	stageCalls   int
	extractCalls int
}

func (s *stubCitationService) StageContext(ctx context.Context, sessionKey string, request *dto.LinksRequest) (*dto.StageContextResponse, error) {
	s.gotKey = sessionKey
	s.stageCalls++
	return s.stageResp, nil
}

func (s *stubCitationService) ExtractCitations(ctx context.Context, sessionKey string, answer string) *dto.ExtractCitationsResponse {
	s.gotKey = sessionKey
	s.gotAnswer = answer
	s.extractCalls++
	return s.extractResp
}

func newLinksApp(svc *stubCitationService) *fiber.App {
	app := fiber.New()
	NewCitationController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func postLinks(t *testing.T, app *fiber.App, body string, headers map[string]string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/links", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(payload)
}

func TestLinksStagePhaseShape(t *testing.T) {
	svc := &stubCitationService{stageResp: &dto.StageContextResponse{Status: "waiting_for_answer", HasContext: true}}
	app := newLinksApp(svc)

	status, body := postLinks(t, app, `{"context":"Source: Workshop Basics","query":"how to sharpen"}`, nil)

	assert.Equal(t, 200, status)
	assert.JSONEq(t, `{"status":"waiting_for_answer","hasContext":true}`, body)
}

func TestLinksExtractPhaseShape(t *testing.T) {
	svc := &stubCitationService{extractResp: &dto.ExtractCitationsResponse{
		VideoReferences: map[string]citation.VideoReference{
			"0": {
				Timestamp:   "12:45",
				VideoTitle:  "Workshop Basics",
				URLs:        []string{"https://yt.com/abc"},
				Description: "Demonstration of chisel sharpening technique",
			},
		},
		RelatedProducts: []dto.ProductDTO{},
		Status:          "success",
	}}
	app := newLinksApp(svc)

	status, body := postLinks(t, app, `{"answer":"Sharpen at a steady angle."}`, nil)

	assert.Equal(t, 200, status)
	assert.JSONEq(t, `{
		"videoReferences": {
			"0": {
				"timestamp": "12:45",
				"video_title": "Workshop Basics",
				"urls": ["https://yt.com/abc"],
				"description": "Demonstration of chisel sharpening technique"
			}
		},
		"relatedProducts": [],
		"status": "success"
	}`, body)
	assert.Equal(t, "Sharpen at a steady angle.", svc.gotAnswer)
}

func TestLinksStagePhaseWinsOverExtract(t *testing.T) {
	svc := &stubCitationService{stageResp: &dto.StageContextResponse{Status: "waiting_for_answer", HasContext: true}}
	app := newLinksApp(svc)

	status, body := postLinks(t, app, `{"context":"Source: Workshop Basics","query":"how to sharpen","answer":"stale"}`, nil)

	assert.Equal(t, 200, status)
	assert.JSONEq(t, `{"status":"waiting_for_answer","hasContext":true}`, body)
	assert.Equal(t, 1, svc.stageCalls)
	assert.Equal(t, 0, svc.extractCalls)
}

func TestLinksUnrecognizedBodyStaysOK(t *testing.T) {
	app := newLinksApp(&stubCitationService{})

	status, body := postLinks(t, app, `{"something":"else"}`, nil)

	assert.Equal(t, 200, status)
	assert.JSONEq(t, `{"videoReferences":{},"relatedProducts":[],"status":"success","hasContext":false}`, body)
}

func TestLinksSessionKeyFromHeaders(t *testing.T) {
	svc := &stubCitationService{stageResp: &dto.StageContextResponse{Status: "waiting_for_answer", HasContext: true}}
	app := newLinksApp(svc)

	postLinks(t, app, `{"context":"c","query":"q"}`, map[string]string{"x-session-id": "tab-7"})
	assert.Equal(t, "tab-7", svc.gotKey)

	postLinks(t, app, `{"context":"c","query":"q"}`, map[string]string{"x-user-id": "user_1"})
	assert.Equal(t, "user_1", svc.gotKey)

	postLinks(t, app, `{"context":"c","query":"q"}`, nil)
	assert.Equal(t, "anonymous", svc.gotKey)
}
