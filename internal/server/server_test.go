package server

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/estatecalc/esc/internal/output"
)

func doRequest(t *testing.T, s *Server, method, path, body string) *fasthttp.RequestCtx {
	t.Helper()
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI("http://localhost" + path)
	if body != "" {
		req.SetBodyString(body)
	}
	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	s.Handler(ctx)
	return ctx
}

func testServer() *Server {
	s := New(nil)
	s.engine.Now = func() time.Time {
		return time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	}
	return s
}

func TestHandleCalculate(t *testing.T) {
	s := testServer()
	body := `{
		"basics": {
			"marriage_date": "2009-06-01",
			"death_date": "2024-06-01",
			"nc_domiciled": true
		},
		"assets": [
			{"type": "probate", "value": "200000", "responsible_name": "Child A"},
			{"type": "joint_tbe", "value": "100000", "passes_to_spouse": true}
		],
		"deductions": {"total_claims": "20000"}
	}`

	ctx := doRequest(t, s, "POST", "/api/calculate", body)
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var report output.Report
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &report))
	require.NotNil(t, report.Result)
	assert.Equal(t, 15, report.Result.YearsMarried)
	assert.True(t, report.Result.ElectiveShare.Equal(decimal.NewFromInt(65000)),
		"got %s", report.Result.ElectiveShare)
	require.Len(t, report.Result.Apportionment, 1)
	assert.Equal(t, "Child A", report.Result.Apportionment[0].Name)
}

func TestHandleQuick(t *testing.T) {
	s := testServer()
	body := `{
		"basics": {"nc_domiciled": true},
		"quick": {"total_assets": "100000", "total_claims": "20000"}
	}`

	ctx := doRequest(t, s, "POST", "/api/quick", body)
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var report output.Report
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &report))
	assert.Empty(t, report.Result.Apportionment)
}

func TestHandleQuickMissingTotals(t *testing.T) {
	s := testServer()
	ctx := doRequest(t, s, "POST", "/api/quick", `{"basics": {"nc_domiciled": true}}`)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "quick totals are required")
}

func TestHandleCalculateRejectsGet(t *testing.T) {
	s := testServer()
	ctx := doRequest(t, s, "GET", "/api/calculate", "")
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
}

func TestHandleCalculateBadBody(t *testing.T) {
	s := testServer()
	ctx := doRequest(t, s, "POST", "/api/calculate", "{not json")
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestHandleNotFound(t *testing.T) {
	s := testServer()
	ctx := doRequest(t, s, "GET", "/api/nope", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestHealthz(t *testing.T) {
	s := testServer()
	ctx := doRequest(t, s, "GET", "/healthz", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "ok", string(ctx.Response.Body()))
}
