package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHealth(t *testing.T) {
	app, _, _, _ := newTestApplication(t)
	app.config.env = "test"

	rr := executeRequest(app, http.MethodGet, "/healthcheck", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var resp HealthcheckResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, "UP", resp.Status)
	assert.Equal(t, "test", resp.SystemInfo.Environment)
}
