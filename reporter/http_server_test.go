package reporter

import (
	"database/sql"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosslock/bridge-go/bridge"
	"github.com/crosslock/bridge-go/common"
	"github.com/crosslock/bridge-go/custody"
	"github.com/crosslock/bridge-go/state"
)

func setupReporter(t *testing.T) (*gin.Engine, *bridge.Bridge) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	stdb, err := state.NewStateDB(sqlDB)
	require.NoError(t, err)
	t.Cleanup(stdb.Close)

	owner := common.RandEthAddress()
	b, err := bridge.New(stdb, custody.NewSimulatedCustodian(),
		bridge.NewManualHeightSource(100), owner, bridge.Config{})
	require.NoError(t, err)

	asset := state.RandAssetConfig()
	asset.AssetId = "USDA"
	require.NoError(t, b.SetSupportedAsset(owner, asset))

	h := NewHttpReporter("127.0.0.1", "8080", b)
	return h.SetupRouter(), b
}

func do(t *testing.T, router *gin.Engine, url string) (int, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHelloRoute(t *testing.T) {
	router, _ := setupReporter(t)

	code, body := do(t, router, ROUTE_HELLO)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "world", body["message"])
}

func TestAssetRoute(t *testing.T) {
	router, _ := setupReporter(t)

	code, body := do(t, router, ROUTE_ASSET+"?id=USDA")
	assert.Equal(t, http.StatusOK, code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "USDA", data["asset_id"])
	assert.Equal(t, "fungible", data["kind"])

	code, _ = do(t, router, ROUTE_ASSET+"?id=NOPE")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, router, ROUTE_ASSET)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestLockedAndAllowanceRoutes(t *testing.T) {
	router, _ := setupReporter(t)

	code, body := do(t, router, ROUTE_LOCKED+"?asset=USDA")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "0",
		body["data"].(map[string]interface{})["total_locked"])

	code, body = do(t, router, ROUTE_ALLOWANCE+"?asset=USDA")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, big.NewInt(2_000_000).String(),
		body["data"].(map[string]interface{})["remaining"])

	code, _ = do(t, router, ROUTE_ALLOWANCE+"?asset=NOPE")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestProofAndTxRoutes(t *testing.T) {
	router, _ := setupReporter(t)

	proofId := "0x" + common.ByteSliceToPureHexStr(common.RandBytes(32))
	code, body := do(t, router, ROUTE_PROOF+"?id="+proofId)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["data"].(map[string]interface{})["processed"])

	txId := "0x" + common.ByteSliceToPureHexStr(common.RandBytes(32))
	code, _ = do(t, router, ROUTE_TX+"?id="+txId)
	assert.Equal(t, http.StatusNotFound, code)
}
