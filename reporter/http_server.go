// This is a http type of reporter.
// It publishes the bridge's read-only queries on http routes.
// Queries are never gated by the pause flag.

package reporter

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crosslock/bridge-go/bridge"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

const (
	ROUTE_HELLO     = "/hello"
	ROUTE_ASSET     = "/asset"
	ROUTE_CHAIN     = "/chain"
	ROUTE_TX        = "/tx"
	ROUTE_TIMELOCK  = "/timelock"
	ROUTE_PROOF     = "/proof"
	ROUTE_LOCKED    = "/locked"
	ROUTE_ALLOWANCE = "/allowance"
	ROUTE_ADMIN     = "/admin"
)

type HttpReporter struct {
	serverIP   string // listen ip
	serverPort string // listen port

	// upstream data source
	bridge *bridge.Bridge
}

func NewHttpReporter(serverIP string, serverPort string, b *bridge.Bridge) *HttpReporter {
	return &HttpReporter{
		serverIP:   serverIP,
		serverPort: serverPort,
		bridge:     b,
	}
}

// Hook up routes & handlers
func (h *HttpReporter) SetupRouter() *gin.Engine {
	router := gin.Default()

	router.GET(ROUTE_HELLO, Hello)
	router.GET(ROUTE_ASSET, h.Asset)
	router.GET(ROUTE_CHAIN, h.Chain)
	router.GET(ROUTE_TX, h.Transaction)
	router.GET(ROUTE_TIMELOCK, h.Timelock)
	router.GET(ROUTE_PROOF, h.Proof)
	router.GET(ROUTE_LOCKED, h.Locked)
	router.GET(ROUTE_ALLOWANCE, h.Allowance)
	router.GET(ROUTE_ADMIN, h.Admin)

	return router
}

// Hook up router & ip:port
func (h *HttpReporter) Run() {
	router := h.SetupRouter()
	address := h.serverIP + ":" + h.serverPort
	if err := router.Run(address); err != nil {
		panic(err)
	}
}

// Example route.
func Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "world",
	})
}

func (h *HttpReporter) Asset(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be provided"})
		return
	}

	asset, ok, err := h.bridge.GetAsset(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No asset found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"asset_id":           asset.AssetId,
		"kind":               string(asset.Kind),
		"custody_target":     asset.CustodyTarget,
		"conversion_rate":    asset.ConversionRate,
		"daily_limit":        asset.DailyLimit.String(),
		"min_amount":         asset.MinAmount.String(),
		"max_amount":         asset.MaxAmount.String(),
		"timelock_threshold": asset.TimelockThreshold.String(),
		"timelock_blocks":    asset.TimelockBlocks,
		"active":             asset.Active,
	}})
}

func (h *HttpReporter) Chain(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be provided"})
		return
	}

	chain, ok, err := h.bridge.GetChain(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No chain found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"chain_id":      chain.ChainId,
		"name":          chain.Name,
		"method":        string(chain.Method),
		"confirmations": chain.RequiredConfirmations,
		"active":        chain.Active,
	}})
}

func (h *HttpReporter) Transaction(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be provided"})
		return
	}

	tx, ok, err := h.bridge.GetTransaction(ethcommon.HexToHash(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No transaction found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tx.ToJSON()})
}

func (h *HttpReporter) Timelock(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be provided"})
		return
	}

	entry, ok, err := h.bridge.GetTimelock(ethcommon.HexToHash(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No timelock found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entry.ToJSON()})
}

func (h *HttpReporter) Proof(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be provided"})
		return
	}

	processed, err := h.bridge.IsProofProcessed(ethcommon.HexToHash(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"processed": processed}})
}

func (h *HttpReporter) Locked(c *gin.Context) {
	assetId := c.Query("asset")
	if assetId == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asset must be provided"})
		return
	}

	total, err := h.bridge.TotalLocked(assetId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"total_locked": total.String()}})
}

func (h *HttpReporter) Allowance(c *gin.Context) {
	assetId := c.Query("asset")
	if assetId == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asset must be provided"})
		return
	}

	left, err := h.bridge.RemainingDailyAllowance(assetId)
	if err != nil {
		if err == bridge.ErrAssetNotSupported {
			c.JSON(http.StatusNotFound, gin.H{"error": "No asset found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"remaining": left.String()}})
}

func (h *HttpReporter) Admin(c *gin.Context) {
	addr := c.Query("addr")
	if addr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "addr must be provided"})
		return
	}

	active, err := h.bridge.IsAdministrator(ethcommon.HexToAddress(addr))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"active": active}})
}
