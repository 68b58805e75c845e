// Server = bridge core + state db + http reporter.
// All components are configured via environment variables (strings!).

package cmd

import (
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	_ "github.com/mattn/go-sqlite3"
	logger "github.com/sirupsen/logrus"

	"github.com/crosslock/bridge-go/bridge"
	"github.com/crosslock/bridge-go/custody"
	"github.com/crosslock/bridge-go/reporter"
	"github.com/crosslock/bridge-go/state"
)

// Keep the configuration's fields as "text" as possible.
// Its easier to load it from env vars or a config file.
type BridgeServerConfig struct {
	// state side
	DbFilePath string // db file path

	// bridge side
	OwnerAddress string // hex address of the bridge owner
	HomeChain    string // chain id recorded for the home side
	BlocksPerDay uint64 // day bucket width for the daily limiter
	StartHeight  uint64 // initial height of the simulated chain tip
	BlockSeconds uint64 // seconds per simulated block, 0 disables ticking

	// Http side
	HttpIp   string // eg. 0.0.0.0
	HttpPort string // eg. 8080
}

// BridgeServer holds the objects that consists of the bridge server.
type BridgeServer struct {
	SqlDB       *sql.DB
	MyStateDb   *state.StateDB
	MyCustodian *custody.SimulatedCustodian
	MyHeights   *bridge.ManualHeightSource
	MyBridge    *bridge.Bridge
	MyReporter  *reporter.HttpReporter
}

// NewBridgeServer assembles the server components from a config.
func NewBridgeServer(bsc *BridgeServerConfig) (*BridgeServer, error) {
	sqlDB, err := sql.Open("sqlite3", bsc.DbFilePath)
	if err != nil {
		logger.Errorf("failed to open state db file %s: %v", bsc.DbFilePath, err)
		return nil, err
	}

	stdb, err := state.NewStateDB(sqlDB)
	if err != nil {
		logger.Errorf("failed to create state db: %v", err)
		sqlDB.Close()
		return nil, err
	}

	custodian := custody.NewSimulatedCustodian()
	heights := bridge.NewManualHeightSource(bsc.StartHeight)

	b, err := bridge.New(stdb, custodian, heights,
		ethcommon.HexToAddress(bsc.OwnerAddress),
		bridge.Config{
			HomeChain:    bsc.HomeChain,
			BlocksPerDay: bsc.BlocksPerDay,
		})
	if err != nil {
		logger.Errorf("failed to create bridge: %v", err)
		stdb.Close()
		sqlDB.Close()
		return nil, err
	}

	return &BridgeServer{
		SqlDB:       sqlDB,
		MyStateDb:   stdb,
		MyCustodian: custodian,
		MyHeights:   heights,
		MyBridge:    b,
		MyReporter:  reporter.NewHttpReporter(bsc.HttpIp, bsc.HttpPort, b),
	}, nil
}

func (bs *BridgeServer) Close() {
	bs.MyStateDb.Close()
	bs.SqlDB.Close()
}

// StartBridgeServerAndWait runs the server until SIGINT/SIGTERM.
func StartBridgeServerAndWait(bsc *BridgeServerConfig) {
	bs, err := NewBridgeServer(bsc)
	if err != nil {
		logger.Fatalf("failed to start bridge server: %v", err)
		return
	}
	defer bs.Close()

	// advance the simulated chain tip
	stopTicker := make(chan struct{})
	if bsc.BlockSeconds > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(bsc.BlockSeconds) * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-stopTicker:
					return
				case <-ticker.C:
					bs.MyHeights.Advance(1)
				}
			}
		}()
	}

	go bs.MyReporter.Run()

	owner, _ := bs.MyBridge.Owner()
	logger.Infof("bridge server up: owner=%s http=%s:%s db=%s",
		owner, bsc.HttpIp, bsc.HttpPort, bsc.DbFilePath)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	close(stopTicker)
	logger.Infof("bridge server shutting down on %v", sig)
}
