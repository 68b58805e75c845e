package state

import (
	"math/big"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestLockedLedgerOps(t *testing.T) {
	sqlDB := getMemoryDB()
	defer sqlDB.Close()
	stdb, err := NewStateDB(sqlDB)
	assert.NoError(t, err)
	defer stdb.Close()

	// unknown asset reads as zero
	total, err := stdb.TotalLocked("USDA")
	assert.NoError(t, err)
	assert.Zero(t, total.Sign())

	err = stdb.AddLocked("USDA", big.NewInt(1000))
	assert.NoError(t, err)
	err = stdb.AddLocked("USDA", big.NewInt(600_000))
	assert.NoError(t, err)

	total, err = stdb.TotalLocked("USDA")
	assert.NoError(t, err)
	assert.Zero(t, total.Cmp(big.NewInt(601_000)))

	err = stdb.SubLocked("USDA", big.NewInt(600_000))
	assert.NoError(t, err)
	total, err = stdb.TotalLocked("USDA")
	assert.NoError(t, err)
	assert.Zero(t, total.Cmp(big.NewInt(1000)))

	// ledger per asset is independent
	total, err = stdb.TotalLocked("WBTC")
	assert.NoError(t, err)
	assert.Zero(t, total.Sign())
}

func TestSubLockedUnderflowPanics(t *testing.T) {
	sqlDB := getMemoryDB()
	defer sqlDB.Close()
	stdb, err := NewStateDB(sqlDB)
	assert.NoError(t, err)
	defer stdb.Close()

	err = stdb.AddLocked("USDA", big.NewInt(100))
	assert.NoError(t, err)

	assert.Panics(t, func() {
		_ = stdb.SubLocked("USDA", big.NewInt(101))
	})
}

func TestDailyUsageBuckets(t *testing.T) {
	sqlDB := getMemoryDB()
	defer sqlDB.Close()
	stdb, err := NewStateDB(sqlDB)
	assert.NoError(t, err)
	defer stdb.Close()

	used, err := stdb.DailyUsed("USDA", 7)
	assert.NoError(t, err)
	assert.Zero(t, used.Sign())

	err = stdb.AddDailyUsed("USDA", 7, big.NewInt(1_000_000))
	assert.NoError(t, err)
	err = stdb.AddDailyUsed("USDA", 7, big.NewInt(1_000_000))
	assert.NoError(t, err)

	used, err = stdb.DailyUsed("USDA", 7)
	assert.NoError(t, err)
	assert.Zero(t, used.Cmp(big.NewInt(2_000_000)))

	// a fresh bucket starts at zero
	used, err = stdb.DailyUsed("USDA", 8)
	assert.NoError(t, err)
	assert.Zero(t, used.Sign())

	// other assets have their own accumulators
	used, err = stdb.DailyUsed("WBTC", 7)
	assert.NoError(t, err)
	assert.Zero(t, used.Sign())
}
