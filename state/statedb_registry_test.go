package state

import (
	"math/big"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestAssetRegistryOps(t *testing.T) {
	sqlDB := getMemoryDB()
	defer sqlDB.Close()
	stdb, err := NewStateDB(sqlDB)
	assert.NoError(t, err)
	defer stdb.Close()

	_, ok, err := stdb.GetAsset("USDA")
	assert.NoError(t, err)
	assert.False(t, ok)

	expected := RandAssetConfig()
	expected.AssetId = "USDA"

	err = stdb.UpsertAsset(expected)
	assert.NoError(t, err)

	a, ok, err := stdb.GetAsset("USDA")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, expected.String(), a.String())

	// upsert overwrites, not merges
	expected.Active = false
	expected.MaxAmount = big.NewInt(500)
	expected.MinAmount = big.NewInt(5)
	err = stdb.UpsertAsset(expected)
	assert.NoError(t, err)

	a, ok, err = stdb.GetAsset("USDA")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, a.Active)
	assert.Zero(t, a.MaxAmount.Cmp(big.NewInt(500)))
}

func TestAssetUpsertRejectsBadConfig(t *testing.T) {
	sqlDB := getMemoryDB()
	defer sqlDB.Close()
	stdb, err := NewStateDB(sqlDB)
	assert.NoError(t, err)
	defer stdb.Close()

	bad := RandAssetConfig()
	bad.Kind = AssetKind("synthetic")
	assert.ErrorIs(t, stdb.UpsertAsset(bad), ErrorAssetKindUnknown)

	bad = RandAssetConfig()
	bad.MinAmount = big.NewInt(100)
	bad.MaxAmount = big.NewInt(10)
	assert.ErrorIs(t, stdb.UpsertAsset(bad), ErrorAssetBoundsFlip)

	bad = RandAssetConfig()
	bad.AssetId = ""
	assert.ErrorIs(t, stdb.UpsertAsset(bad), ErrorAssetIdEmpty)
}

func TestChainRegistryOps(t *testing.T) {
	sqlDB := getMemoryDB()
	defer sqlDB.Close()
	stdb, err := NewStateDB(sqlDB)
	assert.NoError(t, err)
	defer stdb.Close()

	_, ok, err := stdb.GetChain("extchain")
	assert.NoError(t, err)
	assert.False(t, ok)

	expected := RandChainConfig()
	expected.ChainId = "extchain"

	err = stdb.UpsertChain(expected)
	assert.NoError(t, err)

	c, ok, err := stdb.GetChain("extchain")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, expected.String(), c.String())

	bad := RandChainConfig()
	bad.Method = VerificationMethod("trust-me")
	assert.ErrorIs(t, stdb.UpsertChain(bad), ErrorChainMethodUnkown)
}
