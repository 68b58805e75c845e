package state

import (
	"testing"

	"github.com/crosslock/bridge-go/common"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestOwnerAndPause(t *testing.T) {
	sqlDB := getMemoryDB()
	defer sqlDB.Close()
	stdb, err := NewStateDB(sqlDB)
	assert.NoError(t, err)
	defer stdb.Close()

	_, ok, err := stdb.GetOwner()
	assert.NoError(t, err)
	assert.False(t, ok)

	owner := common.RandEthAddress()
	assert.NoError(t, stdb.SetOwner(owner))

	got, ok, err := stdb.GetOwner()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, owner, got)

	paused, err := stdb.GetPaused()
	assert.NoError(t, err)
	assert.False(t, paused)

	assert.NoError(t, stdb.SetPaused(true))
	paused, err = stdb.GetPaused()
	assert.NoError(t, err)
	assert.True(t, paused)

	assert.NoError(t, stdb.SetPaused(false))
	paused, err = stdb.GetPaused()
	assert.NoError(t, err)
	assert.False(t, paused)
}

func TestAdminSet(t *testing.T) {
	sqlDB := getMemoryDB()
	defer sqlDB.Close()
	stdb, err := NewStateDB(sqlDB)
	assert.NoError(t, err)
	defer stdb.Close()

	admin := common.RandEthAddress()

	active, err := stdb.IsActiveAdmin(admin)
	assert.NoError(t, err)
	assert.False(t, active)

	assert.NoError(t, stdb.SetAdmin(admin, true))
	active, err = stdb.IsActiveAdmin(admin)
	assert.NoError(t, err)
	assert.True(t, active)

	// deactivation keeps the row, flips the flag
	assert.NoError(t, stdb.SetAdmin(admin, false))
	active, err = stdb.IsActiveAdmin(admin)
	assert.NoError(t, err)
	assert.False(t, active)
}

func TestTxNonce(t *testing.T) {
	sqlDB := getMemoryDB()
	defer sqlDB.Close()
	stdb, err := NewStateDB(sqlDB)
	assert.NoError(t, err)
	defer stdb.Close()

	nonce, err := stdb.GetTxNonce()
	assert.NoError(t, err)
	assert.Zero(t, nonce)

	assert.NoError(t, stdb.SetTxNonce(7))
	nonce, err = stdb.GetTxNonce()
	assert.NoError(t, err)
	assert.Equal(t, uint64(7), nonce)
}
