package state

import (
	"testing"

	"github.com/crosslock/bridge-go/common"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestTimelockOps(t *testing.T) {
	sqlDB := getMemoryDB()
	defer sqlDB.Close()
	stdb, err := NewStateDB(sqlDB)
	assert.NoError(t, err)
	defer stdb.Close()

	expected := RandTimelockEntry()

	_, ok, err := stdb.GetTimelock(expected.TxId)
	assert.NoError(t, err)
	assert.False(t, ok)

	err = stdb.InsertTimelock(expected)
	assert.NoError(t, err)

	e, ok, err := stdb.GetTimelock(expected.TxId)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, expected.String(), e.String())
	assert.False(t, e.Released)

	// duplicate txId is refused by the primary key
	err = stdb.InsertTimelock(expected)
	assert.Error(t, err)

	err = stdb.MarkTimelockReleased(expected.TxId)
	assert.NoError(t, err)

	e, ok, err = stdb.GetTimelock(expected.TxId)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, e.Released)

	// released entries are inert
	err = stdb.MarkTimelockReleased(expected.TxId)
	assert.Error(t, err)

	// unknown entries cannot be released
	err = stdb.MarkTimelockReleased(common.RandBytes32())
	assert.Error(t, err)
}
