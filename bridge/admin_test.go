package bridge

import (
	"math/big"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosslock/bridge-go/common"
	"github.com/crosslock/bridge-go/state"
)

func TestAdminAuthorization(t *testing.T) {
	env := newTestEnv(t)
	stranger := common.RandEthAddress()
	admin := common.RandEthAddress()

	// only the owner appoints admins
	err := env.bridge.SetAdministrator(stranger, admin, true)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	require.NoError(t, env.bridge.SetAdministrator(env.owner, admin, true))
	active, err := env.bridge.IsAdministrator(admin)
	require.NoError(t, err)
	assert.True(t, active)

	// an active admin may configure assets, a stranger may not
	cfg := state.RandAssetConfig()
	assert.NoError(t, env.bridge.SetSupportedAsset(admin, cfg))
	assert.ErrorIs(t, env.bridge.SetSupportedAsset(stranger, cfg), ErrNotAuthorized)

	// deactivated admins lose the rights
	require.NoError(t, env.bridge.SetAdministrator(env.owner, admin, false))
	assert.ErrorIs(t, env.bridge.SetSupportedAsset(admin, cfg), ErrNotAuthorized)
}

func TestAdminInputValidation(t *testing.T) {
	env := newTestEnv(t)

	bad := state.RandAssetConfig()
	bad.Kind = state.AssetKind("synthetic")
	assert.ErrorIs(t, env.bridge.SetSupportedAsset(env.owner, bad), ErrInvalidParameters)

	bad = state.RandAssetConfig()
	bad.MinAmount = big.NewInt(10)
	bad.MaxAmount = big.NewInt(1)
	assert.ErrorIs(t, env.bridge.SetSupportedAsset(env.owner, bad), ErrInvalidParameters)

	badChain := state.RandChainConfig()
	badChain.Method = state.VerificationMethod("gossip")
	assert.ErrorIs(t, env.bridge.SetSupportedChain(env.owner, badChain), ErrInvalidParameters)

	assert.ErrorIs(t, env.bridge.SetAdministrator(env.owner, ethcommon.Address{}, true),
		ErrInvalidParameters)
}

func TestTransferOwnership(t *testing.T) {
	env := newTestEnv(t)
	newOwner := common.RandEthAddress()

	err := env.bridge.TransferOwnership(newOwner, newOwner)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	err = env.bridge.TransferOwnership(env.owner, ethcommon.Address{})
	assert.ErrorIs(t, err, ErrInvalidParameters)

	require.NoError(t, env.bridge.TransferOwnership(env.owner, newOwner))

	got, err := env.bridge.Owner()
	require.NoError(t, err)
	assert.Equal(t, newOwner, got)

	// the old owner is just a stranger now
	err = env.bridge.SetAdministrator(env.owner, common.RandEthAddress(), true)
	assert.ErrorIs(t, err, ErrNotAuthorized)
	err = env.bridge.SetAdministrator(newOwner, common.RandEthAddress(), true)
	assert.NoError(t, err)
}

func TestPauseBlocksCustodyTraffic(t *testing.T) {
	env := newTestEnv(t)

	// a deferred deposit to exercise release/cancel under pause
	txId, err := env.bridge.DepositToExternal(env.alice, "USDA",
		big.NewInt(600_000), testChain, testExtAddr)
	require.NoError(t, err)
	env.heights.Advance(100)

	stranger := common.RandEthAddress()
	assert.ErrorIs(t, env.bridge.SetPaused(stranger, true), ErrNotAuthorized)

	require.NoError(t, env.bridge.SetPaused(env.owner, true))

	_, err = env.bridge.DepositToExternal(env.alice, "USDA",
		big.NewInt(10), testChain, testExtAddr)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	_, err = env.bridge.ProcessExternalDeposit(env.alice, common.RandBytes32(),
		testChain, "USDA", big.NewInt(10), "ext_sender", common.RandEthAddress())
	assert.ErrorIs(t, err, ErrNotAuthorized)

	err = env.bridge.ReleaseTimelockedDeposit(env.alice, txId)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	// reads still answer
	_, ok, err := env.bridge.GetAsset("USDA")
	require.NoError(t, err)
	assert.True(t, ok)
	total, err := env.bridge.TotalLocked("USDA")
	require.NoError(t, err)
	assert.Zero(t, total.Sign())

	// admin configuration stays available while paused
	assert.NoError(t, env.bridge.SetSupportedAsset(env.owner, state.RandAssetConfig()))

	// cancellation moves no custody and stays available
	assert.NoError(t, env.bridge.CancelTimelockedDeposit(env.alice, txId))

	require.NoError(t, env.bridge.SetPaused(env.owner, false))
	_, err = env.bridge.DepositToExternal(env.alice, "USDA",
		big.NewInt(10), testChain, testExtAddr)
	assert.NoError(t, err)
}
