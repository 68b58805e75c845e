package bridge

import (
	"math/big"

	"github.com/crosslock/bridge-go/state"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// Read-only queries. None of them are gated by the pause flag.

func (b *Bridge) GetAsset(assetId string) (*state.AssetConfig, bool, error) {
	return b.stdb.GetAsset(assetId)
}

func (b *Bridge) GetChain(chainId string) (*state.ChainConfig, bool, error) {
	return b.stdb.GetChain(chainId)
}

func (b *Bridge) GetTransaction(txId ethcommon.Hash) (*state.Transaction, bool, error) {
	return b.stdb.GetTransaction(txId)
}

func (b *Bridge) GetTimelock(txId ethcommon.Hash) (*state.TimelockEntry, bool, error) {
	return b.stdb.GetTimelock(txId)
}

func (b *Bridge) IsProofProcessed(proofId ethcommon.Hash) (bool, error) {
	return b.stdb.HasProof(proofId)
}

func (b *Bridge) TotalLocked(assetId string) (*big.Int, error) {
	return b.stdb.TotalLocked(assetId)
}

// RemainingDailyAllowance returns how much more of the asset may move
// within the current day bucket, zero when the cap is spent.
func (b *Bridge) RemainingDailyAllowance(assetId string) (*big.Int, error) {
	asset, ok, err := b.stdb.GetAsset(assetId)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAssetNotSupported
	}

	height, err := b.heights.CurrentHeight()
	if err != nil {
		return nil, err
	}

	used, err := b.stdb.DailyUsed(assetId, b.dayBucket(height))
	if err != nil {
		return nil, err
	}

	left := new(big.Int).Sub(asset.DailyLimit, used)
	if left.Sign() < 0 {
		left = big.NewInt(0)
	}
	return left, nil
}

func (b *Bridge) IsAdministrator(addr ethcommon.Address) (bool, error) {
	return b.stdb.IsActiveAdmin(addr)
}

func (b *Bridge) Owner() (ethcommon.Address, error) {
	owner, _, err := b.stdb.GetOwner()
	return owner, err
}

func (b *Bridge) Paused() (bool, error) {
	return b.stdb.GetPaused()
}
