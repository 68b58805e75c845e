// Package bridge is the transactional core of the lock-and-mint bridge.
// The Bridge orchestrator owns the only public entry points; it sequences
// validation, custody movement, and ledger/limiter/journal updates for
// every operation, under one mutex so operations apply strictly serially.
package bridge

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/crosslock/bridge-go/common"
	"github.com/crosslock/bridge-go/custody"
	"github.com/crosslock/bridge-go/state"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type Bridge struct {
	// mu serializes all mutating operations. Admission checks and their
	// state mutations must be atomic as a unit; a single lock is the
	// strict-serial model the ledger requires.
	mu sync.Mutex

	stdb      *state.StateDB
	custodian custody.Custodian
	heights   HeightSource
	cfg       Config
}

// New builds the orchestrator. The owner is set at creation; on restart an
// owner already present in the state db wins over the argument, so a
// transferred ownership survives.
func New(stdb *state.StateDB, custodian custody.Custodian, heights HeightSource, owner ethcommon.Address, cfg Config) (*Bridge, error) {
	cfg.normalize()

	_, ok, err := stdb.GetOwner()
	if err != nil {
		return nil, err
	}
	if !ok {
		if owner == (ethcommon.Address{}) {
			return nil, ErrInvalidParameters
		}
		if err := stdb.SetOwner(owner); err != nil {
			return nil, err
		}
	}

	return &Bridge{
		stdb:      stdb,
		custodian: custodian,
		heights:   heights,
		cfg:       cfg,
	}, nil
}

func (b *Bridge) dayBucket(height uint64) uint64 {
	return height / b.cfg.BlocksPerDay
}

// isAuthorized reports whether the caller is the owner or an active admin.
func (b *Bridge) isAuthorized(caller ethcommon.Address) (bool, error) {
	owner, ok, err := b.stdb.GetOwner()
	if err != nil {
		return false, err
	}
	if ok && owner == caller {
		return true, nil
	}
	return b.stdb.IsActiveAdmin(caller)
}

// nextTxId derives a fresh transaction id from the persisted monotone
// nonce and the initiating identity. A collision with an existing journal
// record can only mean the nonce went backwards, which is fatal.
func (b *Bridge) nextTxId(initiator ethcommon.Address) (ethcommon.Hash, error) {
	nonce, err := b.stdb.GetTxNonce()
	if err != nil {
		return ethcommon.Hash{}, err
	}
	nonce++
	if err := b.stdb.SetTxNonce(nonce); err != nil {
		return ethcommon.Hash{}, err
	}

	txId := crypto.Keccak256Hash(common.Uint64ToBytes8(nonce), initiator.Bytes())

	ok, err := b.stdb.HasTransaction(txId)
	if err != nil {
		return ethcommon.Hash{}, err
	}
	if ok {
		panic(fmt.Sprintf("tx id collision: nonce=%d initiator=%s", nonce, initiator))
	}

	return txId, nil
}

// admit runs the shared admission sequence for a transfer of amount in
// either direction: pause, asset registration/activation, non-zero amount,
// chain registration/activation, configured bounds, daily cap. It mutates
// nothing.
func (b *Bridge) admit(assetId string, amount *big.Int, chainId string, height uint64) (*state.AssetConfig, error) {
	paused, err := b.stdb.GetPaused()
	if err != nil {
		return nil, err
	}
	if paused {
		return nil, ErrNotAuthorized
	}

	asset, ok, err := b.stdb.GetAsset(assetId)
	if err != nil {
		return nil, err
	}
	if !ok || !asset.Active {
		return nil, ErrAssetNotSupported
	}

	if amount == nil || amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	chain, ok, err := b.stdb.GetChain(chainId)
	if err != nil {
		return nil, err
	}
	if !ok || !chain.Active {
		return nil, ErrChainNotSupported
	}

	if amount.Cmp(asset.MinAmount) < 0 || amount.Cmp(asset.MaxAmount) > 0 {
		return nil, ErrInvalidAmount
	}

	used, err := b.stdb.DailyUsed(assetId, b.dayBucket(height))
	if err != nil {
		return nil, err
	}
	if new(big.Int).Add(used, amount).Cmp(asset.DailyLimit) > 0 {
		return nil, ErrDailyLimitExceeded
	}

	return asset, nil
}

// recordUsage charges the daily allowance. Called only after every other
// admission check passed and the custody movement succeeded, so a failed
// operation never consumes allowance.
func (b *Bridge) recordUsage(assetId string, amount *big.Int, height uint64) error {
	return b.stdb.AddDailyUsed(assetId, b.dayBucket(height), amount)
}

// deferred decides whether a deposit of amount must wait behind the
// asset's timelock. A zero threshold disables the timelock for the asset.
func deferred(asset *state.AssetConfig, amount *big.Int) bool {
	return asset.TimelockThreshold.Sign() > 0 &&
		amount.Cmp(asset.TimelockThreshold) >= 0
}
