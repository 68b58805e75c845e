package bridge

import (
	ethcommon "github.com/ethereum/go-ethereum/common"
	logger "github.com/sirupsen/logrus"

	"github.com/crosslock/bridge-go/state"
)

// ReleaseTimelockedDeposit performs the custody movement a timelocked
// deposit deferred. Initiator-only, once, and only at or after the entry's
// unlock height.
func (b *Bridge) ReleaseTimelockedDeposit(caller ethcommon.Address, txId ethcommon.Hash) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	paused, err := b.stdb.GetPaused()
	if err != nil {
		return err
	}
	if paused {
		return ErrNotAuthorized
	}

	entry, ok, err := b.stdb.GetTimelock(txId)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidParameters
	}
	if entry.Initiator != caller {
		return ErrNotAuthorized
	}
	if entry.Released {
		return ErrAlreadyProcessed
	}

	height, err := b.heights.CurrentHeight()
	if err != nil {
		return err
	}
	if height < entry.UnlockHeight {
		return ErrTimelockActive
	}

	// configs are never deleted, only deactivated; a missing one here
	// means the registry was tampered with outside the bridge
	asset, ok, err := b.stdb.GetAsset(entry.AssetId)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAssetNotSupported
	}

	err = b.custodian.Move(asset.Kind, asset.CustodyTarget, entry.Amount,
		entry.Initiator.String(), asset.CustodyTarget)
	if err != nil {
		// entry stays unreleased, the initiator may retry
		logger.Errorf("timelock custody lock declined: tx=%s err=%v", txId, err)
		return ErrCustodyMoveFailed
	}

	if err := b.stdb.MarkTimelockReleased(txId); err != nil {
		return err
	}
	if err := b.stdb.AddLocked(entry.AssetId, entry.Amount); err != nil {
		return err
	}
	if err := b.recordUsage(entry.AssetId, entry.Amount, height); err != nil {
		return err
	}
	if err := b.stdb.UpdateTransactionStatus(txId, state.TxStatusCompleted); err != nil {
		return err
	}

	logger.Infof("timelock released: tx=%s asset=%s amount=%s",
		txId, entry.AssetId, entry.Amount)
	return nil
}

// CancelTimelockedDeposit consumes an unreleased entry with no custody
// movement. It is the only exit that needs no waiting: the initiator may
// cancel before or after the unlock height, and even while the bridge is
// paused, because no asset was ever taken at deposit time.
func (b *Bridge) CancelTimelockedDeposit(caller ethcommon.Address, txId ethcommon.Hash) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok, err := b.stdb.GetTimelock(txId)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidParameters
	}
	if entry.Initiator != caller {
		return ErrNotAuthorized
	}
	if entry.Released {
		return ErrAlreadyProcessed
	}

	if err := b.stdb.MarkTimelockReleased(txId); err != nil {
		return err
	}
	if err := b.stdb.UpdateTransactionStatus(txId, state.TxStatusFailed); err != nil {
		return err
	}

	logger.Infof("timelock cancelled: tx=%s asset=%s amount=%s",
		txId, entry.AssetId, entry.Amount)
	return nil
}
