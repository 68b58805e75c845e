package bridge

import (
	"math/big"
	"time"

	"github.com/crosslock/bridge-go/state"
	ethcommon "github.com/ethereum/go-ethereum/common"
	logger "github.com/sirupsen/logrus"
)

// DepositToExternal admits an outbound transfer (home -> external). Small
// deposits move the caller's value into custody immediately; deposits at or
// above the asset's timelock threshold only open a timelock entry, and the
// custody movement happens later at release. That deferral means a
// cancelled entry never needs a refund because nothing was taken.
func (b *Bridge) DepositToExternal(caller ethcommon.Address, assetId string, amount *big.Int, destChain, destAddr string) (ethcommon.Hash, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	height, err := b.heights.CurrentHeight()
	if err != nil {
		return ethcommon.Hash{}, err
	}

	asset, err := b.admit(assetId, amount, destChain, height)
	if err != nil {
		return ethcommon.Hash{}, err
	}

	txId, err := b.nextTxId(caller)
	if err != nil {
		return ethcommon.Hash{}, err
	}

	tx := &state.Transaction{
		TxId:      txId,
		Initiator: caller,
		AssetId:   assetId,
		Amount:    amount,
		SrcChain:  b.cfg.HomeChain,
		DestChain: destChain,
		DestAddr:  destAddr,
		Height:    height,
		Timestamp: time.Now().Unix(),
	}

	if deferred(asset, amount) {
		entry := &state.TimelockEntry{
			TxId:         txId,
			Initiator:    caller,
			AssetId:      assetId,
			Amount:       amount,
			DestChain:    destChain,
			DestAddr:     destAddr,
			UnlockHeight: height + asset.TimelockBlocks,
			Released:     false,
		}
		if err := b.stdb.InsertTimelock(entry); err != nil {
			return ethcommon.Hash{}, err
		}

		tx.Status = state.TxStatusPending
		if err := b.stdb.InsertTransaction(tx); err != nil {
			return ethcommon.Hash{}, err
		}

		logger.Infof("deposit deferred: tx=%s asset=%s amount=%s unlock=%d",
			txId, assetId, amount, entry.UnlockHeight)
		return txId, nil
	}

	// take custody now
	err = b.custodian.Move(asset.Kind, asset.CustodyTarget, amount,
		caller.String(), asset.CustodyTarget)
	if err != nil {
		logger.Errorf("custody lock declined: tx=%s asset=%s amount=%s err=%v",
			txId, assetId, amount, err)
		return ethcommon.Hash{}, ErrCustodyMoveFailed
	}

	if err := b.stdb.AddLocked(assetId, amount); err != nil {
		return ethcommon.Hash{}, err
	}
	if err := b.recordUsage(assetId, amount, height); err != nil {
		return ethcommon.Hash{}, err
	}

	tx.Status = state.TxStatusCompleted
	if err := b.stdb.InsertTransaction(tx); err != nil {
		return ethcommon.Hash{}, err
	}

	logger.Infof("deposit locked: tx=%s asset=%s amount=%s dest=%s",
		txId, assetId, amount, destChain)
	return txId, nil
}

// ProcessExternalDeposit admits an inbound transfer (external -> home)
// funded by a not-yet-consumed proof. The proof id is recorded strictly
// before the custody release, so the same proof can never fund two
// releases; if the release then fails, the proof stays consumed and the
// value stays in the pool. Losing such a proof is the accepted cost of
// replay safety.
func (b *Bridge) ProcessExternalDeposit(caller ethcommon.Address, proofId ethcommon.Hash, chainId, assetId string, amount *big.Int, sourceAddr string, recipient ethcommon.Address) (ethcommon.Hash, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	height, err := b.heights.CurrentHeight()
	if err != nil {
		return ethcommon.Hash{}, err
	}

	asset, err := b.admit(assetId, amount, chainId, height)
	if err != nil {
		return ethcommon.Hash{}, err
	}

	consumed, err := b.stdb.HasProof(proofId)
	if err != nil {
		return ethcommon.Hash{}, err
	}
	if consumed {
		return ethcommon.Hash{}, ErrAlreadyProcessed
	}
	if err := b.stdb.InsertProof(proofId); err != nil {
		return ethcommon.Hash{}, err
	}

	txId, err := b.nextTxId(caller)
	if err != nil {
		return ethcommon.Hash{}, err
	}

	err = b.custodian.Move(asset.Kind, asset.CustodyTarget, amount,
		asset.CustodyTarget, recipient.String())
	if err != nil {
		logger.Errorf("custody release declined: tx=%s proof=%s asset=%s amount=%s err=%v",
			txId, proofId, assetId, amount, err)
		return ethcommon.Hash{}, ErrCustodyMoveFailed
	}

	if err := b.stdb.SubLocked(assetId, amount); err != nil {
		return ethcommon.Hash{}, err
	}
	if err := b.recordUsage(assetId, amount, height); err != nil {
		return ethcommon.Hash{}, err
	}

	tx := &state.Transaction{
		TxId:      txId,
		Initiator: caller,
		AssetId:   assetId,
		Amount:    amount,
		SrcChain:  chainId,
		DestChain: b.cfg.HomeChain,
		DestAddr:  recipient.String(),
		Height:    height,
		Status:    state.TxStatusCompleted,
		Timestamp: time.Now().Unix(),
	}
	if err := b.stdb.InsertTransaction(tx); err != nil {
		return ethcommon.Hash{}, err
	}

	logger.Infof("inbound deposit released: tx=%s proof=%s asset=%s amount=%s to=%s",
		txId, proofId, assetId, amount, recipient)
	return txId, nil
}
