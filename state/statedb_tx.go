package state

import (
	"database/sql"
	"errors"
	"fmt"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

func (stdb *StateDB) InsertTransaction(t *Transaction) error {
	s := &sqlTransaction{}
	s, err := s.encode(t)
	if err != nil {
		return err
	}

	query := `INSERT INTO tx
		(txId, initiator, assetId, amount, srcChain, destChain, destAddr, height, status, ts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := stdb.stmtCache.Prepare(query)
	if err != nil {
		return err
	}

	_, err = stmt.Exec(s.TxId, s.Initiator, s.AssetId, s.Amount, s.SrcChain,
		s.DestChain, s.DestAddr, s.Height, s.Status, s.Ts)
	return err
}

func (stdb *StateDB) GetTransaction(txId ethcommon.Hash) (*Transaction, bool, error) {
	query := `SELECT txId, initiator, assetId, amount, srcChain, destChain,
		destAddr, height, status, ts FROM tx WHERE txId = ?`
	stmt, err := stdb.stmtCache.Prepare(query)
	if err != nil {
		return nil, false, err
	}

	var s sqlTransaction
	id := txId.String()[2:]
	err = stmt.QueryRow(id).Scan(&s.TxId, &s.Initiator, &s.AssetId, &s.Amount,
		&s.SrcChain, &s.DestChain, &s.DestAddr, &s.Height, &s.Status, &s.Ts)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, err
	}

	t, err := s.decode()
	if err != nil {
		return nil, false, err
	}

	return t, true, nil
}

func (stdb *StateDB) HasTransaction(txId ethcommon.Hash) (bool, error) {
	_, ok, err := stdb.GetTransaction(txId)
	return ok, err
}

// UpdateTransactionStatus moves a journal record out of pending. Completed
// and failed are terminal; rewriting them is refused.
func (stdb *StateDB) UpdateTransactionStatus(txId ethcommon.Hash, status TxStatus) error {
	t, ok, err := stdb.GetTransaction(txId)
	if err != nil {
		return err
	}
	if !ok {
		msg := fmt.Sprintf("tx not found in statedb for txId=%v", txId)
		return errors.New(msg)
	}
	if t.Status != TxStatusPending {
		msg := fmt.Sprintf("tx status is terminal for txId=%v status=%v", txId, t.Status)
		return errors.New(msg)
	}

	query := `UPDATE tx SET status = ? WHERE txId = ?`
	stmt, err := stdb.stmtCache.Prepare(query)
	if err != nil {
		return err
	}

	_, err = stmt.Exec(string(status), txId.String()[2:])
	return err
}
