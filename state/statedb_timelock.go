package state

import (
	"database/sql"
	"errors"
	"fmt"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

func (stdb *StateDB) InsertTimelock(e *TimelockEntry) error {
	s := &sqlTimelock{}
	s, err := s.encode(e)
	if err != nil {
		return err
	}

	query := `INSERT INTO timelock
		(txId, initiator, assetId, amount, destChain, destAddr, unlockHeight, released)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := stdb.stmtCache.Prepare(query)
	if err != nil {
		return err
	}

	_, err = stmt.Exec(s.TxId, s.Initiator, s.AssetId, s.Amount,
		s.DestChain, s.DestAddr, s.UnlockHeight, s.Released)
	return err
}

func (stdb *StateDB) GetTimelock(txId ethcommon.Hash) (*TimelockEntry, bool, error) {
	query := `SELECT txId, initiator, assetId, amount, destChain, destAddr,
		unlockHeight, released FROM timelock WHERE txId = ?`
	stmt, err := stdb.stmtCache.Prepare(query)
	if err != nil {
		return nil, false, err
	}

	var s sqlTimelock
	id := txId.String()[2:]
	err = stmt.QueryRow(id).Scan(&s.TxId, &s.Initiator, &s.AssetId, &s.Amount,
		&s.DestChain, &s.DestAddr, &s.UnlockHeight, &s.Released)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, err
	}

	e, err := s.decode()
	if err != nil {
		return nil, false, err
	}

	return e, true, nil
}

// MarkTimelockReleased flips the entry's released flag, the single
// permitted mutation of a timelock row. Releasing and cancelling both end
// here; the journal distinguishes them.
func (stdb *StateDB) MarkTimelockReleased(txId ethcommon.Hash) error {
	e, ok, err := stdb.GetTimelock(txId)
	if err != nil {
		return err
	}
	if !ok {
		msg := fmt.Sprintf("timelock not found in statedb for txId=%v", txId)
		return errors.New(msg)
	}
	if e.Released {
		msg := fmt.Sprintf("timelock already released for txId=%v", txId)
		return errors.New(msg)
	}

	query := `UPDATE timelock SET released = ? WHERE txId = ?`
	stmt, err := stdb.stmtCache.Prepare(query)
	if err != nil {
		return err
	}

	_, err = stmt.Exec(true, txId.String()[2:])
	return err
}
