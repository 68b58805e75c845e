package state

import (
	"database/sql"
	"math/big"

	"github.com/crosslock/bridge-go/common"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	KeyBridgeOwner  = crypto.Keccak256Hash([]byte("KeyBridgeOwner"))
	KeyBridgePaused = crypto.Keccak256Hash([]byte("KeyBridgePaused"))
	KeyTxNonce      = crypto.Keccak256Hash([]byte("KeyTxNonce"))
)

func (stdb *StateDB) GetOwner() (ethcommon.Address, bool, error) {
	v, ok, err := stdb.GetKeyedValue(KeyBridgeOwner)
	if err != nil || !ok {
		return ethcommon.Address{}, ok, err
	}
	return ethcommon.BytesToAddress(v.Bytes()), true, nil
}

func (stdb *StateDB) SetOwner(owner ethcommon.Address) error {
	return stdb.SetKeyedValue(KeyBridgeOwner, ethcommon.BytesToHash(owner.Bytes()))
}

func (stdb *StateDB) GetPaused() (bool, error) {
	v, ok, err := stdb.GetKeyedValue(KeyBridgePaused)
	if err != nil || !ok {
		return false, err
	}
	return v.Big().Sign() != 0, nil
}

func (stdb *StateDB) SetPaused(paused bool) error {
	flag := big.NewInt(0)
	if paused {
		flag = big.NewInt(1)
	}
	return stdb.SetKeyedValue(KeyBridgePaused, common.BigInt2Bytes32(flag))
}

// GetTxNonce returns the last used transaction nonce, zero before any
// operation was admitted.
func (stdb *StateDB) GetTxNonce() (uint64, error) {
	v, ok, err := stdb.GetKeyedValue(KeyTxNonce)
	if err != nil || !ok {
		return 0, err
	}
	return v.Big().Uint64(), nil
}

func (stdb *StateDB) SetTxNonce(nonce uint64) error {
	val := new(big.Int).SetUint64(nonce)
	return stdb.SetKeyedValue(KeyTxNonce, common.BigInt2Bytes32(val))
}

func (stdb *StateDB) SetAdmin(addr ethcommon.Address, active bool) error {
	query := `INSERT OR REPLACE INTO admin (addr, active) VALUES (?, ?)`
	stmt, err := stdb.stmtCache.Prepare(query)
	if err != nil {
		return err
	}

	_, err = stmt.Exec(addr.String()[2:], active)
	return err
}

func (stdb *StateDB) IsActiveAdmin(addr ethcommon.Address) (bool, error) {
	query := `SELECT active FROM admin WHERE addr = ?`
	stmt, err := stdb.stmtCache.Prepare(query)
	if err != nil {
		return false, err
	}

	var active bool
	if err := stmt.QueryRow(addr.String()[2:]).Scan(&active); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}

	return active, nil
}
