package state

import (
	"database/sql"
	"fmt"
	"math/big"
)

// TotalLocked returns the custody ledger total for an asset, zero for
// assets with no row.
func (stdb *StateDB) TotalLocked(assetId string) (*big.Int, error) {
	query := `SELECT total FROM locked WHERE assetId = ?`
	stmt, err := stdb.stmtCache.Prepare(query)
	if err != nil {
		return nil, err
	}

	var total uint64
	if err := stmt.QueryRow(assetId).Scan(&total); err != nil {
		if err == sql.ErrNoRows {
			return big.NewInt(0), nil
		}
		return nil, err
	}

	return new(big.Int).SetUint64(total), nil
}

// AddLocked grows the custody ledger after a successful lock.
func (stdb *StateDB) AddLocked(assetId string, amount *big.Int) error {
	cur, err := stdb.TotalLocked(assetId)
	if err != nil {
		return err
	}

	return stdb.setLocked(assetId, new(big.Int).Add(cur, amount))
}

// SubLocked shrinks the custody ledger after a successful release. The
// admission checks guarantee the pool covers the amount; a result below
// zero means the conservation invariant is already broken, which is a
// programming error, not a user-facing failure.
func (stdb *StateDB) SubLocked(assetId string, amount *big.Int) error {
	cur, err := stdb.TotalLocked(assetId)
	if err != nil {
		return err
	}

	next := new(big.Int).Sub(cur, amount)
	if next.Sign() < 0 {
		panic(fmt.Sprintf(
			"locked balance underflow: asset=%s total=%s sub=%s",
			assetId, cur.String(), amount.String()))
	}

	return stdb.setLocked(assetId, next)
}

func (stdb *StateDB) setLocked(assetId string, total *big.Int) error {
	query := `INSERT OR REPLACE INTO locked (assetId, total) VALUES (?, ?)`
	stmt, err := stdb.stmtCache.Prepare(query)
	if err != nil {
		return err
	}

	_, err = stmt.Exec(assetId, total.Uint64())
	return err
}

// DailyUsed returns the accumulated transfer volume for an asset within a
// day bucket, zero when the bucket has no row yet.
func (stdb *StateDB) DailyUsed(assetId string, bucket uint64) (*big.Int, error) {
	query := `SELECT used FROM daily WHERE assetId = ? AND bucket = ?`
	stmt, err := stdb.stmtCache.Prepare(query)
	if err != nil {
		return nil, err
	}

	var used uint64
	if err := stmt.QueryRow(assetId, bucket).Scan(&used); err != nil {
		if err == sql.ErrNoRows {
			return big.NewInt(0), nil
		}
		return nil, err
	}

	return new(big.Int).SetUint64(used), nil
}

// AddDailyUsed records consumed daily allowance. Buckets are never
// decremented; old buckets simply stop being consulted.
func (stdb *StateDB) AddDailyUsed(assetId string, bucket uint64, amount *big.Int) error {
	cur, err := stdb.DailyUsed(assetId, bucket)
	if err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO daily (assetId, bucket, used) VALUES (?, ?, ?)`
	stmt, err := stdb.stmtCache.Prepare(query)
	if err != nil {
		return err
	}

	_, err = stmt.Exec(assetId, bucket, new(big.Int).Add(cur, amount).Uint64())
	return err
}
