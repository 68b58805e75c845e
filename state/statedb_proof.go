package state

import (
	"database/sql"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// HasProof reports whether an inbound proof id has already been consumed.
func (stdb *StateDB) HasProof(proofId ethcommon.Hash) (bool, error) {
	query := `SELECT proofId FROM proof WHERE proofId = ?`
	stmt, err := stdb.stmtCache.Prepare(query)
	if err != nil {
		return false, err
	}

	var id string
	if err := stmt.QueryRow(proofId.String()[2:]).Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// InsertProof records a consumed proof id. Rows are never removed: once a
// proof funded (or attempted to fund) a release it can never fund another.
func (stdb *StateDB) InsertProof(proofId ethcommon.Hash) error {
	query := `INSERT INTO proof (proofId) VALUES (?)`
	stmt, err := stdb.stmtCache.Prepare(query)
	if err != nil {
		return err
	}

	_, err = stmt.Exec(proofId.String()[2:])
	return err
}
