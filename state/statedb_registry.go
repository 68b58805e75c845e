package state

import "database/sql"

// UpsertAsset overwrites any prior config under the same asset id. There is
// no delete; deactivation is Active = false.
func (stdb *StateDB) UpsertAsset(a *AssetConfig) error {
	s := &sqlAsset{}
	s, err := s.encode(a)
	if err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO asset
		(assetId, kind, custodyTarget, conversionRate, dailyLimit, minAmount,
		 maxAmount, timelockThreshold, timelockBlocks, active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := stdb.stmtCache.Prepare(query)
	if err != nil {
		return err
	}

	_, err = stmt.Exec(s.AssetId, s.Kind, s.CustodyTarget, s.ConversionRate,
		s.DailyLimit, s.MinAmount, s.MaxAmount, s.TimelockThreshold,
		s.TimelockBlocks, s.Active)
	return err
}

func (stdb *StateDB) GetAsset(assetId string) (*AssetConfig, bool, error) {
	query := `SELECT assetId, kind, custodyTarget, conversionRate, dailyLimit,
		minAmount, maxAmount, timelockThreshold, timelockBlocks, active
		FROM asset WHERE assetId = ?`
	stmt, err := stdb.stmtCache.Prepare(query)
	if err != nil {
		return nil, false, err
	}

	var s sqlAsset
	err = stmt.QueryRow(assetId).Scan(&s.AssetId, &s.Kind, &s.CustodyTarget,
		&s.ConversionRate, &s.DailyLimit, &s.MinAmount, &s.MaxAmount,
		&s.TimelockThreshold, &s.TimelockBlocks, &s.Active)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, err
	}

	a, err := s.decode()
	if err != nil {
		return nil, false, err
	}

	return a, true, nil
}

func (stdb *StateDB) UpsertChain(c *ChainConfig) error {
	s := &sqlChain{}
	s, err := s.encode(c)
	if err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO chain
		(chainId, name, method, confirmations, active)
		VALUES (?, ?, ?, ?, ?)`
	stmt, err := stdb.stmtCache.Prepare(query)
	if err != nil {
		return err
	}

	_, err = stmt.Exec(s.ChainId, s.Name, s.Method, s.Confirmations, s.Active)
	return err
}

func (stdb *StateDB) GetChain(chainId string) (*ChainConfig, bool, error) {
	query := `SELECT chainId, name, method, confirmations, active
		FROM chain WHERE chainId = ?`
	stmt, err := stdb.stmtCache.Prepare(query)
	if err != nil {
		return nil, false, err
	}

	var s sqlChain
	err = stmt.QueryRow(chainId).Scan(&s.ChainId, &s.Name, &s.Method,
		&s.Confirmations, &s.Active)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, err
	}

	c, err := s.decode()
	if err != nil {
		return nil, false, err
	}

	return c, true, nil
}
