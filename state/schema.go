package state

import "strings"

var (
	strZeroBytes32 = strings.Repeat("0", 64)
	strZeroBytes20 = strings.Repeat("0", 40)

	// per-asset bridge configuration; absence of a row means "unsupported"
	assetTable = `CREATE TABLE IF NOT EXISTS asset (
		assetId VARCHAR(32) PRIMARY KEY NOT NULL,
		kind VARCHAR(12) NOT NULL,
		custodyTarget VARCHAR(64) NOT NULL,
		conversionRate BIGINT UNSIGNED NOT NULL,
		dailyLimit BIGINT UNSIGNED NOT NULL,
		minAmount BIGINT UNSIGNED NOT NULL,
		maxAmount BIGINT UNSIGNED NOT NULL,
		timelockThreshold BIGINT UNSIGNED NOT NULL,
		timelockBlocks BIGINT UNSIGNED NOT NULL,
		active BOOLEAN NOT NULL,
		CONSTRAINT chk_kind CHECK (kind IN ('fungible', 'nonfungible', 'native')),
		CONSTRAINT chk_bounds CHECK (minAmount <= maxAmount)
	);`

	chainTable = `CREATE TABLE IF NOT EXISTS chain (
		chainId VARCHAR(32) PRIMARY KEY NOT NULL,
		name VARCHAR(64) NOT NULL,
		method VARCHAR(10) NOT NULL,
		confirmations BIGINT UNSIGNED NOT NULL,
		active BOOLEAN NOT NULL,
		CONSTRAINT chk_method CHECK (method IN ('merkle', 'signature', 'oracle'))
	);`

	// running custody total per asset, the conservation ledger
	lockedTable = `CREATE TABLE IF NOT EXISTS locked (
		assetId VARCHAR(32) PRIMARY KEY NOT NULL,
		total BIGINT UNSIGNED NOT NULL,
		CONSTRAINT chk_total CHECK (total >= 0)
	);`

	// accumulated transfer volume per asset and day bucket; rows are only
	// ever inserted or increased, a fresh bucket starts implicitly at zero
	dailyTable = `CREATE TABLE IF NOT EXISTS daily (
		assetId VARCHAR(32) NOT NULL,
		bucket BIGINT UNSIGNED NOT NULL,
		used BIGINT UNSIGNED NOT NULL,
		PRIMARY KEY (assetId, bucket)
	);`

	timelockTable = `CREATE TABLE IF NOT EXISTS timelock (
		txId CHAR(64) PRIMARY KEY NOT NULL,
		initiator CHAR(40) NOT NULL,
		assetId VARCHAR(32) NOT NULL,
		amount BIGINT UNSIGNED NOT NULL,
		destChain VARCHAR(32) NOT NULL,
		destAddr VARCHAR(128) NOT NULL,
		unlockHeight BIGINT UNSIGNED NOT NULL,
		released BOOLEAN NOT NULL,
		CONSTRAINT chk_amount CHECK (amount > 0),
		CONSTRAINT chk_txId CHECK (txId != '` + strZeroBytes32 + `'),
		CONSTRAINT chk_initiator CHECK (initiator != '` + strZeroBytes20 + `')
	);`

	// presence-only replay markers for consumed inbound proofs
	proofTable = `CREATE TABLE IF NOT EXISTS proof (
		proofId CHAR(64) PRIMARY KEY NOT NULL,
		CONSTRAINT chk_proofId CHECK (proofId != '` + strZeroBytes32 + `')
	);`

	txTable = `CREATE TABLE IF NOT EXISTS tx (
		txId CHAR(64) PRIMARY KEY NOT NULL,
		initiator CHAR(40) NOT NULL,
		assetId VARCHAR(32) NOT NULL,
		amount BIGINT UNSIGNED NOT NULL,
		srcChain VARCHAR(32) NOT NULL,
		destChain VARCHAR(32) NOT NULL,
		destAddr VARCHAR(128) NOT NULL,
		height BIGINT UNSIGNED NOT NULL,
		status VARCHAR(10) NOT NULL,
		ts BIGINT NOT NULL,
		CONSTRAINT chk_status CHECK (status IN ('pending', 'completed', 'failed')),
		CONSTRAINT chk_amount CHECK (amount > 0),
		CONSTRAINT chk_txId CHECK (txId != '` + strZeroBytes32 + `')
	);`

	adminTable = `CREATE TABLE IF NOT EXISTS admin (
		addr CHAR(40) PRIMARY KEY NOT NULL,
		active BOOLEAN NOT NULL,
		CONSTRAINT chk_addr CHECK (addr != '` + strZeroBytes20 + `')
	);`

	// table stores key-value pairs. Both key and value are a 32-byte hex
	// string without prefix '0x'
	kvTable = `CREATE TABLE IF NOT EXISTS kv (
		key CHAR(64) PRIMARY KEY NOT NULL,
		value CHAR(64) NOT NULL
	);`
)
