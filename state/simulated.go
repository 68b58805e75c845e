package state

import (
	"database/sql"
	"math/big"

	"github.com/crosslock/bridge-go/common"
	logger "github.com/sirupsen/logrus"
)

func RandAssetConfig() *AssetConfig {
	return &AssetConfig{
		AssetId:           "AST" + common.ByteSliceToPureHexStr(common.RandBytes(4)),
		Kind:              AssetKindFungible,
		CustodyTarget:     "0x" + common.ByteSliceToPureHexStr(common.RandBytes(20)),
		ConversionRate:    1,
		DailyLimit:        big.NewInt(2_000_000),
		MinAmount:         big.NewInt(1),
		MaxAmount:         big.NewInt(1_000_000),
		TimelockThreshold: big.NewInt(500_000),
		TimelockBlocks:    100,
		Active:            true,
	}
}

func RandChainConfig() *ChainConfig {
	return &ChainConfig{
		ChainId:               "chain" + common.ByteSliceToPureHexStr(common.RandBytes(4)),
		Name:                  "Rand Chain",
		Method:                VerifyMerkle,
		RequiredConfirmations: 6,
		Active:                true,
	}
}

func RandTransaction(status TxStatus) *Transaction {
	return &Transaction{
		TxId:      common.RandBytes32(),
		Initiator: common.RandEthAddress(),
		AssetId:   "USDA",
		Amount:    big.NewInt(1000),
		SrcChain:  "home",
		DestChain: "extchain",
		DestAddr:  "ext_rand_address",
		Height:    42,
		Status:    status,
		Timestamp: 1700000000,
	}
}

func RandTimelockEntry() *TimelockEntry {
	return &TimelockEntry{
		TxId:         common.RandBytes32(),
		Initiator:    common.RandEthAddress(),
		AssetId:      "USDA",
		Amount:       big.NewInt(600_000),
		DestChain:    "extchain",
		DestAddr:     "ext_rand_address",
		UnlockHeight: 142,
		Released:     false,
	}
}

func getMemoryDB() *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		logger.Fatal(err)
	}
	return db
}
