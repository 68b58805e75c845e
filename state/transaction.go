package state

import (
	"fmt"
	"math/big"

	"github.com/crosslock/bridge-go/common"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// Transaction is the journal record of one bridge operation attempt that
// passed admission. Immediate operations are written as completed; a
// timelocked deposit is written pending and later moves to completed
// (released) or failed (cancelled).
type Transaction struct {
	TxId      ethcommon.Hash
	Initiator ethcommon.Address
	AssetId   string
	Amount    *big.Int
	SrcChain  string
	DestChain string
	DestAddr  string
	Height    uint64
	Status    TxStatus
	Timestamp int64
}

func (t *Transaction) String() string {
	return fmt.Sprintf("%+v", *t)
}

func (t *Transaction) ToJSON() *JSONTransaction {
	return &JSONTransaction{
		TxId:      t.TxId.String(),
		Initiator: t.Initiator.String(),
		AssetId:   t.AssetId,
		Amount:    t.Amount.String(),
		SrcChain:  t.SrcChain,
		DestChain: t.DestChain,
		DestAddr:  t.DestAddr,
		Height:    t.Height,
		Status:    string(t.Status),
		Timestamp: t.Timestamp,
	}
}

type sqlTransaction struct {
	TxId      string
	Initiator string
	AssetId   string
	Amount    uint64
	SrcChain  string
	DestChain string
	DestAddr  string
	Height    uint64
	Status    string
	Ts        int64
}

func (s *sqlTransaction) encode(t *Transaction) (*sqlTransaction, error) {
	s.TxId = t.TxId.String()[2:]
	s.Initiator = t.Initiator.String()[2:]
	s.AssetId = t.AssetId
	s.Amount = t.Amount.Uint64()
	s.SrcChain = t.SrcChain
	s.DestChain = t.DestChain
	s.DestAddr = t.DestAddr
	s.Height = t.Height
	s.Status = string(t.Status)
	s.Ts = t.Timestamp

	return s, nil
}

func (s *sqlTransaction) decode() (*Transaction, error) {
	return &Transaction{
		TxId:      common.HexStrToBytes32(s.TxId),
		Initiator: ethcommon.HexToAddress("0x" + s.Initiator),
		AssetId:   s.AssetId,
		Amount:    new(big.Int).SetUint64(s.Amount),
		SrcChain:  s.SrcChain,
		DestChain: s.DestChain,
		DestAddr:  s.DestAddr,
		Height:    s.Height,
		Status:    TxStatus(s.Status),
		Timestamp: s.Ts,
	}, nil
}
