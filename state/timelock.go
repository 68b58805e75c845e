package state

import (
	"fmt"
	"math/big"

	"github.com/crosslock/bridge-go/common"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// TimelockEntry is a deferred outbound transfer. No custody moved when it
// was opened; the value transfer happens at release, so cancelling consumes
// the slot with nothing to refund. A released entry is permanently inert,
// whether it was released or cancelled.
type TimelockEntry struct {
	TxId         ethcommon.Hash
	Initiator    ethcommon.Address
	AssetId      string
	Amount       *big.Int
	DestChain    string
	DestAddr     string
	UnlockHeight uint64
	Released     bool
}

func (e *TimelockEntry) String() string {
	return fmt.Sprintf("%+v", *e)
}

func (e *TimelockEntry) ToJSON() *JSONTimelockEntry {
	return &JSONTimelockEntry{
		TxId:         e.TxId.String(),
		Initiator:    e.Initiator.String(),
		AssetId:      e.AssetId,
		Amount:       e.Amount.String(),
		DestChain:    e.DestChain,
		DestAddr:     e.DestAddr,
		UnlockHeight: e.UnlockHeight,
		Released:     e.Released,
	}
}

type sqlTimelock struct {
	TxId         string
	Initiator    string
	AssetId      string
	Amount       uint64
	DestChain    string
	DestAddr     string
	UnlockHeight uint64
	Released     bool
}

func (s *sqlTimelock) encode(e *TimelockEntry) (*sqlTimelock, error) {
	s.TxId = e.TxId.String()[2:]
	s.Initiator = e.Initiator.String()[2:]
	s.AssetId = e.AssetId
	s.Amount = e.Amount.Uint64()
	s.DestChain = e.DestChain
	s.DestAddr = e.DestAddr
	s.UnlockHeight = e.UnlockHeight
	s.Released = e.Released

	return s, nil
}

func (s *sqlTimelock) decode() (*TimelockEntry, error) {
	return &TimelockEntry{
		TxId:         common.HexStrToBytes32(s.TxId),
		Initiator:    ethcommon.HexToAddress("0x" + s.Initiator),
		AssetId:      s.AssetId,
		Amount:       new(big.Int).SetUint64(s.Amount),
		DestChain:    s.DestChain,
		DestAddr:     s.DestAddr,
		UnlockHeight: s.UnlockHeight,
		Released:     s.Released,
	}, nil
}
