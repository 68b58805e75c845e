package state

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrorAssetIdEmpty       = errors.New("asset id is empty")
	ErrorAssetKindUnknown   = errors.New("asset kind unknown")
	ErrorAssetAmountMissing = errors.New("asset amount field missing")
	ErrorAssetBoundsFlip    = errors.New("asset min amount exceeds max amount")
)

// AssetConfig is the per-asset bridge policy. A registered asset with
// active == false is known but refuses transfers; an unregistered asset is
// unsupported.
type AssetConfig struct {
	AssetId           string
	Kind              AssetKind
	CustodyTarget     string // where custodied value is held/moved
	ConversionRate    uint64 // home units per external unit
	DailyLimit        *big.Int
	MinAmount         *big.Int
	MaxAmount         *big.Int
	TimelockThreshold *big.Int // amounts >= threshold defer custody; 0 disables
	TimelockBlocks    uint64
	Active            bool
}

func (a *AssetConfig) String() string {
	return fmt.Sprintf("%+v", *a)
}

// Validate checks the admin-supplied fields before an upsert.
func (a *AssetConfig) Validate() error {
	if a.AssetId == "" {
		return ErrorAssetIdEmpty
	}
	if !a.Kind.Valid() {
		return ErrorAssetKindUnknown
	}
	if a.DailyLimit == nil || a.MinAmount == nil || a.MaxAmount == nil ||
		a.TimelockThreshold == nil {
		return ErrorAssetAmountMissing
	}
	if a.MinAmount.Cmp(a.MaxAmount) > 0 {
		return ErrorAssetBoundsFlip
	}
	return nil
}

type sqlAsset struct {
	AssetId           string
	Kind              string
	CustodyTarget     string
	ConversionRate    uint64
	DailyLimit        uint64
	MinAmount         uint64
	MaxAmount         uint64
	TimelockThreshold uint64
	TimelockBlocks    uint64
	Active            bool
}

func (s *sqlAsset) encode(a *AssetConfig) (*sqlAsset, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	s.AssetId = a.AssetId
	s.Kind = string(a.Kind)
	s.CustodyTarget = a.CustodyTarget
	s.ConversionRate = a.ConversionRate
	s.DailyLimit = a.DailyLimit.Uint64()
	s.MinAmount = a.MinAmount.Uint64()
	s.MaxAmount = a.MaxAmount.Uint64()
	s.TimelockThreshold = a.TimelockThreshold.Uint64()
	s.TimelockBlocks = a.TimelockBlocks
	s.Active = a.Active

	return s, nil
}

func (s *sqlAsset) decode() (*AssetConfig, error) {
	return &AssetConfig{
		AssetId:           s.AssetId,
		Kind:              AssetKind(s.Kind),
		CustodyTarget:     s.CustodyTarget,
		ConversionRate:    s.ConversionRate,
		DailyLimit:        new(big.Int).SetUint64(s.DailyLimit),
		MinAmount:         new(big.Int).SetUint64(s.MinAmount),
		MaxAmount:         new(big.Int).SetUint64(s.MaxAmount),
		TimelockThreshold: new(big.Int).SetUint64(s.TimelockThreshold),
		TimelockBlocks:    s.TimelockBlocks,
		Active:            s.Active,
	}, nil
}
