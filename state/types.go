package state

// AssetKind classifies how an asset's value is custodied on the home chain.
type AssetKind string

const (
	AssetKindFungible    AssetKind = "fungible"
	AssetKindNonFungible AssetKind = "nonfungible"
	AssetKindNative      AssetKind = "native"
)

func (k AssetKind) Valid() bool {
	switch k {
	case AssetKindFungible, AssetKindNonFungible, AssetKindNative:
		return true
	}
	return false
}

// VerificationMethod names the external proof system a chain's inbound
// events are attested with. The bridge core never runs it; it only records
// which one applies.
type VerificationMethod string

const (
	VerifyMerkle    VerificationMethod = "merkle"
	VerifySignature VerificationMethod = "signature"
	VerifyOracle    VerificationMethod = "oracle"
)

func (m VerificationMethod) Valid() bool {
	switch m {
	case VerifyMerkle, VerifySignature, VerifyOracle:
		return true
	}
	return false
}

// TxStatus is the journal lifecycle of one bridge operation.
// pending -> completed (timelock released) or pending -> failed (cancelled).
// Immediate operations are written as completed directly.
type TxStatus string

const (
	TxStatusPending   TxStatus = "pending"
	TxStatusCompleted TxStatus = "completed"
	TxStatusFailed    TxStatus = "failed"
)

// JSON shapes served by the http reporter.

type JSONTransaction struct {
	TxId      string `json:"tx_id"`
	Initiator string `json:"initiator"`
	AssetId   string `json:"asset_id"`
	Amount    string `json:"amount"`
	SrcChain  string `json:"src_chain"`
	DestChain string `json:"dest_chain"`
	DestAddr  string `json:"dest_addr"`
	Height    uint64 `json:"height"`
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

type JSONTimelockEntry struct {
	TxId         string `json:"tx_id"`
	Initiator    string `json:"initiator"`
	AssetId      string `json:"asset_id"`
	Amount       string `json:"amount"`
	DestChain    string `json:"dest_chain"`
	DestAddr     string `json:"dest_addr"`
	UnlockHeight uint64 `json:"unlock_height"`
	Released     bool   `json:"released"`
}
