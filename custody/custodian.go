// Package custody declares the collaborator that actually moves asset
// value on the home chain. The bridge core sequences and records custody
// movements but never performs them itself; it only trusts this
// collaborator's success or failure signal.
package custody

import (
	"math/big"

	"github.com/crosslock/bridge-go/state"
)

// Custodian moves value of one asset between two holders. An outbound lock
// moves from the depositor into the asset's custody target; an inbound
// release moves from the custody target to the recipient. A returned error
// means the movement did not happen and nothing changed on chain.
type Custodian interface {
	Move(kind state.AssetKind, custodyTarget string, amount *big.Int, from, to string) error
}
