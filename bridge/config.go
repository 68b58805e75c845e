package bridge

const (
	// DefaultBlocksPerDay is the fixed-width day bucket used by the daily
	// limiter, a block-count approximation of one calendar day. Block-time
	// drift is not modeled; operators tune this per home chain.
	DefaultBlocksPerDay = 7200

	// DefaultHomeChain is the chain id recorded in the journal for the
	// home side of a transfer.
	DefaultHomeChain = "home"
)

type Config struct {
	HomeChain    string
	BlocksPerDay uint64
}

func (c *Config) normalize() {
	if c.HomeChain == "" {
		c.HomeChain = DefaultHomeChain
	}
	if c.BlocksPerDay == 0 {
		c.BlocksPerDay = DefaultBlocksPerDay
	}
}

// HeightSource supplies the current home-chain block height. Timelock
// expiry and day buckets are computed against it.
type HeightSource interface {
	CurrentHeight() (uint64, error)
}
