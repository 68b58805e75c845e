package custody

import (
	"errors"
	"math/big"
	"sync"

	"github.com/crosslock/bridge-go/state"
	logger "github.com/sirupsen/logrus"
)

var (
	ErrorMoveRejected      = errors.New("custody move rejected")
	ErrorInsufficientFunds = errors.New("holder balance insufficient")
)

// SimulatedCustodian is an in-memory token ledger standing in for the real
// on-chain custody contract. Balances are namespaced by custody target so
// several assets can share one simulation.
type SimulatedCustodian struct {
	mu       sync.Mutex
	balances map[string]map[string]*big.Int // custodyTarget -> holder -> balance
	reject   bool
	moves    int
}

func NewSimulatedCustodian() *SimulatedCustodian {
	return &SimulatedCustodian{
		balances: make(map[string]map[string]*big.Int),
	}
}

// Fund seeds a holder balance, for tests and demos.
func (sc *SimulatedCustodian) Fund(custodyTarget, holder string, amount *big.Int) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.credit(custodyTarget, holder, amount)
}

func (sc *SimulatedCustodian) Balance(custodyTarget, holder string) *big.Int {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if m, ok := sc.balances[custodyTarget]; ok {
		if b, ok := m[holder]; ok {
			return new(big.Int).Set(b)
		}
	}
	return big.NewInt(0)
}

// SetReject makes every following Move fail, simulating the collaborator
// declining movements.
func (sc *SimulatedCustodian) SetReject(reject bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.reject = reject
}

// Moves returns the number of successful movements performed.
func (sc *SimulatedCustodian) Moves() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	return sc.moves
}

func (sc *SimulatedCustodian) Move(kind state.AssetKind, custodyTarget string, amount *big.Int, from, to string) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.reject {
		return ErrorMoveRejected
	}

	bal := big.NewInt(0)
	if m, ok := sc.balances[custodyTarget]; ok {
		if b, ok := m[from]; ok {
			bal = b
		}
	}
	if bal.Cmp(amount) < 0 {
		logger.Debugf("simulated custodian: %s holds %s of %s, needs %s",
			from, bal.String(), custodyTarget, amount.String())
		return ErrorInsufficientFunds
	}

	bal.Sub(bal, amount)
	sc.credit(custodyTarget, to, amount)
	sc.moves++

	return nil
}

func (sc *SimulatedCustodian) credit(custodyTarget, holder string, amount *big.Int) {
	m, ok := sc.balances[custodyTarget]
	if !ok {
		m = make(map[string]*big.Int)
		sc.balances[custodyTarget] = m
	}

	b, ok := m[holder]
	if !ok {
		b = big.NewInt(0)
		m[holder] = b
	}
	b.Add(b, amount)
}
