package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexPrefixHelpers(t *testing.T) {
	assert.Equal(t, "abcd", Trim0xPrefix("0xabcd"))
	assert.Equal(t, "abcd", Trim0xPrefix("0Xabcd"))
	assert.Equal(t, "abcd", Trim0xPrefix("abcd"))

	assert.Equal(t, "0xabcd", Prepend0xPrefix("abcd"))
	assert.Equal(t, "0xabcd", Prepend0xPrefix("0xabcd"))
}

func TestBigIntRoundTrip(t *testing.T) {
	v := big.NewInt(601000)
	hex := BigIntToHexStr(v)
	got := HexStrToBigInt(hex)
	assert.Zero(t, v.Cmp(got))

	b32 := BigInt2Bytes32(v)
	assert.Equal(t, v.Bytes(), new(big.Int).SetBytes(b32[:]).Bytes())
}

func TestUint64ToBytes8(t *testing.T) {
	b := Uint64ToBytes8(0x0102030405060708)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, b)

	assert.Equal(t, make([]byte, 8), Uint64ToBytes8(0))
}

func TestRandHelpers(t *testing.T) {
	a := RandBytes32()
	b := RandBytes32()
	assert.NotEqual(t, a, b)

	addr := RandEthAddress()
	assert.NotZero(t, addr)
}
