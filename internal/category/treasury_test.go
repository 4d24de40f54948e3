package category

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	treasuryAddr = "0x93A62dA5a14C80f265DAbC077fCEE437B1a0Efde"
	outsideAddr  = "0x2222222222222222222222222222222222222222"
)

func TestParseTreasury(t *testing.T) {
	tr, err := ParseTreasury([]string{" " + treasuryAddr, "", outsideAddr})
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Len())
	assert.True(t, tr.Contains(treasuryAddr))
	assert.True(t, tr.Contains(outsideAddr))

	_, err = ParseTreasury([]string{treasuryAddr, "0xnothex"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "treasury address 1")
}

func TestTreasuryContainsIsCaseInsensitive(t *testing.T) {
	tr := NewTreasury([]common.Address{common.HexToAddress(treasuryAddr)})

	assert.True(t, tr.Contains(treasuryAddr))
	assert.True(t, tr.Contains("0x93a62da5a14c80f265dabc077fcee437b1a0efde"))
	assert.False(t, tr.Contains(outsideAddr))
	assert.False(t, tr.Contains("not an address"))
	assert.Equal(t, 1, tr.Len())
}

func TestResolveTxGroup(t *testing.T) {
	tr := NewTreasury([]common.Address{common.HexToAddress(treasuryAddr)})

	assert.Equal(t, PendingOutLabel, tr.ResolveTxGroup(PendingLabel, treasuryAddr))
	assert.Equal(t, PendingInLabel, tr.ResolveTxGroup(PendingLabel, outsideAddr))
	assert.Equal(t, "Vault Fees", tr.ResolveTxGroup("Vault Fees", treasuryAddr))

	var empty *Treasury
	assert.Equal(t, PendingInLabel, empty.ResolveTxGroup(PendingLabel, treasuryAddr))
}

func TestPendingLabels(t *testing.T) {
	assert.Equal(t, "Categorization Pending - out", PendingOutLabel)
	assert.Equal(t, "Categorization Pending - in", PendingInLabel)
}

func TestRank(t *testing.T) {
	rank, ok := Rank(CORLabel)
	assert.True(t, ok)
	assert.Equal(t, 1, rank)

	_, ok = Rank(IgnoreLabel)
	assert.False(t, ok)
}
