package category

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Treasury is the set of addresses owned by the treasury.
type Treasury struct {
	addresses map[common.Address]struct{}
}

func NewTreasury(addresses []common.Address) *Treasury {
	set := make(map[common.Address]struct{}, len(addresses))
	for _, addr := range addresses {
		set[addr] = struct{}{}
	}
	return &Treasury{addresses: set}
}

// Contains reports whether address belongs to the treasury. Non-hex input never matches.
func (t *Treasury) Contains(address string) bool {
	if t == nil || !common.IsHexAddress(address) {
		return false
	}
	_, ok := t.addresses[common.HexToAddress(address)]
	return ok
}

func (t *Treasury) Len() int {
	if t == nil {
		return 0
	}
	return len(t.addresses)
}

// ParseTreasury builds a Treasury from hex addresses. Blank entries are
// skipped; anything else that is not a 20-byte hex address is rejected.
func ParseTreasury(hexes []string) (*Treasury, error) {
	addresses := make([]common.Address, 0, len(hexes))
	for i, raw := range hexes {
		hex := strings.TrimSpace(raw)
		switch {
		case hex == "":
		case common.IsHexAddress(hex):
			addresses = append(addresses, common.HexToAddress(hex))
		default:
			return nil, fmt.Errorf("treasury address %d: %q is not a hex address", i, raw)
		}
	}
	return NewTreasury(addresses), nil
}

// ResolveTxGroup maps the pending label to its inbound or outbound variant.
func (t *Treasury) ResolveTxGroup(txgroup, from string) string {
	if txgroup != PendingLabel {
		return txgroup
	}
	if t.Contains(from) {
		return PendingOutLabel
	}
	return PendingInLabel
}
