package investmate

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Asset is one investment of a ledger.
//
// The ID is chosen by the owner and used to find the asset again; nothing
// prevents two assets from sharing it. Value is free text until it is needed
// as a number.
type Asset struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// Amount parses the value as a decimal number.
func (a Asset) Amount() (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(a.Value))
}

// IsBlank reports whether the asset carries no data at all.
func (a Asset) IsBlank() bool { return isBlank(a.ID, a.Name, a.Value, a.Type) }

// EncodeAsset returns the ledger line of a: "id,name,value,type".
func EncodeAsset(a Asset) (string, error) {
	return encodeRecord(a.ID, a.Name, a.Value, a.Type)
}

// DecodeAsset parses a ledger line.
//
// Lines with extra fields come from names written with an unescaped comma:
// id, value and type are at fixed positions from both ends, the name gets the
// rest.
func DecodeAsset(line string) (Asset, error) {
	fields, err := decodeRecord(line, 4)
	if err != nil {
		return Asset{}, err
	}
	n := len(fields)
	if n < 4 {
		return Asset{}, fmt.Errorf("%w: asset record %q has %d fields, want 4", ErrInvalidInput, line, n)
	}
	return Asset{
		ID:    fields[0],
		Name:  joinTail(fields[1 : n-2]),
		Value: fields[n-2],
		Type:  fields[n-1],
	}, nil
}
