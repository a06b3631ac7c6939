package checkout

import (
	"math/rand"
	"strings"
)

const (
	orderIDPrefix   = "ORD"
	orderIDLength   = 9
	orderIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// randomOrderID builds the local fallback id: fixed prefix plus a random
// base-36 suffix, uppercased. Used only when the remote store did not
// assign an id; once assigned the id never changes.
func randomOrderID() string {
	var b strings.Builder
	b.Grow(len(orderIDPrefix) + orderIDLength)
	b.WriteString(orderIDPrefix)
	for i := 0; i < orderIDLength; i++ {
		b.WriteByte(orderIDAlphabet[rand.Intn(len(orderIDAlphabet))])
	}
	return strings.ToUpper(b.String())
}
