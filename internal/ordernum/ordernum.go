// Package ordernum produces human-presentable order numbers like
// BK-20260830-4F21A9. Uniqueness is probabilistic: the UTC date plus a
// random suffix gives a negligible collision chance without a round trip
// to the store, and the store enforces no uniqueness constraint of its
// own. Callers that need hard uniqueness must add a store-side check.
package ordernum

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const prefix = "BK"

// Func generates one order number per call. Declared as a type so services
// can take a generator and tests can pin the output.
type Func func() string

// Generate returns a fresh order number.
func Generate() string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().UTC().Format("20060102"), suffix)
}
