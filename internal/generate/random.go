package generate

import (
	cryptorand "crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
	"sync"
)

// digitSource draws uniform digits and indices from an io.Reader. Reads are
// serialised so non-thread-safe readers can be injected in tests.
type digitSource struct {
	mu sync.Mutex
	r  io.Reader
}

func newDigitSource(r io.Reader) *digitSource {
	if r == nil {
		r = cryptorand.Reader
	}
	return &digitSource{r: r}
}

// digits returns count uniform decimal digits. Bytes >= 250 are rejected so
// every digit has the same probability.
func (d *digitSource) digits(count int) (string, error) {
	if count <= 0 {
		return "", nil
	}
	const threshold = 250

	d.mu.Lock()
	defer d.mu.Unlock()

	var sb strings.Builder
	sb.Grow(count)
	buf := make([]byte, 32)
	for sb.Len() < count {
		n, err := d.r.Read(buf)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		for i := 0; i < n && sb.Len() < count; i++ {
			if buf[i] < threshold {
				sb.WriteByte('0' + buf[i]%10)
			}
		}
	}
	return sb.String(), nil
}

// intn returns a uniform integer in [0, n).
func (d *digitSource) intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("intn: n must be positive, got %d", n)
	}
	if n == 1 {
		return 0, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	v, err := cryptorand.Int(d.r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return int(v.Int64()), nil
}

// pick returns one byte from choices.
func (d *digitSource) pick(choices string) (byte, error) {
	i, err := d.intn(len(choices))
	if err != nil {
		return 0, err
	}
	return choices[i], nil
}
