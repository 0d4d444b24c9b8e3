package inputio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/dsteiner/core"
)

// ReadTerminals tokenizes r as ASCII whitespace-separated integers: a
// count N, then N·core.NumDimensions coordinates (one terminal at a time,
// axes in declaration order).
func ReadTerminals(r io.Reader) ([]core.Point, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	n, err := nextInt(scanner, "number of terminals")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative terminal count %d", ErrMalformedToken, n)
	}
	if n > core.MaxTerminals {
		return nil, fmt.Errorf("%w: got %d, max is %d", ErrTooManyTerminals, n, core.MaxTerminals)
	}

	terminals := make([]core.Point, n)
	for i := int64(0); i < n; i++ {
		for axis := 0; axis < core.NumDimensions; axis++ {
			v, err := nextInt(scanner, fmt.Sprintf("terminal %d", i))
			if err != nil {
				return nil, err
			}
			terminals[i][axis] = core.Coord(v)
		}
	}

	return terminals, nil
}

// nextInt reads the next whitespace-delimited token and parses it as a
// base-10 integer, wrapping failures with what description names.
func nextInt(scanner *bufio.Scanner, what string) (int64, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("%w: reading %s: %v", ErrTruncatedInput, what, err)
		}
		return 0, fmt.Errorf("%w: failed to read %s", ErrTruncatedInput, what)
	}
	v, err := strconv.ParseInt(scanner.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q", ErrMalformedToken, what, scanner.Text())
	}
	return v, nil
}
