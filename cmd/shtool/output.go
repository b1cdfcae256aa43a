package main

import (
	"bufio"
	"encoding/binary"
	"os"

	"github.com/pkg/errors"
)

// writeBuffer writes data as a raw little-endian array. data must be a slice
// of fixed-size values: []float32, []float64, []uint32 or a slice of
// sh.Point of either precision.
func writeBuffer(path string, data any) (err error) {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, data); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(w.Flush(), "flush %s", path)
}
