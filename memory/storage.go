// Package memory provides the flat, byte-addressable main memory that the
// payload producer writes packets into and the DMA controller reads from.
package memory

import (
	"errors"
	"fmt"

	"github.com/sarchlab/vupipe/qword"
)

// ErrOutOfRange is returned when an access touches bytes beyond the storage
// capacity.
var ErrOutOfRange = errors.New("access beyond the storage capacity")

// DefaultUnitSize is the allocation granularity of a Storage.
const DefaultUnitSize = 4096

// A Storage keeps the bytes of the emulated main memory.
//
// The storage is managed in units, similar to pages. Units that are never
// written are not allocated and read back as zeros.
type Storage struct {
	unitSize uint64
	capacity uint64
	data     map[uint64][]byte
}

// NewStorage creates a storage object with the specified capacity in bytes.
func NewStorage(capacity uint64) *Storage {
	return &Storage{
		unitSize: DefaultUnitSize,
		capacity: capacity,
		data:     make(map[uint64][]byte),
	}
}

// Capacity returns the number of addressable bytes.
func (s *Storage) Capacity() uint64 {
	return s.capacity
}

// Contains reports whether [address, address+length) lies inside the storage.
func (s *Storage) Contains(address, length uint64) bool {
	end := address + length
	if end < address {
		return false
	}

	return end <= s.capacity
}

func (s *Storage) parseAddress(addr uint64) (baseAddr, inUnitAddr uint64) {
	inUnitAddr = addr % s.unitSize
	baseAddr = addr - inUnitAddr

	return
}

func (s *Storage) unit(baseAddr uint64, create bool) []byte {
	unit, ok := s.data[baseAddr]
	if !ok && create {
		unit = make([]byte, s.unitSize)
		s.data[baseAddr] = unit
	}

	return unit
}

// Read returns a copy of length bytes starting at address.
func (s *Storage) Read(address, length uint64) ([]byte, error) {
	if !s.Contains(address, length) {
		return nil, fmt.Errorf("read [%#x, +%d): %w", address, length, ErrOutOfRange)
	}

	res := make([]byte, length)
	done := uint64(0)

	for done < length {
		curr := address + done
		baseAddr, inUnitAddr := s.parseAddress(curr)
		n := min(length-done, s.unitSize-inUnitAddr)

		if unit := s.unit(baseAddr, false); unit != nil {
			copy(res[done:done+n], unit[inUnitAddr:inUnitAddr+n])
		}

		done += n
	}

	return res, nil
}

// Write stores data starting at address. Nothing is written if any byte would
// fall outside the storage.
func (s *Storage) Write(address uint64, data []byte) error {
	length := uint64(len(data))
	if !s.Contains(address, length) {
		return fmt.Errorf("write [%#x, +%d): %w", address, length, ErrOutOfRange)
	}

	done := uint64(0)
	for done < length {
		curr := address + done
		baseAddr, inUnitAddr := s.parseAddress(curr)
		n := min(length-done, s.unitSize-inUnitAddr)

		unit := s.unit(baseAddr, true)
		copy(unit[inUnitAddr:inUnitAddr+n], data[done:done+n])

		done += n
	}

	return nil
}

// ReadQW reads the little-endian quadword at address.
func (s *Storage) ReadQW(address uint64) (qword.QW, error) {
	b, err := s.Read(address, qword.Size)
	if err != nil {
		return qword.QW{}, err
	}

	return qword.FromBytes(b), nil
}

// WriteQW stores q at address in little-endian byte order.
func (s *Storage) WriteQW(address uint64, q qword.QW) error {
	b := q.Bytes()
	return s.Write(address, b[:])
}
