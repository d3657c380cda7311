//go:build tinygo && baremetal

package hal

import (
	"encoding/binary"
	"errors"
	"machine"
)

// flashStore keeps the credential resource in the last erase block of the
// on-board flash: 4-byte magic, 2-byte length, then the resource bytes.
type flashStore struct {
	blockSize uint32
	base      uint32
}

var (
	flashMagic          = [4]byte{'L', 'M', 'N', '1'}
	errResourceMissing  = errors.New("resource not found")
	errResourceTooLarge = errors.New("resource too large")
)

func newFlashStore() *flashStore {
	size := uint32(machine.Flash.Size())
	block := uint32(machine.Flash.EraseBlockSize())
	if size == 0 || block == 0 || size < block {
		return &flashStore{}
	}
	return &flashStore{blockSize: block, base: size - block}
}

func (s *flashStore) ReadResource(name string) ([]byte, error) {
	if s.blockSize == 0 {
		return nil, ErrNotImplemented
	}

	var hdr [6]byte
	if _, err := machine.Flash.ReadAt(hdr[:], int64(s.base)); err != nil {
		return nil, err
	}
	if hdr[0] != flashMagic[0] || hdr[1] != flashMagic[1] ||
		hdr[2] != flashMagic[2] || hdr[3] != flashMagic[3] {
		return nil, errResourceMissing
	}

	n := binary.LittleEndian.Uint16(hdr[4:])
	if uint32(n) > s.blockSize-6 {
		return nil, errResourceMissing
	}

	data := make([]byte, n)
	if _, err := machine.Flash.ReadAt(data, int64(s.base+6)); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *flashStore) WriteResource(name string, data []byte) error {
	if s.blockSize == 0 {
		return ErrNotImplemented
	}
	if uint32(len(data)) > s.blockSize-6 {
		return errResourceTooLarge
	}

	if err := machine.Flash.EraseBlocks(int64(s.base/s.blockSize), 1); err != nil {
		return err
	}

	buf := make([]byte, 6+len(data))
	copy(buf, flashMagic[:])
	binary.LittleEndian.PutUint16(buf[4:], uint16(len(data)))
	copy(buf[6:], data)

	_, err := machine.Flash.WriteAt(buf, int64(s.base))
	return err
}
