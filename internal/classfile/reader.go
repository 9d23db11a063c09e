package classfile

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf16"
)

// Provides utilities for reading class-file data in big-endian format
type BinaryReader struct {
	reader    *bufio.Reader
	bytesRead int64
	size      int64 // total input length, -1 when unknown
}

func NewBinaryReader(reader io.Reader) *BinaryReader {
	return &BinaryReader{
		reader: bufio.NewReader(reader),
		size:   -1,
	}
}

// NewBytesReader reads from an in-memory buffer. Lengths read from the data are
// checked against what is left before anything is allocated.
func NewBytesReader(data []byte) *BinaryReader {
	br := NewBinaryReader(bytes.NewReader(data))
	br.size = int64(len(data))
	return br
}

func (br *BinaryReader) BytesRead() int64 {
	return br.bytesRead
}

// Remaining returns the number of unread bytes, or -1 when the input size is unknown
func (br *BinaryReader) Remaining() int64 {
	if br.size < 0 {
		return -1
	}
	return br.size - br.bytesRead
}

func (br *BinaryReader) ensure(n int) error {
	if n < 0 {
		return fmt.Errorf("invalid length: %d", n)
	}
	if left := br.Remaining(); left >= 0 && int64(n) > left {
		return fmt.Errorf("%w: need %d bytes, %d left", io.ErrUnexpectedEOF, n, left)
	}
	return nil
}

// ReadNBytes reads exactly n bytes and tracks position
func (br *BinaryReader) ReadNBytes(n int) ([]byte, error) {
	if err := br.ensure(n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	bytesRead, err := io.ReadFull(br.reader, buf)
	if err != nil {
		return nil, err
	}
	br.bytesRead += int64(bytesRead)
	return buf, nil
}

// ReadU1 reads a single unsigned byte
func (br *BinaryReader) ReadU1() (uint8, error) {
	b, err := br.reader.ReadByte()
	if err != nil {
		return 0, err
	}
	br.bytesRead++
	return b, nil
}

// ReadU2 reads a 2-byte unsigned integer (big-endian)
func (br *BinaryReader) ReadU2() (uint16, error) {
	buf, err := br.ReadNBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf), nil
}

// ReadU4 reads a 4-byte unsigned integer (big-endian)
func (br *BinaryReader) ReadU4() (uint32, error) {
	buf, err := br.ReadNBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf), nil
}

// Skip skips n bytes in the stream
func (br *BinaryReader) Skip(n int) error {
	if err := br.ensure(n); err != nil {
		return fmt.Errorf("failed to skip %d bytes: %w", n, err)
	}
	discarded, err := br.reader.Discard(n)
	br.bytesRead += int64(discarded)
	if err != nil {
		return fmt.Errorf("failed to skip %d bytes: %w", n, err)
	}
	return nil
}

// ReadUtf8String reads a length-prefixed (u2) string
func (br *BinaryReader) ReadUtf8String() (string, error) {
	length, err := br.ReadU2()
	if err != nil {
		return "", fmt.Errorf("failed to read string length: %w", err)
	}

	if length == 0 {
		return "", nil
	}

	stringBytes, err := br.ReadNBytes(int(length))
	if err != nil {
		return "", fmt.Errorf("failed to read string data: %w", err)
	}

	return decodeModifiedUTF8(stringBytes), nil
}

// decodeModifiedUTF8 handles the two JVM deviations from UTF-8: NUL encoded as
// 0xC0 0x80 and supplementary characters stored as surrogate pairs
func decodeModifiedUTF8(b []byte) string {
	ascii := true
	for _, c := range b {
		if c >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return string(b)
	}

	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c < 0x80:
			units = append(units, uint16(c))
			i++
		case c&0xE0 == 0xC0 && i+1 < len(b):
			units = append(units, uint16(c&0x1F)<<6|uint16(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0 && i+2 < len(b):
			units = append(units, uint16(c&0x0F)<<12|uint16(b[i+1]&0x3F)<<6|uint16(b[i+2]&0x3F))
			i += 3
		default:
			units = append(units, 0xFFFD)
			i++
		}
	}

	return string(utf16.Decode(units))
}
