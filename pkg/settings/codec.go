package settings

import (
	"bytes"
	"codeberg.org/miketth/hyprtint/pkg/hyprtint"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

const (
	version     = 1
	paramsSize  = 7 * 4
	checksumLen = 4
	maxLayout   = 255
)

var magic = [4]byte{'H', 'T', 'N', 'T'}

var (
	ErrBadMagic    = errors.New("bad magic")
	ErrBadVersion  = errors.New("unsupported version")
	ErrBadChecksum = errors.New("checksum mismatch")
	ErrTruncated   = errors.New("truncated data")
	ErrInvalid     = errors.New("invalid configuration")
)

// Layout: magic, version, layout length, layout bytes, default scheme,
// alternative scheme, crc32 of everything before it. Integers are little
// endian.
func Encode(cfg hyprtint.Configuration) ([]byte, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(magic[:])
	buf.WriteByte(version)
	buf.WriteByte(byte(len(cfg.DefaultLayout)))
	buf.WriteString(string(cfg.DefaultLayout))

	for _, params := range []hyprtint.ColorParameters{cfg.DefaultScheme, cfg.AlternativeScheme} {
		if err := binary.Write(&buf, binary.LittleEndian, params); err != nil {
			return nil, fmt.Errorf("write color parameters: %w", err)
		}
	}

	sum := crc32.ChecksumIEEE(buf.Bytes())
	if err := binary.Write(&buf, binary.LittleEndian, sum); err != nil {
		return nil, fmt.Errorf("write checksum: %w", err)
	}

	return buf.Bytes(), nil
}

func Decode(data []byte) (hyprtint.Configuration, error) {
	var cfg hyprtint.Configuration

	header := len(magic) + 2
	if len(data) < header+checksumLen {
		return cfg, ErrTruncated
	}
	if !bytes.Equal(data[:len(magic)], magic[:]) {
		return cfg, ErrBadMagic
	}
	if data[len(magic)] != version {
		return cfg, fmt.Errorf("%w: %d", ErrBadVersion, data[len(magic)])
	}

	layoutLen := int(data[len(magic)+1])
	want := header + layoutLen + 2*paramsSize + checksumLen
	if len(data) != want {
		return cfg, fmt.Errorf("%w: got %d bytes, want %d", ErrTruncated, len(data), want)
	}

	body, trailer := data[:want-checksumLen], data[want-checksumLen:]
	if crc32.ChecksumIEEE(body) != binary.LittleEndian.Uint32(trailer) {
		return cfg, ErrBadChecksum
	}

	cfg.DefaultLayout = hyprtint.LayoutID(body[header : header+layoutLen])

	r := bytes.NewReader(body[header+layoutLen:])
	if err := binary.Read(r, binary.LittleEndian, &cfg.DefaultScheme); err != nil {
		return cfg, fmt.Errorf("read default scheme: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &cfg.AlternativeScheme); err != nil {
		return cfg, fmt.Errorf("read alternative scheme: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return hyprtint.Configuration{}, err
	}

	return cfg, nil
}

func Validate(cfg hyprtint.Configuration) error {
	if cfg.DefaultLayout == "" {
		return fmt.Errorf("%w: empty default layout", ErrInvalid)
	}
	if len(cfg.DefaultLayout) > maxLayout {
		return fmt.Errorf("%w: default layout longer than %d bytes", ErrInvalid, maxLayout)
	}
	return nil
}
