// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package compression

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Algorithm identifies a framing format.
type Algorithm uint8

const (
	None Algorithm = iota
	Zstd
	LZ4
)

// String returns the configuration name of an algorithm.
func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}

// ParseAlgorithm parses an algorithm from its configuration name.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "none", "":
		return None, nil
	case "zstd":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression algorithm %q (expected none, zstd, or lz4)", name)
	}
}

// DefaultLevel selects each algorithm's default speed/ratio tradeoff.
const DefaultLevel = 0

// ErrLimitExceeded is returned by Decompress when the decompressed
// output would exceed the caller's limit.
var ErrLimitExceeded = errors.New("compression: decompressed size exceeds limit")

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// zstdEncoder serves DefaultLevel; other levels get a one-off encoder.
// zstd.Encoder is safe for concurrent EncodeAll calls.
var zstdEncoder *zstd.Encoder

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("compression: zstd encoder initialization failed: " + err.Error())
	}
}

// Compress frames data with algorithm. Level follows zstd's 1-22
// scale for zstd and 1-9 for LZ4; DefaultLevel picks the library
// default. For None the input is returned unchanged.
func Compress(data []byte, algorithm Algorithm, level int) ([]byte, error) {
	switch algorithm {
	case None:
		return data, nil
	case Zstd:
		return compressZstd(data, level)
	case LZ4:
		return compressLZ4(data, level)
	default:
		return nil, fmt.Errorf("unsupported compression algorithm %d", uint8(algorithm))
	}
}

// Detect reports which frame format data starts with, or None.
func Detect(data []byte) Algorithm {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return Zstd
	case bytes.HasPrefix(data, lz4Magic):
		return LZ4
	default:
		return None
	}
}

// Decompress detects the frame format of data and returns the
// decompressed bytes with the detected algorithm. Unframed data is
// returned as is. Output longer than limit bytes fails with
// ErrLimitExceeded; a limit of zero or less disables the check.
func Decompress(data []byte, limit int) ([]byte, Algorithm, error) {
	algorithm := Detect(data)
	switch algorithm {
	case None:
		return data, None, nil

	case Zstd:
		decoder, err := zstd.NewReader(bytes.NewReader(data), zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, Zstd, fmt.Errorf("zstd decompress: %w", err)
		}
		defer decoder.Close()
		output, err := readLimited(decoder, limit)
		if err != nil {
			return nil, Zstd, fmt.Errorf("zstd decompress: %w", err)
		}
		return output, Zstd, nil

	case LZ4:
		output, err := readLimited(lz4.NewReader(bytes.NewReader(data)), limit)
		if err != nil {
			return nil, LZ4, fmt.Errorf("lz4 decompress: %w", err)
		}
		return output, LZ4, nil
	}
	return nil, algorithm, fmt.Errorf("unsupported compression algorithm %d", uint8(algorithm))
}

func readLimited(reader io.Reader, limit int) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(reader)
	}
	output, err := io.ReadAll(io.LimitReader(reader, int64(limit)+1))
	if err != nil {
		return nil, err
	}
	if len(output) > limit {
		return nil, ErrLimitExceeded
	}
	return output, nil
}

func compressZstd(data []byte, level int) ([]byte, error) {
	if level == DefaultLevel {
		return zstdEncoder.EncodeAll(data, nil), nil
	}
	if level < 1 || level > 22 {
		return nil, fmt.Errorf("zstd level %d out of range 1-22", level)
	}
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	if err != nil {
		return nil, fmt.Errorf("zstd compress: %w", err)
	}
	defer encoder.Close()
	return encoder.EncodeAll(data, nil), nil
}

var lz4Levels = [...]lz4.CompressionLevel{
	lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4, lz4.Level5,
	lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
}

func compressLZ4(data []byte, level int) ([]byte, error) {
	compressionLevel := lz4.Fast
	if level != DefaultLevel {
		if level < 1 || level > len(lz4Levels) {
			return nil, fmt.Errorf("lz4 level %d out of range 1-%d", level, len(lz4Levels))
		}
		compressionLevel = lz4Levels[level-1]
	}

	var output bytes.Buffer
	writer := lz4.NewWriter(&output)
	if err := writer.Apply(lz4.CompressionLevelOption(compressionLevel)); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	return output.Bytes(), nil
}
