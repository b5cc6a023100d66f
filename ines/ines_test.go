// This file is part of Cartimport.
//
// Cartimport is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cartimport is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cartimport.  If not, see <https://www.gnu.org/licenses/>.

package ines_test

import (
	"bytes"
	"hash/crc32"
	"testing"

	"github.com/cloverkit/cartimport/curated"
	"github.com/cloverkit/cartimport/ines"
	"github.com/cloverkit/cartimport/test"
)

// makeROM creates iNES data with the specified number of banks. The program
// and graphics segments are filled with a pattern so that the segments can
// be told apart.
func makeROM(prgBanks, chrBanks int, flags6, flags7 byte) []byte {
	data := []byte{'N', 'E', 'S', 0x1a, byte(prgBanks), byte(chrBanks), flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	if flags6&0x04 == 0x04 {
		data = append(data, bytes.Repeat([]byte{0xee}, ines.TrainerSize)...)
	}
	for i := 0; i < prgBanks*ines.PRGBankSize; i++ {
		data = append(data, byte(i))
	}
	for i := 0; i < chrBanks*ines.CHRBankSize; i++ {
		data = append(data, byte(i)^0xff)
	}
	return data
}

func TestParse(t *testing.T) {
	data := makeROM(2, 1, 0x13, 0x40)
	img, err := ines.Parse(data)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, img.ProgramSize(), 2*ines.PRGBankSize)
	test.ExpectEquality(t, img.GraphicsSize(), ines.CHRBankSize)
	test.ExpectEquality(t, img.Mapper(), uint8(0x41))
	test.ExpectEquality(t, img.Mirroring(), ines.Vertical)
	test.ExpectSuccess(t, img.HasBattery())
	test.ExpectFailure(t, img.HasTrainer())
	test.ExpectEquality(t, len(img.Trailing), 0)

	// segments are copies and not views of the original data
	data[ines.HeaderSize] = 0xaa
	test.ExpectEquality(t, img.PRG[0], uint8(0x00))
}

func TestParseTrainer(t *testing.T) {
	img, err := ines.Parse(makeROM(1, 1, 0x04, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, img.HasTrainer())
	test.ExpectEquality(t, len(img.Trainer), ines.TrainerSize)
	test.ExpectEquality(t, img.PRG[1], uint8(0x01))
}

func TestParseFormatErrors(t *testing.T) {
	// too short for a header
	_, err := ines.Parse([]byte{'N', 'E', 'S'})
	test.ExpectSuccess(t, curated.Is(err, ines.FormatError))

	// missing signature
	data := makeROM(1, 1, 0, 0)
	data[3] = 0x00
	_, err = ines.Parse(data)
	test.ExpectSuccess(t, curated.Is(err, ines.FormatError))

	// declared sizes larger than the payload
	data = makeROM(1, 1, 0, 0)
	data[4] = 2
	_, err = ines.Parse(data)
	test.ExpectSuccess(t, curated.Is(err, ines.FormatError))

	data = makeROM(1, 1, 0, 0)
	_, err = ines.Parse(data[:len(data)-1])
	test.ExpectSuccess(t, curated.Is(err, ines.FormatError))

	// trainer flag set but no room for the trainer
	data = makeROM(0, 0, 0x04, 0)
	_, err = ines.Parse(data[:ines.HeaderSize+100])
	test.ExpectSuccess(t, curated.Is(err, ines.FormatError))

	// zero program banks and no program data
	data = makeROM(0, 1, 0, 0)
	_, err = ines.Parse(data)
	test.ExpectSuccess(t, curated.Is(err, ines.FormatError))
}

func TestZeroProgramBanks(t *testing.T) {
	data := makeROM(2, 1, 0, 0)
	data[4] = 0

	img, err := ines.Parse(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.ProgramSize(), 2*ines.PRGBankSize)
	test.ExpectEquality(t, img.GraphicsSize(), ines.CHRBankSize)
	test.ExpectEquality(t, img.Header.PRGBanks(), 0)

	test.ExpectSuccess(t, img.Correct())
	test.ExpectEquality(t, img.Header.PRGBanks(), 2)
}

func TestCorrect(t *testing.T) {
	// DiskDude! over the end of the header and junk after the graphics
	data := makeROM(1, 1, 0x21, 0x00)
	copy(data[7:], "DiskDude!")
	data = append(data, []byte("junk")...)

	img, err := ines.Parse(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Mapper(), uint8(0x42))
	test.ExpectEquality(t, len(img.Trailing), 4)

	test.ExpectSuccess(t, img.Correct())
	test.ExpectEquality(t, img.Mapper(), uint8(0x02))
	test.ExpectEquality(t, len(img.Trailing), 0)
	for i := 7; i < ines.HeaderSize; i++ {
		test.ExpectEquality(t, img.Header[i], uint8(0))
	}

	// idempotent
	corrected := img.Copy()
	test.ExpectFailure(t, img.Correct())
	test.ExpectSuccess(t, img.Equal(corrected))

	// a clean image needs no correction
	img, err = ines.Parse(makeROM(1, 1, 0x01, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, img.Correct())
}

func TestCorrectNES2(t *testing.T) {
	// NES 2.0 headers are never cleared
	data := makeROM(1, 0, 0x00, 0x08)
	data[12] = 0x01
	img, err := ines.Parse(data)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, img.Header.IsNES2())
	test.ExpectFailure(t, img.Correct())
	test.ExpectEquality(t, img.Header[12], uint8(0x01))
}

func TestRoundTrip(t *testing.T) {
	raws := [][]byte{
		makeROM(1, 1, 0x00, 0x00),
		makeROM(2, 0, 0x0a, 0x10),
		makeROM(1, 2, 0x04, 0x00),
		append(makeROM(1, 1, 0x01, 0x00), 0x01, 0x02),
	}

	for i, raw := range raws {
		img, err := ines.Parse(raw)
		test.DemandSuccess(t, err, i)

		// parse and serialise without correction
		test.ExpectSuccess(t, bytes.Equal(img.Serialise(), raw), i)

		img.Correct()
		again, err := ines.Parse(img.Serialise())
		test.DemandSuccess(t, err, i)
		test.ExpectSuccess(t, again.Equal(img), i)
		test.ExpectFailure(t, again.Correct(), i)
	}
}

func TestChecksum(t *testing.T) {
	raw := makeROM(1, 1, 0x00, 0x00)
	img, err := ines.Parse(raw)
	test.DemandSuccess(t, err)

	payload := append(bytes.Clone(img.PRG), img.CHR...)
	test.ExpectEquality(t, img.Checksum(), crc32.ChecksumIEEE(payload))

	crc, err := ines.Checksum(raw)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, crc, img.Checksum())

	// header flags have no effect on the checksum
	for _, flags := range [][2]byte{{0x01, 0x00}, {0x02, 0x00}, {0x08, 0x00}, {0xf3, 0xf0}} {
		other := makeROM(1, 1, flags[0], flags[1])
		crc, err := ines.Checksum(other)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, crc, img.Checksum())
	}

	// trainer and trailing bytes have no effect on the checksum
	other := append(makeROM(1, 1, 0x04, 0x00), 0xff, 0xff)
	crc, err = ines.Checksum(other)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, crc, img.Checksum())

	// but the payload does
	img.PRG[100] ^= 0xff
	test.ExpectInequality(t, img.Checksum(), crc)
}

func TestHeaderAccessors(t *testing.T) {
	h := ines.Header{'N', 'E', 'S', 0x1a, 1, 1, 0x50, 0xa0}
	test.ExpectEquality(t, h.Mapper(), uint8(0xa5))
	test.ExpectEquality(t, h.Mirroring(), ines.Horizontal)
	test.ExpectFailure(t, h.Battery())

	h[6] |= 0x01
	test.ExpectEquality(t, h.Mirroring(), ines.Vertical)

	// four screen takes precedence over the vertical bit
	h[6] |= 0x08
	test.ExpectEquality(t, h.Mirroring(), ines.FourScreen)
	test.ExpectEquality(t, h.Mapper(), uint8(0xa5))

	h[6] |= 0x02
	test.ExpectSuccess(t, h.Battery())
}

func TestFamily(t *testing.T) {
	test.ExpectEquality(t, ines.FamilyOf(0), ines.Linear)
	test.ExpectEquality(t, ines.FamilyOf(1), ines.Banked16K)
	test.ExpectEquality(t, ines.FamilyOf(4), ines.Banked8K)
	test.ExpectEquality(t, ines.FamilyOf(7), ines.Banked32K)
	test.ExpectEquality(t, ines.FamilyOf(200), ines.Banked8K)

	test.ExpectEquality(t, ines.Linear.BankSize(0x4000), 0x4000)
	test.ExpectEquality(t, ines.Linear.BankSize(0x8000), 0x8000)
	test.ExpectEquality(t, ines.Banked16K.BankSize(0x40000), 0x4000)
	test.ExpectEquality(t, ines.Banked8K.BankSize(0x40000), 0x2000)
	test.ExpectEquality(t, ines.Banked32K.BankSize(0x40000), 0x8000)
}
