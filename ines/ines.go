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

package ines

import (
	"bytes"
	"fmt"
	"hash/crc32"

	"github.com/cloverkit/cartimport/curated"
)

// FormatError is returned by Parse() when the data can not be interpreted as
// an iNES file.
const FormatError = "ines: format error: %v"

// Image is a cartridge image decoded from an iNES file. The byte slices are
// owned by the Image and are never shared with the data given to Parse().
type Image struct {
	Header Header

	// nil if the header trainer flag is not set
	Trainer []byte

	PRG []byte
	CHR []byte

	// bytes found after the graphics segment. removed by Correct()
	Trailing []byte
}

// Parse the contents of an iNES file. Returns an error satisfying FormatError
// if the data is too short, if the signature is missing or if the sizes
// declared in the header exceed the data available.
//
// A header that declares zero program banks is not an error. The number of
// program banks is taken to be the number of whole 16KB banks that fit in
// the payload ahead of the graphics segment. Correct() will write that value
// to the header.
func Parse(data []byte) (*Image, error) {
	if len(data) < HeaderSize {
		return nil, curated.Errorf(FormatError, fmt.Sprintf("data too short for header (%d bytes)", len(data)))
	}

	img := &Image{}
	copy(img.Header[:], data[:HeaderSize])

	if !img.Header.HasMagic() {
		return nil, curated.Errorf(FormatError, "iNES signature not found")
	}

	if img.Header.exponentSizes() {
		return nil, curated.Errorf(FormatError, "exponent-multiplier segment sizes are not supported")
	}

	payload := data[HeaderSize:]

	if img.Header.Trainer() {
		if len(payload) < TrainerSize {
			return nil, curated.Errorf(FormatError, "trainer truncated")
		}
		img.Trainer = bytes.Clone(payload[:TrainerSize])
		payload = payload[TrainerSize:]
	}

	chrSize := img.Header.CHRBanks() * CHRBankSize
	prgSize := img.Header.PRGBanks() * PRGBankSize

	if prgSize == 0 {
		banks := (len(payload) - chrSize) / PRGBankSize
		if banks > img.Header.maxBanks() {
			banks = img.Header.maxBanks()
		}
		if banks <= 0 {
			return nil, curated.Errorf(FormatError, "no program data")
		}
		prgSize = banks * PRGBankSize
	}

	if prgSize+chrSize > len(payload) {
		return nil, curated.Errorf(FormatError,
			fmt.Sprintf("declared sizes (PRG %d, CHR %d) exceed payload (%d bytes)", prgSize, chrSize, len(payload)))
	}

	img.PRG = bytes.Clone(payload[:prgSize])
	img.CHR = bytes.Clone(payload[prgSize : prgSize+chrSize])
	if len(payload) > prgSize+chrSize {
		img.Trailing = bytes.Clone(payload[prgSize+chrSize:])
	}

	return img, nil
}

// Serialise returns the data for the Image in the iNES file format. The
// header is written as it is. Use Correct() first for a canonical header.
func (img *Image) Serialise() []byte {
	n := HeaderSize + len(img.Trainer) + len(img.PRG) + len(img.CHR) + len(img.Trailing)
	data := make([]byte, 0, n)
	data = append(data, img.Header[:]...)
	data = append(data, img.Trainer...)
	data = append(data, img.PRG...)
	data = append(data, img.CHR...)
	data = append(data, img.Trailing...)
	return data
}

// Checksum returns the CRC-32 (IEEE) of the program segment followed by the
// graphics segment. It is computed every time it is called so it always
// reflects the current payload.
func (img *Image) Checksum() uint32 {
	crc := crc32.NewIEEE()
	crc.Write(img.PRG)
	crc.Write(img.CHR)
	return crc.Sum32()
}

// Checksum returns the content checksum for the data in an iNES file. Returns
// an error if the data can not be parsed.
func Checksum(data []byte) (uint32, error) {
	img, err := Parse(data)
	if err != nil {
		return 0, err
	}
	return img.Checksum(), nil
}

// ProgramSize is the size of the program segment in bytes.
func (img *Image) ProgramSize() int {
	return len(img.PRG)
}

// GraphicsSize is the size of the graphics segment in bytes. Zero if the
// cartridge uses graphics RAM.
func (img *Image) GraphicsSize() int {
	return len(img.CHR)
}

// Mapper returns the mapper number of the cartridge.
func (img *Image) Mapper() uint8 {
	return img.Header.Mapper()
}

// Mirroring returns the nametable mirroring of the cartridge.
func (img *Image) Mirroring() Mirroring {
	return img.Header.Mirroring()
}

// HasBattery returns true if the cartridge has battery backed memory.
func (img *Image) HasBattery() bool {
	return img.Header.Battery()
}

// HasTrainer returns true if the image has a trainer.
func (img *Image) HasTrainer() bool {
	return len(img.Trainer) > 0
}

// Family returns the addressing family of the cartridge's mapper.
func (img *Image) Family() Family {
	return FamilyOf(img.Mapper())
}

// Copy returns a deep copy of the Image.
func (img *Image) Copy() *Image {
	return &Image{
		Header:   img.Header,
		Trainer:  bytes.Clone(img.Trainer),
		PRG:      bytes.Clone(img.PRG),
		CHR:      bytes.Clone(img.CHR),
		Trailing: bytes.Clone(img.Trailing),
	}
}

// Equal returns true if both images have the same header and payload.
func (img *Image) Equal(other *Image) bool {
	return img.Header == other.Header &&
		bytes.Equal(img.Trainer, other.Trainer) &&
		bytes.Equal(img.PRG, other.PRG) &&
		bytes.Equal(img.CHR, other.CHR) &&
		bytes.Equal(img.Trailing, other.Trailing)
}

func (img *Image) String() string {
	s := fmt.Sprintf("mapper %d (%s), PRG %dK, CHR %dK, %s mirroring, crc %08X",
		img.Mapper(), img.Family(), len(img.PRG)/1024, len(img.CHR)/1024, img.Mirroring(), img.Checksum())
	if img.HasBattery() {
		s = fmt.Sprintf("%s, battery", s)
	}
	if img.HasTrainer() {
		s = fmt.Sprintf("%s, trainer", s)
	}
	return s
}
