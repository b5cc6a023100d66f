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

import "fmt"

// HeaderSize is the size of the iNES header in bytes.
const HeaderSize = 16

// sizes of the units used by the header.
const (
	PRGBankSize = 16384
	CHRBankSize = 8192
	TrainerSize = 512
)

// the first four bytes of every iNES file.
var magic = [4]byte{'N', 'E', 'S', 0x1a}

// flags 6.
const (
	flags6Vertical   = 0x01
	flags6Battery    = 0x02
	flags6Trainer    = 0x04
	flags6FourScreen = 0x08
)

// flags 7. bits 2 and 3 equal to %10 indicates the NES 2.0 variant of the
// header.
const (
	flags7NES2Mask = 0x0c
	flags7NES2     = 0x08
)

// Mirroring is the arrangement of the console's nametable memory as wired by
// the cartridge.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case FourScreen:
		return "four-screen"
	}
	return fmt.Sprintf("unknown mirroring (%d)", int(m))
}

// Header is the sixteen byte header of an iNES file. The header is kept in
// its raw form so that bytes the package does not interpret survive a round
// trip through Parse() and Serialise().
type Header [HeaderSize]byte

// HasMagic returns true if the header begins with the iNES signature.
func (h Header) HasMagic() bool {
	return h[0] == magic[0] && h[1] == magic[1] && h[2] == magic[2] && h[3] == magic[3]
}

// IsNES2 returns true if the header is in the NES 2.0 format.
func (h Header) IsNES2() bool {
	return h[7]&flags7NES2Mask == flags7NES2
}

// PRGBanks is the number of 16KB program banks declared by the header. Zero
// means the header does not say.
func (h Header) PRGBanks() int {
	n := int(h[4])
	if h.IsNES2() && h[9]&0x0f != 0x0f {
		n |= int(h[9]&0x0f) << 8
	}
	return n
}

// CHRBanks is the number of 8KB graphics banks declared by the header. Zero
// means the cartridge uses graphics RAM.
func (h Header) CHRBanks() int {
	n := int(h[5])
	if h.IsNES2() && h[9]&0xf0 != 0xf0 {
		n |= int(h[9]&0xf0) << 4
	}
	return n
}

// exponentSizes returns true if either segment size uses the NES 2.0
// exponent-multiplier notation.
func (h Header) exponentSizes() bool {
	return h.IsNES2() && (h[9]&0x0f == 0x0f || h[9]&0xf0 == 0xf0)
}

// Mapper returns the mapper number. The low nibble is in flags 6 and the
// high nibble is in flags 7.
func (h Header) Mapper() uint8 {
	return h[6]>>4 | h[7]&0xf0
}

// Mirroring returns the nametable mirroring. Four-screen takes precedence
// over the vertical/horizontal bit.
func (h Header) Mirroring() Mirroring {
	if h[6]&flags6FourScreen == flags6FourScreen {
		return FourScreen
	}
	if h[6]&flags6Vertical == flags6Vertical {
		return Vertical
	}
	return Horizontal
}

// Battery returns true if the cartridge has battery backed memory.
func (h Header) Battery() bool {
	return h[6]&flags6Battery == flags6Battery
}

// Trainer returns true if a 512 byte trainer precedes the program segment.
func (h Header) Trainer() bool {
	return h[6]&flags6Trainer == flags6Trainer
}

// setBanks writes the bank counts to the header.
func (h *Header) setBanks(prg, chr int) {
	h[4] = uint8(prg)
	h[5] = uint8(chr)
	if h.IsNES2() {
		h[9] = uint8((chr>>8)&0x0f)<<4 | uint8((prg>>8)&0x0f)
	}
}

// maxBanks is the largest program bank count the header can express.
func (h Header) maxBanks() int {
	if h.IsNES2() {
		return 0x0eff
	}
	return 0xff
}
