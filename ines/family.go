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

// Family is the program addressing convention of a group of mappers. The
// family decides how a CPU address in the cartridge space ($8000 to $FFFF)
// relates to an offset in the program segment of the file.
type Family int

// List of valid Family values.
const (
	// program segment of up to 32KB mapped without banking. a 16KB program
	// is mirrored in the upper half of the address space
	Linear Family = iota

	// program banks of 16KB
	Banked16K

	// program banks of 8KB
	Banked8K

	// program banks of 32KB
	Banked32K
)

func (f Family) String() string {
	switch f {
	case Linear:
		return "linear"
	case Banked16K:
		return "16K banks"
	case Banked8K:
		return "8K banks"
	case Banked32K:
		return "32K banks"
	}
	return fmt.Sprintf("unknown family (%d)", int(f))
}

// BankSize returns the size of the window used to translate CPU addresses
// into program offsets for a program segment of the given size.
func (f Family) BankSize(prgSize int) int {
	switch f {
	case Linear:
		if prgSize <= 0 || prgSize > 0x8000 {
			return 0x8000
		}
		return prgSize
	case Banked16K:
		return 0x4000
	case Banked32K:
		return 0x8000
	}
	return 0x2000
}

// mappers with a family other than Banked8K. mappers not listed here are
// assumed to use 8KB banks, the smallest bank size in common use.
var families = map[uint8]Family{
	// NROM, CNROM, NINA-003/006 and the CHR-only boards
	0:   Linear,
	3:   Linear,
	13:  Linear,
	79:  Linear,
	87:  Linear,
	101: Linear,
	184: Linear,
	185: Linear,

	// MMC1, UxROM, MMC4, Bandai FCG, Camerica, etc.
	1:   Banked16K,
	2:   Banked16K,
	10:  Banked16K,
	16:  Banked16K,
	68:  Banked16K,
	70:  Banked16K,
	71:  Banked16K,
	89:  Banked16K,
	93:  Banked16K,
	94:  Banked16K,
	152: Banked16K,
	180: Banked16K,

	// AxROM, Color Dreams, BNROM, GxROM, Jaleco JF-13, etc.
	7:   Banked32K,
	11:  Banked32K,
	34:  Banked32K,
	38:  Banked32K,
	66:  Banked32K,
	86:  Banked32K,
	140: Banked32K,
}

// FamilyOf returns the addressing family for a mapper number.
func FamilyOf(mapper uint8) Family {
	if f, ok := families[mapper]; ok {
		return f
	}
	return Banked8K
}
