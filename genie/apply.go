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

package genie

import (
	"bytes"

	"github.com/cloverkit/cartimport/curated"
	"github.com/cloverkit/cartimport/ines"
)

// OffsetOutOfRangeError is returned when the offset for a code is outside
// the program segment.
const OffsetOutOfRangeError = "genie: offset out of range (%#x): program size is %#x"

// Offset returns the offset in the program segment that is changed by the
// code, for a program segment of the given size and mapper family.
func Offset(c Code, prgSize int, family ines.Family) (int, error) {
	offset := int(c.CPUAddress()-cartridgeOrigin) % family.BankSize(prgSize)
	if offset >= prgSize {
		return 0, curated.Errorf(OffsetOutOfRangeError, offset, prgSize)
	}
	return offset, nil
}

// Apply the code to a copy of the program segment. The compare value of the
// code, if there is one, is ignored.
func Apply(prg []byte, family ines.Family, c Code) ([]byte, error) {
	offset, err := Offset(c, len(prg), family)
	if err != nil {
		return nil, err
	}
	p := bytes.Clone(prg)
	p[offset] = c.Value
	return p, nil
}

// ApplyAll applies each code in turn to a copy of the program segment. Later
// codes may change the same byte as earlier codes. Returns an error for the
// first code that can not be applied, in which case none of the codes are
// applied.
func ApplyAll(prg []byte, family ines.Family, codes []Code) ([]byte, error) {
	p := bytes.Clone(prg)
	for _, c := range codes {
		offset, err := Offset(c, len(p), family)
		if err != nil {
			return nil, curated.Errorf("genie: %v: %v", Encode(c), err)
		}
		p[offset] = c.Value
	}
	return p, nil
}
