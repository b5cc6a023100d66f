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
	"fmt"
	"strings"

	"github.com/cloverkit/cartimport/curated"
)

// InvalidCodeError is returned when a code is not six or eight letters long
// or when it contains a letter that is not in the alphabet.
const InvalidCodeError = "genie: invalid code (%s): %s"

// the alphabet in order of value. the letter at index n has the value n
const alphabet = "APZLGITYEOXUKSVN"

// base of the cartridge address space
const cartridgeOrigin = 0x8000

// Code is a decoded Game Genie code.
type Code struct {
	// Address is 15 bits. the cartridge origin is not included
	Address uint16

	Value uint8

	// the compare value is only meaningful if HasCompare is true. it is
	// never checked by Apply()
	Compare    uint8
	HasCompare bool
}

// CPUAddress returns the address of the code in the CPU address space.
func (c Code) CPUAddress() uint16 {
	return c.Address | cartridgeOrigin
}

func (c Code) String() string {
	if c.HasCompare {
		return fmt.Sprintf("%s: %#04x = %#02x (compare %#02x)", Encode(c), c.CPUAddress(), c.Value, c.Compare)
	}
	return fmt.Sprintf("%s: %#04x = %#02x", Encode(c), c.CPUAddress(), c.Value)
}

// Decode a code. Letter case and surrounding white space are ignored.
func Decode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))

	if len(s) != 6 && len(s) != 8 {
		return Code{}, curated.Errorf(InvalidCodeError, s, fmt.Sprintf("length of %d", len(s)))
	}

	var n [8]uint16
	for i := 0; i < len(s); i++ {
		v := strings.IndexByte(alphabet, s[i])
		if v == -1 {
			return Code{}, curated.Errorf(InvalidCodeError, s, fmt.Sprintf("letter %q", s[i]))
		}
		n[i] = uint16(v)
	}

	c := Code{
		Address: (n[3]&7)<<12 | (n[5]&7)<<8 | (n[4]&8)<<8 | (n[2]&7)<<4 | (n[1]&8)<<4 | (n[4] & 7) | (n[3] & 8),
	}

	if len(s) == 6 {
		c.Value = uint8((n[1]&7)<<4 | (n[0]&8)<<4 | (n[0] & 7) | (n[5] & 8))
		return c, nil
	}

	c.Value = uint8((n[1]&7)<<4 | (n[0]&8)<<4 | (n[0] & 7) | (n[7] & 8))
	c.Compare = uint8((n[7]&7)<<4 | (n[6]&8)<<4 | (n[6] & 7) | (n[5] & 8))
	c.HasCompare = true

	return c, nil
}

// Encode a code. The inverse of Decode().
//
// The third letter of an encoded code has its high bit set in eight letter
// codes and clear in six letter codes. The bit is not used by Decode() but
// it is how the hardware tells the two code lengths apart.
func Encode(c Code) string {
	var n [8]uint16

	a := c.Address
	v := uint16(c.Value)

	n[0] = (v>>4)&8 | v&7
	n[1] = (a>>4)&8 | (v>>4)&7
	n[2] = (a >> 4) & 7
	n[3] = (a>>12)&7 | a&8
	n[4] = (a>>8)&8 | a&7
	n[5] = (a >> 8) & 7

	l := 6
	if c.HasCompare {
		cmp := uint16(c.Compare)
		n[5] |= cmp & 8
		n[6] = (cmp>>4)&8 | cmp&7
		n[7] = (cmp>>4)&7 | v&8
		n[2] |= 8
		l = 8
	} else {
		n[5] |= v & 8
	}

	b := make([]byte, l)
	for i := range b {
		b[i] = alphabet[n[i]]
	}
	return string(b)
}

// DecodeList decodes a list of codes separated by commas, semicolons, tabs or
// spaces. The order of the list is preserved.
func DecodeList(s string) ([]Code, error) {
	f := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '\t' || r == ' ' || r == '\n' || r == '\r'
	})

	codes := make([]Code, 0, len(f))
	for _, t := range f {
		c, err := Decode(t)
		if err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}

	return codes, nil
}
