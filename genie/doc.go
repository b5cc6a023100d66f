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

// Package genie decodes Game Genie cheat codes and applies them to the
// program segment of a cartridge image.
//
// A code is six or eight letters from a sixteen letter alphabet. Each letter
// is four bits. A six letter code decodes to a 15 bit address and a new
// value for the byte at that address. An eight letter code also has a
// compare value.
//
// On the console the compare value is checked against the live contents of
// memory each time the address is read, and the new value is only
// substituted when the two match. This package patches a static image and
// there is no live memory to compare with. The compare value is decoded and
// kept on the Code but it is not checked. Apply() writes the new value
// unconditionally.
//
// The CPU address is translated into an offset in the program segment with
// the addressing convention of the cartridge's mapper family (see
// ines.Family). The base of the cartridge address space is subtracted and the
// result is reduced modulo the family's bank size.
package genie
