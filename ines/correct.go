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

// Correct normalises the Image so that the header is consistent with the
// payload. Returns true if anything was changed. Calling Correct() a second
// time will always return false.
//
// The corrections are:
//
//   - bytes 7 to 15 of an iNES 1.0 header are cleared if bytes 12 to 15 are
//     not zero. This is the mark left by old ripping tools ("DiskDude!")
//     which wrote their name over the end of the header. The high nibble of
//     the mapper number can not be trusted in this case.
//
//   - the bank counts are rewritten to match the size of the program and
//     graphics segments. This fixes headers that declared zero program banks.
//
//   - trailing bytes after the graphics segment are removed.
//
// The trainer flag always agrees with the presence of the trainer.
func (img *Image) Correct() bool {
	before := img.Header
	changed := false

	if !img.Header.IsNES2() && img.Header[12]|img.Header[13]|img.Header[14]|img.Header[15] != 0 {
		for i := 7; i < HeaderSize; i++ {
			img.Header[i] = 0
		}
	}

	img.Header.setBanks(len(img.PRG)/PRGBankSize, len(img.CHR)/CHRBankSize)

	if len(img.Trainer) > 0 {
		img.Header[6] |= flags6Trainer
	} else {
		img.Header[6] &^= flags6Trainer
		img.Trainer = nil
	}

	if img.Trailing != nil {
		img.Trailing = nil
		changed = true
	}

	return changed || before != img.Header
}
