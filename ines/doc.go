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

// Package ines decodes and encodes cartridge images in the iNES file format.
//
// An iNES file is a sixteen byte header followed by the payload. The payload
// is an optional 512 byte trainer, the program segment (PRG) and the graphics
// segment (CHR), in that order. The sizes of the program and graphics
// segments are declared in the header in units of 16KB and 8KB respectively.
//
// The Parse() function creates an Image from the contents of a file. Parse()
// is strict about the things it can not recover from, a missing signature or
// a payload shorter than the header says it should be, and lenient about the
// things it can. The Correct() function normalises a parsed image so that the
// header is consistent with the payload. Correct() is idempotent.
//
// Serialise() returns the bytes of the file for an Image. For any Image
// created by Parse(), parsing the result of Serialise() reproduces the Image.
//
// The content checksum of an Image is the CRC-32 of the program and graphics
// segments. The header, the trainer and any trailing bytes are not part of
// the checksum. This is the same convention used by the community cartridge
// databases, some of which predate the header revisions, and so the checksum
// can be used to look up a cartridge in those databases.
package ines
