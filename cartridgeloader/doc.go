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

// Package cartridgeloader is used to specify the cartridge file that is to
// be imported.
//
// The Load() function reads the file into the Data field. Only local files
// are supported. Filenames with a URL scheme other than "file" are refused.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/Super Mario Bros. (World).nes",
//	}
//
// It is preferred however that the NewLoader() function is used.
//
// Once loaded, the Checksum field contains the CRC-32 of the file as it is
// on disk and the Hash field contains the SHA-1 of the same data. Neither is
// the same as the content checksum of the cartridge, which excludes the iNES
// header. They are useful for comparing files with the entries of ROM
// catalogues such as No-Intro, which list both.
package cartridgeloader
