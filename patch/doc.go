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

// Package patch finds and applies binary patches to cartridge images. A
// patch is identified either by a filename glob, which is matched against the
// name of the file before it is parsed, or by the content checksum of the
// image after it has been corrected.
//
// Patches are stored in a registry file managed by the database package. Each
// line of the file is a single patch:
//
//	000,filename,smb*.nes,0001,ea,restore the title screen
//	001,checksum,3B2B3E1C,7ff2,a9ff,fix the bank switch at startup
//
// The offset and the replacement data are hexadecimal. The offset is relative
// to the payload of the iNES file, which is to say that offset zero is the
// first byte after the header. The notes field is free text.
//
// The registry is loaded once with LoadRegistry() and is never changed by the
// import process. The registry file is only written to with AddRecord().
package patch
