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

// Package metadata is a read-only lookup table of game information, keyed by
// the content checksum of the cartridge. The table is loaded once from an XML
// database file and is safe to share between goroutines once loaded.
//
// Two database layouts are understood. The NesCartDB layout, where a game
// has one or more cartridges:
//
//	<database>
//		<game name="Super Mario Bros." players="2" date="1985-10-18" publisher="Nintendo" region="USA">
//			<cartridge crc="3337EC46"/>
//		</game>
//	</database>
//
// And the No-Intro DAT layout, which only provides the title:
//
//	<datafile>
//		<game name="Super Mario Bros. (World)">
//			<rom name="Super Mario Bros. (World).nes" crc="3337ec46"/>
//		</game>
//	</datafile>
//
// Loading never fails. Entries with a malformed checksum are skipped and a
// file that can not be read results in an empty cache. In both cases a
// warning is written to the log.
//
// Values are returned as they are found in the database. Consumers that want
// normalised text should use the autofill package.
package metadata
