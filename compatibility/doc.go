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

// Package compatibility decides whether a cartridge can be run by the target
// hardware. The Evaluate() function classifies a cartridge and has no side
// effects. The Gate type adds a Policy on top of Evaluate(), to decide what
// happens to cartridges that are not supported.
//
// Two rules are applied by Evaluate(). Cartridges that use four-screen
// mirroring are never supported, whatever the mapper. Otherwise the mapper
// must be in a fixed list of known-good mappers.
//
// When the policy is AskCaller, the Gate calls the Decider function supplied
// by the caller. The call is synchronous and the Gate waits only for as long
// as the Decider takes to return. An answer of AllowAllFutureUnsupported or
// Reject changes the policy of the Gate for all later cartridges.
package compatibility
