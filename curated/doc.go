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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies a curated error. Packages that want callers
// to be able to distinguish a failure export the pattern as a constant:
//
//	const FormatError = "ines: format error: %v"
//
//	err := curated.Errorf(FormatError, "magic signature missing")
//
//	if curated.Is(err, FormatError) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. Is() only looks at the outermost error.
//
//	f := curated.Errorf("importer: %v", err)
//
//	curated.Has(f, FormatError)	// true
//	curated.Is(f, FormatError)	// false
//
// Values() returns the values that were given to Errorf(). This is how an
// error carries the thing that caused it, for example the mapper number of an
// unsupported cartridge. Find() returns the curated error with a given
// pattern from anywhere in the chain, so that Values() can be used on it.
//
// The Error() function normalises the message chain. Chains are made of
// parts separated by ": " and adjacent duplicate parts are removed, so
// wrapping an error with the same prefix more than once does no harm:
//
//	e := curated.Errorf("patch: %v", curated.Errorf("patch: offset too large"))
//	fmt.Println(e)	// patch: offset too large
//
// Curated errors implement Unwrap() so that the errors package in the
// standard library can see non-curated errors (os.ErrNotExist, etc.) that have
// been wrapped by Errorf().
package curated
