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

package curated_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/cloverkit/cartimport/curated"
	"github.com/cloverkit/cartimport/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %v"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")

	// deduplication happens further down the chain too
	g := curated.Errorf("importer: %v", curated.Errorf("patch: %v", curated.Errorf("patch: offset")))
	test.ExpectEquality(t, g.Error(), "importer: patch: offset")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, testErrorB))

	// Is() does not look inside the chain
	f := curated.Errorf(testErrorB, e)
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Is(f, testErrorB))

	// plain errors are never curated
	test.ExpectFailure(t, curated.Is(errors.New("test error: foo"), testError))
	test.ExpectFailure(t, curated.Is(nil, testError))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	f := curated.Errorf(testErrorB, e)
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testErrorB))
	test.ExpectFailure(t, curated.Has(f, "not used: %v"))
	test.ExpectFailure(t, curated.Has(nil, testError))
}

func TestIsAny(t *testing.T) {
	test.ExpectSuccess(t, curated.IsAny(curated.Errorf("plain")))
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestValues(t *testing.T) {
	e := curated.Errorf("mapper %d in %s", 34, "file.nes")
	v := curated.Values(e)
	test.DemandEquality(t, len(v), 2)
	test.ExpectEquality(t, v[0].(int), 34)
	test.ExpectEquality(t, v[1].(string), "file.nes")

	test.ExpectEquality(t, len(curated.Values(errors.New("plain"))), 0)
}

func TestFind(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	f := curated.Errorf("outer: %v", e)

	g, ok := curated.Find(f, testError)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, g.Error(), "test error: foo")

	_, ok = curated.Find(f, testErrorB)
	test.ExpectFailure(t, ok)
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("loader: %v", fs.ErrNotExist)
	test.ExpectSuccess(t, errors.Is(e, fs.ErrNotExist))

	f := curated.Errorf("outer: %v", e)
	test.ExpectSuccess(t, errors.Is(f, fs.ErrNotExist))
}
