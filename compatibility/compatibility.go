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

package compatibility

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/cloverkit/cartimport/curated"
	"github.com/cloverkit/cartimport/ines"
	"github.com/cloverkit/cartimport/logger"
)

// Sentinal patterns returned by Gate.Check() when a cartridge is rejected.
// The values of the error are the offending mapper number (or mirroring)
// and the file name.
const (
	UnsupportedMapperError    = "compatibility: unsupported mapper (%d): %s"
	UnsupportedMirroringError = "compatibility: unsupported mirroring (%v): %s"
)

// Verdict is the result of evaluating a cartridge.
type Verdict int

// List of valid Verdict values.
const (
	Supported Verdict = iota
	UnsupportedMapper
	UnsupportedMirroring
)

func (v Verdict) String() string {
	switch v {
	case Supported:
		return "supported"
	case UnsupportedMapper:
		return "unsupported mapper"
	case UnsupportedMirroring:
		return "unsupported mirroring"
	}
	return fmt.Sprintf("unknown verdict (%d)", int(v))
}

// Policy decides what happens to cartridges that are not supported.
type Policy int

// List of valid Policy values.
const (
	AskCaller Policy = iota
	AlwaysAllow
	AlwaysReject
)

func (p Policy) String() string {
	switch p {
	case AskCaller:
		return "ASK"
	case AlwaysAllow:
		return "ALLOW"
	case AlwaysReject:
		return "REJECT"
	}
	return fmt.Sprintf("unknown policy (%d)", int(p))
}

// ParsePolicy converts a string to a Policy. Case insensitive.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ASK", "":
		return AskCaller, nil
	case "ALLOW":
		return AlwaysAllow, nil
	case "REJECT":
		return AlwaysReject, nil
	}
	return AskCaller, curated.Errorf("compatibility: unknown policy (%s)", s)
}

// Decision is the answer given by a Decider.
type Decision int

// List of valid Decision values.
const (
	Allow Decision = iota
	AllowAllFutureUnsupported
	Reject
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case AllowAllFutureUnsupported:
		return "allow all"
	case Reject:
		return "reject"
	}
	return fmt.Sprintf("unknown decision (%d)", int(d))
}

// Decider is called by the Gate when the policy is AskCaller and a cartridge
// is not supported. The fileNameHint argument is the name of the file being
// imported and is suitable for showing to the user.
type Decider func(v Verdict, fileNameHint string) Decision

// the mappers known to work on the target hardware.
var supportedMappers = map[uint8]bool{
	0: true, 1: true, 2: true, 3: true, 4: true, 5: true, 7: true,
	9: true, 10: true, 86: true, 87: true, 184: true,
}

// SupportedMappers returns the list of supported mappers in numerical order.
func SupportedMappers() []uint8 {
	l := make([]uint8, 0, len(supportedMappers))
	for m := range supportedMappers {
		l = append(l, m)
	}
	sort.Slice(l, func(i, j int) bool { return l[i] < l[j] })
	return l
}

// Evaluate classifies the cartridge image.
func Evaluate(img *ines.Image) Verdict {
	if img.Mirroring() == ines.FourScreen {
		return UnsupportedMirroring
	}
	if !supportedMappers[img.Mapper()] {
		return UnsupportedMapper
	}
	return Supported
}

// Gate applies a Policy to the result of Evaluate(). Safe to share between
// goroutines although the AskCaller policy makes little sense unless calls to
// Check() are made one after the other.
type Gate struct {
	crit   sync.Mutex
	policy Policy
	decide Decider
}

// NewGate is the preferred method of initialisation for the Gate type. The
// decide argument is only used when the policy is AskCaller and can be nil,
// in which case unsupported cartridges are rejected.
func NewGate(policy Policy, decide Decider) *Gate {
	return &Gate{
		policy: policy,
		decide: decide,
	}
}

// Policy returns the current policy of the gate.
func (g *Gate) Policy() Policy {
	g.crit.Lock()
	defer g.crit.Unlock()
	return g.policy
}

// Check evaluates the cartridge and applies the gate's policy. The Verdict is
// always returned. The error is nil if the cartridge may be used.
func (g *Gate) Check(img *ines.Image, fileNameHint string) (Verdict, error) {
	v := Evaluate(img)
	if v == Supported {
		return v, nil
	}

	g.crit.Lock()
	policy := g.policy
	g.crit.Unlock()

	if policy == AskCaller {
		d := Reject
		if g.decide != nil {
			d = g.decide(v, fileNameHint)
		}

		switch d {
		case AllowAllFutureUnsupported:
			g.setPolicy(AlwaysAllow)
			policy = AlwaysAllow
		case Reject:
			g.setPolicy(AlwaysReject)
			policy = AlwaysReject
		default:
			logger.Logf(logger.Allow, "compatibility", "%s allowed: %s", v, fileNameHint)
			return v, nil
		}
	}

	if policy == AlwaysAllow {
		logger.Logf(logger.Allow, "compatibility", "%s ignored: %s", v, fileNameHint)
		return v, nil
	}

	if v == UnsupportedMirroring {
		return v, curated.Errorf(UnsupportedMirroringError, img.Mirroring(), fileNameHint)
	}
	return v, curated.Errorf(UnsupportedMapperError, img.Mapper(), fileNameHint)
}

func (g *Gate) setPolicy(p Policy) {
	g.crit.Lock()
	defer g.crit.Unlock()
	if g.policy != p {
		logger.Logf(logger.Allow, "compatibility", "policy changed to %s", p)
	}
	g.policy = p
}
