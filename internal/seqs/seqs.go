// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package seqs builds generators by name and checks the preconditions the
// lds package leaves to its callers.
package seqs

import (
	"strings"

	"github.com/2dChan/lds"
	"github.com/pkg/errors"
)

type Kind string

const (
	VdCorput    Kind = "vdcorput"
	Halton      Kind = "halton"
	HaltonN     Kind = "halton_n"
	Circle      Kind = "circle"
	Disk        Kind = "disk"
	Sphere      Kind = "sphere"
	Sphere3Hopf Kind = "sphere3_hopf"
	Sphere3     Kind = "sphere3"
	CylinN      Kind = "cylin_n"
	SphereN     Kind = "sphere_n"
)

// Kinds lists every supported kind.
var Kinds = []Kind{VdCorput, Halton, HaltonN, Circle, Disk, Sphere, Sphere3Hopf, Sphere3, CylinN, SphereN}

var ErrUnknownKind = errors.New("unknown sequence kind")

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownKind, "%q", s)
}

// NumBases reports whether n bases suit the kind.
func (k Kind) NumBases(n int) error {
	lo, hi := k.baseRange()
	if n < lo || (hi > 0 && n > hi) {
		if lo == hi {
			return errors.Errorf("%s takes %d bases, got %d", k, lo, n)
		}
		return errors.Errorf("%s takes at least %d bases, got %d", k, lo, n)
	}
	return nil
}

// MinBases returns the fewest bases the kind accepts.
func (k Kind) MinBases() int {
	lo, _ := k.baseRange()
	return lo
}

// baseRange returns the accepted number of bases; hi == 0 means unbounded.
func (k Kind) baseRange() (lo, hi int) {
	switch k {
	case VdCorput, Circle:
		return 1, 1
	case Halton, Disk, Sphere:
		return 2, 2
	case Sphere3Hopf, Sphere3:
		return 3, 3
	case HaltonN:
		return 1, 0
	case CylinN:
		return 2, 0
	case SphereN:
		return 3, 0
	}
	return 0, 0
}

// Dim returns the length of the points produced from nbases bases.
func (k Kind) Dim(nbases int) int {
	switch k {
	case VdCorput:
		return 1
	case Halton, Circle, Disk:
		return 2
	case Sphere:
		return 3
	case Sphere3Hopf, Sphere3:
		return 4
	case HaltonN:
		return nbases
	case CylinN, SphereN:
		return nbases + 1
	}
	return 0
}

// OnSphere reports whether the kind produces unit vectors.
func (k Kind) OnSphere() bool {
	switch k {
	case Circle, Sphere, Sphere3Hopf, Sphere3, CylinN, SphereN:
		return true
	}
	return false
}

// Validate checks the number of bases and that each base is at least 2.
func Validate(k Kind, bases []uint64) error {
	if err := k.NumBases(len(bases)); err != nil {
		return err
	}
	for i, b := range bases {
		if b < 2 {
			return errors.Errorf("base[%d] = %d, must be at least 2", i, b)
		}
	}
	return nil
}

// New validates bases and returns the generator of the given kind.
// When bases is empty the first primes are used.
func New(k Kind, bases []uint64) (lds.Sequence, error) {
	if len(bases) == 0 {
		bases = lds.Primes(k.MinBases())
	}
	if err := Validate(k, bases); err != nil {
		return nil, errors.Wrap(err, "invalid bases")
	}

	switch k {
	case VdCorput:
		return &vdcSeq{v: lds.NewVdCorput(bases[0])}, nil
	case Halton:
		return lds.NewHalton([2]uint64(bases)).Sequence(), nil
	case HaltonN:
		return lds.NewHaltonN(bases), nil
	case Circle:
		return lds.NewCircle(bases[0]).Sequence(), nil
	case Disk:
		return lds.NewDisk([2]uint64(bases)).Sequence(), nil
	case Sphere:
		return lds.NewSphere([2]uint64(bases)).Sequence(), nil
	case Sphere3Hopf:
		return lds.NewSphere3Hopf([3]uint64(bases)).Sequence(), nil
	case Sphere3:
		return lds.NewSphere3([3]uint64(bases)).Sequence(), nil
	case CylinN:
		return lds.NewCylinN(bases), nil
	case SphereN:
		return lds.NewSphereN(bases), nil
	}
	return nil, errors.Wrapf(ErrUnknownKind, "%q", string(k))
}

type vdcSeq struct {
	v lds.VdCorput
}

func (s *vdcSeq) Pop() []float64 { return []float64{s.v.Pop()} }

func (s *vdcSeq) Reseed(seed uint64) { s.v.Reseed(seed) }
