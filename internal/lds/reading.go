package lds

// LaserReading is one decoded 360-degree scan. Index i of Ranges and
// Intensities corresponds to degree i; ranges are in millimetres,
// intensities are the device's reflection confidence units. RPMs is the
// rotation speed decoded from the same frame.
//
// Degree indices whose sub-packet failed header validation are left at
// zero for that scan.
type LaserReading struct {
	Ranges      [360]uint16 `json:"ranges"`
	Intensities [360]uint16 `json:"intensities"`
	RPMs        uint16      `json:"rpms"`
}

// NewLaserReading returns a zeroed scan.
func NewLaserReading() *LaserReading {
	return &LaserReading{}
}
