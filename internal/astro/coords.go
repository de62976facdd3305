// Package astro provides the coordinate transformations behind the
// star disc: equatorial (RA/Dec) to horizontal (Alt/Az) for a ground
// observer at an instant.
package astro

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrBadCoordinates reports equatorial coordinates outside their
// defined ranges (or NaN/Inf inputs).
var ErrBadCoordinates = errors.New("coordinates out of range")

// Observer is a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
}

// Horizontal holds observer-relative horizontal coordinates.
type Horizontal struct {
	AltDeg float64 // Altitude in degrees (0=horizon, 90=zenith)
	AzDeg  float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
}

// EquatorialToHorizontal converts equatorial coordinates to horizontal
// coordinates for the given observer and time. Right ascension is in
// hours [0,24), declination in degrees [-90,90].
//
// Uses standard astronomical conventions:
//   - Azimuth: 0° = North, 90° = East, 180° = South, 270° = West
//   - Altitude: 0° = horizon, 90° = zenith
func EquatorialToHorizontal(raHours, decDeg float64, obs Observer, t time.Time) (Horizontal, error) {
	if err := validate(raHours, decDeg); err != nil {
		return Horizontal{}, err
	}

	lat := degToRad(obs.LatDeg)
	ra := degToRad(raHours * 15) // 1 hour of RA = 15 degrees
	dec := degToRad(decDeg)

	// Local Sidereal Time
	lst := localSiderealTime(t, obs.LonDeg)
	lstRad := degToRad(lst)

	// Hour Angle = LST - RA
	ha := lstRad - ra

	// Altitude
	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(clamp(sinAlt, -1, 1))

	// Azimuth
	cosAz := (math.Sin(dec) - math.Sin(alt)*math.Sin(lat)) / (math.Cos(alt) * math.Cos(lat))
	cosAz = clamp(cosAz, -1, 1)

	az := math.Acos(cosAz)

	// If the hour angle is positive the object is west of the meridian.
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return Horizontal{
		AltDeg: radToDeg(alt),
		AzDeg:  radToDeg(az),
	}, nil
}

func validate(raHours, decDeg float64) error {
	if math.IsNaN(raHours) || math.IsInf(raHours, 0) ||
		math.IsNaN(decDeg) || math.IsInf(decDeg, 0) {
		return fmt.Errorf("%w: ra=%v dec=%v", ErrBadCoordinates, raHours, decDeg)
	}
	if raHours < 0 || raHours >= 24 {
		return fmt.Errorf("%w: ra=%v hours", ErrBadCoordinates, raHours)
	}
	if decDeg < -90 || decDeg > 90 {
		return fmt.Errorf("%w: dec=%v degrees", ErrBadCoordinates, decDeg)
	}
	return nil
}

// localSiderealTime calculates the Local Sidereal Time in degrees
// for a given UTC time and observer longitude.
func localSiderealTime(t time.Time, lonDeg float64) float64 {
	gmst := greenwichMeanSiderealTime(t)
	lst := gmst + lonDeg

	// Normalize to 0-360
	for lst < 0 {
		lst += 360
	}
	for lst >= 360 {
		lst -= 360
	}

	return lst
}

// greenwichMeanSiderealTime calculates GMST in degrees for a given UTC time.
// Uses the IAU formula based on Julian Date.
func greenwichMeanSiderealTime(t time.Time) float64 {
	jd := julianDate(t)

	// Julian centuries since J2000.0
	T := (jd - 2451545.0) / 36525.0

	// GMST in degrees (IAU 1982 formula)
	gmst := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*T*T -
		T*T*T/38710000.0

	// Normalize to 0-360
	gmst = math.Mod(gmst, 360)
	if gmst < 0 {
		gmst += 360
	}

	return gmst
}

// julianDate calculates the Julian Date for a given time.
func julianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	// Time of day as fraction
	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())
	ns := float64(t.Nanosecond())

	dayFrac := (h + min/60 + sec/3600 + ns/3600e9) / 24.0

	// Adjust for January/February (treat as months 13/14 of previous year)
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	// Julian Date formula
	jd := math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5

	return jd
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
