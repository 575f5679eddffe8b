package geo

import (
	"math"
	"testing"
)

func TestHaversineZeroDistance(t *testing.T) {
	if d := Haversine(40.7128, -74.0060, 40.7128, -74.0060); d != 0 {
		t.Fatalf("d(A,A) = %f, want 0", d)
	}
}

func TestHaversineSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{40.7128, -74.0060, 51.5074, -0.1278},
		{-33.8688, 151.2093, 35.6762, 139.6503},
		{0, 0, 0, 180},
		{89.9, 10, -89.9, -170},
	}
	for _, p := range pairs {
		ab := Haversine(p[0], p[1], p[2], p[3])
		ba := Haversine(p[2], p[3], p[0], p[1])
		if math.Abs(ab-ba) > 1e-6 {
			t.Errorf("asymmetric: d=%f reversed=%f for %v", ab, ba, p)
		}
	}
}

func TestHaversineOneDegreeLatitude(t *testing.T) {
	// One degree of latitude on a 6371 km sphere is about 111.19 km.
	d := Haversine(0, 0, 1, 0)
	want := EarthRadiusMeters * math.Pi / 180
	if math.Abs(d-want) > 1 {
		t.Fatalf("1 degree latitude = %f m, want ~%f m", d, want)
	}
}

func TestHaversineTriangleInequality(t *testing.T) {
	coords := [][2]float64{
		{40.0, -74.0},
		{40.0, -73.0},
		{41.5, -73.5},
		{-12.0, 130.0},
		{0.0, 0.0},
	}
	for _, a := range coords {
		for _, b := range coords {
			for _, c := range coords {
				ac := Haversine(a[0], a[1], c[0], c[1])
				ab := Haversine(a[0], a[1], b[0], b[1])
				bc := Haversine(b[0], b[1], c[0], c[1])
				if ac > ab+bc+1e-6 {
					t.Errorf("triangle inequality violated: d(%v,%v)=%f > %f", a, c, ac, ab+bc)
				}
			}
		}
	}
}
