package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Радиусы эллипсоида WGS84, м
var wgs84Radii = r3.Vec{X: 6378137.0, Y: 6378137.0, Z: 6356752.3142451793}

var wgs84RadiiSquared = r3.Vec{
	X: wgs84Radii.X * wgs84Radii.X,
	Y: wgs84Radii.Y * wgs84Radii.Y,
	Z: wgs84Radii.Z * wgs84Radii.Z,
}

// BoundingSphere - сфера в мировых координатах (ECEF, метры)
type BoundingSphere struct {
	Center r3.Vec
	Radius float64
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// FromDegrees переводит долготу, широту (градусы) и высоту над эллипсоидом (м) в ECEF
func FromDegrees(lon, lat, height float64) r3.Vec {
	lonRad, latRad := toRadians(lon), toRadians(lat)
	cosLat := math.Cos(latRad)

	normal := r3.Unit(r3.Vec{
		X: cosLat * math.Cos(lonRad),
		Y: cosLat * math.Sin(lonRad),
		Z: math.Sin(latRad),
	})
	k := r3.Vec{
		X: wgs84RadiiSquared.X * normal.X,
		Y: wgs84RadiiSquared.Y * normal.Y,
		Z: wgs84RadiiSquared.Z * normal.Z,
	}
	gamma := math.Sqrt(r3.Dot(normal, k))
	k = r3.Scale(1/gamma, k)

	return r3.Add(k, r3.Scale(height, normal))
}

// BoundingSphereFromPoints строит описанную сферу: сфера Риттера сравнивается
// с наивной сферой вокруг AABB, возвращается меньшая.
func BoundingSphereFromPoints(points []r3.Vec) BoundingSphere {
	if len(points) == 0 {
		return BoundingSphere{}
	}

	xMin, yMin, zMin := points[0], points[0], points[0]
	xMax, yMax, zMax := points[0], points[0], points[0]
	for _, p := range points[1:] {
		if p.X < xMin.X {
			xMin = p
		}
		if p.X > xMax.X {
			xMax = p
		}
		if p.Y < yMin.Y {
			yMin = p
		}
		if p.Y > yMax.Y {
			yMax = p
		}
		if p.Z < zMin.Z {
			zMin = p
		}
		if p.Z > zMax.Z {
			zMax = p
		}
	}

	// Начальный диаметр - пара точек с наибольшим разносом
	d1, d2 := xMin, xMax
	maxSpan := normSq(r3.Sub(xMax, xMin))
	if span := normSq(r3.Sub(yMax, yMin)); span > maxSpan {
		maxSpan = span
		d1, d2 = yMin, yMax
	}
	if span := normSq(r3.Sub(zMax, zMin)); span > maxSpan {
		d1, d2 = zMin, zMax
	}

	ritterCenter := r3.Scale(0.5, r3.Add(d1, d2))
	radiusSquared := normSq(r3.Sub(d2, ritterCenter))
	ritterRadius := math.Sqrt(radiusSquared)

	minBox := r3.Vec{X: xMin.X, Y: yMin.Y, Z: zMin.Z}
	maxBox := r3.Vec{X: xMax.X, Y: yMax.Y, Z: zMax.Z}
	naiveCenter := r3.Scale(0.5, r3.Add(minBox, maxBox))
	naiveRadius := 0.0

	for _, p := range points {
		if r := r3.Norm(r3.Sub(p, naiveCenter)); r > naiveRadius {
			naiveRadius = r
		}

		distSq := normSq(r3.Sub(p, ritterCenter))
		if distSq > radiusSquared {
			dist := math.Sqrt(distSq)
			ritterRadius = (ritterRadius + dist) * 0.5
			radiusSquared = ritterRadius * ritterRadius
			shift := dist - ritterRadius
			ritterCenter = r3.Scale(1/dist, r3.Add(r3.Scale(ritterRadius, ritterCenter), r3.Scale(shift, p)))
		}
	}

	if ritterRadius < naiveRadius {
		return BoundingSphere{Center: ritterCenter, Radius: ritterRadius}
	}
	return BoundingSphere{Center: naiveCenter, Radius: naiveRadius}
}

func normSq(v r3.Vec) float64 {
	return r3.Dot(v, v)
}
