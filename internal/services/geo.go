package tourguide

import (
	"math"
	"sync/atomic"

	models "github.com/glkeru/tourguide/internal/models"
)

const statuteMilesPerNauticalMile = 1.15077945

// Расстояние по дуге большого круга в статутных милях (сферическая теорема косинусов)
func Distance(a, b models.GeoPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lon1 := a.Longitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	lon2 := b.Longitude * math.Pi / 180

	cos := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(lon1-lon2)
	// погрешность округления может вывести аргумент за [-1, 1]
	cos = math.Max(-1, math.Min(1, cos))
	angle := math.Acos(cos)

	nauticalMiles := 60 * angle * 180 / math.Pi
	return statuteMilesPerNauticalMile * nauticalMiles
}

// Радиусы близости. proximityBuffer меняется на лету, последняя запись выигрывает.
type Proximity struct {
	defaultBuffer   float64
	buffer          atomic.Uint64 // float64 bits
	attractionRange float64
}

func NewProximity(buffer, attractionRange float64) *Proximity {
	p := &Proximity{defaultBuffer: buffer, attractionRange: attractionRange}
	p.SetBuffer(buffer)
	return p
}

func (p *Proximity) Buffer() float64 {
	return math.Float64frombits(p.buffer.Load())
}

func (p *Proximity) SetBuffer(miles float64) {
	p.buffer.Store(math.Float64bits(miles))
}

func (p *Proximity) ResetBuffer() {
	p.SetBuffer(p.defaultBuffer)
}

// посещение достаточно близко для награды
func (p *Proximity) IsNear(visit models.VisitRecord, attraction models.Attraction) bool {
	return Distance(visit.Location, attraction.Location) <= p.Buffer()
}

func (p *Proximity) IsWithinRange(point models.GeoPoint, attraction models.Attraction) bool {
	return Distance(point, attraction.Location) <= p.attractionRange
}
