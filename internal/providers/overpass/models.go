package overpass

// InterpreterAPIResponse is the Overpass interpreter response.
type InterpreterAPIResponse struct {
	Elements []Element `json:"elements"`
}

// Element is a single OSM feature. Nodes carry lat/lon directly; ways carry
// a center point instead when requested, and may carry neither.
type Element struct {
	Type   string            `json:"type"`
	Id     int64             `json:"id"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *Center           `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Coordinates returns the element's position, preferring the direct lat/lon
// and falling back to the way center. Either pointer may be nil.
func (e *Element) Coordinates() (*float64, *float64) {
	if e.Lat != nil && e.Lon != nil {
		return e.Lat, e.Lon
	}
	if e.Center != nil {
		return &e.Center.Lat, &e.Center.Lon
	}
	return nil, nil
}
