package weather

// Location represents a resolved place. It is immutable once resolved;
// a new search or geolocation replaces it wholesale.
type Location struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Key returns a canonical string key for logging this location.
func (l Location) Key() string {
	return l.Name + ":" + l.Country
}

// CurrentConditions holds the metric current-weather readings for a location.
type CurrentConditions struct {
	Temperature float64 `json:"temperature"` // Celsius
	FeelsLike   float64 `json:"feelsLike"`
	Humidity    float64 `json:"humidityPercent"`
	WindSpeed   float64 `json:"windSpeed"` // m/s
	Code        string  `json:"conditionCode"`
	Label       string  `json:"conditionLabel"`
}

// HourSample is one hourly forecast entry.
type HourSample struct {
	Timestamp   int64   `json:"timestamp"` // unix seconds, UTC
	Temperature float64 `json:"temperature"`
	Code        string  `json:"conditionCode"`
}

// DaySample is one daily forecast entry.
type DaySample struct {
	Timestamp int64   `json:"timestamp"` // unix seconds, UTC
	TempMin   float64 `json:"tempMin"`
	TempMax   float64 `json:"tempMax"`
	Code      string  `json:"conditionCode"`
	Label     string  `json:"conditionLabel"`
}

// Snapshot is the full weather view for a resolved location: current
// conditions plus up to 48 hourly and 8 daily forecast samples.
type Snapshot struct {
	Current CurrentConditions `json:"current"`
	Hourly  []HourSample      `json:"hourly"`
	Daily   []DaySample       `json:"daily"`
}

// Phase is the lifecycle stage of the displayed request.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseFailed  Phase = "failed"
)

// Status is the single observable state driving the view. Location and
// Snapshot are meaningful only when Phase is PhaseReady; Message only when
// Phase is PhaseFailed.
type Status struct {
	Phase    Phase
	Location Location
	Snapshot Snapshot
	Message  string
}
