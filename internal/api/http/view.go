package httpapi

import (
	"time"

	"cityweather/internal/common"
	"cityweather/internal/weather"
)

const (
	// hourlyViewSize is how many hourly samples the widget shows.
	hourlyViewSize = 24

	// forecastDays is how many upcoming days the widget shows, starting
	// tomorrow.
	forecastDays = 5
)

// StatusView is the JSON document the widget renders.
type StatusView struct {
	State    string        `json:"state"`
	Message  string        `json:"message,omitempty"`
	Location *LocationView `json:"location,omitempty"`
	Weather  *WeatherView  `json:"weather,omitempty"`
}

type LocationView struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type WeatherView struct {
	Current  CurrentView   `json:"current"`
	Hourly   []HourView    `json:"hourly"`
	Forecast []ForecastDay `json:"forecast"`
}

type CurrentView struct {
	Temperature int          `json:"temperature"`
	FeelsLike   int          `json:"feelsLike"`
	Humidity    int          `json:"humidityPercent"`
	WindSpeed   float64      `json:"windSpeed"`
	Icon        weather.Icon `json:"icon"`
	Label       string       `json:"label"`
}

type HourView struct {
	Hour        string       `json:"hour"` // "15:00", UTC
	Temperature int          `json:"temperature"`
	Icon        weather.Icon `json:"icon"`
}

type ForecastDay struct {
	Weekday string       `json:"weekday"`
	TempMin int          `json:"tempMin"`
	TempMax int          `json:"tempMax"`
	Icon    weather.Icon `json:"icon"`
	Label   string       `json:"label"`
}

func renderStatus(st weather.Status) StatusView {
	view := StatusView{
		State:   string(st.Phase),
		Message: st.Message,
	}

	if st.Phase == weather.PhaseReady {
		view.Location = &LocationView{
			Name:    st.Location.Name,
			Country: st.Location.Country,
		}
		view.Weather = renderWeather(st.Snapshot)
	}

	return view
}

// renderWeather applies the widget's selection rules: temperatures rounded to
// whole degrees, the first 24 hourly samples, and five forecast days starting
// tomorrow (the daily sequence leads with today).
func renderWeather(snap weather.Snapshot) *WeatherView {
	view := &WeatherView{
		Current: CurrentView{
			Temperature: common.RoundTemp(snap.Current.Temperature),
			FeelsLike:   common.RoundTemp(snap.Current.FeelsLike),
			Humidity:    common.RoundTemp(snap.Current.Humidity),
			WindSpeed:   snap.Current.WindSpeed,
			Icon:        weather.IconFor(snap.Current.Code),
			Label:       snap.Current.Label,
		},
	}

	hours := snap.Hourly
	if len(hours) > hourlyViewSize {
		hours = hours[:hourlyViewSize]
	}
	for _, h := range hours {
		view.Hourly = append(view.Hourly, HourView{
			Hour:        time.Unix(h.Timestamp, 0).UTC().Format("15:04"),
			Temperature: common.RoundTemp(h.Temperature),
			Icon:        weather.IconFor(h.Code),
		})
	}

	if len(snap.Daily) > 1 {
		days := snap.Daily[1:]
		if len(days) > forecastDays {
			days = days[:forecastDays]
		}
		for _, d := range days {
			view.Forecast = append(view.Forecast, ForecastDay{
				Weekday: time.Unix(d.Timestamp, 0).UTC().Format("Mon"),
				TempMin: common.RoundTemp(d.TempMin),
				TempMax: common.RoundTemp(d.TempMax),
				Icon:    weather.IconFor(d.Code),
				Label:   d.Label,
			})
		}
	}

	return view
}
