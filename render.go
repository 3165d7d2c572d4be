package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"weather-display/i18n"
	"weather-display/view"
)

// renderText prints a view as plain text for terminal use, with row titles
// in the view's language
func renderText(w io.Writer, v *view.View) error {
	tbl, err := i18n.Lookup(v.Language)
	if err != nil {
		return err
	}
	l := tbl.Details
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s, %s\n", v.Location.Name, v.Location.Country)
	fmt.Fprintf(tw, "%s %s\n\n", v.Location.Weekday, v.Location.Date)
	fmt.Fprintf(tw, "%d°C\t%s\n", v.Current.TempC, v.Current.Condition)
	fmt.Fprintf(tw, "%s\t%d°C\n", l.FeelsLike, v.Current.FeelsLikeC)
	fmt.Fprintf(tw, "%s\t%.1f km/h %s\n", l.Wind, v.Current.WindKph, v.Current.WindDir)
	fmt.Fprintf(tw, "%s\t%d%%\n", l.Humidity, v.Current.HumidityPct)
	fmt.Fprintf(tw, "%s\t%.0f mb\n", l.Pressure, v.Current.PressureMb)
	fmt.Fprintf(tw, "%s\t%.1f\n", l.UV, v.Current.UV)
	fmt.Fprintf(tw, "%s\t%s (%d)\n", l.AirQuality, v.AirQuality.Label, v.AirQuality.GBDefraIndex)
	fmt.Fprintf(tw, "%s\t%s\n", l.Sunrise, v.Astro.Sunrise)
	fmt.Fprintf(tw, "%s\t%s\n", l.Sunset, v.Astro.Sunset)
	fmt.Fprintf(tw, "%s\t%s (%s%%)\n\n", l.Moon, v.Astro.MoonPhase, v.Astro.MoonIllumination)

	for _, d := range v.Forecast {
		fmt.Fprintf(tw, "%s\t%d° / %d°\t%s\t%d%%\t%s\n", d.Weekday, d.MaxC, d.MinC, d.Condition, d.ChanceOfRainPct, d.MoonPhase)
	}
	if len(v.Hourly) > 0 {
		fmt.Fprintln(tw)
		for _, h := range v.Hourly {
			fmt.Fprintf(tw, "%s\t%d°\t%d%%\n", h.Label, h.TempC, h.ChanceOfRainPct)
		}
	}
	for _, a := range v.Alerts {
		fmt.Fprintf(tw, "\n! %s: %s\n", a.Event, a.Description)
	}
	return tw.Flush()
}
