// Package cssunit formats lengths, angles and durations for inline
// styles.
//
// Values are rendered with the fewest decimals that keep them readable:
// whole numbers have none, everything else keeps up to two.
package cssunit

import (
	"strconv"
	"time"
)

// trim formats v with up to two decimals and no trailing zeros.
func trim(v float64) string {
	return strconv.FormatFloat(float64(int64(v*100+sign(v)*0.5))/100, 'f', -1, 64)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// Px formats a pixel length. Example: "12.5px"
func Px(v float64) string {
	return trim(v) + "px"
}

// Percent formats a percentage. Example: "8.3%"
func Percent(v float64) string {
	return trim(v) + "%"
}

// Deg formats a rotation. Example: "-5deg"
func Deg(v float64) string {
	return trim(v) + "deg"
}

// Seconds formats an animation time given in seconds. Example: "2.35s"
func Seconds(v float64) string {
	return trim(v) + "s"
}

// Duration formats a time.Duration as seconds. Example: "500ms" -> "0.5s"
func Duration(d time.Duration) string {
	return Seconds(d.Seconds())
}
