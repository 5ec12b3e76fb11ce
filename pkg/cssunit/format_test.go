package cssunit

import (
	"testing"
	"time"
)

func TestFormatting(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{Px(12), "12px"},
		{Px(12.5), "12.5px"},
		{Px(7.3333), "7.33px"},
		{Percent(8.333), "8.33%"},
		{Deg(-5), "-5deg"},
		{Deg(-2.456), "-2.46deg"},
		{Seconds(2.349), "2.35s"},
		{Seconds(0), "0s"},
		{Duration(500 * time.Millisecond), "0.5s"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
