package layout

import (
	"testing"

	"github.com/Mr-Dark-debug/polaroid/internal/photo"
	"github.com/google/go-cmp/cmp"
)

func testPhotos(n int) []photo.Photo {
	return photo.Generate(n, photo.NewRand(3), photo.DefaultOptions())
}

func TestGroupHundredPhotos(t *testing.T) {
	groups, err := Group(testPhotos(100), DefaultGroupSize)
	if err != nil {
		t.Fatalf("Group failed: %v", err)
	}
	if len(groups) != 17 {
		t.Fatalf("expected 17 strings, got %d", len(groups))
	}
	for i, g := range groups[:16] {
		if len(g) != 6 {
			t.Errorf("string %d has %d photos, want 6", i, len(g))
		}
	}
	if last := groups[16]; len(last) != 4 {
		t.Errorf("last string has %d photos, want 4", len(last))
	}
}

func TestGroupCount(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{100, 6, 17},
		{96, 6, 16},
		{1, 6, 1},
		{0, 6, 0},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := GroupCount(tt.total, tt.size); got != tt.want {
			t.Errorf("GroupCount(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestGroupRejectsBadSize(t *testing.T) {
	if _, err := Group(testPhotos(3), 0); err == nil {
		t.Error("expected error for group size 0")
	}
	if _, err := Assign(testPhotos(3), 6, -1); err == nil {
		t.Error("expected error for negative spacing")
	}
}

func TestAssignMatchesStringIndex(t *testing.T) {
	photos := testPhotos(100)
	placements, err := Assign(photos, DefaultGroupSize, DefaultSpacingPx)
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	if len(placements) != len(photos) {
		t.Fatalf("expected %d placements, got %d", len(photos), len(placements))
	}

	for _, pl := range placements {
		if want := StringIndex(pl.Photo.ID, DefaultGroupSize); pl.Group != want {
			t.Errorf("photo %d on string %d, want %d", pl.Photo.ID, pl.Group, want)
		}
		if want := (pl.Photo.ID - 1) % DefaultGroupSize; pl.Position != want {
			t.Errorf("photo %d at position %d, want %d", pl.Photo.ID, pl.Position, want)
		}
		if want := pl.Photo.VerticalJitter + pl.Position*DefaultSpacingPx; pl.OffsetPx != want {
			t.Errorf("photo %d offset %d, want %d", pl.Photo.ID, pl.OffsetPx, want)
		}
	}
}

func TestAssignSmallSet(t *testing.T) {
	photos := []photo.Photo{
		{ID: 1, VerticalJitter: 3},
		{ID: 2, VerticalJitter: 0},
		{ID: 3, VerticalJitter: 15},
	}
	got, err := Assign(photos, 2, 10)
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	want := []Placement{
		{Photo: photos[0], Group: 0, Position: 0, OffsetPx: 3},
		{Photo: photos[1], Group: 0, Position: 1, OffsetPx: 10},
		{Photo: photos[2], Group: 1, Position: 0, OffsetPx: 15},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Assign mismatch (-want +got):\n%s", diff)
	}
}

func TestBulbs(t *testing.T) {
	if diff := cmp.Diff([]int{0, 5, 10, 15}, Bulbs(4, 20)); diff != "" {
		t.Errorf("Bulbs mismatch (-want +got):\n%s", diff)
	}
	if Bulbs(0, 10) != nil || Bulbs(3, 0) != nil {
		t.Error("expected nil for empty bulbs")
	}
}

func TestBulbPercents(t *testing.T) {
	got := BulbPercents(DefaultBulbs)
	if len(got) != 12 {
		t.Fatalf("expected 12 bulbs, got %d", len(got))
	}
	if got[0] != 0 || got[1] != 8.3 || got[11] != 91.7 {
		t.Errorf("unexpected bulb percents %v", got)
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		width, want int
	}{
		{400, 1},
		{767, 1},
		{768, 2},
		{1023, 2},
		{1024, 3},
		{4000, 3},
	}
	for _, tt := range tests {
		if got := Columns(tt.width, MediumBreakpoint, LargeBreakpoint); got != tt.want {
			t.Errorf("Columns(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}
