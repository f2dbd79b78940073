package media

import (
	"math"
	"testing"
)

func TestPlanSegments(t *testing.T) {
	tests := []struct {
		name          string
		totalDuration float64
		want          []Segment
	}{
		{
			name:          "exact multiple of segment length",
			totalDuration: 5400,
			want: []Segment{
				{Start: 0, Length: 1800, Index: 1},
				{Start: 1800, Length: 1800, Index: 2},
				{Start: 3600, Length: 1800, Index: 3},
			},
		},
		{
			name:          "shorter than one segment",
			totalDuration: 100,
			want: []Segment{
				{Start: 0, Length: 100, Index: 1},
			},
		},
		{
			name:          "zero duration yields empty plan",
			totalDuration: 0,
			want:          nil,
		},
		{
			name:          "remainder becomes short last segment",
			totalDuration: 4000,
			want: []Segment{
				{Start: 0, Length: 1800, Index: 1},
				{Start: 1800, Length: 1800, Index: 2},
				{Start: 3600, Length: 400, Index: 3},
			},
		},
		{
			name:          "fractional duration",
			totalDuration: 1800.5,
			want: []Segment{
				{Start: 0, Length: 1800, Index: 1},
				{Start: 1800, Length: 0.5, Index: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlanSegments(tt.totalDuration)

			if len(got) != len(tt.want) {
				t.Fatalf("PlanSegments(%v) returned %d segments, want %d", tt.totalDuration, len(got), len(tt.want))
			}

			for i := range got {
				if got[i].Index != tt.want[i].Index {
					t.Errorf("segment %d: Index = %d, want %d", i, got[i].Index, tt.want[i].Index)
				}
				if math.Abs(got[i].Start-tt.want[i].Start) > 1e-9 {
					t.Errorf("segment %d: Start = %v, want %v", i, got[i].Start, tt.want[i].Start)
				}
				if math.Abs(got[i].Length-tt.want[i].Length) > 1e-9 {
					t.Errorf("segment %d: Length = %v, want %v", i, got[i].Length, tt.want[i].Length)
				}
			}
		})
	}
}

func TestPlanSegments_Invariants(t *testing.T) {
	durations := []float64{0.01, 1, 100, 1799.99, 1800, 1800.01, 3600, 5400, 7199.5, 86400, 90000.37}

	for _, total := range durations {
		plan := PlanSegments(total)

		// Segment count is the ceiling of total/SegmentLength.
		wantCount := int(math.Ceil(total / SegmentLength))
		if len(plan) != wantCount {
			t.Errorf("total=%v: got %d segments, want %d", total, len(plan), wantCount)
		}

		// Lengths sum to the total duration.
		sum := 0.0
		for _, seg := range plan {
			if seg.Length <= 0 {
				t.Errorf("total=%v: segment %d has non-positive length %v", total, seg.Index, seg.Length)
			}
			if seg.Length > SegmentLength {
				t.Errorf("total=%v: segment %d exceeds segment length: %v", total, seg.Index, seg.Length)
			}
			sum += seg.Length
		}
		if math.Abs(sum-total) > 1e-6 {
			t.Errorf("total=%v: segment lengths sum to %v", total, sum)
		}

		// Segments are contiguous, non-overlapping, and indexed from 1.
		for i, seg := range plan {
			if seg.Index != i+1 {
				t.Errorf("total=%v: segment %d has index %d", total, i, seg.Index)
			}
			if i > 0 && math.Abs(plan[i-1].End()-seg.Start) > 1e-9 {
				t.Errorf("total=%v: gap between segment %d and %d", total, i, i+1)
			}
		}

		// Only the last segment may be shorter than SegmentLength.
		for i, seg := range plan {
			if i < len(plan)-1 && seg.Length != SegmentLength {
				t.Errorf("total=%v: non-final segment %d has length %v", total, seg.Index, seg.Length)
			}
		}
	}
}
