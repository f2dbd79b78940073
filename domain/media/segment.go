package media

// SegmentLength is the fixed length of a planned segment in seconds.
// The tool always splits into 30-minute parts; only the final part of a
// plan may be shorter.
const SegmentLength = 1800.0

// Segment is one contiguous time-bounded slice of the source video.
type Segment struct {
	Start  float64 // offset into the source in seconds
	Length float64 // slice length in seconds
	Index  int     // 1-based part number
}

// End returns the offset at which the segment ends.
func (s Segment) End() float64 {
	return s.Start + s.Length
}

// PlanSegments produces the ordered segment plan covering totalDuration.
//
// Segments are contiguous and non-overlapping, every length equals
// SegmentLength except possibly the last, and the lengths sum to
// totalDuration. A zero duration yields an empty plan, which callers treat
// as a no-op success.
func PlanSegments(totalDuration float64) []Segment {
	if totalDuration <= 0 {
		return nil
	}

	var plan []Segment
	offset := 0.0
	index := 1

	for offset < totalDuration {
		length := SegmentLength
		if remaining := totalDuration - offset; remaining < length {
			length = remaining
		}

		plan = append(plan, Segment{
			Start:  offset,
			Length: length,
			Index:  index,
		})

		offset += length
		index++
	}

	return plan
}
