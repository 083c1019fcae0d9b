package series

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCheckLengths(t *testing.T) {
	testCases := []struct {
		name    string
		input   [][]float64
		want    int
		wantErr bool
	}{
		{"no_slices", nil, 0, false},
		{"single", [][]float64{{1, 2, 3}}, 3, false},
		{"equal", [][]float64{{1, 2}, {3, 4}, {5, 6}}, 2, false},
		{"all_empty", [][]float64{{}, {}}, 0, false},
		{"mismatch", [][]float64{{1, 2}, {3}}, 0, true},
		{"nil_and_values", [][]float64{nil, {1}}, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := CheckLengths(tc.input...)
			if tc.wantErr {
				if !errors.Is(err, ErrLengthMismatch) {
					t.Fatalf("expected ErrLengthMismatch, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n != tc.want {
				t.Errorf("length = %d, want %d", n, tc.want)
			}
		})
	}
}

func TestMap3(t *testing.T) {
	sum := func(a, b, c float64) float64 { return a + b + c }

	got, err := Map3(sum, []float64{1, 2}, []float64{10, 20}, []float64{100, 200})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]float64{111, 222}, got); diff != "" {
		t.Errorf("Map3 mismatch (-want +got):\n%s", diff)
	}

	empty, err := Map3(sum, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", empty)
	}

	if _, err := Map3(sum, []float64{1}, []float64{1, 2}, []float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestMap3EStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	f := func(a, b, c float64) (float64, error) {
		calls++
		if a < 0 {
			return 0, boom
		}
		return a, nil
	}

	_, err := Map3E(f, []float64{1, -1, -2}, []float64{0, 0, 0}, []float64{0, 0, 0})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if err.Error() != "element 1: boom" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if calls != 2 {
		t.Errorf("expected evaluation to stop after 2 calls, got %d", calls)
	}
}

func TestMap4(t *testing.T) {
	f := func(a, b, c, d float64) float64 { return a*b - c*d }
	got, err := Map4(f, []float64{2, 3}, []float64{4, 5}, []float64{1, 1}, []float64{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]float64{7, 13}, got); diff != "" {
		t.Errorf("Map4 mismatch (-want +got):\n%s", diff)
	}
	if _, err := Map4(f, []float64{1}, []float64{1}, []float64{1}, nil); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestArange(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	testCases := []struct {
		name              string
		start, stop, step float64
		want              []float64
	}{
		{"integers", 0, 5, 1, []float64{0, 1, 2, 3, 4}},
		{"fractional_tail", -0.15, 0.5, 0.1, []float64{-0.15, -0.05, 0.05, 0.15, 0.25, 0.35, 0.45}},
		{"negative_step", 1, 0, -0.25, []float64{1, 0.75, 0.5, 0.25}},
		{"empty_range", 1, 1, 0.5, []float64{}},
		{"wrong_direction", 0, 1, -1, []float64{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Arange(tc.start, tc.stop, tc.step)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got, approx); diff != "" {
				t.Errorf("Arange mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := Arange(0, 1, 0); !errors.Is(err, ErrZeroStep) {
		t.Errorf("expected ErrZeroStep, got %v", err)
	}
	if _, err := Arange(-1, 1, 1e-12); !errors.Is(err, ErrTooManyPoints) {
		t.Errorf("expected ErrTooManyPoints, got %v", err)
	}
}

func TestPoints(t *testing.T) {
	testCases := []struct {
		name              string
		start, stop, step float64
		want              int
		wantErr           error
	}{
		{"numpy_rounding", -0.07, 0.07, 0.01, 15, nil},
		{"pressure_offsets", -10, 10, 1, 20, nil},
		{"empty", 1, 0, 1, 0, nil},
		{"nan_bounds", math.NaN(), 1, 1, 0, nil},
		{"at_cap", 0, MaxPoints, 1, MaxPoints, nil},
		{"over_cap", 0, MaxPoints + 1, 1, 0, ErrTooManyPoints},
		{"tiny_step", -1, 1, 1e-12, 0, ErrTooManyPoints},
		{"infinite_range", 0, math.Inf(1), 1, 0, ErrTooManyPoints},
		{"zero_step", 0, 1, 0, 0, ErrZeroStep},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := Points(tc.start, tc.stop, tc.step)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, want %v", err, tc.wantErr)
			}
			if n != tc.want {
				t.Errorf("Points = %d, want %d", n, tc.want)
			}
		})
	}
}

func TestJSONFloat(t *testing.T) {
	testCases := []struct {
		name  string
		input float64
		want  string
	}{
		{"finite", 1540.5, "1540.5"},
		{"zero", 0, "0"},
		{"nan", math.NaN(), "null"},
		{"pos_inf", math.Inf(1), "null"},
		{"neg_inf", math.Inf(-1), "null"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(struct {
				V JSONFloat `json:"v"`
			}{JSONFloat(tc.input)})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got, want := string(data), `{"v":`+tc.want+`}`; got != want {
				t.Errorf("Marshal = %s, want %s", got, want)
			}
		})
	}

	var back struct {
		A JSONFloat `json:"a"`
		B JSONFloat `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a":null,"b":2.5}`), &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(float64(back.A)) {
		t.Errorf("null decoded to %v, want NaN", back.A)
	}
	if back.B != 2.5 {
		t.Errorf("b = %v, want 2.5", back.B)
	}
}

func TestOffsetAndRatio(t *testing.T) {
	deltas := []float64{-1, 0, 1}
	xs := Offset(10, deltas)
	if diff := cmp.Diff([]float64{9, 10, 11}, xs); diff != "" {
		t.Errorf("Offset mismatch (-want +got):\n%s", diff)
	}
	if deltas[0] != -1 {
		t.Error("Offset must not modify its input")
	}

	r := Ratio(xs, 10)
	if diff := cmp.Diff([]float64{0.9, 1, 1.1}, r, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Errorf("Ratio mismatch (-want +got):\n%s", diff)
	}
}

func TestFill(t *testing.T) {
	if diff := cmp.Diff([]float64{2.5, 2.5, 2.5}, Fill(2.5, 3)); diff != "" {
		t.Errorf("Fill mismatch (-want +got):\n%s", diff)
	}
	if got := Fill(1, 0); len(got) != 0 {
		t.Errorf("expected empty slice, got %v", got)
	}
}

func TestExtent(t *testing.T) {
	lo, hi := Extent([]float64{3, -1, 2})
	if lo != -1 || hi != 3 {
		t.Errorf("Extent = (%v, %v), want (-1, 3)", lo, hi)
	}
	lo, hi = Extent(nil)
	if lo != 0 || hi != 0 {
		t.Errorf("Extent(nil) = (%v, %v), want (0, 0)", lo, hi)
	}
}

func TestMeanStdDev(t *testing.T) {
	testCases := []struct {
		name       string
		input      []float64
		wantMean   float64
		wantStddev float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{4}, 4, 0},
		{"pair", []float64{1, 3}, 2, math.Sqrt2},
		{"constant", []float64{5, 5, 5, 5}, 5, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mean, sd := MeanStdDev(tc.input)
			if math.Abs(mean-tc.wantMean) > 1e-12 {
				t.Errorf("mean = %v, want %v", mean, tc.wantMean)
			}
			if math.Abs(sd-tc.wantStddev) > 1e-12 {
				t.Errorf("stddev = %v, want %v", sd, tc.wantStddev)
			}
		})
	}
}

func TestParseFloats(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expected  []float64
		expectErr bool
	}{
		{"empty_string", "", nil, false},
		{"blank", "   ", nil, false},
		{"single_value", "1.888091", []float64{1.888091}, false},
		{"multiple_values", "1.0,2.5,3.0", []float64{1.0, 2.5, 3.0}, false},
		{"with_spaces", " 1.0 , 2.5 ", []float64{1.0, 2.5}, false},
		{"scientific_notation", "5e-4,1E3", []float64{0.0005, 1000}, false},
		{"empty_parts", "1,,3", []float64{1, 3}, false},
		{"invalid_value", "1.0,abc", nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseFloats(tc.input)
			if tc.expectErr {
				if err == nil {
					t.Errorf("Expected error for input %q, got nil", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.expected, result); diff != "" {
				t.Errorf("ParseFloats mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
