package symmetry

import (
	"errors"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/egg-symmetry/internal/logging"
)

// recordingLogger keeps every message it receives.
type recordingLogger struct {
	logging.NoopLogger
	messages []string
	fields   map[string]interface{}
}

func (r *recordingLogger) Info(msg string, fields ...logging.Field) {
	r.messages = append(r.messages, msg)
	if r.fields == nil {
		r.fields = make(map[string]interface{})
	}
	for _, f := range fields {
		r.fields[f.Key] = f.Value
	}
}

func TestGetSymmetries_Golden3x5(t *testing.T) {
	got, err := GetSymmetries(3, 5)
	if err != nil {
		t.Fatalf("GetSymmetries failed: %v", err)
	}

	want := dist(1, 1, 3, 3, 5, 5, 7, 7, 7, 7, 5, 5, 3, 3, 1, 1)
	if diff := cmp.Diff(want, got.Strings()); diff != "" {
		t.Errorf("3x5 mismatch (-want +got):\n%s", diff)
	}
	if len(got) != 16 {
		t.Errorf("length: got %d, want 16", len(got))
	}
	if got.Sum().Cmp(big.NewInt(64)) != 0 {
		t.Errorf("sum: got %s, want 64", got.Sum())
	}
}

func TestGetSymmetries_OneByOne(t *testing.T) {
	for _, a := range []Algorithm{AlgorithmOptimized, AlgorithmBruteForce} {
		got, err := GetSymmetries(1, 1, WithAlgorithm(a))
		if err != nil {
			t.Fatalf("%s: %v", a, err)
		}
		if diff := cmp.Diff(dist(1, 1), got.Strings()); diff != "" {
			t.Errorf("%s: 1x1 mismatch (-want +got):\n%s", a, diff)
		}
	}
}

func TestGetSymmetries_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"negative rows", -1, 5},
		{"zero cols", 3, 0},
		{"both zero", 0, 0},
		{"billion squared", 1_000_000_000, 1_000_000_000},
		{"one past cap", MaxCells + 1, 1},
		{"product past cap", MaxCells / 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := GetSymmetries(tt.rows, tt.cols)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Fatalf("error: got %v, want ErrInvalidDimensions", err)
			}
			if d != nil {
				t.Error("expected nil distribution on error")
			}
		})
	}
}

func TestGetSymmetries_UnsupportedAlgorithm(t *testing.T) {
	_, err := GetSymmetries(3, 5, WithAlgorithm("unknown"))
	if !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Fatalf("error: got %v, want ErrUnsupportedAlgorithm", err)
	}
	if !strings.Contains(err.Error(), "unknown") {
		t.Errorf("error %q should name the bad algorithm", err)
	}

	if _, err := GetSymmetries(3, 5, WithAlgorithm(AlgorithmDP)); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("dp: got %v, want ErrUnsupportedAlgorithm", err)
	}
}

func TestGetSymmetries_Conservation(t *testing.T) {
	for rows := 1; rows <= 20; rows++ {
		for cols := 1; cols <= 20; cols++ {
			d, err := GetSymmetries(rows, cols)
			if err != nil {
				t.Fatalf("%dx%d: %v", rows, cols, err)
			}
			eggs := ((rows + 1) / 2) * ((cols + 1) / 2)
			want := new(big.Int).Lsh(big.NewInt(1), uint(eggs))
			if d.Sum().Cmp(want) != 0 {
				t.Fatalf("%dx%d: sum %s, want 2^%d", rows, cols, d.Sum(), eggs)
			}
			if len(d) != rows*cols+1 {
				t.Fatalf("%dx%d: length %d, want %d", rows, cols, len(d), rows*cols+1)
			}
		}
	}
}

func TestGetSymmetries_CrossAlgorithmEquivalence(t *testing.T) {
	for rows := 1; rows <= 8; rows++ {
		for cols := 1; cols <= 8; cols++ {
			d1, d2, err := Compare(rows, cols, AlgorithmOptimized, AlgorithmBruteForce)
			if err != nil {
				t.Fatalf("%dx%d: %v", rows, cols, err)
			}
			if diff := cmp.Diff(d2.Strings(), d1.Strings()); diff != "" {
				t.Errorf("%dx%d: optimized differs from bruteforce (-brute +optimized):\n%s", rows, cols, diff)
			}
		}
	}
}

func TestGetSymmetries_CenterParity(t *testing.T) {
	for rows := 1; rows <= 15; rows += 2 {
		for cols := 1; cols <= 15; cols += 2 {
			d, err := GetSymmetries(rows, cols)
			if err != nil {
				t.Fatalf("%dx%d: %v", rows, cols, err)
			}
			for i := 0; i+1 < len(d); i += 2 {
				if d[i].Cmp(d[i+1]) != 0 {
					t.Fatalf("%dx%d: bucket %d = %s, bucket %d = %s", rows, cols, i, d[i], i+1, d[i+1])
				}
			}
		}
	}
}

// TestGetSymmetries_FullGridOracle checks every one of the 2^(rows*cols)
// configurations of small grids directly.
func TestGetSymmetries_FullGridOracle(t *testing.T) {
	for rows := 1; rows <= 4; rows++ {
		for cols := 1; cols <= 4; cols++ {
			n := rows * cols
			counts := make([]int64, n+1)
			for mask := uint32(0); mask < 1<<n; mask++ {
				if isSymmetricMask(mask, rows, cols) {
					counts[popcount(mask)]++
				}
			}

			got, err := GetSymmetries(rows, cols)
			if err != nil {
				t.Fatalf("%dx%d: %v", rows, cols, err)
			}
			if diff := cmp.Diff(dist(counts...), got.Strings()); diff != "" {
				t.Errorf("%dx%d: mismatch with exhaustive count (-want +got):\n%s", rows, cols, diff)
			}
		}
	}
}

func isSymmetricMask(mask uint32, rows, cols int) bool {
	at := func(r, c int) bool { return mask&(1<<(r*cols+c)) != 0 }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if at(r, c) != at(rows-1-r, c) || at(r, c) != at(r, cols-1-c) {
				return false
			}
		}
	}
	return true
}

func popcount(mask uint32) int {
	n := 0
	for ; mask != 0; mask &= mask - 1 {
		n++
	}
	return n
}

func TestGetSymmetries_LargeGrid(t *testing.T) {
	d, err := GetSymmetries(41, 61)
	if err != nil {
		t.Fatalf("GetSymmetries failed: %v", err)
	}
	want := new(big.Int).Lsh(big.NewInt(1), 21*31)
	if d.Sum().Cmp(want) != 0 {
		t.Errorf("sum: got %s, want 2^651", d.Sum())
	}
	if d[0].Cmp(big.NewInt(1)) != 0 || d[len(d)-1].Cmp(big.NewInt(1)) != 0 {
		t.Errorf("empty and full grid should each count once, got %s and %s", d[0], d[len(d)-1])
	}
}

func TestGetSymmetries_Info(t *testing.T) {
	rec := &recordingLogger{}
	if _, err := GetSymmetries(3, 5, WithInfo(true), WithLogger(rec)); err != nil {
		t.Fatalf("GetSymmetries failed: %v", err)
	}

	if diff := cmp.Diff([]string{"grid", "quadrant", "symmetries"}, rec.messages); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
	if rec.fields["corners"] != 2 || rec.fields["edges"] != 3 || rec.fields["center"] != 1 {
		t.Errorf("quadrant fields: got %v", rec.fields)
	}
	if rec.fields["total"] != "2^6=64" {
		t.Errorf("total: got %v, want 2^6=64", rec.fields["total"])
	}
}

func TestGetSymmetries_InfoDisabled(t *testing.T) {
	rec := &recordingLogger{}
	if _, err := GetSymmetries(3, 5, WithLogger(rec)); err != nil {
		t.Fatalf("GetSymmetries failed: %v", err)
	}
	if len(rec.messages) != 0 {
		t.Errorf("expected no diagnostics, got %v", rec.messages)
	}
}

func TestCheckDimensions(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		wantErr    bool
	}{
		{"smallest", 1, 1, false},
		{"at cap", MaxCells, 1, false},
		{"square under cap", 181, 181, false},
		{"zero", 0, 4, true},
		{"past cap", MaxCells, 2, true},
		{"huge", 1 << 30, 1 << 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDimensions(tt.rows, tt.cols)
			if tt.wantErr && !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("got %v, want ErrInvalidDimensions", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCheckInteger(t *testing.T) {
	tests := []struct {
		name    string
		in      float64
		want    int
		wantErr error
	}{
		{"integral", 3, 3, nil},
		{"negative passes through", -1, -1, nil},
		{"max int32", math.MaxInt32, math.MaxInt32, nil},
		{"min int32", math.MinInt32, math.MinInt32, nil},
		{"fraction", 3.5, 0, ErrTypeMismatch},
		{"nan", math.NaN(), 0, ErrTypeMismatch},
		{"infinity", math.Inf(1), 0, ErrTypeMismatch},
		{"one past max int32", math.MaxInt32 + 1, 0, ErrInvalidDimensions},
		{"one below min int32", math.MinInt32 - 1, 0, ErrInvalidDimensions},
		{"far out of range", 1e12, 0, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckInteger("rows", tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
