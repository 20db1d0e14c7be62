package angle

import (
	"math"
	"testing"
)

func TestTables_CosIsPhaseShiftedSin(t *testing.T) {
	tables := NewTables()
	for i := int32(0); i < Size; i++ {
		if got, want := tables.Cos(i), tables.Sin((i+QuarterTurn)&Mask); got != want {
			t.Errorf("Cos(%d) = %d, want Sin(%d) = %d", i, got, (i+QuarterTurn)&Mask, want)
		}
	}
}

func TestTables_SinMatchesFloat(t *testing.T) {
	tables := NewTables()
	for i := int32(0); i < Size; i++ {
		want := 127 * math.Sin(2*math.Pi*float64(i)/Size)
		if got := float64(tables.Sin(i)); math.Abs(got-want) > 0.5 {
			t.Errorf("Sin(%d) = %v, want about %.2f", i, got, want)
		}
	}
}

func TestTables_Range(t *testing.T) {
	tables := NewTables()
	for i := int32(0); i < Size; i++ {
		if s := tables.Sin(i); s < -127 || s > 127 {
			t.Errorf("Sin(%d) = %d out of [-127, 127]", i, s)
		}
	}
}

func TestTables_Wraparound(t *testing.T) {
	tables := NewTables()
	tests := []struct {
		name  string
		angle int32
		same  int32
	}{
		{"full turn", 256, 0},
		{"negative one", -1, 255},
		{"negative quarter", -64, 192},
		{"several turns", 256*5 + 17, 17},
		{"large negative", -1000, -1000 & Mask},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tables.Sin(tt.angle) != tables.Sin(tt.same) {
				t.Errorf("Sin(%d) = %d, want Sin(%d) = %d", tt.angle, tables.Sin(tt.angle), tt.same, tables.Sin(tt.same))
			}
			if tables.Cos(tt.angle) != tables.Cos(tt.same) {
				t.Errorf("Cos(%d) = %d, want Cos(%d) = %d", tt.angle, tables.Cos(tt.angle), tt.same, tables.Cos(tt.same))
			}
		})
	}
}

func TestTables_KnownValues(t *testing.T) {
	tables := NewTables()
	known := map[int32]int32{0: 0, 64: 127, 128: 0, 192: -127}
	for a, want := range known {
		if got := tables.Sin(a); got != want {
			t.Errorf("Sin(%d) = %d, want %d", a, got, want)
		}
	}
	if got := tables.Cos(0); got != 127 {
		t.Errorf("Cos(0) = %d, want 127", got)
	}
}
