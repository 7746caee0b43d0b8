package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/takehome/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "test_schedule_*.yaml")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	_, err = tmpfile.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "threshold: 500000\n" +
		"display_divisor: 1000\n" +
		"slabs:\n" +
		"  - lower: 0\n" +
		"    upper: 250000\n" +
		"    rate: 0\n" +
		"  - lower: 250000\n" +
		"    upper: 500000\n" +
		"    rate: 0.05\n" +
		"  - lower: 500000\n" +
		"    rate: 0.2\n" +
		"sweep:\n" +
		"  start: 400000\n" +
		"  end: 600000\n" +
		"  step: 5000\n"

	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTemp(t, testConfig))
	require.NoError(t, err)

	assert.True(t, config.Threshold.Equal(decimal.NewFromInt(500000)))
	require.Len(t, config.Slabs, 3)
	assert.True(t, config.Slabs[1].Rate.Equal(decimal.RequireFromString("0.05")))
	assert.True(t, config.Slabs[2].IsUnbounded())
	require.NotNil(t, config.Sweep)
	assert.True(t, config.Sweep.Step.Equal(decimal.NewFromInt(5000)))
	assert.True(t, config.Divisor().Equal(decimal.NewFromInt(1000)))

	schedule, err := parser.BuildSchedule(config)
	require.NoError(t, err)
	assert.Equal(t, 3, schedule.Len())
}

func TestLoadFromFile_DefaultsForOptionalFields(t *testing.T) {
	testConfig := "threshold: 0\n" +
		"slabs:\n" +
		"  - lower: 0\n" +
		"    rate: 0.1\n"

	config, err := NewInputParser().LoadFromFile(writeTemp(t, testConfig))
	require.NoError(t, err)

	assert.Nil(t, config.Sweep)
	assert.True(t, config.Divisor().Equal(decimal.NewFromInt(domain.DefaultDisplayDivisor)))
	assert.True(t, config.SweepOrDefault().Start.Equal(domain.DefaultSweep().Start))
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	testConfig := `
slabs:
	- lower: 0
		rate: "not-a-number"
`
	config, err := NewInputParser().LoadFromFile(writeTemp(t, testConfig))

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()
	up := func(v int64) *decimal.Decimal { d := decimal.NewFromInt(v); return &d }

	tests := []struct {
		name    string
		config  domain.Configuration
		wantErr string
		is      error
	}{
		{
			name:    "no slabs",
			config:  domain.Configuration{},
			wantErr: "no slabs provided",
			is:      domain.ErrInvalidSchedule,
		},
		{
			name: "gap between slabs",
			config: domain.Configuration{Slabs: []domain.Slab{
				{Lower: decimal.Zero, Upper: up(10)},
				{Lower: decimal.NewFromInt(20)},
			}},
			wantErr: "starts at 20",
			is:      domain.ErrInvalidSchedule,
		},
		{
			name: "bad sweep",
			config: domain.Configuration{
				Slabs: []domain.Slab{{Lower: decimal.Zero}},
				Sweep: &domain.SweepRange{Start: decimal.Zero, End: decimal.NewFromInt(10), Step: decimal.Zero},
			},
			wantErr: "sweep:",
			is:      domain.ErrInvalidSweep,
		},
		{
			name: "negative divisor",
			config: domain.Configuration{
				Slabs:          []domain.Slab{{Lower: decimal.Zero}},
				DisplayDivisor: decimal.NewFromInt(-1),
			},
			wantErr: "display divisor cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidateConfiguration(&tt.config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestExampleConfigurationRoundTrip(t *testing.T) {
	parser := NewInputParser()
	path := filepath.Join(t.TempDir(), "schedule.yaml")

	require.NoError(t, parser.SaveConfiguration(parser.CreateExampleConfiguration(), path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	schedule, err := parser.BuildSchedule(loaded)
	require.NoError(t, err)

	want := domain.DefaultSchedule()
	require.Equal(t, want.Len(), schedule.Len())
	assert.True(t, want.Threshold().Equal(schedule.Threshold()))
	for i, s := range schedule.Slabs() {
		w := want.Slabs()[i]
		assert.True(t, w.Lower.Equal(s.Lower), "slab %d lower", i)
		assert.True(t, w.Rate.Equal(s.Rate), "slab %d rate", i)
		assert.Equal(t, w.IsUnbounded(), s.IsUnbounded(), "slab %d bound", i)
		if !s.IsUnbounded() {
			assert.True(t, w.Upper.Equal(*s.Upper), "slab %d upper", i)
		}
	}
	require.NotNil(t, loaded.Sweep)
	assert.True(t, loaded.Sweep.End.Equal(domain.DefaultSweep().End))
}

func TestLoadShippedSchedule(t *testing.T) {
	config, err := NewInputParser().LoadFromFile("../../testdata/default_schedule.yaml")
	require.NoError(t, err)
	assert.Len(t, config.Slabs, 7)
	assert.True(t, config.Threshold.Equal(decimal.NewFromInt(1200000)))
}
