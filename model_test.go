package morfessor

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelTrainThenSegmentEndToEnd(t *testing.T) {
	corpus := SlicePairs{
		{Word: "reopening", Frequency: 3},
		{Word: "retrying", Frequency: 5},
		{Word: "reordered", Frequency: 2},
		{Word: "unopened", Frequency: 4},
	}
	require.NoError(t, corpus.Validate())

	m := NewModel(Baseline, WithSeed(11))
	epochs, err := m.Train(context.Background(), corpus)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, epochs, 1)

	assert.False(t, math.IsNaN(m.OverallCost()))
	assert.Greater(t, len(m.Leaves()), 0)

	seg := m.Segment("reopening")
	assert.NotEmpty(t, seg)

	out := m.SegmentCorpus(corpus)
	assert.Len(t, out, len(corpus))
}

func TestModelTrainRejectsMalformedCorpusBeforeEnteringCore(t *testing.T) {
	m := NewModel(Baseline)
	_, err := m.Train(context.Background(), SlicePairs{{Word: "", Frequency: 1}})
	assert.ErrorIs(t, err, ErrEmptyWord)

	_, err = m.Train(context.Background(), SlicePairs{{Word: "ok", Frequency: 0}})
	assert.ErrorIs(t, err, ErrNonPositiveFrequency)
}

func TestModelSegmentPanicsBeforeTrain(t *testing.T) {
	m := NewModel(Baseline)
	assert.Panics(t, func() { m.Segment("word") })
}

func TestModelOptionsOverrideDefaults(t *testing.T) {
	m := NewModel(BaselineFreqLength,
		WithHapaxLegomenaPrior(0.3),
		WithLengthPrior(4.0, 2.0),
		WithConvergenceThreshold(0.01),
		WithSeed(99),
	)
	assert.Equal(t, 0.3, m.hapaxLegomenaPrior)
	assert.Equal(t, 4.0, m.lengthPriorMean)
	assert.Equal(t, 2.0, m.lengthPriorScale)
	assert.Equal(t, 0.01, m.convergenceThreshold)
	assert.Equal(t, int64(99), m.seed)
}

func TestModelReportFormat(t *testing.T) {
	m := NewModel(Baseline, WithSeed(3))
	corpus := SlicePairs{{Word: "redo", Frequency: 2}, {Word: "reopen", Frequency: 3}}
	_, err := m.Train(context.Background(), corpus)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.Report(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "Overall cost: "))
	for _, line := range lines[1:] {
		fields := strings.SplitN(line, " ", 2)
		require.Len(t, fields, 2)
	}
}
