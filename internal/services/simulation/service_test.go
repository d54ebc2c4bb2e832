package simulation

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordlestrat/internal/dependencies/mocks"
	"github.com/mcoot/wordlestrat/internal/dependencies/random"
	"github.com/mcoot/wordlestrat/internal/model"
	"github.com/mcoot/wordlestrat/internal/services/scoring"
	"github.com/mcoot/wordlestrat/internal/testutil"
)

var fiveWords = []string{"cores", "coals", "bears", "pears", "years"}

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(scoring.New(), s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) seededService(seed uint64) *Service {
	return New(scoring.New(), random.NewSeeded(seed), testutil.NopLogger())
}

// RunExperiment tests

func (s *ServiceSuite) TestRunExperimentScoresTargetsInDrawOrder() {
	// Guess B is drawn first (pears), then each target in order
	s.random.QueueIntn(3, 0, 1, 2, 3, 4)

	result, err := s.service.RunExperiment(fiveWords, "cores", 5)
	s.Require().NoError(err)

	s.Equal("cores", result.GuessA)
	s.Equal("pears", result.GuessB)
	s.Equal([]int{5, 3, 1, 1, 1}, result.ScoresA)
	s.Equal([]int{1, 2, 4, 5, 4}, result.ScoresB)
	s.Equal(6, s.random.IntnCalls())
	s.Equal([]int{5, 5, 5, 5, 5, 5}, s.random.IntnBounds())
}

func (s *ServiceSuite) TestRunExperimentBounds() {
	service := s.seededService(7)

	result, err := service.RunExperiment(fiveWords, "cores", 200)
	s.Require().NoError(err)

	s.Len(result.ScoresA, 200)
	s.Len(result.ScoresB, 200)
	for i := range result.ScoresA {
		s.GreaterOrEqual(result.ScoresA[i], 0)
		s.LessOrEqual(result.ScoresA[i], model.WordLength)
		s.GreaterOrEqual(result.ScoresB[i], 0)
		s.LessOrEqual(result.ScoresB[i], model.WordLength)
	}
	s.Contains(fiveWords, result.GuessB)
}

func (s *ServiceSuite) TestRunExperimentGuessBIsFixedWithinExperiment() {
	// Guess B = cores, so both strategies score identically on every target
	s.random.QueueIntn(0, 4, 3, 2, 1)

	result, err := s.service.RunExperiment(fiveWords, "cores", 4)
	s.Require().NoError(err)
	s.Equal(result.ScoresA, result.ScoresB)
}

func (s *ServiceSuite) TestRunExperimentValidation() {
	_, err := s.service.RunExperiment(nil, "cores", 5)
	s.ErrorIs(err, model.ErrInvalidInput)

	_, err = s.service.RunExperiment(fiveWords, "cores", 0)
	s.ErrorIs(err, model.ErrInvalidInput)

	_, err = s.service.RunExperiment(fiveWords, "core", 5)
	s.ErrorIs(err, model.ErrInvalidInput)

	_, err = s.service.RunExperiment([]string{"cores", "bear"}, "cores", 5)
	s.ErrorIs(err, model.ErrInvalidInput)
}

// RunTrials tests

func (s *ServiceSuite) TestRunTrialsAveragesEachExperiment() {
	s.random.QueueIntn(
		0, 0, 1, // trial 1: guess B cores; targets cores, coals
		4, 2, 2, // trial 2: guess B years; targets bears, bears
	)

	summary, err := s.service.RunTrials(s.ctx, fiveWords, Params{
		FixedGuess:      "cores",
		ExperimentCount: 2,
		TrialCount:      2,
	}, nil)
	s.Require().NoError(err)

	s.Equal([]float64{4, 1}, summary.AveragesA)
	s.Equal([]float64{4, 4}, summary.AveragesB)
	s.Equal([]string{"cores", "years"}, summary.GuessesB)
}

func (s *ServiceSuite) TestRunTrialsBounds() {
	service := s.seededService(11)

	summary, err := service.RunTrials(s.ctx, fiveWords, Params{
		FixedGuess:      "cores",
		ExperimentCount: 50,
		TrialCount:      30,
	}, nil)
	s.Require().NoError(err)

	s.Len(summary.AveragesA, 30)
	s.Len(summary.AveragesB, 30)
	s.Len(summary.GuessesB, 30)
	for i := range summary.AveragesA {
		s.GreaterOrEqual(summary.AveragesA[i], 0.0)
		s.LessOrEqual(summary.AveragesA[i], float64(model.WordLength))
		s.GreaterOrEqual(summary.AveragesB[i], 0.0)
		s.LessOrEqual(summary.AveragesB[i], float64(model.WordLength))
	}
}

func (s *ServiceSuite) TestRunTrialsSeededIsReproducible() {
	params := Params{FixedGuess: "cores", ExperimentCount: 25, TrialCount: 10}

	first, err := s.seededService(5).RunTrials(s.ctx, fiveWords, params, nil)
	s.Require().NoError(err)
	second, err := s.seededService(5).RunTrials(s.ctx, fiveWords, params, nil)
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *ServiceSuite) TestRunTrialsParallelIsReproducible() {
	params := Params{FixedGuess: "cores", ExperimentCount: 25, TrialCount: 40, Parallelism: 4}

	first, err := s.seededService(9).RunTrials(s.ctx, fiveWords, params, nil)
	s.Require().NoError(err)
	second, err := s.seededService(9).RunTrials(s.ctx, fiveWords, params, nil)
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Len(first.AveragesA, 40)
}

func (s *ServiceSuite) TestRunTrialsReportsProgress() {
	for _, parallelism := range []int{1, 3} {
		var calls atomic.Int32
		var last atomic.Int32
		params := Params{FixedGuess: "cores", ExperimentCount: 5, TrialCount: 12, Parallelism: parallelism}

		_, err := s.seededService(3).RunTrials(s.ctx, fiveWords, params, func(done, total int) {
			calls.Add(1)
			last.Store(int32(done))
			s.Equal(12, total)
		})
		s.Require().NoError(err)

		s.Equal(int32(12), calls.Load())
		s.Equal(int32(12), last.Load())
	}
}

func (s *ServiceSuite) TestRunTrialsCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	for _, parallelism := range []int{1, 4} {
		params := Params{FixedGuess: "cores", ExperimentCount: 5, TrialCount: 10, Parallelism: parallelism}
		_, err := s.seededService(1).RunTrials(ctx, fiveWords, params, nil)
		s.ErrorIs(err, context.Canceled)
	}
}

func (s *ServiceSuite) TestRunTrialsValidation() {
	_, err := s.service.RunTrials(s.ctx, fiveWords, Params{FixedGuess: "cores", ExperimentCount: 5}, nil)
	s.ErrorIs(err, model.ErrInvalidInput)

	_, err = s.service.RunTrials(s.ctx, nil, Params{FixedGuess: "cores", ExperimentCount: 5, TrialCount: 1}, nil)
	s.ErrorIs(err, model.ErrInvalidInput)
}

// Summarize tests

func TestSummarize(t *testing.T) {
	stats := Summarize([]float64{4, 1, 3, 2})

	assert.Equal(t, 4, stats.Count)
	assert.InDelta(t, 2.5, stats.Mean, 1e-9)
	assert.InDelta(t, 2.5, stats.Median, 1e-9)
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 4.0, stats.Max)
	assert.InDelta(t, 1.2909944, stats.StdDev, 1e-6)
}

func TestSummarizeOddCount(t *testing.T) {
	stats := Summarize([]float64{5, 1, 3})
	assert.Equal(t, 3.0, stats.Median)
}

func TestSummarizeSingleAndEmpty(t *testing.T) {
	single := Summarize([]float64{2.2})
	assert.Equal(t, 2.2, single.Mean)
	assert.Equal(t, 0.0, single.StdDev)

	empty := Summarize(nil)
	assert.Equal(t, model.SeriesStats{}, empty)
}

func TestParamsFromRun(t *testing.T) {
	p := ParamsFromRun(model.DefaultRunParams())
	assert.Equal(t, Params{FixedGuess: "cores", ExperimentCount: 1000, TrialCount: 500, Parallelism: 1}, p)
}
