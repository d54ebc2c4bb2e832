package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordlestrat/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Word list tests

func (s *StorageSuite) TestGetWordListWhenEmpty() {
	_, err := s.storage.GetWordList(s.ctx)
	s.ErrorIs(err, model.ErrWordListNotLoaded)
}

func (s *StorageSuite) TestSaveAndGetWordListPreservesOrder() {
	words := []string{"cores", "bears", "aahed"}
	s.Require().NoError(s.storage.SaveWordList(s.ctx, words))

	got, err := s.storage.GetWordList(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, got)
}

func (s *StorageSuite) TestWordListIsCopied() {
	words := []string{"cores", "bears"}
	s.Require().NoError(s.storage.SaveWordList(s.ctx, words))
	words[0] = "xxxxx"

	got, err := s.storage.GetWordList(s.ctx)
	s.Require().NoError(err)
	s.Equal("cores", got[0])

	got[1] = "yyyyy"
	again, _ := s.storage.GetWordList(s.ctx)
	s.Equal("bears", again[1])
}

// Run tests

func (s *StorageSuite) TestSaveAndGetRun() {
	run := &model.Run{ID: "run-1", WordCount: 5, CreatedAt: time.Now()}
	s.Require().NoError(s.storage.SaveRun(s.ctx, run))

	got, err := s.storage.GetRun(s.ctx, "run-1")
	s.Require().NoError(err)
	s.Equal(5, got.WordCount)
}

func (s *StorageSuite) TestGetRunNotFound() {
	_, err := s.storage.GetRun(s.ctx, "missing")
	s.ErrorIs(err, model.ErrRunNotFound)
}

func (s *StorageSuite) TestListRunsNewestFirst() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveRun(s.ctx, &model.Run{ID: "old", CreatedAt: base})
	_ = s.storage.SaveRun(s.ctx, &model.Run{ID: "new", CreatedAt: base.Add(time.Hour)})
	_ = s.storage.SaveRun(s.ctx, &model.Run{ID: "mid", CreatedAt: base.Add(time.Minute)})

	runs, err := s.storage.ListRuns(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(runs, 3)
	s.Equal(model.RunID("new"), runs[0].ID)
	s.Equal(model.RunID("mid"), runs[1].ID)
	s.Equal(model.RunID("old"), runs[2].ID)
}

func (s *StorageSuite) TestListRunsEmpty() {
	runs, err := s.storage.ListRuns(s.ctx)
	s.Require().NoError(err)
	s.Empty(runs)
}
