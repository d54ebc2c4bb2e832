package wordlist

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordlestrat/internal/model"
	"github.com/mcoot/wordlestrat/internal/storage/memory"
	"github.com/mcoot/wordlestrat/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) writeFile(contents string) string {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	s.Require().NoError(os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func (s *ServiceSuite) TestIsNotLoadedByDefault() {
	s.False(s.service.IsLoaded())
	s.Equal(0, s.service.Count())

	_, err := s.service.Words()
	s.ErrorIs(err, model.ErrWordListNotLoaded)
}

func (s *ServiceSuite) TestLoadWords() {
	err := s.service.LoadWords([]string{"cores", "Bears", "pears"})
	s.Require().NoError(err)

	s.True(s.service.IsLoaded())
	s.Equal(3, s.service.Count())

	words, err := s.service.Words()
	s.Require().NoError(err)
	s.Equal([]string{"cores", "bears", "pears"}, words)
}

func (s *ServiceSuite) TestLoadWordsRejectsEmpty() {
	err := s.service.LoadWords(nil)
	s.ErrorIs(err, model.ErrInvalidInput)
	s.False(s.service.IsLoaded())
}

func (s *ServiceSuite) TestLoadWordsRejectsMixedLengths() {
	err := s.service.LoadWords([]string{"cores", "core"})
	s.ErrorIs(err, model.ErrMalformedWord)
	s.False(s.service.IsLoaded())
}

func (s *ServiceSuite) TestLoadFromFile() {
	path := s.writeFile("cores\n  coals  \n\nBEARS\r\npears\nyears\n")

	err := s.service.LoadFromFile(s.ctx, path)
	s.Require().NoError(err)

	words, err := s.service.Words()
	s.Require().NoError(err)
	s.Equal([]string{"cores", "coals", "bears", "pears", "years"}, words)

	// Saved to storage for future use
	stored, err := s.storage.GetWordList(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, stored)
}

func (s *ServiceSuite) TestLoadFromFileMissing() {
	err := s.service.LoadFromFile(s.ctx, filepath.Join(s.T().TempDir(), "nope.txt"))
	s.ErrorIs(err, model.ErrMissingFile)
	s.ErrorIs(err, os.ErrNotExist)
}

func (s *ServiceSuite) TestLoadFromFileMalformedLength() {
	path := s.writeFile("cores\ncoal\n")

	err := s.service.LoadFromFile(s.ctx, path)
	s.ErrorIs(err, model.ErrMalformedWord)
	s.Contains(err.Error(), "line 2")
	s.False(s.service.IsLoaded())
}

func (s *ServiceSuite) TestLoadFromFileMalformedAlphabet() {
	path := s.writeFile("cores\nc0als\n")

	err := s.service.LoadFromFile(s.ctx, path)
	s.ErrorIs(err, model.ErrMalformedWord)
}

func (s *ServiceSuite) TestLoadFromFileOnlyBlankLines() {
	path := s.writeFile("\n\n   \n")

	err := s.service.LoadFromFile(s.ctx, path)
	s.ErrorIs(err, model.ErrInvalidInput)
}

func (s *ServiceSuite) TestLoadFromStorage() {
	s.Require().NoError(s.storage.SaveWordList(s.ctx, []string{"cores", "years"}))

	err := s.service.LoadFromStorage(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, s.service.Count())
}

func (s *ServiceSuite) TestLoadFromStorageWhenEmpty() {
	err := s.service.LoadFromStorage(s.ctx)
	s.ErrorIs(err, model.ErrWordListNotLoaded)
}

func (s *ServiceSuite) TestHead() {
	_ = s.service.LoadWords([]string{"cores", "coals", "bears"})

	s.Equal([]string{"cores", "coals"}, s.service.Head(2))
	s.Equal([]string{"cores", "coals", "bears"}, s.service.Head(25))
	s.Empty(s.service.Head(0))
}

func (s *ServiceSuite) TestWordsReturnsCopy() {
	_ = s.service.LoadWords([]string{"cores", "coals"})

	words, _ := s.service.Words()
	words[0] = "xxxxx"

	again, _ := s.service.Words()
	s.Equal("cores", again[0])
}

func (s *ServiceSuite) TestContains() {
	_ = s.service.LoadWords([]string{"cores", "coals"})

	s.True(s.service.Contains("cores"))
	s.True(s.service.Contains("CORES"))
	s.False(s.service.Contains("bears"))
}
