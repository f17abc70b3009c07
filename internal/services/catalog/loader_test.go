package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/geoquiz/internal/model"
	"github.com/mcoot/geoquiz/internal/storage/memory"
	"github.com/mcoot/geoquiz/internal/testutil"
)

type LoaderSuite struct {
	suite.Suite
	storage *memory.Storage
	loader  *Loader
	ctx     context.Context
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderSuite))
}

func (s *LoaderSuite) SetupTest() {
	s.storage = memory.New()
	s.loader = NewLoader(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *LoaderSuite) TestLoadFromStorageEmpty() {
	_, err := s.loader.LoadFromStorage(s.ctx)
	s.ErrorIs(err, model.ErrCatalogNotLoaded)
}

func (s *LoaderSuite) TestLoadOrSeedSeedsWorld() {
	cat, err := s.loader.LoadOrSeed(s.ctx)
	s.Require().NoError(err)
	s.Equal(197, cat.Len())

	stored, err := s.storage.GetCatalogFeed(s.ctx)
	s.Require().NoError(err)
	s.Len(stored.Aliases, 197)
}

func (s *LoaderSuite) TestLoadOrSeedPrefersStored() {
	feed := testutil.SampleFeed()
	s.Require().NoError(s.storage.SaveCatalogFeed(s.ctx, &feed))

	cat, err := s.loader.LoadOrSeed(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, cat.Len())
}

func (s *LoaderSuite) TestLoadFromReaderSavesFeed() {
	data, err := json.Marshal(testutil.AccentedFeed())
	s.Require().NoError(err)

	cat, err := s.loader.LoadFromReader(s.ctx, strings.NewReader(string(data)))
	s.Require().NoError(err)
	s.Equal(3, cat.Len())

	fromStorage, err := s.loader.LoadFromStorage(s.ctx)
	s.Require().NoError(err)
	s.Equal(cat.IDs(), fromStorage.IDs())
	s.Equal("Côte d'Ivoire", fromStorage.DisplayName(384))
}

func (s *LoaderSuite) TestLoadFromReaderRejectsBadJSON() {
	_, err := s.loader.LoadFromReader(s.ctx, strings.NewReader("{not json"))
	s.ErrorIs(err, model.ErrInvalidCatalog)

	_, err = s.storage.GetCatalogFeed(s.ctx)
	s.ErrorIs(err, model.ErrCatalogNotLoaded)
}

func (s *LoaderSuite) TestLoadFromReaderRejectsInvalidFeedWithoutSaving() {
	feed := testutil.SampleFeed()
	feed.Aliases[7] = []string{"Orphan"}
	data, err := json.Marshal(feed)
	s.Require().NoError(err)

	_, err = s.loader.LoadFromReader(s.ctx, strings.NewReader(string(data)))
	s.ErrorIs(err, model.ErrInvalidCatalog)

	_, err = s.storage.GetCatalogFeed(s.ctx)
	s.ErrorIs(err, model.ErrCatalogNotLoaded)
}

func (s *LoaderSuite) TestLoadFromFile() {
	data, err := json.Marshal(testutil.SampleFeed())
	s.Require().NoError(err)
	path := filepath.Join(s.T().TempDir(), "catalog.json")
	s.Require().NoError(os.WriteFile(path, data, 0o600))

	cat, err := s.loader.LoadFromFile(s.ctx, path)
	s.Require().NoError(err)
	s.Equal([]string{"Beta", "Bravo"}, cat.Aliases(2))
}

func (s *LoaderSuite) TestLoadFromMissingFile() {
	_, err := s.loader.LoadFromFile(s.ctx, filepath.Join(s.T().TempDir(), "missing.json"))
	s.ErrorIs(err, os.ErrNotExist)
}
