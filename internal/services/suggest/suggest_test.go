package suggest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/geoquiz/internal/model"
	"github.com/mcoot/geoquiz/internal/services/catalog"
)

type SuggestSuite struct {
	suite.Suite
	service *Service
}

func TestSuggestSuite(t *testing.T) {
	suite.Run(t, new(SuggestSuite))
}

func (s *SuggestSuite) SetupTest() {
	s.service = New(catalog.World())
}

func names(suggestions []model.Suggestion) []string {
	out := make([]string, len(suggestions))
	for i, sg := range suggestions {
		out[i] = sg.Name
	}
	return out
}

func (s *SuggestSuite) TestEmptyQuery() {
	s.Empty(s.service.Suggest("", nil, 0))
	s.Empty(s.service.Suggest("   ", nil, 0))
}

func (s *SuggestSuite) TestPrefixMatchesSortedByName() {
	got := names(s.service.Suggest("ice", nil, 0))
	s.Equal([]string{"Iceland"}, got)

	got = names(s.service.Suggest("Nig", nil, 0))
	s.Equal([]string{"Niger", "Nigeria"}, got)
}

func (s *SuggestSuite) TestPrefixCaseInsensitive() {
	s.Equal(names(s.service.Suggest("nig", nil, 0)), names(s.service.Suggest("NIG", nil, 0)))
}

func (s *SuggestSuite) TestSubstringOnlyWithoutPrefixMatch() {
	got := names(s.service.Suggest("stan", nil, 0))
	s.Contains(got, "Afghanistan")
	for _, name := range got {
		s.Contains(strings.ToLower(name), "stan")
	}

	// Prefix matches hide substring matches such as Guatemala
	got = names(s.service.Suggest("ma", nil, 50))
	s.NotContains(got, "Guatemala")
	for _, name := range got {
		s.True(strings.HasPrefix(strings.ToLower(name), "ma"), name)
	}
}

func (s *SuggestSuite) TestLimit() {
	s.Len(s.service.Suggest("a", nil, 0), DefaultLimit)
	s.Len(s.service.Suggest("a", nil, 3), 3)
}

func (s *SuggestSuite) TestExcludesGuessed() {
	guessed := map[model.EntityID]struct{}{562: {}} // Niger
	s.Equal([]string{"Nigeria"}, names(s.service.Suggest("nig", guessed, 0)))
}

func (s *SuggestSuite) TestSuggestionCarriesRegion() {
	got := s.service.Suggest("Iceland", nil, 0)
	s.Require().Len(got, 1)
	s.Equal(model.EntityID(352), got[0].ID)
	s.Equal("Europe", got[0].Region)
}

func (s *SuggestSuite) TestNames() {
	all := s.service.Names(nil)
	s.Len(all, 197)

	guessed := map[model.EntityID]struct{}{352: {}}
	s.NotContains(s.service.Names(guessed), "Iceland")
}
