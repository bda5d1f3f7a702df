package service

import (
	"context"

	"fleetdesk/cmd/internal/contract"
	"fleetdesk/cmd/internal/domain/entity"
	"fleetdesk/cmd/internal/utils/apierror"
)

func (s *ServiceSuite) TestCooperativeTaxCodeUniqueness() {
	ctx := context.Background()
	first := s.newCooperative("First", "10")
	second := s.newCooperative("Second", "20")

	_, err := s.cooperatives.CreateCooperative(ctx, &contract.CooperativeRequest{Name: "Third", TaxCode: "10"})
	s.requireKind(err, apierror.KindDuplicateKey)

	_, err = s.cooperatives.UpdateCooperative(ctx, second.ID, &contract.CooperativeRequest{Name: "Second", TaxCode: "10"})
	s.requireKind(err, apierror.KindDuplicateKey)

	updated, err := s.cooperatives.UpdateCooperative(ctx, first.ID, &contract.CooperativeRequest{Name: "First", TaxCode: "10", Active: boolPtr(false)})
	s.Require().Nil(err)
	s.False(updated.Active)
	s.Equal(first.CreatedAt, updated.CreatedAt)
	s.True(s.parseTime(updated.UpdatedAt).After(s.parseTime(first.UpdatedAt)))
}

func (s *ServiceSuite) TestCooperativeSearches() {
	ctx := context.Background()
	for _, req := range []*contract.CooperativeRequest{
		{Name: "Agro Norte", TaxCode: "1", City: "Recife", State: "PE"},
		{Name: "Agro Sul", TaxCode: "2", City: "Recife", State: "PE", Active: boolPtr(false)},
		{Name: "Leite Forte", TaxCode: "3", City: "Natal", State: "RN"},
	} {
		_, err := s.cooperatives.CreateCooperative(ctx, req)
		s.Require().Nil(err)
	}

	s.Run("list all", func() {
		all, err := s.cooperatives.GetAllCooperatives(ctx)
		s.Require().Nil(err)
		s.Len(all, 3)
	})

	s.Run("name contains", func() {
		found, err := s.cooperatives.SearchCooperatives(ctx, entity.CooperativeFilter{Name: "agro"})
		s.Require().Nil(err)
		s.Len(found, 2)
	})

	s.Run("city and state", func() {
		found, err := s.cooperatives.SearchCooperatives(ctx, entity.CooperativeFilter{City: "recife", State: "pe"})
		s.Require().Nil(err)
		s.Len(found, 2)
	})

	s.Run("active paged", func() {
		page, err := s.cooperatives.SearchCooperativesPage(ctx, entity.CooperativeFilter{Active: boolPtr(true)}, pageOf(0, 1, "name", "desc"))
		s.Require().Nil(err)
		s.Equal(int64(2), page.TotalElements)
		s.Equal(2, page.TotalPages)
		s.Require().Len(page.Content, 1)
		s.Equal("Leite Forte", page.Content[0].Name)
	})

	s.Run("tax code", func() {
		found, err := s.cooperatives.GetCooperativeByTaxCode(ctx, "3")
		s.Require().Nil(err)
		s.Equal("Leite Forte", found.Name)

		_, err = s.cooperatives.GetCooperativeByTaxCode(ctx, "999")
		s.requireKind(err, apierror.KindNotFound)
	})
}

// Paging through cooperatives, see TestPagedListings for the other kinds.
func (s *ServiceSuite) TestCooperativePaging() {
	ctx := context.Background()
	for _, name := range []string{"B", "D", "A", "C"} {
		s.newCooperative(name, "tax-"+name)
	}

	s.Run("size bounds the page", func() {
		page, err := s.cooperatives.GetCooperatives(ctx, pageOf(0, 3, "", ""))
		s.Require().Nil(err)
		s.Len(page.Content, 3)
		s.Equal(int64(4), page.TotalElements)
	})

	s.Run("unknown direction sorts ascending", func() {
		up, err := s.cooperatives.GetCooperatives(ctx, pageOf(0, 10, "name", "UP"))
		s.Require().Nil(err)
		asc, err := s.cooperatives.GetCooperatives(ctx, pageOf(0, 10, "name", "ASC"))
		s.Require().Nil(err)

		s.Equal(asc.Content, up.Content)
		s.Equal("A", up.Content[0].Name)
		s.Equal("D", up.Content[3].Name)
	})

	s.Run("unknown sort field", func() {
		_, err := s.cooperatives.GetCooperatives(ctx, pageOf(0, 10, "secret", ""))
		s.requireKind(err, apierror.KindValidationFailed)
	})
}

func (s *ServiceSuite) TestDeleteCooperativeTwice() {
	ctx := context.Background()
	coop := s.newCooperative("Gone", "1")

	s.Nil(s.cooperatives.DeleteCooperative(ctx, coop.ID))
	s.requireKind(s.cooperatives.DeleteCooperative(ctx, coop.ID), apierror.KindNotFound)

	_, err := s.cooperatives.GetCooperativeByID(ctx, coop.ID)
	s.requireKind(err, apierror.KindNotFound)
}

func (s *ServiceSuite) TestDeleteCooperativeInUse() {
	ctx := context.Background()
	coop := s.newCooperative("Agro Norte", "1")

	req := clientRequest("Client", "123")
	req.CooperativeMember = boolPtr(true)
	req.CooperativeID = intPtr(coop.ID)
	client, err := s.clients.CreateClient(ctx, req)
	s.Require().Nil(err)

	s.requireKind(s.cooperatives.DeleteCooperative(ctx, coop.ID), apierror.KindValidationFailed)

	fetched, err := s.clients.GetClientByID(ctx, client.ID)
	s.Require().Nil(err)
	s.Require().NotNil(fetched.CooperativeID)
	s.Equal(coop.ID, *fetched.CooperativeID)
	s.Equal("Agro Norte", fetched.CooperativeName)

	s.Require().Nil(s.clients.DeleteClient(ctx, client.ID))
	s.Nil(s.cooperatives.DeleteCooperative(ctx, coop.ID))
}
