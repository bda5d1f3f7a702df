package service

import (
	"context"
	"sync"

	"fleetdesk/cmd/internal/contract"
	"fleetdesk/cmd/internal/utils/apierror"
)

func (s *ServiceSuite) newCooperative(name, taxCode string) *contract.CooperativeResponse {
	coop, err := s.cooperatives.CreateCooperative(context.Background(), &contract.CooperativeRequest{
		Name:    name,
		TaxCode: taxCode,
		City:    "Recife",
		State:   "PE",
	})
	s.Require().Nil(err)
	return coop
}

func clientRequest(name, taxCode string) *contract.ClientRequest {
	return &contract.ClientRequest{
		Name:    name,
		TaxCode: taxCode,
		City:    "Recife",
		State:   "PE",
		Phones:  "81 99999-0000",
	}
}

func (s *ServiceSuite) TestClientTaxCodeUniqueness() {
	ctx := context.Background()

	first, err := s.clients.CreateClient(ctx, clientRequest("First", "111"))
	s.Require().Nil(err)
	second, err := s.clients.CreateClient(ctx, clientRequest("Second", "222"))
	s.Require().Nil(err)

	s.Run("create with a taken tax code", func() {
		_, err := s.clients.CreateClient(ctx, clientRequest("Third", "111"))
		s.requireKind(err, apierror.KindDuplicateKey)
	})

	s.Run("update to another client's tax code", func() {
		_, err := s.clients.UpdateClient(ctx, second.ID, clientRequest("Second", "111"))
		s.requireKind(err, apierror.KindDuplicateKey)
	})

	s.Run("update keeping its own tax code", func() {
		updated, err := s.clients.UpdateClient(ctx, first.ID, clientRequest("First Renamed", "111"))
		s.Require().Nil(err)
		s.Equal("First Renamed", updated.Name)
	})
}

func (s *ServiceSuite) TestClientCooperativeAffiliation() {
	ctx := context.Background()
	coop := s.newCooperative("Agro Norte", "900")

	s.Run("member without cooperative", func() {
		req := clientRequest("Member", "1")
		req.CooperativeMember = boolPtr(true)

		_, err := s.clients.CreateClient(ctx, req)
		s.requireKind(err, apierror.KindValidationFailed)
	})

	s.Run("member of a missing cooperative", func() {
		req := clientRequest("Member", "1")
		req.CooperativeMember = boolPtr(true)
		req.CooperativeID = intPtr(coop.ID + 100)

		_, err := s.clients.CreateClient(ctx, req)
		s.requireKind(err, apierror.KindReferenceNotFound)
	})

	s.Run("member of an existing cooperative", func() {
		req := clientRequest("Member", "1")
		req.CooperativeMember = boolPtr(true)
		req.CooperativeID = intPtr(coop.ID)

		created, err := s.clients.CreateClient(ctx, req)
		s.Require().Nil(err)
		s.Equal("Agro Norte", created.CooperativeName)

		fetched, err := s.clients.GetClientByID(ctx, created.ID)
		s.Require().Nil(err)
		s.Equal("Agro Norte", fetched.CooperativeName)
		s.Require().NotNil(fetched.CooperativeID)
		s.Equal(coop.ID, *fetched.CooperativeID)
	})

	s.Run("update to a missing cooperative", func() {
		created, err := s.clients.CreateClient(ctx, clientRequest("Other", "2"))
		s.Require().Nil(err)

		req := clientRequest("Other", "2")
		req.CooperativeMember = boolPtr(true)
		req.CooperativeID = intPtr(coop.ID + 100)

		_, err = s.clients.UpdateClient(ctx, created.ID, req)
		s.requireKind(err, apierror.KindReferenceNotFound)
	})

	s.Run("dropping the reference clears the derived name", func() {
		req := clientRequest("Leaver", "3")
		req.CooperativeMember = boolPtr(true)
		req.CooperativeID = intPtr(coop.ID)
		created, err := s.clients.CreateClient(ctx, req)
		s.Require().Nil(err)

		updated, err := s.clients.UpdateClient(ctx, created.ID, clientRequest("Leaver", "3"))
		s.Require().Nil(err)
		s.Nil(updated.CooperativeID)
		s.Empty(updated.CooperativeName)
		s.False(updated.CooperativeMember)
	})
}

func (s *ServiceSuite) TestClientDefaultsAndRoundTrip() {
	ctx := context.Background()
	req := clientRequest("  Padded Name  ", "555")
	req.Contacts = "Maria"

	created, err := s.clients.CreateClient(ctx, req)
	s.Require().Nil(err)
	s.NotZero(created.ID)
	s.NotEmpty(created.UUID)
	s.True(created.Active)
	s.False(created.CooperativeMember)
	s.Equal("Padded Name", created.Name)

	fetched, err := s.clients.GetClientByID(ctx, created.ID)
	s.Require().Nil(err)
	s.Equal(created, fetched)

	byUUID, err := s.clients.GetClientByUUID(ctx, created.UUID)
	s.Require().Nil(err)
	s.Equal(created.ID, byUUID.ID)

	update := clientRequest("Renamed", "555")
	update.Active = boolPtr(false)
	updated, err := s.clients.UpdateClient(ctx, created.ID, update)
	s.Require().Nil(err)

	s.Equal(created.ID, updated.ID)
	s.Equal(created.UUID, updated.UUID)
	s.Equal(created.CreatedAt, updated.CreatedAt)
	s.True(s.parseTime(updated.UpdatedAt).After(s.parseTime(created.UpdatedAt)))
	s.False(updated.Active)
	s.Empty(updated.Contacts)
}

func (s *ServiceSuite) TestClientLookupsMissing() {
	ctx := context.Background()

	_, err := s.clients.GetClientByID(ctx, 404)
	s.requireKind(err, apierror.KindNotFound)

	_, err = s.clients.GetClientByUUID(ctx, "0f8fad5b-d9cb-469f-a165-70867728950e")
	s.requireKind(err, apierror.KindNotFound)

	_, err = s.clients.UpdateClient(ctx, 404, clientRequest("Ghost", "1"))
	s.requireKind(err, apierror.KindNotFound)
}

func (s *ServiceSuite) TestClientValidation() {
	_, err := s.clients.CreateClient(context.Background(), &contract.ClientRequest{TaxCode: "1", State: "PER"})
	s.requireKind(err, apierror.KindValidationFailed)

	structured, ok := err.(*apierror.StructuredError)
	s.Require().True(ok)
	s.Contains(structured.Errors, "name")
	s.Contains(structured.Errors, "state")
}

func (s *ServiceSuite) TestClientsByCooperative() {
	ctx := context.Background()
	coop := s.newCooperative("Coop", "900")
	other := s.newCooperative("Other", "901")

	for i, coopID := range []int{coop.ID, coop.ID, other.ID} {
		req := clientRequest("Client", string(rune('a'+i)))
		req.CooperativeMember = boolPtr(true)
		req.CooperativeID = intPtr(coopID)
		_, err := s.clients.CreateClient(ctx, req)
		s.Require().Nil(err)
	}

	page, err := s.clients.GetClientsByCooperative(ctx, coop.ID, pageOf(0, 10, "", ""))
	s.Require().Nil(err)
	s.Equal(int64(2), page.TotalElements)
	for _, client := range page.Content {
		s.Equal("Coop", client.CooperativeName)
	}

	_, err = s.clients.GetClients(ctx, pageOf(0, 10, "password", ""))
	s.requireKind(err, apierror.KindValidationFailed)
}

// Two writers may pass the tax code check together. The unique index still
// lets exactly one of them in.
func (s *ServiceSuite) TestConcurrentClientCreates() {
	const writers = 8
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]apierror.ErrorResponse, writers)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = s.clients.CreateClient(ctx, clientRequest("Racer", "777"))
		}()
	}
	wg.Wait()

	created := 0
	for _, err := range results {
		if err == nil {
			created++
			continue
		}
		s.Equal(apierror.KindDuplicateKey, err.ErrorKind())
	}
	s.Equal(1, created)
}

func (s *ServiceSuite) TestDeleteClientTwice() {
	ctx := context.Background()
	created, err := s.clients.CreateClient(ctx, clientRequest("Gone", "1"))
	s.Require().Nil(err)

	s.Nil(s.clients.DeleteClient(ctx, created.ID))
	s.requireKind(s.clients.DeleteClient(ctx, created.ID), apierror.KindNotFound)
	s.requireKind(s.clients.DeleteClient(ctx, 404), apierror.KindNotFound)

	_, err = s.clients.GetClientByID(ctx, created.ID)
	s.requireKind(err, apierror.KindNotFound)
}
