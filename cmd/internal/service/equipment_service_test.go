package service

import (
	"context"

	"fleetdesk/cmd/internal/contract"
	"fleetdesk/cmd/internal/utils/apierror"
)

func (s *ServiceSuite) newModel(manufacturer, brand, category string) *contract.ModelResponse {
	model, err := s.models.CreateModel(context.Background(), &contract.ModelRequest{
		Manufacturer: manufacturer,
		Brand:        brand,
		Category:     category,
		Active:       boolPtr(true),
	})
	s.Require().Nil(err)
	return model
}

func equipmentRequest(modelID int, ownership string) *contract.EquipmentRequest {
	return &contract.EquipmentRequest{
		IMEI:               "356938035643809",
		SerialNumber:       "SN-1",
		Carrier:            "Vivo",
		EquipmentOwnership: ownership,
		ModelID:            &modelID,
	}
}

func (s *ServiceSuite) TestEquipmentOwnership() {
	ctx := context.Background()
	model := s.newModel("Teltonika", "FMB920", "Equipamento")

	cases := []struct {
		ownership string
		want      string
		ok        bool
	}{
		{"XX", "", false},
		{"pr", "PR", true},
		{"PA", "PA", true},
		{"", "", true},
	}

	for _, tc := range cases {
		s.Run("ownership "+tc.ownership, func() {
			created, err := s.equipment.CreateEquipment(ctx, equipmentRequest(model.ID, tc.ownership))
			if !tc.ok {
				s.requireKind(err, apierror.KindValidationFailed)
				return
			}

			s.Require().Nil(err)
			s.Equal(tc.want, created.EquipmentOwnership)
		})
	}

	s.Run("chip ownership", func() {
		req := equipmentRequest(model.ID, "")
		req.ChipOwnership = "zz"
		_, err := s.equipment.CreateEquipment(ctx, req)
		s.requireKind(err, apierror.KindValidationFailed)
	})
}

func (s *ServiceSuite) TestEquipmentModelReference() {
	ctx := context.Background()
	model := s.newModel("Teltonika", "FMB920", "Equipamento")

	s.Run("missing model id", func() {
		req := equipmentRequest(model.ID, "")
		req.ModelID = nil
		_, err := s.equipment.CreateEquipment(ctx, req)
		s.requireKind(err, apierror.KindValidationFailed)
	})

	s.Run("unknown model", func() {
		_, err := s.equipment.CreateEquipment(ctx, equipmentRequest(model.ID+50, ""))
		s.requireKind(err, apierror.KindReferenceNotFound)
	})

	s.Run("derived model fields", func() {
		created, err := s.equipment.CreateEquipment(ctx, equipmentRequest(model.ID, "PR"))
		s.Require().Nil(err)
		s.Equal("FMB920", created.ModelBrand)
		s.Equal("Teltonika", created.ModelManufacturer)
		s.True(created.Active)
		s.False(created.Allocated)

		page, err := s.equipment.GetEquipment(ctx, pageOf(0, 10, "", ""))
		s.Require().Nil(err)
		s.Require().NotEmpty(page.Content)
		s.Equal("FMB920", page.Content[0].ModelBrand)
	})
}

func (s *ServiceSuite) TestEquipmentRoundTrip() {
	ctx := context.Background()
	model := s.newModel("Teltonika", "FMB920", "Equipamento")
	other := s.newModel("Queclink", "GV300", "Equipamento")

	req := equipmentRequest(model.ID, "pa")
	req.PhoneNumber = "81999990000"
	req.Notes = "installed"
	req.Allocated = boolPtr(true)

	created, err := s.equipment.CreateEquipment(ctx, req)
	s.Require().Nil(err)

	fetched, err := s.equipment.GetEquipmentByID(ctx, created.ID)
	s.Require().Nil(err)
	s.Equal(created, fetched)
	s.Equal("81999990000", fetched.PhoneNumber)
	s.Equal("PA", fetched.EquipmentOwnership)
	s.True(fetched.Allocated)

	updated, err := s.equipment.UpdateEquipment(ctx, created.ID, equipmentRequest(other.ID, ""))
	s.Require().Nil(err)
	s.Equal(other.ID, updated.ModelID)
	s.Equal("GV300", updated.ModelBrand)
	s.Empty(updated.EquipmentOwnership)
	s.False(updated.Allocated)
	s.Equal(created.CreatedAt, updated.CreatedAt)
	s.True(s.parseTime(updated.UpdatedAt).After(s.parseTime(created.UpdatedAt)))

	_, err = s.equipment.UpdateEquipment(ctx, created.ID+50, equipmentRequest(other.ID, ""))
	s.requireKind(err, apierror.KindNotFound)
}

func (s *ServiceSuite) TestDeleteEquipmentTwice() {
	ctx := context.Background()
	model := s.newModel("Teltonika", "FMB920", "Equipamento")
	created, err := s.equipment.CreateEquipment(ctx, equipmentRequest(model.ID, ""))
	s.Require().Nil(err)

	s.Nil(s.equipment.DeleteEquipment(ctx, created.ID))
	s.requireKind(s.equipment.DeleteEquipment(ctx, created.ID), apierror.KindNotFound)

	// The model outlives the equipment that referenced it
	_, err = s.models.GetModelByID(ctx, model.ID)
	s.Nil(err)
}
