package service

import (
	"context"

	"fleetdesk/cmd/internal/contract"
	"fleetdesk/cmd/internal/domain/entity"
	"fleetdesk/cmd/internal/utils/apierror"
)

func (s *ServiceSuite) TestModelCategory() {
	ctx := context.Background()

	cases := []struct {
		category string
		want     string
		ok       bool
	}{
		{"Motorcycle", "", false},
		{"", "", false},
		{"equipamento", "Equipamento", true},
		{"Veiculo", "Veiculo", true},
		{"VEICULO", "Veiculo", true},
	}

	for _, tc := range cases {
		s.Run("category "+tc.category, func() {
			created, err := s.models.CreateModel(ctx, &contract.ModelRequest{
				Manufacturer: "Fiat",
				Brand:        "Strada",
				Category:     tc.category,
				Active:       boolPtr(true),
			})
			if !tc.ok {
				s.requireKind(err, apierror.KindValidationFailed)
				return
			}

			s.Require().Nil(err)
			s.Equal(tc.want, created.Category)
		})
	}
}

func (s *ServiceSuite) TestModelsByCategory() {
	ctx := context.Background()
	s.newModel("Teltonika", "FMB920", "Equipamento")
	s.newModel("Fiat", "Strada", "Veiculo")
	s.newModel("Ford", "Ranger", "veiculo")

	vehicles, err := s.models.GetModelsByCategory(ctx, entity.CategoryVehicle, pageOf(0, 10, "brand", "DESC"))
	s.Require().Nil(err)
	s.Equal(int64(2), vehicles.TotalElements)
	s.Require().Len(vehicles.Content, 2)
	s.Equal("Strada", vehicles.Content[0].Brand)

	devices, err := s.models.GetModelsByCategory(ctx, entity.CategoryEquipment, pageOf(0, 10, "", ""))
	s.Require().Nil(err)
	s.Equal(int64(1), devices.TotalElements)

	all, err := s.models.GetModels(ctx, pageOf(0, 2, "", ""))
	s.Require().Nil(err)
	s.Len(all.Content, 2)
	s.Equal(int64(3), all.TotalElements)
}

func (s *ServiceSuite) TestModelRoundTrip() {
	ctx := context.Background()
	created := s.newModel("Fiat", "Strada", "Veiculo")

	fetched, err := s.models.GetModelByID(ctx, created.ID)
	s.Require().Nil(err)
	s.Equal(created, fetched)

	updated, err := s.models.UpdateModel(ctx, created.ID, &contract.ModelRequest{
		Manufacturer: "Fiat",
		Brand:        "Toro",
		Category:     "Veiculo",
		Active:       boolPtr(false),
	})
	s.Require().Nil(err)
	s.Equal("Toro", updated.Brand)
	s.False(updated.Active)
	s.Equal(created.CreatedAt, updated.CreatedAt)
	s.True(s.parseTime(updated.UpdatedAt).After(s.parseTime(created.UpdatedAt)))

	_, err = s.models.CreateModel(ctx, &contract.ModelRequest{Manufacturer: "Fiat", Brand: "Uno", Category: "Veiculo"})
	s.requireKind(err, apierror.KindValidationFailed)
}

func (s *ServiceSuite) TestDeleteModelTwice() {
	ctx := context.Background()
	created := s.newModel("Fiat", "Strada", "Veiculo")

	s.Nil(s.models.DeleteModel(ctx, created.ID))
	s.requireKind(s.models.DeleteModel(ctx, created.ID), apierror.KindNotFound)
}

func (s *ServiceSuite) TestDeleteModelInUse() {
	ctx := context.Background()
	model := s.newModel("Teltonika", "FMB920", "Equipamento")
	equip, err := s.equipment.CreateEquipment(ctx, equipmentRequest(model.ID, ""))
	s.Require().Nil(err)

	s.requireKind(s.models.DeleteModel(ctx, model.ID), apierror.KindValidationFailed)

	fetched, err := s.equipment.GetEquipmentByID(ctx, equip.ID)
	s.Require().Nil(err)
	s.Equal("FMB920", fetched.ModelBrand)
	s.Equal("Teltonika", fetched.ModelManufacturer)

	s.Require().Nil(s.equipment.DeleteEquipment(ctx, equip.ID))
	s.Nil(s.models.DeleteModel(ctx, model.ID))
}
