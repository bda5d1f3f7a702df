package service

import (
	"context"

	"fleetdesk/cmd/internal/contract"
	"fleetdesk/cmd/internal/domain/entity"
	"fleetdesk/cmd/internal/utils/apierror"
	"fleetdesk/cmd/internal/utils/paging"

	"go.uber.org/mock/gomock"
)

type pagedListing struct {
	name   string
	sortBy string
	seed   func(key string)
	list   func(req paging.Request) ([]string, int64, apierror.ErrorResponse)
}

func pageKeys[R any](page *paging.Page[R], key func(R) string) ([]string, int64) {
	keys := make([]string, len(page.Content))
	for i, r := range page.Content {
		keys[i] = key(r)
	}
	return keys, page.TotalElements
}

func (s *ServiceSuite) pagedListings() []pagedListing {
	ctx := context.Background()

	return []pagedListing{
		{
			name:   "clients",
			sortBy: "name",
			seed: func(key string) {
				_, err := s.clients.CreateClient(ctx, clientRequest(key, "tax-"+key))
				s.Require().Nil(err)
			},
			list: func(req paging.Request) ([]string, int64, apierror.ErrorResponse) {
				page, err := s.clients.GetClients(ctx, req)
				if err != nil {
					return nil, 0, err
				}
				keys, total := pageKeys(page, func(r *contract.ClientResponse) string { return r.Name })
				return keys, total, nil
			},
		},
		{
			name:   "equipment",
			sortBy: "carrier",
			seed: func(key string) {
				model := s.newModel("Teltonika", "FMB-"+key, "Equipamento")
				req := equipmentRequest(model.ID, "")
				req.Carrier = key
				_, err := s.equipment.CreateEquipment(ctx, req)
				s.Require().Nil(err)
			},
			list: func(req paging.Request) ([]string, int64, apierror.ErrorResponse) {
				page, err := s.equipment.GetEquipment(ctx, req)
				if err != nil {
					return nil, 0, err
				}
				keys, total := pageKeys(page, func(r *contract.EquipmentResponse) string { return r.Carrier })
				return keys, total, nil
			},
		},
		{
			name:   "models",
			sortBy: "brand",
			seed: func(key string) {
				s.newModel("Fiat", key, "Veiculo")
			},
			list: func(req paging.Request) ([]string, int64, apierror.ErrorResponse) {
				page, err := s.models.GetModels(ctx, req)
				if err != nil {
					return nil, 0, err
				}
				keys, total := pageKeys(page, func(r *contract.ModelResponse) string { return r.Brand })
				return keys, total, nil
			},
		},
		{
			name:   "vehicle models",
			sortBy: "brand",
			seed: func(key string) {
				s.newModel("Fiat", key, "veiculo")
			},
			list: func(req paging.Request) ([]string, int64, apierror.ErrorResponse) {
				page, err := s.models.GetModelsByCategory(ctx, entity.CategoryVehicle, req)
				if err != nil {
					return nil, 0, err
				}
				keys, total := pageKeys(page, func(r *contract.ModelResponse) string { return r.Brand })
				return keys, total, nil
			},
		},
		{
			name:   "products",
			sortBy: "name",
			seed: func(key string) {
				_, err := s.products.CreateProduct(ctx, productRequest(key, "10.00", 1))
				s.Require().Nil(err)
			},
			list: func(req paging.Request) ([]string, int64, apierror.ErrorResponse) {
				page, err := s.products.GetProducts(ctx, req)
				if err != nil {
					return nil, 0, err
				}
				keys, total := pageKeys(page, func(r *contract.ProductResponse) string { return r.Name })
				return keys, total, nil
			},
		},
	}
}

// Every paged listing honours size and treats unknown directions as ascending.
func (s *ServiceSuite) TestPagedListings() {
	for _, listing := range s.pagedListings() {
		s.Run(listing.name, func() {
			// Each listing starts from an empty store
			s.TearDownTest()
			s.SetupTest()
			s.events.EXPECT().SendProductMessage(gomock.Any(), gomock.Any()).AnyTimes()

			for _, key := range []string{"B", "D", "A", "C"} {
				listing.seed(key)
			}

			for size := 1; size <= 5; size++ {
				keys, total, err := listing.list(pageOf(0, size, "", ""))
				s.Require().Nil(err)
				s.LessOrEqual(len(keys), size)
				s.Equal(int64(4), total)
			}

			up, _, err := listing.list(pageOf(0, 10, listing.sortBy, "UP"))
			s.Require().Nil(err)
			asc, _, err := listing.list(pageOf(0, 10, listing.sortBy, "ASC"))
			s.Require().Nil(err)
			s.Equal(asc, up)
			s.Equal([]string{"A", "B", "C", "D"}, up)

			desc, _, err := listing.list(pageOf(0, 10, listing.sortBy, "desc"))
			s.Require().Nil(err)
			s.Equal([]string{"D", "C", "B", "A"}, desc)

			_, _, err = listing.list(pageOf(0, 10, "secret", ""))
			s.requireKind(err, apierror.KindValidationFailed)
		})
	}
}
