package service

import (
	"context"
	"encoding/json"

	"fleetdesk/cmd/internal/contract"
	"fleetdesk/cmd/internal/utils/apierror"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func productRequest(name, price string, quantity int) *contract.ProductRequest {
	return &contract.ProductRequest{
		Name:        name,
		Description: "rastreador",
		Price:       decimal.RequireFromString(price),
		Quantity:    &quantity,
	}
}

func (s *ServiceSuite) decodeEvent(payload string) contract.ProductEvent {
	var event contract.ProductEvent
	s.Require().NoError(json.Unmarshal([]byte(payload), &event))
	return event
}

func (s *ServiceSuite) TestProductLifecyclePublishesEvents() {
	ctx := context.Background()

	var messages, notifications []contract.ProductEvent
	s.events.EXPECT().
		SendProductMessage(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, payload string) {
			messages = append(messages, s.decodeEvent(payload))
		}).
		Times(2)
	s.events.EXPECT().
		SendNotification(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, payload string) {
			notifications = append(notifications, s.decodeEvent(payload))
		})

	created, err := s.products.CreateProduct(ctx, productRequest("Tracker", "199.90", 5))
	s.Require().Nil(err)
	s.True(created.Price.Equal(decimal.RequireFromString("199.9")))

	updated, err := s.products.UpdateProduct(ctx, created.ID, productRequest("Tracker 4G", "249.90", 3))
	s.Require().Nil(err)
	s.Equal(3, updated.Quantity)
	s.Equal(created.CreatedAt, updated.CreatedAt)

	s.Require().Nil(s.products.DeleteProduct(ctx, created.ID))

	s.Equal([]contract.ProductEvent{
		{Action: ProductCreated, ID: created.ID, Name: "Tracker"},
		{Action: ProductUpdated, ID: created.ID, Name: "Tracker 4G"},
	}, messages)
	s.Equal([]contract.ProductEvent{
		{Action: ProductDeleted, ID: created.ID, Name: "Tracker 4G"},
	}, notifications)
}

func (s *ServiceSuite) TestProductRejectionsPublishNothing() {
	ctx := context.Background()

	s.Run("price must be positive", func() {
		_, err := s.products.CreateProduct(ctx, productRequest("Free", "0", 1))
		s.requireKind(err, apierror.KindValidationFailed)

		_, err = s.products.CreateProduct(ctx, productRequest("Negative", "-3.50", 1))
		s.requireKind(err, apierror.KindValidationFailed)
	})

	s.Run("quantity is required", func() {
		req := productRequest("Unknown", "10", 1)
		req.Quantity = nil
		_, err := s.products.CreateProduct(ctx, req)
		s.requireKind(err, apierror.KindValidationFailed)
	})

	s.Run("missing product", func() {
		_, err := s.products.UpdateProduct(ctx, 404, productRequest("Ghost", "10", 1))
		s.requireKind(err, apierror.KindNotFound)

		s.requireKind(s.products.DeleteProduct(ctx, 404), apierror.KindNotFound)
	})
}

func (s *ServiceSuite) TestProductSearch() {
	ctx := context.Background()
	s.events.EXPECT().SendProductMessage(gomock.Any(), gomock.Any()).Times(3)

	for _, name := range []string{"GPS Tracker", "Antena gps", "Cabo"} {
		_, err := s.products.CreateProduct(ctx, productRequest(name, "10", 1))
		s.Require().Nil(err)
	}

	all, err := s.products.GetAllProducts(ctx)
	s.Require().Nil(err)
	s.Len(all, 3)

	found, err := s.products.SearchProducts(ctx, "GPS")
	s.Require().Nil(err)
	s.Len(found, 2)

	page, err := s.products.SearchProductsPage(ctx, "gps", pageOf(0, 1, "name", "ASC"))
	s.Require().Nil(err)
	s.Equal(int64(2), page.TotalElements)
	s.Require().Len(page.Content, 1)
	s.Equal("Antena gps", page.Content[0].Name)

	paged, err := s.products.GetProducts(ctx, pageOf(1, 2, "", ""))
	s.Require().Nil(err)
	s.Len(paged.Content, 1)
	s.Equal(2, paged.TotalPages)
}
